/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

// builtinTables returns fresh copies of every built-in table. This is the
// authoritative source of reference data unless a YAML override replaces a
// table by name.
func builtinTables() []*Table {
	return []*Table{
		coleBMI(),
		waistP90(),
		sbpP90(),
		dbpP90(),

		ahrensTGPrepubertal(),
		ahrensTGPubertal(),
		ahrensHDLPrepubertal(),
		ahrensHDLPubertal(),
		ahrensGlucosePrepubertal(),
		ahrensGlucosePubertal(),
		ahrensHOMAPrepubertal(),
		ahrensHOMAPubertal(),

		zHeight(),
		zWaist(),
		zSBP(),
		zDBP(),
		zTG(),
		zHDL(),
		zGlucose(),
		zHOMA(),
	}
}
