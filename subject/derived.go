/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package subject

// Names of the derived measures, usable with Record.Value.
const (
	DerivedBMI    = "bmi"
	DerivedHOMAIR = "homa_ir"
)

// homaDivisor converts glucose in mg/dL and insulin in µU/mL to HOMA-IR.
const homaDivisor = 405.0

// BMI returns weight / height² in kg/m², or nil if either input is missing
// or the height is not positive.
func BMI(heightM, weightKg *float64) *float64 {
	if heightM == nil || weightKg == nil || *heightM <= 0 {
		return nil
	}

	return Float(*weightKg / (*heightM * *heightM))
}

// HOMAIR returns (glucose × insulin) / 405, or nil if either input is missing.
func HOMAIR(glucoseMgDl, insulinMicroUMl *float64) *float64 {
	if glucoseMgDl == nil || insulinMicroUMl == nil {
		return nil
	}

	return Float(*glucoseMgDl * *insulinMicroUMl / homaDivisor)
}
