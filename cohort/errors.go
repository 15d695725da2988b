/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cohort

import "errors"

var (
	// ErrNoHeader is returned when a cohort file has no header row.
	ErrNoHeader = errors.New("cohort file has no header row")
	// ErrUnknownFormat is returned for an output format other than csv or json.
	ErrUnknownFormat = errors.New("unknown output format")
)
