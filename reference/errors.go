/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

import "errors"

var (
	// ErrEmptyTable is returned when a table, or one sex of it, has no rows.
	ErrEmptyTable = errors.New("reference table is empty")
	// ErrMalformedTable is returned when a table fails load-time validation.
	ErrMalformedTable = errors.New("reference table is malformed")
	// ErrUnknownTable is returned when a store has no table with the requested name.
	ErrUnknownTable = errors.New("unknown reference table")
	// ErrNoReferenceRow is returned when no row can be matched for an age and sex.
	ErrNoReferenceRow = errors.New("no reference row for age and sex")
)
