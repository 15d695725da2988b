/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package mets

import "errors"

var (
	// ErrUnknownDefinition is returned for a definition id the selector does not know.
	ErrUnknownDefinition = errors.New("unknown MetS definition")
	// ErrUnknownMissingPolicy is returned when a missing-data policy name cannot be parsed.
	ErrUnknownMissingPolicy = errors.New("unknown missing-data policy")
	// ErrInvalidDefinition is returned when a custom definition is incomplete.
	ErrInvalidDefinition = errors.New("invalid MetS definition")
)
