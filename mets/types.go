/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package mets

import (
	"fmt"
	"strings"
)

// Component is one MetS risk factor.
type Component string

// Components reported by the built-in definitions.
const (
	ComponentObesity           Component = "Obesity_WC"
	ComponentBloodPressure     Component = "Blood_pressure"
	ComponentTriglycerides     Component = "Triglycerides"
	ComponentHDL               Component = "HDL"
	ComponentGlucose           Component = "Glucose_homeostasis"
	ComponentInsulinResistance Component = "Insulin_resistance"
)

// Flag is the state of one component. The zero value means missing.
type Flag string

// Flag values.
const (
	FlagMissing Flag = ""
	FlagNormal  Flag = "Normal"
	FlagAltered Flag = "Altered"
)

func (f Flag) String() string {
	if f == FlagMissing {
		return "Missing"
	}

	return string(f)
}

// Verdict is the overall MetS classification. The zero value means missing.
type Verdict string

// Verdict values.
const (
	VerdictMissing Verdict = ""
	VerdictYes     Verdict = "Yes"
	VerdictNo      Verdict = "No"
)

func (v Verdict) String() string {
	if v == VerdictMissing {
		return "Missing"
	}

	return string(v)
}

// Direction is the comparison that marks a measurement as altered.
type Direction int

// Directions.
const (
	AtLeast Direction = iota // value >= cutoff
	Above                    // value > cutoff
	AtMost                   // value <= cutoff
	Below                    // value < cutoff
)

func (d Direction) String() string {
	switch d {
	case AtLeast:
		return ">="
	case Above:
		return ">"
	case AtMost:
		return "<="
	case Below:
		return "<"
	default:
		return "?"
	}
}

func (d Direction) altered(value, cutoff float64) bool {
	switch d {
	case AtLeast:
		return value >= cutoff
	case Above:
		return value > cutoff
	case AtMost:
		return value <= cutoff
	case Below:
		return value < cutoff
	default:
		return false
	}
}

// MissingPolicy decides how missing components affect the verdict.
type MissingPolicy int

const (
	// PolicyDeterminable counts altered components among the available ones
	// and only reports a verdict when the missing components cannot change it.
	PolicyDeterminable MissingPolicy = iota
	// PolicyCompleteCase reports a missing verdict whenever any component is
	// missing.
	PolicyCompleteCase
)

func (p MissingPolicy) String() string {
	switch p {
	case PolicyDeterminable:
		return "determinable"
	case PolicyCompleteCase:
		return "complete-case"
	default:
		return fmt.Sprintf("MissingPolicy(%d)", int(p))
	}
}

// ParseMissingPolicy parses "determinable" or "complete-case".
func ParseMissingPolicy(s string) (MissingPolicy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "determinable":
		return PolicyDeterminable, nil
	case "complete-case", "complete_case", "strict":
		return PolicyCompleteCase, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMissingPolicy, s)
	}
}
