/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package mets

import (
	"fmt"

	"github.com/humaidq/metskids/subject"
)

// DefinitionID names a MetS definition.
type DefinitionID string

// Built-in definitions.
const (
	Cook   DefinitionID = "cook"
	IDF    DefinitionID = "idf"
	Ahrens DefinitionID = "ahrens"
)

// Measure compares one record field against a cutoff.
type Measure struct {
	Field     string
	Direction Direction
	Cutoff    Cutoff
}

func (m Measure) String() string {
	return fmt.Sprintf("%s %s %s", m.Field, m.Direction, m.Cutoff)
}

// Criterion is one component. It is altered when any of its measures is
// altered and normal when all of them are normal.
type Criterion struct {
	Component Component
	Measures  []Measure
}

// Aggregation combines component flags into a verdict: the Mandatory
// component (if set) must be altered, and at least MinAltered of the other
// components must be altered. A MonitorOnly band reports component flags but
// never diagnoses: its verdict is No once the Mandatory component is known.
type Aggregation struct {
	Mandatory   Component
	MinAltered  int
	MonitorOnly bool
}

func (a Aggregation) String() string {
	if a.MonitorOnly {
		return fmt.Sprintf("monitoring only (%s measured)", a.Mandatory)
	}

	if a.Mandatory != "" {
		return fmt.Sprintf("%s required and >= %d of the rest", a.Mandatory, a.MinAltered)
	}

	return fmt.Sprintf(">= %d components", a.MinAltered)
}

// Band is the rule set applied to ages in [MinAge, MaxAge). A zero MaxAge
// leaves the band open-ended.
type Band struct {
	Label       string
	MinAge      float64
	MaxAge      float64
	Criteria    []Criterion
	Aggregation Aggregation
}

func (b Band) contains(age float64) bool {
	if age < b.MinAge {
		return false
	}

	return b.MaxAge == 0 || age < b.MaxAge
}

// Definition is a named MetS definition. Components fixes the order of the
// reported flags.
type Definition struct {
	ID         DefinitionID
	Name       string
	Citation   string
	Components []Component
	Bands      []Band
}

// band returns the band covering age, or nil.
func (d *Definition) band(age float64) *Band {
	for i := range d.Bands {
		if d.Bands[i].contains(age) {
			return &d.Bands[i]
		}
	}

	return nil
}

// Validate checks that the definition can be evaluated.
func (d *Definition) Validate() error {
	if d.ID == "" {
		return fmt.Errorf("%w: missing id", ErrInvalidDefinition)
	}

	if len(d.Components) == 0 || len(d.Bands) == 0 {
		return fmt.Errorf("%w: %s has no components or bands", ErrInvalidDefinition, d.ID)
	}

	known := make(map[Component]bool, len(d.Components))
	for _, c := range d.Components {
		known[c] = true
	}

	for _, b := range d.Bands {
		if b.MaxAge != 0 && b.MaxAge <= b.MinAge {
			return fmt.Errorf("%w: %s band %q has an empty age range", ErrInvalidDefinition, d.ID, b.Label)
		}

		if b.Aggregation.MonitorOnly && b.Aggregation.Mandatory == "" {
			return fmt.Errorf("%w: %s band %q monitors without a mandatory component",
				ErrInvalidDefinition, d.ID, b.Label)
		}

		if b.Aggregation.Mandatory != "" && !known[b.Aggregation.Mandatory] {
			return fmt.Errorf("%w: %s band %q gates on unknown component %s",
				ErrInvalidDefinition, d.ID, b.Label, b.Aggregation.Mandatory)
		}

		for _, c := range b.Criteria {
			if !known[c.Component] {
				return fmt.Errorf("%w: %s band %q uses unknown component %s", ErrInvalidDefinition, d.ID, b.Label, c.Component)
			}

			if len(c.Measures) == 0 {
				return fmt.Errorf("%w: %s component %s has no measures", ErrInvalidDefinition, d.ID, c.Component)
			}

			for _, m := range c.Measures {
				if m.Cutoff == nil {
					return fmt.Errorf("%w: %s component %s has a measure without cutoff", ErrInvalidDefinition, d.ID, c.Component)
				}
			}
		}
	}

	return nil
}

// requiredFields returns the input fields the bands need, in canonical field
// order. A nil band list means all bands.
func requiredFields(bands []Band) []string {
	need := map[string]bool{
		subject.FieldDecimalAge: true,
		subject.FieldSex:        true,
	}

	for _, b := range bands {
		for _, c := range b.Criteria {
			for _, m := range c.Measures {
				for _, f := range expandField(m.Field) {
					need[f] = true
				}

				for _, f := range m.Cutoff.Fields() {
					need[f] = true
				}
			}
		}
	}

	fields := make([]string, 0, len(need))
	for _, f := range subject.Fields {
		if need[f] {
			fields = append(fields, f)
		}
	}

	return fields
}

// expandField maps derived measures back to their raw inputs.
func expandField(field string) []string {
	switch field {
	case subject.DerivedBMI:
		return []string{subject.FieldHeight, subject.FieldWeight}
	case subject.DerivedHOMAIR:
		return []string{subject.FieldGlucose, subject.FieldInsulin}
	default:
		return []string{field}
	}
}
