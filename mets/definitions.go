/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package mets

import (
	"fmt"
	"strings"

	"github.com/humaidq/metskids/reference"
	"github.com/humaidq/metskids/subject"
)

// Common measures shared by several definitions.
var (
	waistP90 = Measure{
		Field:     subject.FieldWaist,
		Direction: AtLeast,
		Cutoff:    AgeTable{Table: reference.TableWaistP90, Column: reference.ColumnP90},
	}

	bloodPressureP90 = Criterion{
		Component: ComponentBloodPressure,
		Measures: []Measure{
			{Field: subject.FieldSBP, Direction: AtLeast, Cutoff: HeightAdjusted{Table: reference.TableSBPP90}},
			{Field: subject.FieldDBP, Direction: AtLeast, Cutoff: HeightAdjusted{Table: reference.TableDBPP90}},
		},
	}

	// adultWaist is the Europid IDF waist cutoff in cm.
	adultWaist = Fixed{Male: 94, Female: 80}
)

// cookDefinition uses the fixed adolescent cutoffs of Cook 2003 (TG >= 110,
// HDL <= 40, glucose >= 110 mg/dL) at every age rather than age-specific lipid
// percentiles, and does not use insulin, so young children are judged on the
// same five components as adolescents.
func cookDefinition() *Definition {
	return &Definition{
		ID:       Cook,
		Name:     "Cook (NCEP ATP III, modified for adolescents)",
		Citation: "Cook S et al. Arch Pediatr Adolesc Med 2003;157:821",
		Components: []Component{
			ComponentObesity, ComponentBloodPressure, ComponentTriglycerides, ComponentHDL, ComponentGlucose,
		},
		Bands: []Band{
			{
				Label: "all ages",
				Criteria: []Criterion{
					{Component: ComponentObesity, Measures: []Measure{waistP90}},
					bloodPressureP90,
					{Component: ComponentTriglycerides, Measures: []Measure{
						{Field: subject.FieldTG, Direction: AtLeast, Cutoff: Both(110)},
					}},
					{Component: ComponentHDL, Measures: []Measure{
						{Field: subject.FieldHDL, Direction: AtMost, Cutoff: Both(40)},
					}},
					{Component: ComponentGlucose, Measures: []Measure{
						{Field: subject.FieldGlucose, Direction: AtLeast, Cutoff: Both(110)},
					}},
				},
				Aggregation: Aggregation{MinAltered: 3},
			},
		},
	}
}

// idfCriteria builds the IDF criteria for a band around the given waist and
// HDL cutoffs.
func idfCriteria(waist Cutoff, hdl Fixed) []Criterion {
	return []Criterion{
		{Component: ComponentObesity, Measures: []Measure{
			{Field: subject.FieldWaist, Direction: AtLeast, Cutoff: waist},
		}},
		{Component: ComponentBloodPressure, Measures: []Measure{
			{Field: subject.FieldSBP, Direction: AtLeast, Cutoff: Both(130)},
			{Field: subject.FieldDBP, Direction: AtLeast, Cutoff: Both(85)},
		}},
		{Component: ComponentTriglycerides, Measures: []Measure{
			{Field: subject.FieldTG, Direction: AtLeast, Cutoff: Both(150)},
		}},
		{Component: ComponentHDL, Measures: []Measure{
			{Field: subject.FieldHDL, Direction: Below, Cutoff: hdl},
		}},
		{Component: ComponentGlucose, Measures: []Measure{
			{Field: subject.FieldGlucose, Direction: AtLeast, Cutoff: Both(100)},
		}},
	}
}

func idfDefinition() *Definition {
	waistPct := AgeTable{Table: reference.TableWaistP90, Column: reference.ColumnP90}
	gate := Aggregation{Mandatory: ComponentObesity, MinAltered: 2}

	return &Definition{
		ID:       IDF,
		Name:     "Zimmet (IDF consensus)",
		Citation: "Zimmet P et al. Pediatr Diabetes 2007;8:299",
		Components: []Component{
			ComponentObesity, ComponentBloodPressure, ComponentTriglycerides, ComponentHDL, ComponentGlucose,
		},
		// Below 6 years the IDF consensus gives no definition, so no band
		// covers those ages and the verdict stays missing.
		Bands: []Band{
			{
				// MetS is not diagnosed below 10 in the consensus. Components
				// are still flagged, and a measured waist reads as "No".
				Label:    "6-<10 (monitoring)",
				MinAge:   6,
				MaxAge:   10,
				Criteria: idfCriteria(waistPct, Both(40)),
				Aggregation: Aggregation{
					Mandatory:   ComponentObesity,
					MinAltered:  2,
					MonitorOnly: true,
				},
			},
			{
				Label:       "10-<16",
				MinAge:      10,
				MaxAge:      16,
				Criteria:    idfCriteria(Lowest{A: waistPct, B: adultWaist}, Both(40)),
				Aggregation: gate,
			},
			{
				Label:       ">=16 (adult criteria)",
				MinAge:      16,
				Criteria:    idfCriteria(adultWaist, Fixed{Male: 40, Female: 50}),
				Aggregation: gate,
			},
		},
	}
}

func ahrensDefinition() *Definition {
	return &Definition{
		ID:       Ahrens,
		Name:     "Ahrens (IDEFICS, monitoring level)",
		Citation: "Ahrens W et al. Int J Obes 2014;38:S4",
		Components: []Component{
			ComponentObesity, ComponentBloodPressure, ComponentTriglycerides, ComponentHDL,
			ComponentGlucose, ComponentInsulinResistance,
		},
		Bands: []Band{
			{
				Label:  ">=2 (monitoring level)",
				MinAge: 2,
				Criteria: []Criterion{
					{Component: ComponentObesity, Measures: []Measure{waistP90}},
					bloodPressureP90,
					{Component: ComponentTriglycerides, Measures: []Measure{
						{Field: subject.FieldTG, Direction: AtLeast, Cutoff: PubertalTable{Base: reference.TableAhrensTGP90, Column: reference.ColumnValue}},
					}},
					{Component: ComponentHDL, Measures: []Measure{
						{Field: subject.FieldHDL, Direction: AtMost, Cutoff: PubertalTable{Base: reference.TableAhrensHDLP10, Column: reference.ColumnValue}},
					}},
					{Component: ComponentGlucose, Measures: []Measure{
						{Field: subject.FieldGlucose, Direction: AtLeast, Cutoff: PubertalTable{Base: reference.TableAhrensGlucoseP90, Column: reference.ColumnValue}},
					}},
					{Component: ComponentInsulinResistance, Measures: []Measure{
						{Field: subject.DerivedHOMAIR, Direction: AtLeast, Cutoff: PubertalTable{Base: reference.TableAhrensHOMAP90, Column: reference.ColumnValue}},
					}},
				},
				Aggregation: Aggregation{MinAltered: 2},
			},
		},
	}
}

// builtinDefinitions returns fresh copies of the built-in definitions.
func builtinDefinitions() []*Definition {
	return []*Definition{cookDefinition(), idfDefinition(), ahrensDefinition()}
}

var aliases = map[string]DefinitionID{
	"cook":    Cook,
	"ncep":    Cook,
	"idf":     IDF,
	"zimmet":  IDF,
	"ahrens":  Ahrens,
	"idefics": Ahrens,
}

// ParseDefinitionID resolves a user-supplied name (case-insensitive, with the
// aliases ncep, zimmet and idefics) to a built-in definition id.
func ParseDefinitionID(s string) (DefinitionID, error) {
	id, ok := aliases[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownDefinition, s)
	}

	return id, nil
}

// Definitions returns the built-in definition ids.
func Definitions() []DefinitionID {
	return []DefinitionID{Cook, IDF, Ahrens}
}

// Lookup returns the built-in definition with the given id.
func Lookup(id DefinitionID) (*Definition, error) {
	for _, d := range builtinDefinitions() {
		if d.ID == id {
			return d, nil
		}
	}

	return nil, fmt.Errorf("%w: %q", ErrUnknownDefinition, id)
}

// RequiredFields lists every input field needed to evaluate the definition
// at any age.
func RequiredFields(id DefinitionID) ([]string, error) {
	d, err := Lookup(id)
	if err != nil {
		return nil, err
	}

	return requiredFields(d.Bands), nil
}

// RequiredFieldsAt lists the input fields needed at a given age. Ages outside
// every band only need decimal_age and sex.
func RequiredFieldsAt(id DefinitionID, age float64) ([]string, error) {
	d, err := Lookup(id)
	if err != nil {
		return nil, err
	}

	b := d.band(age)
	if b == nil {
		return requiredFields(nil), nil
	}

	return requiredFields([]Band{*b}), nil
}
