/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package obesity classifies pediatric BMI into weight categories using the
// Cole et al. international cutoffs.
package obesity

import (
	"github.com/humaidq/metskids/reference"
	"github.com/humaidq/metskids/subject"
)

// Category is a Cole weight category. The zero value means missing.
type Category string

// Category values, ordered by Rank.
const (
	CategoryMissing    Category = ""
	CategoryNormal     Category = "Normal weight"
	CategoryOverweight Category = "Overweight"
	CategoryObese      Category = "Obese"
)

// Categories lists the non-missing categories in ascending order.
var Categories = []Category{CategoryNormal, CategoryOverweight, CategoryObese}

func (c Category) String() string {
	if c == CategoryMissing {
		return "Missing"
	}

	return string(c)
}

// Rank orders categories: 0 for missing, then 1 (normal weight) to 3 (obese).
func (c Category) Rank() int {
	switch c {
	case CategoryNormal:
		return 1
	case CategoryOverweight:
		return 2
	case CategoryObese:
		return 3
	default:
		return 0
	}
}

// Classify maps BMI, decimal age and sex to a Cole category using the
// nearest tabulated age. The obese cutoff is checked before the overweight
// cutoff. Any missing input or lookup failure yields CategoryMissing.
func Classify(store *reference.Store, bmi, age *float64, sex *subject.Sex) Category {
	if store == nil || bmi == nil || age == nil || sex == nil {
		return CategoryMissing
	}

	cole, err := store.Table(reference.TableColeBMI)
	if err != nil {
		return CategoryMissing
	}

	row, err := cole.Lookup(*age, *sex)
	if err != nil {
		return CategoryMissing
	}

	obese, okObese := row.Value(reference.ColumnObese)
	overweight, okOverweight := row.Value(reference.ColumnOverweight)

	if !okObese || !okOverweight {
		return CategoryMissing
	}

	switch {
	case *bmi >= obese:
		return CategoryObese
	case *bmi >= overweight:
		return CategoryOverweight
	default:
		return CategoryNormal
	}
}

// ClassifyRecord derives the record's BMI if needed and classifies it.
func ClassifyRecord(store *reference.Store, rec *subject.Record) Category {
	rec.Derive()

	return Classify(store, rec.BMI, rec.DecimalAge, rec.Sex)
}
