/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package subject holds the per-participant record and the measures derived
// from it (BMI and HOMA-IR).
package subject

import "math"

// Sex is the binary sex code used by the reference tables.
type Sex int

// Sex codes as they appear in cohort files.
const (
	SexMale   Sex = 0
	SexFemale Sex = 1
)

func (s Sex) String() string {
	switch s {
	case SexMale:
		return "Male"
	case SexFemale:
		return "Female"
	default:
		return "Unknown"
	}
}

// Valid reports whether s is one of the supported codes.
func (s Sex) Valid() bool {
	return s == SexMale || s == SexFemale
}

// Field names, as used in cohort files and required-field listings.
const (
	FieldID         = "id"
	FieldDecimalAge = "decimal_age"
	FieldSex        = "sex"
	FieldHeight     = "height_m"
	FieldWeight     = "weight_kg"
	FieldWaist      = "wc_cm"
	FieldDBP        = "dbp_mmHg"
	FieldSBP        = "sbp_mmHg"
	FieldTG         = "tg_mg_dl"
	FieldHDL        = "hdl_mg_dl"
	FieldGlucose    = "glucose_mg_dl"
	FieldInsulin    = "insulin_microU_ml"
	FieldTanner     = "tanner_index"
)

// Fields lists every input column in canonical order.
var Fields = []string{
	FieldID, FieldDecimalAge, FieldSex, FieldHeight, FieldWeight, FieldWaist,
	FieldDBP, FieldSBP, FieldTG, FieldHDL, FieldGlucose, FieldInsulin, FieldTanner,
}

// Record is one participant visit. A nil pointer means the value is missing.
type Record struct {
	ID         string
	DecimalAge *float64
	Sex        *Sex
	HeightM    *float64
	WeightKg   *float64
	WaistCm    *float64
	DBP        *float64
	SBP        *float64
	TG         *float64
	HDL        *float64
	Glucose    *float64
	Insulin    *float64
	Tanner     *int

	// Derived measures, filled by Derive.
	BMI    *float64
	HOMAIR *float64

	derived bool
}

// Derive computes BMI and HOMA-IR once and caches them on the record.
func (r *Record) Derive() {
	if r.derived {
		return
	}

	r.BMI = BMI(r.HeightM, r.WeightKg)
	r.HOMAIR = HOMAIR(r.Glucose, r.Insulin)
	r.derived = true
}

// Pubertal reports whether the Tanner stage marks the subject as pubertal
// (stages 2-5). The second value is false when the stage is missing or out
// of range.
func (r *Record) Pubertal() (bool, bool) {
	if r.Tanner == nil || *r.Tanner < 1 || *r.Tanner > 5 {
		return false, false
	}

	return *r.Tanner >= 2, true
}

// Value returns the numeric value stored under a field name, including the
// derived "bmi" and "homa_ir" measures.
func (r *Record) Value(field string) *float64 {
	switch field {
	case FieldDecimalAge:
		return r.DecimalAge
	case FieldHeight:
		return r.HeightM
	case FieldWeight:
		return r.WeightKg
	case FieldWaist:
		return r.WaistCm
	case FieldDBP:
		return r.DBP
	case FieldSBP:
		return r.SBP
	case FieldTG:
		return r.TG
	case FieldHDL:
		return r.HDL
	case FieldGlucose:
		return r.Glucose
	case FieldInsulin:
		return r.Insulin
	case DerivedBMI:
		r.Derive()
		return r.BMI
	case DerivedHOMAIR:
		r.Derive()
		return r.HOMAIR
	case FieldSex:
		if r.Sex == nil {
			return nil
		}
		return Float(float64(*r.Sex))
	case FieldTanner:
		if r.Tanner == nil {
			return nil
		}
		return Float(float64(*r.Tanner))
	default:
		return nil
	}
}

// Float returns a pointer to f, or nil when f is NaN or infinite.
func Float(f float64) *float64 {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}

	return &f
}

// SexPtr returns a pointer to s.
func SexPtr(s Sex) *Sex {
	return &s
}

// Int returns a pointer to i.
func Int(i int) *int {
	return &i
}
