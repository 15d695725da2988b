/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package zscore converts raw measurements into age- and sex-standardised
// scores using LMS parameters from the reference store.
package zscore

import (
	"math"

	"github.com/humaidq/metskids/reference"
	"github.com/humaidq/metskids/subject"
)

// Output column names.
const (
	ColumnHeight  = "Height_zscore"
	ColumnWC      = "WC_zscore"
	ColumnSBP     = "SBP_zscore"
	ColumnDBP     = "DBP_zscore"
	ColumnTAG     = "TAG_zscore"
	ColumnHDL     = "HDL_zscore"
	ColumnGlucose = "Glucose_zscore"
	ColumnHOMA    = "HOMA_zscore"
	ColumnCMetS   = "cMetS"
)

// Columns lists the output columns in the order of Set.Values.
var Columns = []string{
	ColumnHeight, ColumnWC, ColumnSBP, ColumnDBP, ColumnTAG, ColumnHDL, ColumnGlucose, ColumnHOMA, ColumnCMetS,
}

// Set holds one z-score per component. Nil means missing.
type Set struct {
	Height  *float64
	WC      *float64
	SBP     *float64
	DBP     *float64
	TAG     *float64
	HDL     *float64
	Glucose *float64
	HOMA    *float64

	// ContinuousScore is the mean of the WC, SBP, TAG, inverted HDL and HOMA
	// z-scores. It is missing when any of them is missing.
	ContinuousScore *float64
}

// Values returns the scores in Columns order.
func (s Set) Values() []*float64 {
	return []*float64{s.Height, s.WC, s.SBP, s.DBP, s.TAG, s.HDL, s.Glucose, s.HOMA, s.ContinuousScore}
}

// Engine computes z-scores against a reference store.
type Engine struct {
	store *reference.Store
}

// NewEngine returns an Engine reading from store.
func NewEngine(store *reference.Store) *Engine {
	return &Engine{store: store}
}

// LMS applies the LMS transform. L = 1 gives (x - M) / (M S), L = 0 the
// log-normal ln(x / M) / S.
func LMS(x, l, m, s float64) (float64, bool) {
	if x <= 0 || m <= 0 || s <= 0 {
		return 0, false
	}

	var z float64
	if l == 0 {
		z = math.Log(x/m) / s
	} else {
		z = (math.Pow(x/m, l) - 1) / (l * s)
	}

	if math.IsNaN(z) || math.IsInf(z, 0) {
		return 0, false
	}

	return z, true
}

// Percentile converts a z-score to a percentile of the standard normal.
func Percentile(z float64) float64 {
	return 50 * (1 + math.Erf(z/math.Sqrt2))
}

// score looks up the LMS row for the subject and transforms x.
func (e *Engine) score(table string, x, age *float64, sex *subject.Sex) *float64 {
	if e.store == nil || x == nil || age == nil || sex == nil {
		return nil
	}

	t, err := e.store.Table(table)
	if err != nil {
		return nil
	}

	row, err := t.Lookup(*age, *sex)
	if err != nil {
		return nil
	}

	l, okL := row.Value(reference.ColumnL)
	m, okM := row.Value(reference.ColumnM)
	s, okS := row.Value(reference.ColumnS)

	if !okL || !okM || !okS {
		return nil
	}

	z, ok := LMS(*x, l, m, s)
	if !ok {
		return nil
	}

	return &z
}

// Height scores height for age. The record stores metres, the table centimetres.
func (e *Engine) Height(rec *subject.Record) *float64 {
	if rec.HeightM == nil {
		return nil
	}

	cm := *rec.HeightM * 100

	return e.score(reference.TableZHeight, &cm, rec.DecimalAge, rec.Sex)
}

// Waist scores waist circumference.
func (e *Engine) Waist(rec *subject.Record) *float64 {
	return e.score(reference.TableZWaist, rec.WaistCm, rec.DecimalAge, rec.Sex)
}

// SBP scores systolic blood pressure.
func (e *Engine) SBP(rec *subject.Record) *float64 {
	return e.score(reference.TableZSBP, rec.SBP, rec.DecimalAge, rec.Sex)
}

// DBP scores diastolic blood pressure.
func (e *Engine) DBP(rec *subject.Record) *float64 {
	return e.score(reference.TableZDBP, rec.DBP, rec.DecimalAge, rec.Sex)
}

// TG scores triglycerides.
func (e *Engine) TG(rec *subject.Record) *float64 {
	return e.score(reference.TableZTG, rec.TG, rec.DecimalAge, rec.Sex)
}

// HDL scores HDL cholesterol. Low HDL gives a negative score even though it
// is the unfavourable direction.
func (e *Engine) HDL(rec *subject.Record) *float64 {
	return e.score(reference.TableZHDL, rec.HDL, rec.DecimalAge, rec.Sex)
}

// Glucose scores fasting glucose.
func (e *Engine) Glucose(rec *subject.Record) *float64 {
	return e.score(reference.TableZGlucose, rec.Glucose, rec.DecimalAge, rec.Sex)
}

// HOMA scores HOMA-IR, deriving it from glucose and insulin when needed.
func (e *Engine) HOMA(rec *subject.Record) *float64 {
	rec.Derive()

	return e.score(reference.TableZHOMA, rec.HOMAIR, rec.DecimalAge, rec.Sex)
}

// Compute returns every z-score for the record.
func (e *Engine) Compute(rec *subject.Record) Set {
	set := Set{
		Height:  e.Height(rec),
		WC:      e.Waist(rec),
		SBP:     e.SBP(rec),
		DBP:     e.DBP(rec),
		TAG:     e.TG(rec),
		HDL:     e.HDL(rec),
		Glucose: e.Glucose(rec),
		HOMA:    e.HOMA(rec),
	}

	set.ContinuousScore = continuous(set)

	return set
}

func continuous(s Set) *float64 {
	parts := []*float64{s.WC, s.SBP, s.TAG, s.HDL, s.HOMA}

	var sum float64

	for i, p := range parts {
		if p == nil {
			return nil
		}

		if i == 3 {
			sum -= *p
		} else {
			sum += *p
		}
	}

	return subject.Float(sum / float64(len(parts)))
}
