/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package mets

import (
	"fmt"
	"math"

	"github.com/humaidq/metskids/reference"
	"github.com/humaidq/metskids/subject"
	"github.com/humaidq/metskids/zscore"
)

// Cutoff resolves the threshold a measurement is compared against.
type Cutoff interface {
	// Resolve returns the cutoff for the subject in ctx, or false when it
	// cannot be determined.
	Resolve(ctx *evalContext) (float64, bool)
	// Fields lists the record fields the cutoff itself depends on.
	Fields() []string
	// String describes the cutoff for listings.
	String() string
}

// boundedCutoff is implemented by cutoffs that can still bracket their value
// when an input they depend on is missing.
type boundedCutoff interface {
	Bounds(ctx *evalContext) (lo, hi float64, ok bool)
}

// evalContext carries one record through a definition evaluation.
type evalContext struct {
	rec     *subject.Record
	store   *reference.Store
	zscores *zscore.Engine

	heightDone bool
	heightPct  *float64
}

// heightPercentile returns the subject's height-for-age percentile, computed
// once per evaluation.
func (c *evalContext) heightPercentile() *float64 {
	if !c.heightDone {
		c.heightDone = true

		if z := c.zscores.Height(c.rec); z != nil {
			p := zscore.Percentile(*z)
			c.heightPct = &p
		}
	}

	return c.heightPct
}

func (c *evalContext) lookup(table, column string) (float64, bool) {
	if c.rec.DecimalAge == nil || c.rec.Sex == nil {
		return 0, false
	}

	t, err := c.store.Table(table)
	if err != nil {
		return 0, false
	}

	return t.Value(*c.rec.DecimalAge, *c.rec.Sex, column)
}

// Fixed is a constant cutoff that may differ by sex.
type Fixed struct {
	Male   float64
	Female float64
}

// Both returns a Fixed cutoff shared by both sexes.
func Both(v float64) Fixed {
	return Fixed{Male: v, Female: v}
}

// Resolve implements Cutoff.
func (f Fixed) Resolve(ctx *evalContext) (float64, bool) {
	if f.Male == f.Female {
		return f.Male, true
	}

	if ctx.rec.Sex == nil {
		return 0, false
	}

	switch *ctx.rec.Sex {
	case subject.SexMale:
		return f.Male, true
	case subject.SexFemale:
		return f.Female, true
	default:
		return 0, false
	}
}

// Fields implements Cutoff.
func (f Fixed) Fields() []string {
	if f.Male == f.Female {
		return nil
	}

	return []string{subject.FieldSex}
}

func (f Fixed) String() string {
	if f.Male == f.Female {
		return fmt.Sprintf("%g", f.Male)
	}

	return fmt.Sprintf("%g (male) / %g (female)", f.Male, f.Female)
}

// AgeTable reads the cutoff from a column of an age- and sex-indexed table.
type AgeTable struct {
	Table  string
	Column string
}

// Resolve implements Cutoff.
func (a AgeTable) Resolve(ctx *evalContext) (float64, bool) {
	return ctx.lookup(a.Table, a.Column)
}

// Fields implements Cutoff.
func (a AgeTable) Fields() []string {
	return []string{subject.FieldDecimalAge, subject.FieldSex}
}

func (a AgeTable) String() string {
	return fmt.Sprintf("%s[%s]", a.Table, a.Column)
}

// HeightAdjusted reads a blood pressure table by age, sex and the column
// nearest to the subject's height-for-age percentile.
type HeightAdjusted struct {
	Table string
}

// Resolve implements Cutoff.
func (h HeightAdjusted) Resolve(ctx *evalContext) (float64, bool) {
	pct := ctx.heightPercentile()
	if pct == nil {
		return 0, false
	}

	return ctx.lookup(h.Table, reference.HeightColumn(nearestHeightPercentile(*pct)))
}

// Bounds returns the lowest and highest cutoff across every height column
// for the subject's age and sex.
func (h HeightAdjusted) Bounds(ctx *evalContext) (float64, float64, bool) {
	lo, hi := math.Inf(1), math.Inf(-1)

	for _, p := range reference.HeightPercentiles {
		v, ok := ctx.lookup(h.Table, reference.HeightColumn(p))
		if !ok {
			return 0, 0, false
		}

		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}

	return lo, hi, true
}

// Fields implements Cutoff.
func (h HeightAdjusted) Fields() []string {
	return []string{subject.FieldDecimalAge, subject.FieldSex, subject.FieldHeight}
}

func (h HeightAdjusted) String() string {
	return fmt.Sprintf("%s[height percentile]", h.Table)
}

func nearestHeightPercentile(p float64) float64 {
	best := reference.HeightPercentiles[0]
	for _, c := range reference.HeightPercentiles[1:] {
		if math.Abs(c-p) < math.Abs(best-p) {
			best = c
		}
	}

	return best
}

// PubertalTable reads the prepubertal or pubertal variant of a table,
// selected by the Tanner stage.
type PubertalTable struct {
	Base   string
	Column string
}

// Resolve implements Cutoff.
func (p PubertalTable) Resolve(ctx *evalContext) (float64, bool) {
	pubertal, ok := ctx.rec.Pubertal()
	if !ok {
		return 0, false
	}

	return ctx.lookup(reference.Pubertal(p.Base, pubertal), p.Column)
}

// Fields implements Cutoff.
func (p PubertalTable) Fields() []string {
	return []string{subject.FieldDecimalAge, subject.FieldSex, subject.FieldTanner}
}

func (p PubertalTable) String() string {
	return fmt.Sprintf("%s_{prepubertal,pubertal}[%s]", p.Base, p.Column)
}

// Lowest uses the smaller of two cutoffs; both must resolve.
type Lowest struct {
	A Cutoff
	B Cutoff
}

// Resolve implements Cutoff.
func (l Lowest) Resolve(ctx *evalContext) (float64, bool) {
	a, okA := l.A.Resolve(ctx)
	b, okB := l.B.Resolve(ctx)

	if !okA || !okB {
		return 0, false
	}

	return math.Min(a, b), true
}

// Fields implements Cutoff.
func (l Lowest) Fields() []string {
	return append(l.A.Fields(), l.B.Fields()...)
}

func (l Lowest) String() string {
	return fmt.Sprintf("min(%s, %s)", l.A, l.B)
}
