// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package mets

import (
	"errors"
	"reflect"
	"testing"

	"github.com/humaidq/metskids/obesity"
	"github.com/humaidq/metskids/reference"
	"github.com/humaidq/metskids/subject"
)

func newTestEngine(t *testing.T, opts ...Option) *Engine {
	t.Helper()

	store, err := reference.Default()
	if err != nil {
		t.Fatalf("reference.Default failed: %v", err)
	}

	e, err := NewEngine(store, opts...)
	if err != nil {
		t.Fatalf("NewEngine failed: %v", err)
	}

	return e
}

// boy12 returns a 12 year old boy of median height with every input normal.
func boy12() *subject.Record {
	return &subject.Record{
		ID:         "boy12",
		DecimalAge: subject.Float(12),
		Sex:        subject.SexPtr(subject.SexMale),
		HeightM:    subject.Float(1.5),
		WeightKg:   subject.Float(40),
		WaistCm:    subject.Float(65),
		SBP:        subject.Float(100),
		DBP:        subject.Float(60),
		TG:         subject.Float(70),
		HDL:        subject.Float(55),
		Glucose:    subject.Float(85),
		Insulin:    subject.Float(5),
		Tanner:     subject.Int(3),
	}
}

func classify(t *testing.T, e *Engine, rec *subject.Record, id DefinitionID) Result {
	t.Helper()

	res, err := e.Classify(rec, id)
	if err != nil {
		t.Fatalf("Classify(%s) failed: %v", id, err)
	}

	return res
}

func TestCookVerdicts(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	tests := []struct {
		name   string
		mutate func(r *subject.Record)
		want   Verdict
		alter  int
	}{
		{
			name:   "all normal",
			mutate: func(*subject.Record) {},
			want:   VerdictNo,
		},
		{
			name: "two altered",
			mutate: func(r *subject.Record) {
				r.WaistCm = subject.Float(100)
				r.TG = subject.Float(150)
			},
			want:  VerdictNo,
			alter: 2,
		},
		{
			name: "three altered",
			mutate: func(r *subject.Record) {
				r.WaistCm = subject.Float(100)
				r.TG = subject.Float(150)
				r.HDL = subject.Float(35)
			},
			want:  VerdictYes,
			alter: 3,
		},
		{
			name: "four altered",
			mutate: func(r *subject.Record) {
				r.WaistCm = subject.Float(100)
				r.SBP = subject.Float(140)
				r.TG = subject.Float(150)
				r.HDL = subject.Float(35)
			},
			want:  VerdictYes,
			alter: 4,
		},
		{
			name: "three altered with missing inputs",
			mutate: func(r *subject.Record) {
				r.WaistCm = subject.Float(100)
				r.TG = subject.Float(150)
				r.HDL = subject.Float(35)
				r.Glucose = nil
				r.SBP = nil
			},
			want:  VerdictYes,
			alter: 3,
		},
		{
			name: "undeterminable",
			mutate: func(r *subject.Record) {
				r.WaistCm = subject.Float(100)
				r.TG = subject.Float(150)
				r.Glucose = nil
			},
			want:  VerdictMissing,
			alter: 2,
		},
		{
			name: "cannot reach three",
			mutate: func(r *subject.Record) {
				r.Glucose = nil
			},
			want: VerdictNo,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := boy12()
			tt.mutate(rec)

			res := classify(t, e, rec, Cook)
			if res.Verdict != tt.want {
				t.Fatalf("expected verdict %s, got %s (%+v)", tt.want, res.Verdict, res.Components)
			}

			if res.Altered != tt.alter {
				t.Fatalf("expected %d altered components, got %d", tt.alter, res.Altered)
			}
		})
	}
}

func TestCompleteCasePolicy(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t, WithMissingPolicy(PolicyCompleteCase))

	rec := boy12()
	rec.WaistCm = subject.Float(100)
	rec.TG = subject.Float(150)
	rec.HDL = subject.Float(35)
	rec.Glucose = nil

	if got := classify(t, e, rec, Cook).Verdict; got != VerdictMissing {
		t.Fatalf("expected missing verdict under complete-case, got %s", got)
	}

	rec = boy12()
	if got := classify(t, e, rec, Cook).Verdict; got != VerdictNo {
		t.Fatalf("expected No for complete record, got %s", got)
	}
}

func TestHDLIsAlteredWhenLow(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	rec := boy12()
	rec.HDL = subject.Float(30)

	if got := classify(t, e, rec, Cook).Flag(ComponentHDL); got != FlagAltered {
		t.Fatalf("expected low HDL to be altered, got %s", got)
	}

	rec = boy12()
	rec.HDL = subject.Float(70)

	if got := classify(t, e, rec, Cook).Flag(ComponentHDL); got != FlagNormal {
		t.Fatalf("expected high HDL to be normal, got %s", got)
	}
}

func TestIDFMissingWaist(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	rec := boy12()
	rec.WaistCm = nil
	rec.TG = subject.Float(200)
	rec.HDL = subject.Float(30)
	rec.Glucose = subject.Float(120)

	res := classify(t, e, rec, IDF)
	if res.Verdict != VerdictMissing {
		t.Fatalf("expected missing verdict without waist, got %s", res.Verdict)
	}

	if res.Flag(ComponentObesity) != FlagMissing {
		t.Fatalf("expected missing waist flag, got %s", res.Flag(ComponentObesity))
	}
}

func TestIDFNormalWaistIsNo(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	rec := boy12()
	rec.TG = subject.Float(200)
	rec.HDL = subject.Float(30)
	rec.Glucose = nil

	if got := classify(t, e, rec, IDF).Verdict; got != VerdictNo {
		t.Fatalf("expected No when waist is normal, got %s", got)
	}
}

func TestIDFAltered(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	rec := boy12()
	rec.WaistCm = subject.Float(90)
	rec.TG = subject.Float(160)
	rec.Glucose = subject.Float(105)

	res := classify(t, e, rec, IDF)
	if res.Band != "10-<16" {
		t.Fatalf("expected 10-<16 band, got %q", res.Band)
	}

	if res.Verdict != VerdictYes {
		t.Fatalf("expected Yes, got %s (%+v)", res.Verdict, res.Components)
	}
}

func TestIDFAdultHDLBySex(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	rec := &subject.Record{
		DecimalAge: subject.Float(17),
		Sex:        subject.SexPtr(subject.SexFemale),
		WaistCm:    subject.Float(85),
		HDL:        subject.Float(45),
	}

	res := classify(t, e, rec, IDF)
	if res.Flag(ComponentHDL) != FlagAltered {
		t.Fatalf("expected HDL 45 to be altered for an adult woman, got %s", res.Flag(ComponentHDL))
	}

	rec.Sex = subject.SexPtr(subject.SexMale)

	res = classify(t, e, rec, IDF)
	if res.Flag(ComponentHDL) != FlagNormal {
		t.Fatalf("expected HDL 45 to be normal for an adult man, got %s", res.Flag(ComponentHDL))
	}

	if res.Flag(ComponentObesity) != FlagNormal {
		t.Fatalf("expected 85 cm waist to be normal for an adult man, got %s", res.Flag(ComponentObesity))
	}
}

func TestIDFBelowSix(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	rec := &subject.Record{
		DecimalAge: subject.Float(4),
		Sex:        subject.SexPtr(subject.SexFemale),
		WaistCm:    subject.Float(90),
	}

	res := classify(t, e, rec, IDF)
	if res.Verdict != VerdictMissing || res.Band != "" {
		t.Fatalf("expected missing verdict with no band, got %s / %q", res.Verdict, res.Band)
	}

	if res.Missing != len(res.Components) {
		t.Fatalf("expected every component missing, got %d of %d", res.Missing, len(res.Components))
	}
}

func TestBloodPressureWithoutHeight(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	tests := []struct {
		name string
		sbp  float64
		want Flag
	}{
		{"above every height column", 200, FlagAltered},
		{"below every height column", 100, FlagNormal},
		{"depends on height", 120, FlagMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			rec := boy12()
			rec.HeightM = nil
			rec.SBP = subject.Float(tt.sbp)

			for _, id := range []DefinitionID{Cook, Ahrens} {
				if got := classify(t, e, rec, id).Flag(ComponentBloodPressure); got != tt.want {
					t.Fatalf("%s: expected %s, got %s", id, tt.want, got)
				}
			}
		})
	}
}

func TestIDFNeverDiagnosesBelowTen(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	rec := &subject.Record{
		DecimalAge: subject.Float(8),
		Sex:        subject.SexPtr(subject.SexMale),
		HeightM:    subject.Float(1.3),
		WaistCm:    subject.Float(80),
		SBP:        subject.Float(135),
		DBP:        subject.Float(60),
		TG:         subject.Float(160),
		HDL:        subject.Float(55),
		Glucose:    subject.Float(85),
	}

	res := classify(t, e, rec, IDF)
	if res.Band != "6-<10 (monitoring)" {
		t.Fatalf("expected monitoring band, got %q", res.Band)
	}

	if res.Verdict != VerdictNo {
		t.Fatalf("expected No below 10, got %s", res.Verdict)
	}

	for _, c := range []Component{ComponentObesity, ComponentBloodPressure, ComponentTriglycerides} {
		if res.Flag(c) != FlagAltered {
			t.Fatalf("expected %s flagged altered, got %s", c, res.Flag(c))
		}
	}

	rec.WaistCm = nil
	if got := classify(t, e, rec, IDF).Verdict; got != VerdictMissing {
		t.Fatalf("expected missing verdict without waist, got %s", got)
	}
}

func TestObeseEightYearOld(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	rec := &subject.Record{
		ID:         "p8",
		DecimalAge: subject.Float(8),
		Sex:        subject.SexPtr(subject.SexMale),
		HeightM:    subject.Float(1.3),
		WeightKg:   subject.Float(37.18),
		WaistCm:    subject.Float(75),
		SBP:        subject.Float(100),
		DBP:        subject.Float(60),
		TG:         subject.Float(70),
		HDL:        subject.Float(55),
		Glucose:    subject.Float(85),
	}

	res := classify(t, e, rec, IDF)
	if res.Obesity != obesity.CategoryObese {
		t.Fatalf("expected Obese, got %s", res.Obesity)
	}

	if res.Flag(ComponentObesity) != FlagAltered {
		t.Fatalf("expected waist to be altered, got %s", res.Flag(ComponentObesity))
	}

	if res.Verdict != VerdictNo {
		t.Fatalf("expected IDF verdict No, got %s", res.Verdict)
	}
}

func TestAhrensMissingInsulinAndTanner(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	rec := boy12()
	rec.Insulin = nil
	rec.Tanner = nil
	rec.WaistCm = subject.Float(100)

	res := classify(t, e, rec, Ahrens)
	if res.Flag(ComponentInsulinResistance) != FlagMissing {
		t.Fatalf("expected insulin resistance missing, got %s", res.Flag(ComponentInsulinResistance))
	}

	if res.Verdict != VerdictMissing {
		t.Fatalf("expected missing verdict, got %s (%+v)", res.Verdict, res.Components)
	}
}

func TestAhrensPubertalCutoffs(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	// TG 110 is above the prepubertal p90 but below the pubertal one.
	rec := boy12()
	rec.TG = subject.Float(110)
	rec.Tanner = subject.Int(1)

	if got := classify(t, e, rec, Ahrens).Flag(ComponentTriglycerides); got != FlagAltered {
		t.Fatalf("expected prepubertal TG flag altered, got %s", got)
	}

	rec = boy12()
	rec.TG = subject.Float(110)

	if got := classify(t, e, rec, Ahrens).Flag(ComponentTriglycerides); got != FlagNormal {
		t.Fatalf("expected pubertal TG flag normal, got %s", got)
	}
}

func TestAhrensYes(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	rec := boy12()
	rec.WaistCm = subject.Float(100)
	rec.Insulin = subject.Float(25)

	res := classify(t, e, rec, Ahrens)
	if res.Flag(ComponentInsulinResistance) != FlagAltered {
		t.Fatalf("expected insulin resistance altered, got %s", res.Flag(ComponentInsulinResistance))
	}

	if res.Verdict != VerdictYes {
		t.Fatalf("expected Yes, got %s", res.Verdict)
	}
}

func TestClassifyIsIdempotent(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)
	rec := boy12()
	rec.WaistCm = subject.Float(100)
	rec.Glucose = nil

	for _, id := range Definitions() {
		first := classify(t, e, rec, id)
		second := classify(t, e, rec, id)

		if !reflect.DeepEqual(first, second) {
			t.Fatalf("%s: results differ: %+v vs %+v", id, first, second)
		}
	}
}

func TestClassifyUnknownDefinition(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	_, err := e.Classify(boy12(), DefinitionID("who"))
	if !errors.Is(err, ErrUnknownDefinition) {
		t.Fatalf("expected ErrUnknownDefinition, got %v", err)
	}
}

func TestClassifyAll(t *testing.T) {
	t.Parallel()

	e := newTestEngine(t)

	results := e.ClassifyAll(boy12())
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	for i, id := range Definitions() {
		if results[i].Definition != id {
			t.Fatalf("result %d: expected %s, got %s", i, id, results[i].Definition)
		}
	}
}

func TestWithDefinition(t *testing.T) {
	t.Parallel()

	custom := &Definition{
		ID:         "waist-only",
		Components: []Component{ComponentObesity},
		Bands: []Band{{
			Label:       "all",
			Criteria:    []Criterion{{Component: ComponentObesity, Measures: []Measure{waistP90}}},
			Aggregation: Aggregation{MinAltered: 1},
		}},
	}

	e := newTestEngine(t, WithDefinition(custom))

	rec := boy12()
	rec.WaistCm = subject.Float(100)

	if got := classify(t, e, rec, custom.ID).Verdict; got != VerdictYes {
		t.Fatalf("expected Yes, got %s", got)
	}

	ids := e.Definitions()
	if ids[len(ids)-1] != custom.ID {
		t.Fatalf("expected custom definition listed last, got %v", ids)
	}

	store, _ := reference.Default()
	if _, err := NewEngine(store, WithDefinition(&Definition{ID: "empty"})); !errors.Is(err, ErrInvalidDefinition) {
		t.Fatalf("expected ErrInvalidDefinition, got %v", err)
	}
}

func TestAggregate(t *testing.T) {
	t.Parallel()

	flags := func(fs ...Flag) []ComponentFlag {
		out := make([]ComponentFlag, len(fs))
		for i, f := range fs {
			out[i] = ComponentFlag{Component: Component(rune('a' + i)), Flag: f}
		}

		return out
	}

	gated := Aggregation{Mandatory: "a", MinAltered: 2}
	plain := Aggregation{MinAltered: 2}
	monitor := Aggregation{Mandatory: "a", MinAltered: 2, MonitorOnly: true}

	tests := []struct {
		name   string
		agg    Aggregation
		flags  []ComponentFlag
		policy MissingPolicy
		want   Verdict
	}{
		{"gate missing", gated, flags(FlagMissing, FlagAltered, FlagAltered), PolicyDeterminable, VerdictMissing},
		{"gate normal", gated, flags(FlagNormal, FlagAltered, FlagAltered), PolicyDeterminable, VerdictNo},
		{"gate altered enough", gated, flags(FlagAltered, FlagAltered, FlagAltered), PolicyDeterminable, VerdictYes},
		{"gate altered not enough", gated, flags(FlagAltered, FlagAltered, FlagNormal), PolicyDeterminable, VerdictNo},
		{"gate altered open", gated, flags(FlagAltered, FlagAltered, FlagMissing), PolicyDeterminable, VerdictMissing},
		{"plain yes with missing", plain, flags(FlagAltered, FlagAltered, FlagMissing), PolicyDeterminable, VerdictYes},
		{"plain yes complete-case", plain, flags(FlagAltered, FlagAltered, FlagMissing), PolicyCompleteCase, VerdictMissing},
		{"plain no", plain, flags(FlagNormal, FlagNormal, FlagMissing), PolicyDeterminable, VerdictNo},
		{"monitor altered", monitor, flags(FlagAltered, FlagAltered, FlagAltered), PolicyDeterminable, VerdictNo},
		{"monitor gate missing", monitor, flags(FlagMissing, FlagAltered, FlagAltered), PolicyDeterminable, VerdictMissing},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := aggregate(tt.agg, tt.flags, tt.policy); got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}
