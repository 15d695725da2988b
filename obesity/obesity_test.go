// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package obesity

import (
	"testing"

	"github.com/humaidq/metskids/reference"
	"github.com/humaidq/metskids/subject"
)

func defaultStore(t *testing.T) *reference.Store {
	t.Helper()

	s, err := reference.Default()
	if err != nil {
		t.Fatalf("reference.Default failed: %v", err)
	}

	return s
}

func TestClassify(t *testing.T) {
	t.Parallel()

	store := defaultStore(t)

	tests := []struct {
		name string
		bmi  float64
		age  float64
		sex  subject.Sex
		want Category
	}{
		{name: "obese boy age 8", bmi: 22, age: 8, sex: subject.SexMale, want: CategoryObese},
		{name: "obese at cutoff", bmi: 21.6, age: 8, sex: subject.SexMale, want: CategoryObese},
		{name: "overweight boy age 8", bmi: 19, age: 8.1, sex: subject.SexMale, want: CategoryOverweight},
		{name: "normal boy age 8", bmi: 16, age: 7.9, sex: subject.SexMale, want: CategoryNormal},
		{name: "overweight girl age 14", bmi: 24, age: 14.1, sex: subject.SexFemale, want: CategoryOverweight},
		{name: "adult cutoff at 18", bmi: 30, age: 19, sex: subject.SexFemale, want: CategoryObese},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := Classify(store, &tt.bmi, &tt.age, &tt.sex)
			if got != tt.want {
				t.Fatalf("expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestClassifyMissingInputs(t *testing.T) {
	t.Parallel()

	store := defaultStore(t)
	bmi, age, sex := 20.0, 10.0, subject.SexMale

	if got := Classify(store, nil, &age, &sex); got != CategoryMissing {
		t.Fatalf("expected missing without BMI, got %s", got)
	}
	if got := Classify(store, &bmi, nil, &sex); got != CategoryMissing {
		t.Fatalf("expected missing without age, got %s", got)
	}
	if got := Classify(store, &bmi, &age, nil); got != CategoryMissing {
		t.Fatalf("expected missing without sex, got %s", got)
	}
	if got := Classify(nil, &bmi, &age, &sex); got != CategoryMissing {
		t.Fatalf("expected missing without store, got %s", got)
	}
	if CategoryMissing.String() != "Missing" {
		t.Fatalf("unexpected missing label %q", CategoryMissing.String())
	}
}

func TestClassifyIsMonotonicInBMI(t *testing.T) {
	t.Parallel()

	store := defaultStore(t)

	for _, sex := range []subject.Sex{subject.SexMale, subject.SexFemale} {
		for age := 2.0; age <= 18; age += 0.75 {
			prev := 0

			for bmi := 12.0; bmi <= 40; bmi += 0.25 {
				b, a, s := bmi, age, sex

				rank := Classify(store, &b, &a, &s).Rank()
				if rank < prev {
					t.Fatalf("sex %s age %v: category dropped at BMI %v", sex, age, bmi)
				}
				prev = rank
			}
		}
	}
}

func TestClassifyRecordDerivesBMI(t *testing.T) {
	t.Parallel()

	store := defaultStore(t)

	rec := &subject.Record{
		DecimalAge: subject.Float(8),
		Sex:        subject.SexPtr(subject.SexMale),
		HeightM:    subject.Float(1.25),
		WeightKg:   subject.Float(34.375), // BMI 22
	}

	if got := ClassifyRecord(store, rec); got != CategoryObese {
		t.Fatalf("expected Obese, got %s", got)
	}
	if rec.BMI == nil {
		t.Fatal("expected BMI cached on record")
	}
}
