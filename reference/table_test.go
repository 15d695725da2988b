// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"errors"
	"math"
	"testing"

	"github.com/humaidq/metskids/subject"
)

func testTable(t *testing.T) *Table {
	t.Helper()

	tbl := &Table{
		Name:    "test",
		Columns: []string{"a", "b"},
		Rows: []Row{
			{Age: 10, Male: []float64{10, 100}, Female: []float64{11, 110}},
			{Age: 2, Male: []float64{2, 20}, Female: []float64{3, 30}},
			{Age: 6, Male: []float64{6, 60}},
		},
	}

	if err := tbl.prepare(); err != nil {
		t.Fatalf("prepare failed: %v", err)
	}

	return tbl
}

func TestLookupNearestAge(t *testing.T) {
	t.Parallel()

	tbl := testTable(t)

	tests := []struct {
		name    string
		age     float64
		sex     subject.Sex
		wantAge float64
	}{
		{name: "below range", age: 0.5, sex: subject.SexMale, wantAge: 2},
		{name: "exact", age: 6, sex: subject.SexMale, wantAge: 6},
		{name: "closer to lower", age: 6.9, sex: subject.SexMale, wantAge: 6},
		{name: "closer to upper", age: 8.5, sex: subject.SexMale, wantAge: 10},
		{name: "above range", age: 17, sex: subject.SexMale, wantAge: 10},
		{name: "female skips male-only row", age: 6.5, sex: subject.SexFemale, wantAge: 10},
		{name: "female near lower", age: 5, sex: subject.SexFemale, wantAge: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m, err := tbl.Lookup(tt.age, tt.sex)
			if err != nil {
				t.Fatalf("Lookup failed: %v", err)
			}
			if m.Age != tt.wantAge {
				t.Fatalf("expected row age %v, got %v", tt.wantAge, m.Age)
			}
		})
	}
}

func TestLookupSexColumns(t *testing.T) {
	t.Parallel()

	tbl := testTable(t)

	male, err := tbl.Lookup(10, subject.SexMale)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}
	female, err := tbl.Lookup(10, subject.SexFemale)
	if err != nil {
		t.Fatalf("Lookup failed: %v", err)
	}

	if v, ok := male.Value("b"); !ok || v != 100 {
		t.Fatalf("expected male b=100, got %v (%v)", v, ok)
	}
	if v, ok := female.Value("b"); !ok || v != 110 {
		t.Fatalf("expected female b=110, got %v (%v)", v, ok)
	}
	if _, ok := female.Value("missing"); ok {
		t.Fatal("expected unknown column to be absent")
	}
}

func TestLookupIsIdempotent(t *testing.T) {
	t.Parallel()

	tbl := testTable(t)

	for _, age := range []float64{1, 3.3, 7.25, 9.99, 14} {
		first, err := tbl.Lookup(age, subject.SexMale)
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}
		second, err := tbl.Lookup(age, subject.SexMale)
		if err != nil {
			t.Fatalf("Lookup failed: %v", err)
		}

		a1, _ := first.Value("a")
		a2, _ := second.Value("a")
		if first.Age != second.Age || a1 != a2 {
			t.Fatalf("age %v: lookups differ (%v vs %v)", age, first.Age, second.Age)
		}
	}
}

func TestLookupRejectsInvalidInput(t *testing.T) {
	t.Parallel()

	tbl := testTable(t)

	if _, err := tbl.Lookup(math.NaN(), subject.SexMale); !errors.Is(err, ErrNoReferenceRow) {
		t.Fatalf("expected ErrNoReferenceRow for NaN age, got %v", err)
	}
	if _, err := tbl.Lookup(5, subject.Sex(7)); !errors.Is(err, ErrNoReferenceRow) {
		t.Fatalf("expected ErrNoReferenceRow for unknown sex, got %v", err)
	}
}

func TestPrepareRejectsBadTables(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		table *Table
		want  error
	}{
		{
			name:  "no rows",
			table: &Table{Name: "empty", Columns: []string{"a"}},
			want:  ErrEmptyTable,
		},
		{
			name: "one sex missing",
			table: &Table{Name: "male-only", Columns: []string{"a"}, Rows: []Row{
				{Age: 2, Male: []float64{1}},
			}},
			want: ErrEmptyTable,
		},
		{
			name:  "no columns",
			table: &Table{Name: "nocols", Rows: []Row{{Age: 2}}},
			want:  ErrMalformedTable,
		},
		{
			name: "wrong width",
			table: &Table{Name: "wide", Columns: []string{"a"}, Rows: []Row{
				{Age: 2, Male: []float64{1, 2}, Female: []float64{1}},
			}},
			want: ErrMalformedTable,
		},
		{
			name: "duplicate age",
			table: &Table{Name: "dup", Columns: []string{"a"}, Rows: []Row{
				{Age: 2, Male: []float64{1}, Female: []float64{1}},
				{Age: 2, Male: []float64{1}, Female: []float64{1}},
			}},
			want: ErrMalformedTable,
		},
		{
			name: "negative age",
			table: &Table{Name: "neg", Columns: []string{"a"}, Rows: []Row{
				{Age: -1, Male: []float64{1}, Female: []float64{1}},
			}},
			want: ErrMalformedTable,
		},
		{
			name: "non-finite value",
			table: &Table{Name: "nan", Columns: []string{"a"}, Rows: []Row{
				{Age: 1, Male: []float64{math.NaN()}, Female: []float64{1}},
			}},
			want: ErrMalformedTable,
		},
		{
			name: "duplicate column",
			table: &Table{Name: "dupcol", Columns: []string{"a", "a"}, Rows: []Row{
				{Age: 1, Male: []float64{1, 1}, Female: []float64{1, 1}},
			}},
			want: ErrMalformedTable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if err := tt.table.prepare(); !errors.Is(err, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, err)
			}
		})
	}
}
