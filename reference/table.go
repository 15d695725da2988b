/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package reference stores the age- and sex-indexed reference tables used for
// obesity classification, MetS cutoffs and z-scores, and matches subjects to
// the nearest tabulated age.
package reference

import (
	"fmt"
	"math"
	"sort"

	"github.com/humaidq/metskids/subject"
)

// Row is one tabulated age. Male and Female hold one value per table column;
// either may be empty when the source only covers one sex at that age.
type Row struct {
	Age    float64   `yaml:"age"`
	Male   []float64 `yaml:"male,flow,omitempty"`
	Female []float64 `yaml:"female,flow,omitempty"`
}

// Table is an immutable, age-ordered reference table.
type Table struct {
	Name    string   `yaml:"name"`
	Source  string   `yaml:"source,omitempty"`
	Columns []string `yaml:"columns,flow"`
	Rows    []Row    `yaml:"rows"`

	columns map[string]int
	// index holds, per sex, the positions of rows carrying that sex's values
	// in ascending age order.
	index [2][]int
}

// Match is the reference row selected for a subject.
type Match struct {
	Table string
	Age   float64

	columns map[string]int
	values  []float64
}

// Value returns the matched row's value for a column.
func (m Match) Value(column string) (float64, bool) {
	i, ok := m.columns[column]
	if !ok || i >= len(m.values) {
		return 0, false
	}

	return m.values[i], true
}

// prepare validates the table, sorts rows by age and builds the per-sex
// indexes. It must run before Lookup.
func (t *Table) prepare() error {
	if t.Name == "" {
		return fmt.Errorf("%w: table without name", ErrMalformedTable)
	}

	if len(t.Columns) == 0 {
		return fmt.Errorf("%w: %s has no columns", ErrMalformedTable, t.Name)
	}

	if len(t.Rows) == 0 {
		return fmt.Errorf("%w: %s", ErrEmptyTable, t.Name)
	}

	t.columns = make(map[string]int, len(t.Columns))
	for i, c := range t.Columns {
		if _, dup := t.columns[c]; dup || c == "" {
			return fmt.Errorf("%w: %s has duplicate or empty column %q", ErrMalformedTable, t.Name, c)
		}
		t.columns[c] = i
	}

	sort.SliceStable(t.Rows, func(i, j int) bool {
		return t.Rows[i].Age < t.Rows[j].Age
	})

	t.index = [2][]int{}

	for i, row := range t.Rows {
		if math.IsNaN(row.Age) || math.IsInf(row.Age, 0) || row.Age < 0 {
			return fmt.Errorf("%w: %s row %d has invalid age %v", ErrMalformedTable, t.Name, i, row.Age)
		}

		if i > 0 && t.Rows[i-1].Age == row.Age {
			return fmt.Errorf("%w: %s has duplicate age %v", ErrMalformedTable, t.Name, row.Age)
		}

		for sex, values := range [2][]float64{row.Male, row.Female} {
			if len(values) == 0 {
				continue
			}

			if len(values) != len(t.Columns) {
				return fmt.Errorf("%w: %s age %v has %d values for %s, want %d",
					ErrMalformedTable, t.Name, row.Age, len(values), subject.Sex(sex), len(t.Columns))
			}

			for _, v := range values {
				if math.IsNaN(v) || math.IsInf(v, 0) {
					return fmt.Errorf("%w: %s age %v has non-finite value", ErrMalformedTable, t.Name, row.Age)
				}
			}

			t.index[sex] = append(t.index[sex], i)
		}
	}

	for sex, idx := range t.index {
		if len(idx) == 0 {
			return fmt.Errorf("%w: %s has no rows for %s", ErrEmptyTable, t.Name, subject.Sex(sex))
		}
	}

	return nil
}

// Lookup returns the row whose age is closest to age among the rows that
// carry values for sex. When age is exactly between two rows the younger
// row is returned.
func (t *Table) Lookup(age float64, sex subject.Sex) (Match, error) {
	if !sex.Valid() || math.IsNaN(age) || math.IsInf(age, 0) {
		return Match{}, ErrNoReferenceRow
	}

	idx := t.index[sex]
	if len(idx) == 0 {
		return Match{}, ErrNoReferenceRow
	}

	i := sort.Search(len(idx), func(i int) bool {
		return t.Rows[idx[i]].Age >= age
	})

	var pos int

	switch {
	case i == 0:
		pos = idx[0]
	case i == len(idx):
		pos = idx[len(idx)-1]
	default:
		lower, upper := idx[i-1], idx[i]
		if age-t.Rows[lower].Age <= t.Rows[upper].Age-age {
			pos = lower
		} else {
			pos = upper
		}
	}

	row := t.Rows[pos]
	values := row.Male
	if sex == subject.SexFemale {
		values = row.Female
	}

	return Match{
		Table:   t.Name,
		Age:     row.Age,
		columns: t.columns,
		values:  values,
	}, nil
}

// Value is a shortcut for Lookup followed by Match.Value.
func (t *Table) Value(age float64, sex subject.Sex, column string) (float64, bool) {
	m, err := t.Lookup(age, sex)
	if err != nil {
		return 0, false
	}

	return m.Value(column)
}

// AgeRange returns the youngest and oldest tabulated ages.
func (t *Table) AgeRange() (float64, float64) {
	if len(t.Rows) == 0 {
		return 0, 0
	}

	return t.Rows[0].Age, t.Rows[len(t.Rows)-1].Age
}
