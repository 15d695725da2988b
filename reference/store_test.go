// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package reference

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/humaidq/metskids/subject"
)

func TestDefaultStoreHasRequiredTables(t *testing.T) {
	t.Parallel()

	s, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	for _, name := range RequiredTables() {
		if _, err := s.Table(name); err != nil {
			t.Fatalf("expected table %s: %v", name, err)
		}
	}

	if _, err := s.Table("nope"); !errors.Is(err, ErrUnknownTable) {
		t.Fatalf("expected ErrUnknownTable, got %v", err)
	}
}

func TestBuiltinColeCutoffsAreNested(t *testing.T) {
	t.Parallel()

	s, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	cole, err := s.Table(TableColeBMI)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	for _, row := range cole.Rows {
		for _, values := range [][]float64{row.Male, row.Female} {
			if values[1] <= values[0] {
				t.Fatalf("age %v: obese cutoff %v not above overweight cutoff %v", row.Age, values[1], values[0])
			}
		}
	}

	obese, ok := cole.Value(8, subject.SexMale, ColumnObese)
	if !ok || obese != 21.6 {
		t.Fatalf("expected male obese cutoff 21.6 at age 8, got %v", obese)
	}
}

func TestBloodPressureColumnsMatchHeightPercentiles(t *testing.T) {
	t.Parallel()

	s, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	sbp, err := s.Table(TableSBPP90)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	for _, p := range HeightPercentiles {
		if _, ok := sbp.Value(10, subject.SexFemale, HeightColumn(p)); !ok {
			t.Fatalf("expected column %s", HeightColumn(p))
		}
	}
}

func TestParseOverridesTable(t *testing.T) {
	t.Parallel()

	data := []byte(`
tables:
  - name: waist_p90
    source: local cohort
    columns: [p90]
    rows:
      - {age: 8, male: [70], female: [69]}
      - {age: 12, male: [80], female: [78]}
`)

	s, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	waist, err := s.Table(TableWaistP90)
	if err != nil {
		t.Fatalf("Table failed: %v", err)
	}

	if len(waist.Rows) != 2 {
		t.Fatalf("expected override rows, got %d", len(waist.Rows))
	}

	if v, ok := waist.Value(11, subject.SexFemale, ColumnP90); !ok || v != 78 {
		t.Fatalf("expected 78, got %v", v)
	}

	if _, err := s.Table(TableColeBMI); err != nil {
		t.Fatalf("expected built-in tables to remain: %v", err)
	}
}

func TestParseRejectsMalformedOverride(t *testing.T) {
	t.Parallel()

	data := []byte(`
tables:
  - name: waist_p90
    columns: [p90]
    rows: []
`)

	if _, err := Parse(data); !errors.Is(err, ErrEmptyTable) {
		t.Fatalf("expected ErrEmptyTable, got %v", err)
	}

	if _, err := Parse([]byte("tables: [")); !errors.Is(err, ErrMalformedTable) {
		t.Fatalf("expected ErrMalformedTable, got %v", err)
	}
}

func TestLoadRoundTripsMarshal(t *testing.T) {
	t.Parallel()

	s, err := Default()
	if err != nil {
		t.Fatalf("Default failed: %v", err)
	}

	data, err := s.Marshal()
	if err != nil {
		t.Fatalf("Marshal failed: %v", err)
	}

	path := filepath.Join(t.TempDir(), "reference.yaml")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if len(loaded.Names()) != len(s.Names()) {
		t.Fatalf("expected %d tables, got %d", len(s.Names()), len(loaded.Names()))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestPubertalNames(t *testing.T) {
	t.Parallel()

	if got := Pubertal(TableAhrensTGP90, true); got != "ahrens_tg_p90_pubertal" {
		t.Fatalf("unexpected pubertal name %q", got)
	}
	if got := Pubertal(TableAhrensTGP90, false); got != "ahrens_tg_p90_prepubertal" {
		t.Fatalf("unexpected prepubertal name %q", got)
	}
	if got := HeightColumn(50); got != "h50" {
		t.Fatalf("unexpected height column %q", got)
	}
}
