/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package reference

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/humaidq/metskids/logging"
)

var logger = logging.Logger(logging.SourceReference)

// Names of the tables every store must provide.
const (
	TableColeBMI  = "cole_bmi"
	TableWaistP90 = "waist_p90"
	TableSBPP90   = "sbp_p90"
	TableDBPP90   = "dbp_p90"

	TableAhrensTGP90      = "ahrens_tg_p90"
	TableAhrensHDLP10     = "ahrens_hdl_p10"
	TableAhrensGlucoseP90 = "ahrens_glucose_p90"
	TableAhrensHOMAP90    = "ahrens_homa_p90"

	TableZHeight  = "z_height"
	TableZWaist   = "z_waist"
	TableZSBP     = "z_sbp"
	TableZDBP     = "z_dbp"
	TableZTG      = "z_tg"
	TableZHDL     = "z_hdl"
	TableZGlucose = "z_glucose"
	TableZHOMA    = "z_homa"
)

// Column names shared by several tables.
const (
	ColumnOverweight = "overweight"
	ColumnObese      = "obese"
	ColumnP90        = "p90"
	ColumnValue      = "value"
	ColumnL          = "l"
	ColumnM          = "m"
	ColumnS          = "s"
)

// HeightPercentiles are the height percentile columns of the blood pressure
// tables, in column order.
var HeightPercentiles = []float64{5, 10, 25, 50, 75, 90, 95}

// HeightColumn returns the blood pressure table column for a height percentile.
func HeightColumn(p float64) string {
	return fmt.Sprintf("h%g", p)
}

// Pubertal returns the name of the pubertal or prepubertal variant of a table.
func Pubertal(base string, pubertal bool) string {
	if pubertal {
		return base + "_pubertal"
	}

	return base + "_prepubertal"
}

// RequiredTables lists every table name a store must contain.
func RequiredTables() []string {
	names := []string{
		TableColeBMI, TableWaistP90, TableSBPP90, TableDBPP90,
		TableZHeight, TableZWaist, TableZSBP, TableZDBP, TableZTG, TableZHDL, TableZGlucose, TableZHOMA,
	}

	for _, base := range []string{TableAhrensTGP90, TableAhrensHDLP10, TableAhrensGlucoseP90, TableAhrensHOMAP90} {
		names = append(names, Pubertal(base, false), Pubertal(base, true))
	}

	return names
}

// Store is a read-only set of prepared reference tables.
type Store struct {
	tables map[string]*Table
}

// NewStore validates and indexes the given tables. Later tables replace
// earlier ones with the same name.
func NewStore(tables ...*Table) (*Store, error) {
	s := &Store{tables: make(map[string]*Table, len(tables))}

	for _, t := range tables {
		if t == nil {
			continue
		}

		if err := t.prepare(); err != nil {
			return nil, err
		}

		s.tables[t.Name] = t
	}

	return s, nil
}

// Default returns a store holding the built-in reference tables.
func Default() (*Store, error) {
	s, err := NewStore(builtinTables()...)
	if err != nil {
		return nil, fmt.Errorf("failed to prepare built-in tables: %w", err)
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	return s, nil
}

// File is the YAML layout of a reference override file.
type File struct {
	Tables []*Table `yaml:"tables"`
}

// Load returns the built-in tables with any tables from the YAML file at path
// replacing the built-in table of the same name. An empty path returns the
// built-in store.
func Load(path string) (*Store, error) {
	if path == "" {
		return Default()
	}

	data, err := os.ReadFile(path) //nolint:gosec // User-provided reference file path
	if err != nil {
		return nil, fmt.Errorf("failed to read reference file: %w", err)
	}

	return Parse(data)
}

// Parse is Load for in-memory YAML content.
func Parse(data []byte) (*Store, error) {
	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedTable, err)
	}

	return WithOverrides(f.Tables...)
}

// WithOverrides returns the built-in tables with each of tables replacing the
// built-in table of the same name.
func WithOverrides(tables ...*Table) (*Store, error) {
	s, err := NewStore(append(builtinTables(), tables...)...)
	if err != nil {
		return nil, err
	}

	if err := s.Validate(); err != nil {
		return nil, err
	}

	for _, t := range tables {
		if t != nil {
			logger.Info("Overriding reference table", "table", t.Name, "rows", len(t.Rows))
		}
	}

	return s, nil
}

// Validate checks that every required table is present.
func (s *Store) Validate() error {
	for _, name := range RequiredTables() {
		if _, ok := s.tables[name]; !ok {
			return fmt.Errorf("%w: %s", ErrUnknownTable, name)
		}
	}

	return nil
}

// Table returns the table with the given name.
func (s *Store) Table(name string) (*Table, error) {
	t, ok := s.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownTable, name)
	}

	return t, nil
}

// Names returns the table names in sorted order.
func (s *Store) Names() []string {
	names := make([]string, 0, len(s.tables))
	for name := range s.tables {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}

// Marshal encodes the store in the override file layout.
func (s *Store) Marshal() ([]byte, error) {
	f := File{}
	for _, name := range s.Names() {
		f.Tables = append(f.Tables, s.tables[name])
	}

	return yaml.Marshal(f)
}
