/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cohort

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"github.com/humaidq/metskids/subject"
)

// missingTokens are cell values read as a missing measurement.
var missingTokens = map[string]bool{
	"":     true,
	"na":   true,
	"n/a":  true,
	"nan":  true,
	"null": true,
	".":    true,
}

// ReadFile reads a cohort CSV file.
func ReadFile(path string) ([]*subject.Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open cohort: %w", err)
	}
	defer f.Close()

	records, err := ReadCSV(f)
	if err != nil {
		return nil, fmt.Errorf("read cohort %s: %w", path, err)
	}

	return records, nil
}

// ReadCSV reads subject records from CSV with a header row naming the
// columns. Unknown columns are ignored and absent columns leave the field
// missing. A cell that cannot be parsed is logged with its row number and
// read as missing.
func ReadCSV(r io.Reader) ([]*subject.Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, ErrNoHeader
		}

		return nil, fmt.Errorf("read header: %w", err)
	}

	columns := make(map[string]int, len(header))
	for i, h := range header {
		columns[normalizeHeader(h)] = i
	}

	known := 0
	for _, f := range subject.Fields {
		if _, ok := columns[normalizeHeader(f)]; ok {
			known++
		}
	}

	if known == 0 {
		return nil, fmt.Errorf("%w: no recognised columns in %v", ErrNoHeader, header)
	}

	var records []*subject.Record

	for line := 2; ; line++ {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read row %d: %w", line, err)
		}

		cell := func(field string) string {
			i, ok := columns[normalizeHeader(field)]
			if !ok || i >= len(row) {
				return ""
			}

			return strings.TrimSpace(row[i])
		}

		records = append(records, parseRecord(line, cell))
	}

	logger.Debug("Read cohort", "records", len(records), "columns", len(header))

	return records, nil
}

func normalizeHeader(h string) string {
	return strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
}

func parseRecord(line int, cell func(string) string) *subject.Record {
	rec := &subject.Record{ID: cell(subject.FieldID)}
	if rec.ID == "" {
		rec.ID = strconv.Itoa(line - 1)
	}

	num := func(field string) *float64 {
		v, err := ParseFloat(cell(field))
		if err != nil {
			logger.Warn("Invalid value, treating as missing", "row", line, "field", field, "error", err)
			return nil
		}

		return v
	}

	rec.DecimalAge = num(subject.FieldDecimalAge)
	rec.HeightM = num(subject.FieldHeight)
	rec.WeightKg = num(subject.FieldWeight)
	rec.WaistCm = num(subject.FieldWaist)
	rec.DBP = num(subject.FieldDBP)
	rec.SBP = num(subject.FieldSBP)
	rec.TG = num(subject.FieldTG)
	rec.HDL = num(subject.FieldHDL)
	rec.Glucose = num(subject.FieldGlucose)
	rec.Insulin = num(subject.FieldInsulin)

	sex, err := ParseSex(cell(subject.FieldSex))
	if err != nil {
		logger.Warn("Invalid value, treating as missing", "row", line, "field", subject.FieldSex, "error", err)
	}

	rec.Sex = sex

	tanner, err := ParseTanner(cell(subject.FieldTanner))
	if err != nil {
		logger.Warn("Invalid value, treating as missing", "row", line, "field", subject.FieldTanner, "error", err)
	}

	rec.Tanner = tanner

	return rec
}

// ParseFloat parses a measurement. Missing tokens and non-finite numbers
// give nil without an error.
func ParseFloat(s string) (*float64, error) {
	s = strings.TrimSpace(s)
	if missingTokens[strings.ToLower(s)] {
		return nil, nil
	}

	v, err := strconv.ParseFloat(strings.Replace(s, ",", ".", 1), 64)
	if err != nil {
		return nil, fmt.Errorf("not a number: %q", s)
	}

	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil, nil
	}

	return &v, nil
}

// ParseSex accepts 0/1 as well as m/f and male/female.
func ParseSex(s string) (*subject.Sex, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if missingTokens[s] {
		return nil, nil
	}

	switch s {
	case "0", "m", "male", "boy":
		return subject.SexPtr(subject.SexMale), nil
	case "1", "f", "female", "girl":
		return subject.SexPtr(subject.SexFemale), nil
	default:
		return nil, fmt.Errorf("unknown sex %q", s)
	}
}

// ParseTanner parses a Tanner stage between 1 and 5.
func ParseTanner(s string) (*int, error) {
	v, err := ParseFloat(s)
	if err != nil || v == nil {
		return nil, err
	}

	stage := int(*v)
	if float64(stage) != *v || stage < 1 || stage > 5 {
		return nil, fmt.Errorf("tanner stage out of range: %q", s)
	}

	return &stage, nil
}
