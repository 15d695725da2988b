/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cohort

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/humaidq/metskids/mets"
	"github.com/humaidq/metskids/subject"
	"github.com/humaidq/metskids/zscore"
)

// missingCell is written to CSV for a missing value.
const missingCell = "NA"

// Format is an output file format.
type Format string

// Supported formats.
const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
)

// ParseFormat parses "csv" or "json".
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatCSV, FormatJSON:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// FormatFromPath guesses the format from a file extension, defaulting to CSV.
func FormatFromPath(path string) Format {
	if strings.EqualFold(filepath.Ext(path), ".json") {
		return FormatJSON
	}

	return FormatCSV
}

// Writer serialises pipeline rows. Classification columns are written for
// each of Definitions; z-score columns only when ZScores is set.
type Writer struct {
	Definitions []*mets.Definition
	ZScores     bool
}

// Header returns the CSV header.
func (w Writer) Header() []string {
	header := append([]string{}, subject.Fields...)
	header = append(header, subject.DerivedBMI, subject.DerivedHOMAIR, "obesity")

	for _, d := range w.Definitions {
		header = append(header, string(d.ID)+"_band")
		for _, c := range d.Components {
			header = append(header, string(d.ID)+"_"+string(c))
		}

		header = append(header, string(d.ID)+"_MetS")
	}

	if w.ZScores {
		header = append(header, zscore.Columns...)
	}

	return header
}

func (w Writer) csvRow(row Row) []string {
	rec := row.Record
	rec.Derive()

	out := make([]string, 0, len(subject.Fields)+3)
	out = append(out, rec.ID)

	for _, f := range subject.Fields[1:] {
		out = append(out, formatFloat(rec.Value(f)))
	}

	out = append(out, formatFloat(rec.BMI), formatFloat(rec.HOMAIR), orMissing(string(row.Obesity)))

	for _, d := range w.Definitions {
		res, ok := row.Result(d.ID)
		if !ok {
			for range len(d.Components) + 2 {
				out = append(out, missingCell)
			}

			continue
		}

		out = append(out, orMissing(res.Band))
		for _, c := range d.Components {
			out = append(out, res.Flag(c).String())
		}

		out = append(out, res.Verdict.String())
	}

	if w.ZScores {
		for _, v := range row.ZScores.Values() {
			out = append(out, formatFloat(v))
		}
	}

	return out
}

// WriteCSV writes rows as CSV with missing values as NA.
func (w Writer) WriteCSV(out io.Writer, rows []Row) error {
	cw := csv.NewWriter(out)

	if err := cw.Write(w.Header()); err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for i, row := range rows {
		if err := cw.Write(w.csvRow(row)); err != nil {
			return fmt.Errorf("write row %d: %w", i+1, err)
		}
	}

	cw.Flush()

	return cw.Error()
}

type jsonComponent struct {
	Component mets.Component `json:"component"`
	Flag      *string        `json:"flag"`
}

type jsonResult struct {
	Definition mets.DefinitionID `json:"definition"`
	Band       *string           `json:"band"`
	Verdict    *string           `json:"verdict"`
	Altered    int               `json:"altered"`
	Missing    int               `json:"missing"`
	Components []jsonComponent   `json:"components"`
}

type jsonRow struct {
	ID      string              `json:"id"`
	Inputs  map[string]*float64 `json:"inputs"`
	Obesity *string             `json:"obesity"`
	Results []jsonResult        `json:"results,omitempty"`
	ZScores map[string]*float64 `json:"zscores,omitempty"`
}

// WriteJSON writes rows as an indented JSON array with missing values as null.
func (w Writer) WriteJSON(out io.Writer, rows []Row) error {
	doc := make([]jsonRow, 0, len(rows))

	for _, row := range rows {
		rec := row.Record
		rec.Derive()

		jr := jsonRow{
			ID:      rec.ID,
			Inputs:  make(map[string]*float64, len(subject.Fields)+1),
			Obesity: optional(string(row.Obesity)),
		}

		for _, f := range subject.Fields[1:] {
			jr.Inputs[f] = rec.Value(f)
		}

		jr.Inputs[subject.DerivedBMI] = rec.BMI
		jr.Inputs[subject.DerivedHOMAIR] = rec.HOMAIR

		for _, d := range w.Definitions {
			res, ok := row.Result(d.ID)
			if !ok {
				continue
			}

			r := jsonResult{
				Definition: d.ID,
				Band:       optional(res.Band),
				Verdict:    optional(string(res.Verdict)),
				Altered:    res.Altered,
				Missing:    res.Missing,
			}

			for _, cf := range res.Components {
				r.Components = append(r.Components, jsonComponent{Component: cf.Component, Flag: optional(string(cf.Flag))})
			}

			jr.Results = append(jr.Results, r)
		}

		if w.ZScores {
			jr.ZScores = make(map[string]*float64, len(zscore.Columns))
			for i, v := range row.ZScores.Values() {
				jr.ZScores[zscore.Columns[i]] = v
			}
		}

		doc = append(doc, jr)
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")

	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}

	return nil
}

// Write writes rows in the given format.
func (w Writer) Write(out io.Writer, format Format, rows []Row) error {
	switch format {
	case FormatCSV:
		return w.WriteCSV(out, rows)
	case FormatJSON:
		return w.WriteJSON(out, rows)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
}

// WriteFile writes rows to path, or to stdout when path is "-" or empty.
func (w Writer) WriteFile(path string, format Format, rows []Row) error {
	if path == "" || path == "-" {
		return w.Write(os.Stdout, format, rows)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}

	if err := w.Write(f, format, rows); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}

	logger.Info("Wrote output", "path", path, "format", format, "rows", len(rows))

	return nil
}

func formatFloat(v *float64) string {
	if v == nil {
		return missingCell
	}

	return strconv.FormatFloat(*v, 'f', -1, 64)
}

func orMissing(s string) string {
	if s == "" {
		return missingCell
	}

	return s
}

func optional(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
