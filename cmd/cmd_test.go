// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package cmd

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/urfave/cli/v3"
)

const cohortCSV = `id,decimal_age,sex,height_m,weight_kg,wc_cm,dbp_mmHg,sbp_mmHg,tg_mg_dl,hdl_mg_dl,glucose_mg_dl,insulin_microU_ml,tanner_index
p1,8,0,1.3,37.18,75,60,100,70,55,85,5,1
p2,12,0,1.5,60,100,60,140,150,35,90,25,3
p3,4,1,,,,,,,,,,
`

func newApp(out *bytes.Buffer) *cli.Command {
	return &cli.Command{
		Name:      "metskids",
		Flags:     GlobalFlags(),
		Writer:    out,
		ErrWriter: out,
		Commands: []*cli.Command{
			NewClassifyCommand(),
			NewZScoresCommand(),
			NewFieldsCommand(),
			NewTablesCommand(),
			NewRunsCommand(),
		},
	}
}

func writeCohort(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "cohort.csv")
	if err := os.WriteFile(path, []byte(cohortCSV), 0o600); err != nil {
		t.Fatalf("write cohort: %v", err)
	}

	return path
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	if err != nil {
		t.Fatalf("open output: %v", err)
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		t.Fatalf("read output: %v", err)
	}

	return rows
}

func TestClassifyCommand(t *testing.T) {
	input := writeCohort(t)
	dir := t.TempDir()
	output := filepath.Join(dir, "out.csv")
	chart := filepath.Join(dir, "chart.html")

	var out bytes.Buffer

	err := newApp(&out).Run(context.Background(), []string{
		"metskids", "classify", "--input", input, "--output", output,
		"--definition", "cook,idf", "--workers", "2", "--chart", chart,
	})
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	rows := readCSV(t, output)
	if len(rows) != 4 {
		t.Fatalf("expected header and 3 rows, got %d", len(rows))
	}

	header := rows[0]
	cook := slices.Index(header, "cook_MetS")
	idf := slices.Index(header, "idf_MetS")

	if cook < 0 || idf < 0 || slices.Contains(header, "ahrens_MetS") {
		t.Fatalf("unexpected header: %v", header)
	}

	if rows[1][idf] != "No" || rows[2][cook] != "Yes" || rows[3][idf] != "Missing" {
		t.Fatalf("unexpected verdicts: %v / %v / %v", rows[1][idf], rows[2][cook], rows[3][idf])
	}

	if !strings.Contains(out.String(), "3 records") {
		t.Fatalf("expected summary in output, got %q", out.String())
	}

	if _, err := os.Stat(chart); err != nil {
		t.Fatalf("expected chart file: %v", err)
	}
}

func TestZScoresCommand(t *testing.T) {
	input := writeCohort(t)
	output := filepath.Join(t.TempDir(), "z.csv")

	var out bytes.Buffer

	if err := newApp(&out).Run(context.Background(), []string{"metskids", "zscores", input, "-o", output}); err != nil {
		t.Fatalf("zscores failed: %v", err)
	}

	rows := readCSV(t, output)

	col := slices.Index(rows[0], "Height_zscore")
	if col < 0 {
		t.Fatalf("missing z-score column in %v", rows[0])
	}

	if rows[1][col] == "NA" || rows[3][col] != "NA" {
		t.Fatalf("unexpected height z-scores: %q, %q", rows[1][col], rows[3][col])
	}
}

func TestFieldsCommand(t *testing.T) {
	var out bytes.Buffer

	if err := newApp(&out).Run(context.Background(), []string{"metskids", "fields", "--definition", "ahrens"}); err != nil {
		t.Fatalf("fields failed: %v", err)
	}

	lines := strings.Fields(out.String())
	if !slices.Contains(lines, "insulin_microU_ml") || !slices.Contains(lines, "tanner_index") {
		t.Fatalf("expected insulin and tanner fields, got %v", lines)
	}

	out.Reset()

	err := newApp(&out).Run(context.Background(), []string{"metskids", "fields", "--definition", "who"})
	if err == nil {
		t.Fatalf("expected an error for an unknown definition")
	}
}

func TestTablesCommand(t *testing.T) {
	var out bytes.Buffer

	if err := newApp(&out).Run(context.Background(), []string{"metskids", "tables"}); err != nil {
		t.Fatalf("tables failed: %v", err)
	}

	if !strings.Contains(out.String(), "cole_bmi") || !strings.Contains(out.String(), "z_homa") {
		t.Fatalf("expected table listing, got %q", out.String())
	}
}

func TestClassifyRequiresInput(t *testing.T) {
	var out bytes.Buffer

	err := newApp(&out).Run(context.Background(), []string{"metskids", "classify"})
	if err != errInputRequired {
		t.Fatalf("expected errInputRequired, got %v", err)
	}
}

func TestRunsRequiresID(t *testing.T) {
	var out bytes.Buffer

	err := newApp(&out).Run(context.Background(), []string{"metskids", "runs", "show"})
	if err != errRunIDRequired {
		t.Fatalf("expected errRunIDRequired, got %v", err)
	}

	err = newApp(&out).Run(context.Background(), []string{"metskids", "runs", "delete", "not-a-uuid"})
	if err == nil || !strings.Contains(err.Error(), "invalid run id") {
		t.Fatalf("expected invalid run id error, got %v", err)
	}
}

func TestClassifyDoesNotKeepFlagsBetweenRuns(t *testing.T) {
	input := writeCohort(t)
	output := filepath.Join(t.TempDir(), "out.csv")

	var out bytes.Buffer

	err := newApp(&out).Run(context.Background(), []string{
		"metskids", "classify", "--input", input, "--output", output, "--definition", "cook",
	})
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	err = newApp(&out).Run(context.Background(), []string{"metskids", "classify"})
	if err != errInputRequired {
		t.Fatalf("expected errInputRequired on a fresh app, got %v", err)
	}
}

func TestClassifyEmptyDefinitionUsesAll(t *testing.T) {
	input := writeCohort(t)
	output := filepath.Join(t.TempDir(), "out.csv")

	var out bytes.Buffer

	err := newApp(&out).Run(context.Background(), []string{
		"metskids", "classify", "--input", input, "--output", output, "--definition", "", "--quiet",
	})
	if err != nil {
		t.Fatalf("classify failed: %v", err)
	}

	header := readCSV(t, output)[0]
	for _, col := range []string{"cook_MetS", "idf_MetS", "ahrens_MetS"} {
		if !slices.Contains(header, col) {
			t.Fatalf("expected %s in header %v", col, header)
		}
	}
}
