/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/metskids/cohort"
	"github.com/humaidq/metskids/db"
	"github.com/humaidq/metskids/mets"
	"github.com/humaidq/metskids/report"
)

// NewClassifyCommand returns the classify command with fresh flag state.
func NewClassifyCommand() *cli.Command {
	return &cli.Command{
		Name:      "classify",
		Usage:     "Classify a cohort under one or more MetS definitions",
		ArgsUsage: "[cohort.csv]",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "input",
				Aliases: []string{"i"},
				Usage:   "cohort CSV file",
			},
			&cli.StringFlag{
				Name:    "output",
				Aliases: []string{"o"},
				Value:   "-",
				Usage:   "output file (.csv or .json), - for stdout",
			},
			&cli.StringFlag{
				Name:    "definition",
				Aliases: []string{"d"},
				Usage:   "cook, idf, ahrens, a comma separated list, or all",
			},
			&cli.StringFlag{
				Name:  "format",
				Usage: "output format (csv, json); defaults to the output file extension",
			},
			&cli.StringFlag{
				Name:  "missing-policy",
				Usage: "determinable or complete-case",
			},
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "report a missing verdict whenever any component is missing",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of records classified concurrently",
			},
			&cli.StringFlag{
				Name:  "chart",
				Usage: "write an HTML prevalence chart to this file",
			},
			&cli.BoolFlag{
				Name:  "no-zscores",
				Usage: "leave the z-score columns out of the output",
			},
			&cli.BoolFlag{
				Name:    "quiet",
				Aliases: []string{"q"},
				Usage:   "do not print the summary tables",
			},
			newDatabaseURLFlag(),
		},
		Action: classify,
	}
}

func classify(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	input := inputPath(cmd)
	if input == "" {
		return errInputRequired
	}

	ids, err := cfg.DefinitionIDs()
	if err != nil {
		return err
	}

	pipeline, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	records, err := cohort.ReadFile(input)
	if err != nil {
		return err
	}

	appLogger.Info("Classifying cohort", "input", input, "records", len(records),
		"definitions", definitionList(ids), "policy", pipeline.Engine().Policy())

	rows, err := pipeline.Run(ctx, records, ids)
	if err != nil {
		return err
	}

	defs := make([]*mets.Definition, 0, len(ids))
	for _, id := range ids {
		d, err := pipeline.Engine().Definition(id)
		if err != nil {
			return err
		}

		defs = append(defs, d)
	}

	output := cmd.String("output")
	writer := cohort.Writer{Definitions: defs, ZScores: cfg.Output.ZScores}

	if err := writer.WriteFile(output, outputFormat(cfg, output), rows); err != nil {
		return err
	}

	summary := report.Tabulate(rows, defs)

	if !cmd.Bool("quiet") {
		// Keep stdout clean for piped output.
		var out io.Writer = cmd.Root().Writer
		if output == "" || output == "-" {
			out = cmd.Root().ErrWriter
		}

		if err := summary.WriteText(out); err != nil {
			return fmt.Errorf("failed to write summary: %w", err)
		}
	}

	if cfg.Output.Chart != "" {
		if err := summary.WriteChartFile(cfg.Output.Chart); err != nil {
			return err
		}

		appLogger.Info("Wrote prevalence chart", "path", cfg.Output.Chart)
	}

	if cfg.DatabaseURL != "" {
		if err := openDatabase(ctx, cfg.DatabaseURL); err != nil {
			return err
		}
		defer db.Close()

		runID, err := db.SaveRun(ctx, db.CreateRunInput{
			Input:         input,
			Definitions:   ids,
			MissingPolicy: pipeline.Engine().Policy(),
			Rows:          rows,
		})
		if err != nil {
			return err
		}

		appLogger.Info("Saved cohort run", "run", runID)
	}

	return nil
}

// inputPath returns --input or the first argument.
func inputPath(cmd *cli.Command) string {
	if in := cmd.String("input"); in != "" {
		return in
	}

	return cmd.Args().First()
}
