/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/metskids/cohort"
)

// NewZScoresCommand returns the zscores command.
func NewZScoresCommand() *cli.Command {
	return &cli.Command{
		Name:      "zscores",
		Usage:     "Compute component z-scores for a cohort",
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
				Name:  "format",
				Usage: "output format (csv, json); defaults to the output file extension",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "number of records scored concurrently",
			},
		},
		Action: zscores,
	}
}

func zscores(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	input := inputPath(cmd)
	if input == "" {
		return errInputRequired
	}

	pipeline, err := newPipeline(cfg)
	if err != nil {
		return err
	}

	records, err := cohort.ReadFile(input)
	if err != nil {
		return err
	}

	rows, err := pipeline.Run(ctx, records, nil)
	if err != nil {
		return err
	}

	output := cmd.String("output")
	writer := cohort.Writer{ZScores: true}

	return writer.WriteFile(output, outputFormat(cfg, output), rows)
}
