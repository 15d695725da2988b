/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/metskids/db"
)

// NewRunsCommand returns the runs command and its subcommands.
func NewRunsCommand() *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "Inspect cohort runs stored in the result store",
		Flags: []cli.Flag{newDatabaseURLFlag()},
		Commands: []*cli.Command{
			{
				Name:   "list",
				Usage:  "List stored runs, newest first",
				Action: listRuns,
			},
			{
				Name:      "show",
				Usage:     "Show verdict counts of a stored run",
				ArgsUsage: "RUN_ID",
				Action:    showRun,
			},
			{
				Name:      "delete",
				Usage:     "Delete a stored run and its results",
				ArgsUsage: "RUN_ID",
				Action:    deleteRun,
			},
		},
	}
}

func openRunStore(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	url := cfg.DatabaseURL
	if url == "" {
		url = cmd.String("database-url")
	}

	return openDatabase(ctx, url)
}

func runID(cmd *cli.Command) (uuid.UUID, error) {
	arg := cmd.Args().First()
	if arg == "" {
		return uuid.Nil, errRunIDRequired
	}

	id, err := uuid.Parse(arg)
	if err != nil {
		return uuid.Nil, fmt.Errorf("invalid run id %q: %w", arg, err)
	}

	return id, nil
}

func listRuns(ctx context.Context, cmd *cli.Command) error {
	if err := openRunStore(ctx, cmd); err != nil {
		return err
	}
	defer db.Close()

	runs, err := db.ListRuns(ctx)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Run", "Created", "Input", "Definitions", "Policy", "Records")

	for _, r := range runs {
		t.Row(r.ID.String(),
			r.CreatedAt.UTC().Format(time.RFC3339),
			r.Input,
			strings.Join(r.Definitions, ","),
			r.MissingPolicy,
			strconv.Itoa(r.Records))
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, t.Render())

	return err
}

func showRun(ctx context.Context, cmd *cli.Command) error {
	id, err := runID(cmd)
	if err != nil {
		return err
	}

	if err := openRunStore(ctx, cmd); err != nil {
		return err
	}
	defer db.Close()

	run, err := db.GetRun(ctx, id)
	if err != nil {
		return err
	}

	counts, err := db.CountVerdicts(ctx, id)
	if err != nil {
		return err
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Definition", "Verdict", "Records")

	for _, c := range counts {
		verdict := c.Verdict
		if verdict == "" {
			verdict = "Missing"
		}

		t.Row(c.Definition, verdict, strconv.Itoa(c.Count))
	}

	w := cmd.Root().Writer
	fmt.Fprintf(w, "Run %s: %s, %d records, policy %s\n",
		run.ID, run.Input, run.Records, run.MissingPolicy)

	_, err = fmt.Fprintln(w, t.Render())

	return err
}

func deleteRun(ctx context.Context, cmd *cli.Command) error {
	id, err := runID(cmd)
	if err != nil {
		return err
	}

	if err := openRunStore(ctx, cmd); err != nil {
		return err
	}
	defer db.Close()

	if err := db.DeleteRun(ctx, id); err != nil {
		return err
	}

	appLogger.Info("Deleted cohort run", "run", id)

	return nil
}
