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

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/metskids/db"
	"github.com/humaidq/metskids/reference"
)

// NewTablesCommand returns the tables command.
func NewTablesCommand() *cli.Command {
	return &cli.Command{
		Name:  "tables",
		Usage: "Validate and list the reference tables",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "dump",
				Usage: "print the tables as a YAML override file",
			},
			&cli.BoolFlag{
				Name:  "sync",
				Usage: "upsert the tables into the result store",
			},
			&cli.BoolFlag{
				Name:  "from-db",
				Usage: "use the tables stored in the result store as overrides",
			},
			newDatabaseURLFlag(),
		},
		Action: tables,
	}
}

func tables(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	store, err := reference.Load(cfg.Reference)
	if err != nil {
		return fmt.Errorf("failed to load reference tables: %w", err)
	}

	if cmd.Bool("sync") || cmd.Bool("from-db") {
		if err := openDatabase(ctx, cfg.DatabaseURL); err != nil {
			return err
		}
		defer db.Close()
	}

	if cmd.Bool("from-db") {
		stored, err := db.LoadReferenceTables(ctx)
		if err != nil {
			return err
		}

		store, err = reference.WithOverrides(stored...)
		if err != nil {
			return fmt.Errorf("stored reference tables are invalid: %w", err)
		}
	}

	if cmd.Bool("sync") {
		if err := db.SyncReferenceTables(ctx, store); err != nil {
			return err
		}
	}

	if cmd.Bool("dump") {
		data, err := store.Marshal()
		if err != nil {
			return fmt.Errorf("failed to encode tables: %w", err)
		}

		_, err = cmd.Root().Writer.Write(data)

		return err
	}

	_, err = fmt.Fprintln(cmd.Root().Writer, summarizeTables(store))

	return err
}

func summarizeTables(store *reference.Store) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Table", "Ages", "Rows", "Columns", "Source")

	for _, name := range store.Names() {
		tbl, err := store.Table(name)
		if err != nil {
			continue
		}

		lo, hi := tbl.AgeRange()
		t.Row(name,
			fmt.Sprintf("%g-%g", lo, hi),
			strconv.Itoa(len(tbl.Rows)),
			strings.Join(tbl.Columns, ","),
			tbl.Source)
	}

	return t.Render()
}
