/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/humaidq/metskids/reference"
)

// SyncReferenceTables upserts every table of the store, replacing the stored
// rows of each table so that removed ages do not linger.
func SyncReferenceTables(ctx context.Context, store *reference.Store) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	names := store.Names()
	logger.Infof("Syncing %d reference tables to database...", len(names))

	tx, err := pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("Failed to roll back reference sync", "error", err)
		}
	}()

	rowCount := 0

	for _, name := range names {
		t, err := store.Table(name)
		if err != nil {
			return err
		}

		batch := &pgx.Batch{}
		batch.Queue(`
			INSERT INTO reference_tables (name, source, columns)
			VALUES ($1, $2, $3)
			ON CONFLICT (name)
			DO UPDATE SET
				source = EXCLUDED.source,
				columns = EXCLUDED.columns,
				updated_at = now()
		`, t.Name, t.Source, t.Columns)
		batch.Queue(`DELETE FROM reference_rows WHERE table_name = $1`, t.Name)

		for _, row := range t.Rows {
			batch.Queue(`
				INSERT INTO reference_rows (table_name, age, male, female)
				VALUES ($1, $2, $3, $4)
			`, t.Name, row.Age, nilIfEmpty(row.Male), nilIfEmpty(row.Female))
		}

		if err := tx.SendBatch(ctx, batch).Close(); err != nil {
			return fmt.Errorf("failed to sync reference table %s: %w", t.Name, err)
		}

		rowCount += len(t.Rows)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit reference sync: %w", err)
	}

	logger.Infof("Successfully synced %d reference tables (%d rows)", len(names), rowCount)

	return nil
}

// LoadReferenceTables reads the stored tables back, ordered by name and age.
func LoadReferenceTables(ctx context.Context) ([]*reference.Table, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	rows, err := pool.Query(ctx, `
		SELECT t.name, t.source, t.columns, r.age, r.male, r.female
		FROM reference_tables t
		JOIN reference_rows r ON r.table_name = t.name
		ORDER BY t.name, r.age
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reference tables: %w", err)
	}
	defer rows.Close()

	var (
		tables  []*reference.Table
		current *reference.Table
	)

	for rows.Next() {
		var (
			name, source string
			columns      []string
			row          reference.Row
		)

		if err := rows.Scan(&name, &source, &columns, &row.Age, &row.Male, &row.Female); err != nil {
			return nil, fmt.Errorf("failed to scan reference row: %w", err)
		}

		if current == nil || current.Name != name {
			current = &reference.Table{Name: name, Source: source, Columns: columns}
			tables = append(tables, current)
		}

		current.Rows = append(current.Rows, row)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating reference rows: %w", err)
	}

	return tables, nil
}

func nilIfEmpty(values []float64) []float64 {
	if len(values) == 0 {
		return nil
	}

	return values
}
