/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/humaidq/metskids/cohort"
	"github.com/humaidq/metskids/mets"
)

// Run is a stored cohort classification.
type Run struct {
	ID            uuid.UUID `db:"id"`
	Input         string    `db:"input"`
	Definitions   []string  `db:"definitions"`
	MissingPolicy string    `db:"missing_policy"`
	Records       int       `db:"records"`
	CreatedAt     time.Time `db:"created_at"`
}

// VerdictCount is the number of records with one verdict under one
// definition. An empty Verdict counts missing verdicts.
type VerdictCount struct {
	Definition string `db:"definition"`
	Verdict    string `db:"verdict"`
	Count      int    `db:"count"`
}

// CreateRunInput describes a cohort run to store.
type CreateRunInput struct {
	Input         string
	Definitions   []mets.DefinitionID
	MissingPolicy mets.MissingPolicy
	Rows          []cohort.Row
}

// SaveRun stores a run and every classification result in one transaction
// and returns the new run id.
func SaveRun(ctx context.Context, input CreateRunInput) (uuid.UUID, error) {
	if pool == nil {
		return uuid.Nil, ErrDatabaseConnectionNotInitialized
	}

	id := uuid.New()

	definitions := make([]string, len(input.Definitions))
	for i, d := range input.Definitions {
		definitions[i] = string(d)
	}

	tx, err := pool.Begin(ctx)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer func() {
		if err := tx.Rollback(ctx); err != nil && !errors.Is(err, pgx.ErrTxClosed) {
			logger.Warn("Failed to roll back run insert", "error", err)
		}
	}()

	_, err = tx.Exec(ctx, `
		INSERT INTO cohort_runs (id, input, definitions, missing_policy, records)
		VALUES ($1, $2, $3, $4, $5)
	`, id, input.Input, definitions, input.MissingPolicy.String(), len(input.Rows))
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to insert run: %w", err)
	}

	rows := make([][]any, 0, len(input.Rows)*len(input.Definitions))

	for i, row := range input.Rows {
		for _, res := range row.Results {
			flags := make(map[string]string, len(res.Components))
			for _, cf := range res.Components {
				flags[string(cf.Component)] = cf.Flag.String()
			}

			rows = append(rows, []any{
				id, i, row.Record.ID, string(res.Definition),
				nullable(res.Band), nullable(string(row.Obesity)), nullable(string(res.Verdict)),
				res.Altered, res.Missing, flags,
			})
		}
	}

	copied, err := tx.CopyFrom(ctx,
		pgx.Identifier{"cohort_results"},
		[]string{"run_id", "row_index", "record_id", "definition", "band", "obesity", "verdict", "altered", "missing", "flags"},
		pgx.CopyFromRows(rows),
	)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to copy results: %w", err)
	}

	if err := tx.Commit(ctx); err != nil {
		return uuid.Nil, fmt.Errorf("failed to commit run: %w", err)
	}

	logger.Info("Stored cohort run", "run", id, "records", len(input.Rows), "results", copied)

	return id, nil
}

// ListRuns returns stored runs, newest first.
func ListRuns(ctx context.Context) ([]Run, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	rows, err := pool.Query(ctx, `
		SELECT id, input, definitions, missing_policy, records, created_at
		FROM cohort_runs
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}

	runs, err := pgx.CollectRows(rows, pgx.RowToStructByName[Run])
	if err != nil {
		return nil, fmt.Errorf("failed to collect runs: %w", err)
	}

	return runs, nil
}

// GetRun returns one stored run.
func GetRun(ctx context.Context, id uuid.UUID) (*Run, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	rows, err := pool.Query(ctx, `
		SELECT id, input, definitions, missing_policy, records, created_at
		FROM cohort_runs
		WHERE id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to query run: %w", err)
	}

	run, err := pgx.CollectExactlyOneRow(rows, pgx.RowToAddrOfStructByName[Run])
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to collect run: %w", err)
	}

	return run, nil
}

// CountVerdicts tabulates a stored run per definition and verdict.
func CountVerdicts(ctx context.Context, id uuid.UUID) ([]VerdictCount, error) {
	if pool == nil {
		return nil, ErrDatabaseConnectionNotInitialized
	}

	rows, err := pool.Query(ctx, `
		SELECT definition, COALESCE(verdict, '') AS verdict, COUNT(*)::int AS count
		FROM cohort_results
		WHERE run_id = $1
		GROUP BY definition, verdict
		ORDER BY definition, verdict
	`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to count verdicts: %w", err)
	}

	counts, err := pgx.CollectRows(rows, pgx.RowToStructByName[VerdictCount])
	if err != nil {
		return nil, fmt.Errorf("failed to collect verdict counts: %w", err)
	}

	return counts, nil
}

// DeleteRun removes a run and its results.
func DeleteRun(ctx context.Context, id uuid.UUID) error {
	if pool == nil {
		return ErrDatabaseConnectionNotInitialized
	}

	tag, err := pool.Exec(ctx, `DELETE FROM cohort_runs WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete run: %w", err)
	}

	if tag.RowsAffected() == 0 {
		return fmt.Errorf("%w: %s", ErrRunNotFound, id)
	}

	return nil
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}

	return &s
}
