/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package cohort runs the classification and z-score engines over batches of
// subject records and reads and writes cohort files.
package cohort

import (
	"context"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/humaidq/metskids/logging"
	"github.com/humaidq/metskids/mets"
	"github.com/humaidq/metskids/obesity"
	"github.com/humaidq/metskids/reference"
	"github.com/humaidq/metskids/subject"
	"github.com/humaidq/metskids/zscore"
)

var logger = logging.Logger(logging.SourceCohort)

// Row is the output for one input record.
type Row struct {
	Record  *subject.Record
	Obesity obesity.Category
	Results []mets.Result
	ZScores zscore.Set
}

// Result returns the classification under id, or false when the row was not
// classified with that definition.
func (r Row) Result(id mets.DefinitionID) (mets.Result, bool) {
	for _, res := range r.Results {
		if res.Definition == id {
			return res, true
		}
	}

	return mets.Result{}, false
}

// Pipeline classifies and scores records against one reference store.
type Pipeline struct {
	store   *reference.Store
	engine  *mets.Engine
	zscores *zscore.Engine

	// Workers is the number of records processed concurrently. Values
	// below 2 process the batch sequentially.
	Workers int
}

// NewPipeline returns a sequential pipeline.
func NewPipeline(store *reference.Store, engine *mets.Engine) *Pipeline {
	return &Pipeline{
		store:   store,
		engine:  engine,
		zscores: zscore.NewEngine(store),
		Workers: 1,
	}
}

// Engine returns the rule engine the pipeline classifies with.
func (p *Pipeline) Engine() *mets.Engine {
	return p.engine
}

// Classify evaluates one definition for a single record.
func (p *Pipeline) Classify(rec *subject.Record, id mets.DefinitionID) (mets.Result, error) {
	return p.engine.Classify(rec, id)
}

// ZScores computes the z-score set for a single record.
func (p *Pipeline) ZScores(rec *subject.Record) zscore.Set {
	return p.zscores.Compute(rec)
}

// Run classifies every record under each of ids and computes its z-scores.
// The output has one row per record in input order. Only an unknown
// definition or a cancelled context stops the batch.
func (p *Pipeline) Run(ctx context.Context, records []*subject.Record, ids []mets.DefinitionID) ([]Row, error) {
	for _, id := range ids {
		if _, err := p.engine.Definition(id); err != nil {
			return nil, err
		}
	}

	start := time.Now()
	rows := make([]Row, len(records))

	err := p.each(ctx, len(records), func(i int) error {
		rec := records[i]
		row := Row{Record: rec, Results: make([]mets.Result, 0, len(ids))}

		for _, id := range ids {
			res, err := p.engine.Classify(rec, id)
			if err != nil {
				return fmt.Errorf("record %d: %w", i+1, err)
			}

			row.Results = append(row.Results, res)
		}

		row.Obesity = obesity.ClassifyRecord(p.store, rec)
		row.ZScores = p.zscores.Compute(rec)
		rows[i] = row

		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Processed cohort",
		"records", len(records), "definitions", len(ids),
		"workers", p.workers(), "duration", time.Since(start))

	return rows, nil
}

func (p *Pipeline) workers() int {
	if p.Workers < 1 {
		return 1
	}

	return p.Workers
}

// each calls fn for every index in [0, n). Each index is handled by exactly
// one goroutine, so fn may write to its own slot of a shared slice.
func (p *Pipeline) each(ctx context.Context, n int, fn func(i int) error) error {
	if p.workers() == 1 {
		for i := range n {
			if err := ctx.Err(); err != nil {
				return err
			}

			if err := fn(i); err != nil {
				return err
			}
		}

		return nil
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(p.workers())

	for i := range n {
		if gctx.Err() != nil {
			break
		}

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			return fn(i)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	return ctx.Err()
}
