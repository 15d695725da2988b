// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"context"
	"testing"

	"github.com/humaidq/metskids/cohort"
	"github.com/humaidq/metskids/mets"
	"github.com/humaidq/metskids/reference"
	"github.com/humaidq/metskids/subject"
)

func testContext() context.Context {
	return context.Background()
}

func mustDefaultStore(t *testing.T) *reference.Store {
	t.Helper()

	store, err := reference.Default()
	if err != nil {
		t.Fatalf("failed to load reference store: %v", err)
	}

	return store
}

func mustClassify(t *testing.T, records []*subject.Record) []cohort.Row {
	t.Helper()

	store := mustDefaultStore(t)

	engine, err := mets.NewEngine(store)
	if err != nil {
		t.Fatalf("failed to create engine: %v", err)
	}

	rows, err := cohort.NewPipeline(store, engine).Run(testContext(), records, mets.Definitions())
	if err != nil {
		t.Fatalf("failed to classify: %v", err)
	}

	return rows
}
