// SPDX-FileCopyrightText: 2025 Humaid Alqasimi
// SPDX-License-Identifier: Apache-2.0

package db

import (
	"slices"
	"testing"

	"github.com/humaidq/metskids/reference"
	"github.com/humaidq/metskids/subject"
)

func TestSyncReferenceTablesRoundTrip(t *testing.T) {
	resetDatabase(t)

	store := mustDefaultStore(t)

	if err := SyncReferenceTables(testContext(), store); err != nil {
		t.Fatalf("SyncReferenceTables failed: %v", err)
	}

	// A second sync replaces rows instead of duplicating them.
	if err := SyncReferenceTables(testContext(), store); err != nil {
		t.Fatalf("second SyncReferenceTables failed: %v", err)
	}

	tables, err := LoadReferenceTables(testContext())
	if err != nil {
		t.Fatalf("LoadReferenceTables failed: %v", err)
	}

	names := make([]string, 0, len(tables))
	for _, tbl := range tables {
		names = append(names, tbl.Name)
	}

	if !slices.Equal(names, store.Names()) {
		t.Fatalf("expected tables %v, got %v", store.Names(), names)
	}

	loaded, err := reference.NewStore(tables...)
	if err != nil {
		t.Fatalf("loaded tables do not prepare: %v", err)
	}

	want, _ := store.Table(reference.TableWaistP90)
	got, err := loaded.Table(reference.TableWaistP90)
	if err != nil {
		t.Fatalf("missing waist table: %v", err)
	}

	if len(got.Rows) != len(want.Rows) {
		t.Fatalf("expected %d rows, got %d", len(want.Rows), len(got.Rows))
	}

	v, ok := got.Value(8, subject.SexMale, reference.ColumnP90)
	if !ok || v != 71.2 {
		t.Fatalf("expected 71.2 at age 8, got %v (%v)", v, ok)
	}
}

func TestSyncReferenceTablesWithoutPool(t *testing.T) {
	saved := pool
	pool = nil

	defer func() { pool = saved }()

	if err := SyncReferenceTables(testContext(), mustDefaultStore(t)); err != ErrDatabaseConnectionNotInitialized {
		t.Fatalf("expected ErrDatabaseConnectionNotInitialized, got %v", err)
	}
}
