/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	"github.com/pressly/goose/v3"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/metskids/db"

	// Register pgx with database/sql for goose.
	_ "github.com/jackc/pgx/v5/stdlib"
)

// NewMigrateCommand returns the goose migration command.
func NewMigrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Result store migration commands",
		Flags: []cli.Flag{
			newDatabaseURLFlag(),
		},
		Commands: []*cli.Command{
			{
				Name:   "up",
				Usage:  "Run all pending migrations",
				Action: migrateUp,
			},
			{
				Name:   "down",
				Usage:  "Roll back the last migration",
				Action: migrateDown,
			},
			{
				Name:   "status",
				Usage:  "Show migration status",
				Action: migrateStatus,
			},
			{
				Name:  "create",
				Usage: "Create a new migration file <name>",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:  "sql",
						Usage: "Create a SQL migration (default)",
						Value: true,
					},
				},
				Action: migrateCreate,
			},
			{
				Name:   "version",
				Usage:  "Print the current version of the database",
				Action: migrateVersion,
			},
		},
	}
}

func getDB(ctx context.Context, cmd *cli.Command) (*sql.DB, error) {
	databaseURL := cmd.String("database-url")
	if databaseURL == "" {
		return nil, errDatabaseURLRequired
	}

	// Open a database/sql connection for goose
	sqlDB, err := sql.Open("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Test the connection
	if err := sqlDB.PingContext(ctx); err != nil {
		closeDB(sqlDB)
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	// Set goose to use embedded migrations from db package
	goose.SetBaseFS(db.GetEmbeddedMigrations())

	// Set dialect
	if err := goose.SetDialect("postgres"); err != nil {
		closeDB(sqlDB)
		return nil, fmt.Errorf("failed to set dialect: %w", err)
	}

	return sqlDB, nil
}

func closeDB(sqlDB *sql.DB) {
	if err := sqlDB.Close(); err != nil {
		appLogger.Warn("Failed to close migration connection", "error", err)
	}
}

func migrateUp(ctx context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeDB(sqlDB)

	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	appLogger.Info("Migrations completed successfully")

	return nil
}

func migrateDown(ctx context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeDB(sqlDB)

	if err := goose.DownContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to roll back migration: %w", err)
	}

	appLogger.Info("Migration rolled back successfully")

	return nil
}

func migrateStatus(ctx context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeDB(sqlDB)

	if err := goose.StatusContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("failed to get migration status: %w", err)
	}

	return nil
}

func migrateVersion(ctx context.Context, cmd *cli.Command) error {
	sqlDB, err := getDB(ctx, cmd)
	if err != nil {
		return err
	}
	defer closeDB(sqlDB)

	version, err := goose.GetDBVersionContext(ctx, sqlDB)
	if err != nil {
		return fmt.Errorf("failed to get database version: %w", err)
	}

	_, err = fmt.Fprintf(cmd.Root().Writer, "Database version: %d\n", version)

	return err
}

func migrateCreate(_ context.Context, cmd *cli.Command) error {
	args := cmd.Args()
	if args.Len() < 1 {
		return errMigrationNameRequired
	}
	name := args.First()

	// Note: This command is for development only and requires source code access
	// Create migration in the migrations directory (filesystem path, not embedded)
	migrationsDir := "db/migrations"
	if err := os.MkdirAll(migrationsDir, 0o755); err != nil {
		return fmt.Errorf("failed to create migrations directory: %w", err)
	}

	// Don't use embedded FS for create - we need to write to actual filesystem
	if err := goose.Create(nil, migrationsDir, name, "sql"); err != nil {
		return fmt.Errorf("failed to create migration: %w", err)
	}

	appLogger.Info("Created new migration", "dir", migrationsDir)

	return nil
}
