/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package main

import (
	"context"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/metskids/cmd"
	"github.com/humaidq/metskids/logging"
)

func main() {
	logging.Init()

	app := &cli.Command{
		Name:  "metskids",
		Usage: "Pediatric metabolic syndrome classification and z-scores",
		Flags: cmd.GlobalFlags(),
		Commands: []*cli.Command{
			cmd.NewClassifyCommand(),
			cmd.NewZScoresCommand(),
			cmd.NewFieldsCommand(),
			cmd.NewTablesCommand(),
			cmd.NewRunsCommand(),
			cmd.NewMigrateCommand(),
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		logging.Logger(logging.SourceApp).Fatal(err)
	}
}
