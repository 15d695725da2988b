/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/humaidq/metskids/mets"
)

// NewFieldsCommand returns the fields command.
func NewFieldsCommand() *cli.Command {
	return &cli.Command{
		Name:  "fields",
		Usage: "List the input fields a definition needs",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "definition",
				Aliases:  []string{"d"},
				Required: true,
				Usage:    "cook, idf or ahrens",
			},
			&cli.FloatFlag{
				Name:  "age",
				Usage: "only list the fields used at this decimal age",
			},
		},
		Action: fields,
	}
}

func fields(_ context.Context, cmd *cli.Command) error {
	id, err := mets.ParseDefinitionID(cmd.String("definition"))
	if err != nil {
		return fmt.Errorf("%w (use one of cook, idf, ahrens)", err)
	}

	var names []string

	if cmd.IsSet("age") {
		names, err = mets.RequiredFieldsAt(id, cmd.Float("age"))
	} else {
		names, err = mets.RequiredFields(id)
	}

	if err != nil {
		return err
	}

	for _, name := range names {
		if _, err := fmt.Fprintln(cmd.Root().Writer, name); err != nil {
			return err
		}
	}

	return nil
}
