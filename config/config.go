/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config holds the run configuration shared by the CLI commands.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"

	"github.com/humaidq/metskids/cohort"
	"github.com/humaidq/metskids/logging"
	"github.com/humaidq/metskids/mets"
)

var (
	// ErrNoDefinitions is returned when no definition is selected.
	ErrNoDefinitions = errors.New("at least one definition is required")
	// ErrInvalidWorkers is returned for a worker count below one.
	ErrInvalidWorkers = errors.New("workers must be at least 1")
)

// AllDefinitions selects every built-in definition.
const AllDefinitions = "all"

// Config is the run configuration. Values come from defaults, then the YAML
// file, then command line flags.
type Config struct {
	// LogLevel is one of debug, info, warn, error.
	LogLevel string `yaml:"logLevel" default:"info"`
	// Reference is an optional YAML file overriding built-in reference tables.
	Reference string `yaml:"reference"`
	// Definitions lists the definitions to evaluate, or "all".
	Definitions []string `yaml:"definitions" default:"[\"all\"]"`
	// MissingPolicy is "determinable" or "complete-case".
	MissingPolicy string `yaml:"missingPolicy" default:"determinable"`
	// Workers is the number of records classified concurrently.
	Workers int `yaml:"workers" default:"1"`
	// DatabaseURL enables persisting runs when set.
	DatabaseURL string `yaml:"databaseURL"`
	// Output controls the classified file.
	Output Output `yaml:"output"`
}

// Output controls how results are written.
type Output struct {
	// Format is csv or json. Empty selects by file extension.
	Format string `yaml:"format"`
	// ZScores adds the z-score columns to classification output.
	ZScores bool `yaml:"zscores" default:"true"`
	// Chart is an optional HTML file for the prevalence chart.
	Chart string `yaml:"chart"`
}

// Default returns the configuration with every default applied.
func Default() (*Config, error) {
	cfg := &Config{}

	if err := defaults.Set(cfg); err != nil {
		return nil, fmt.Errorf("set config defaults: %w", err)
	}

	return cfg, nil
}

// Load reads a YAML config file over the defaults. An empty path returns the
// defaults.
func Load(path string) (*Config, error) {
	cfg, err := Default()
	if err != nil {
		return nil, err
	}

	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // user-provided config path
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks the configuration before any record is processed.
func (c *Config) Validate() error {
	if err := logging.ValidLevel(c.LogLevel); err != nil {
		return err
	}

	if _, err := c.DefinitionIDs(); err != nil {
		return err
	}

	if _, err := c.Policy(); err != nil {
		return err
	}

	if c.Workers < 1 {
		return fmt.Errorf("%w: %d", ErrInvalidWorkers, c.Workers)
	}

	if c.Output.Format != "" {
		if _, err := cohort.ParseFormat(c.Output.Format); err != nil {
			return err
		}
	}

	return nil
}

// DefinitionIDs resolves the configured definition names, expanding "all".
// Duplicates are dropped.
func (c *Config) DefinitionIDs() ([]mets.DefinitionID, error) {
	var ids []mets.DefinitionID

	seen := make(map[mets.DefinitionID]bool)

	for _, name := range c.Definitions {
		for _, part := range strings.Split(name, ",") {
			part = strings.TrimSpace(part)
			if part == "" {
				continue
			}

			var resolved []mets.DefinitionID

			if strings.EqualFold(part, AllDefinitions) {
				resolved = mets.Definitions()
			} else {
				id, err := mets.ParseDefinitionID(part)
				if err != nil {
					return nil, err
				}

				resolved = []mets.DefinitionID{id}
			}

			for _, id := range resolved {
				if !seen[id] {
					seen[id] = true
					ids = append(ids, id)
				}
			}
		}
	}

	if len(ids) == 0 {
		return nil, ErrNoDefinitions
	}

	return ids, nil
}

// Policy parses the missing-data policy.
func (c *Config) Policy() (mets.MissingPolicy, error) {
	return mets.ParseMissingPolicy(c.MissingPolicy)
}
