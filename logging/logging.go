/*
 * Copyright 2025 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package logging

import (
	"io"
	stdlog "log"
	"os"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// Log source tags used in structured logger contexts.
const (
	SourceApp       = "app"
	SourceReference = "reference"
	SourceEngine    = "engine"
	SourceCohort    = "cohort"
	SourceDB        = "db"
)

var (
	initOnce   sync.Once
	baseLogger *log.Logger

	// Source loggers are copies of the base logger, so level changes are
	// applied to each of them.
	mu      sync.Mutex
	sources []*log.Logger
)

// Init configures the base logger and stdlib log output.
func Init() {
	initOnce.Do(func() {
		baseLogger = newBase(os.Stderr)

		stdLogger := baseLogger.With("source", SourceApp).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})

		stdlog.SetFlags(0)
		stdlog.SetOutput(stdLogger.Writer())
	})
}

func newBase(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		TimeFunction:    log.NowUTC,
		TimeFormat:      time.RFC3339Nano,
		Level:           log.InfoLevel,
		ReportTimestamp: true,
		Formatter:       log.LogfmtFormatter,
	})
}

// ValidLevel reports whether level names a log level.
func ValidLevel(level string) error {
	_, err := log.ParseLevel(level)
	return err
}

// SetLevel changes the level of the base logger and every source logger.
// Unknown names keep the current level and return the parse error.
func SetLevel(level string) error {
	Init()

	lvl, err := log.ParseLevel(level)
	if err != nil {
		return err
	}

	mu.Lock()
	defer mu.Unlock()

	baseLogger.SetLevel(lvl)

	for _, l := range sources {
		l.SetLevel(lvl)
	}

	return nil
}

// Logger returns a logfmt logger tagged with the provided source.
func Logger(source string) *log.Logger {
	Init()

	mu.Lock()
	defer mu.Unlock()

	l := baseLogger.With("source", source)
	sources = append(sources, l)

	return l
}

// StdLogger returns a stdlib logger that writes logfmt output with a source.
func StdLogger(source string) *stdlog.Logger {
	Init()
	return baseLogger.With("source", source).StandardLog(log.StandardLogOptions{ForceLevel: log.InfoLevel})
}
