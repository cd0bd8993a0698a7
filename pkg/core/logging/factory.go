// ============================================================================
// seqkit - Sequence analysis toolkit
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating foundation loggers
// Author:      Mike Stoffels
// Created:     2025-02-07
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	sklog "github.com/msto63/seqkit/foundation/core/log"
	"github.com/msto63/seqkit/pkg/core/config"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Service name
	ServiceName string

	// Log level (trace, debug, info, warn, error)
	Level string

	// Output format: "json", "text" or "console" (default: text)
	Format string

	// Primary output (default: stderr, so results on stdout stay clean)
	Output io.Writer

	// Additional outputs
	AdditionalOutputs []io.Writer
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(serviceName string) LoggerConfig {
	return LoggerConfig{
		ServiceName: serviceName,
		Level:       "warn",
		Format:      "text",
	}
}

// FromConfig derives a logger configuration from the application config.
// Verbose forces debug level regardless of the configured one.
func FromConfig(serviceName string, cfg *config.Config, verbose bool) LoggerConfig {
	lc := DefaultLoggerConfig(serviceName)
	if cfg != nil {
		lc.Level = cfg.General.LogLevel
		lc.Format = cfg.General.LogFormat
	}
	if verbose {
		lc.Level = "debug"
	}
	return lc
}

// NewLogger creates a new foundation logger
func NewLogger(cfg LoggerConfig) *sklog.Logger {
	level, err := sklog.ParseLevel(cfg.Level)
	if err != nil {
		level = sklog.LevelWarn
	}

	format, err := sklog.ParseFormat(cfg.Format)
	if err != nil {
		format = sklog.FormatText
	}

	output := cfg.Output
	if output == nil {
		output = os.Stderr
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	return sklog.NewWithConfig(sklog.Config{
		Level:  level,
		Format: format,
		Output: output,
		Name:   cfg.ServiceName,
	})
}

// NewRunLogger creates a logger tagged with a fresh run ID so all entries of
// one invocation can be correlated. The ID is returned alongside.
func NewRunLogger(cfg LoggerConfig) (*sklog.Logger, string) {
	runID := uuid.NewString()
	return NewLogger(cfg).WithRequestID(runID).WithField("run_id", runID), runID
}
