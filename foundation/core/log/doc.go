// Package log provides structured logging for the seqkit tools.
//
// Package: log
// Title: seqkit Structured Logging
// Description: A small structured logger with immutable With* builders,
//              typed field helpers, operation timers and integration with
//              the structured error package. Entries are encoded and written
//              by github.com/sirupsen/logrus.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging and error integration
// - 2025-02-12 v0.2.0: logrus backend replaces the hand-written formatters
//
// Usage:
//
//	import sklog "github.com/msto63/seqkit/foundation/core/log"
//
//	logger := sklog.New().
//		WithLevel(sklog.LevelDebug).
//		WithFormat(sklog.FormatText).
//		WithField("service", "seqx").
//		WithRequestID(runID)
//
//	logger.Info("input parsed", sklog.Int("length", len(items)))
//	logger.ErrorWithErr("generation refused", err)
//
//	timer := logger.StartTimer("permutations")
//	// ... work
//	timer.Stop()
//
// SetDefault installs a logger as the one GetDefault returns.
package log
