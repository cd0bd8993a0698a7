// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it together
//              with optional result fields when stopped.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-02-12
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with timing and checkpoints
// - 2025-02-12 v0.2.0: Checkpoints dropped, StopWithResult takes fields

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger    *Logger
	operation string
	startTime time.Time
	fields    Fields
	level     Level
	stopped   bool
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	return &Timer{
		logger:    logger,
		operation: operation,
		startTime: time.Now(),
		fields:    make(Fields),
		level:     LevelDebug,
	}
}

// WithLevel sets the log level for the timer completion message
func (t *Timer) WithLevel(level Level) *Timer {
	t.level = level
	return t
}

// WithField adds a field to be logged when the timer completes
func (t *Timer) WithField(key string, value interface{}) *Timer {
	t.fields[key] = value
	return t
}

// Elapsed returns the elapsed time since the timer was started
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.startTime)
}

// Stop stops the timer and logs the elapsed time. Stopping twice logs once
// and returns 0 the second time.
func (t *Timer) Stop() time.Duration {
	return t.StopWithResult(nil)
}

// StopWithResult stops the timer and logs the elapsed time with extra fields
func (t *Timer) StopWithResult(result Fields) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	fields := t.fields.Merge(result).Merge(Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Microseconds()) / 1000,
	})
	t.logger.log(t.level, "operation completed", nil, fields)
	return elapsed
}

// StopWithError stops the timer and logs the failure at error level
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	t.stopped = true

	elapsed := t.Elapsed()
	fields := t.fields.Merge(Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Microseconds()) / 1000,
	})
	t.logger.log(LevelError, "operation failed", err, fields)
	return elapsed
}

// IsRunning reports whether the timer has not been stopped yet
func (t *Timer) IsRunning() bool {
	return !t.stopped
}
