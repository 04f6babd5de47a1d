// File: timer.go
// Title: Performance Timer
// Description: Measures the duration of an operation and logs it on Stop.
//              Used around catalog loading and reloads.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with checkpoints and result logging
// - 2026-10-17 v0.1.1: Reduced to Stop/StopWithError

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

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, t.timingFields(elapsed))
	}
	return elapsed
}

// StopWithError stops the timer and logs err at error level
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}
	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.log(LevelError, t.operation+" failed", err, t.timingFields(elapsed))
	}
	return elapsed
}

func (t *Timer) timingFields(elapsed time.Duration) Fields {
	return Merge(t.fields, Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Nanoseconds()) / 1e6,
	})
}
