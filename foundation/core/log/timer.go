// File: timer.go
// Title: Performance Timer
// Description: Implements Timer for measuring and logging the duration of
//              an operation, used by the engine to time pipeline stages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-19
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-19 v0.2.0: Checkpoints record stage durations

package log

import (
	"time"
)

// Timer represents a performance timer for measuring operation duration
type Timer struct {
	logger      *Logger
	operation   string
	startTime   time.Time
	lastCheck   time.Time
	fields      Fields
	level       Level
	stopped     bool
	checkpoints map[string]time.Duration
}

// NewTimer creates a new timer for the given operation
func NewTimer(logger *Logger, operation string) *Timer {
	now := time.Now()
	return &Timer{
		logger:      logger,
		operation:   operation,
		startTime:   now,
		lastCheck:   now,
		fields:      make(Fields),
		level:       LevelDebug,
		checkpoints: make(map[string]time.Duration),
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

// Checkpoint records the time spent since the previous checkpoint (or the
// start) under name and logs it at trace level
func (t *Timer) Checkpoint(name string) time.Duration {
	if t.stopped {
		return 0
	}

	now := time.Now()
	spent := now.Sub(t.lastCheck)
	t.lastCheck = now
	t.checkpoints[name] = spent

	if t.logger != nil {
		t.logger.Trace(t.operation+" checkpoint: "+name, Fields{
			"operation":  t.operation,
			"checkpoint": name,
			"spent_ms":   float64(spent.Nanoseconds()) / 1e6,
		})
	}
	return spent
}

// Checkpoints returns a copy of the recorded checkpoint durations
func (t *Timer) Checkpoints() map[string]time.Duration {
	result := make(map[string]time.Duration, len(t.checkpoints))
	for k, v := range t.checkpoints {
		result[k] = v
	}
	return result
}

// Stop stops the timer and logs the elapsed time
func (t *Timer) Stop() time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		t.logger.log(t.level, t.operation+" completed", nil, t.completionFields(elapsed, true))
	}
	return elapsed
}

// StopWithError stops the timer and logs err with the elapsed time
func (t *Timer) StopWithError(err error) time.Duration {
	if t.stopped {
		return 0
	}

	elapsed := t.Elapsed()
	t.stopped = true

	if t.logger != nil {
		level := t.level
		if level < LevelWarn {
			level = LevelWarn
		}
		t.logger.log(level, t.operation+" failed", err, t.completionFields(elapsed, false))
	}
	return elapsed
}

// IsRunning returns true if the timer is still running
func (t *Timer) IsRunning() bool {
	return !t.stopped
}

func (t *Timer) completionFields(elapsed time.Duration, success bool) Fields {
	fields := Fields{
		"operation":   t.operation,
		"duration_ms": float64(elapsed.Nanoseconds()) / 1e6,
		"success":     success,
	}
	return t.fields.Merge(fields)
}
