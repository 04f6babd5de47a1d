// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     logging
// Description: Factory functions for creating command loggers
// Author:      Mike Stoffels
// Created:     2025-12-06
// License:     MIT
// ============================================================================

package logging

import (
	"io"
	"os"

	"github.com/google/uuid"

	mdwlog "github.com/msto63/munits/foundation/core/log"
)

// LoggerConfig holds configuration for creating loggers
type LoggerConfig struct {
	// Logger name
	Name string

	// Log level (trace, debug, info, warn, error, fatal)
	Level string

	// Output format: "json", "text" or "console" (default: json)
	Format string

	// Output writer (default: stderr)
	Output io.Writer

	// Additional outputs besides Output
	AdditionalOutputs []io.Writer

	// Correlation ID attached to every entry; generated when empty
	CorrelationID string

	// Record caller file and line
	Caller bool
}

// DefaultLoggerConfig returns a default configuration
func DefaultLoggerConfig(name string) LoggerConfig {
	return LoggerConfig{
		Name:   name,
		Level:  "warn",
		Format: "text",
	}
}

// NewLogger creates a Foundation logger from cfg
func NewLogger(cfg LoggerConfig) *mdwlog.Logger {
	var output io.Writer = os.Stderr
	if cfg.Output != nil {
		output = cfg.Output
	}
	if len(cfg.AdditionalOutputs) > 0 {
		writers := append([]io.Writer{output}, cfg.AdditionalOutputs...)
		output = io.MultiWriter(writers...)
	}

	format, err := mdwlog.ParseFormat(cfg.Format)
	if err != nil {
		format = mdwlog.FormatJSON
	}

	correlationID := cfg.CorrelationID
	if correlationID == "" {
		correlationID = NewCorrelationID()
	}

	return mdwlog.NewWithConfig(mdwlog.Config{
		Level:        parseLevel(cfg.Level),
		Format:       format,
		Output:       output,
		Name:         cfg.Name,
		EnableCaller: cfg.Caller,
	}).WithCorrelationID(correlationID)
}

// NewSimpleLogger creates a logger with the default configuration
func NewSimpleLogger(name string) *mdwlog.Logger {
	return NewLogger(DefaultLoggerConfig(name))
}

// NewCorrelationID returns a fresh random correlation ID
func NewCorrelationID() string {
	return uuid.NewString()
}

// parseLevel converts a string level to mdwlog.Level, defaulting to info
func parseLevel(level string) mdwlog.Level {
	parsed, err := mdwlog.ParseLevel(level)
	if err != nil {
		return mdwlog.LevelInfo
	}
	return parsed
}
