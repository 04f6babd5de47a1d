// File: level.go
// Title: Log Level Definitions
// Description: Defines log levels for filtering and their mapping onto
//              zerolog levels.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with standard log levels
// - 2026-10-17 v0.1.1: zerolog level mapping

package log

import (
	"strings"

	"github.com/rs/zerolog"
)

// Level represents the importance level of a log message
type Level int

const (
	// LevelTrace is the most verbose level
	LevelTrace Level = iota

	// LevelDebug provides detailed information for debugging purposes
	LevelDebug

	// LevelInfo represents general informational messages
	LevelInfo

	// LevelWarn indicates potentially harmful situations
	LevelWarn

	// LevelError represents error conditions that need attention
	LevelError

	// LevelFatal represents errors that terminate the program
	LevelFatal

	// LevelAudit is always logged regardless of the minimum level
	LevelAudit
)

// String returns the string representation of the log level
func (l Level) String() string {
	switch l {
	case LevelTrace:
		return "trace"
	case LevelDebug:
		return "debug"
	case LevelInfo:
		return "info"
	case LevelWarn:
		return "warn"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	case LevelAudit:
		return "audit"
	default:
		return "unknown"
	}
}

// ShouldLog returns true if this level should be logged given the minimum level
func (l Level) ShouldLog(minLevel Level) bool {
	if l == LevelAudit {
		return true
	}
	return l >= minLevel
}

// zerolog returns the zerolog level used to encode entries of this level
func (l Level) zerolog() zerolog.Level {
	switch l {
	case LevelTrace:
		return zerolog.TraceLevel
	case LevelDebug:
		return zerolog.DebugLevel
	case LevelInfo, LevelAudit:
		return zerolog.InfoLevel
	case LevelWarn:
		return zerolog.WarnLevel
	case LevelError:
		return zerolog.ErrorLevel
	case LevelFatal:
		return zerolog.FatalLevel
	default:
		return zerolog.NoLevel
	}
}

// ParseLevel parses a string into a log level
func ParseLevel(level string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "trace", "trc":
		return LevelTrace, nil
	case "debug", "dbg":
		return LevelDebug, nil
	case "info", "inf", "information":
		return LevelInfo, nil
	case "warn", "wrn", "warning":
		return LevelWarn, nil
	case "error", "err":
		return LevelError, nil
	case "fatal", "ftl":
		return LevelFatal, nil
	case "audit", "aud":
		return LevelAudit, nil
	default:
		return LevelInfo, &ParseError{
			Input: level,
			Type:  "level",
		}
	}
}

// ParseError represents an error parsing a log configuration value
type ParseError struct {
	Input string
	Type  string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return "invalid " + e.Type + ": " + e.Input
}

// DefaultLevel returns the default log level
func DefaultLevel() Level {
	return LevelInfo
}
