// File: format.go
// Title: Log Output Formats
// Description: Output format selection. JSON is written by zerolog directly,
//              text and console go through zerolog.ConsoleWriter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with JSON, text, console and logfmt formatters
// - 2026-10-17 v0.2.0: Replaced formatters with zerolog writers, dropped logfmt

package log

import (
	"io"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// Format represents the output format for log messages
type Format int

const (
	// FormatJSON outputs structured JSON logs
	FormatJSON Format = iota

	// FormatText outputs human-readable text logs without colors
	FormatText

	// FormatConsole outputs colored console logs for development
	FormatConsole
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatJSON:
		return "json"
	case FormatText:
		return "text"
	case FormatConsole:
		return "console"
	default:
		return "unknown"
	}
}

// ParseFormat parses a string into a log format
func ParseFormat(format string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		return FormatJSON, nil
	case "text":
		return FormatText, nil
	case "console":
		return FormatConsole, nil
	default:
		return FormatJSON, &ParseError{
			Input: format,
			Type:  "format",
		}
	}
}

// newWriter wraps output for the given format
func newWriter(format Format, output io.Writer) io.Writer {
	switch format {
	case FormatText, FormatConsole:
		return zerolog.ConsoleWriter{
			Out:        output,
			NoColor:    format == FormatText,
			TimeFormat: time.RFC3339,
		}
	default:
		return output
	}
}
