// Package log provides structured logging for mUnits.
//
// Package: log
// Title: mUnits Structured Logging
// Description: The Logger keeps a small, immutable-by-clone API (levels,
//              Fields, named loggers, correlation IDs) and hands encoding to
//              zerolog. JSON output is the default; text and console
//              formats use zerolog's ConsoleWriter.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with structured logging
// - 2026-10-17 v0.2.0: zerolog backend, dropped hand-written formatters and async buffer
//
// Usage:
//
//	logger := log.NewWithConfig(log.Config{Level: log.LevelDebug, Format: log.FormatText})
//	logger = logger.WithName("units").WithField("locale", "de-DE")
//	logger.Debug("unit registered", log.Fields{"name": "km", "kind": "length"})
package log
