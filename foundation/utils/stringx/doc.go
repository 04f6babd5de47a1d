// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides small Unicode-aware string helpers.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-17 v0.3.0: Trimmed to blank checks, truncation, padding and rune stripping

// Package stringx extends the standard strings package with the helpers
// mUnits needs in several places: blank checks for names and paths,
// rune-aware padding for unit tables (symbols such as "m²" and "°" are
// multi-byte), truncation for the REPL and StripRunes for removing locale
// group separators before number parsing.
package stringx
