// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     repl
// Description: Message types for the REPL
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	"time"
)

// tickMsg is used for periodic refreshes, so catalog reloads show up
// without new input
type tickMsg time.Time

// refreshInterval between two tickMsgs
const refreshInterval = 2 * time.Second
