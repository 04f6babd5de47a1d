// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     version
// Description: Central version information for the library and the CLI
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package version

import "fmt"

// Version constants
const (
	// Library version
	Library = "0.1.0"

	// Catalog format version understood by pkg/catalog
	CatalogFormat = "1"
)

// Set via -ldflags "-X github.com/msto63/munits/pkg/core/version.Commit=..."
var (
	Commit    = "dev"
	BuildDate = "unknown"
)

// String returns the full version line printed by `munits version`
func String() string {
	return fmt.Sprintf("munits %s (commit %s, built %s, catalog format %s)",
		Library, Commit, BuildDate, CatalogFormat)
}
