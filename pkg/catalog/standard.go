// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     catalog
// Description: Built-in SI and imperial unit set
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package catalog

import (
	_ "embed"
	"sync"

	"github.com/msto63/munits/foundation/core/config"
)

//go:embed standard.toml
var standardTOML []byte

var (
	standardOnce    sync.Once
	standardCatalog *Catalog
)

// Standard returns the built-in catalog with SI display units. Each call
// returns an independent copy.
func Standard() *Catalog {
	standardOnce.Do(func() {
		c, err := Parse(standardTOML, config.FormatTOML)
		if err != nil {
			panic("catalog: embedded standard catalog is invalid: " + err.Error())
		}
		c.source = "standard"
		standardCatalog = c
	})
	return standardCatalog.Merge(nil)
}
