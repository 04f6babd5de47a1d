// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     catalog
// Description: Unit catalogs: TOML/YAML files that register units in bulk
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package catalog

import (
	"fmt"
	"os"
	"strings"

	"github.com/msto63/munits/foundation/core/config"
	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/foundation/utils/mathx"
	"github.com/msto63/munits/foundation/utils/stringx"
	"github.com/msto63/munits/pkg/quantity"
	"github.com/msto63/munits/pkg/units"
)

// Entry describes one unit
type Entry struct {
	Kind    string  `toml:"kind" yaml:"kind"`
	Name    string  `toml:"name" yaml:"name"`
	Factor  float64 `toml:"factor" yaml:"factor"`   // base-unit magnitude of one unit
	Display bool    `toml:"display" yaml:"display"` // make this the display unit of its kind
}

// Catalog is an ordered list of unit entries
type Catalog struct {
	Units  []Entry `toml:"unit" yaml:"unit"`
	source string
}

// Load reads a catalog file; the format follows the file extension
func Load(path string) (*Catalog, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		code := mdwerror.CodeConfigError
		if os.IsNotExist(err) {
			code = mdwerror.CodeNotFound
		}
		return nil, mdwerror.Wrap(err, "failed to read catalog").
			WithCode(code).
			WithOperation("catalog.Load").
			WithDetail("path", path)
	}

	c, err := Parse(content, config.DetectFormat(path))
	if err != nil {
		return nil, mdwerror.Wrap(err, "failed to load catalog").
			WithOperation("catalog.Load").
			WithDetail("path", path)
	}
	c.source = path
	return c, nil
}

// Parse decodes catalog content in the given format
func Parse(data []byte, format config.Format) (*Catalog, error) {
	c := &Catalog{}
	if err := config.Decode(data, format, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Source returns the file the catalog was loaded from, if any
func (c *Catalog) Source() string {
	return c.source
}

// Len returns the number of entries
func (c *Catalog) Len() int {
	return len(c.Units)
}

// Validate checks every entry and reports all problems at once
func (c *Catalog) Validate() error {
	var problems []string
	displays := make(map[string]string)

	for i, entry := range c.Units {
		label := fmt.Sprintf("unit %d (%s)", i+1, entry.Name)

		if stringx.IsBlank(entry.Name) {
			problems = append(problems, fmt.Sprintf("unit %d: name is blank", i+1))
		}
		if _, ok := quantity.Lookup(quantity.Kind(entry.Kind)); !ok {
			problems = append(problems, fmt.Sprintf("%s: unknown kind %q", label, entry.Kind))
		}
		if !mathx.IsPositiveFinite(entry.Factor) {
			problems = append(problems, fmt.Sprintf("%s: factor must be positive and finite, got %v", label, entry.Factor))
		}
		if entry.Display {
			if previous, exists := displays[entry.Kind]; exists {
				problems = append(problems, fmt.Sprintf("%s: kind %s already has display unit %s", label, entry.Kind, previous))
			}
			displays[entry.Kind] = entry.Name
		}
	}

	if len(problems) == 0 {
		return nil
	}
	return mdwerror.New("catalog validation failed: " + strings.Join(problems, "; ")).
		WithCode(mdwerror.CodeValidationFailed).
		WithOperation("catalog.Validate").
		WithDetail("source", c.source).
		WithDetail("problems", problems)
}

// Apply registers every entry with r in file order. Nothing is registered
// when the catalog is invalid.
func (c *Catalog) Apply(r units.Registrar) error {
	for _, entry := range c.Units {
		if _, ok := quantity.Lookup(quantity.Kind(entry.Kind)); !ok {
			return mdwerror.New("unknown quantity kind in catalog").
				WithCode(mdwerror.CodeUnknownKind).
				WithOperation("catalog.Apply").
				WithDetail("kind", entry.Kind).
				WithDetail("unit", entry.Name).
				WithDetail("source", c.source)
		}
	}
	if err := c.Validate(); err != nil {
		return err
	}

	for _, entry := range c.Units {
		constructor, _ := quantity.Lookup(quantity.Kind(entry.Kind))
		unit := constructor(entry.Factor)
		if entry.Display {
			r.SetDisplayUnit(unit, entry.Name)
		} else {
			r.RegisterUnit(unit, entry.Name)
		}
	}
	return nil
}

// Merge returns a catalog with the entries of c followed by those of other
func (c *Catalog) Merge(other *Catalog) *Catalog {
	merged := &Catalog{source: c.source}
	merged.Units = append(merged.Units, c.Units...)
	if other != nil {
		merged.Units = append(merged.Units, other.Units...)
	}
	return merged
}
