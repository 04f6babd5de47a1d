// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     units
// Description: Unit provider with per-kind unit registry and display units
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package units

import (
	"strings"
	"sync"

	"golang.org/x/text/language"

	"github.com/msto63/munits/foundation/core/i18n"
	mdwlog "github.com/msto63/munits/foundation/core/log"
	"github.com/msto63/munits/foundation/utils/mapx"
	"github.com/msto63/munits/foundation/utils/mathx"
	"github.com/msto63/munits/foundation/utils/slicex"
	"github.com/msto63/munits/pkg/quantity"
)

// Descriptor is one registered unit
type Descriptor struct {
	Name     string
	Kind     quantity.Kind
	Unit     quantity.Quantity
	Sequence uint64 // registration order, kept on overwrite
}

// Source is the read side of a provider
type Source interface {
	Format(format string, q quantity.Quantity) (string, error)
	DisplayUnit(kind quantity.Kind) (quantity.Quantity, string, bool)
	Parse(kind quantity.Kind, input string) (float64, quantity.Quantity, bool)
}

// Registrar is the write side of a provider.
//
// Names are trimmed. A unit is ignored, with a warning in the log, when it
// is nil, its name is blank or its magnitude is zero, negative or not
// finite: formatting divides by that magnitude.
type Registrar interface {
	// RegisterUnit registers unit under name for the unit's kind,
	// replacing an earlier unit of the same kind and name
	RegisterUnit(unit quantity.Quantity, name string)
	// SetDisplayUnit registers unit like RegisterUnit and makes it the
	// display unit of its kind
	SetDisplayUnit(unit quantity.Quantity, name string)
}

// tables holds the registry and display units shared by all locale views
type tables struct {
	mu       sync.RWMutex
	units    map[quantity.Kind]map[string]*Descriptor
	display  map[quantity.Kind]*Descriptor
	sequence uint64
}

// Provider formats and parses quantities against registered units. It
// starts empty. All methods are safe for concurrent use.
type Provider struct {
	*tables
	numbers *i18n.NumberFormat
	logger  *mdwlog.Logger
}

// Option configures a Provider
type Option func(*Provider)

// Locale sets the locale used for number formatting and parsing (default: English)
func Locale(tag language.Tag) Option {
	return func(p *Provider) {
		p.numbers = i18n.NewNumberFormat(tag)
	}
}

// Logger sets the logger (default: the package default logger)
func Logger(logger *mdwlog.Logger) Option {
	return func(p *Provider) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New creates an empty provider
func New(options ...Option) *Provider {
	p := &Provider{
		tables: &tables{
			units:   make(map[quantity.Kind]map[string]*Descriptor),
			display: make(map[quantity.Kind]*Descriptor),
		},
		logger: mdwlog.GetDefault(),
	}
	for _, option := range options {
		option(p)
	}
	if p.numbers == nil {
		p.numbers = i18n.NewNumberFormat(language.English)
	}
	p.logger = p.logger.WithName("units")
	return p
}

// WithLocale returns a view that shares this provider's units but formats
// and parses numbers for tag
func (p *Provider) WithLocale(tag language.Tag) *Provider {
	return &Provider{
		tables:  p.tables,
		numbers: i18n.NewNumberFormat(tag),
		logger:  p.logger,
	}
}

// Locale returns the locale used for numbers
func (p *Provider) Locale() language.Tag {
	return p.numbers.Tag()
}

// RegisterUnit files unit under name for the unit's kind. An existing unit
// with the same name and kind is replaced. Units with a blank name or a
// magnitude that is zero, negative or not finite are ignored.
func (p *Provider) RegisterUnit(unit quantity.Quantity, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	p.register(unit, name)
}

// SetDisplayUnit registers unit under name and makes it the display unit
// of its kind
func (p *Provider) SetDisplayUnit(unit quantity.Quantity, name string) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if descriptor := p.register(unit, name); descriptor != nil {
		p.display[descriptor.Kind] = descriptor
		p.logger.Debug("display unit set", mdwlog.Fields{"kind": descriptor.Kind.String(), "unit": descriptor.Name})
	}
}

// register inserts or overwrites a unit; callers hold the write lock
func (p *Provider) register(unit quantity.Quantity, name string) *Descriptor {
	name = strings.TrimSpace(name)
	if unit == nil || name == "" {
		p.logger.Warn("unit ignored: missing unit or name", mdwlog.Fields{"unit": name})
		return nil
	}
	if v := unit.Value(); !mathx.IsPositiveFinite(v) {
		p.logger.Warn("unit ignored: magnitude must be positive and finite", mdwlog.Fields{
			"kind":  unit.Kind().String(),
			"unit":  name,
			"value": v,
		})
		return nil
	}

	kind := unit.Kind()
	byName, ok := p.units[kind]
	if !ok {
		byName = make(map[string]*Descriptor)
		p.units[kind] = byName
	}

	if existing, ok := byName[name]; ok {
		existing.Unit = unit
		p.logger.Debug("unit replaced", mdwlog.Fields{"kind": kind.String(), "unit": name})
		return existing
	}

	p.sequence++
	descriptor := &Descriptor{Name: name, Kind: kind, Unit: unit, Sequence: p.sequence}
	byName[name] = descriptor
	p.logger.Debug("unit registered", mdwlog.Fields{"kind": kind.String(), "unit": name})
	return descriptor
}

// GetUnit returns the unit registered under name. When several kinds use
// the same name, the earliest registration wins.
func (p *Provider) GetUnit(name string) (quantity.Quantity, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, false
	}

	p.mu.RLock()
	defer p.mu.RUnlock()

	var found *Descriptor
	for _, byName := range p.units {
		if descriptor, ok := byName[name]; ok {
			if found == nil || descriptor.Sequence < found.Sequence {
				found = descriptor
			}
		}
	}
	if found == nil {
		return nil, false
	}
	return found.Unit, true
}

// GetUnits returns a fresh map of all units registered for kind
func (p *Provider) GetUnits(kind quantity.Kind) map[string]quantity.Quantity {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return mapx.TransformValues(p.units[kind], func(d *Descriptor) quantity.Quantity {
		return d.Unit
	})
}

// Units returns copies of the descriptors registered for kind in
// registration order
func (p *Provider) Units(kind quantity.Kind) []Descriptor {
	p.mu.RLock()
	result := make([]Descriptor, 0, len(p.units[kind]))
	for _, descriptor := range p.units[kind] {
		result = append(result, *descriptor)
	}
	p.mu.RUnlock()

	return slicex.SortBy(result, func(a, b Descriptor) bool { return a.Sequence < b.Sequence })
}

// Kinds returns the kinds that have at least one registered unit, sorted
func (p *Provider) Kinds() []quantity.Kind {
	p.mu.RLock()
	defer p.mu.RUnlock()

	return mapx.SortedKeys(mapx.Filter(p.units, func(_ quantity.Kind, byName map[string]*Descriptor) bool {
		return len(byName) > 0
	}))
}

// DisplayUnit returns the display unit of kind and its name
func (p *Provider) DisplayUnit(kind quantity.Kind) (quantity.Quantity, string, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	descriptor, ok := p.display[kind]
	if !ok {
		return nil, "", false
	}
	return descriptor.Unit, descriptor.Name, true
}

// Unit returns a copy of the descriptor registered as name for kind
func (p *Provider) Unit(kind quantity.Kind, name string) (Descriptor, bool) {
	if strings.TrimSpace(name) == "" {
		return Descriptor{}, false
	}
	return p.lookup(kind, strings.TrimSpace(name))
}

// lookup returns a copy of the named unit of kind, or the display unit
// when name is empty
func (p *Provider) lookup(kind quantity.Kind, name string) (Descriptor, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()

	var descriptor *Descriptor
	if name == "" {
		descriptor = p.display[kind]
	} else {
		descriptor = p.units[kind][name]
	}
	if descriptor == nil {
		return Descriptor{}, false
	}
	return *descriptor, true
}

// hasUnit reports whether name is registered for kind
func (p *Provider) hasUnit(kind quantity.Kind, name string) bool {
	p.mu.RLock()
	defer p.mu.RUnlock()

	_, ok := p.units[kind][name]
	return ok
}
