// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     units
// Description: Quantity parsing: "<number>[ ][unit]" with locale-aware numbers
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package units

import (
	"strings"

	"github.com/msto63/munits/foundation/utils/slicex"
	"github.com/msto63/munits/pkg/quantity"
)

// Parse reads "<number>[ ][unit]" as a quantity of kind. The unit must be
// registered for kind; the longest matching unit name wins. Without a unit
// the kind's display unit is used. Parse never fails loudly: any problem
// yields ok == false.
func (p *Provider) Parse(kind quantity.Kind, input string) (value float64, unit quantity.Quantity, ok bool) {
	value, descriptor, ok := p.ParseDescriptor(kind, input)
	if !ok {
		return 0, nil, false
	}
	return value, descriptor.Unit, true
}

// ParseDescriptor is Parse, returning the full descriptor of the matched unit
func (p *Provider) ParseDescriptor(kind quantity.Kind, input string) (float64, Descriptor, bool) {
	text := strings.TrimSpace(input)
	if text == "" {
		return 0, Descriptor{}, false
	}

	candidates, display := p.parseCandidates(kind)

	for _, descriptor := range candidates {
		if !strings.HasSuffix(text, descriptor.Name) {
			continue
		}
		number := strings.TrimSpace(strings.TrimSuffix(text, descriptor.Name))
		if number == "" {
			continue
		}
		if v, err := p.numbers.ParseFloat(number); err == nil {
			return v, descriptor, true
		}
	}

	if display == nil {
		return 0, Descriptor{}, false
	}
	v, err := p.numbers.ParseFloat(text)
	if err != nil {
		return 0, Descriptor{}, false
	}
	return v, *display, true
}

// parseCandidates returns the units of kind, longest name first, and the
// display unit
func (p *Provider) parseCandidates(kind quantity.Kind) ([]Descriptor, *Descriptor) {
	p.mu.RLock()
	candidates := make([]Descriptor, 0, len(p.units[kind]))
	for _, descriptor := range p.units[kind] {
		candidates = append(candidates, *descriptor)
	}
	var display *Descriptor
	if d, ok := p.display[kind]; ok {
		copied := *d
		display = &copied
	}
	p.mu.RUnlock()

	candidates = slicex.SortBy(candidates, func(a, b Descriptor) bool {
		if len(a.Name) != len(b.Name) {
			return len(a.Name) > len(b.Name)
		}
		return a.Name < b.Name
	})
	return candidates, display
}
