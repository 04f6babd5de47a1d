// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     units
// Description: Type-parameterized access keyed by the quantity type
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package units

import (
	"github.com/msto63/munits/pkg/quantity"
)

// Format renders q; see Provider.Format
func Format[T quantity.Measure](p Source, format string, q T) (string, error) {
	return p.Format(format, q)
}

// TryGetDisplayUnit returns the display unit of T's kind
func TryGetDisplayUnit[T quantity.Measure](p Source) (unit T, name string, ok bool) {
	q, name, ok := p.DisplayUnit(quantity.KindOf[T]())
	if !ok {
		return unit, "", false
	}
	return as[T](q), name, true
}

// TryParse parses input as a quantity of type T; see Provider.Parse
func TryParse[T quantity.Measure](p Source, input string) (value float64, unit T, ok bool) {
	value, q, ok := p.Parse(quantity.KindOf[T](), input)
	if !ok {
		return 0, unit, false
	}
	return value, as[T](q), true
}

// as converts q to T, going through the base magnitude when q was
// registered with a different type of the same kind
func as[T quantity.Measure](q quantity.Quantity) T {
	if typed, ok := q.(T); ok {
		return typed
	}
	return T(q.Value())
}
