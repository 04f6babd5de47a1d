// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     repl
// Description: Conversion of one parsed quantity into every unit of its kind
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package repl

import (
	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/foundation/utils/stringx"
	"github.com/msto63/munits/pkg/quantity"
	"github.com/msto63/munits/pkg/units"
)

// Row is one line of the conversion table
type Row struct {
	Unit    string
	Text    string
	Display bool
	Source  bool // the unit the input was written in
}

// Convert parses input as a quantity of kind and renders it in every unit
// registered for kind, in registration order
func Convert(p *units.Provider, kind quantity.Kind, input, verb string) ([]Row, error) {
	if stringx.IsBlank(input) {
		return nil, nil
	}

	constructor, ok := quantity.Lookup(kind)
	if !ok {
		return nil, mdwerror.New("unknown quantity kind").
			WithCode(mdwerror.CodeUnknownKind).
			WithOperation("repl.Convert").
			WithDetail("kind", kind.String())
	}

	value, source, ok := p.ParseDescriptor(kind, input)
	if !ok {
		return nil, mdwerror.New("input is not a quantity of this kind").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("repl.Convert").
			WithDetail("kind", kind.String()).
			WithDetail("input", input)
	}

	q := constructor(value * source.Unit.Value())
	_, displayName, _ := p.DisplayUnit(kind)

	descriptors := p.Units(kind)
	rows := make([]Row, 0, len(descriptors))
	for _, descriptor := range descriptors {
		text, err := p.Format(verb+" "+descriptor.Name, q)
		if err != nil {
			return nil, err
		}
		rows = append(rows, Row{
			Unit:    descriptor.Name,
			Text:    text,
			Display: descriptor.Name == displayName,
			Source:  descriptor.Name == source.Name,
		})
	}
	return rows, nil
}
