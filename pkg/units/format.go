// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     units
// Description: Quantity formatting: "[%verb][ ][unit]" format strings
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package units

import (
	"regexp"
	"strings"

	mdwerror "github.com/msto63/munits/foundation/core/error"
	mdwlog "github.com/msto63/munits/foundation/core/log"
	"github.com/msto63/munits/pkg/quantity"
)

// DefaultVerb renders the shortest representation of a number
const DefaultVerb = "%g"

// verbPattern matches a printf float verb at the start of a format string
var verbPattern = regexp.MustCompile(`^%[-+# 0]*\d*(\.\d+)?[eEfFgG]`)

// Format renders q as "<number> <unit>". The format string is an optional
// printf float verb followed by an optional unit name of q's kind; both
// default to "%g" and the kind's display unit. A format string that
// exactly names a registered unit is taken as the unit.
func (p *Provider) Format(format string, q quantity.Quantity) (string, error) {
	if q == nil {
		return "", mdwerror.New("cannot format nil quantity").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("units.Format")
	}

	kind := q.Kind()
	verb, unitName, err := p.splitFormat(kind, format)
	if err != nil {
		return "", err
	}

	descriptor, ok := p.lookup(kind, unitName)
	if !ok {
		if unitName == "" {
			err = misconfigured(ErrNoDisplayUnit, mdwerror.CodeNoDisplayUnit, kind, "")
		} else {
			err = misconfigured(ErrUnknownUnit, mdwerror.CodeUnknownUnit, kind, unitName)
		}
		p.logger.WarnWithErr("format failed", err, mdwlog.Fields{"kind": kind.String(), "unit": unitName})
		return "", err
	}

	value := q.Value() / descriptor.Unit.Value()
	return p.numbers.Format(verb, value) + " " + descriptor.Name, nil
}

// splitFormat separates the numeric verb from the unit name
func (p *Provider) splitFormat(kind quantity.Kind, format string) (verb, unit string, err error) {
	trimmed := strings.TrimSpace(format)
	if trimmed == "" {
		return DefaultVerb, "", nil
	}
	if p.hasUnit(kind, trimmed) {
		return DefaultVerb, trimmed, nil
	}
	if !strings.HasPrefix(trimmed, "%") {
		return DefaultVerb, trimmed, nil
	}

	verb = verbPattern.FindString(trimmed)
	if verb == "" {
		return "", "", mdwerror.New("invalid numeric format verb").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("units.Format").
			WithDetail("format", format)
	}
	return verb, strings.TrimSpace(trimmed[len(verb):]), nil
}
