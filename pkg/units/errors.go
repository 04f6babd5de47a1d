// ============================================================================
// mUnits - Physikalische Größen und Einheiten
// ============================================================================
//
// Package:     units
// Description: Sentinel errors for provider misconfiguration
// Author:      Mike Stoffels
// Created:     2026-10-17
// License:     MIT
// ============================================================================

package units

import (
	"errors"

	mdwerror "github.com/msto63/munits/foundation/core/error"
	"github.com/msto63/munits/pkg/quantity"
)

var (
	// ErrNoDisplayUnit is returned by Format when no unit was requested and
	// the quantity's kind has no display unit
	ErrNoDisplayUnit = errors.New("no display unit configured")

	// ErrUnknownUnit is returned by Format when the requested unit is not
	// registered for the quantity's kind
	ErrUnknownUnit = errors.New("unknown unit")
)

// misconfigured builds the structured error returned by Format
func misconfigured(cause error, code mdwerror.Code, kind quantity.Kind, unit string) *mdwerror.Error {
	return mdwerror.Wrap(cause, "cannot format quantity").
		WithCode(code).
		WithOperation("units.Format").
		WithDetail("kind", kind.String()).
		WithDetail("unit", unit)
}
