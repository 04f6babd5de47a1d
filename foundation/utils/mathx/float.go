// File: float.go
// Title: Floating Point Helpers
// Description: Checks and comparisons for float64 magnitudes as used by unit
//              registration, catalog validation and conversion tests.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2026-10-17 v0.3.0: Replaced decimal arithmetic with float64 magnitude helpers

package mathx

import "math"

// DefaultEpsilon is the relative tolerance used by NearlyEqual callers
// that have no better bound
const DefaultEpsilon = 1e-12

// IsFinite reports whether x is neither NaN nor an infinity
func IsFinite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// IsPositiveFinite reports whether x is a finite number greater than zero,
// the requirement for a unit magnitude
func IsPositiveFinite(x float64) bool {
	return IsFinite(x) && x > 0
}

// NearlyEqual compares a and b with a relative tolerance. Values close to
// zero are compared absolutely.
func NearlyEqual(a, b, epsilon float64) bool {
	if a == b {
		return true
	}
	if !IsFinite(a) || !IsFinite(b) {
		return false
	}

	diff := math.Abs(a - b)
	scale := math.Max(math.Abs(a), math.Abs(b))
	if scale < 1 {
		return diff <= epsilon
	}
	return diff <= epsilon*scale
}
