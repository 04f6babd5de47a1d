// File: doc.go
// Title: Package Documentation for mathx
// Description: Package mathx provides float64 helpers for unit magnitudes.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with decimal arithmetic and business functions
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2026-10-17 v0.3.0: Float64 magnitude helpers

// Package mathx provides float64 helpers around unit magnitudes.
//
// A unit magnitude is the value of one unit expressed in the base unit of
// its kind (one foot is 0.3048 metres). Magnitudes must be positive and
// finite; IsPositiveFinite is the single place that rule lives.
// NearlyEqual compares conversion results that went through a division
// and a multiplication and may differ in the last bits.
package mathx
