// File: slicex.go
// Title: Core Slice Utilities
// Description: Generic slice helpers used by the unit provider and the CLI
//              tables: filtering, mapping, stable sorting and maxima.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive slice utilities
// - 2026-10-17 v0.2.0: Reduced to the helpers used by mUnits, SortBy is stable

package slicex

import (
	"cmp"
	"slices"
)

// Filter returns a new slice with the elements for which predicate is true
func Filter[T any](slice []T, predicate func(T) bool) []T {
	if slice == nil {
		return nil
	}

	result := make([]T, 0, len(slice))
	for _, item := range slice {
		if predicate(item) {
			result = append(result, item)
		}
	}
	return result
}

// Map transforms each element using mapper
func Map[T, R any](slice []T, mapper func(T) R) []R {
	if slice == nil {
		return nil
	}

	result := make([]R, len(slice))
	for i, item := range slice {
		result[i] = mapper(item)
	}
	return result
}

// Contains reports whether element is in slice
func Contains[T comparable](slice []T, element T) bool {
	return slices.Contains(slice, element)
}

// Max returns the largest element; ok is false for an empty slice
func Max[T cmp.Ordered](slice []T) (T, bool) {
	var zero T
	if len(slice) == 0 {
		return zero, false
	}
	return slices.Max(slice), true
}

// SortBy returns a stably sorted copy using a comparison function
func SortBy[T any](slice []T, less func(T, T) bool) []T {
	if slice == nil || less == nil {
		return nil
	}

	result := slices.Clone(slice)
	slices.SortStableFunc(result, func(a, b T) int {
		if less(a, b) {
			return -1
		}
		if less(b, a) {
			return 1
		}
		return 0
	})
	return result
}
