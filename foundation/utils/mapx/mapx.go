// File: mapx.go
// Title: Core Map Utilities
// Description: Generic map helpers used by the unit registry: key listing,
//              filtering and value transformation.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive map utilities
// - 2026-10-17 v0.2.0: Reduced to the helpers used by mUnits, added SortedKeys

package mapx

import (
	"cmp"
	"slices"
)

// Keys returns a slice of all keys from the map in unspecified order
func Keys[K comparable, V any](m map[K]V) []K {
	if m == nil {
		return nil
	}

	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	return keys
}

// SortedKeys returns the keys of m in ascending order, never nil
func SortedKeys[K cmp.Ordered, V any](m map[K]V) []K {
	keys := make([]K, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

// Filter returns a new map with the entries for which predicate is true
func Filter[K comparable, V any](m map[K]V, predicate func(K, V) bool) map[K]V {
	result := make(map[K]V)
	for k, v := range m {
		if predicate(k, v) {
			result[k] = v
		}
	}
	return result
}

// TransformValues returns a new map with every value passed through
// transformer. The result is never nil.
func TransformValues[K comparable, V, R any](m map[K]V, transformer func(V) R) map[K]R {
	result := make(map[K]R, len(m))
	for k, v := range m {
		result[k] = transformer(v)
	}
	return result
}
