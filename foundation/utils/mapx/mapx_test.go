// File: mapx_test.go
// Title: Map Utilities Tests
// Description: Tests for the mapx helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Tests for the reduced helper set

package mapx

import (
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestKeys(t *testing.T) {
	keys := Keys(map[string]int{"m": 1, "km": 1000})
	sort.Strings(keys)
	if diff := cmp.Diff([]string{"km", "m"}, keys); diff != "" {
		t.Errorf("Keys mismatch (-want +got):\n%s", diff)
	}

	if Keys[string, int](nil) != nil {
		t.Error("Expected nil keys for nil map")
	}
}

func TestSortedKeys(t *testing.T) {
	keys := SortedKeys(map[string]bool{"mass": true, "length": true, "time": false})
	if diff := cmp.Diff([]string{"length", "mass", "time"}, keys); diff != "" {
		t.Errorf("SortedKeys mismatch (-want +got):\n%s", diff)
	}

	if keys := SortedKeys[string, int](nil); keys == nil || len(keys) != 0 {
		t.Errorf("Expected empty non-nil slice, got %#v", keys)
	}
}

func TestFilter(t *testing.T) {
	input := map[string]int{"m": 1, "km": 1000, "mm": 0}
	result := Filter(input, func(_ string, v int) bool { return v > 0 })

	if diff := cmp.Diff(map[string]int{"m": 1, "km": 1000}, result); diff != "" {
		t.Errorf("Filter mismatch (-want +got):\n%s", diff)
	}
	if len(input) != 3 {
		t.Error("Filter must not modify its input")
	}
}

func TestTransformValues(t *testing.T) {
	result := TransformValues(map[string]int{"a": 1, "b": 2}, func(v int) float64 { return float64(v) / 2 })
	if diff := cmp.Diff(map[string]float64{"a": 0.5, "b": 1}, result); diff != "" {
		t.Errorf("TransformValues mismatch (-want +got):\n%s", diff)
	}

	empty := TransformValues[string, int, int](nil, func(v int) int { return v })
	if empty == nil || len(empty) != 0 {
		t.Errorf("Expected empty non-nil map, got %#v", empty)
	}
}
