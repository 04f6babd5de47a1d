// File: stringx_test.go
// Title: String Utility Tests
// Description: Tests for the stringx helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-17 v0.2.0: Tests for the reduced helper set

package stringx

import "testing"

func TestIsBlank(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"", true},
		{"   ", true},
		{"\t\n", true},
		{" ", true},
		{"m", false},
		{" kg ", false},
	}

	for _, tt := range tests {
		if got := IsBlank(tt.input); got != tt.expected {
			t.Errorf("IsBlank(%q): expected %v, got %v", tt.input, tt.expected, got)
		}
		if got := IsNotBlank(tt.input); got == tt.expected {
			t.Errorf("IsNotBlank(%q): expected %v, got %v", tt.input, !tt.expected, got)
		}
	}
}

func TestFirstNonBlank(t *testing.T) {
	if got := FirstNonBlank("", "  ", "de", "en"); got != "de" {
		t.Errorf("Expected 'de', got '%s'", got)
	}
	if got := FirstNonBlank(" ", ""); got != "" {
		t.Errorf("Expected empty string, got '%s'", got)
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		input    string
		maxLen   int
		ellipsis string
		expected string
	}{
		{"kilometre", 20, "...", "kilometre"},
		{"kilometre", 6, "...", "kil..."},
		{"m²m²m²", 4, "…", "m²m…"},
		{"kilometre", 2, "...", "ki"},
		{"kilometre", 0, "...", ""},
	}

	for _, tt := range tests {
		if got := Truncate(tt.input, tt.maxLen, tt.ellipsis); got != tt.expected {
			t.Errorf("Truncate(%q, %d): expected %q, got %q", tt.input, tt.maxLen, tt.expected, got)
		}
	}
}

func TestPadRight(t *testing.T) {
	if got := PadRight("m²", 4, ' '); got != "m²  " {
		t.Errorf("Expected 'm²  ', got %q", got)
	}
	if got := PadRight("km/h", 2, ' '); got != "km/h" {
		t.Errorf("Expected unchanged string, got %q", got)
	}
	if got := PadRight("", 3, '.'); got != "..." {
		t.Errorf("Expected '...', got %q", got)
	}
}

func TestStripRunes(t *testing.T) {
	if got := StripRunes("1.234.567,5", '.'); got != "1234567,5" {
		t.Errorf("Expected '1234567,5', got %q", got)
	}
	if got := StripRunes("1 234", ' ', ' '); got != "1234" {
		t.Errorf("Expected '1234', got %q", got)
	}
	if got := StripRunes("12", []rune{}...); got != "12" {
		t.Errorf("Expected '12', got %q", got)
	}
}
