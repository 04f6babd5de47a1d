// File: stringx.go
// Title: Core String Utility Functions
// Description: Unicode-aware string helpers shared by configuration, the
//              unit catalog and the CLI tables.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2026-10-17 v0.2.0: Reduced to the helpers used by mUnits, added StripRunes

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank returns true if the string contains non-whitespace characters.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first non-blank string from the provided strings.
func FirstNonBlank(values ...string) string {
	for _, s := range values {
		if IsNotBlank(s) {
			return s
		}
	}
	return ""
}

// Truncate shortens s to maxLen runes, ending with ellipsis when cut.
func Truncate(s string, maxLen int, ellipsis string) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}

	ellipsisLen := utf8.RuneCountInString(ellipsis)
	if ellipsisLen >= maxLen {
		return string([]rune(s)[:maxLen])
	}
	return string([]rune(s)[:maxLen-ellipsisLen]) + ellipsis
}

// PadRight pads s with pad up to width runes. Longer strings are returned as-is.
func PadRight(s string, width int, pad rune) string {
	count := utf8.RuneCountInString(s)
	if count >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + (width-count)*utf8.RuneLen(pad))
	builder.WriteString(s)
	for i := count; i < width; i++ {
		builder.WriteRune(pad)
	}
	return builder.String()
}

// StripRunes removes every occurrence of the given runes from s.
func StripRunes(s string, runes ...rune) string {
	if len(runes) == 0 {
		return s
	}
	return strings.Map(func(r rune) rune {
		for _, strip := range runes {
			if r == strip {
				return -1
			}
		}
		return r
	}, s)
}
