// File: entry.go
// Title: Log Fields
// Description: Key-value fields attached to log entries.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive log entry structure
// - 2026-10-17 v0.1.1: Entries are encoded by zerolog, only Fields remain

package log

import "time"

// Fields represents custom key-value pairs for structured logging
type Fields map[string]interface{}

// Field creates a single field for logging
func Field(key string, value interface{}) Fields {
	return Fields{key: value}
}

// Err creates an error field for logging
func Err(err error) Fields {
	return Fields{"error": err}
}

// Duration creates a duration field for logging
func Duration(key string, duration time.Duration) Fields {
	return Fields{key: duration}
}

// Merge combines several field sets, later keys win
func Merge(sets ...Fields) Fields {
	merged := make(Fields)
	for _, set := range sets {
		for k, v := range set {
			merged[k] = v
		}
	}
	return merged
}
