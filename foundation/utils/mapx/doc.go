// File: doc.go
// Title: Package Documentation for mapx
// Description: Package mapx provides generic map helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Trimmed to Keys, SortedKeys, Filter and TransformValues

// Package mapx provides generic map helpers. All functions return new maps
// or slices and leave their input untouched, which lets callers hand out
// snapshots of maps they guard with a lock.
package mapx
