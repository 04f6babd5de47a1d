// File: doc.go
// Title: Package Documentation for slicex
// Description: Package slicex provides generic slice helpers.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Trimmed to Filter, Map, Contains, Max and SortBy

// Package slicex provides generic slice helpers in functional style.
// Functions never modify their input; SortBy returns a sorted copy and
// keeps the order of equal elements.
package slicex
