// File: doc.go
// Title: Package Documentation for filex
// Description: Package filex provides file system existence checks.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation
// - 2026-10-17 v0.2.0: Trimmed to Exists, IsFile and IsDir

// Package filex provides file system checks that treat any stat error as
// "not there". Use them for searching and pre-checks; operations that
// need the reason for a failure should call os functions directly.
package filex
