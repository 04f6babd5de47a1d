// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used by the units provider, the
//              catalog loader and the configuration layer.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2026-10-17 v0.2.0: Replaced platform codes with units domain codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Units
	CodeNoDisplayUnit Code = "NO_DISPLAY_UNIT"
	CodeUnknownUnit   Code = "UNKNOWN_UNIT"
	CodeUnknownKind   Code = "UNKNOWN_KIND"
	CodeInvalidFormat Code = "INVALID_FORMAT"

	// Configuration and catalogs
	CodeConfigError      Code = "CONFIG_ERROR"
	CodeInvalidConfig    Code = "INVALID_CONFIG"
	CodeValidationFailed Code = "VALIDATION_FAILED"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeNoDisplayUnit, CodeUnknownUnit, CodeUnknownKind, CodeInvalidFormat,
		CodeConfigError, CodeInvalidConfig, CodeValidationFailed:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeNoDisplayUnit, CodeUnknownUnit, CodeUnknownKind, CodeInvalidFormat:
		return "units"
	case CodeConfigError, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}
