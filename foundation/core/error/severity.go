// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels for errors. The logger maps severity
//              to log level when reporting an *Error.
// Author: msto63
// Version: v0.1.1
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with severity levels
// - 2026-10-17 v0.1.1: Severity mapping for units domain codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad input that the caller can correct
	SeverityLow Severity = iota

	// SeverityMedium indicates an error with a workaround
	SeverityMedium

	// SeverityHigh indicates misconfiguration or a programming error
	SeverityHigh

	// SeverityCritical indicates the component cannot continue
	SeverityCritical
)

// String returns the string representation of the severity level
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "unknown"
	}
}

// ShouldAlert returns true if this severity level should trigger alerts
func (s Severity) ShouldAlert() bool {
	return s >= SeverityHigh
}

// GetSeverityFromCode determines appropriate severity level based on error code
func GetSeverityFromCode(code Code) Severity {
	switch code {
	case CodeInternal:
		return SeverityCritical
	case CodeNoDisplayUnit, CodeUnknownUnit, CodeConfigError, CodeInvalidConfig:
		return SeverityHigh
	case CodeInvalidInput, CodeNotFound, CodeValidationFailed, CodeInvalidFormat, CodeUnknownKind:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
