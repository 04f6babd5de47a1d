// Package error provides the structured error type used across mUnits.
//
// Package: error
// Title: mUnits Error Handling Framework
// Description: Structured errors with codes, severity, details and stack
//              traces. Unit lookups and parsing never produce errors; this
//              package carries misconfiguration faults (missing display
//              unit, unknown unit) and catalog/config failures.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2026-10-17
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with contextual errors and codes
// - 2026-10-17 v0.2.0: Narrowed codes to the units domain, errors.Is support
//
// Usage:
//
//	import mdwerror "github.com/msto63/munits/foundation/core/error"
//
//	err := mdwerror.New("no display unit configured").
//		WithCode(mdwerror.CodeNoDisplayUnit).
//		WithOperation("units.Format").
//		WithDetail("kind", "length")
//
//	if mdwerror.HasCode(err, mdwerror.CodeNoDisplayUnit) {
//		// register a display unit and retry
//	}
package error
