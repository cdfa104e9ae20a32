// File: severity.go
// Title: Error Severity Levels
// Description: Defines severity levels and the default severity for each code.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation
// - 2025-08-14 v0.2.0: Severity mapping for calendar and format codes

package error

// Severity represents the severity level of an error
type Severity int

const (
	// SeverityLow indicates bad caller input; nothing is broken
	SeverityLow Severity = iota

	// SeverityMedium indicates a misuse the caller can recover from
	SeverityMedium

	// SeverityHigh indicates a broken environment (zone database, config file)
	SeverityHigh

	// SeverityCritical indicates an internal invariant violation
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

	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return SeverityHigh

	case CodeInvalidOperation, CodeUnknown:
		return SeverityMedium

	case CodeInvalidInput, CodeNotFound, CodeInvalidDate, CodeInvalidZone,
		CodeTypeMismatch, CodeInvalidFormat, CodeMonthLookup,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return SeverityLow

	default:
		return SeverityMedium
	}
}
