// File: codes.go
// Title: Error Code Definitions
// Description: Defines the error codes used to classify failures of the
//              calendar, time point and format engine packages.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core error codes
// - 2025-08-14 v0.2.0: Replaced service codes with calendar/time codes

package error

// Code represents a structured error code for categorizing errors
type Code string

const (
	// Generic codes
	CodeUnknown      Code = "UNKNOWN"
	CodeInternal     Code = "INTERNAL"
	CodeNotFound     Code = "NOT_FOUND"
	CodeInvalidInput Code = "INVALID_INPUT"

	// Calendar and time point
	CodeInvalidDate      Code = "INVALID_DATE"
	CodeInvalidZone      Code = "INVALID_ZONE"
	CodeTypeMismatch     Code = "TYPE_MISMATCH"
	CodeInvalidOperation Code = "INVALID_OPERATION"

	// Format engine
	CodeInvalidFormat Code = "INVALID_FORMAT"
	CodeMonthLookup   Code = "MONTH_LOOKUP"

	// Configuration and environment
	CodeConfigError    Code = "CONFIG_ERROR"
	CodeMissingConfig  Code = "MISSING_CONFIG"
	CodeInvalidConfig  Code = "INVALID_CONFIG"

	// Validation
	CodeValidationFailed Code = "VALIDATION_FAILED"
	CodeRequiredField    Code = "REQUIRED_FIELD"
	CodeValueOutOfRange  Code = "VALUE_OUT_OF_RANGE"
)

// String returns the string representation of the error code
func (c Code) String() string {
	return string(c)
}

// IsValid checks if the error code is a known valid code
func (c Code) IsValid() bool {
	switch c {
	case CodeUnknown, CodeInternal, CodeNotFound, CodeInvalidInput,
		CodeInvalidDate, CodeInvalidZone, CodeTypeMismatch, CodeInvalidOperation,
		CodeInvalidFormat, CodeMonthLookup,
		CodeConfigError, CodeMissingConfig, CodeInvalidConfig,
		CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange:
		return true
	default:
		return false
	}
}

// Category returns the high-level category of the error code
func (c Code) Category() string {
	switch c {
	case CodeInvalidDate, CodeInvalidZone, CodeTypeMismatch, CodeInvalidOperation:
		return "calendar"
	case CodeInvalidFormat, CodeMonthLookup:
		return "format"
	case CodeConfigError, CodeMissingConfig, CodeInvalidConfig:
		return "configuration"
	case CodeValidationFailed, CodeRequiredField, CodeValueOutOfRange, CodeInvalidInput:
		return "validation"
	default:
		return "generic"
	}
}

// ExitCode maps a code to a process exit status for command line tools.
// Input problems exit with 2, everything else with 1.
func (c Code) ExitCode() int {
	switch c.Category() {
	case "calendar", "format", "validation":
		return 2
	default:
		return 1
	}
}
