// File: timex.go
// Title: Core Time Utilities
// Description: Implements the host clock, Gregorian date parsing and
//              formatting constants.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-07-26 v0.1.1: Enhanced European date parsing support (DD.MM.YYYY format)
// - 2025-08-14 v0.2.0: Clock interface, dropped business day helpers

package timex

import (
	"strings"
	"time"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
)

// Common time formats
const (
	ISO8601         = "2006-01-02T15:04:05Z07:00"
	ISO8601Date     = "2006-01-02"
	ISO8601Time     = "15:04:05"
	ISO8601DateTime = "2006-01-02T15:04:05"

	BusinessDateTime = "2006-01-02 15:04:05"

	ShortDate   = "01/02/2006"
	CompactDate = "20060102"
)

// Clock provides the current instant
type Clock interface {
	Now() time.Time
}

// ClockFunc adapts a function to the Clock interface
type ClockFunc func() time.Time

// Now calls f
func (f ClockFunc) Now() time.Time {
	return f()
}

// FixedClock returns a Clock that always reports t
func FixedClock(t time.Time) Clock {
	return ClockFunc(func() time.Time { return t })
}

// Host implements Clock and ZoneDB with the time package and the
// process-wide zone cache.
type Host struct{}

// System is the default host
var System Host

// Now returns time.Now()
func (Host) Now() time.Time {
	return time.Now()
}

// LoadZone loads an IANA zone through the shared cache
func (Host) LoadZone(name string) (Zone, error) {
	return LoadZone(name)
}

// Parse attempts to parse a Gregorian timestamp using common layouts
func Parse(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, mdwerror.New("empty time string").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("timex.Parse")
	}

	formats := []string{
		time.RFC3339,
		ISO8601DateTime,
		BusinessDateTime,
		"2006-01-02 15:04",
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	if t, err := ParseDate(value); err == nil {
		return t, nil
	}

	return time.Time{}, mdwerror.New("unable to parse time string").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("timex.Parse").
		WithDetail("value", value)
}

// ParseDate parses a Gregorian date string (without time component)
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	formats := []string{
		ISO8601Date,
		ShortDate,
		CompactDate,
		"2006-1-2",
		"2006/1/2",
		"2.1.2006", // European format DD.MM.YYYY
	}

	for _, format := range formats {
		if t, err := time.Parse(format, value); err == nil {
			return t, nil
		}
	}

	return time.Time{}, mdwerror.New("unable to parse date string").
		WithCode(mdwerror.CodeInvalidInput).
		WithOperation("timex.ParseDate").
		WithDetail("value", value)
}
