// File: doc.go
// Title: Package Documentation for timex
// Description: Package timex provides the host capabilities the calendar
//              packages depend on: a clock, a cached zone database, zone
//              conversion and offset/abbreviation rendering.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with comprehensive time utilities
// - 2025-08-14 v0.2.0: Zone capability interface, injectable clock and zone database

// Package timex wraps the host time facilities behind narrow interfaces.
//
// A Zone is anything that can resolve to a *time.Location. The zone database
// loads IANA zones once and caches them:
//
//	tehran, err := timex.LoadZone("Asia/Tehran")
//	if err != nil {
//	    return err
//	}
//	t, _ := timex.ConvertZone(time.Now(), tehran)
//	timex.OffsetText(t)        // "+0330"
//	timex.AbbreviationText(t)  // "+0330" (tzdata has no letters for Iran)
//
// Clock abstracts "now" so callers can inject a fixed time in tests:
//
//	clock := timex.ClockFunc(func() time.Time { return fixed })
//
// System implements both Clock and ZoneDB on top of the time package.
//
// Gregorian date input in the CLI goes through ParseDate, which accepts the
// ISO, short and European layouts.
package timex
