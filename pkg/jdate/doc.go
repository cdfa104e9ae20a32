// File: doc.go
// Title: Package Documentation for jdate
// Description: Package jdate implements the Jalali (Solar Hijri) calendar
//              date and its bridge to the Gregorian calendar.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

// Package jdate provides the Jalali calendar date.
//
// Leap years follow the arithmetic 33-year cycle: a year is leap when
// year mod 33 is one of 1, 5, 9, 13, 17, 22, 26 or 30. Within the modern
// era this agrees with the astronomical calendar published for Iran.
// Supported years are MinYear through MaxYear, which maps onto Gregorian
// 0622-03-21 through 9999-03-20.
//
//	d, err := jdate.New(1402, 1, 1)
//	if err != nil {
//	    return err
//	}
//	d.ToGregorian()          // 2023-03-21 00:00:00 UTC
//	d.Format("%d %B %Y")     // "01 فروردین 1402"
//
// The date formatter understands %Y %y %m %-m %d %-d and %B. Every other
// directive is copied to the output unchanged, so a time formatter can run
// the date pass first and substitute its own codes afterwards.
package jdate
