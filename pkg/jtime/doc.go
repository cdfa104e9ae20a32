// File: doc.go
// Title: Package Documentation for jtime
// Description: Package jtime implements a Jalali date-time value and a
//              strftime-like engine that renders and parses it.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

/*
Package jtime provides TimePoint, a Jalali calendar date combined with a
wall clock and an optional zone, plus a format engine for it.

A TimePoint without a zone is naive: it carries a wall clock reading with no
offset meaning. A TimePoint with a zone is aware and can be shifted to
another zone with AtZone.

	tehran, _ := timex.LoadZone("Asia/Tehran")
	tp, err := jtime.New(1402, 7, 15, 14, 30, 0, tehran)
	if err != nil {
	    return err
	}
	jtime.Format(tp, "%Y/%m/%d %I:%M %p %z")  // "1402/07/15 02:30 ب.ظ +0330"

# Directives

	%Y   four digit year              %H   hour 00..23
	%y   two digit year               %I   hour 01..12
	%m   month 01..12                 %M   minute 00..59
	%-m  month 1..12                  %S   second 00..59
	%d   day 01..31                   %p   period marker (ق.ظ / ب.ظ)
	%-d  day 1..31                    %z   UTC offset, +0330
	%B   month name                   %Z   zone abbreviation
	%%   literal percent

Unknown directives are literal text. %z and %Z are left verbatim when the
value is naive, and are never consumed by Parse.

# Parsing

Parse matches at the start of the input; trailing text is ignored. Persian
and Arabic-Indic digits are accepted. A two digit year is placed in the
thirteen hundreds (CenturyPrefix). Month names are looked up in the
formatter's locale first and then in every other registered locale. The
period marker may be written with or without dots, in Persian or as AM/PM.
Parse always returns a naive TimePoint.

Patterns are compiled once and cached; a compiled Layout is shared by
rendering and parsing and is safe for concurrent use.
*/
package jtime
