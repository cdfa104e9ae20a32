// File: doc.go
// Title: Locale Table Package Documentation
// Description: Package i18n provides the immutable locale tables used by the
//              calendar and format packages: month names, period markers and
//              display labels, embedded as TOML and YAML files.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial implementation with TOML/YAML support
// - 2025-08-14 v0.2.0: Replaced the translation manager with embedded locale tables

/*
Package i18n provides read-only locale tables for Jalali calendar output.

Two tables are embedded in the binary and parsed once on first use:

	locales/
	├── fa.toml          # Persian (default)
	└── en.yaml          # English transliteration

A table file has the following shape (TOML shown):

	locale    = "fa"
	direction = "rtl"
	months    = ["فروردین", "اردیبهشت", ...]

	[period]
	am         = "ق.ظ"
	pm         = "ب.ظ"
	am_aliases = ["قظ", "AM"]
	pm_aliases = ["بظ", "PM"]

	[labels]
	year = "سال"

Tables are shared by all goroutines and never modified after load. Use
Default for the Persian table, Load("en") for another registered locale and
FindMonth to resolve a month name against every registered table.

Custom tables can be built with ParseTable; they are not registered globally.
*/
package i18n
