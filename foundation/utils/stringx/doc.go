// File: doc.go
// Title: Package Documentation for stringx
// Description: Package stringx provides the small set of Unicode-safe string
//              helpers shared by the jcal packages.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core string utilities
// - 2025-01-26 v0.2.0: Enhanced documentation
// - 2025-08-14 v0.3.0: Digit folding for Persian and Arabic-Indic numerals

// Package stringx provides string helpers for jcal.
//
// Blank checks and defaults:
//
//	stringx.IsBlank("  \t")                 // true
//	stringx.FromBlankDefault("", "UTC")     // "UTC"
//	stringx.FirstNonBlank("", " ", "fa")    // "fa"
//
// Padding is rune-aware, so it is safe on Persian text:
//
//	stringx.PadLeft("7", 2, '0')            // "07"
//
// Digit folding maps the Extended Arabic-Indic (Persian, U+06F0..U+06F9) and
// Arabic-Indic (U+0660..U+0669) digits to ASCII and back:
//
//	stringx.FoldDigits("۱۴۰۲/۰۱/۰۱")        // "1402/01/01"
//	stringx.ToPersianDigits("1402")         // "۱۴۰۲"
package stringx
