// File: digits.go
// Title: Numeral System Folding
// Description: Converts between ASCII digits and the Persian and
//              Arabic-Indic digit blocks.
// Author: msto63
// Version: v0.3.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.3.0: Initial implementation

package stringx

import "strings"

const (
	persianZero     = '۰'
	arabicIndicZero = '٠'
)

// FoldDigits replaces Persian and Arabic-Indic digits with ASCII digits.
// All other runes are kept. Strings without such digits are returned
// without allocation.
func FoldDigits(s string) string {
	if !HasNativeDigits(s) {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch {
		case r >= persianZero && r <= persianZero+9:
			return '0' + (r - persianZero)
		case r >= arabicIndicZero && r <= arabicIndicZero+9:
			return '0' + (r - arabicIndicZero)
		}
		return r
	}, s)
}

// ToPersianDigits replaces ASCII digits with Persian digits.
func ToPersianDigits(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return persianZero + (r - '0')
		}
		return r
	}, s)
}

// HasNativeDigits reports whether s contains a Persian or Arabic-Indic digit.
func HasNativeDigits(s string) bool {
	for _, r := range s {
		if (r >= persianZero && r <= persianZero+9) || (r >= arabicIndicZero && r <= arabicIndicZero+9) {
			return true
		}
	}
	return false
}
