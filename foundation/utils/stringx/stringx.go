// File: stringx.go
// Title: Core String Utility Functions
// Description: Implements blank checks, defaults and rune-aware padding.
// Author: msto63
// Version: v0.3.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with core utilities
// - 2025-08-14 v0.3.0: Trimmed to the helpers used by jcal

package stringx

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// IsBlank returns true if the string is empty or contains only whitespace.
func IsBlank(s string) bool {
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// IsNotBlank is the inverse of IsBlank.
func IsNotBlank(s string) bool {
	return !IsBlank(s)
}

// FirstNonBlank returns the first argument that is not blank, or "".
func FirstNonBlank(values ...string) string {
	for _, v := range values {
		if IsNotBlank(v) {
			return v
		}
	}
	return ""
}

// FromBlankDefault returns defaultValue when s is blank.
func FromBlankDefault(s, defaultValue string) string {
	if IsBlank(s) {
		return defaultValue
	}
	return s
}

// PadLeft pads s to width runes with pad. Longer strings are returned as-is.
func PadLeft(s string, width int, pad rune) string {
	// Fast path for ASCII
	if isASCIIString(s) && pad < utf8.RuneSelf {
		if len(s) >= width {
			return s
		}
		result := make([]byte, width)
		padCount := width - len(s)
		for i := 0; i < padCount; i++ {
			result[i] = byte(pad)
		}
		copy(result[padCount:], s)
		return string(result)
	}

	runeCount := utf8.RuneCountInString(s)
	if runeCount >= width {
		return s
	}

	var builder strings.Builder
	builder.Grow(len(s) + (width-runeCount)*utf8.RuneLen(pad))
	for i := 0; i < width-runeCount; i++ {
		builder.WriteRune(pad)
	}
	builder.WriteString(s)
	return builder.String()
}

func isASCIIString(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}
