// File: format.go
// Title: Jalali Date Formatting
// Description: Substitutes the date directives of a strftime-like pattern.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package jdate

import (
	"strconv"
	"strings"

	"github.com/msto63/jcal/foundation/core/i18n"
	"github.com/msto63/jcal/foundation/utils/stringx"
)

// MonthNames returns the Persian month names, Farvardin first
func MonthNames() []string {
	return i18n.Default().Months()
}

// Format renders pattern with Persian month names
func (d Date) Format(pattern string) string {
	return d.FormatIn(pattern, i18n.Default())
}

// FormatIn renders the date directives of pattern using table for %B.
// Unknown directives and a trailing '%' are copied verbatim.
func (d Date) FormatIn(pattern string, table *i18n.Table) string {
	if table == nil {
		table = i18n.Default()
	}

	var b strings.Builder
	b.Grow(len(pattern) + 8)

	for i := 0; i < len(pattern); i++ {
		c := pattern[i]
		if c != '%' || i+1 >= len(pattern) {
			b.WriteByte(c)
			continue
		}

		next := pattern[i+1]
		if next == '-' && i+2 < len(pattern) {
			switch pattern[i+2] {
			case 'm':
				b.WriteString(strconv.Itoa(d.month))
				i += 2
				continue
			case 'd':
				b.WriteString(strconv.Itoa(d.day))
				i += 2
				continue
			}
		}

		switch next {
		case 'Y':
			b.WriteString(stringx.PadLeft(strconv.Itoa(d.year), 4, '0'))
		case 'y':
			b.WriteString(pad2(d.year % 100))
		case 'm':
			b.WriteString(pad2(d.month))
		case 'd':
			b.WriteString(pad2(d.day))
		case 'B':
			b.WriteString(table.Month(d.month))
		default:
			b.WriteByte(c)
			b.WriteByte(next)
		}
		i++
	}

	return b.String()
}

func pad2(n int) string {
	return stringx.PadLeft(strconv.Itoa(n), 2, '0')
}
