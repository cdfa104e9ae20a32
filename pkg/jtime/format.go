// File: format.go
// Title: Format Engine
// Description: Renders time points through compiled layouts and parses
//              text back into naive time points.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package jtime

import (
	"strconv"
	"strings"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
	"github.com/msto63/jcal/foundation/core/i18n"
	"github.com/msto63/jcal/foundation/utils/stringx"
	"github.com/msto63/jcal/foundation/utils/timex"
)

// Formatter renders and parses time points using one locale table for
// month names and period markers.
type Formatter struct {
	table *i18n.Table
}

// DefaultFormatter uses the Persian table
var DefaultFormatter = &Formatter{}

// NewFormatter returns a formatter bound to table. nil selects the
// default table.
func NewFormatter(table *i18n.Table) *Formatter {
	return &Formatter{table: table}
}

// NewFormatterFor returns a formatter for a registered locale
func NewFormatterFor(locale string) (*Formatter, error) {
	table, err := i18n.Load(locale)
	if err != nil {
		return nil, err
	}
	return NewFormatter(table), nil
}

// Table returns the locale table in use
func (f *Formatter) Table() *i18n.Table {
	if f.table == nil {
		return i18n.Default()
	}
	return f.table
}

// Format renders tp using the default formatter
func Format(tp TimePoint, pattern string) string {
	return DefaultFormatter.Format(tp, pattern)
}

// Parse parses text using the default formatter
func Parse(text, pattern string) (TimePoint, error) {
	return DefaultFormatter.Parse(text, pattern)
}

// Format renders tp according to pattern
func (f *Formatter) Format(tp TimePoint, pattern string) string {
	return f.Render(tp, Compile(pattern))
}

// Render renders tp through a compiled layout
func (f *Formatter) Render(tp TimePoint, layout *Layout) string {
	table := f.Table()
	hour12, period := tp.To12h()

	var b strings.Builder
	b.Grow(len(layout.pattern) + 16)

	for _, t := range layout.tokens {
		switch {
		case t.Kind == KindLiteral:
			b.WriteString(t.Text)
		case t.Kind.IsDate():
			b.WriteString(tp.date.FormatIn(t.Text, table))
		case t.Kind == KindHour24:
			b.WriteString(pad2(tp.clock.Hour))
		case t.Kind == KindHour12:
			b.WriteString(pad2(hour12))
		case t.Kind == KindMinute:
			b.WriteString(pad2(tp.clock.Minute))
		case t.Kind == KindSecond:
			b.WriteString(pad2(tp.clock.Second))
		case t.Kind == KindPeriod:
			if period == PM {
				b.WriteString(table.PM())
			} else {
				b.WriteString(table.AM())
			}
		case t.Kind == KindZoneOffset && tp.zone != nil:
			b.WriteString(timex.OffsetText(tp.ToGregorian()))
		case t.Kind == KindZoneName && tp.zone != nil:
			b.WriteString(timex.AbbreviationText(tp.ToGregorian()))
		default:
			// zone directives on naive values
			b.WriteString(t.Text)
		}
	}

	return b.String()
}

func pad2(n int) string {
	return stringx.PadLeft(strconv.Itoa(n), 2, '0')
}

// Parse parses text according to pattern into a naive TimePoint
func (f *Formatter) Parse(text, pattern string) (TimePoint, error) {
	return f.ParseLayout(text, Compile(pattern))
}

// ParseLayout parses text through a compiled layout
func (f *Formatter) ParseLayout(text string, layout *Layout) (TimePoint, error) {
	match := layout.re.FindStringSubmatch(stringx.FoldDigits(text))
	if match == nil {
		return TimePoint{}, mdwerror.New("text does not match pattern").
			WithCode(mdwerror.CodeInvalidFormat).
			WithOperation("jtime.Parse").
			WithDetail("text", text).
			WithDetail("pattern", layout.pattern)
	}

	// first non-empty capture per kind wins
	fields := make(map[Kind]string, len(layout.groups))
	for i, kind := range layout.groups {
		if v := match[i+1]; v != "" {
			if _, seen := fields[kind]; !seen {
				fields[kind] = v
			}
		}
	}
	number := func(kinds ...Kind) (int, bool) {
		for _, k := range kinds {
			if v, ok := fields[k]; ok {
				n, _ := strconv.Atoi(v)
				return n, true
			}
		}
		return 0, false
	}
	missing := func(field string) error {
		return mdwerror.New("pattern does not provide the "+field).
			WithCode(mdwerror.CodeRequiredField).
			WithOperation("jtime.Parse").
			WithDetail("field", field).
			WithDetail("pattern", layout.pattern)
	}

	year, ok := number(KindYear4)
	if !ok {
		yy, ok := number(KindYear2)
		if !ok {
			return TimePoint{}, missing("year")
		}
		year = CenturyPrefix + yy
	}

	month, ok := number(KindMonth, KindMonthUnpadded)
	if !ok {
		name, ok := fields[KindMonthName]
		if !ok {
			return TimePoint{}, missing("month")
		}
		name = strings.TrimSpace(name)
		m, _, found := i18n.FindMonth(name, f.Table())
		if !found {
			return TimePoint{}, mdwerror.New("unknown month name").
				WithCode(mdwerror.CodeMonthLookup).
				WithOperation("jtime.Parse").
				WithDetail("month", name).
				WithDetail("pattern", layout.pattern)
		}
		month = m
	}

	day, ok := number(KindDay, KindDayUnpadded)
	if !ok {
		return TimePoint{}, missing("day")
	}

	hour, _ := number(KindHour24)
	if h12, ok := number(KindHour12); ok {
		hour = h12
		if marker, ok := fields[KindPeriod]; ok {
			// unrecognised markers leave the hour as written
			if pm, known := i18n.FindPeriod(marker, f.Table()); known {
				switch {
				case pm && hour != 12:
					hour += 12
				case !pm && hour == 12:
					hour = 0
				}
			}
		}
	}

	minute, _ := number(KindMinute)
	second, _ := number(KindSecond)

	return New(year, month, day, hour, minute, second, nil)
}
