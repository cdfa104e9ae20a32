// File: jdate.go
// Title: Jalali Calendar Date
// Description: Implements the Date value, leap year rules and conversion
//              to and from Gregorian dates.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package jdate

import (
	"fmt"
	"time"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
)

const (
	// MinYear is the first supported Jalali year
	MinYear = 1
	// MaxYear is the last supported Jalali year (ends 9999-03-20 Gregorian)
	MaxYear = 9377

	cycleYears = 33
	cycleLeaps = 8
	cycleDays  = cycleYears*365 + cycleLeaps
)

// leap positions inside a 33-year cycle
var leapResidues = [...]int{1, 5, 9, 13, 17, 22, 26, 30}

// Gregorian day of 1 Farvardin 1, as Unix seconds
var epochUnix = time.Date(622, time.March, 21, 0, 0, 0, 0, time.UTC).Unix()

// Date is an immutable Jalali calendar date. The zero value is unset.
type Date struct {
	year  int
	month int
	day   int
}

// New validates and returns the date year/month/day
func New(year, month, day int) (Date, error) {
	if year < MinYear || year > MaxYear {
		return Date{}, invalidDate(year, month, day, fmt.Sprintf("year must be in %d..%d", MinYear, MaxYear))
	}
	if month < 1 || month > 12 {
		return Date{}, invalidDate(year, month, day, "month must be in 1..12")
	}
	if last := DaysInMonth(year, month); day < 1 || day > last {
		return Date{}, invalidDate(year, month, day, fmt.Sprintf("day must be in 1..%d", last))
	}
	return Date{year: year, month: month, day: day}, nil
}

func invalidDate(year, month, day int, reason string) error {
	return mdwerror.New("invalid Jalali date: "+reason).
		WithCode(mdwerror.CodeInvalidDate).
		WithOperation("jdate.New").
		WithDetail("year", year).
		WithDetail("month", month).
		WithDetail("day", day)
}

// IsLeap reports whether year has 366 days
func IsLeap(year int) bool {
	r := year % cycleYears
	for _, l := range leapResidues {
		if r == l {
			return true
		}
	}
	return false
}

// DaysInMonth returns the length of a month, or 0 for an invalid month
func DaysInMonth(year, month int) int {
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if IsLeap(year) {
			return 30
		}
		return 29
	}
	return 0
}

// daysBefore returns the number of days from 1/1/1 to 1/1/year
func daysBefore(year int) int {
	q, r := (year-1)/cycleYears, (year-1)%cycleYears
	leaps := q * cycleLeaps
	for _, l := range leapResidues {
		if l <= r {
			leaps++
		}
	}
	return (year-1)*365 + leaps
}

// dayOfYearBefore returns the days in the year before the first of month
func dayOfYearBefore(month int) int {
	if month <= 7 {
		return (month - 1) * 31
	}
	return 6*31 + (month-7)*30
}

// Year returns the year
func (d Date) Year() int { return d.year }

// Month returns the month, 1..12
func (d Date) Month() int { return d.month }

// Day returns the day of month
func (d Date) Day() int { return d.day }

// IsZero reports whether d is the unset zero value
func (d Date) IsZero() bool { return d.year == 0 }

// IsLeap reports whether d falls in a leap year
func (d Date) IsLeap() bool { return IsLeap(d.year) }

// DayOfYear returns the 1-based day within the year
func (d Date) DayOfYear() int {
	return dayOfYearBefore(d.month) + d.day
}

// ordinal returns the 0-based day count since 1/1/1
func (d Date) ordinal() int {
	return daysBefore(d.year) + dayOfYearBefore(d.month) + d.day - 1
}

// ToGregorian returns midnight UTC of the same civil day
func (d Date) ToGregorian() time.Time {
	if d.IsZero() {
		return time.Time{}
	}
	return time.Date(622, time.March, 21+d.ordinal(), 0, 0, 0, 0, time.UTC)
}

// Weekday returns the day of the week
func (d Date) Weekday() time.Weekday {
	return d.ToGregorian().Weekday()
}

// FromGregorian returns the Jalali date of t's civil day in t's own
// location. Instants outside the supported range yield the zero Date.
func FromGregorian(t time.Time) Date {
	civil := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC).Unix()
	if civil < epochUnix {
		return Date{}
	}
	return fromOrdinal(int((civil - epochUnix) / 86400))
}

func fromOrdinal(n int) Date {
	year := n*cycleYears/cycleDays + 1
	for year > MinYear && daysBefore(year) > n {
		year--
	}
	for daysBefore(year+1) <= n {
		year++
	}
	if year > MaxYear {
		return Date{}
	}

	doy := n - daysBefore(year)
	if doy < 6*31 {
		return Date{year: year, month: doy/31 + 1, day: doy%31 + 1}
	}
	doy -= 6 * 31
	return Date{year: year, month: doy/30 + 7, day: doy%30 + 1}
}

// AddDays returns the date n days later (earlier for negative n)
func (d Date) AddDays(n int) (Date, error) {
	if d.IsZero() {
		return Date{}, mdwerror.New("cannot add days to an unset date").
			WithCode(mdwerror.CodeInvalidOperation).
			WithOperation("jdate.AddDays")
	}
	var out Date
	if ord := d.ordinal() + n; ord >= 0 {
		out = fromOrdinal(ord)
	}
	if out.IsZero() {
		return Date{}, mdwerror.New("date out of supported range").
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("jdate.AddDays").
			WithDetail("date", d.String()).
			WithDetail("days", n)
	}
	return out, nil
}

// Equal reports whether d and other are the same day
func (d Date) Equal(other Date) bool {
	return d == other
}

// String returns the ISO-like form YYYY-MM-DD
func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.year, d.month, d.day)
}
