// File: jdate_test.go
// Title: Jalali Calendar Date Tests
// Description: Tests for validation, leap years, the Gregorian bridge and
//              date formatting.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial test implementation

package jdate

import (
	"testing"
	"time"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
	"github.com/msto63/jcal/foundation/core/i18n"
)

func mustDate(t *testing.T, y, m, d int) Date {
	t.Helper()
	date, err := New(y, m, d)
	if err != nil {
		t.Fatalf("New(%d, %d, %d) unexpected error: %v", y, m, d, err)
	}
	return date
}

func TestNew(t *testing.T) {
	testCases := []struct {
		name    string
		y, m, d int
		wantErr bool
	}{
		{"nowruz", 1402, 1, 1, false},
		{"last of first half", 1402, 6, 31, false},
		{"mehr has 30 days", 1402, 7, 31, true},
		{"esfand leap", 1403, 12, 30, false},
		{"esfand common", 1402, 12, 30, true},
		{"esfand 29", 1402, 12, 29, false},
		{"month zero", 1402, 0, 1, true},
		{"month 13", 1402, 13, 1, true},
		{"day zero", 1402, 1, 0, true},
		{"year zero", 0, 1, 1, true},
		{"max year", MaxYear, 12, 29, false},
		{"beyond max", MaxYear + 1, 1, 1, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := New(tc.y, tc.m, tc.d)
			if tc.wantErr {
				if !mdwerror.HasCode(err, mdwerror.CodeInvalidDate) {
					t.Fatalf("New() error = %v, want INVALID_DATE", err)
				}
				if !d.IsZero() {
					t.Error("failed New() must return the zero Date")
				}
				return
			}
			if err != nil {
				t.Fatalf("New() unexpected error: %v", err)
			}
			if d.Year() != tc.y || d.Month() != tc.m || d.Day() != tc.d {
				t.Errorf("New() = %v", d)
			}
		})
	}
}

func TestIsLeap(t *testing.T) {
	testCases := []struct {
		year int
		want bool
	}{
		{1399, true},
		{1400, false},
		{1402, false},
		{1403, true},
		{1404, false},
		{1407, false},
		{1408, true},
	}
	for _, tc := range testCases {
		if got := IsLeap(tc.year); got != tc.want {
			t.Errorf("IsLeap(%d) = %v, want %v", tc.year, got, tc.want)
		}
	}

	if DaysInMonth(1403, 12) != 30 || DaysInMonth(1402, 12) != 29 || DaysInMonth(1402, 13) != 0 {
		t.Error("DaysInMonth mismatch")
	}
}

func TestToGregorian(t *testing.T) {
	testCases := []struct {
		name    string
		y, m, d int
		want    string
	}{
		{"nowruz 1402", 1402, 1, 1, "2023-03-21"},
		{"nowruz 1403", 1403, 1, 1, "2024-03-20"},
		{"nowruz 1399", 1399, 1, 1, "2020-03-20"},
		{"leap day 1403", 1403, 12, 30, "2025-03-20"},
		{"yalda 1402", 1402, 9, 30, "2023-12-21"},
		{"mehr 1354", 1354, 7, 1, "1975-09-23"},
		{"epoch", 1, 1, 1, "0622-03-21"},
		{"last day", MaxYear, 12, 29, "9999-03-20"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			g := mustDate(t, tc.y, tc.m, tc.d).ToGregorian()
			if got := g.Format("2006-01-02"); got != tc.want {
				t.Errorf("ToGregorian() = %s, want %s", got, tc.want)
			}
			if g.Location() != time.UTC || g.Hour() != 0 {
				t.Errorf("ToGregorian() must be midnight UTC, got %v", g)
			}
		})
	}

	if !(Date{}).ToGregorian().IsZero() {
		t.Error("zero Date must map to the zero time")
	}
}

func TestFromGregorian(t *testing.T) {
	tehran, err := time.LoadLocation("Asia/Tehran")
	if err != nil {
		t.Skipf("zone data unavailable: %v", err)
	}

	testCases := []struct {
		name string
		t    time.Time
		want string
	}{
		{"nowruz", time.Date(2023, 3, 21, 12, 0, 0, 0, time.UTC), "1402-01-01"},
		{"eve", time.Date(2023, 3, 20, 23, 59, 0, 0, time.UTC), "1401-12-29"},
		{"civil day in zone", time.Date(2024, 3, 19, 22, 0, 0, 0, time.UTC).In(tehran), "1403-01-01"},
		{"before epoch", time.Date(622, 3, 20, 0, 0, 0, 0, time.UTC), "0000-00-00"},
		{"after max", time.Date(9999, 3, 21, 0, 0, 0, 0, time.UTC), "0000-00-00"},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FromGregorian(tc.t).String(); got != tc.want {
				t.Errorf("FromGregorian() = %s, want %s", got, tc.want)
			}
		})
	}
}

func TestGregorianRoundTrip(t *testing.T) {
	start := time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	prev := FromGregorian(start)

	for i := 1; i < 200*366; i++ {
		g := start.AddDate(0, 0, i)
		d := FromGregorian(g)
		if d.IsZero() {
			t.Fatalf("FromGregorian(%v) returned zero", g)
		}
		if _, err := New(d.Year(), d.Month(), d.Day()); err != nil {
			t.Fatalf("FromGregorian(%v) = %v is not a valid date: %v", g, d, err)
		}
		if back := d.ToGregorian(); !back.Equal(g) {
			t.Fatalf("round trip %v -> %v -> %v", g, d, back)
		}
		if next, _ := prev.AddDays(1); next != d {
			t.Fatalf("AddDays(1) on %v = %v, want %v", prev, next, d)
		}
		prev = d
	}
}

func TestAddDays(t *testing.T) {
	d := mustDate(t, 1402, 12, 29)

	next, err := d.AddDays(1)
	if err != nil || next.String() != "1403-01-01" {
		t.Errorf("AddDays(1) = %v, %v", next, err)
	}

	back, err := next.AddDays(-365)
	if err != nil || back.String() != "1402-01-01" {
		t.Errorf("AddDays(-365) = %v, %v", back, err)
	}

	if _, err := mustDate(t, 1, 1, 1).AddDays(-1); !mdwerror.HasCode(err, mdwerror.CodeValueOutOfRange) {
		t.Errorf("AddDays before epoch error = %v", err)
	}
	if _, err := (Date{}).AddDays(1); !mdwerror.HasCode(err, mdwerror.CodeInvalidOperation) {
		t.Errorf("AddDays on zero error = %v", err)
	}
}

func TestDayOfYearAndWeekday(t *testing.T) {
	d := mustDate(t, 1402, 7, 1)
	if d.DayOfYear() != 187 {
		t.Errorf("DayOfYear() = %d, want 187", d.DayOfYear())
	}
	if w := mustDate(t, 1402, 1, 1).Weekday(); w != time.Tuesday {
		t.Errorf("Weekday() = %v, want Tuesday", w)
	}
	if !mustDate(t, 1403, 5, 5).IsLeap() {
		t.Error("1403 should be leap")
	}
}

func TestFormat(t *testing.T) {
	d := mustDate(t, 1402, 7, 5)
	en, err := i18n.Load("en")
	if err != nil {
		t.Fatalf("Load(en) error: %v", err)
	}

	testCases := []struct {
		name    string
		pattern string
		table   *i18n.Table
		want    string
	}{
		{"iso", "%Y-%m-%d", nil, "1402-07-05"},
		{"short year", "%y/%m/%d", nil, "02/07/05"},
		{"unpadded", "%-d/%-m/%Y", nil, "5/7/1402"},
		{"persian month", "%d %B %Y", nil, "05 مهر 1402"},
		{"english month", "%B %-d", en, "Mehr 5"},
		{"time codes pass through", "%Y %H:%M %p %z", nil, "1402 %H:%M %p %z"},
		{"trailing percent", "%Y%", nil, "1402%"},
		{"dash unknown", "%-H", nil, "%-H"},
		{"literal text", "year ", nil, "year "},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := d.FormatIn(tc.pattern, tc.table); got != tc.want {
				t.Errorf("FormatIn(%q) = %q, want %q", tc.pattern, got, tc.want)
			}
		})
	}

	if got := mustDate(t, 5, 1, 1).Format("%Y"); got != "0005" {
		t.Errorf("Format(%%Y) = %q, want 0005", got)
	}
	if len(MonthNames()) != 12 || MonthNames()[0] != "فروردین" {
		t.Errorf("MonthNames() = %v", MonthNames())
	}
}
