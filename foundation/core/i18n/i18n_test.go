// File: i18n_test.go
// Title: Locale Table Tests
// Description: Tests for embedded table loading, month lookup, period
//              marker classification and custom table parsing.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-25
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-25 v0.1.0: Initial test implementation
// - 2025-08-14 v0.2.0: Tests for embedded locale tables

package i18n

import (
	"reflect"
	"testing"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
)

func TestDefaultTable(t *testing.T) {
	fa := Default()

	if fa.Locale() != "fa" {
		t.Errorf("Locale() = %q, want fa", fa.Locale())
	}
	if fa.Direction() != "rtl" {
		t.Errorf("Direction() = %q, want rtl", fa.Direction())
	}
	if fa.AM() != "ق.ظ" || fa.PM() != "ب.ظ" {
		t.Errorf("markers = %q/%q", fa.AM(), fa.PM())
	}

	want := []string{
		"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
		"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
	}
	if got := fa.Months(); !reflect.DeepEqual(got, want) {
		t.Errorf("Months() = %v", got)
	}

	months := fa.Months()
	months[0] = "changed"
	if fa.Month(1) != "فروردین" {
		t.Error("Months() must return a copy")
	}
}

func TestLoad(t *testing.T) {
	if got := Locales(); !reflect.DeepEqual(got, []string{"en", "fa"}) {
		t.Errorf("Locales() = %v", got)
	}

	en, err := Load(" EN ")
	if err != nil {
		t.Fatalf("Load(en) error = %v", err)
	}
	if en.Month(12) != "Esfand" {
		t.Errorf("Month(12) = %q", en.Month(12))
	}
	if en.Label("zone") != "Zone" {
		t.Errorf("Label(zone) = %q", en.Label("zone"))
	}
	if en.Label("unknown") != "unknown" {
		t.Errorf("Label fallback = %q", en.Label("unknown"))
	}

	fa1, _ := Load("fa")
	fa2, _ := Load("fa")
	if fa1 != fa2 {
		t.Error("tables must be loaded once and shared")
	}

	_, err = Load("de")
	if !mdwerror.HasCode(err, mdwerror.CodeNotFound) {
		t.Errorf("Load(de) error = %v, want NOT_FOUND", err)
	}
}

func TestMonthIndex(t *testing.T) {
	fa := Default()

	testCases := []struct {
		name string
		want int
	}{
		{"فروردین", 1},
		{" مهر ", 7},
		{"اسفند", 12},
		{"Farvardin", 0},
		{"", 0},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := fa.MonthIndex(tc.name); got != tc.want {
				t.Errorf("MonthIndex(%q) = %d, want %d", tc.name, got, tc.want)
			}
		})
	}

	if fa.Month(0) != "" || fa.Month(13) != "" {
		t.Error("Month out of range must be empty")
	}
}

func TestFindMonth(t *testing.T) {
	fa := Default()

	m, table, ok := FindMonth("Mehr", fa)
	if !ok || m != 7 || table.Locale() != "en" {
		t.Errorf("FindMonth(Mehr) = %d, %v, %v", m, table, ok)
	}

	m, table, ok = FindMonth("دی", nil)
	if !ok || m != 10 || table.Locale() != "fa" {
		t.Errorf("FindMonth(دی) = %d, %v, %v", m, table, ok)
	}

	if _, _, ok := FindMonth("Thermidor", fa); ok {
		t.Error("FindMonth(Thermidor) should fail")
	}
}

func TestPeriodOf(t *testing.T) {
	fa := Default()

	testCases := []struct {
		marker string
		pm     bool
		ok     bool
	}{
		{"ب.ظ", true, true},
		{"بظ", true, true},
		{" ق.ظ ", false, true},
		{"PM", true, true},
		{"a.m.", false, true},
		{"P.M.", true, true},
		{"XM", false, false},
		{"", false, false},
	}
	for _, tc := range testCases {
		t.Run(tc.marker, func(t *testing.T) {
			pm, ok := fa.PeriodOf(tc.marker)
			if pm != tc.pm || ok != tc.ok {
				t.Errorf("PeriodOf(%q) = %v, %v, want %v, %v", tc.marker, pm, ok, tc.pm, tc.ok)
			}
		})
	}

	if pm, ok := FindPeriod("PM", nil); !pm || !ok {
		t.Error("FindPeriod(PM) failed")
	}
}

func TestParseTable(t *testing.T) {
	valid := `
locale = "tg"
months = ["Ҳамал", "Савр", "Ҷавзо", "Саратон", "Асад", "Сунбула",
          "Мизон", "Ақраб", "Қавс", "Ҷадй", "Далв", "Ҳут"]
[period]
am = "пеш"
pm = "пас"
`
	table, err := ParseTable([]byte(valid), FormatTOML)
	if err != nil {
		t.Fatalf("ParseTable() error = %v", err)
	}
	if table.Name() != "tg" || table.Direction() != "ltr" {
		t.Errorf("defaults not applied: %q %q", table.Name(), table.Direction())
	}
	if pm, ok := table.PeriodOf("пас"); !pm || !ok {
		t.Error("canonical PM marker must classify as PM")
	}

	testCases := []struct {
		name    string
		content string
		format  Format
		code    mdwerror.Code
	}{
		{"no locale", "months = []", FormatTOML, mdwerror.CodeRequiredField},
		{"short months", "locale: x\nmonths: [a, b]\n", FormatYAML, mdwerror.CodeValidationFailed},
		{"bad yaml", "locale: [", FormatYAML, mdwerror.CodeInvalidConfig},
		{"bad format", "", Format(9), mdwerror.CodeInvalidConfig},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseTable([]byte(tc.content), tc.format)
			if !mdwerror.HasCode(err, tc.code) {
				t.Errorf("ParseTable() error = %v, want %v", err, tc.code)
			}
		})
	}
}

func TestNormalizeMarker(t *testing.T) {
	if got := NormalizeMarker(" ب.ظ "); got != "بظ" {
		t.Errorf("NormalizeMarker = %q", got)
	}
	if got := NormalizeMarker("p.m."); got != "PM" {
		t.Errorf("NormalizeMarker = %q", got)
	}
}
