// File: error_test.go
// Title: Error Module Tests
// Description: Tests for error creation, wrapping, codes, severity and lookups.
// Author: msto63
// Version: v0.2.0
// Created: 2025-01-24
// Modified: 2025-08-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial implementation with comprehensive test coverage
// - 2025-08-14 v0.2.0: Chain lookups and calendar codes

package error

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	msg := "time component out of range"
	err := New(msg)

	if err == nil {
		t.Fatal("New() returned nil")
	}

	if err.Error() != msg {
		t.Errorf("Error() = %q, want %q", err.Error(), msg)
	}

	if err.Code() != CodeUnknown {
		t.Errorf("Code() = %v, want %v", err.Code(), CodeUnknown)
	}

	if err.Severity() != SeverityMedium {
		t.Errorf("Severity() = %v, want %v", err.Severity(), SeverityMedium)
	}

	if err.Timestamp().IsZero() {
		t.Error("Timestamp() should not be zero")
	}

	if len(err.StackTrace()) == 0 {
		t.Error("StackTrace() should not be empty")
	}
}

func TestWrap(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		message  string
		wantNil  bool
		wantMsg  string
		wantCode Code
	}{
		{
			name:    "wrap nil error",
			err:     nil,
			message: "wrapper message",
			wantNil: true,
		},
		{
			name:     "wrap standard error",
			err:      errors.New("original error"),
			message:  "wrapper message",
			wantMsg:  "wrapper message: original error",
			wantCode: CodeUnknown,
		},
		{
			name:     "wrap coded error",
			err:      New("day out of range").WithCode(CodeInvalidDate),
			message:  "cannot build date",
			wantMsg:  "cannot build date: day out of range",
			wantCode: CodeInvalidDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Wrap(tt.err, tt.message)
			if tt.wantNil {
				if got != nil {
					t.Errorf("Wrap() = %v, want nil", got)
				}
				return
			}
			if got.Error() != tt.wantMsg {
				t.Errorf("Error() = %q, want %q", got.Error(), tt.wantMsg)
			}
			if got.Code() != tt.wantCode {
				t.Errorf("Code() = %v, want %v", got.Code(), tt.wantCode)
			}
			if !errors.Is(got, tt.err) {
				t.Error("wrapped error should match its cause with errors.Is")
			}
		})
	}
}

func TestWithCodeSetsSeverity(t *testing.T) {
	testCases := []struct {
		code Code
		want Severity
	}{
		{CodeInvalidDate, SeverityLow},
		{CodeInvalidFormat, SeverityLow},
		{CodeInvalidOperation, SeverityMedium},
		{CodeConfigError, SeverityHigh},
		{CodeInternal, SeverityCritical},
	}

	for _, tc := range testCases {
		t.Run(tc.code.String(), func(t *testing.T) {
			err := New("x").WithCode(tc.code)
			if err.Severity() != tc.want {
				t.Errorf("Severity() = %v, want %v", err.Severity(), tc.want)
			}
		})
	}

	explicit := New("x").WithSeverity(SeverityHigh).WithCode(CodeInvalidDate)
	if explicit.Severity() != SeverityHigh {
		t.Errorf("explicit severity overwritten: %v", explicit.Severity())
	}
}

func TestHasCodeWalksChain(t *testing.T) {
	base := New("no match").WithCode(CodeInvalidFormat)
	wrapped := fmt.Errorf("cli: %w", Wrap(base, "parse failed"))

	if !HasCode(wrapped, CodeInvalidFormat) {
		t.Error("HasCode should find code through fmt.Errorf and Wrap")
	}
	if HasCode(wrapped, CodeMonthLookup) {
		t.Error("HasCode reported a code that is not in the chain")
	}
	if GetCode(wrapped) != CodeInvalidFormat {
		t.Errorf("GetCode() = %v", GetCode(wrapped))
	}
	if GetCode(errors.New("plain")) != CodeUnknown {
		t.Error("GetCode of a plain error should be CodeUnknown")
	}
	if !errors.Is(wrapped, New("").WithCode(CodeInvalidFormat)) {
		t.Error("errors.Is should match on code")
	}
}

func TestDetailsAndString(t *testing.T) {
	err := New("datetime text does not match layout").
		WithCode(CodeInvalidFormat).
		WithOperation("jtime.Parse").
		WithDetail("text", "not-a-date").
		WithDetail("pattern", "%Y-%m-%d")

	if v, ok := err.Detail("pattern"); !ok || v != "%Y-%m-%d" {
		t.Errorf("Detail(pattern) = %v, %v", v, ok)
	}

	details := err.Details()
	details["text"] = "mutated"
	if v, _ := err.Detail("text"); v != "not-a-date" {
		t.Error("Details() must return a copy")
	}

	s := err.String()
	for _, want := range []string{"Code: INVALID_FORMAT", "Operation: jtime.Parse", "pattern=%Y-%m-%d, text=not-a-date"} {
		if !strings.Contains(s, want) {
			t.Errorf("String() missing %q:\n%s", want, s)
		}
	}
}

func TestMarshalJSON(t *testing.T) {
	err := Wrap(errors.New("unknown time zone Mars/Olympus"), "cannot load zone").
		WithCode(CodeInvalidZone).
		WithOperation("timex.LoadZone")

	data, jerr := json.Marshal(err)
	if jerr != nil {
		t.Fatalf("Marshal: %v", jerr)
	}

	var decoded map[string]interface{}
	if jerr := json.Unmarshal(data, &decoded); jerr != nil {
		t.Fatalf("Unmarshal: %v", jerr)
	}
	if decoded["code"] != "INVALID_ZONE" {
		t.Errorf("code = %v", decoded["code"])
	}
	if decoded["operation"] != "timex.LoadZone" {
		t.Errorf("operation = %v", decoded["operation"])
	}
	if decoded["cause"] != "unknown time zone Mars/Olympus" {
		t.Errorf("cause = %v", decoded["cause"])
	}
}

func TestRootCause(t *testing.T) {
	root := errors.New("root")
	err := Wrap(Wrap(root, "middle"), "outer")
	if err.RootCause() != root {
		t.Errorf("RootCause() = %v, want root", err.RootCause())
	}
}

func TestCodeCategories(t *testing.T) {
	testCases := []struct {
		code     Code
		category string
		exit     int
	}{
		{CodeInvalidDate, "calendar", 2},
		{CodeTypeMismatch, "calendar", 2},
		{CodeMonthLookup, "format", 2},
		{CodeValueOutOfRange, "validation", 2},
		{CodeConfigError, "configuration", 1},
		{CodeInternal, "generic", 1},
	}

	for _, tc := range testCases {
		t.Run(tc.code.String(), func(t *testing.T) {
			if !tc.code.IsValid() {
				t.Errorf("%v should be valid", tc.code)
			}
			if got := tc.code.Category(); got != tc.category {
				t.Errorf("Category() = %q, want %q", got, tc.category)
			}
			if got := tc.code.ExitCode(); got != tc.exit {
				t.Errorf("ExitCode() = %d, want %d", got, tc.exit)
			}
		})
	}

	if Code("BOGUS").IsValid() {
		t.Error("unknown code reported valid")
	}
}
