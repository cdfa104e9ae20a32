// File: timepoint.go
// Title: Jalali Time Point
// Description: Implements the TimePoint value: construction, 12-hour
//              conversion and queries.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package jtime

import (
	"fmt"
	"time"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
	"github.com/msto63/jcal/foundation/utils/timex"
	"github.com/msto63/jcal/pkg/jdate"
)

// Period is the half of the day on a 12-hour clock
type Period string

const (
	// AM is the ante meridiem marker
	AM Period = "ق.ظ"
	// PM is the post meridiem marker
	PM Period = "ب.ظ"
)

// Clock is a wall clock reading
type Clock struct {
	Hour   int
	Minute int
	Second int
}

// NewClock validates and returns a wall clock reading
func NewClock(hour, minute, second int) (Clock, error) {
	c := Clock{Hour: hour, Minute: minute, Second: second}
	if err := c.validate("jtime.NewClock"); err != nil {
		return Clock{}, err
	}
	return c, nil
}

func (c Clock) validate(operation string) error {
	if c.Hour < 0 || c.Hour > 23 || c.Minute < 0 || c.Minute > 59 || c.Second < 0 || c.Second > 59 {
		return mdwerror.New("time component out of range").
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation(operation).
			WithDetail("hour", c.Hour).
			WithDetail("minute", c.Minute).
			WithDetail("second", c.Second)
	}
	return nil
}

// String returns HH:MM:SS
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d:%02d", c.Hour, c.Minute, c.Second)
}

// TimePoint is an immutable Jalali date-time. A nil zone makes it naive.
type TimePoint struct {
	date  jdate.Date
	clock Clock
	zone  timex.Zone
}

// New builds a TimePoint from its fields. A nil zone yields a naive value.
func New(year, month, day, hour, minute, second int, zone timex.Zone) (TimePoint, error) {
	date, err := jdate.New(year, month, day)
	if err != nil {
		return TimePoint{}, err
	}
	return build(date, Clock{Hour: hour, Minute: minute, Second: second}, zone, "jtime.New")
}

// Combine joins a calendar date and a clock reading
func Combine(date jdate.Date, clock Clock, zone timex.Zone) (TimePoint, error) {
	if date.IsZero() {
		return TimePoint{}, mdwerror.New("combine requires a calendar date").
			WithCode(mdwerror.CodeTypeMismatch).
			WithOperation("jtime.Combine")
	}
	return build(date, clock, zone, "jtime.Combine")
}

func build(date jdate.Date, clock Clock, zone timex.Zone, operation string) (TimePoint, error) {
	if err := clock.validate(operation); err != nil {
		return TimePoint{}, err
	}
	if zone != nil && !timex.ValidZone(zone) {
		return TimePoint{}, mdwerror.New("zone has no usable location").
			WithCode(mdwerror.CodeInvalidZone).
			WithOperation(operation)
	}
	return TimePoint{date: date, clock: clock, zone: zone}, nil
}

// From12h builds a TimePoint from a 12-hour clock reading
func From12h(date jdate.Date, hour, minute, second int, period Period, zone timex.Zone) (TimePoint, error) {
	if hour < 1 || hour > 12 {
		return TimePoint{}, mdwerror.New("12-hour value must be in 1..12").
			WithCode(mdwerror.CodeValueOutOfRange).
			WithOperation("jtime.From12h").
			WithDetail("hour", hour)
	}

	switch period {
	case AM:
		if hour == 12 {
			hour = 0
		}
	case PM:
		if hour != 12 {
			hour += 12
		}
	default:
		return TimePoint{}, mdwerror.New("unknown period marker").
			WithCode(mdwerror.CodeInvalidInput).
			WithOperation("jtime.From12h").
			WithDetail("period", string(period))
	}

	return Combine(date, Clock{Hour: hour, Minute: minute, Second: second}, zone)
}

// Now reads the system clock. With a nil zone the result is naive and
// reflects the local wall clock.
func Now(zone timex.Zone) (TimePoint, error) {
	return NowWith(timex.System, zone)
}

// NowWith reads clock in zone
func NowWith(clock timex.Clock, zone timex.Zone) (TimePoint, error) {
	now := clock.Now()
	if zone == nil {
		now = now.In(time.Local)
	} else {
		if !timex.ValidZone(zone) {
			return TimePoint{}, mdwerror.New("zone has no usable location").
				WithCode(mdwerror.CodeInvalidZone).
				WithOperation("jtime.Now")
		}
		now = now.In(zone.Location())
	}

	date := jdate.FromGregorian(now)
	if date.IsZero() {
		return TimePoint{}, outOfRange(now, "jtime.Now")
	}
	return TimePoint{
		date:  date,
		clock: Clock{Hour: now.Hour(), Minute: now.Minute(), Second: now.Second()},
		zone:  zone,
	}, nil
}

// Date returns the calendar date
func (tp TimePoint) Date() jdate.Date { return tp.date }

// Clock returns the wall clock reading
func (tp TimePoint) Clock() Clock { return tp.clock }

// Year returns the Jalali year
func (tp TimePoint) Year() int { return tp.date.Year() }

// Month returns the Jalali month, 1..12
func (tp TimePoint) Month() int { return tp.date.Month() }

// Day returns the day of month
func (tp TimePoint) Day() int { return tp.date.Day() }

// Hour returns the hour, 0..23
func (tp TimePoint) Hour() int { return tp.clock.Hour }

// Minute returns the minute
func (tp TimePoint) Minute() int { return tp.clock.Minute }

// Second returns the second
func (tp TimePoint) Second() int { return tp.clock.Second }

// Zone returns the zone, nil when naive
func (tp TimePoint) Zone() timex.Zone { return tp.zone }

// IsAware reports whether tp carries a zone
func (tp TimePoint) IsAware() bool { return tp.zone != nil }

// IsZero reports whether tp is the unset zero value
func (tp TimePoint) IsZero() bool { return tp.date.IsZero() }

// To12h returns the 12-hour clock hour and its period
func (tp TimePoint) To12h() (int, Period) {
	switch h := tp.clock.Hour; {
	case h == 0:
		return 12, AM
	case h < 12:
		return h, AM
	case h == 12:
		return 12, PM
	default:
		return h - 12, PM
	}
}

// Format renders tp with the default formatter
func (tp TimePoint) Format(pattern string) string {
	return DefaultFormatter.Format(tp, pattern)
}

// String returns "YYYY-MM-DD HH:MM:SS", followed by the zone abbreviation
// for aware values.
func (tp TimePoint) String() string {
	s := fmt.Sprintf("%s %s", tp.date, tp.clock)
	if tp.zone != nil {
		if abbr := timex.AbbreviationText(tp.ToGregorian()); abbr != "" {
			s += " " + abbr
		}
	}
	return s
}

// GoString returns a constructor-like representation
func (tp TimePoint) GoString() string {
	zone := "nil"
	if tp.zone != nil {
		zone = fmt.Sprintf("zone(%q)", tp.zone.Name())
	}
	return fmt.Sprintf("jtime.New(%d, %d, %d, %d, %d, %d, %s)",
		tp.date.Year(), tp.date.Month(), tp.date.Day(),
		tp.clock.Hour, tp.clock.Minute, tp.clock.Second, zone)
}

func outOfRange(t time.Time, operation string) error {
	return mdwerror.New("instant outside the supported Jalali range").
		WithCode(mdwerror.CodeValueOutOfRange).
		WithOperation(operation).
		WithDetail("gregorian", t.Format(time.RFC3339)).
		WithDetail("minYear", jdate.MinYear).
		WithDetail("maxYear", jdate.MaxYear)
}
