// File: bridge.go
// Title: Gregorian Bridge
// Description: Converts time points to and from time.Time and shifts aware
//              values between zones.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation

package jtime

import (
	"time"

	mdwerror "github.com/msto63/jcal/foundation/core/error"
	"github.com/msto63/jcal/foundation/utils/timex"
	"github.com/msto63/jcal/pkg/jdate"
)

// ToGregorian returns the same wall clock as a time.Time. Aware values use
// their zone's location; naive values are placed in UTC, which carries the
// wall clock without an offset meaning.
func (tp TimePoint) ToGregorian() time.Time {
	if tp.IsZero() {
		return time.Time{}
	}
	loc := time.UTC
	if tp.zone != nil {
		loc = tp.zone.Location()
	}
	g := tp.date.ToGregorian()
	return time.Date(g.Year(), g.Month(), g.Day(), tp.clock.Hour, tp.clock.Minute, tp.clock.Second, 0, loc)
}

// AtZone returns the same instant expressed in zone
func (tp TimePoint) AtZone(zone timex.Zone) (TimePoint, error) {
	if tp.zone == nil {
		return TimePoint{}, mdwerror.New("cannot shift a naive time point").
			WithCode(mdwerror.CodeInvalidOperation).
			WithOperation("jtime.AtZone")
	}
	if !timex.ValidZone(zone) {
		return TimePoint{}, mdwerror.New("invalid target zone").
			WithCode(mdwerror.CodeInvalidZone).
			WithOperation("jtime.AtZone")
	}

	shifted, err := timex.ConvertZone(tp.ToGregorian(), zone)
	if err != nil {
		return TimePoint{}, mdwerror.Wrap(err, "zone conversion failed").
			WithOperation("jtime.AtZone")
	}
	return fromTime(shifted, timex.ZoneOf(shifted.Location()), "jtime.AtZone")
}

// FromGregorian converts a time.Time to a TimePoint. When aware is true the
// result carries t's location; otherwise only the wall clock is kept.
func FromGregorian(t time.Time, aware bool) (TimePoint, error) {
	var zone timex.Zone
	if aware {
		zone = timex.ZoneOf(t.Location())
	}
	return fromTime(t, zone, "jtime.FromGregorian")
}

func fromTime(t time.Time, zone timex.Zone, operation string) (TimePoint, error) {
	date := jdate.FromGregorian(t)
	if date.IsZero() {
		return TimePoint{}, outOfRange(t, operation)
	}
	return TimePoint{
		date:  date,
		clock: Clock{Hour: t.Hour(), Minute: t.Minute(), Second: t.Second()},
		zone:  zone,
	}, nil
}
