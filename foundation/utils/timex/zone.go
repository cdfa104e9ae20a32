// File: zone.go
// Title: Zone Capability and Cached Zone Database
// Description: Defines the Zone interface, the cached IANA zone loader and
//              the conversion and offset helpers used by aware time points.
// Author: msto63
// Version: v0.2.0
// Created: 2025-08-14
// Modified: 2025-08-14
//
// Change History:
// - 2025-08-14 v0.2.0: Initial implementation, cache taken over from timex.go

package timex

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata" // zone data independent of the host installation

	mdwerror "github.com/msto63/jcal/foundation/core/error"
	"github.com/msto63/jcal/foundation/utils/stringx"
)

// Zone is a timezone capability
type Zone interface {
	// Name returns the zone identifier, e.g. "Asia/Tehran"
	Name() string
	// Location returns the location used for conversions
	Location() *time.Location
}

// ZoneDB loads zones by name
type ZoneDB interface {
	LoadZone(name string) (Zone, error)
}

type locationZone struct {
	loc *time.Location
}

func (z locationZone) Name() string             { return z.loc.String() }
func (z locationZone) Location() *time.Location { return z.loc }
func (z locationZone) String() string           { return z.loc.String() }

// ZoneOf wraps a location as a Zone. A nil location yields a nil Zone.
func ZoneOf(loc *time.Location) Zone {
	if loc == nil {
		return nil
	}
	return locationZone{loc: loc}
}

// UTC is the UTC zone
var UTC = ZoneOf(time.UTC)

// FixedZone returns a zone with a constant offset in seconds east of UTC
func FixedZone(name string, offset int) Zone {
	return ZoneOf(time.FixedZone(name, offset))
}

// ValidZone reports whether z resolves to a location. A typed-nil Zone
// whose Location method panics counts as invalid.
func ValidZone(z Zone) (ok bool) {
	if z == nil {
		return false
	}
	defer func() {
		if recover() != nil {
			ok = false
		}
	}()
	return z.Location() != nil
}

// Timezone cache for loaded locations
var (
	timezoneCache = make(map[string]*time.Location)
	timezoneMu    sync.RWMutex
)

// getCachedLocation returns a cached timezone location or loads and caches it
func getCachedLocation(tz string) (*time.Location, error) {
	timezoneMu.RLock()
	if loc, exists := timezoneCache[tz]; exists {
		timezoneMu.RUnlock()
		return loc, nil
	}
	timezoneMu.RUnlock()

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, err
	}

	timezoneMu.Lock()
	if cached, exists := timezoneCache[tz]; exists {
		loc = cached
	} else {
		timezoneCache[tz] = loc
	}
	timezoneMu.Unlock()

	return loc, nil
}

// LoadZone loads an IANA zone by name. "Local" and "UTC" are accepted.
func LoadZone(name string) (Zone, error) {
	if stringx.IsBlank(name) {
		return nil, mdwerror.New("zone name cannot be empty").
			WithCode(mdwerror.CodeInvalidZone).
			WithOperation("timex.LoadZone")
	}

	loc, err := getCachedLocation(name)
	if err != nil {
		return nil, mdwerror.Wrap(err, fmt.Sprintf("unknown zone %q", name)).
			WithCode(mdwerror.CodeInvalidZone).
			WithOperation("timex.LoadZone").
			WithDetail("zone", name)
	}
	return ZoneOf(loc), nil
}

// ConvertZone returns the same instant expressed in zone z
func ConvertZone(t time.Time, z Zone) (time.Time, error) {
	if !ValidZone(z) {
		return time.Time{}, mdwerror.New("invalid target zone").
			WithCode(mdwerror.CodeInvalidZone).
			WithOperation("timex.ConvertZone")
	}
	return t.In(z.Location()), nil
}

// OffsetSeconds returns the UTC offset of t in seconds
func OffsetSeconds(t time.Time) int {
	_, offset := t.Zone()
	return offset
}

// OffsetText renders the UTC offset of t as +HHMM, e.g. "+0330"
func OffsetText(t time.Time) string {
	return t.Format("-0700")
}

// AbbreviationText returns the zone abbreviation in effect at t, e.g. "UTC"
// or "CET". Zones without letters in tzdata report the numeric form.
func AbbreviationText(t time.Time) string {
	name, _ := t.Zone()
	return name
}
