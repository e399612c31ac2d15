// Package zonetime provides an immutable date/time value that pairs a
// millisecond timestamp with a numeric UTC offset and exposes both a
// Gregorian (year/month/day) and an ISO-8601 (iso year/iso week/weekday)
// decomposition of it, with exact conversion between a timestamp, a set
// of calendar parts, and the canonical ISO-8601 string form.
//
// Only numeric UTC offsets are modeled; there is no IANA timezone or
// DST support, and precision is one millisecond.
package zonetime

import (
	"sync/atomic"
	"time"

	"github.com/jacoelho/zonetime/errors"
	"github.com/jacoelho/zonetime/internal/clock"
	"github.com/jacoelho/zonetime/internal/gregorian"
	"github.com/jacoelho/zonetime/internal/isoweek"
	"github.com/jacoelho/zonetime/internal/zoneoffset"
)

const (
	// MinTimestamp and MaxTimestamp bound the representable instant
	// range in milliseconds since the Unix epoch.
	MinTimestamp int64 = -8_640_000_000_000_000
	MaxTimestamp int64 = 8_640_000_000_000_000

	// MinFullYear and MaxFullYear are the Gregorian years bounding the
	// representable timestamp range.
	MinFullYear = -271_821
	MaxFullYear = 275_760

	// MeridiemAM and MeridiemPM are the two valid meridiem values.
	MeridiemAM = clock.MeridiemAM
	MeridiemPM = clock.MeridiemPM
)

// DateTime is an immutable instant in time viewed through a fixed UTC
// offset. Its identity is the offset-independent timestamp; the offset
// only selects which calendar day and clock time the instant maps to.
//
// Calendar decompositions are memoized on first use in write-once
// atomic cells; recomputing always yields the same value, so concurrent
// reads need no locks. Setters never mutate: they return a fresh value.
type DateTime struct {
	timestamp      int64   // ms since epoch, offset-independent
	zoneOffset     float64 // hours, open interval (-13, 15)
	zonedTimestamp int64   // timestamp + round(zoneOffset * 3_600_000)

	gregCache  atomic.Pointer[gregorian.Date]
	isoCache   atomic.Pointer[isoweek.Date]
	clockCache atomic.Pointer[clock.Time]
	zoneCache  atomic.Pointer[zoneoffset.Parts]
}

// ZoneParts is the signed decomposition of a UTC offset. Negative
// carries the sign independently of Hour so that a negative offset with
// a zero hour ("-00:10") stays distinct from a positive one ("+00:10").
type ZoneParts struct {
	Hour     int // -12..14
	Minute   int // 0..59
	Second   int // 0..59
	Negative bool
}

// FromTimestamp builds a DateTime from a millisecond timestamp and a
// plain-number UTC offset in hours.
func FromTimestamp(timestamp int64, zoneOffset float64) (*DateTime, error) {
	if timestamp < MinTimestamp || timestamp > MaxTimestamp {
		return nil, errors.OutOfRange("timestamp", float64(timestamp), float64(MinTimestamp), float64(MaxTimestamp))
	}
	if err := validateOffset(zoneOffset); err != nil {
		return nil, err
	}
	return newDateTime(timestamp, zoneOffset), nil
}

// FromTimestampLocal builds a DateTime from a millisecond timestamp
// using the machine's current local UTC offset.
func FromTimestampLocal(timestamp int64) (*DateTime, error) {
	return FromTimestamp(timestamp, localZoneOffset())
}

// FromTimestampParts builds a DateTime from a millisecond timestamp and
// a zone offset given as signed hour/minute/second parts.
func FromTimestampParts(timestamp int64, zone ZoneParts) (*DateTime, error) {
	parts, err := resolveZoneParts(zone)
	if err != nil {
		return nil, err
	}
	return FromTimestamp(timestamp, parts.Offset())
}

// Now returns the current instant at offset zero. It is the unvalidated
// fast path: the clock is always within range.
func Now() *DateTime {
	return newDateTime(time.Now().UnixMilli(), 0)
}

// FromTime builds a DateTime from a time.Time, preserving both the
// instant and the fixed UTC offset of the time's location.
func FromTime(t time.Time) (*DateTime, error) {
	_, seconds := t.Zone()
	return FromTimestamp(t.UnixMilli(), float64(seconds)/3600)
}

// Time returns the instant as a time.Time in a fixed zone matching the
// DateTime's offset. Together with FromTime this is a lossless bridge.
func (d *DateTime) Time() time.Time {
	seconds := int(zoneoffset.Millis(d.zoneOffset) / 1000)
	return time.UnixMilli(d.timestamp).In(time.FixedZone("", seconds))
}

// Timestamp returns the offset-independent milliseconds since the epoch.
func (d *DateTime) Timestamp() int64 { return d.timestamp }

// ZonedTimestamp returns timestamp shifted by the zone offset. All
// calendar decompositions are computed from this value treated as UTC.
func (d *DateTime) ZonedTimestamp() int64 { return d.zonedTimestamp }

// ZoneOffset returns the UTC offset in fractional hours.
func (d *DateTime) ZoneOffset() float64 { return d.zoneOffset }

// Equal reports whether both values denote the same instant. The zone
// offset does not participate: one instant is the same instant through
// any offset.
func (d *DateTime) Equal(other *DateTime) bool {
	return d.timestamp == other.timestamp
}

// Compare orders two values by instant, returning -1, 0 or +1.
func (d *DateTime) Compare(other *DateTime) int {
	switch {
	case d.timestamp < other.timestamp:
		return -1
	case d.timestamp > other.timestamp:
		return 1
	default:
		return 0
	}
}

// Before reports whether d is strictly earlier than other.
func (d *DateTime) Before(other *DateTime) bool {
	return d.timestamp < other.timestamp
}

// After reports whether d is strictly later than other.
func (d *DateTime) After(other *DateTime) bool {
	return d.timestamp > other.timestamp
}

func newDateTime(timestamp int64, zoneOffset float64) *DateTime {
	return &DateTime{
		timestamp:      timestamp,
		zoneOffset:     zoneOffset,
		zonedTimestamp: timestamp + zoneoffset.Millis(zoneOffset),
	}
}

func validateOffset(zoneOffset float64) error {
	if !(zoneOffset > zoneoffset.MinOffset && zoneOffset < zoneoffset.MaxOffset) {
		return errors.OutOfRangeOpen("zoneOffset", zoneOffset, zoneoffset.MinOffset, zoneoffset.MaxOffset)
	}
	return nil
}

// resolveZoneParts validates a public parts triple and converts it to
// the internal representation with a normalized sign carrier.
func resolveZoneParts(zone ZoneParts) (zoneoffset.Parts, error) {
	if zone.Hour < zoneoffset.MinHour || zone.Hour > zoneoffset.MaxHour {
		return zoneoffset.Parts{}, errors.OutOfRange("zoneHour", float64(zone.Hour), zoneoffset.MinHour, zoneoffset.MaxHour)
	}
	if zone.Minute < 0 || zone.Minute > 59 {
		return zoneoffset.Parts{}, errors.OutOfRange("zoneMinute", float64(zone.Minute), 0, 59)
	}
	if zone.Second < 0 || zone.Second > 59 {
		return zoneoffset.Parts{}, errors.OutOfRange("zoneSecond", float64(zone.Second), 0, 59)
	}
	return zoneoffset.Parts{
		Hour:     zone.Hour,
		Minute:   zone.Minute,
		Second:   zone.Second,
		Negative: zone.Negative || zone.Hour < 0,
	}, nil
}

func localZoneOffset() float64 {
	_, seconds := time.Now().Zone()
	return float64(seconds) / 3600
}

// gregorianDate returns the memoized Gregorian decomposition.
func (d *DateTime) gregorianDate() gregorian.Date {
	if p := d.gregCache.Load(); p != nil {
		return *p
	}
	day, _ := gregorian.SplitDay(d.zonedTimestamp)
	g := gregorian.FromDayTimestamp(day)
	d.gregCache.Store(&g)
	return g
}

// isoDate returns the memoized ISO week-date decomposition.
func (d *DateTime) isoDate() isoweek.Date {
	if p := d.isoCache.Load(); p != nil {
		return *p
	}
	day, _ := gregorian.SplitDay(d.zonedTimestamp)
	i := isoweek.FromDayTimestamp(day)
	d.isoCache.Store(&i)
	return i
}

// clockTime returns the memoized clock decomposition.
func (d *DateTime) clockTime() clock.Time {
	if p := d.clockCache.Load(); p != nil {
		return *p
	}
	_, rem := gregorian.SplitDay(d.zonedTimestamp)
	c := clock.FromDayOffset(rem)
	d.clockCache.Store(&c)
	return c
}

// zoneParts returns the memoized zone offset decomposition.
func (d *DateTime) zoneParts() zoneoffset.Parts {
	if p := d.zoneCache.Load(); p != nil {
		return *p
	}
	z := zoneoffset.FromOffset(d.zoneOffset)
	d.zoneCache.Store(&z)
	return z
}
