// Package zoneoffset converts a fractional-hour UTC offset to and from
// signed (hour, minute, second) parts. The sign is carried separately
// from the hour so that "-00:10" and "+00:10" stay distinct.
package zoneoffset

import "math"

const (
	// MinHour and MaxHour bound the parts-form zone hour (closed interval).
	MinHour = -12
	MaxHour = 14

	// MinOffset and MaxOffset bound the plain-number offset (open interval).
	MinOffset float64 = -13
	MaxOffset float64 = 15

	hourMillis = 3_600_000
)

// Parts is the signed decomposition of a UTC offset.
type Parts struct {
	Hour   int // signed, MinHour..MaxHour
	Minute int // 0..59
	Second int // 0..59
	// Negative carries the offset sign independently of Hour, so a
	// negative offset with a zero hour ("-00:10") is representable.
	// It is true for every negative offset.
	Negative bool
}

// FromOffset splits a fractional-hour offset into parts. The sign of a
// floating-point negative zero is honored.
func FromOffset(offset float64) Parts {
	negative := math.Signbit(offset)
	total := int64(math.Round(math.Abs(offset) * 3600))
	hour := int(total / 3600)
	if negative {
		hour = -hour
	}
	return Parts{
		Hour:     hour,
		Minute:   int(total % 3600 / 60),
		Second:   int(total % 60),
		Negative: negative,
	}
}

// Offset returns the fractional-hour offset the parts describe.
func (p Parts) Offset() float64 {
	hour := p.Hour
	sign := 1.0
	if p.Negative || p.Hour < 0 {
		sign = -1.0
		if hour < 0 {
			hour = -hour
		}
	}
	return sign * (float64(hour) + float64(p.Minute)/60 + float64(p.Second)/3600)
}

// Millis returns a fractional-hour offset rounded to whole milliseconds.
// Rounding keeps zoned timestamps exact integers for offsets such as
// -1/6 h that are not representable in binary floating point.
func Millis(offset float64) int64 {
	return int64(math.Round(offset * hourMillis))
}
