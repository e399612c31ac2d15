// Package clock converts a time-of-day millisecond remainder to and
// from clock parts in both 24-hour and 12-hour representations.
package clock

const (
	// MeridiemAM is the meridiem value for hours before noon.
	MeridiemAM = 0
	// MeridiemPM is the meridiem value for noon and later; adding it to
	// an 11-hour value yields the 23-hour value.
	MeridiemPM = 12

	hourMillis   = 3_600_000
	minuteMillis = 60_000
	secondMillis = 1_000
)

// Time is the clock decomposition of a time of day.
type Time struct {
	Hour23      int   // 0..23
	Hour11      int   // 0..11
	Meridiem    int   // MeridiemAM or MeridiemPM
	Minute      int   // 0..59
	Second      int   // 0..59
	Millisecond int   // 0..999
	DayOffset   int64 // ms since 00:00 of the day
}

// FromDayOffset decomposes a millisecond remainder in [0, 86_400_000).
func FromDayOffset(ms int64) Time {
	hour := int(ms / hourMillis)
	rest := ms % hourMillis
	return Time{
		Hour23:      hour,
		Hour11:      hour % 12,
		Meridiem:    meridiemOf(hour),
		Minute:      int(rest / minuteMillis),
		Second:      int(rest % minuteMillis / secondMillis),
		Millisecond: int(rest % secondMillis),
		DayOffset:   ms,
	}
}

// FromParts builds the decomposition for validated clock parts.
func FromParts(hour23, minute, second, millisecond int) Time {
	return Time{
		Hour23:      hour23,
		Hour11:      hour23 % 12,
		Meridiem:    meridiemOf(hour23),
		Minute:      minute,
		Second:      second,
		Millisecond: millisecond,
		DayOffset: int64(hour23)*hourMillis +
			int64(minute)*minuteMillis +
			int64(second)*secondMillis +
			int64(millisecond),
	}
}

func meridiemOf(hour23 int) int {
	if hour23 >= 12 {
		return MeridiemPM
	}
	return MeridiemAM
}
