// Package isoweek converts day-aligned millisecond timestamps to and
// from ISO-8601 week-date parts (iso year, iso week, weekday).
package isoweek

import "github.com/jacoelho/zonetime/internal/gregorian"

// Date is the ISO week-date decomposition of one calendar day.
type Date struct {
	Year         int   // ISO year, not necessarily the Gregorian year
	Week         int   // 1..LastWeek(Year)
	Weekday      int   // 1=Monday .. 7=Sunday
	DayTimestamp int64 // ms at 00:00 of this day
}

// IsLongYear reports whether the ISO year has 53 weeks. A year is long
// iff its January 1 is a Thursday, or it is a leap year whose January 1
// is a Wednesday.
func IsLongYear(isoYear int) bool {
	wd := gregorian.Weekday(gregorian.YearStartDay(isoYear))
	return wd == 4 || (gregorian.IsLeapYear(isoYear) && wd == 3)
}

// LastWeek returns the number of the last ISO week of the year, 52 or 53.
func LastWeek(isoYear int) int {
	if IsLongYear(isoYear) {
		return 53
	}
	return 52
}

// YearStartTimestamp returns the start of ISO week 1 of the year: the
// Monday on or before the year's first Thursday.
func YearStartTimestamp(isoYear int) int64 {
	jan1 := gregorian.YearStartDay(isoYear)
	wd := gregorian.Weekday(jan1)
	var offset int64
	if wd <= 4 {
		offset = int64(1 - wd)
	} else {
		offset = int64(8 - wd)
	}
	return (jan1 + offset) * gregorian.DayMillis
}

// FromDayTimestamp decomposes a day-aligned millisecond timestamp.
func FromDayTimestamp(dayTimestamp int64) Date {
	year := gregorian.FromDayTimestamp(dayTimestamp).Year
	start := YearStartTimestamp(year)
	if dayTimestamp < start {
		year--
		start = YearStartTimestamp(year)
	} else if next := YearStartTimestamp(year + 1); dayTimestamp >= next {
		year++
		start = next
	}
	return Date{
		Year:         year,
		Week:         int((dayTimestamp-start)/gregorian.WeekMillis) + 1,
		Weekday:      gregorian.Weekday(dayTimestamp / gregorian.DayMillis),
		DayTimestamp: dayTimestamp,
	}
}

// FromWeekDate builds the decomposition for a week date the caller has
// already validated (week in 1..LastWeek(isoYear), weekday in 1..7).
func FromWeekDate(isoYear, week, weekday int) Date {
	ts := YearStartTimestamp(isoYear) +
		int64(week-1)*gregorian.WeekMillis +
		int64(weekday-1)*gregorian.DayMillis
	return Date{Year: isoYear, Week: week, Weekday: weekday, DayTimestamp: ts}
}
