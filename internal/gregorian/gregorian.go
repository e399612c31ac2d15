// Package gregorian converts day-aligned millisecond timestamps to and
// from proleptic Gregorian calendar parts. All conversions treat the
// timestamp as UTC; callers apply zone offsets before entering.
package gregorian

const (
	// DayMillis is the length of a calendar day in milliseconds.
	DayMillis int64 = 86_400_000
	// WeekMillis is the length of a seven-day week in milliseconds.
	WeekMillis = 7 * DayMillis
)

const (
	// The unsigned zero year for internal calculations.
	// Must be 1 mod 400; days before it do not occur within the
	// supported timestamp range.
	absoluteZeroYear = -292277022399

	// The year of day zero of the internal day count.
	internalYear = 1

	// Offsets converting between internal, absolute and Unix day counts.
	absoluteToInternal int64 = (absoluteZeroYear - internalYear) * 365.2425
	internalToAbsolute       = -absoluteToInternal
	unixToInternal     int64 = 1969*365 + 1969/4 - 1969/100 + 1969/400
	unixToAbsolute           = unixToInternal + internalToAbsolute

	daysPer400Years = 146097
	daysPer100Years = 36524
	daysPer4Years   = 1461
)

// daysBefore[m] counts the days in a non-leap year before month m+1 begins.
var daysBefore = [...]int{
	0,
	31,
	31 + 28,
	31 + 28 + 31,
	31 + 28 + 31 + 30,
	31 + 28 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30,
	31 + 28 + 31 + 30 + 31 + 30 + 31 + 31 + 30 + 31 + 30 + 31,
}

// Date is the Gregorian decomposition of one calendar day.
type Date struct {
	Year                 int
	Month                int // 1..12
	MonthDay             int // 1..DaysInMonth(Year, Month)
	OrdinalDay           int // 1..DaysInYear(Year)
	IsLeapYear           bool
	StartOfYearTimestamp int64 // ms at 00:00 of January 1 of Year
	DayTimestamp         int64 // ms at 00:00 of this day
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// DaysInYear returns 365 or 366.
func DaysInYear(year int) int {
	if IsLeapYear(year) {
		return 366
	}
	return 365
}

// DaysInMonth returns the number of days in the given month of the given year.
func DaysInMonth(year, month int) int {
	if month == 2 && IsLeapYear(year) {
		return 29
	}
	return daysBefore[month] - daysBefore[month-1]
}

// SplitDay splits a zoned millisecond timestamp into the start of its
// calendar day and the remainder within the day. The remainder is always
// in [0, DayMillis), also for negative timestamps.
func SplitDay(ms int64) (dayTimestamp, remainder int64) {
	day := ms / DayMillis
	rem := ms - day*DayMillis
	if rem < 0 {
		day--
		rem += DayMillis
	}
	return day * DayMillis, rem
}

// Weekday returns the ISO weekday (1=Monday .. 7=Sunday) of an epoch day.
func Weekday(epochDay int64) int {
	// Epoch day zero, 1970-01-01, was a Thursday.
	return int(((epochDay+3)%7+7)%7) + 1
}

// YearStartDay returns the epoch day of January 1 of year.
func YearStartDay(year int) int64 {
	y := int64(year) - absoluteZeroYear

	n := y / 400
	y -= 400 * n
	d := int64(daysPer400Years) * n

	n = y / 100
	y -= 100 * n
	d += int64(daysPer100Years) * n

	n = y / 4
	y -= 4 * n
	d += int64(daysPer4Years) * n

	d += 365 * y

	return d - unixToAbsolute
}

// FromDayTimestamp decomposes a day-aligned millisecond timestamp.
func FromDayTimestamp(dayTimestamp int64) Date {
	epochDay := dayTimestamp / DayMillis
	if dayTimestamp < 0 && epochDay*DayMillis != dayTimestamp {
		epochDay--
	}
	year, yday := yearAndYearDay(epochDay)
	month, monthDay := monthAndMonthDay(year, yday)
	return Date{
		Year:                 year,
		Month:                month,
		MonthDay:             monthDay,
		OrdinalDay:           yday + 1,
		IsLeapYear:           IsLeapYear(year),
		StartOfYearTimestamp: (epochDay - int64(yday)) * DayMillis,
		DayTimestamp:         epochDay * DayMillis,
	}
}

// FromYearMonthDay builds the decomposition for a calendar day the caller
// has already validated (month in 1..12, monthDay in 1..DaysInMonth).
func FromYearMonthDay(year, month, monthDay int) Date {
	leap := IsLeapYear(year)
	yday := daysBefore[month-1] + monthDay - 1
	if leap && month > 2 {
		yday++
	}
	startDay := YearStartDay(year)
	return Date{
		Year:                 year,
		Month:                month,
		MonthDay:             monthDay,
		OrdinalDay:           yday + 1,
		IsLeapYear:           leap,
		StartOfYearTimestamp: startDay * DayMillis,
		DayTimestamp:         (startDay + int64(yday)) * DayMillis,
	}
}

// FromYearOrdinal builds the decomposition for a validated 1-based
// ordinal day of a year.
func FromYearOrdinal(year, ordinalDay int) Date {
	month, monthDay := monthAndMonthDay(year, ordinalDay-1)
	startDay := YearStartDay(year)
	return Date{
		Year:                 year,
		Month:                month,
		MonthDay:             monthDay,
		OrdinalDay:           ordinalDay,
		IsLeapYear:           IsLeapYear(year),
		StartOfYearTimestamp: startDay * DayMillis,
		DayTimestamp:         (startDay + int64(ordinalDay-1)) * DayMillis,
	}
}

// yearAndYearDay locates the year containing an epoch day by successively
// cutting 400-, 100-, 4- and 1-year blocks off the absolute day count.
// yday is 0-based.
func yearAndYearDay(epochDay int64) (year, yday int) {
	d := uint64(epochDay + unixToAbsolute)

	// Account for 400 year cycles.
	n := d / daysPer400Years
	y := 400 * n
	d -= daysPer400Years * n

	// Cut off 100-year cycles.
	// The last cycle has one extra leap year, so on the last day of that
	// year, d / daysPer100Years will be 4 instead of 3. Cut it back down
	// to 3 by subtracting n>>2.
	n = d / daysPer100Years
	n -= n >> 2
	y += 100 * n
	d -= daysPer100Years * n

	// Cut off 4-year cycles.
	// The last cycle has a missing leap year, which does not affect the
	// computation.
	n = d / daysPer4Years
	y += 4 * n
	d -= daysPer4Years * n

	// Cut off years within a 4-year cycle.
	// The last year is a leap year, so on the last day of that year,
	// d / 365 will be 4 instead of 3. Cut it back down to 3.
	n = d / 365
	n -= n >> 2
	y += n
	d -= 365 * n

	return int(int64(y) + absoluteZeroYear), int(d)
}

// monthAndMonthDay converts a 0-based day of year into month and day of month.
func monthAndMonthDay(year, yday int) (month, monthDay int) {
	day := yday
	if IsLeapYear(year) {
		switch {
		case day > 31+29-1:
			// After leap day; pretend it wasn't there.
			day--
		case day == 31+29-1:
			return 2, 29
		}
	}

	// Estimate month on assumption that every month has 31 days.
	// The estimate may be too low by at most one month, so adjust.
	month = day / 31
	end := daysBefore[month+1]
	var begin int
	if day >= end {
		month++
		begin = end
	} else {
		begin = daysBefore[month]
	}

	return month + 1, day - begin + 1
}
