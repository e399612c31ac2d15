package zonetime

import (
	"github.com/jacoelho/zonetime/errors"
	"github.com/jacoelho/zonetime/internal/gregorian"
	"github.com/jacoelho/zonetime/internal/isoweek"
)

// OffsetMilliseconds returns a new value moved by n milliseconds. Plain
// timestamp arithmetic: only leaving the representable range can fail.
func (d *DateTime) OffsetMilliseconds(n int64) (*DateTime, error) {
	return d.shifted(n, carried{zone: d.zoneCache.Load()})
}

// OffsetSeconds returns a new value moved by n seconds.
func (d *DateTime) OffsetSeconds(n int64) (*DateTime, error) {
	return d.OffsetMilliseconds(n * 1_000)
}

// OffsetMinutes returns a new value moved by n minutes.
func (d *DateTime) OffsetMinutes(n int64) (*DateTime, error) {
	return d.OffsetMilliseconds(n * 60_000)
}

// OffsetHours returns a new value moved by n hours.
func (d *DateTime) OffsetHours(n int64) (*DateTime, error) {
	return d.OffsetMilliseconds(n * 3_600_000)
}

// OffsetDays returns a new value moved by n calendar days.
func (d *DateTime) OffsetDays(n int64) (*DateTime, error) {
	return d.OffsetMilliseconds(n * gregorian.DayMillis)
}

// OffsetMonths returns a new value moved by n calendar months, keeping
// the clock time.
//
// With respectMonthEnd, a value on the last day of its month lands on
// the last day of the target month, however long that month is. Without
// it the day of month is kept verbatim and the call fails when the
// target month is too short (January 31 plus one month has no February
// 31); the caller opts out of clamping explicitly.
func (d *DateTime) OffsetMonths(n int, respectMonthEnd bool) (*DateTime, error) {
	g := d.gregorianDate()

	month0 := g.Month - 1 + n
	yearOffset := floorDiv(month0, 12)
	month := floorMod(month0, 12) + 1
	year := g.Year + yearOffset
	if year < MinFullYear || year > MaxFullYear {
		return nil, errors.OutOfRange("year", float64(year), MinFullYear, MaxFullYear)
	}

	monthDay := g.MonthDay
	if respectMonthEnd && g.MonthDay == gregorian.DaysInMonth(g.Year, g.Month) {
		monthDay = gregorian.DaysInMonth(year, month)
	} else if last := gregorian.DaysInMonth(year, month); monthDay > last {
		return nil, errors.OutOfRange("monthDay", float64(monthDay), 1, float64(last))
	}
	return d.shiftedDate(g, gregorian.FromYearMonthDay(year, month, monthDay))
}

// OffsetYears returns a new value moved by n calendar years; it is
// OffsetMonths(12n, respectMonthEnd).
func (d *DateTime) OffsetYears(n int, respectMonthEnd bool) (*DateTime, error) {
	return d.OffsetMonths(n*12, respectMonthEnd)
}

// OffsetISOYears returns a new value moved by n ISO years, keeping week
// and weekday. With respectYearEnd, a value in the last week of its ISO
// year lands in the last week of the target year; without it, week 53
// fails in a 52-week target year.
func (d *DateTime) OffsetISOYears(n int, respectYearEnd bool) (*DateTime, error) {
	i := d.isoDate()

	isoYear := i.Year + n
	if isoYear < MinFullYear || isoYear > MaxFullYear {
		return nil, errors.OutOfRange("isoYear", float64(isoYear), MinFullYear, MaxFullYear)
	}

	isoWeek := i.Week
	if respectYearEnd && i.Week == isoweek.LastWeek(i.Year) {
		isoWeek = isoweek.LastWeek(isoYear)
	} else if last := isoweek.LastWeek(isoYear); isoWeek > last {
		return nil, errors.OutOfRange("isoWeek", float64(isoWeek), 1, float64(last))
	}
	return d.shiftedISODate(i, isoweek.FromWeekDate(isoYear, isoWeek, i.Weekday))
}

func floorDiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int) int {
	m := a % b
	if m != 0 && (m < 0) != (b < 0) {
		m += b
	}
	return m
}
