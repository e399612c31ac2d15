package zonetime

import (
	"github.com/jacoelho/zonetime/errors"
	"github.com/jacoelho/zonetime/internal/clock"
	"github.com/jacoelho/zonetime/internal/gregorian"
	"github.com/jacoelho/zonetime/internal/isoweek"
	"github.com/jacoelho/zonetime/internal/zoneoffset"
)

// carried lists the sub-calendar values a derived DateTime starts with.
// A nil entry means the cache is invalidated and will be recomputed on
// demand; a non-nil entry is either the freshly computed sub-value or a
// cache carried over because the change provably cannot affect it.
type carried struct {
	greg  *gregorian.Date
	iso   *isoweek.Date
	clock *clock.Time
	zone  *zoneoffset.Parts
}

// shifted returns a copy of d moved by delta milliseconds, seeded with
// the given caches. The zone offset is unchanged.
func (d *DateTime) shifted(delta int64, c carried) (*DateTime, error) {
	timestamp := d.timestamp + delta
	if timestamp < MinTimestamp || timestamp > MaxTimestamp {
		return nil, errors.OutOfRange("timestamp", float64(timestamp), float64(MinTimestamp), float64(MaxTimestamp))
	}
	nd := &DateTime{
		timestamp:      timestamp,
		zoneOffset:     d.zoneOffset,
		zonedTimestamp: d.zonedTimestamp + delta,
	}
	if c.greg != nil {
		nd.gregCache.Store(c.greg)
	}
	if c.iso != nil {
		nd.isoCache.Store(c.iso)
	}
	if c.clock != nil {
		nd.clockCache.Store(c.clock)
	}
	if c.zone != nil {
		nd.zoneCache.Store(c.zone)
	}
	return nd, nil
}

// shiftedDate applies a Gregorian day change: the clock and zone caches
// survive, the ISO decomposition is invalidated.
func (d *DateTime) shiftedDate(prev, next gregorian.Date) (*DateTime, error) {
	return d.shifted(next.DayTimestamp-prev.DayTimestamp, carried{
		greg:  &next,
		clock: d.clockCache.Load(),
		zone:  d.zoneCache.Load(),
	})
}

// shiftedISODate applies an ISO week-date change: the clock and zone
// caches survive, the Gregorian decomposition is invalidated.
func (d *DateTime) shiftedISODate(prev, next isoweek.Date) (*DateTime, error) {
	return d.shifted(next.DayTimestamp-prev.DayTimestamp, carried{
		iso:   &next,
		clock: d.clockCache.Load(),
		zone:  d.zoneCache.Load(),
	})
}

// shiftedClock applies a time-of-day change: both date decompositions
// and the zone cache survive, since the day cannot change.
func (d *DateTime) shiftedClock(prev, next clock.Time) (*DateTime, error) {
	return d.shifted(next.DayOffset-prev.DayOffset, carried{
		greg:  d.gregCache.Load(),
		iso:   d.isoCache.Load(),
		clock: &next,
		zone:  d.zoneCache.Load(),
	})
}

// SetYear returns a new value with the Gregorian year replaced. Month
// and day of month are kept; the call fails if the kept day does not
// exist in the target year (February 29 outside leap years).
func (d *DateTime) SetYear(year int) (*DateTime, error) {
	if year < MinFullYear || year > MaxFullYear {
		return nil, errors.OutOfRange("year", float64(year), MinFullYear, MaxFullYear)
	}
	g := d.gregorianDate()
	if last := gregorian.DaysInMonth(year, g.Month); g.MonthDay > last {
		return nil, errors.OutOfRange("monthDay", float64(g.MonthDay), 1, float64(last))
	}
	return d.shiftedDate(g, gregorian.FromYearMonthDay(year, g.Month, g.MonthDay))
}

// SetOrdinalDay returns a new value with the day of year replaced.
func (d *DateTime) SetOrdinalDay(ordinalDay int) (*DateTime, error) {
	g := d.gregorianDate()
	if last := gregorian.DaysInYear(g.Year); ordinalDay < 1 || ordinalDay > last {
		return nil, errors.OutOfRange("ordinalDay", float64(ordinalDay), 1, float64(last))
	}
	return d.shiftedDate(g, gregorian.FromYearOrdinal(g.Year, ordinalDay))
}

// SetMonth returns a new value with the month replaced. The day of
// month is kept; the call fails rather than clamps if the kept day does
// not exist in the target month.
func (d *DateTime) SetMonth(month int) (*DateTime, error) {
	if month < 1 || month > 12 {
		return nil, errors.OutOfRange("month", float64(month), 1, 12)
	}
	g := d.gregorianDate()
	if last := gregorian.DaysInMonth(g.Year, month); g.MonthDay > last {
		return nil, errors.OutOfRange("monthDay", float64(g.MonthDay), 1, float64(last))
	}
	return d.shiftedDate(g, gregorian.FromYearMonthDay(g.Year, month, g.MonthDay))
}

// SetMonthDay returns a new value with the day of month replaced.
func (d *DateTime) SetMonthDay(monthDay int) (*DateTime, error) {
	g := d.gregorianDate()
	if last := gregorian.DaysInMonth(g.Year, g.Month); monthDay < 1 || monthDay > last {
		return nil, errors.OutOfRange("monthDay", float64(monthDay), 1, float64(last))
	}
	return d.shiftedDate(g, gregorian.FromYearMonthDay(g.Year, g.Month, monthDay))
}

// SetISOYear returns a new value with the ISO year replaced. Week and
// weekday are kept; the call fails if the kept week is 53 and the
// target year is not a long ISO year.
func (d *DateTime) SetISOYear(isoYear int) (*DateTime, error) {
	if isoYear < MinFullYear || isoYear > MaxFullYear {
		return nil, errors.OutOfRange("isoYear", float64(isoYear), MinFullYear, MaxFullYear)
	}
	i := d.isoDate()
	if last := isoweek.LastWeek(isoYear); i.Week > last {
		return nil, errors.OutOfRange("isoWeek", float64(i.Week), 1, float64(last))
	}
	return d.shiftedISODate(i, isoweek.FromWeekDate(isoYear, i.Week, i.Weekday))
}

// SetISOWeek returns a new value with the ISO week replaced.
func (d *DateTime) SetISOWeek(isoWeek int) (*DateTime, error) {
	i := d.isoDate()
	if last := isoweek.LastWeek(i.Year); isoWeek < 1 || isoWeek > last {
		return nil, errors.OutOfRange("isoWeek", float64(isoWeek), 1, float64(last))
	}
	return d.shiftedISODate(i, isoweek.FromWeekDate(i.Year, isoWeek, i.Weekday))
}

// SetWeekday returns a new value with the weekday replaced within the
// same ISO week.
func (d *DateTime) SetWeekday(weekday int) (*DateTime, error) {
	if weekday < 1 || weekday > 7 {
		return nil, errors.OutOfRange("weekday", float64(weekday), 1, 7)
	}
	i := d.isoDate()
	return d.shiftedISODate(i, isoweek.FromWeekDate(i.Year, i.Week, weekday))
}

// SetHour23 returns a new value with the hour of day replaced.
func (d *DateTime) SetHour23(hour23 int) (*DateTime, error) {
	if hour23 < 0 || hour23 > 23 {
		return nil, errors.OutOfRange("hour23", float64(hour23), 0, 23)
	}
	c := d.clockTime()
	return d.shiftedClock(c, clock.FromParts(hour23, c.Minute, c.Second, c.Millisecond))
}

// SetHour11 returns a new value with the 12-hour-clock hour replaced,
// keeping the meridiem.
func (d *DateTime) SetHour11(hour11 int) (*DateTime, error) {
	if hour11 < 0 || hour11 > 11 {
		return nil, errors.OutOfRange("hour11", float64(hour11), 0, 11)
	}
	c := d.clockTime()
	return d.shiftedClock(c, clock.FromParts(hour11+c.Meridiem, c.Minute, c.Second, c.Millisecond))
}

// SetMeridiem returns a new value with the meridiem replaced, keeping
// the 12-hour-clock hour. Any value from noon upward selects PM. The
// day never changes, but the instant moves by up to twelve hours, so
// the call can fail on the last representable day.
func (d *DateTime) SetMeridiem(meridiem int) (*DateTime, error) {
	m := MeridiemAM
	if meridiem >= MeridiemPM {
		m = MeridiemPM
	}
	c := d.clockTime()
	return d.shiftedClock(c, clock.FromParts(c.Hour11+m, c.Minute, c.Second, c.Millisecond))
}

// SetMinute returns a new value with the minute replaced.
func (d *DateTime) SetMinute(minute int) (*DateTime, error) {
	if minute < 0 || minute > 59 {
		return nil, errors.OutOfRange("minute", float64(minute), 0, 59)
	}
	c := d.clockTime()
	return d.shiftedClock(c, clock.FromParts(c.Hour23, minute, c.Second, c.Millisecond))
}

// SetSecond returns a new value with the second replaced.
func (d *DateTime) SetSecond(second int) (*DateTime, error) {
	if second < 0 || second > 59 {
		return nil, errors.OutOfRange("second", float64(second), 0, 59)
	}
	c := d.clockTime()
	return d.shiftedClock(c, clock.FromParts(c.Hour23, c.Minute, second, c.Millisecond))
}

// SetMillisecond returns a new value with the millisecond replaced.
func (d *DateTime) SetMillisecond(millisecond int) (*DateTime, error) {
	if millisecond < 0 || millisecond > 999 {
		return nil, errors.OutOfRange("millisecond", float64(millisecond), 0, 999)
	}
	c := d.clockTime()
	return d.shiftedClock(c, clock.FromParts(c.Hour23, c.Minute, c.Second, millisecond))
}

// SetZoneOffsetKeepTimestamp returns a new value at the given offset
// denoting the same instant: the timestamp is kept and every calendar
// field is reinterpreted through the new offset.
func (d *DateTime) SetZoneOffsetKeepTimestamp(zoneOffset float64) (*DateTime, error) {
	if err := validateOffset(zoneOffset); err != nil {
		return nil, err
	}
	return newDateTime(d.timestamp, zoneOffset), nil
}

// SetZoneOffsetKeepParts returns a new value at the given offset with
// every calendar and clock field unchanged: the zoned timestamp is kept
// and the instant moves instead.
func (d *DateTime) SetZoneOffsetKeepParts(zoneOffset float64) (*DateTime, error) {
	if err := validateOffset(zoneOffset); err != nil {
		return nil, err
	}
	timestamp := d.zonedTimestamp - zoneoffset.Millis(zoneOffset)
	if timestamp < MinTimestamp || timestamp > MaxTimestamp {
		return nil, errors.OutOfRange("timestamp", float64(timestamp), float64(MinTimestamp), float64(MaxTimestamp))
	}
	nd := &DateTime{
		timestamp:      timestamp,
		zoneOffset:     zoneOffset,
		zonedTimestamp: d.zonedTimestamp,
	}
	if g := d.gregCache.Load(); g != nil {
		nd.gregCache.Store(g)
	}
	if i := d.isoCache.Load(); i != nil {
		nd.isoCache.Store(i)
	}
	if c := d.clockCache.Load(); c != nil {
		nd.clockCache.Store(c)
	}
	return nd, nil
}
