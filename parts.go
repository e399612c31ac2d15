package zonetime

import (
	"fmt"

	"github.com/jacoelho/zonetime/errors"
	"github.com/jacoelho/zonetime/internal/clock"
	"github.com/jacoelho/zonetime/internal/gregorian"
	"github.com/jacoelho/zonetime/internal/isoweek"
	"github.com/jacoelho/zonetime/internal/zoneoffset"
)

// Parts is a sparse record of calendar, clock and zone fields. A nil
// field is absent; FromParts resolves absent fields through a fixed
// defaulting cascade and cross-validates every redundant one.
type Parts struct {
	Year       *int
	OrdinalDay *int
	Month      *int
	MonthDay   *int

	ISOYear *int
	ISOWeek *int
	Weekday *int

	Hour23      *int
	Hour11      *int
	Meridiem    *int
	Minute      *int
	Second      *int
	Millisecond *int

	ZoneOffset *float64
	ZoneHour   *int
	ZoneMinute *int
	ZoneSecond *int
	// ZoneNegative selects the negative offset when ZoneHour is zero
	// ("-00:10" versus "+00:10"). A negative ZoneHour implies it.
	ZoneNegative *bool
}

// Int returns a pointer to v, for filling Parts literals.
func Int(v int) *int { return &v }

// Float returns a pointer to v, for filling Parts literals.
func Float(v float64) *float64 { return &v }

// Bool returns a pointer to v, for filling Parts literals.
func Bool(v bool) *bool { return &v }

// FromParts builds a DateTime from a sparse parts record.
//
// Resolution proceeds in strictly ordered stages: the zone offset, the
// clock time, then the date through either the Gregorian branch (year
// present and the ISO triple not fully present) or the ISO branch.
// Each absent field takes its documented default; each field made
// redundant by an earlier stage is compared against the derived value
// and a mismatch fails the whole call. A failed call never produces a
// partially resolved value.
func FromParts(p Parts) (*DateTime, error) {
	offset, err := resolvePartsZone(p)
	if err != nil {
		return nil, err
	}
	clockTime, err := resolvePartsClock(p)
	if err != nil {
		return nil, err
	}

	var (
		dayTimestamp int64
		greg         *gregorian.Date
		iso          *isoweek.Date
	)
	isoTripleFull := p.ISOYear != nil && p.ISOWeek != nil && p.Weekday != nil
	if p.Year != nil && !isoTripleFull {
		g, err := resolvePartsGregorian(p)
		if err != nil {
			return nil, err
		}
		dayTimestamp = g.DayTimestamp
		greg = &g
	} else {
		i, err := resolvePartsISO(p)
		if err != nil {
			return nil, err
		}
		dayTimestamp = i.DayTimestamp
		iso = &i
	}

	zonedTimestamp := dayTimestamp + clockTime.DayOffset
	timestamp := zonedTimestamp - zoneoffset.Millis(offset)
	if timestamp < MinTimestamp || timestamp > MaxTimestamp {
		return nil, errors.OutOfRange("timestamp", float64(timestamp), float64(MinTimestamp), float64(MaxTimestamp))
	}

	d := &DateTime{
		timestamp:      timestamp,
		zoneOffset:     offset,
		zonedTimestamp: zonedTimestamp,
	}
	if greg != nil {
		d.gregCache.Store(greg)
	}
	if iso != nil {
		d.isoCache.Store(iso)
	}
	d.clockCache.Store(&clockTime)
	return d, nil
}

// MustFromParts is like FromParts but panics on invalid parts. It is a
// convenience for call sites that statically know the parts are valid.
func MustFromParts(p Parts) *DateTime {
	d, err := FromParts(p)
	if err != nil {
		panic(fmt.Sprintf("zonetime: invalid parts: %v", err))
	}
	return d
}

// resolvePartsZone is stage one. The parts triple, when any of it is
// present, wins over the plain offset, which is then only cross-checked.
// With nothing given at all the machine's local offset applies.
func resolvePartsZone(p Parts) (float64, error) {
	triplePresent := p.ZoneHour != nil || p.ZoneMinute != nil || p.ZoneSecond != nil || p.ZoneNegative != nil
	if !triplePresent {
		if p.ZoneOffset == nil {
			return localZoneOffset(), nil
		}
		if err := validateOffset(*p.ZoneOffset); err != nil {
			return 0, err
		}
		return *p.ZoneOffset, nil
	}

	zone := ZoneParts{
		Hour:     intOrZero(p.ZoneHour),
		Minute:   intOrZero(p.ZoneMinute),
		Second:   intOrZero(p.ZoneSecond),
		Negative: p.ZoneNegative != nil && *p.ZoneNegative,
	}
	parts, err := resolveZoneParts(zone)
	if err != nil {
		return 0, err
	}
	offset := parts.Offset()
	if p.ZoneOffset != nil && *p.ZoneOffset != offset {
		return 0, errors.Inconsistent("zoneOffset", offset, *p.ZoneOffset)
	}
	return offset, nil
}

// resolvePartsClock is stage two. An explicit hour23 wins; hour11 and
// meridiem then become redundant and are cross-checked. Otherwise the
// 12-hour pair applies with both halves defaulting to zero (midnight).
func resolvePartsClock(p Parts) (clock.Time, error) {
	var hour23 int
	switch {
	case p.Hour23 != nil:
		hour23 = *p.Hour23
		if hour23 < 0 || hour23 > 23 {
			return clock.Time{}, errors.OutOfRange("hour23", float64(hour23), 0, 23)
		}
		if p.Hour11 != nil && *p.Hour11 != hour23%12 {
			return clock.Time{}, errors.Inconsistent("hour11", float64(hour23%12), float64(*p.Hour11))
		}
		if p.Meridiem != nil {
			meridiem := MeridiemAM
			if hour23 >= 12 {
				meridiem = MeridiemPM
			}
			if *p.Meridiem != meridiem {
				return clock.Time{}, errors.Inconsistent("meridiem", float64(meridiem), float64(*p.Meridiem))
			}
		}
	default:
		hour11 := intOrZero(p.Hour11)
		if hour11 < 0 || hour11 > 11 {
			return clock.Time{}, errors.OutOfRange("hour11", float64(hour11), 0, 11)
		}
		meridiem := intOrZero(p.Meridiem)
		if meridiem != MeridiemAM && meridiem != MeridiemPM {
			return clock.Time{}, errors.OutOfRangeValues("meridiem", float64(meridiem), "0 or 12")
		}
		hour23 = hour11 + meridiem
	}

	minute := intOrZero(p.Minute)
	if minute < 0 || minute > 59 {
		return clock.Time{}, errors.OutOfRange("minute", float64(minute), 0, 59)
	}
	second := intOrZero(p.Second)
	if second < 0 || second > 59 {
		return clock.Time{}, errors.OutOfRange("second", float64(second), 0, 59)
	}
	millisecond := intOrZero(p.Millisecond)
	if millisecond < 0 || millisecond > 999 {
		return clock.Time{}, errors.OutOfRange("millisecond", float64(millisecond), 0, 999)
	}
	return clock.FromParts(hour23, minute, second, millisecond), nil
}

// resolvePartsGregorian is stage three: the year anchors the date, then
// either the ordinal day or month and day of month locate the day.
// Supplied ISO fields are redundant here and only cross-checked.
func resolvePartsGregorian(p Parts) (gregorian.Date, error) {
	year := *p.Year
	if year < MinFullYear || year > MaxFullYear {
		return gregorian.Date{}, errors.OutOfRange("year", float64(year), MinFullYear, MaxFullYear)
	}

	var g gregorian.Date
	if p.OrdinalDay != nil {
		ordinalDay := *p.OrdinalDay
		if last := gregorian.DaysInYear(year); ordinalDay < 1 || ordinalDay > last {
			return gregorian.Date{}, errors.OutOfRange("ordinalDay", float64(ordinalDay), 1, float64(last))
		}
		g = gregorian.FromYearOrdinal(year, ordinalDay)
		if p.Month != nil && *p.Month != g.Month {
			return gregorian.Date{}, errors.Inconsistent("month", float64(g.Month), float64(*p.Month))
		}
		if p.MonthDay != nil && *p.MonthDay != g.MonthDay {
			return gregorian.Date{}, errors.Inconsistent("monthDay", float64(g.MonthDay), float64(*p.MonthDay))
		}
	} else {
		month := 1
		if p.Month != nil {
			month = *p.Month
		}
		if month < 1 || month > 12 {
			return gregorian.Date{}, errors.OutOfRange("month", float64(month), 1, 12)
		}
		monthDay := 1
		if p.MonthDay != nil {
			monthDay = *p.MonthDay
		}
		if last := gregorian.DaysInMonth(year, month); monthDay < 1 || monthDay > last {
			return gregorian.Date{}, errors.OutOfRange("monthDay", float64(monthDay), 1, float64(last))
		}
		g = gregorian.FromYearMonthDay(year, month, monthDay)
	}

	if p.ISOYear != nil || p.ISOWeek != nil || p.Weekday != nil {
		i := isoweek.FromDayTimestamp(g.DayTimestamp)
		if p.ISOYear != nil && *p.ISOYear != i.Year {
			return gregorian.Date{}, errors.Inconsistent("isoYear", float64(i.Year), float64(*p.ISOYear))
		}
		if p.ISOWeek != nil && *p.ISOWeek != i.Week {
			return gregorian.Date{}, errors.Inconsistent("isoWeek", float64(i.Week), float64(*p.ISOWeek))
		}
		if p.Weekday != nil && *p.Weekday != i.Weekday {
			return gregorian.Date{}, errors.Inconsistent("weekday", float64(i.Weekday), float64(*p.Weekday))
		}
	}
	return g, nil
}

// resolvePartsISO is stage four: the ISO year anchors the date, week
// and weekday default to 1. Supplied Gregorian fields are redundant
// here and only cross-checked.
func resolvePartsISO(p Parts) (isoweek.Date, error) {
	if p.ISOYear == nil {
		return isoweek.Date{}, errors.MissingAnchor()
	}
	isoYear := *p.ISOYear
	if isoYear < MinFullYear || isoYear > MaxFullYear {
		return isoweek.Date{}, errors.OutOfRange("isoYear", float64(isoYear), MinFullYear, MaxFullYear)
	}
	isoWeek := 1
	if p.ISOWeek != nil {
		isoWeek = *p.ISOWeek
	}
	if last := isoweek.LastWeek(isoYear); isoWeek < 1 || isoWeek > last {
		return isoweek.Date{}, errors.OutOfRange("isoWeek", float64(isoWeek), 1, float64(last))
	}
	weekday := 1
	if p.Weekday != nil {
		weekday = *p.Weekday
	}
	if weekday < 1 || weekday > 7 {
		return isoweek.Date{}, errors.OutOfRange("weekday", float64(weekday), 1, 7)
	}
	i := isoweek.FromWeekDate(isoYear, isoWeek, weekday)

	if p.Year != nil || p.Month != nil || p.MonthDay != nil || p.OrdinalDay != nil {
		g := gregorian.FromDayTimestamp(i.DayTimestamp)
		if p.Year != nil && *p.Year != g.Year {
			return isoweek.Date{}, errors.Inconsistent("year", float64(g.Year), float64(*p.Year))
		}
		if p.Month != nil && *p.Month != g.Month {
			return isoweek.Date{}, errors.Inconsistent("month", float64(g.Month), float64(*p.Month))
		}
		if p.MonthDay != nil && *p.MonthDay != g.MonthDay {
			return isoweek.Date{}, errors.Inconsistent("monthDay", float64(g.MonthDay), float64(*p.MonthDay))
		}
		if p.OrdinalDay != nil && *p.OrdinalDay != g.OrdinalDay {
			return isoweek.Date{}, errors.Inconsistent("ordinalDay", float64(g.OrdinalDay), float64(*p.OrdinalDay))
		}
	}
	return i, nil
}

func intOrZero(p *int) int {
	if p == nil {
		return 0
	}
	return *p
}
