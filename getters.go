package zonetime

import (
	"github.com/jacoelho/zonetime/internal/gregorian"
	"github.com/jacoelho/zonetime/internal/isoweek"
)

// Year returns the Gregorian year in the value's zone.
func (d *DateTime) Year() int { return d.gregorianDate().Year }

// OrdinalDay returns the 1-based day of the Gregorian year.
func (d *DateTime) OrdinalDay() int { return d.gregorianDate().OrdinalDay }

// Month returns the Gregorian month, 1..12.
func (d *DateTime) Month() int { return d.gregorianDate().Month }

// MonthDay returns the Gregorian day of the month.
func (d *DateTime) MonthDay() int { return d.gregorianDate().MonthDay }

// ISOYear returns the ISO-8601 week-numbering year, which near year
// boundaries can differ from the Gregorian year.
func (d *DateTime) ISOYear() int { return d.isoDate().Year }

// ISOWeek returns the ISO-8601 week number, 1..52 or 1..53.
func (d *DateTime) ISOWeek() int { return d.isoDate().Week }

// Weekday returns the ISO weekday, 1=Monday .. 7=Sunday.
func (d *DateTime) Weekday() int { return d.isoDate().Weekday }

// Hour23 returns the hour of day, 0..23.
func (d *DateTime) Hour23() int { return d.clockTime().Hour23 }

// Hour11 returns the 12-hour-clock hour, 0..11.
func (d *DateTime) Hour11() int { return d.clockTime().Hour11 }

// Meridiem returns MeridiemAM or MeridiemPM; Hour11()+Meridiem() == Hour23().
func (d *DateTime) Meridiem() int { return d.clockTime().Meridiem }

// Minute returns the minute of the hour.
func (d *DateTime) Minute() int { return d.clockTime().Minute }

// Second returns the second of the minute.
func (d *DateTime) Second() int { return d.clockTime().Second }

// Millisecond returns the millisecond of the second.
func (d *DateTime) Millisecond() int { return d.clockTime().Millisecond }

// ZoneHour returns the signed hour of the UTC offset. Use ZoneNegative
// to distinguish a negative offset whose hour is zero.
func (d *DateTime) ZoneHour() int { return d.zoneParts().Hour }

// ZoneMinute returns the minute part of the UTC offset.
func (d *DateTime) ZoneMinute() int { return d.zoneParts().Minute }

// ZoneSecond returns the second part of the UTC offset. The parts
// decomposition rounds the offset to whole seconds; ZoneOffset keeps
// the exact value.
func (d *DateTime) ZoneSecond() int { return d.zoneParts().Second }

// ZoneNegative reports whether the UTC offset is negative, including
// negative offsets smaller than one hour.
func (d *DateTime) ZoneNegative() bool { return d.zoneParts().Negative }

// IsLeapYear reports whether the Gregorian year is a leap year.
func (d *DateTime) IsLeapYear() bool { return d.gregorianDate().IsLeapYear }

// IsLongISOYear reports whether the ISO year has 53 weeks.
func (d *DateTime) IsLongISOYear() bool { return isoweek.IsLongYear(d.isoDate().Year) }

// IsFirstMonthDay reports whether the day is the first of its month.
func (d *DateTime) IsFirstMonthDay() bool { return d.gregorianDate().MonthDay == 1 }

// IsLastMonthDay reports whether the day is the last of its month.
func (d *DateTime) IsLastMonthDay() bool {
	g := d.gregorianDate()
	return g.MonthDay == gregorian.DaysInMonth(g.Year, g.Month)
}

// IsFirstYearDay reports whether the day is January 1.
func (d *DateTime) IsFirstYearDay() bool { return d.gregorianDate().OrdinalDay == 1 }

// IsLastYearDay reports whether the day is December 31.
func (d *DateTime) IsLastYearDay() bool {
	g := d.gregorianDate()
	return g.OrdinalDay == gregorian.DaysInYear(g.Year)
}

// IsFirstISOYearDay reports whether the day starts ISO week 1.
func (d *DateTime) IsFirstISOYearDay() bool {
	i := d.isoDate()
	return i.Week == 1 && i.Weekday == 1
}

// IsLastISOYearDay reports whether the day ends the last ISO week.
func (d *DateTime) IsLastISOYearDay() bool {
	i := d.isoDate()
	return i.Week == isoweek.LastWeek(i.Year) && i.Weekday == 7
}
