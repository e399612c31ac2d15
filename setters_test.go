package zonetime_test

import (
	"testing"

	"github.com/jacoelho/zonetime"
	"github.com/jacoelho/zonetime/errors"
)

func mustDate(t *testing.T, year, month, monthDay int) *zonetime.DateTime {
	t.Helper()
	return zonetime.MustFromParts(zonetime.Parts{
		Year:       zonetime.Int(year),
		Month:      zonetime.Int(month),
		MonthDay:   zonetime.Int(monthDay),
		Hour23:     zonetime.Int(12),
		Minute:     zonetime.Int(30),
		ZoneOffset: zonetime.Float(0),
	})
}

func TestSetYear(t *testing.T) {
	d := mustDate(t, 2024, 2, 29)

	leap, err := d.SetYear(2020)
	if err != nil {
		t.Fatalf("SetYear(2020) error = %v", err)
	}
	if leap.Year() != 2020 || leap.Month() != 2 || leap.MonthDay() != 29 {
		t.Fatalf("got %s, want 2020-02-29", leap)
	}
	if leap.Hour23() != 12 || leap.Minute() != 30 {
		t.Error("clock must survive a year change")
	}

	_, err = d.SetYear(2023)
	v, ok := errors.AsValidation(err)
	if !ok || v.Code != errors.ErrOutOfRange || v.Field != "monthDay" {
		t.Fatalf("error = %v, want out-of-range monthDay (2023-02-29 does not exist)", err)
	}

	if _, err := d.SetYear(zonetime.MaxFullYear + 1); err == nil {
		t.Fatal("year above MaxFullYear must fail")
	}
}

func TestSetMonth(t *testing.T) {
	d := mustDate(t, 2024, 1, 31)

	march, err := d.SetMonth(3)
	if err != nil {
		t.Fatalf("SetMonth(3) error = %v", err)
	}
	if march.Month() != 3 || march.MonthDay() != 31 {
		t.Fatalf("got %s, want 2024-03-31", march)
	}

	_, err = d.SetMonth(2)
	if v, ok := errors.AsValidation(err); !ok || v.Field != "monthDay" {
		t.Fatalf("error = %v, want out-of-range monthDay (no February 31)", err)
	}
	if _, err := d.SetMonth(13); err == nil {
		t.Fatal("month 13 must fail")
	}
}

func TestSetMonthDayAndOrdinalDay(t *testing.T) {
	d := mustDate(t, 2024, 2, 10)

	last, err := d.SetMonthDay(29)
	if err != nil {
		t.Fatalf("SetMonthDay(29) error = %v", err)
	}
	if !last.IsLastMonthDay() {
		t.Error("2024-02-29 must be the last day of its month")
	}
	if _, err := d.SetMonthDay(30); err == nil {
		t.Fatal("2024-02-30 must fail")
	}

	first, err := d.SetOrdinalDay(1)
	if err != nil {
		t.Fatalf("SetOrdinalDay(1) error = %v", err)
	}
	if first.Month() != 1 || first.MonthDay() != 1 || !first.IsFirstYearDay() {
		t.Fatalf("got %s, want 2024-01-01", first)
	}
	if _, err := d.SetOrdinalDay(367); err == nil {
		t.Fatal("ordinal 367 must fail even in a leap year")
	}
	if _, err := mustDate(t, 2023, 2, 10).SetOrdinalDay(366); err == nil {
		t.Fatal("ordinal 366 must fail in a non-leap year")
	}
}

func TestSetISOFields(t *testing.T) {
	// 2021-01-01 is 2020-W53-5.
	d := zonetime.MustFromParts(zonetime.Parts{
		ISOYear:    zonetime.Int(2020),
		ISOWeek:    zonetime.Int(53),
		Weekday:    zonetime.Int(5),
		ZoneOffset: zonetime.Float(0),
	})

	_, err := d.SetISOYear(2021)
	v, ok := errors.AsValidation(err)
	if !ok || v.Code != errors.ErrOutOfRange || v.Field != "isoWeek" {
		t.Fatalf("error = %v, want out-of-range isoWeek (2021 has 52 weeks)", err)
	}

	long, err := d.SetISOYear(2015)
	if err != nil {
		t.Fatalf("SetISOYear(2015) error = %v", err)
	}
	if long.ISOYear() != 2015 || long.ISOWeek() != 53 || long.Weekday() != 5 {
		t.Fatalf("got %d-W%02d-%d, want 2015-W53-5", long.ISOYear(), long.ISOWeek(), long.Weekday())
	}
	if long.Year() != 2016 || long.Month() != 1 || long.MonthDay() != 1 {
		t.Fatalf("gregorian view = %s, want 2016-01-01", long)
	}

	monday, err := d.SetWeekday(1)
	if err != nil {
		t.Fatalf("SetWeekday(1) error = %v", err)
	}
	if monday.ISOWeek() != 53 || monday.Weekday() != 1 {
		t.Fatalf("got W%02d-%d, want W53-1", monday.ISOWeek(), monday.Weekday())
	}
	if _, err := d.SetWeekday(8); err == nil {
		t.Fatal("weekday 8 must fail")
	}

	week1, err := d.SetISOWeek(1)
	if err != nil {
		t.Fatalf("SetISOWeek(1) error = %v", err)
	}
	if week1.ISOYear() != 2020 || week1.ISOWeek() != 1 || week1.Weekday() != 5 {
		t.Fatalf("got %d-W%02d-%d, want 2020-W01-5", week1.ISOYear(), week1.ISOWeek(), week1.Weekday())
	}
	if _, err := d.SetISOWeek(54); err == nil {
		t.Fatal("week 54 must fail")
	}
}

func TestSetClockFields(t *testing.T) {
	d := mustDate(t, 2005, 6, 15)

	hour, err := d.SetHour23(23)
	if err != nil {
		t.Fatalf("SetHour23(23) error = %v", err)
	}
	if hour.Hour23() != 23 || hour.Hour11() != 11 || hour.Meridiem() != zonetime.MeridiemPM {
		t.Fatalf("clock = %d/%d/%d, want 23/11/12", hour.Hour23(), hour.Hour11(), hour.Meridiem())
	}
	if hour.Year() != 2005 || hour.Month() != 6 || hour.MonthDay() != 15 {
		t.Error("date must survive a clock change")
	}

	h11, err := d.SetHour11(3)
	if err != nil {
		t.Fatalf("SetHour11(3) error = %v", err)
	}
	if h11.Hour23() != 15 {
		t.Errorf("Hour23() = %d, want 15 (meridiem kept)", h11.Hour23())
	}

	am, err := d.SetMeridiem(zonetime.MeridiemAM)
	if err != nil {
		t.Fatalf("SetMeridiem(AM) error = %v", err)
	}
	if am.Hour23() != 0 || am.Hour11() != 0 {
		t.Errorf("after AM: %d/%d, want 0/0 (hour11 kept)", am.Hour23(), am.Hour11())
	}
	pm, err := am.SetMeridiem(zonetime.MeridiemPM)
	if err != nil {
		t.Fatalf("SetMeridiem(PM) error = %v", err)
	}
	if pm.Hour23() != 12 {
		t.Errorf("after PM: %d, want 12", pm.Hour23())
	}

	min, err := d.SetMinute(59)
	if err != nil || min.Minute() != 59 || min.Second() != 0 {
		t.Fatalf("SetMinute(59) = %v minute %d second %d", err, min.Minute(), min.Second())
	}
	sec, err := d.SetSecond(7)
	if err != nil || sec.Second() != 7 {
		t.Fatalf("SetSecond(7) = %v second %d", err, sec.Second())
	}
	ms, err := d.SetMillisecond(999)
	if err != nil || ms.Millisecond() != 999 {
		t.Fatalf("SetMillisecond(999) = %v millisecond %d", err, ms.Millisecond())
	}

	for _, fail := range []func() error{
		func() error { _, err := d.SetHour23(24); return err },
		func() error { _, err := d.SetHour11(12); return err },
		func() error { _, err := d.SetMinute(60); return err },
		func() error { _, err := d.SetSecond(-1); return err },
		func() error { _, err := d.SetMillisecond(1000); return err },
	} {
		if fail() == nil {
			t.Error("out-of-range clock value must fail")
		}
	}
}

func TestSetMeridiemAtTimestampBounds(t *testing.T) {
	last, err := zonetime.FromTimestamp(zonetime.MaxTimestamp, 0)
	if err != nil {
		t.Fatal(err)
	}

	// The last representable instant is midnight, so PM would move the
	// instant twelve hours past the maximum.
	_, err = last.SetMeridiem(zonetime.MeridiemPM)
	v, ok := errors.AsValidation(err)
	if !ok || v.Code != errors.ErrOutOfRange || v.Field != "timestamp" {
		t.Fatalf("error = %v, want out-of-range timestamp", err)
	}

	same, err := last.SetMeridiem(zonetime.MeridiemAM)
	if err != nil {
		t.Fatalf("SetMeridiem(AM) error = %v", err)
	}
	if !same.Equal(last) {
		t.Fatal("AM at an AM instant must keep the instant")
	}

	first, err := zonetime.FromTimestamp(zonetime.MinTimestamp, 0)
	if err != nil {
		t.Fatal(err)
	}
	noon, err := first.SetMeridiem(zonetime.MeridiemPM)
	if err != nil {
		t.Fatalf("SetMeridiem(PM) error = %v", err)
	}
	if noon.Hour23() != 12 || noon.Timestamp() != zonetime.MinTimestamp+12*3_600_000 {
		t.Fatalf("got hour %d at %d, want noon of the first day", noon.Hour23(), noon.Timestamp())
	}
}

func TestSetZoneOffsetKeepTimestamp(t *testing.T) {
	d, err := zonetime.FromTimestamp(0, 0)
	if err != nil {
		t.Fatal(err)
	}
	west, err := d.SetZoneOffsetKeepTimestamp(-1)
	if err != nil {
		t.Fatalf("SetZoneOffsetKeepTimestamp(-1) error = %v", err)
	}
	if west.Timestamp() != d.Timestamp() {
		t.Fatal("timestamp must be kept")
	}
	if !west.Equal(d) {
		t.Fatal("the instant must be unchanged")
	}
	if west.Year() != 1969 || west.MonthDay() != 31 || west.Hour23() != 23 {
		t.Fatalf("got %s, want 1969-12-31 hour 23", west)
	}
	if _, err := d.SetZoneOffsetKeepTimestamp(15); err == nil {
		t.Fatal("offset 15 must fail")
	}
}

func TestSetZoneOffsetKeepParts(t *testing.T) {
	d := mustDate(t, 2005, 6, 15)

	east, err := d.SetZoneOffsetKeepParts(2)
	if err != nil {
		t.Fatalf("SetZoneOffsetKeepParts(2) error = %v", err)
	}
	if east.Year() != d.Year() || east.Month() != d.Month() || east.MonthDay() != d.MonthDay() ||
		east.Hour23() != d.Hour23() || east.Minute() != d.Minute() {
		t.Fatal("every calendar and clock field must be kept")
	}
	if east.ZonedTimestamp() != d.ZonedTimestamp() {
		t.Fatal("zoned timestamp must be kept")
	}
	if got, want := east.Timestamp(), d.Timestamp()-2*3_600_000; got != want {
		t.Fatalf("Timestamp() = %d, want %d (instant moved west)", got, want)
	}
}
