package zonetime

import (
	"fmt"
	"strings"

	"github.com/jacoelho/zonetime/errors"
)

// ISOString renders the canonical ISO-8601 form, for example
// "2005-06-15T14:30:00.000+02:00". Years outside 0..9999 use the
// six-digit signed form. An offset of exactly +0 renders as "Z"; a
// negative offset keeps its sign even when the hour is zero ("-00:10").
// Offsets with a seconds part append ":SS".
//
// The zone is rendered at second granularity. A fractional offset that
// is not a whole number of seconds is rounded in the rendered zone,
// so reparsing the string reproduces the calendar fields but shifts
// the instant by the sub-second residue.
func (d *DateTime) ISOString() string {
	g := d.gregorianDate()
	c := d.clockTime()

	var b strings.Builder
	writeYear(&b, g.Year)
	fmt.Fprintf(&b, "-%02d-%02dT%02d:%02d:%02d.%03d",
		g.Month, g.MonthDay, c.Hour23, c.Minute, c.Second, c.Millisecond)
	writeZone(&b, d)
	return b.String()
}

// String returns the canonical ISO-8601 form.
func (d *DateTime) String() string {
	return d.ISOString()
}

// MarshalText implements encoding.TextMarshaler using the canonical
// ISO-8601 form.
func (d *DateTime) MarshalText() ([]byte, error) {
	return []byte(d.ISOString()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts only
// the canonical form produced by ISOString.
func (d *DateTime) UnmarshalText(text []byte) error {
	nd, err := Parse(string(text))
	if err != nil {
		return err
	}
	d.timestamp = nd.timestamp
	d.zoneOffset = nd.zoneOffset
	d.zonedTimestamp = nd.zonedTimestamp
	d.gregCache.Store(nd.gregCache.Load())
	d.isoCache.Store(nd.isoCache.Load())
	d.clockCache.Store(nd.clockCache.Load())
	d.zoneCache.Store(nd.zoneCache.Load())
	return nil
}

func writeYear(b *strings.Builder, year int) {
	if year >= 0 && year <= 9999 {
		fmt.Fprintf(b, "%04d", year)
		return
	}
	sign := byte('+')
	if year < 0 {
		sign = '-'
		year = -year
	}
	b.WriteByte(sign)
	fmt.Fprintf(b, "%06d", year)
}

func writeZone(b *strings.Builder, d *DateTime) {
	z := d.zoneParts()
	if z.Hour == 0 && z.Minute == 0 && z.Second == 0 && !z.Negative {
		b.WriteByte('Z')
		return
	}
	sign := byte('+')
	hour := z.Hour
	if z.Negative {
		sign = '-'
		if hour < 0 {
			hour = -hour
		}
	}
	b.WriteByte(sign)
	fmt.Fprintf(b, "%02d:%02d", hour, z.Minute)
	if z.Second != 0 {
		fmt.Fprintf(b, ":%02d", z.Second)
	}
}

// Parse reads the canonical ISO-8601 form produced by ISOString. It is
// a strict fixed-position parser, not a general format engine: the date
// and clock parts, the millisecond fraction, and a zone designator
// ("Z", or a signed HH:MM or HH:MM:SS offset) are all mandatory except
// the offset's seconds.
func Parse(s string) (*DateTime, error) {
	input := s

	year, negative, rest, ok := splitYear(s)
	if !ok {
		return nil, errors.Parse(input, "malformed year")
	}
	if negative {
		year = -year
	}

	// "-MM-DDTHH:MM:SS.mmm" is 20 bytes of fixed positions.
	if len(rest) < 20 || rest[0] != '-' || rest[3] != '-' ||
		rest[6] != 'T' || rest[9] != ':' || rest[12] != ':' || rest[15] != '.' {
		return nil, errors.Parse(input, "malformed date or clock part")
	}
	month, ok1 := parseFixedDigits(rest, 1, 2)
	monthDay, ok2 := parseFixedDigits(rest, 4, 2)
	hour, ok3 := parseFixedDigits(rest, 7, 2)
	minute, ok4 := parseFixedDigits(rest, 10, 2)
	second, ok5 := parseFixedDigits(rest, 13, 2)
	millisecond, ok6 := parseFixedDigits(rest, 16, 3)
	if !ok1 || !ok2 || !ok3 || !ok4 || !ok5 || !ok6 {
		return nil, errors.Parse(input, "malformed date or clock part")
	}

	parts := Parts{
		Year:        &year,
		Month:       &month,
		MonthDay:    &monthDay,
		Hour23:      &hour,
		Minute:      &minute,
		Second:      &second,
		Millisecond: &millisecond,
	}
	if err := parseZone(input, rest[19:], &parts); err != nil {
		return nil, err
	}

	d, err := FromParts(parts)
	if err != nil {
		return nil, fmt.Errorf("parse %q: %w", input, err)
	}
	return d, nil
}

// splitYear reads either a four-digit year or a signed six-digit year.
func splitYear(s string) (year int, negative bool, rest string, ok bool) {
	if s == "" {
		return 0, false, "", false
	}
	if s[0] == '+' || s[0] == '-' {
		year, ok = parseFixedDigits(s, 1, 6)
		return year, s[0] == '-', s[min(7, len(s)):], ok
	}
	year, ok = parseFixedDigits(s, 0, 4)
	return year, false, s[min(4, len(s)):], ok
}

func parseZone(input, tz string, parts *Parts) error {
	if tz == "Z" {
		parts.ZoneOffset = Float(0)
		return nil
	}
	if len(tz) != 6 && len(tz) != 9 {
		return errors.Parse(input, "malformed zone offset")
	}
	if (tz[0] != '+' && tz[0] != '-') || tz[3] != ':' {
		return errors.Parse(input, "malformed zone offset")
	}
	hour, ok1 := parseFixedDigits(tz, 1, 2)
	minute, ok2 := parseFixedDigits(tz, 4, 2)
	if !ok1 || !ok2 {
		return errors.Parse(input, "malformed zone offset")
	}
	second := 0
	if len(tz) == 9 {
		if tz[6] != ':' {
			return errors.Parse(input, "malformed zone offset")
		}
		var ok bool
		second, ok = parseFixedDigits(tz, 7, 2)
		if !ok {
			return errors.Parse(input, "malformed zone offset")
		}
	}
	if tz[0] == '-' {
		hour = -hour
		parts.ZoneNegative = Bool(true)
	}
	parts.ZoneHour = &hour
	parts.ZoneMinute = &minute
	parts.ZoneSecond = &second
	return nil
}

// parseFixedDigits reads exactly length decimal digits at start.
func parseFixedDigits(value string, start, length int) (int, bool) {
	if start < 0 || length <= 0 || start+length > len(value) {
		return 0, false
	}
	n := 0
	for i := 0; i < length; i++ {
		ch := value[start+i]
		if ch < '0' || ch > '9' {
			return 0, false
		}
		n = n*10 + int(ch-'0')
	}
	return n, true
}
