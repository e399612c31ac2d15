package zonetime_test

import (
	"fmt"

	"github.com/jacoelho/zonetime"
)

func ExampleFromParts() {
	d, err := zonetime.FromParts(zonetime.Parts{
		Year:       zonetime.Int(2005),
		Month:      zonetime.Int(6),
		MonthDay:   zonetime.Int(15),
		Hour23:     zonetime.Int(14),
		Minute:     zonetime.Int(30),
		ZoneOffset: zonetime.Float(2),
	})
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d)
	// Output: 2005-06-15T14:30:00.000+02:00
}

func ExampleDateTime_OffsetMonths() {
	d := zonetime.MustFromParts(zonetime.Parts{
		Year:       zonetime.Int(2024),
		Month:      zonetime.Int(1),
		MonthDay:   zonetime.Int(31),
		ZoneOffset: zonetime.Float(0),
	})

	next, err := d.OffsetMonths(1, true)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(next)

	_, err = d.OffsetMonths(1, false)
	fmt.Println(err)
	// Output:
	// 2024-02-29T00:00:00.000Z
	// [datetime-out-of-range] monthDay out of range (expected: 1..29) (actual: 31)
}

func ExampleDateTime_SetZoneOffsetKeepTimestamp() {
	d := zonetime.MustFromParts(zonetime.Parts{
		Year:       zonetime.Int(2005),
		Month:      zonetime.Int(6),
		MonthDay:   zonetime.Int(15),
		Hour23:     zonetime.Int(14),
		Minute:     zonetime.Int(30),
		ZoneOffset: zonetime.Float(2),
	})

	west, err := d.SetZoneOffsetKeepTimestamp(-7)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(west)
	fmt.Println(west.Equal(d))
	// Output:
	// 2005-06-15T05:30:00.000-07:00
	// true
}

func ExampleParse() {
	d, err := zonetime.Parse("1969-12-31T23:50:00.000-00:10")
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(d.Timestamp())
	fmt.Println(d)
	// Output:
	// 0
	// 1969-12-31T23:50:00.000-00:10
}
