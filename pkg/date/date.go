// Package date implements the proleptic Gregorian calendar date used to key
// agenda files.
package date

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ErrInvalid is returned when a date fails Validate.
var ErrInvalid = errors.New("date: invalid date")

// Date is a calendar day. The zero value is not a valid date; values built
// from untrusted input must be checked with Validate before use.
type Date struct {
	Day   int `json:"day" yaml:"day"`
	Month int `json:"month" yaml:"month"`
	Year  int `json:"year" yaml:"year"`
}

// New returns the date for the given year, month and day without validating it.
func New(year, month, day int) Date {
	return Date{Day: day, Month: month, Year: year}
}

// Today converts a wall-clock instant into its calendar date. Callers compute
// it once and pass the result around.
func Today(now time.Time) Date {
	y, m, d := now.Date()
	return Date{Day: d, Month: int(m), Year: y}
}

// Parse reads a YYYY-MM-DD date; month and day may omit the zero padding.
func Parse(s string) (Date, error) {
	parts := strings.Split(strings.TrimSpace(s), "-")
	if len(parts) != 3 {
		return Date{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalid, s)
	}
	var nums [3]int
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return Date{}, fmt.Errorf("%w: %q is not YYYY-MM-DD", ErrInvalid, s)
		}
		nums[i] = n
	}
	d := New(nums[0], nums[1], nums[2])
	if !d.Validate() {
		return Date{}, fmt.Errorf("%w: %s", ErrInvalid, d.ISO())
	}
	return d, nil
}

// DayOfWeek returns the weekday with Monday = 1 and Sunday = 7, using
// Zeller's congruence.
func (d Date) DayOfWeek() int {
	month, year := d.Month, d.Year
	// January and February count as months 13 and 14 of the previous year.
	if month == 1 || month == 2 {
		month += 12
		year--
	}

	k := year % 100
	j := year / 100

	h := (d.Day + (13*(month+1))/5 + k + k/4 + j/4 - 2*j) % 7
	if h < 0 {
		h += 7
	}

	// h is 0 = Saturday .. 6 = Friday.
	return ((h + 5) % 7) + 1
}

// IsLeapYear reports whether the date's year has a 29th of February.
func (d Date) IsLeapYear() bool {
	return d.Year%4 == 0 && (d.Year%100 != 0 || d.Year%400 == 0)
}

// DaysInMonth returns the length of the date's month.
func (d Date) DaysInMonth() int {
	if d.Month == 2 {
		if d.IsLeapYear() {
			return 29
		}
		return 28
	}
	// (month-1) % 7 % 2 alternates 0,1,0,1 across the 31/30 day months.
	return 31 - ((d.Month-1)%7)%2
}

// Validate reports whether the date exists: positive year, month in 1..12 and
// day within the month.
func (d Date) Validate() bool {
	if d.Year <= 0 {
		return false
	}
	if d.Month < 1 || d.Month > 12 {
		return false
	}
	return d.Day >= 1 && d.Day <= d.DaysInMonth()
}

// Check returns ErrInvalid wrapped with the date when Validate fails.
func (d Date) Check() error {
	if !d.Validate() {
		return fmt.Errorf("%w: day=%d month=%d year=%d", ErrInvalid, d.Day, d.Month, d.Year)
	}
	return nil
}

// Increment returns the following day.
func (d Date) Increment() Date {
	if d.Day < d.DaysInMonth() {
		d.Day++
		return d
	}
	d.Day = 1
	if d.Month == 12 {
		d.Month = 1
		d.Year++
	} else {
		d.Month++
	}
	return d
}

// Decrement returns the previous day.
func (d Date) Decrement() Date {
	if d.Day > 1 {
		d.Day--
		return d
	}
	if d.Month == 1 {
		d.Month = 12
		d.Year--
	} else {
		d.Month--
	}
	// Month and year are already moved back, so this is the previous month's length.
	d.Day = d.DaysInMonth()
	return d
}

// AddDays moves the date by n days, forwards for positive n and backwards for
// negative n. It steps one day at a time; n is expected to be small.
func (d Date) AddDays(n int) Date {
	for ; n > 0; n-- {
		d = d.Increment()
	}
	for ; n < 0; n++ {
		d = d.Decrement()
	}
	return d
}

// FirstOfNextMonth returns day 1 of the following month.
func (d Date) FirstOfNextMonth() Date {
	next := Date{Day: 1, Month: d.Month + 1, Year: d.Year}
	if d.Month == 12 {
		next.Month = 1
		next.Year++
	}
	return next
}

// FirstOfMonth returns day 1 of the date's month.
func (d Date) FirstOfMonth() Date {
	return Date{Day: 1, Month: d.Month, Year: d.Year}
}

// Compare returns -1, 0 or +1 ordering by year, then month, then day.
func (d Date) Compare(o Date) int {
	switch {
	case d.Year != o.Year:
		return sign(d.Year - o.Year)
	case d.Month != o.Month:
		return sign(d.Month - o.Month)
	default:
		return sign(d.Day - o.Day)
	}
}

// Before reports whether d is earlier than o.
func (d Date) Before(o Date) bool { return d.Compare(o) < 0 }

// After reports whether d is later than o.
func (d Date) After(o Date) bool { return d.Compare(o) > 0 }

// Equal reports whether both dates name the same day.
func (d Date) Equal(o Date) bool { return d == o }

// Time returns midnight of the date in loc.
func (d Date) Time(loc *time.Location) time.Time {
	return time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, loc)
}

func sign(n int) int {
	switch {
	case n < 0:
		return -1
	case n > 0:
		return 1
	}
	return 0
}

// Sort orders dates chronologically in place.
func Sort(dates []Date) {
	sort.Slice(dates, func(i, j int) bool {
		return dates[i].Before(dates[j])
	})
}
