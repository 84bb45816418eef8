package date

import (
	"errors"
	"fmt"
)

// ErrOutOfRange is returned by the name lookups for an index outside the table.
var ErrOutOfRange = errors.New("date: index out of range")

const (
	monthPlaceholder   = "ERROR: MONTH OUT OF RANGE!"
	weekdayPlaceholder = "ERROR: DAY OUT OF RANGE!"
)

var months = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}

var weekdays = [7]string{
	"Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday", "Sunday",
}

// MonthName returns the English name of month i, 1-indexed.
func MonthName(i int) (string, error) {
	if i < 1 || i > len(months) {
		return "", fmt.Errorf("%w: month %d", ErrOutOfRange, i)
	}
	return months[i-1], nil
}

// WeekdayName returns the English name of weekday i, 1 = Monday.
func WeekdayName(i int) (string, error) {
	if i < 1 || i > len(weekdays) {
		return "", fmt.Errorf("%w: weekday %d", ErrOutOfRange, i)
	}
	return weekdays[i-1], nil
}

// MonthString is MonthName for display; a bad month renders a placeholder.
func (d Date) MonthString() string {
	name, err := MonthName(d.Month)
	if err != nil {
		return monthPlaceholder
	}
	return name
}

// WeekdayString is WeekdayName for display; a bad weekday renders a placeholder.
func (d Date) WeekdayString() string {
	name, err := WeekdayName(d.DayOfWeek())
	if err != nil {
		return weekdayPlaceholder
	}
	return name
}

// PaddedDay is the two digit day used in filenames.
func (d Date) PaddedDay() string { return fmt.Sprintf("%02d", d.Day) }

// PaddedMonth is the two digit month used in filenames.
func (d Date) PaddedMonth() string { return fmt.Sprintf("%02d", d.Month) }

// OrdinalSuffix returns the English suffix for the day of month.
func (d Date) OrdinalSuffix() string {
	switch {
	case d.Day%10 == 1 && d.Day != 11:
		return "st"
	case d.Day%10 == 2 && d.Day != 12:
		return "nd"
	default:
		return "th"
	}
}

// CalendarTitle is the month heading, e.g. " January 2024 ".
func (d Date) CalendarTitle() string {
	return fmt.Sprintf(" %s %d ", d.MonthString(), d.Year)
}

// AgendaTitle is the agenda heading, e.g. "Monday, January 1st 2024".
func (d Date) AgendaTitle() string {
	return fmt.Sprintf("%s, %s %d%s %d", d.WeekdayString(), d.MonthString(), d.Day, d.OrdinalSuffix(), d.Year)
}

// ISO formats the date as YYYY-MM-DD.
func (d Date) ISO() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

func (d Date) String() string {
	return d.ISO()
}
