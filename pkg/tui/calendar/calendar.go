// Package calendar renders Monday-first month grids for the interactive view.
package calendar

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"tableflip.dev/agenda/pkg/date"
)

// Header is the weekday row above each grid.
const Header = "Mo Tu We Th Fr Sa Su"

// Day describes a single day rendered in the calendar.
type Day struct {
	HasEntry   bool
	IsSelected bool
}

// Options controls calendar styling.
type Options struct {
	HeaderStyle   lipgloss.Style
	EmptyStyle    lipgloss.Style
	DayStyle      lipgloss.Style
	EntryStyle    lipgloss.Style
	SelectedStyle lipgloss.Style
	ShowHeader    bool
}

// Render produces a multi-line grid for the month containing month. info is
// asked about every day of that month.
func Render(month date.Date, info func(date.Date) Day, opts Options) string {
	first := month.FirstOfMonth()
	if !first.Validate() {
		return ""
	}
	daysInMonth := first.DaysInMonth()

	var lines []string
	if opts.ShowHeader {
		lines = append(lines, opts.HeaderStyle.Render(Header))
	}

	startOffset := first.DayOfWeek() - 1
	rows := (startOffset + daysInMonth + 6) / 7

	d := first
	for row := 0; row < rows; row++ {
		cells := make([]string, 0, 7)
		for col := 0; col < 7; col++ {
			day := row*7 + col - startOffset + 1
			if day < 1 || day > daysInMonth {
				cells = append(cells, opts.EmptyStyle.Render("  "))
				continue
			}
			var di Day
			if info != nil {
				di = info(d)
			}
			cells = append(cells, renderDay(di, d.Day, opts))
			d = d.Increment()
		}
		lines = append(lines, strings.Join(cells, opts.EmptyStyle.Render(" ")))
	}

	return strings.Join(lines, "\n")
}

// Selected beats entry, entry beats plain.
func renderDay(info Day, day int, opts Options) string {
	text := fmt.Sprintf("%2d", day)

	style := opts.DayStyle
	switch {
	case info.IsSelected:
		style = opts.SelectedStyle
	case info.HasEntry:
		style = opts.EntryStyle
	}
	return style.Render(text)
}

// Months returns n consecutive first-of-month dates starting at the month of d.
func Months(d date.Date, n int) []date.Date {
	out := make([]date.Date, 0, n)
	m := d.FirstOfMonth()
	for i := 0; i < n; i++ {
		out = append(out, m)
		m = m.FirstOfNextMonth()
	}
	return out
}
