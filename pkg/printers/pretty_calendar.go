package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/date"
)

const width = len("Mo Tu We Th Fr Sa Su") // an example week

// Calendar prints months consecutive month grids starting with the month of
// selected. Days for which has returns true are bold; selected is reversed.
func (pp *PrettyPrint) Calendar(selected date.Date, months int, has func(date.Date) bool) {
	first := selected.FirstOfMonth()
	for i := 0; i < months; i++ {
		pp.PrintMonth(first, selected, has)
		first = first.FirstOfNextMonth()
	}
}

// PrintMonth prints one Monday-first month grid for the month of then.
func (pp *PrettyPrint) PrintMonth(then, selected date.Date, has func(date.Date) bool) {
	out := pp.out()
	tf := color.New(color.FgWhite, color.Italic)

	m := strings.TrimSpace(then.CalendarTitle())
	mid := (width - len(m)) / 2
	if mid < 0 {
		mid = 0
	}
	_, _ = tf.Fprintf(out, "%s%s\n", strings.Repeat(" ", mid), m)

	h := color.New(color.Underline)
	_, _ = h.Fprintln(out, "Mo Tu We Th Fr Sa Su")

	first := then.FirstOfMonth()

	// Pad out the start of the month.
	for i := 1; i < first.DayOfWeek(); i++ {
		_, _ = fmt.Fprint(out, "   ")
	}

	l1 := color.New(color.Faint, color.FgWhite)
	l2 := color.New(color.Bold, color.FgHiWhite)
	l3 := color.New(color.Bold, color.ReverseVideo)

	d := first
	for d.Month == first.Month {
		printer := l1
		switch {
		case d == selected:
			printer = l3
		case has != nil && has(d):
			printer = l2
		}
		_, _ = printer.Fprintf(out, "%2d", d.Day)

		if d.DayOfWeek() == 7 {
			_, _ = fmt.Fprint(out, "\n")
		} else {
			_, _ = fmt.Fprint(out, " ")
		}
		d = d.Increment()
	}
	_, _ = fmt.Fprint(out, "\n\n")
}
