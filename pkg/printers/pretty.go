package printers

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/app"
)

// NoEntry is shown for a date without an agenda file.
const NoEntry = app.NoEntry

type PrettyPrint struct {
	// Out defaults to color.Output.
	Out io.Writer
}

func (pp *PrettyPrint) out() io.Writer {
	if pp.Out == nil {
		return color.Output
	}
	return pp.Out
}

func (pp *PrettyPrint) NewLine() {
	_, _ = fmt.Fprintln(pp.out(), "")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Fprintln(pp.out(), title)
}

func (pp *PrettyPrint) TitleWithCount(title string, count int) {
	t := color.New(color.Bold, color.Underline)
	c := color.New(color.Faint)

	_, _ = t.Fprint(pp.out(), title)
	_, _ = c.Fprintf(pp.out(), " - %d", count)

	switch count {
	case 1:
		_, _ = c.Fprintln(pp.out(), " event")
	default:
		_, _ = c.Fprintln(pp.out(), " events")
	}
}

// Day prints the title and events of one date.
func (pp *PrettyPrint) Day(day app.Day) {
	pp.TitleWithCount(day.Title, len(day.Lines))

	switch {
	case day.Err != nil:
		e := color.New(color.FgRed, color.Bold)
		_, _ = e.Fprintf(pp.out(), " %v\n\n", day.Err)
		return
	case day.Missing:
		f := color.New(color.FgRed, color.Bold)
		_, _ = f.Fprintf(pp.out(), " %s\n\n", NoEntry)
		return
	case len(day.Lines) == 0:
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Fprint(pp.out(), " none\n\n")
		return
	}

	full := color.New(color.FgBlue, color.Italic)
	timed := color.New(color.FgMagenta, color.Italic)
	for _, l := range day.Lines {
		switch l.Kind {
		case agenda.KindTimed:
			_, _ = timed.Fprintf(pp.out(), " %s - %s  %s\n", l.Start, l.End, l.Text)
		default:
			_, _ = full.Fprintf(pp.out(), " * %s\n", l.Text)
		}
	}
	_, _ = fmt.Fprintln(pp.out(), "")
}

// Table prints one row per date with an agenda file.
func (pp *PrettyPrint) Table(days []app.Day) {
	bold := color.New(color.Bold)
	faint := color.New(color.Faint)

	tbl := uitable.New()
	tbl.Separator = "  "
	tbl.MaxColWidth = 60
	tbl.AddRow(bold.Sprint("Date"), bold.Sprint("Day"), bold.Sprint("Events"), bold.Sprint("First"))
	for _, d := range days {
		first := faint.Sprint("-")
		switch {
		case d.Err != nil:
			first = color.New(color.FgRed).Sprint(d.Err.Error())
		case len(d.Lines) > 0:
			first = d.Lines[0].String()
		}
		tbl.AddRow(d.Date.ISO(), d.Date.WeekdayString(), len(d.Lines), first)
	}
	_, _ = fmt.Fprintln(pp.out(), tbl)
}

// Plain renders lines without colour, one per line, for piping.
func Plain(lines []agenda.Line) string {
	var b strings.Builder
	for _, l := range lines {
		b.WriteString(l.String())
		b.WriteByte('\n')
	}
	return b.String()
}
