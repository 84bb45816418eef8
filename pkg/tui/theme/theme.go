package theme

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/muesli/termenv"

	"tableflip.dev/agenda/pkg/config"
)

// Theme centralizes Lip Gloss styles for the Bubble Tea UI.
type Theme struct {
	Calendar CalendarTheme
	Agenda   AgendaTheme
	Help     lipgloss.Style
}

// CalendarTheme styles the month column.
type CalendarTheme struct {
	Frame       lipgloss.Style
	Title       lipgloss.Style
	MonthFrame  lipgloss.Style
	MonthTitle  lipgloss.Style
	Weekdays    lipgloss.Style
	Day         lipgloss.Style
	DayEntry    lipgloss.Style
	DaySelected lipgloss.Style
}

// AgendaTheme styles the agenda column and its two panes.
type AgendaTheme struct {
	Frame      lipgloss.Style
	Title      lipgloss.Style
	EntryFrame lipgloss.Style
	EntryTitle lipgloss.Style
	FullDay    lipgloss.Style
	Timed      lipgloss.Style
	Missing    lipgloss.Style
	Error      lipgloss.Style
}

// Default returns the built-in Rose Pine Moon theme.
func Default() Theme {
	return New(config.Default().Colors)
}

// New builds a theme from configured colours. Colours that fail to parse
// fall back to the terminal default.
func New(c config.Colors) Theme {
	frame := lipgloss.NewStyle().Border(lipgloss.RoundedBorder())

	return Theme{
		Calendar: CalendarTheme{
			Frame:      frame.BorderForeground(color(c.CalendarBox)).Padding(0, 1),
			Title:      lipgloss.NewStyle().Foreground(color(c.CalendarTitle)).Bold(true).Italic(true),
			MonthFrame: frame.BorderForeground(color(c.CalendarMonthBox)).Padding(0, 1),
			MonthTitle: lipgloss.NewStyle().Foreground(color(c.CalendarMonthTitle)).Bold(true),
			Weekdays: lipgloss.NewStyle().
				Foreground(color(c.CalendarDaysOfWeek)).
				Background(color(c.CalendarDaysOfWeekBg)).
				Bold(true).
				Underline(true),
			Day: lipgloss.NewStyle().
				Foreground(color(c.CalendarDay)).
				Background(color(c.CalendarDayBg)).
				Bold(true),
			DayEntry: lipgloss.NewStyle().
				Foreground(color(c.CalendarDayWithEntry)).
				Background(color(c.CalendarDayWithEntryBg)).
				Bold(true),
			DaySelected: lipgloss.NewStyle().
				Foreground(color(c.CalendarDaySelected)).
				Background(color(c.CalendarDaySelectedBg)).
				Bold(true).
				Italic(true),
		},
		Agenda: AgendaTheme{
			Frame:      frame.BorderForeground(color(c.AgendaBox)).Padding(0, 1),
			Title:      lipgloss.NewStyle().Foreground(color(c.AgendaTitle)).Bold(true).Italic(true),
			EntryFrame: frame.BorderForeground(color(c.AgendaEntryBox)).Padding(0, 1),
			EntryTitle: lipgloss.NewStyle().Foreground(color(c.AgendaEntryTitle)).Bold(true).Italic(true),
			FullDay:    lipgloss.NewStyle().Foreground(color(c.AgendaFullDayEvent)).Italic(true),
			Timed:      lipgloss.NewStyle().Foreground(color(c.AgendaTimedEvent)).Italic(true),
			Missing:    lipgloss.NewStyle().Foreground(color(c.AgendaEntryTitle)).Bold(true),
			Error:      lipgloss.NewStyle().Foreground(color(c.AgendaEntryTitle)).Bold(true).Underline(true),
		},
		Help: lipgloss.NewStyle().Foreground(blend(c.CalendarDaysOfWeekBg, c.AgendaBox)),
	}
}

// UseColor switches the global Lip Gloss profile; with enabled false every
// style renders as plain text.
func UseColor(enabled bool) {
	if !enabled {
		lipgloss.SetColorProfile(termenv.Ascii)
	}
}

func color(hex string) lipgloss.TerminalColor {
	c, err := colorful.Hex(hex)
	if err != nil {
		return lipgloss.NoColor{}
	}
	return lipgloss.Color(c.Hex())
}

// blend mixes two colours halfway in Lab space.
func blend(a, b string) lipgloss.TerminalColor {
	ca, errA := colorful.Hex(a)
	cb, errB := colorful.Hex(b)
	switch {
	case errA != nil && errB != nil:
		return lipgloss.NoColor{}
	case errA != nil:
		return lipgloss.Color(cb.Hex())
	case errB != nil:
		return lipgloss.Color(ca.Hex())
	}
	return lipgloss.Color(ca.BlendLab(cb, 0.5).Clamped().Hex())
}
