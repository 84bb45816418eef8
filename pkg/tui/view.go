package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/tui/calendar"
)

const (
	defaultWidth  = 100
	defaultHeight = 40

	calendarShare = 40 // percent of the width given to the month column

	fullDayMarker = "• "
	ellipsis      = "…"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	footer := m.footer()
	bodyHeight := height - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}

	left := width * calendarShare / 100
	right := width - left

	body := lipgloss.JoinHorizontal(lipgloss.Top,
		m.calendarColumn(left, bodyHeight),
		m.agendaColumn(right, bodyHeight),
	)
	body = lipgloss.NewStyle().MaxHeight(bodyHeight).Render(body)

	return lipgloss.JoinVertical(lipgloss.Left, body, footer)
}

func (m Model) footer() string {
	line := m.help.View(m.keys)
	switch {
	case m.err != nil:
		line += "  " + m.opts.Theme.Agenda.Error.Render(m.err.Error())
	case m.status != "":
		line += "  " + m.opts.Theme.Help.Render(m.status)
	}
	return line
}

// innerWidth is the content width left inside style at outer width w.
func innerWidth(style lipgloss.Style, w int) int {
	inner := w - style.GetHorizontalFrameSize()
	if inner < 1 {
		return 1
	}
	return inner
}

func (m Model) calendarColumn(width, height int) string {
	th := m.opts.Theme.Calendar
	selected := m.nav.Current()

	frame := th.Frame.Width(width - th.Frame.GetHorizontalBorderSize())
	inner := innerWidth(th.Frame, width)

	opts := calendar.Options{
		ShowHeader:    true,
		HeaderStyle:   th.Weekdays,
		EmptyStyle:    th.Day,
		DayStyle:      th.Day,
		EntryStyle:    th.DayEntry,
		SelectedStyle: th.DaySelected,
	}
	info := func(d date.Date) calendar.Day {
		return calendar.Day{
			HasEntry:   m.loaded && m.snap.HasEntry(d),
			IsSelected: d == selected,
		}
	}

	monthFrame := th.MonthFrame.
		Width(inner - th.MonthFrame.GetHorizontalBorderSize()).
		Align(lipgloss.Center)

	parts := []string{lipgloss.PlaceHorizontal(inner, lipgloss.Center, th.Title.Render("Calendar"))}
	for _, month := range calendar.Months(selected, m.opts.Months) {
		grid := calendar.Render(month, info, opts)
		title := th.MonthTitle.Render(strings.TrimSpace(month.CalendarTitle()))
		parts = append(parts, monthFrame.Render(lipgloss.JoinVertical(lipgloss.Center, title, grid)))
	}

	return frame.
		Height(height - th.Frame.GetVerticalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, parts...))
}

func (m Model) agendaColumn(width, height int) string {
	th := m.opts.Theme.Agenda

	frame := th.Frame.Width(width - th.Frame.GetHorizontalBorderSize())
	inner := innerWidth(th.Frame, width)

	title := lipgloss.PlaceHorizontal(inner, lipgloss.Center, th.Title.Render("Agenda"))
	paneHeight := (height - th.Frame.GetVerticalFrameSize() - lipgloss.Height(title)) / 2

	var current, next string
	if m.loaded {
		current = m.agendaPane(m.snap.Current, inner, paneHeight)
		next = m.agendaPane(m.snap.Next, inner, paneHeight)
	} else {
		selected := m.nav.Current()
		current = m.pane(selected.AgendaTitle(), []string{"Loading…"}, inner, paneHeight)
		next = m.pane("", nil, inner, paneHeight)
	}

	return frame.
		Height(height - th.Frame.GetVerticalBorderSize()).
		Render(lipgloss.JoinVertical(lipgloss.Left, title, current, next))
}

// agendaPane renders one date: its events, the no-entry notice, or the read
// error.
func (m Model) agendaPane(day app.Day, width, height int) string {
	th := m.opts.Theme.Agenda
	text := innerWidth(th.EntryFrame, width)

	var lines []string
	switch {
	case day.Err != nil:
		lines = append(lines, th.Error.Render(clip(day.Err.Error(), text)))
	case day.Missing:
		lines = append(lines, th.Missing.Render(clip(app.NoEntry, text)))
	default:
		for _, l := range day.Lines {
			lines = append(lines, renderLine(th.FullDay, th.Timed, l, text))
		}
	}
	return m.pane(day.Title, lines, width, height)
}

func (m Model) pane(title string, lines []string, width, height int) string {
	th := m.opts.Theme.Agenda
	text := innerWidth(th.EntryFrame, width)

	content := append([]string{
		lipgloss.PlaceHorizontal(text, lipgloss.Center, th.EntryTitle.Render(clip(title, text))),
		"",
	}, lines...)

	style := th.EntryFrame.Width(width - th.EntryFrame.GetHorizontalBorderSize())
	if h := height - th.EntryFrame.GetVerticalBorderSize(); h > 0 {
		style = style.Height(h).MaxHeight(height)
	}
	return style.Render(strings.Join(content, "\n"))
}

func renderLine(full, timed lipgloss.Style, l agenda.Line, width int) string {
	if l.Kind == agenda.KindTimed {
		return timed.Render(clip(l.Start+" – "+l.End+"  "+l.Text, width))
	}
	return full.Render(clip(fullDayMarker+l.Text, width))
}

func clip(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return truncate.StringWithTail(s, uint(width), ellipsis)
}
