// Package export writes agenda records as iCalendar.
package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	ical "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
)

const (
	ProductID = "-//tableflip.dev//agenda//EN"

	clockLayout    = "15:04"
	floatingLayout = "20060102T150405"
)

// namespace seeds event UIDs so re-exports of the same event keep their UID.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://tableflip.dev/agenda"))

// ICS converts records into a calendar.
type ICS struct {
	// Now stamps DTSTAMP on every event.
	Now time.Time
}

// Calendar builds the calendar for entries. Full-day events become all-day
// events. Timed events whose start and end parse as HH:MM get floating local
// times; others fall back to all-day with the raw times in the description.
func (x ICS) Calendar(entries []app.Entry) *ical.Calendar {
	cal := ical.NewCalendar()
	cal.SetMethod(ical.MethodPublish)
	cal.SetProductId(ProductID)

	for _, e := range entries {
		if e.Record == nil {
			continue
		}
		for i, ev := range e.Record.FullDay {
			if strings.TrimSpace(ev.Event) == "" {
				continue
			}
			vev := cal.AddEvent(uid(e.Date, agenda.KindFullDay, i, ev.Event))
			vev.SetDtStampTime(x.Now)
			vev.SetSummary(ev.Event)
			allDay(vev, e.Date)
		}
		for i, ev := range e.Record.Timed {
			if strings.TrimSpace(ev.Event) == "" {
				continue
			}
			vev := cal.AddEvent(uid(e.Date, agenda.KindTimed, i, ev.Start+ev.End+ev.Event))
			vev.SetDtStampTime(x.Now)
			vev.SetSummary(ev.Event)

			start, end, ok := span(e.Date, ev.Start, ev.End)
			if !ok {
				allDay(vev, e.Date)
				vev.SetDescription(fmt.Sprintf("%s - %s", ev.Start, ev.End))
				continue
			}
			vev.SetProperty(ical.ComponentPropertyDtStart, start.Format(floatingLayout))
			vev.SetProperty(ical.ComponentPropertyDtEnd, end.Format(floatingLayout))
		}
	}
	return cal
}

// Write serializes the calendar for entries to w.
func (x ICS) Write(w io.Writer, entries []app.Entry) error {
	_, err := io.WriteString(w, x.Calendar(entries).Serialize())
	return err
}

func allDay(vev *ical.VEvent, d date.Date) {
	start := d.Time(time.UTC)
	vev.SetAllDayStartAt(start)
	vev.SetAllDayEndAt(d.Increment().Time(time.UTC))
}

// span resolves HH:MM stamps on d. An end before the start runs past
// midnight.
func span(d date.Date, start, end string) (time.Time, time.Time, bool) {
	s, err := time.Parse(clockLayout, strings.TrimSpace(start))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	e, err := time.Parse(clockLayout, strings.TrimSpace(end))
	if err != nil {
		return time.Time{}, time.Time{}, false
	}
	day := d.Time(time.UTC)
	from := day.Add(time.Duration(s.Hour())*time.Hour + time.Duration(s.Minute())*time.Minute)
	to := day.Add(time.Duration(e.Hour())*time.Hour + time.Duration(e.Minute())*time.Minute)
	if to.Before(from) {
		to = to.Add(24 * time.Hour)
	}
	return from, to, true
}

func uid(d date.Date, kind agenda.Kind, index int, text string) string {
	name := fmt.Sprintf("%s/%s/%d/%s", d.ISO(), kind, index, text)
	return uuid.NewSHA1(namespace, []byte(name)).String() + "@agenda"
}
