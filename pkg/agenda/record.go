// Package agenda holds the per-date record of full-day and timed events and
// its TOML file format.
package agenda

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"tableflip.dev/agenda/pkg/date"
)

// Ext is the extension of agenda files.
const Ext = "toml"

// Kind tells full-day and timed events apart.
type Kind int

const (
	KindFullDay Kind = iota
	KindTimed
)

func (k Kind) String() string {
	switch k {
	case KindFullDay:
		return "full-day"
	case KindTimed:
		return "timed"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText renders the kind by name in JSON and YAML output.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Kind) UnmarshalText(b []byte) error {
	switch string(b) {
	case "full-day":
		*k = KindFullDay
	case "timed":
		*k = KindTimed
	default:
		return fmt.Errorf("agenda: unknown kind %q", b)
	}
	return nil
}

// FullDayEvent lasts the whole day.
type FullDayEvent struct {
	Event string `toml:"event" json:"event" yaml:"event"`
}

// TimedEvent runs between two free-form time stamps, by convention HH:MM.
type TimedEvent struct {
	Start string `toml:"start" json:"start" yaml:"start"`
	End   string `toml:"end" json:"end" yaml:"end"`
	Event string `toml:"event" json:"event" yaml:"event"`
}

func (t TimedEvent) less(o TimedEvent) bool {
	if t.Start != o.Start {
		return t.Start < o.Start
	}
	if t.End != o.End {
		return t.End < o.End
	}
	return t.Event < o.Event
}

// Record is the content of one agenda file.
type Record struct {
	FullDay []FullDayEvent `toml:"day" json:"day" yaml:"day"`
	Timed   []TimedEvent   `toml:"timestamp" json:"timestamp" yaml:"timestamp"`
}

// Default is the record used for sections missing from a file: one blank
// event of each kind. Blank events are never rendered.
func Default() Record {
	return Record{
		FullDay: []FullDayEvent{{}},
		Timed:   []TimedEvent{{}},
	}
}

// SortTimed orders timed events by start, end, then text.
func (r *Record) SortTimed() {
	sort.SliceStable(r.Timed, func(i, j int) bool {
		return r.Timed[i].less(r.Timed[j])
	})
}

// IsEmpty reports whether no event carries any text.
func (r *Record) IsEmpty() bool {
	return len(r.Lines()) == 0
}

// Line is one rendered agenda line.
type Line struct {
	Kind  Kind   `json:"kind" yaml:"kind"`
	Start string `json:"start,omitempty" yaml:"start,omitempty"`
	End   string `json:"end,omitempty" yaml:"end,omitempty"`
	Text  string `json:"text" yaml:"text"`
}

func (l Line) String() string {
	if l.Kind == KindTimed {
		return fmt.Sprintf("%s - %s  %s", l.Start, l.End, l.Text)
	}
	return l.Text
}

// Lines returns the events to display: full-day events first, then timed
// events in sorted order. Events with blank text are skipped.
func (r *Record) Lines() []Line {
	var lines []Line
	for _, e := range r.FullDay {
		if strings.TrimSpace(e.Event) == "" {
			continue
		}
		lines = append(lines, Line{Kind: KindFullDay, Text: e.Event})
	}
	for _, e := range r.Timed {
		if strings.TrimSpace(e.Event) == "" {
			continue
		}
		lines = append(lines, Line{Kind: KindTimed, Start: e.Start, End: e.End, Text: e.Event})
	}
	return lines
}

// Filename maps a date to its agenda file name, DD-MM-YYYY.toml.
func Filename(d date.Date) string {
	return fmt.Sprintf("%s-%s-%04d.%s", d.PaddedDay(), d.PaddedMonth(), d.Year, Ext)
}

// Path joins baseDir and the date's filename.
func Path(baseDir string, d date.Date) string {
	return filepath.Join(baseDir, Filename(d))
}
