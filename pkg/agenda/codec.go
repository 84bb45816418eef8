package agenda

import (
	"errors"
	"fmt"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

var (
	// ErrMalformed wraps TOML that cannot be read as a record.
	ErrMalformed = errors.New("agenda: malformed record")
	// ErrEmptyEntry is returned when appending an entry without text.
	ErrEmptyEntry = errors.New("agenda: entry text is empty")
)

const (
	fullDayKey = "day"
	timedKey   = "timestamp"
)

// Decode parses an agenda file. A section missing from the file takes its
// value from Default; timed events come back sorted.
func Decode(data []byte) (*Record, error) {
	var present map[string]interface{}
	if err := toml.Unmarshal(data, &present); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	var r Record
	if err := toml.Unmarshal(data, &r); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}

	def := Default()
	if _, ok := present[fullDayKey]; !ok {
		r.FullDay = def.FullDay
	}
	if _, ok := present[timedKey]; !ok {
		r.Timed = def.Timed
	}
	r.SortTimed()
	return &r, nil
}

// Entry is a single event to append to a date's file.
type Entry struct {
	Kind  Kind
	Start string
	End   string
	Text  string
}

// FullDay builds a full-day entry.
func FullDay(text string) Entry {
	return Entry{Kind: KindFullDay, Text: text}
}

// Timed builds an entry between start and end.
func Timed(start, end, text string) Entry {
	return Entry{Kind: KindTimed, Start: start, End: end, Text: text}
}

// Validate rejects entries that would render as blank.
func (e Entry) Validate() error {
	if strings.TrimSpace(e.Text) == "" {
		return ErrEmptyEntry
	}
	return nil
}

// block is one appended section. Only one of the slices is set.
type block struct {
	FullDay []FullDayEvent `toml:"day,omitempty"`
	Timed   []TimedEvent   `toml:"timestamp,omitempty"`
}

// Encode renders the entry as exactly one [[day]] or [[timestamp]] table.
func (e Entry) Encode() ([]byte, error) {
	if err := e.Validate(); err != nil {
		return nil, err
	}
	var b block
	switch e.Kind {
	case KindFullDay:
		b.FullDay = []FullDayEvent{{Event: e.Text}}
	case KindTimed:
		b.Timed = []TimedEvent{{Start: e.Start, End: e.End, Event: e.Text}}
	default:
		return nil, fmt.Errorf("agenda: unknown entry kind %v", e.Kind)
	}
	return toml.Marshal(b)
}
