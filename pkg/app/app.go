package app

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/store"
)

var errNoPersistence = errors.New("app: no persistence configured")

// NoEntry is shown in place of the agenda of a date without a file.
const NoEntry = "No entry for this date."

// Service provides high-level operations over agenda files.
// It wraps persistence so the UI, printers and exporters share one view of
// what a date holds.
type Service struct {
	Persistence store.Persistence

	// SkipBlank makes Next ignore files with no event text.
	SkipBlank bool
}

// Day is the rendered state of one date's agenda.
type Day struct {
	Date    date.Date     `json:"date" yaml:"date"`
	Title   string        `json:"title" yaml:"title"`
	Missing bool          `json:"missing,omitempty" yaml:"missing,omitempty"`
	Lines   []agenda.Line `json:"lines" yaml:"lines"`
	// Err is set when the file exists but could not be read.
	Err     error  `json:"-" yaml:"-"`
	Problem string `json:"error,omitempty" yaml:"error,omitempty"`
}

// Snapshot is everything the interactive view draws for one selected date.
type Snapshot struct {
	Selected date.Date
	Dates    store.Set
	Current  Day
	Next     Day
}

// HasEntry reports whether d has an agenda file in the snapshot's scan.
func (s Snapshot) HasEntry(d date.Date) bool {
	return s.Dates.Contains(d)
}

// Dates lists every date with an agenda file, sorted.
func (s *Service) Dates(ctx context.Context) ([]date.Date, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Dates(ctx), nil
}

// HasEntry reports whether d has an agenda file.
func (s *Service) HasEntry(ctx context.Context, d date.Date) (bool, error) {
	dates, err := s.Dates(ctx)
	if err != nil {
		return false, err
	}
	return store.NewSet(dates).Contains(d), nil
}

// Load reads the record for d; store.ErrNoRecord when absent.
func (s *Service) Load(ctx context.Context, d date.Date) (*agenda.Record, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Load(ctx, d)
}

// Day loads d for display. Absence and read errors are folded into the
// result instead of being returned.
func (s *Service) Day(ctx context.Context, d date.Date) Day {
	day := Day{Date: d, Title: d.AgendaTitle()}
	r, err := s.Load(ctx, d)
	switch {
	case errors.Is(err, store.ErrNoRecord):
		day.Missing = true
	case err != nil:
		day.Err = err
		day.Problem = err.Error()
	default:
		day.Lines = r.Lines()
	}
	return day
}

// Next is the date to preview after ref, see store.NextOnOrAfter. With
// SkipBlank set, dates whose file has no event text are not candidates.
func (s *Service) Next(ctx context.Context, dates []date.Date, ref date.Date) date.Date {
	if !s.SkipBlank {
		return store.NextOnOrAfter(dates, ref)
	}

	upcoming := make([]date.Date, 0, len(dates))
	for _, d := range dates {
		if !d.Before(ref) {
			upcoming = append(upcoming, d)
		}
	}
	date.Sort(upcoming)

	// NextOnOrAfter only ever looks at the first two candidates.
	var candidates []date.Date
	for _, d := range upcoming {
		if len(candidates) == 2 {
			break
		}
		if s.isBlank(ctx, d) {
			continue
		}
		candidates = append(candidates, d)
	}
	return store.NextOnOrAfter(candidates, ref)
}

func (s *Service) isBlank(ctx context.Context, d date.Date) bool {
	r, err := s.Load(ctx, d)
	if err != nil {
		// Unreadable files stay candidates so the error gets shown.
		return errors.Is(err, store.ErrNoRecord)
	}
	return r.IsEmpty()
}

// Snapshot rescans the directory and loads the selected and next dates.
func (s *Service) Snapshot(ctx context.Context, selected date.Date) (Snapshot, error) {
	dates, err := s.Dates(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	next := s.Next(ctx, dates, selected)
	return Snapshot{
		Selected: selected,
		Dates:    store.NewSet(dates),
		Current:  s.Day(ctx, selected),
		Next:     s.Day(ctx, next),
	}, nil
}

// Add appends e to d's file after validating both.
func (s *Service) Add(ctx context.Context, d date.Date, e agenda.Entry) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if err := d.Check(); err != nil {
		return err
	}
	if err := e.Validate(); err != nil {
		return err
	}
	return s.Persistence.Append(ctx, d, e)
}

// Remove deletes d's file.
func (s *Service) Remove(ctx context.Context, d date.Date) error {
	if s.Persistence == nil {
		return errNoPersistence
	}
	if err := d.Check(); err != nil {
		return err
	}
	return s.Persistence.Remove(ctx, d)
}

// Path is the file backing d.
func (s *Service) Path(d date.Date) (string, error) {
	if s.Persistence == nil {
		return "", errNoPersistence
	}
	return s.Persistence.Path(d), nil
}

// Watch subscribes to persistence change events.
func (s *Service) Watch(ctx context.Context) (<-chan store.Event, error) {
	if s.Persistence == nil {
		return nil, errNoPersistence
	}
	return s.Persistence.Watch(ctx)
}

// Range loads every date with a file between from and to inclusive. A zero
// bound is open. Unreadable files abort the walk.
func (s *Service) Range(ctx context.Context, from, to date.Date) ([]Entry, error) {
	dates, err := s.Dates(ctx)
	if err != nil {
		return nil, err
	}
	var out []Entry
	for _, d := range dates {
		if from != (date.Date{}) && d.Before(from) {
			continue
		}
		if to != (date.Date{}) && d.After(to) {
			continue
		}
		r, err := s.Load(ctx, d)
		if errors.Is(err, store.ErrNoRecord) {
			// Removed between scan and load.
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("app: load %s: %w", d, err)
		}
		out = append(out, Entry{Date: d, Record: r})
	}
	return out, nil
}

// Entry pairs a date with its record.
type Entry struct {
	Date   date.Date
	Record *agenda.Record
}
