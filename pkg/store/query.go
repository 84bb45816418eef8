package store

import (
	"tableflip.dev/agenda/pkg/date"
)

// Set is a membership index over dates with an agenda file, used to
// highlight calendar days.
type Set map[date.Date]struct{}

// NewSet indexes dates.
func NewSet(dates []date.Date) Set {
	s := make(Set, len(dates))
	for _, d := range dates {
		s[d] = struct{}{}
	}
	return s
}

// Contains reports whether d has an agenda file.
func (s Set) Contains(d date.Date) bool {
	_, ok := s[d]
	return ok
}

// NextOnOrAfter picks the date to preview after ref: the earliest date with
// a file on or after ref, skipping ref itself when a later one exists. With
// no dates on or after ref, ref is returned.
//
// The choice is driven by file existence only; a file holding nothing but
// blank events still counts.
func NextOnOrAfter(dates []date.Date, ref date.Date) date.Date {
	upcoming := make([]date.Date, 0, len(dates))
	for _, d := range dates {
		if !d.Before(ref) {
			upcoming = append(upcoming, d)
		}
	}
	date.Sort(upcoming)

	switch {
	case len(upcoming) >= 2 && upcoming[0] == ref:
		return upcoming[1]
	case len(upcoming) >= 1:
		return upcoming[0]
	default:
		return ref
	}
}
