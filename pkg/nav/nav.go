// Package nav tracks which date the interactive view has selected.
package nav

import "tableflip.dev/agenda/pkg/date"

// Event is a navigation intent decoded from user input.
type Event int

const (
	None Event = iota
	Advance
	Retreat
	Quit
)

func (e Event) String() string {
	switch e {
	case Advance:
		return "advance"
	case Retreat:
		return "retreat"
	case Quit:
		return "quit"
	default:
		return "none"
	}
}

// Navigator holds the reference date the view opened on and how many days
// the selection has moved from it.
type Navigator struct {
	reference date.Date
	shift     int
}

// New starts a navigator at reference with no shift.
func New(reference date.Date) *Navigator {
	return &Navigator{reference: reference}
}

// Reference is the date the navigator was created with.
func (n *Navigator) Reference() date.Date {
	return n.reference
}

// Shift is the signed day offset from the reference.
func (n *Navigator) Shift() int {
	return n.shift
}

// Current is the selected date.
func (n *Navigator) Current() date.Date {
	return n.reference.AddDays(n.shift)
}

// Apply updates the shift for ev. It returns false once ev is Quit.
func (n *Navigator) Apply(ev Event) bool {
	switch ev {
	case Advance:
		n.shift++
	case Retreat:
		n.shift--
	case Quit:
		return false
	}
	return true
}
