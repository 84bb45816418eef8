package add

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/huh"

	"tableflip.dev/agenda/pkg/agenda"
	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/printers"
)

// ErrAborted is returned when the interactive form is cancelled.
var ErrAborted = errors.New("add: aborted")

const (
	kindFullDay = "full-day"
	kindTimed   = "timed"
)

type Add struct {
	Service *app.Service
	Date    date.Date

	Text  string
	Start string
	End   string
	// FullDay forces a full-day entry even when times are given.
	FullDay bool

	// Interactive asks for the missing fields with a form before writing.
	Interactive bool
	// Form runs the prompt; defaults to a huh form on the terminal.
	Form func(ctx context.Context, a *Add) error

	Out io.Writer
}

// Entry resolves the flags into the entry to append. Without -f and without
// any time, the entry is full-day.
func (n *Add) Entry() agenda.Entry {
	text := strings.TrimSpace(n.Text)
	if n.FullDay || (n.Start == "" && n.End == "") {
		return agenda.FullDay(text)
	}
	return agenda.Timed(strings.TrimSpace(n.Start), strings.TrimSpace(n.End), text)
}

func (n *Add) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not add, no persistence")
	}
	if err := n.Date.Check(); err != nil {
		return err
	}

	if n.Interactive {
		form := n.Form
		if form == nil {
			form = runForm
		}
		if err := form(ctx, n); err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return ErrAborted
			}
			return fmt.Errorf("form: %w", err)
		}
	}

	if err := n.Service.Add(ctx, n.Date, n.Entry()); err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Day(n.Service.Day(ctx, n.Date))
	return nil
}

func runForm(ctx context.Context, n *Add) error {
	kind := kindFullDay
	if !n.FullDay && (n.Start != "" || n.End != "") {
		kind = kindTimed
	}

	err := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Kind").
				Description(n.Date.AgendaTitle()).
				Options(
					huh.NewOption("Full day", kindFullDay),
					huh.NewOption("Timed", kindTimed),
				).
				Value(&kind),
			huh.NewInput().
				Title("Event").
				Validate(validateText).
				Value(&n.Text),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Start").
				Placeholder("09:00").
				Value(&n.Start),
			huh.NewInput().
				Title("End").
				Placeholder("10:00").
				Value(&n.End),
		).WithHideFunc(func() bool { return kind != kindTimed }),
	).RunWithContext(ctx)
	if err != nil {
		return err
	}

	n.FullDay = kind == kindFullDay
	return nil
}

func validateText(s string) error {
	if strings.TrimSpace(s) == "" {
		return fmt.Errorf("event is required")
	}
	return nil
}
