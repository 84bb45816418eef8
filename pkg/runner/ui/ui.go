package ui

import (
	"context"
	"errors"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/tui"
	"tableflip.dev/agenda/pkg/tui/theme"
)

// ErrNoTerminal is returned when stdin or stdout is not a terminal.
var ErrNoTerminal = errors.New("ui: not a terminal")

type UI struct {
	Service *app.Service
	Options tui.Options
	NoColor bool

	// IsTerminal reports whether the process is attached to a terminal.
	// Defaults to checking stdin and stdout.
	IsTerminal func() bool
	// Run starts the program; defaults to tui.Run.
	Run func(ctx context.Context, svc *app.Service, opts tui.Options) error
}

func (n *UI) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not open ui, no persistence")
	}
	if err := n.Options.Reference.Check(); err != nil {
		return err
	}

	isTerm := n.IsTerminal
	if isTerm == nil {
		isTerm = stdioIsTerminal
	}
	if !isTerm() {
		return ErrNoTerminal
	}

	theme.UseColor(!n.NoColor)

	run := n.Run
	if run == nil {
		run = tui.Run
	}
	return run(ctx, n.Service, n.Options)
}

func stdioIsTerminal() bool {
	in, out := os.Stdin.Fd(), os.Stdout.Fd()
	return (isatty.IsTerminal(in) || isatty.IsCygwinTerminal(in)) &&
		(isatty.IsTerminal(out) || isatty.IsCygwinTerminal(out))
}
