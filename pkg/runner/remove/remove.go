package remove

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fatih/color"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
)

// Remove deletes the agenda file of one date.
type Remove struct {
	Service *app.Service
	Date    date.Date
	Out     io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not remove, no persistence")
	}
	if err := n.Service.Remove(ctx, n.Date); err != nil {
		return fmt.Errorf("remove %s: %w", n.Date.ISO(), err)
	}

	out := n.Out
	if out == nil {
		out = color.Output
	}
	_, _ = color.New(color.Faint).Fprintf(out, "removed %s\n", n.Date.AgendaTitle())
	return nil
}
