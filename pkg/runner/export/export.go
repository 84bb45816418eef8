package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/rs/zerolog/log"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
	ics "tableflip.dev/agenda/pkg/export"
)

// Export writes the agenda files between From and To as one iCalendar file.
type Export struct {
	Service *app.Service
	// From and To bound the export; a zero date is open.
	From date.Date
	To   date.Date
	// File is the target path; empty or "-" writes to Out.
	File string
	Now  time.Time
	Out  io.Writer
}

func (n *Export) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not export, no persistence")
	}
	for _, d := range []date.Date{n.From, n.To} {
		if d == (date.Date{}) {
			continue
		}
		if err := d.Check(); err != nil {
			return err
		}
	}
	if n.From != (date.Date{}) && n.To != (date.Date{}) && n.To.Before(n.From) {
		return fmt.Errorf("export: --to %s is before --from %s", n.To.ISO(), n.From.ISO())
	}

	entries, err := n.Service.Range(ctx, n.From, n.To)
	if err != nil {
		return err
	}

	now := n.Now
	if now.IsZero() {
		now = time.Now()
	}
	x := ics.ICS{Now: now.UTC()}

	if n.File == "" || n.File == "-" {
		out := n.Out
		if out == nil {
			out = os.Stdout
		}
		return x.Write(out, entries)
	}

	f, err := os.Create(n.File)
	if err != nil {
		return fmt.Errorf("export: %w", err)
	}
	if err := x.Write(f, entries); err != nil {
		_ = f.Close()
		return fmt.Errorf("export: write %s: %w", n.File, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("export: close %s: %w", n.File, err)
	}

	log.Info().Str("component", "export").Str("file", n.File).Int("dates", len(entries)).Msg("exported")
	if n.Out != nil {
		_, _ = color.New(color.Faint).Fprintf(n.Out, "exported %d dates to %s\n", len(entries), n.File)
	}
	return nil
}
