package list

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/printers"
)

// List prints every date with an agenda file.
type List struct {
	Service *app.Service
	// From and To bound the listing; a zero date is open.
	From   date.Date
	To     date.Date
	Output string
	Out    io.Writer
}

func (n *List) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not list, no persistence")
	}

	dates, err := n.Service.Dates(ctx)
	if err != nil {
		return err
	}

	days := make([]app.Day, 0, len(dates))
	for _, d := range dates {
		if n.From != (date.Date{}) && d.Before(n.From) {
			continue
		}
		if n.To != (date.Date{}) && d.After(n.To) {
			continue
		}
		days = append(days, n.Service.Day(ctx, d))
	}

	if n.Output != "" && n.Output != printers.FormatText {
		return printers.Encode(n.Out, n.Output, days)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if len(days) == 0 {
		pp.Title("No agenda files.")
		return nil
	}
	pp.Table(days)
	return nil
}
