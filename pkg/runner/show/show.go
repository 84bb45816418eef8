package show

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/printers"
)

// Show prints the agenda of one date and, optionally, of the next date with
// an agenda after it.
type Show struct {
	Service *app.Service
	Date    date.Date
	// Next also prints the date the interactive view would preview.
	Next   bool
	Output string
	Out    io.Writer
}

// Result is the machine-readable form of a show.
type Result struct {
	Day  app.Day  `json:"day" yaml:"day"`
	Next *app.Day `json:"next,omitempty" yaml:"next,omitempty"`
}

func (n *Show) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not show, no persistence")
	}
	if err := n.Date.Check(); err != nil {
		return err
	}

	res := Result{Day: n.Service.Day(ctx, n.Date)}
	if n.Next {
		dates, err := n.Service.Dates(ctx)
		if err != nil {
			return err
		}
		next := n.Service.Day(ctx, n.Service.Next(ctx, dates, n.Date))
		res.Next = &next
	}

	if n.Output != "" && n.Output != printers.FormatText {
		return printers.Encode(n.Out, n.Output, res)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Day(res.Day)
	if res.Next != nil {
		pp.Day(*res.Next)
	}
	return nil
}
