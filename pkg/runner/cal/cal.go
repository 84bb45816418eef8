package cal

import (
	"context"
	"errors"
	"io"

	"tableflip.dev/agenda/pkg/app"
	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/printers"
	"tableflip.dev/agenda/pkg/store"
)

// Cal prints month grids starting at the month of Date, marking dates that
// have an agenda.
type Cal struct {
	Service *app.Service
	Date    date.Date
	Months  int
	Out     io.Writer
}

func (n *Cal) Do(ctx context.Context) error {
	if n.Service == nil {
		return errors.New("can not print calendar, no persistence")
	}
	if err := n.Date.Check(); err != nil {
		return err
	}
	months := n.Months
	if months < 1 {
		months = 1
	}

	dates, err := n.Service.Dates(ctx)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Calendar(n.Date, months, store.NewSet(dates).Contains)
	return nil
}
