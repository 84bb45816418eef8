package options

import (
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/date"
	"tableflip.dev/agenda/pkg/timeutil"
)

// RangeOptions bound a listing or an export. Empty bounds are open.
type RangeOptions struct {
	From   string
	To     string
	Within string
}

func AddRangeArgs(cmd *cobra.Command, o *RangeOptions) {
	cmd.Flags().StringVar(&o.From, "from", "",
		`First date to include, example: --from="2024-01-01".`)
	cmd.Flags().StringVar(&o.To, "to", "",
		`Last date to include, example: --to="2024-12-31".`)
	cmd.Flags().StringVar(&o.Within, "within", "",
		`Only include dates within a window starting at --from or today, example: --within=2w.`)
}

// Range resolves the bounds. --within ends the range that many days after
// its start, counting the start.
func (o *RangeOptions) Range(today date.Date) (from, to date.Date, err error) {
	if o.From != "" {
		if from, err = date.Parse(o.From); err != nil {
			return date.Date{}, date.Date{}, err
		}
	}
	if o.To != "" {
		if to, err = date.Parse(o.To); err != nil {
			return date.Date{}, date.Date{}, err
		}
	}
	if o.Within == "" {
		return from, to, nil
	}

	if o.To != "" {
		return date.Date{}, date.Date{}, errors.New("--within and --to are mutually exclusive")
	}
	days, _, err := timeutil.ParseWindow(o.Within)
	if err != nil {
		return date.Date{}, date.Date{}, err
	}
	if from == (date.Date{}) {
		from = today
	}
	return from, from.AddDays(days - 1), nil
}
