package options

import (
	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/date"
)

// DateOptions select one date. Day, month and year default to today; --on
// replaces all three.
type DateOptions struct {
	Day   int
	Month int
	Year  int
	On    string
}

func AddDateArgs(cmd *cobra.Command, o *DateOptions, today date.Date) {
	cmd.Flags().IntVarP(&o.Day, "day", "d", today.Day,
		"Day of the month.")
	cmd.Flags().IntVarP(&o.Month, "month", "m", today.Month,
		"Month, 1 to 12.")
	cmd.Flags().IntVarP(&o.Year, "year", "y", today.Year,
		"Four digit year.")
	cmd.Flags().StringVar(&o.On, "on", "",
		`Specify the date at once, example: --on="2024-02-29".`)
}

// Date resolves and validates the selected date.
func (o *DateOptions) Date() (date.Date, error) {
	if o.On != "" {
		return date.Parse(o.On)
	}
	d := date.New(o.Year, o.Month, o.Day)
	if err := d.Check(); err != nil {
		return date.Date{}, err
	}
	return d, nil
}
