package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/cal"
)

func addCal(topLevel *cobra.Command, g *globals) {
	do := &options.DateOptions{}
	months := 0

	cmd := &cobra.Command{
		Use:   "cal",
		Short: "Print month calendars marking dates with an agenda.",
		Example: `
agenda cal
agenda cal --months 12 -m 1
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := do.Date()
			if err != nil {
				return err
			}
			svc, err := g.service()
			if err != nil {
				return err
			}
			n := months
			if !cmd.Flags().Changed("months") {
				n = g.cfg.UI.Months
			}
			c := cal.Cal{Service: svc, Date: d, Months: n, Out: cmd.OutOrStdout()}
			return c.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do, g.today)
	cmd.Flags().IntVar(&months, "months", 0, "Number of months to print, defaults to ui.months.")

	topLevel.AddCommand(cmd)
}
