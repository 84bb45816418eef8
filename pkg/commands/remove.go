package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command, g *globals) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:     "remove",
		Aliases: []string{"rm"},
		Short:   "Delete a date's agenda file.",
		Example: `
agenda rm --on 2024-01-05
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
			r := remove.Remove{Service: svc, Date: d, Out: cmd.OutOrStdout()}
			return r.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do, g.today)

	topLevel.AddCommand(cmd)
}
