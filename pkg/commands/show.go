package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/show"
)

func addShow(topLevel *cobra.Command, g *globals) {
	do := &options.DateOptions{}
	oo := &options.OutputOptions{}
	next := false

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print the agenda of a date.",
		Example: `
agenda show
agenda show --next
agenda show --on 2024-01-05 -o json
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return oo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			d, err := do.Date()
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := g.service()
			if err != nil {
				return oo.HandleError(err)
			}
			s := show.Show{
				Service: svc,
				Date:    d,
				Next:    next,
				Output:  oo.Output,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(s.Do(context.Background()))
		},
	}

	options.AddDateArgs(cmd, do, g.today)
	options.AddOutputArg(cmd, oo)
	cmd.Flags().BoolVarP(&next, "next", "n", false, "Also print the next date with an agenda.")

	topLevel.AddCommand(cmd)
}
