package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/list"
)

func addList(topLevel *cobra.Command, g *globals) {
	ro := &options.RangeOptions{}
	oo := &options.OutputOptions{}

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls"},
		Short:   "List the dates that have an agenda.",
		Example: `
agenda list
agenda list --from 2024-01-01 -o yaml
`,
		Args: cobra.NoArgs,
		PreRunE: func(cmd *cobra.Command, args []string) error {
			return oo.Validate()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			oo.Out = cmd.OutOrStdout()
			from, to, err := ro.Range(g.today)
			if err != nil {
				return oo.HandleError(err)
			}
			svc, err := g.service()
			if err != nil {
				return oo.HandleError(err)
			}
			l := list.List{
				Service: svc,
				From:    from,
				To:      to,
				Output:  oo.Output,
				Out:     cmd.OutOrStdout(),
			}
			return oo.HandleError(l.Do(context.Background()))
		},
	}

	options.AddRangeArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)

	topLevel.AddCommand(cmd)
}
