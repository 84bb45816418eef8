package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/edit"
)

func addEdit(topLevel *cobra.Command, g *globals) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:   "edit",
		Short: "Open a date's agenda file in $EDITOR.",
		Example: `
agenda edit
agenda edit --on 2024-01-05
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
			e := edit.Edit{
				Service: svc,
				Date:    d,
				In:      cmd.InOrStdin(),
				Out:     cmd.OutOrStdout(),
				Err:     cmd.ErrOrStderr(),
			}
			return e.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do, g.today)

	topLevel.AddCommand(cmd)
}
