package commands

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/export"
)

func addExport(topLevel *cobra.Command, g *globals) {
	ro := &options.RangeOptions{}
	file := ""

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write agenda files as an iCalendar file.",
		Example: `
agenda export > agenda.ics
agenda export --from 2024-01-01 --to 2024-12-31 --out 2024.ics
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			from, to, err := ro.Range(g.today)
			if err != nil {
				return err
			}
			svc, err := g.service()
			if err != nil {
				return err
			}
			e := export.Export{
				Service: svc,
				From:    from,
				To:      to,
				File:    file,
				Now:     time.Now(),
				Out:     cmd.OutOrStdout(),
			}
			return e.Do(context.Background())
		},
	}

	options.AddRangeArgs(cmd, ro)
	cmd.Flags().StringVar(&file, "out", "", `File to write, "-" or empty for stdout.`)

	topLevel.AddCommand(cmd)
}
