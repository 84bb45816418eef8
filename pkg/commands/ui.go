package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/ui"
	"tableflip.dev/agenda/pkg/tui"
	"tableflip.dev/agenda/pkg/tui/theme"
)

func addUI(topLevel *cobra.Command, g *globals) {
	do := &options.DateOptions{}

	cmd := &cobra.Command{
		Use:     "ui",
		Aliases: []string{"open"},
		Short:   "Open the interactive calendar.",
		Example: `
agenda ui
agenda ui --on 2024-12-24
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
			i := ui.UI{
				Service: svc,
				NoColor: g.cfg.NoColor,
				Options: tui.Options{
					Reference: d,
					Keys:      g.cfg.Keys,
					Months:    g.cfg.UI.Months,
					Refresh:   g.cfg.UI.Refresh,
					Theme:     theme.New(g.cfg.Colors),
				},
			}
			return i.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do, g.today)

	topLevel.AddCommand(cmd)
}
