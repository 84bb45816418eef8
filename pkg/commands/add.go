package commands

import (
	"context"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/commands/options"
	"tableflip.dev/agenda/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command, g *globals) {
	do := &options.DateOptions{}
	i := &options.InteractiveOptions{}
	a := &add.Add{}

	cmd := &cobra.Command{
		Use:   "add [event...]",
		Short: "Append an event to a date's agenda.",
		Long: `Append one event to the agenda file of a date, creating the file when needed.
Without --start or --end the event lasts the whole day; --full forces that.`,
		Example: `
agenda add dentist
agenda add -s 09:00 -e 09:30 standup
agenda add --on 2024-02-29 -f leap day
agenda add -i
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if i.Interactive || len(args) > 0 {
				return nil
			}
			return cobra.MinimumNArgs(1)(cmd, args)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			d, err := do.Date()
			if err != nil {
				return err
			}
			svc, err := g.service()
			if err != nil {
				return err
			}
			a.Service = svc
			a.Date = d
			a.Text = strings.Join(args, " ")
			a.Interactive = i.Interactive
			a.Out = cmd.OutOrStdout()
			return a.Do(context.Background())
		},
	}

	options.AddDateArgs(cmd, do, g.today)
	options.InteractiveArgs(cmd, i)
	cmd.Flags().BoolVarP(&a.FullDay, "full", "f", false, "Add a full-day event.")
	cmd.Flags().StringVarP(&a.Start, "start", "s", "", "Start time of a timed event, HH:MM.")
	cmd.Flags().StringVarP(&a.End, "end", "e", "", "End time of a timed event, HH:MM.")

	topLevel.AddCommand(cmd)
}
