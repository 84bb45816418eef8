package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/agenda/pkg/runner/key"
)

func addKey(topLevel *cobra.Command, g *globals) {
	cmd := &cobra.Command{
		Use:   "key",
		Short: "Print the keys of the interactive calendar.",
		Example: `
agenda key
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			k := key.Key{Keys: g.cfg.Keys, Out: cmd.OutOrStdout()}
			return k.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
