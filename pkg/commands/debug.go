package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/runner/info"
)

func addDebug(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:     "debug",
		Aliases: []string{"info"},
		Short:   "Details about the task tree in use and where it was configured.",
		Example: `
rtd debug
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			cfg, s, err := openWithConfig(cmd)
			if err != nil {
				return err
			}
			r := info.Info{
				Config: cfg,
				Store:  s,
				Out:    cmd.OutOrStdout(),
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
