package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/runner/archive"
	"tableflip.dev/rtd/pkg/store"
)

func addArchive(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Move every done task to " + store.ArchiveFile + ".",
		Example: `
rtd archive
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return err
			}
			r := archive.Archive{
				Store: s,
				Out:   cmd.OutOrStdout(),
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
