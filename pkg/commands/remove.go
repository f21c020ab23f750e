package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "rm <id>",
		Short: "Remove a task.",
		Example: `
rtd rm 12
`,
		Args: idArgs(0, "requires a task id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, _ := parseID(args[0])
			s, err := open(cmd)
			if err != nil {
				return err
			}
			r := remove.Remove{
				ID:    id,
				Store: s,
				Out:   cmd.OutOrStdout(),
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
