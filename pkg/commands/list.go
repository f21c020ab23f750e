package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the task files below the root.",
		Example: `
rtd list
rtd list -o json
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := oo.Validate(); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			r := list.List{
				Output: oo.Output,
				Store:  s,
				Out:    cmd.OutOrStdout(),
			}
			err = r.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	addOutputArg(cmd)
	topLevel.AddCommand(cmd)
}
