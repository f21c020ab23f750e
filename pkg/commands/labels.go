package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/runner/labels"
)

func addLabels(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "labels",
		Short: "List every label in use.",
		Example: `
rtd labels
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
			r := labels.Labels{
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
