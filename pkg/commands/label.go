package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/runner/label"
)

func addLabel(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "al <id> <@label>",
		Short: "Add a label to a task.",
		Example: `
rtd al 12 @home
`,
		Args: idArgs(1, "requires a task id and a label"),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return labelCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, _ := parseID(args[0])
			s, err := open(cmd)
			if err != nil {
				return err
			}
			r := label.Label{
				ID:    id,
				Label: args[1],
				Store: s,
				Out:   cmd.OutOrStdout(),
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
