package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "mv <id> <file>",
		Short: "Move a task to the end of another file.",
		Example: `
rtd mv 12 work/project.md
`,
		Args: idArgs(1, "requires a task id and a destination file"),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return fileCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, _ := parseID(args[0])
			s, err := open(cmd)
			if err != nil {
				return err
			}
			r := move.Move{
				ID:    id,
				File:  args[1],
				Store: s,
				Out:   cmd.OutOrStdout(),
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
