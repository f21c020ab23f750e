package commands

import (
	"context"
	"errors"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "add <description> [file]",
		Short: "Add a task to the inbox, or to a file below the root.",
		Example: `
rtd add "call the plumber %2024-03-10 @home"
rtd add "review the draft @work" work/project.md
`,
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) < 1 {
				return errors.New("specify a task to add")
			}
			if len(args) > 2 {
				return errors.New("quote the description, only a file may follow it")
			}
			return nil
		},
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) != 1 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return fileCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return err
			}
			r := add.Add{
				Description: args[0],
				Store:       s,
				Out:         cmd.OutOrStdout(),
			}
			if len(args) == 2 {
				r.File = args[1]
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
