package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/runner/toggle"
)

func addToggle(topLevel *cobra.Command) {
	topLevel.AddCommand(toggleCommand("toggle", "Mark a task done, or undone again.", toggle.Status))
}

func addToggleDate(topLevel *cobra.Command) {
	topLevel.AddCommand(toggleCommand("td", "Set the due date of a task to today, or clear it.", toggle.Date))
}

func toggleCommand(use, short string, field toggle.Field) *cobra.Command {
	return &cobra.Command{
		Use:   use + " <id>",
		Short: short,
		Example: `
rtd ` + use + ` 12
`,
		Args: idArgs(0, "requires a task id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, _ := parseID(args[0])
			s, err := open(cmd)
			if err != nil {
				return err
			}
			r := toggle.Toggle{
				ID:    id,
				Field: field,
				Store: s,
				Out:   cmd.OutOrStdout(),
			}
			return r.Do(context.Background())
		},
	}
}
