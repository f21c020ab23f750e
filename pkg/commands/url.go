package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/runner/url"
)

func addURL(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "url <id>",
		Short: "Print the links found in a task.",
		Example: `
rtd url 12 | xargs open
`,
		Args: idArgs(0, "requires a task id"),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			id, _ := parseID(args[0])
			s, err := open(cmd)
			if err != nil {
				return err
			}
			r := url.URL{
				ID:    id,
				Store: s,
				Out:   cmd.OutOrStdout(),
			}
			return r.Do(context.Background())
		},
	}

	topLevel.AddCommand(cmd)
}
