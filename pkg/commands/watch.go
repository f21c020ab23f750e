package commands

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/runner/show"
	"tableflip.dev/rtd/pkg/runner/watch"
	"tableflip.dev/rtd/pkg/store"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch [id | @label | file | directory]",
		Short: "Print a view and print it again every time the tree changes.",
		Example: `
rtd watch
rtd watch @today
`,
		Args: cobra.MaximumNArgs(1),
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return targetCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer cancel()

			pp := printers.PrettyPrint{Out: cmd.OutOrStdout()}
			render := func(ctx context.Context) error {
				pp.Message("####### %s #######", s.Today())
				if len(args) == 0 {
					r := show.Show{
						Filter: store.Filter{DueOnly: true},
						Store:  s,
						Out:    cmd.OutOrStdout(),
					}
					return r.Do(ctx)
				}
				// Paths are resolved again since files may come and go.
				return showTarget(ctx, cmd, s, args[0])
			}

			r := watch.Watch{
				Render: render,
				Store:  s,
				Logger: newLogger(cmd),
			}
			err = r.Do(ctx)
			if errors.Is(err, context.Canceled) {
				return nil
			}
			return err
		},
	}

	topLevel.AddCommand(cmd)
}
