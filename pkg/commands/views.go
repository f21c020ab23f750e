package commands

import (
	"context"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/runner/show"
	"tableflip.dev/rtd/pkg/selector"
	"tableflip.dev/rtd/pkg/store"
	"tableflip.dev/rtd/pkg/timeutil"
)

// view is one of the fixed views over the tree.
type view struct {
	use     string
	aliases []string
	short   string
	filter  store.Filter
	inbox   bool
	// horizon adds the --within flag.
	horizon bool
}

var views = []view{{
	use:     "due",
	short:   "Show undone and done tasks due today or earlier.",
	filter:  store.Filter{DueOnly: true},
	horizon: true,
}, {
	use:   "all",
	short: "Show every task of every file.",
}, {
	use:     "inbox",
	aliases: []string{"i"},
	short:   "Show the tasks in the inbox.",
	inbox:   true,
}}

func addViews(topLevel *cobra.Command) {
	for _, v := range views {
		v := v
		within := ""
		cmd := &cobra.Command{
			Use:     v.use,
			Aliases: v.aliases,
			Short:   v.short,
			Example: `
rtd ` + v.use + `
`,
			Args: cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				if err := oo.Validate(); err != nil {
					return err
				}
				filter := v.filter
				if v.horizon {
					days, _, err := timeutil.ParseHorizon(within)
					if err != nil {
						return err
					}
					filter.Horizon = days
				}
				cmd.SilenceUsage = true
				s, err := open(cmd)
				if err != nil {
					return oo.HandleError(err)
				}
				r := show.Show{
					Filter: filter,
					Output: oo.Output,
					Store:  s,
					Out:    cmd.OutOrStdout(),
				}
				if v.inbox {
					r.Files = []string{s.InboxPath()}
				}
				err = r.Do(context.Background())
				return oo.HandleError(err)
			},
		}
		if v.horizon {
			cmd.Flags().StringVar(&within, "within", "",
				`Also show tasks due in the coming days, example: --within=1w2d.`)
		}
		addOutputArg(cmd)
		topLevel.AddCommand(cmd)
	}
}

func showResolved(ctx context.Context, cmd *cobra.Command, s *store.Store, target selector.Target) error {
	switch target.Kind {
	case selector.KindID:
		r := show.Get{
			ID:     target.ID,
			Output: oo.Output,
			Store:  s,
			Out:    cmd.OutOrStdout(),
		}
		return r.Do(ctx)
	case selector.KindLabel:
		r := show.Show{
			Filter: store.Filter{Label: target.Label},
			Output: oo.Output,
			Store:  s,
			Out:    cmd.OutOrStdout(),
		}
		return r.Do(ctx)
	default:
		r := show.Show{
			Files:  target.Files,
			Output: oo.Output,
			Store:  s,
			Out:    cmd.OutOrStdout(),
		}
		return r.Do(ctx)
	}
}
