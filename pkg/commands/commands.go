package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/log"
	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/commands/options"
	"tableflip.dev/rtd/pkg/selector"
	"tableflip.dev/rtd/pkg/store"
)

var (
	ro = &options.RootOptions{}
	oo = &options.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "rtd [id | @label | file | directory]",
		Short: base.Wrap80("Tasks kept as single lines in a tree of markdown files."),
		Long: base.Wrap80(`Tasks kept as single lines in a tree of markdown files.

Given an id, rtd prints that task. Given a label, it prints every task carrying
the label. Given a file or directory below the root, it prints the tasks found
there.`),
		Example: `
rtd 12
rtd @home
rtd work/project.md
`,
		Args:          cobra.MaximumNArgs(1),
		SilenceErrors: true,
		ValidArgsFunction: func(cmd *cobra.Command, args []string, toComplete string) ([]string, cobra.ShellCompDirective) {
			if len(args) > 0 {
				return nil, cobra.ShellCompDirectiveNoFileComp
			}
			return targetCompletions(toComplete), cobra.ShellCompDirectiveNoFileComp
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 {
				return cmd.Help()
			}
			if err := oo.Validate(); err != nil {
				return err
			}
			cmd.SilenceUsage = true
			s, err := open(cmd)
			if err != nil {
				return oo.HandleError(err)
			}
			err = showTarget(context.Background(), cmd, s, args[0])
			return oo.HandleError(err)
		},
	}

	options.AddRootArgs(cmd, ro)
	options.AddOutputArg(cmd, oo)
	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addRemove(topLevel)
	addMove(topLevel)
	addToggle(topLevel)
	addToggleDate(topLevel)
	addLabel(topLevel)
	addArchive(topLevel)
	addViews(topLevel)
	addLabels(topLevel)
	addList(topLevel)
	addURL(topLevel)
	addDebug(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
	addCompletions(topLevel)
}

func newLogger(cmd *cobra.Command) *log.Logger {
	logger := log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "rtd",
	})
	if ro.Verbose {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// open loads the configuration and prepares the task tree.
func open(cmd *cobra.Command) (*store.Store, error) {
	_, s, err := openWithConfig(cmd)
	return s, err
}

func openWithConfig(cmd *cobra.Command) (store.Config, *store.Store, error) {
	cfg, err := ro.Config()
	if err != nil {
		if errors.Is(err, store.ErrConfigMissing) {
			return nil, nil, fmt.Errorf("%w, or pass --root", err)
		}
		return nil, nil, err
	}
	logger := newLogger(cmd)
	logger.Debug("using root", "path", cfg.RootPath(), "from", cfg.Source())

	s, err := store.Open(cfg.RootPath(), store.WithLogger(logger))
	if err != nil {
		return nil, nil, err
	}
	return cfg, s, nil
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return 0, fmt.Errorf("can't parse task id %q", arg)
	}
	return id, nil
}

func idArgs(extra int, usage string) cobra.PositionalArgs {
	return func(cmd *cobra.Command, args []string) error {
		if len(args) != 1+extra {
			return errors.New(usage)
		}
		_, err := parseID(args[0])
		return err
	}
}

func showTarget(ctx context.Context, cmd *cobra.Command, s *store.Store, token string) error {
	target, err := selector.Resolve(s.Root, token)
	if err != nil {
		if errors.Is(err, selector.ErrUnknownTarget) {
			return fmt.Errorf("unknown command or target: %s", token)
		}
		return err
	}
	return showResolved(ctx, cmd, s, target)
}

func addOutputArg(cmd *cobra.Command) {
	options.AddOutputArg(cmd, oo)
}
