package commands

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/store"
)

func addCompletions(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "completion",
		Short: "Generates bash completion scripts",
		Long: `To load completion run

. <(rtd completion)

To configure your bash shell to load completions for each session add to your bashrc

# ~/.bashrc or ~/.profile
. <(rtd completion)
`,
		Args: cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_ = topLevel.GenBashCompletion(cmd.OutOrStdout())
		},
	}

	topLevel.AddCommand(cmd)
}

// completionStore opens the tree without logging; completions must stay quiet.
func completionStore() *store.Store {
	cfg, err := ro.Config()
	if err != nil {
		return nil
	}
	s, err := store.Open(cfg.RootPath())
	if err != nil {
		return nil
	}
	return s
}

func fileCompletions(toComplete string) []string {
	s := completionStore()
	if s == nil {
		return nil
	}
	files, err := s.Files()
	if err != nil {
		return nil
	}
	var out []string
	for _, f := range files {
		rel, err := filepath.Rel(s.Root, f)
		if err != nil {
			continue
		}
		if strings.HasPrefix(rel, toComplete) {
			out = append(out, rel)
		}
	}
	return out
}

func labelCompletions(toComplete string) []string {
	s := completionStore()
	if s == nil {
		return nil
	}
	labels, err := s.Labels()
	if err != nil {
		return nil
	}
	var out []string
	for _, l := range labels {
		if strings.HasPrefix(l, toComplete) {
			out = append(out, l)
		}
	}
	return out
}

func targetCompletions(toComplete string) []string {
	if strings.HasPrefix(toComplete, "@") {
		return labelCompletions(toComplete)
	}
	return fileCompletions(toComplete)
}
