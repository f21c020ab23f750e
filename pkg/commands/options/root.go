package options

import (
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/store"
)

// RootOptions are shared by every command.
type RootOptions struct {
	Root    string
	Verbose bool
}

func AddRootArgs(cmd *cobra.Command, o *RootOptions) {
	cmd.PersistentFlags().StringVar(&o.Root, "root", "",
		"Task tree to use instead of the one configured in ~/"+store.ConfigFile+".")
	cmd.PersistentFlags().BoolVarP(&o.Verbose, "verbose", "v", false,
		"Log bookkeeping details to stderr.")
}

// Config returns the configuration for this run. --root wins over the config
// file and the environment.
func (o *RootOptions) Config() (store.Config, error) {
	if o.Root != "" {
		root := o.Root
		if !strings.HasPrefix(root, "~") {
			abs, err := filepath.Abs(root)
			if err != nil {
				return nil, err
			}
			root = abs
		}
		return store.StaticConfig(root)
	}
	return store.LoadConfig()
}
