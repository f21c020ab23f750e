package options

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"tableflip.dev/rtd/pkg/printers"
)

// OutputOptions
type OutputOptions struct {
	Output string
}

func AddOutputArg(cmd *cobra.Command, po *OutputOptions) {
	cmd.Flags().StringVarP(&po.Output, "output", "o", printers.OutputText,
		"Output format. One of 'text', 'json' or 'yaml'.")
}

// Validate rejects unknown output formats.
func (o *OutputOptions) Validate() error {
	if !printers.ValidOutput(o.Output) {
		return fmt.Errorf("unknown output format %q, use one of text, json or yaml", o.Output)
	}
	return nil
}

// Structured reports whether a machine readable format was requested.
func (o *OutputOptions) Structured() bool {
	return o.Output == printers.OutputJSON || o.Output == printers.OutputYAML
}

// HandleError also writes err in the requested structured format so scripts
// reading stdout see it. The error is still returned for the exit status.
func (o *OutputOptions) HandleError(err error) error {
	if err == nil || !o.Structured() {
		return err
	}
	out := map[string]string{
		"error": err.Error(),
	}
	if perr := printers.Structured(color.Output, o.Output, out); perr != nil {
		return perr
	}
	return err
}
