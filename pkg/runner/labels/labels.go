package labels

import (
	"context"
	"io"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/store"
)

type Labels struct {
	Output string

	Store *store.Store
	Out   io.Writer
}

func (n *Labels) Do(ctx context.Context) error {
	labels, err := n.Store.Labels()
	if err != nil {
		return err
	}
	if labels == nil {
		labels = []string{}
	}

	if n.Output != "" && n.Output != printers.OutputText {
		return printers.Structured(printers.Writer(n.Out), n.Output, labels)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	for _, l := range labels {
		pp.Message("%s", l)
	}
	return nil
}
