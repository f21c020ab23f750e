package label

import (
	"context"
	"fmt"
	"io"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/store"
	"tableflip.dev/rtd/pkg/task"
)

type Label struct {
	ID    int
	Label string

	Store *store.Store
	Out   io.Writer
}

func (n *Label) Do(ctx context.Context) error {
	if !task.IsLabel(n.Label) {
		return fmt.Errorf("a label should start with %c and have no spaces in it: %q", task.LabelMarker, n.Label)
	}

	res, err := n.Store.AddLabel(n.ID, n.Label)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if !pp.Outcome(n.ID, res) {
		return nil
	}
	pp.Task(res.Task)
	return nil
}
