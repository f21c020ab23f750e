package url

import (
	"context"
	"io"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/store"
)

// URL prints the links found in a task.
type URL struct {
	ID int

	Store *store.Store
	Out   io.Writer
}

func (n *URL) Do(ctx context.Context) error {
	res, err := n.Store.Get(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if !pp.Outcome(n.ID, res) {
		return nil
	}
	for _, u := range res.Task.URLs() {
		pp.Message("%s", u)
	}
	return nil
}
