package remove

import (
	"context"
	"io"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/store"
)

type Remove struct {
	ID int

	Store *store.Store
	Out   io.Writer
}

func (n *Remove) Do(ctx context.Context) error {
	res, err := n.Store.Remove(n.ID)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if !pp.Outcome(n.ID, res) {
		return nil
	}
	pp.Task(res.Task)
	pp.Message("Task &%d is removed from the list", n.ID)
	return nil
}
