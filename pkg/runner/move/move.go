package move

import (
	"context"
	"io"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/store"
)

type Move struct {
	ID int
	// File is the destination, relative to the root.
	File string

	Store *store.Store
	Out   io.Writer
}

func (n *Move) Do(ctx context.Context) error {
	res, err := n.Store.Move(n.ID, n.File)
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if !pp.Outcome(n.ID, res) {
		return nil
	}
	pp.Task(res.Task)
	pp.Message("Task &%d is moved to the list %s", n.ID, res.File)
	return nil
}
