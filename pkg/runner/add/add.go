package add

import (
	"context"
	"io"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/store"
)

type Add struct {
	Description string
	// File is relative to the root. Empty means the inbox.
	File string

	Store *store.Store
	Out   io.Writer
}

func (n *Add) Do(ctx context.Context) error {
	t, err := n.Store.Add(n.Description, n.File)
	if err != nil {
		return err
	}

	dest := n.Store.InboxPath()
	if n.File != "" {
		dest = n.Store.Path(n.File)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Message("Added new task to %s:", dest)
	pp.Task(*t)
	return nil
}
