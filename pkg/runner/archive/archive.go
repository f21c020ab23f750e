package archive

import (
	"context"
	"io"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/store"
)

type Archive struct {
	Store *store.Store
	Out   io.Writer
}

func (n *Archive) Do(ctx context.Context) error {
	count, err := n.Store.Archive()
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if count == 0 {
		pp.Message("Nothing to archive")
		return nil
	}
	pp.Message("All tasks archived (moved to %s): %d", store.ArchiveFile, count)
	return nil
}
