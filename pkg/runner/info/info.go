package info

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/store"
)

type Info struct {
	Config store.Config

	Store *store.Store
	Out   io.Writer
}

func (n *Info) Do(ctx context.Context) error {
	if n.Store == nil {
		return fmt.Errorf("no task tree opened")
	}

	pp := printers.PrettyPrint{Out: n.Out}
	pp.Message("Using rtd root: %s.", n.Store.Root)

	rows := [][]string{}
	if override := os.Getenv(store.ConfigPathEnv); override != "" {
		rows = append(rows, []string{store.ConfigPathEnv, override})
	} else if path, err := store.ConfigPath(); err == nil {
		rows = append(rows, []string{"config", path})
	}
	if n.Config != nil {
		rows = append(rows, []string{"root from", n.Config.Source()})
	}

	files, err := n.Store.Files()
	if err != nil {
		return err
	}
	rows = append(rows,
		[]string{"inbox", n.Store.InboxPath()},
		[]string{"archive", n.Store.ArchivePath()},
		[]string{"files", strconv.Itoa(len(files))},
		[]string{"max id", strconv.Itoa(n.Store.Sequence().Max())},
		[]string{"today", n.Store.Today().String()},
	)
	pp.Table(nil, rows)
	return nil
}
