package list

import (
	"context"
	"io"
	"path/filepath"
	"strconv"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/store"
)

// File summarizes one task file.
type File struct {
	Path string `json:"path" yaml:"path"`
	Open int    `json:"open" yaml:"open"`
	Done int    `json:"done" yaml:"done"`
}

type List struct {
	Output string

	Store *store.Store
	Out   io.Writer
}

func (n *List) Do(ctx context.Context) error {
	files, err := n.Store.Files()
	if err != nil {
		return err
	}
	groups, err := n.Store.Query(files, store.Filter{})
	if err != nil {
		return err
	}
	counts := make(map[string]File, len(groups))
	for _, g := range groups {
		f := File{Path: g.File}
		for _, t := range g.Tasks {
			if t.Done {
				f.Done++
			} else {
				f.Open++
			}
		}
		counts[g.File] = f
	}

	summary := make([]File, 0, len(files))
	for _, path := range files {
		f := counts[path]
		f.Path = path
		if rel, err := filepath.Rel(n.Store.Root, path); err == nil {
			f.Path = rel
		}
		summary = append(summary, f)
	}

	if n.Output != "" && n.Output != printers.OutputText {
		return printers.Structured(printers.Writer(n.Out), n.Output, summary)
	}

	pp := printers.PrettyPrint{Out: n.Out}
	if len(summary) == 0 {
		pp.Message("No task files under %s", n.Store.Root)
		return nil
	}
	rows := make([][]string, 0, len(summary))
	for _, f := range summary {
		rows = append(rows, []string{f.Path, strconv.Itoa(f.Open), strconv.Itoa(f.Done)})
	}
	pp.Table([]string{"FILE", "OPEN", "DONE"}, rows)
	return nil
}
