// Package show prints the tasks a view selects, grouped by file.
package show

import (
	"context"
	"io"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/store"
	"tableflip.dev/rtd/pkg/task"
)

type Show struct {
	// Files limits the view. Nil means every file of the tree.
	Files  []string
	Filter store.Filter
	Output string

	Store *store.Store
	Out   io.Writer
}

func (n *Show) Do(ctx context.Context) error {
	groups, err := n.Store.Query(n.Files, n.Filter)
	if err != nil {
		return err
	}

	if n.Output != "" && n.Output != printers.OutputText {
		if groups == nil {
			groups = []store.FileTasks{}
		}
		return printers.Structured(printers.Writer(n.Out), n.Output, groups)
	}

	today := n.Store.Today()
	pp := printers.PrettyPrint{Out: n.Out, Root: n.Store.Root, Today: &today}
	pp.Groups(groups)
	return nil
}

// Get prints a single task by id.
type Get struct {
	ID     int
	Output string

	Store *store.Store
	Out   io.Writer
}

func (n *Get) Do(ctx context.Context) error {
	res, err := n.Store.Get(n.ID)
	if err != nil {
		return err
	}

	today := n.Store.Today()
	pp := printers.PrettyPrint{Out: n.Out, Root: n.Store.Root, Today: &today}
	if !pp.Outcome(n.ID, res) {
		return nil
	}
	if n.Output != "" && n.Output != printers.OutputText {
		return printers.Structured(printers.Writer(n.Out), n.Output, store.FileTasks{File: res.File, Tasks: []task.Task{res.Task}})
	}
	pp.Task(res.Task)
	return nil
}
