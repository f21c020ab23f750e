package toggle

import (
	"context"
	"io"

	"tableflip.dev/rtd/pkg/printers"
	"tableflip.dev/rtd/pkg/store"
	"tableflip.dev/rtd/pkg/task"
)

// Field is the part of a task a toggle flips.
type Field int

const (
	Status Field = iota
	Date
)

type Toggle struct {
	ID    int
	Field Field

	Store *store.Store
	Out   io.Writer
}

func (n *Toggle) Do(ctx context.Context) error {
	var (
		res store.Result
		err error
	)
	switch n.Field {
	case Date:
		res, err = n.Store.ToggleDate(n.ID)
	default:
		res, err = n.Store.ToggleStatus(n.ID)
	}
	if err != nil {
		return err
	}

	pp := printers.PrettyPrint{Out: n.Out, Today: todayOf(n.Store)}
	if !pp.Outcome(n.ID, res) {
		return nil
	}
	if n.Field == Date {
		pp.Message("Changed date of the task %d", n.ID)
	} else {
		pp.Message("Changed status of the task %d", n.ID)
	}
	pp.Message("Current state:")
	pp.Task(res.Task)
	return nil
}

func todayOf(s *store.Store) *task.Date {
	d := s.Today()
	return &d
}
