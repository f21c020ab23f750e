// Package watch re-renders a view every time the task tree changes.
package watch

import (
	"context"

	"github.com/charmbracelet/log"

	"tableflip.dev/rtd/pkg/store"
)

type Watch struct {
	// Render prints the view. It is called once up front and after every
	// change.
	Render func(ctx context.Context) error

	Store  *store.Store
	Logger *log.Logger
}

func (n *Watch) Do(ctx context.Context) error {
	if err := n.Render(ctx); err != nil {
		return err
	}

	events, err := n.Store.Watch(ctx)
	if err != nil {
		return err
	}
	for evt := range events {
		if n.Logger != nil {
			n.Logger.Debug("tree changed", "event", evt.Type, "file", evt.File)
		}
		if err := n.Render(ctx); err != nil {
			return err
		}
	}
	return ctx.Err()
}
