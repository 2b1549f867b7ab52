package watch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"tableflip.dev/focus/pkg/space"
	fswatch "tableflip.dev/focus/pkg/watch"
)

// Watch runs the filesystem reconciler in the foreground until the
// context is cancelled, pruning entries whose backing paths disappear.
type Watch struct {
	Debounce time.Duration
	Excludes []string

	Space *space.Manager
}

func (n *Watch) Do(ctx context.Context) error {
	if n.Space == nil {
		return errors.New("can not watch, no focus space")
	}

	fmt.Println("watching focus space paths, ctrl-c to stop")
	w := fswatch.New(n.Space, fswatch.Options{
		Debounce: n.Debounce,
		Excludes: n.Excludes,
	})
	return w.Run(ctx)
}
