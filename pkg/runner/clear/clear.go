package clear

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/space"
)

// Clear empties the focus space entirely.
type Clear struct {
	Space *space.Manager
}

func (n *Clear) Do(ctx context.Context) error {
	if n.Space == nil {
		return errors.New("can not clear, no focus space")
	}

	count := n.Space.Count()
	n.Space.ClearAll()
	fmt.Printf("cleared %d entries\n", count)
	return nil
}
