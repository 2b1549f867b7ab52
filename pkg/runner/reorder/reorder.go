package reorder

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/space"
)

// Reorder repositions an entry among its current siblings.
type Reorder struct {
	Target string
	Index  int
	Parent string // containing section; empty means root level
	ShowID bool

	Space *space.Manager
}

func (n *Reorder) Do(ctx context.Context) error {
	if n.Space == nil {
		return errors.New("can not reorder, no focus space")
	}

	e := n.Space.Resolve(n.Target)
	if e == nil {
		return fmt.Errorf("no such entry: %s", n.Target)
	}

	parentID := ""
	if n.Parent != "" {
		p := n.Space.Resolve(n.Parent)
		if p == nil || !p.IsSection() {
			return fmt.Errorf("no such section: %s", n.Parent)
		}
		parentID = p.ID
	}

	if !n.Space.Reorder(e.ID, n.Index, parentID) {
		return fmt.Errorf("can not reorder %s", e.DisplayName())
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Focus Space")
	pp.Forest(n.Space.TopLevel()...)
	return nil
}
