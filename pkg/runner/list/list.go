package list

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/entry"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/space"
)

// List shows the focus space, as a tree by default or as a flat table.
type List struct {
	Flat   bool
	Kind   string // optional filter: file, folder, section
	ShowID bool

	Space *space.Manager
}

func (n *List) Do(ctx context.Context) error {
	if n.Space == nil {
		return errors.New("can not list, no focus space")
	}

	if n.Kind != "" {
		kind, err := entry.ParseKind(n.Kind)
		if err != nil {
			return err
		}
		printers.Table(n.Space.ByKind(kind), n.ShowID)
		return nil
	}

	if n.Flat {
		printers.Table(n.Space.Flatten(), n.ShowID)
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")
	pp.Title("Focus Space")
	pp.Forest(n.Space.TopLevel()...)
	return nil
}
