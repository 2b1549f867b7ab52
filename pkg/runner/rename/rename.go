package rename

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/space"
)

// Rename overrides an entry's display label. An empty label restores the
// name derived from the locator.
type Rename struct {
	Target string
	Label  string
	ShowID bool

	Space *space.Manager
}

func (n *Rename) Do(ctx context.Context) error {
	if n.Space == nil {
		return errors.New("can not rename, no focus space")
	}

	e := n.Space.Resolve(n.Target)
	if e == nil {
		return fmt.Errorf("no such entry: %s", n.Target)
	}
	if !n.Space.Rename(e.ID, n.Label) {
		return fmt.Errorf("can not rename %s", n.Target)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Focus Space")
	pp.Forest(n.Space.TopLevel()...)
	return nil
}
