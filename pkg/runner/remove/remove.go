package remove

import (
	"context"
	"errors"
	"fmt"
	"os"

	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/space"
)

// Remove detaches entries (and their subtrees) from the focus space. The
// underlying files are never touched.
type Remove struct {
	Targets []string
	ShowID  bool

	Space *space.Manager
}

func (n *Remove) Do(ctx context.Context) error {
	if n.Space == nil {
		return errors.New("can not remove, no focus space")
	}

	removed := 0
	for _, target := range n.Targets {
		e := n.Space.Resolve(target)
		if e == nil {
			fmt.Fprintf(os.Stderr, "no such entry: %s\n", target)
			continue
		}
		if n.Space.RemoveEntry(e.ID) {
			removed++
		}
	}
	if removed == 0 {
		return errors.New("nothing removed")
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Focus Space")
	pp.Forest(n.Space.TopLevel()...)
	return nil
}
