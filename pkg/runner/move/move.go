package move

import (
	"context"
	"errors"
	"fmt"

	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/space"
)

// Move relocates an entry into a section, or back to the root level.
type Move struct {
	Target   string
	Section  string // empty means root level
	Position int    // -1 appends, otherwise a clamped insertion index
	ShowID   bool

	Space *space.Manager
}

func (n *Move) Do(ctx context.Context) error {
	if n.Space == nil {
		return errors.New("can not move, no focus space")
	}

	e := n.Space.Resolve(n.Target)
	if e == nil {
		return fmt.Errorf("no such entry: %s", n.Target)
	}

	sectionID := ""
	if n.Section != "" {
		s := n.Space.Resolve(n.Section)
		if s == nil || !s.IsSection() {
			return fmt.Errorf("no such section: %s", n.Section)
		}
		sectionID = s.ID
	}

	var ok bool
	if n.Position < 0 {
		ok = n.Space.MoveToSection(e.ID, sectionID)
	} else {
		ok = n.Space.MoveToSectionWithPosition(e.ID, sectionID, n.Position)
	}
	if !ok {
		return fmt.Errorf("can not move %s", e.DisplayName())
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Focus Space")
	pp.Forest(n.Space.TopLevel()...)
	return nil
}
