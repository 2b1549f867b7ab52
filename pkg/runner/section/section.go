package section

import (
	"context"
	"errors"

	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/space"
)

// Create adds a named grouping section at the root of the focus space.
type Create struct {
	Label  string
	ShowID bool

	Space *space.Manager
}

func (n *Create) Do(ctx context.Context) error {
	if n.Space == nil {
		return errors.New("can not create section, no focus space")
	}

	s := n.Space.CreateSection(n.Label)

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Created " + s.DisplayName())
	pp.Forest(n.Space.TopLevel()...)
	return nil
}
