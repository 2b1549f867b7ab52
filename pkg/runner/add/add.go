package add

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"tableflip.dev/focus/pkg/entry"
	"tableflip.dev/focus/pkg/printers"
	"tableflip.dev/focus/pkg/space"
)

// Add curates one or more filesystem paths into the focus space.
type Add struct {
	Locators []string
	Section  string // optional section id, locator, or label
	Label    string // only applied when a single locator is given
	ShowID   bool

	Space *space.Manager
}

func (n *Add) Do(ctx context.Context) error {
	if n.Space == nil {
		return errors.New("can not add, no focus space")
	}

	parentID := ""
	if n.Section != "" {
		s := n.Space.Resolve(n.Section)
		if s == nil || !s.IsSection() {
			return fmt.Errorf("no such section: %s", n.Section)
		}
		parentID = s.ID
	}

	var files, folders []string
	for _, locator := range n.Locators {
		abs, err := filepath.Abs(locator)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", locator, err)
			continue
		}
		info, err := os.Stat(abs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "skipping %s: %v\n", locator, err)
			continue
		}
		if info.IsDir() {
			folders = append(folders, abs)
		} else {
			files = append(files, abs)
		}
	}
	if len(files)+len(folders) == 0 {
		return errors.New("nothing to add")
	}

	if n.Label != "" && len(files)+len(folders) == 1 {
		kind := entry.KindFile
		locator := ""
		if len(folders) == 1 {
			kind = entry.KindFolder
			locator = folders[0]
		} else {
			locator = files[0]
		}
		if e := n.Space.AddEntry(locator, kind, parentID, n.Label); e == nil {
			return fmt.Errorf("could not add %s", locator)
		}
	} else {
		n.Space.AddAll(files, entry.KindFile, parentID)
		n.Space.AddAll(folders, entry.KindFolder, parentID)
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	pp.NewLine()
	pp.Title("Focus Space")
	pp.Forest(n.Space.TopLevel()...)
	return nil
}
