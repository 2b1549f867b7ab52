package printers

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"

	"tableflip.dev/focus/pkg/entry"
)

// Table prints a flat listing of entries, one row per entry.
func Table(entries []*entry.Entry, showID bool) {
	tbl := uitable.New()
	tbl.Separator = "  "

	if showID {
		tbl.AddRow("ID", "KIND", "NAME", "LOCATOR")
	} else {
		tbl.AddRow("KIND", "NAME", "LOCATOR")
	}
	for _, e := range entries {
		if showID {
			tbl.AddRow(e.ID, string(e.Kind), e.DisplayName(), e.Locator)
		} else {
			tbl.AddRow(string(e.Kind), e.DisplayName(), e.Locator)
		}
	}
	_, _ = fmt.Fprintln(color.Output, tbl)
}
