// Package printers renders the focus space for the terminal.
package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"tableflip.dev/focus/pkg/entry"
)

// PrettyPrint renders the forest as an indented tree.
type PrettyPrint struct {
	ShowID bool
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

// Forest prints every root entry and its descendants in display order.
func (pp *PrettyPrint) Forest(entries ...*entry.Entry) {
	if len(entries) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	for _, e := range entries {
		pp.print(e, 0)
	}
}

func (pp *PrettyPrint) print(e *entry.Entry, depth int) {
	indent := strings.Repeat("  ", depth)

	var line *color.Color
	marker := ""
	switch e.Kind {
	case entry.KindSection:
		line = color.New(color.Bold)
		marker = "§ "
	case entry.KindFolder:
		line = color.New(color.FgHiBlue)
		marker = "▸ "
	default:
		line = color.New()
	}

	_, _ = line.Printf("%s%s%s", indent, marker, e.DisplayName())
	if pp.ShowID {
		faint := color.New(color.Faint)
		_, _ = faint.Printf("  %s", e.ID)
	}
	if e.Metadata != nil && e.Metadata.GitStatus != "" {
		status := color.New(color.FgHiYellow, color.Italic)
		_, _ = status.Printf("  [%s]", e.Metadata.GitStatus)
	}
	fmt.Println("")

	for _, child := range e.Children {
		pp.print(child, depth+1)
	}
}
