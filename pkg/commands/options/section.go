// Package options defines shared flag helpers for CLI commands.
package options

import (
	"github.com/spf13/cobra"
)

// SectionOptions captures the destination/containing section for commands
// that operate relative to one.
type SectionOptions struct {
	Section string
}

// AddSectionArgs wires the section flag on the provided command.
func AddSectionArgs(cmd *cobra.Command, o *SectionOptions) {
	cmd.Flags().StringVarP(&o.Section, "section", "s", "",
		"Specify a section by name, id, or locator.")
}
