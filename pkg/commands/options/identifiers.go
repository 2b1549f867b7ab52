package options

import (
	"github.com/spf13/cobra"
)

// IDOptions
type IDOptions struct {
	ShowID bool
}

func AddShowIDArgs(cmd *cobra.Command, o *IDOptions) {
	cmd.Flags().BoolVarP(&o.ShowID, "show-id", "k", false,
		"Show the ID of each entry.")
}

// PositionOptions
type PositionOptions struct {
	Position int
}

func AddPositionArgs(cmd *cobra.Command, o *PositionOptions) {
	cmd.Flags().IntVarP(&o.Position, "position", "p", -1,
		"Insert at this index; out-of-range positions land at the end.")
}
