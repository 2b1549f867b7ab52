package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/move"
)

func addMove(topLevel *cobra.Command) {
	so := &options.SectionOptions{}
	io := &options.IDOptions{}
	po := &options.PositionOptions{}

	cmd := &cobra.Command{
		Use:     "move <entry>",
		Aliases: []string{"mv"},
		Short:   "Move an entry into a section or back to the top level",
		Long: base.Wrap80("Move an entry under a section, or to the top level " +
			"when no section is given. The entry keeps its children."),
		Example: `
focus move ./main.go --section "Active Work"
focus move ./main.go --section "Active Work" --position 0
focus move ./main.go
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 1 {
				return errors.New("requires exactly one entry")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			m, _, err := loadSpace(cmd.Context())
			if err != nil {
				return err
			}
			defer m.Close()

			s := move.Move{
				Target:   args[0],
				Section:  so.Section,
				Position: po.Position,
				ShowID:   io.ShowID,
				Space:    m,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSectionArgs(cmd, so)
	options.AddPositionArgs(cmd, po)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
