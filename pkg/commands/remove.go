package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/remove"
)

func addRemove(topLevel *cobra.Command) {
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:     "remove <entry>...",
		Aliases: []string{"rm"},
		Short:   "Remove entries from the focus space",
		Long: base.Wrap80("Remove entries by id, locator, or display name. " +
			"Removing a section or folder discards everything nested under it."),
		Example: `
focus remove ./pkg/tree/tree.go
focus remove "Active Work"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires at least one entry")
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

			s := remove.Remove{
				Targets: args,
				ShowID:  io.ShowID,
				Space:   m,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
