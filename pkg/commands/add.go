package commands

import (
	"context"
	"errors"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/add"
)

func addAdd(topLevel *cobra.Command) {
	so := &options.SectionOptions{}
	io := &options.IDOptions{}
	label := ""

	cmd := &cobra.Command{
		Use:   "add <path>...",
		Short: "Add files or folders to the focus space",
		Example: `
focus add ./pkg/tree/tree.go
focus add ./docs ./README.md --section "Active Work"
focus add ./main.go --label "entry point"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) < 1 {
				return errors.New("requires at least one path")
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

			s := add.Add{
				Locators: args,
				Section:  so.Section,
				Label:    label,
				ShowID:   io.ShowID,
				Space:    m,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSectionArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)
	cmd.Flags().StringVarP(&label, "label", "l", "",
		"Display label override; applies when a single path is added.")

	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
