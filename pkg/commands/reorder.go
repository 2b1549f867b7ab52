package commands

import (
	"context"
	"errors"
	"strconv"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/reorder"
)

func addReorder(topLevel *cobra.Command) {
	so := &options.SectionOptions{}
	io := &options.IDOptions{}

	cmd := &cobra.Command{
		Use:   "reorder <entry> <index>",
		Short: "Change an entry's position among its siblings",
		Example: `
focus reorder ./main.go 0
focus reorder ./main.go 2 --section "Active Work"
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			if len(args) != 2 {
				return errors.New("requires an entry and an index")
			}
			if _, err := strconv.Atoi(args[1]); err != nil {
				return errors.New("index must be an integer")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			index, _ := strconv.Atoi(args[1])

			m, _, err := loadSpace(cmd.Context())
			if err != nil {
				return err
			}
			defer m.Close()

			s := reorder.Reorder{
				Target: args[0],
				Index:  index,
				Parent: so.Section,
				ShowID: io.ShowID,
				Space:  m,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddSectionArgs(cmd, so)
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
