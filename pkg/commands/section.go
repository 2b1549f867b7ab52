package commands

import (
	"context"
	"strings"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/section"
)

func addSection(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	label := ""

	cmd := &cobra.Command{
		Use:     "section [label]",
		Aliases: []string{"sec"},
		Short:   "Create a new section",
		Example: `
focus section "Active Work"
focus section
`,
		Args: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			label = strings.Join(args, " ")
			return nil
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			m, _, err := loadSpace(cmd.Context())
			if err != nil {
				return err
			}
			defer m.Close()

			s := section.Create{
				Label:  label,
				ShowID: io.ShowID,
				Space:  m,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
