package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/commands/options"
	"tableflip.dev/focus/pkg/runner/list"
)

func addList(topLevel *cobra.Command) {
	io := &options.IDOptions{}
	flat := false
	kind := ""

	cmd := &cobra.Command{
		Use:     "list",
		Aliases: []string{"ls", "get"},
		Short:   "Show the focus space",
		Example: `
focus list
focus list --flat
focus list --kind section --show-id
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			m, _, err := loadSpace(cmd.Context())
			if err != nil {
				return err
			}
			defer m.Close()

			s := list.List{
				Flat:   flat,
				Kind:   kind,
				ShowID: io.ShowID,
				Space:  m,
			}
			err = s.Do(context.Background())
			return oo.HandleError(err)
		},
	}

	cmd.Flags().BoolVar(&flat, "flat", false,
		"Print entries as a flat table in traversal order.")
	cmd.Flags().StringVar(&kind, "kind", "",
		"Only show entries of this kind. One of 'file', 'folder', or 'section'.")
	options.AddShowIDArgs(cmd, io)
	base.AddOutputArg(cmd, oo)
	topLevel.AddCommand(cmd)
}
