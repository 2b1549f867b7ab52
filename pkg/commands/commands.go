// Package commands wires the focus CLI.
package commands

import (
	"context"

	base "github.com/n3wscott/cli-base/pkg/commands/options"
	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/space"
	"tableflip.dev/focus/pkg/store"
)

var (
	oo = &base.OutputOptions{}
)

func New() *cobra.Command {

	cmd := &cobra.Command{
		Use:   "focus",
		Short: base.Wrap80("Curate a persistent focus space of files, folders, and sections."),
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	AddCommands(cmd)
	return cmd
}

func AddCommands(topLevel *cobra.Command) {
	addAdd(topLevel)
	addSection(topLevel)
	addRemove(topLevel)
	addMove(topLevel)
	addReorder(topLevel)
	addRename(topLevel)
	addList(topLevel)
	addClear(topLevel)
	addWatch(topLevel)
	addVersion(topLevel)
}

// loadSpace builds the store stack for one command invocation. Callers
// close the returned manager so the final debounced save is flushed
// before the process exits.
func loadSpace(ctx context.Context) (*space.Manager, store.Config, error) {
	cfg, err := store.LoadConfig()
	if err != nil {
		return nil, nil, err
	}
	p, err := store.Load(cfg)
	if err != nil {
		return nil, nil, err
	}
	m := space.New(ctx, p, space.Options{
		Root:         cfg.Root(),
		SaveDebounce: cfg.SaveDebounce(),
	})
	return m, cfg, nil
}
