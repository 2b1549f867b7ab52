package commands

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"tableflip.dev/focus/pkg/runner/watch"
)

func addWatch(topLevel *cobra.Command) {
	cmd := &cobra.Command{
		Use:   "watch",
		Short: "Watch the filesystem and prune deleted entries",
		Example: `
focus watch
`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cmd.SilenceUsage = true
			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			m, cfg, err := loadSpace(ctx)
			if err != nil {
				return err
			}
			defer m.Close()

			s := watch.Watch{
				Debounce: cfg.WatchDebounce(),
				Excludes: cfg.Excludes(),
				Space:    m,
			}
			err = s.Do(ctx)
			return oo.HandleError(err)
		},
	}

	topLevel.AddCommand(cmd)
}
