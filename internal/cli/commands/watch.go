package commands

import (
	"context"
	"errors"
	"fmt"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/stencil-design/stencil/internal/cli/config"
	"github.com/stencil-design/stencil/internal/watch"
	"github.com/stencil-design/stencil/internal/web/live"
	"github.com/stencil-design/stencil/pattern"
)

// NewWatchCommand creates the watch command
func NewWatchCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch <document.json>",
		Short: "Revalidate a document on every save",
		Long: `Revalidate a document on every save.

Watches the document file and re-runs pattern detection and validation
whenever it changes, printing each report. Stop with Ctrl-C.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			registry, err := buildRegistry(cfg)
			if err != nil {
				return err
			}
			logger, err := newLogger()
			if err != nil {
				return err
			}
			defer logger.Sync()

			hub := live.NewHub(logger)
			defer hub.Close()

			w := watch.New(args[0], registry, hub,
				time.Duration(cfg.Watch.DebounceMillis)*time.Millisecond, logger)
			w.OnReport = func(report pattern.Report, instances []pattern.Instance) {
				fmt.Printf("\n%s  (%d instance(s))\n", args[0], len(instances))
				printReport(report)
			}

			color.Cyan("Watching %s", args[0])

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := w.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
				return err
			}
			return nil
		},
	}
	return cmd
}
