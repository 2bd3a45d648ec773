package commands

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/stencil-design/stencil/internal/cli/config"
	"github.com/stencil-design/stencil/internal/web/server"
)

var (
	servePort int
	serveHost string
)

// NewServeCommand creates the serve command
func NewServeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the pattern engine over HTTP",
		Long: `Serve the pattern engine over HTTP.

Exposes the registry, detector, validator, and generator as a JSON API,
plus a websocket endpoint that streams validation results to connected
editor panels. Shuts down gracefully on SIGINT or SIGTERM.`,
		Example: `  # Serve on the configured address (default localhost:7420)
  stencil serve

  # Override the port
  stencil serve --port 9000`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if servePort != 0 {
				cfg.Server.Port = servePort
			}
			if serveHost != "" {
				cfg.Server.Host = serveHost
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

			srv := server.New(cfg.Addr(), registry, logger)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.ListenAndServe()
			}()

			color.Green("✓ pattern api on http://%s (%d patterns)", cfg.Addr(), registry.Len())

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}

	cmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	cmd.Flags().StringVar(&serveHost, "host", "", "Host to bind to (overrides config)")
	return cmd
}

func newLogger() (*zap.Logger, error) {
	cfg := zap.NewProductionConfig()
	cfg.DisableStacktrace = true
	return cfg.Build()
}
