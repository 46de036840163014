package cli

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/mcoot/kartgate/internal/api"
	"github.com/mcoot/kartgate/internal/factory"
	"github.com/mcoot/kartgate/internal/web"
)

var shutdownSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM}

func newServeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the web login page and JSON API",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if cfg.Verbose {
				level = slog.LevelDebug
			}
			logger := slog.New(slog.NewJSONHandler(cmd.OutOrStdout(), &slog.HandlerOptions{
				Level: level,
			}))

			addr := net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port))
			ln, err := net.Listen("tcp", addr)
			if err != nil {
				return fmt.Errorf("listen on %s: %w", addr, err)
			}

			return serve(cmd.Context(), ln, logger)
		},
	}

	cmd.Flags().StringVar(&cfg.Host, "host", cfg.Host, "Listen host (env: KARTGATE_HOST)")
	cmd.Flags().IntVar(&cfg.Port, "port", cfg.Port, "Listen port (env: KARTGATE_PORT)")

	return cmd
}

// serve runs the web and API routers on ln until ctx is done or a shutdown
// signal arrives. The player store lives as long as this call.
func serve(ctx context.Context, ln net.Listener, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(ctx, shutdownSignals...)
	defer stop()

	app := factory.New(factory.Config{Logger: logger})

	mux := http.NewServeMux()
	mux.Handle("/api/", api.NewRouter(api.RouterConfig{
		Logger:         logger,
		AuthController: app.AuthController,
	}))
	mux.Handle("/", web.NewRouter(web.RouterConfig{
		Logger:         logger,
		AuthController: app.AuthController,
	}))

	server := api.NewServer(mux, api.DefaultServerConfig(), logger)

	errCh := make(chan error, 1)
	go func() {
		errCh <- server.Serve(ln)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		logger.Info("shutdown requested",
			slog.Int("registered_players", app.Storage.Len()),
		)
	}

	if err := server.Shutdown(context.Background()); err != nil {
		return err
	}
	return <-errCh
}
