package cli

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gabapcia/swapwatch/internal/ingest"
	"github.com/gabapcia/swapwatch/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// shutdownTimeout bounds the wait for in-flight requests on exit.
const shutdownTimeout = 10 * time.Second

// Server is the HTTP server receiving webhook deliveries.
type Server interface {
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}

// serveCommand returns a CLI command that starts the ingest workers and the
// webhook server.
//
// Usage example:
//
//	swapwatch serve
//
// The process runs until it receives an interrupt (SIGINT or SIGTERM) or the
// server fails. Queued deliveries are handled before it exits.
func serveCommand(in ingest.Service, srv Server) *cli.Command {
	return &cli.Command{
		Name:        "serve",
		Description: "Starts the webhook server and the swap notification workers.",
		Usage:       "Receives webhook deliveries until Ctrl+C or a termination signal, then drains the queue.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if err := in.Start(ctx); err != nil {
				return err
			}
			defer in.Close()

			sigCtx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			serveErr := make(chan error, 1)
			go func() {
				serveErr <- srv.ListenAndServe()
			}()

			logger.Info(ctx, "webhook server started")

			select {
			case err := <-serveErr:
				if errors.Is(err, http.ErrServerClosed) {
					return nil
				}
				return err
			case <-sigCtx.Done():
			}

			logger.Info(ctx, "shutting down webhook server")

			shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
			defer cancel()

			return srv.Shutdown(shutdownCtx)
		},
	}
}
