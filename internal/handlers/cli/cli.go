package cli

import (
	"context"
	"os"

	"github.com/gabapcia/swapwatch/internal/ingest"
	"github.com/gabapcia/swapwatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// Run initializes and executes the swapwatch CLI application.
//
// It registers all available commands, including:
//
//   - `serve`:   Receives webhook deliveries and sends swap notifications.
//   - `watch`:   Registers a wallet for a group.
//   - `unwatch`: Unregisters a wallet from a group.
//   - `list`:    Lists the wallets of a group.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - wr: The walletregistry service implementation used by wallet commands.
//   - in: The ingest service fed by the webhook server.
//   - srv: The webhook HTTP server.
func Run(ctx context.Context, wr walletregistry.Service, in ingest.Service, srv Server) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "swapwatch",
		Description:           "Command-line interface for managing watched wallets and running the swap notifier.",
		Usage:                 "swapwatch [command] [flags]",
		Commands: []*cli.Command{
			serveCommand(in, srv),
			startWatchingWalletCommand(wr),
			stopWatchingWalletCommand(wr),
			listWalletsCommand(wr),
		},
	}

	return app.Run(ctx, os.Args)
}
