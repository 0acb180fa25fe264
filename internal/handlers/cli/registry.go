package cli

import (
	"context"
	"fmt"
	"text/tabwriter"

	"github.com/gabapcia/swapwatch/internal/walletregistry"

	"github.com/urfave/cli/v3"
)

// startWatchingWalletCommand returns a CLI command that registers a wallet
// for a group, delivering its swaps to the target webhook.
//
// Usage example:
//
//	swapwatch watch --group 1234 --address 7xKX... --target https://discord.com/api/webhooks/... --nickname whale
func startWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "watch",
		Description: "Register a wallet so its swaps are announced to a group.",
		Usage:       "Registers a wallet address for watching. Must provide group, address and target.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "group",
				Usage:    "Group owning the registration (e.g., a Discord guild id)",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to start watching",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "target",
				Usage:    "Webhook URL receiving the notifications",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "nickname",
				Usage: "Display name of the wallet, defaults to the address",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			wallet := walletregistry.TrackedWallet{
				Group:    c.String("group"),
				Address:  c.String("address"),
				Nickname: c.String("nickname"),
				Target:   c.String("target"),
			}

			if err := wr.StartWatching(ctx, wallet); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "watching %s for group %s\n", wallet.Address, wallet.Group)
			return nil
		},
	}
}

// stopWatchingWalletCommand returns a CLI command that unregisters a wallet
// from a group.
//
// Usage example:
//
//	swapwatch unwatch --group 1234 --address 7xKX...
func stopWatchingWalletCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "unwatch",
		Description: "Unregister a wallet from a group.",
		Usage:       "Stops watching a wallet address. Must provide both group and address.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "group",
				Usage:    "Group owning the registration",
				Required: true,
			},
			&cli.StringFlag{
				Name:     "address",
				Usage:    "Wallet address to stop watching",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			var (
				group   = c.String("group")
				address = c.String("address")
			)

			if err := wr.StopWatching(ctx, group, address); err != nil {
				return err
			}

			fmt.Fprintf(c.Root().Writer, "stopped watching %s for group %s\n", address, group)
			return nil
		},
	}
}

// listWalletsCommand returns a CLI command that prints the wallets of a
// group ordered by nickname.
//
// Usage example:
//
//	swapwatch list --group 1234
func listWalletsCommand(wr walletregistry.Service) *cli.Command {
	return &cli.Command{
		Name:        "list",
		Description: "List the wallets watched by a group.",
		Usage:       "Prints nickname and address of every wallet of the group.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "group",
				Usage:    "Group owning the registrations",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			group := c.String("group")

			wallets, err := wr.ListWallets(ctx, group)
			if err != nil {
				return err
			}

			if len(wallets) == 0 {
				fmt.Fprintf(c.Root().Writer, "no wallets watched by group %s\n", group)
				return nil
			}

			w := tabwriter.NewWriter(c.Root().Writer, 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "NICKNAME\tADDRESS")
			for _, wallet := range wallets {
				fmt.Fprintf(w, "%s\t%s\n", wallet.Nickname, wallet.Address)
			}

			return w.Flush()
		},
	}
}
