package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gabapcia/swapwatch/internal/pkg/types"
	"github.com/gabapcia/swapwatch/internal/walletregistry"
)

const (
	nicknameConstraint = "tracked_wallets_nickname_key"
	primaryConstraint  = "tracked_wallets_pkey"
)

func (c *client) RegisterWallet(ctx context.Context, wallet walletregistry.TrackedWallet) error {
	return pgx.BeginFunc(ctx, c.pool, func(tx pgx.Tx) error {
		var taken bool
		if err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM tracked_wallets WHERE group_id = $1 AND nickname = $2)`,
			wallet.Group, wallet.Nickname,
		).Scan(&taken); err != nil {
			return fmt.Errorf("check nickname: %w", err)
		}

		if taken {
			return walletregistry.ErrNicknameInUse
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO tracked_wallets (group_id, address, nickname, target) VALUES ($1, $2, $3, $4)`,
			wallet.Group, wallet.Address, wallet.Nickname, wallet.Target,
		)

		switch uniqueViolation(err) {
		case "":
		case nicknameConstraint:
			return walletregistry.ErrNicknameInUse
		case primaryConstraint:
			return walletregistry.ErrWalletAlreadyRegistered
		}

		if err != nil {
			return fmt.Errorf("insert wallet: %w", err)
		}

		return nil
	})
}

func (c *client) UnregisterWallet(ctx context.Context, group, address string) (int, error) {
	var remaining int
	err := pgx.BeginFunc(ctx, c.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM tracked_wallets WHERE group_id = $1 AND address = $2`, group, address)
		if err != nil {
			return fmt.Errorf("delete wallet: %w", err)
		}

		if tag.RowsAffected() == 0 {
			return walletregistry.ErrWalletNotFound
		}

		return tx.QueryRow(ctx, `SELECT count(*) FROM tracked_wallets WHERE address = $1`, address).Scan(&remaining)
	})
	if err != nil {
		return 0, err
	}

	return remaining, nil
}

func (c *client) queryWallets(ctx context.Context, sql string, args ...any) ([]walletregistry.TrackedWallet, error) {
	rows, err := c.pool.Query(ctx, sql, args...)
	if err != nil {
		return nil, err
	}

	return pgx.CollectRows(rows, func(row pgx.CollectableRow) (walletregistry.TrackedWallet, error) {
		var w walletregistry.TrackedWallet
		err := row.Scan(&w.Group, &w.Address, &w.Nickname, &w.Target)
		return w, err
	})
}

func (c *client) ListWallets(ctx context.Context, group string) ([]walletregistry.TrackedWallet, error) {
	return c.queryWallets(ctx,
		`SELECT group_id, address, nickname, target FROM tracked_wallets WHERE group_id = $1 ORDER BY nickname`,
		group,
	)
}

func (c *client) LookupTrackedWallets(ctx context.Context, addresses []string) (map[string][]walletregistry.TrackedWallet, error) {
	wallets, err := c.queryWallets(ctx,
		`SELECT group_id, address, nickname, target FROM tracked_wallets WHERE address = ANY($1) ORDER BY address, group_id`,
		types.Unique(addresses),
	)
	if err != nil {
		return nil, err
	}

	tracked := types.NewDefaultMap[string](func() []walletregistry.TrackedWallet { return nil })
	for _, w := range wallets {
		tracked.Update(w.Address, func(ws []walletregistry.TrackedWallet) []walletregistry.TrackedWallet {
			return append(ws, w)
		})
	}

	return tracked.ToMap(), nil
}

// Compile-time assertion to ensure *client satisfies the walletregistry.WalletStorage interface
var _ walletregistry.WalletStorage = new(client)
