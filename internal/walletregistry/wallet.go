package walletregistry

import (
	"cmp"
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/validator"
)

var (
	// ErrNicknameInUse is returned when the group already uses the nickname for another wallet.
	ErrNicknameInUse = errors.New("nickname already in use")

	// ErrWalletAlreadyRegistered is returned when the group already watches the address.
	ErrWalletAlreadyRegistered = errors.New("wallet already registered")

	// ErrWalletNotFound is returned when the group does not watch the address.
	ErrWalletNotFound = errors.New("wallet not found")
)

// TrackedWallet is one registration of a wallet by a group.
type TrackedWallet struct {
	Group    string `validate:"required"`                // owning community
	Address  string `validate:"required,solana_address"` // watched wallet
	Nickname string `validate:"required,max=64"`         // display name, unique per group
	Target   string `validate:"required,url"`            // delivery target, a Discord webhook URL
}

// walletKey identifies a registration.
type walletKey struct {
	Group   string `validate:"required"`
	Address string `validate:"required,solana_address"`
}

// WalletStorage persists wallet registrations.
type WalletStorage interface {
	// RegisterWallet stores wallet. It returns ErrNicknameInUse when the
	// group uses the nickname already, checked before
	// ErrWalletAlreadyRegistered.
	RegisterWallet(ctx context.Context, wallet TrackedWallet) error

	// UnregisterWallet deletes the registration and returns how many groups
	// still watch the address. It returns ErrWalletNotFound when absent.
	UnregisterWallet(ctx context.Context, group, address string) (int, error)

	// ListWallets returns every registration of group.
	ListWallets(ctx context.Context, group string) ([]TrackedWallet, error)

	// LookupTrackedWallets returns the registrations of the given addresses
	// keyed by address. Untracked addresses are omitted.
	LookupTrackedWallets(ctx context.Context, addresses []string) (map[string][]TrackedWallet, error)
}

// SubscriptionManager keeps the upstream webhook subscribed to watched addresses.
type SubscriptionManager interface {
	AddAddress(ctx context.Context, address string) error
	RemoveAddress(ctx context.Context, address string) error
}

func (s *service) StartWatching(ctx context.Context, wallet TrackedWallet) error {
	if wallet.Nickname == "" {
		wallet.Nickname = wallet.Address
	}

	if err := validator.Validate(wallet); err != nil {
		return err
	}

	if err := s.walletStorage.RegisterWallet(ctx, wallet); err != nil {
		return err
	}

	if err := s.subscriptions.AddAddress(ctx, wallet.Address); err != nil {
		if _, rollbackErr := s.walletStorage.UnregisterWallet(ctx, wallet.Group, wallet.Address); rollbackErr != nil {
			logger.Error(ctx, "registration rollback failed",
				"group", wallet.Group,
				"address", wallet.Address,
				"error", rollbackErr,
			)
		}

		return fmt.Errorf("subscribe address: %w", err)
	}

	return nil
}

func (s *service) StopWatching(ctx context.Context, group, address string) error {
	if err := validator.Validate(walletKey{Group: group, Address: address}); err != nil {
		return err
	}

	remaining, err := s.walletStorage.UnregisterWallet(ctx, group, address)
	if err != nil {
		return err
	}

	if remaining > 0 {
		return nil
	}

	if err := s.subscriptions.RemoveAddress(ctx, address); err != nil {
		return fmt.Errorf("unsubscribe address: %w", err)
	}

	return nil
}

func (s *service) ListWallets(ctx context.Context, group string) ([]TrackedWallet, error) {
	if group == "" {
		return nil, fmt.Errorf("%w: group is required", validator.ErrValidation)
	}

	wallets, err := s.walletStorage.ListWallets(ctx, group)
	if err != nil {
		return nil, err
	}

	slices.SortFunc(wallets, func(a, b TrackedWallet) int {
		return cmp.Compare(a.Nickname, b.Nickname)
	})

	return wallets, nil
}

func (s *service) LookupTrackedWallets(ctx context.Context, addresses []string) (map[string][]TrackedWallet, error) {
	if len(addresses) == 0 {
		return map[string][]TrackedWallet{}, nil
	}

	return s.walletStorage.LookupTrackedWallets(ctx, addresses)
}
