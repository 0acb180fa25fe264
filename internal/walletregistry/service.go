package walletregistry

import "context"

// Service manages the wallets each group watches for swaps.
//
// Implementations validate input, delegate persistence to the configured
// WalletStorage and keep the webhook subscription in sync with the set of
// watched addresses.
type Service interface {
	// StartWatching registers wallet for its group. An empty nickname
	// defaults to the address. It fails with ErrNicknameInUse or
	// ErrWalletAlreadyRegistered on duplicates.
	StartWatching(ctx context.Context, wallet TrackedWallet) error

	// StopWatching removes address from group. It fails with
	// ErrWalletNotFound when the group does not watch the address.
	StopWatching(ctx context.Context, group, address string) error

	// ListWallets returns the wallets of group ordered by nickname.
	ListWallets(ctx context.Context, group string) ([]TrackedWallet, error)

	// LookupTrackedWallets returns every registration of the given
	// addresses, keyed by address.
	LookupTrackedWallets(ctx context.Context, addresses []string) (map[string][]TrackedWallet, error)
}

// service is the concrete implementation of the Service interface.
type service struct {
	walletStorage WalletStorage
	subscriptions SubscriptionManager
}

// Ensure compile-time compliance with the Service interface.
var _ Service = (*service)(nil)

// New creates a walletregistry service persisting wallets in ws and
// mirroring watched addresses into sm.
func New(ws WalletStorage, sm SubscriptionManager) *service {
	return &service{
		walletStorage: ws,
		subscriptions: sm,
	}
}
