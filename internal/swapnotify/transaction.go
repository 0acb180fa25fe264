package swapnotify

import (
	"context"

	"github.com/gabapcia/swapwatch/internal/swapclassifier"
	"github.com/gabapcia/swapwatch/internal/walletregistry"
)

// SignificantLamports is the smallest absolute native balance change that
// makes a transaction worth classifying on its own.
const SignificantLamports = 5000

// AccountData is the per-account summary of a transaction.
type AccountData struct {
	Account             string
	NativeBalanceChange int64 // lamports
}

// TokenTransfer is one token movement reported for a transaction.
type TokenTransfer struct {
	FromUserAccount string
	ToUserAccount   string
	Mint            string
	TokenAmount     float64
}

// Transaction is one entry of a webhook delivery.
type Transaction struct {
	swapclassifier.Transaction
	AccountData    []AccountData
	TokenTransfers []TokenTransfer
}

// Notification pairs a swap event with one registration of the wallet.
type Notification struct {
	Event  swapclassifier.SwapEvent
	Wallet walletregistry.TrackedWallet
}

// WalletRegistry reads tracked wallets.
type WalletRegistry interface {
	// LookupTrackedWallets returns every registration of the given addresses,
	// keyed by address. Untracked addresses are absent from the result.
	LookupTrackedWallets(ctx context.Context, addresses []string) (map[string][]walletregistry.TrackedWallet, error)
}

// Classifier infers swap events.
type Classifier interface {
	Classify(ctx context.Context, tx swapclassifier.Transaction, wallet string) (swapclassifier.SwapEvent, error)
}

// Notifier delivers notifications to their target.
type Notifier interface {
	Deliver(ctx context.Context, n Notification) error
}

// significant reports whether address moved enough native currency, or the
// transaction moved any token, to be classified.
func significant(tx Transaction, address string) bool {
	for _, d := range tx.AccountData {
		if d.Account != address {
			continue
		}

		change := d.NativeBalanceChange
		if change < 0 {
			change = -change
		}

		if change >= SignificantLamports {
			return true
		}
	}

	return len(tx.TokenTransfers) >= 1
}
