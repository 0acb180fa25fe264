package swapclassifier

import (
	"context"
	"errors"

	"github.com/gabapcia/swapwatch/internal/metaresolver"
)

const (
	// NativeMint is the wrapped SOL mint used to identify the native leg.
	NativeMint = "So11111111111111111111111111111111111111112"

	// NativeSymbol is the display symbol of the native leg.
	NativeSymbol = "SOL"

	// NativeLogo is the canonical logo of the native leg.
	NativeLogo = "https://raw.githubusercontent.com/solana-labs/token-list/main/assets/mainnet/So11111111111111111111111111111111111111112/logo.png"

	// nativeDecimals scales lamports to SOL.
	nativeDecimals = 9
)

var (
	// ErrClassificationAmbiguous is returned when the balance changes do not
	// describe a single outbound and a single inbound asset.
	ErrClassificationAmbiguous = errors.New("swap classification ambiguous")

	// ErrMalformedTransaction is returned when a field required for
	// classification is missing or unparsable.
	ErrMalformedTransaction = errors.New("malformed transaction")
)

// TokenBalance is one entry of a pre or post token balance snapshot.
// Amount, when set, is the raw base unit count and takes precedence over
// UIAmount.
type TokenBalance struct {
	Owner    string
	Mint     string
	Amount   string // integer string in base units
	Decimals int32
	UIAmount string // decimal string, already scaled by the mint decimals
}

// Transaction holds the parts of a confirmed transaction used for classification.
// Nil balance slices mean the field was absent from the payload.
type Transaction struct {
	Signature         string
	AccountKeys       []string
	PreTokenBalances  []TokenBalance
	PostTokenBalances []TokenBalance
	PreBalances       []uint64 // lamports, indexed like AccountKeys
	PostBalances      []uint64
}

// Leg is one side of a swap.
type Leg struct {
	Mint   string
	Symbol string // empty when metadata could not be resolved
	Logo   string
	Amount float64
}

// Enrichment carries the inbound token's launch source and social links.
type Enrichment struct {
	CreatedOn string
	Twitter   string
	Telegram  string
	Website   string
}

// SwapEvent describes a swap relative to one wallet.
type SwapEvent struct {
	Wallet     string
	Signature  string
	Out        Leg
	In         Leg
	Enrichment Enrichment
}

// MetadataResolver resolves token display metadata.
type MetadataResolver interface {
	Resolve(ctx context.Context, mint string) (metaresolver.DisplayMetadata, error)
}
