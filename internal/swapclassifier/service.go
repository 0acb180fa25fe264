// Package swapclassifier infers the outbound and inbound legs of a swap from
// the balance snapshots of a transaction.
package swapclassifier

import (
	"context"
	"fmt"
	"slices"

	"github.com/gabapcia/swapwatch/internal/metaresolver"
	"github.com/gabapcia/swapwatch/internal/pkg/logger"

	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

// Service classifies transactions into swap events.
type Service interface {
	// Classify returns the swap performed by wallet in tx. It returns
	// ErrClassificationAmbiguous when the shape is not a single pair swap and
	// ErrMalformedTransaction when required fields are missing.
	//
	// Metadata resolution failures never fail classification; the affected
	// leg keeps its mint and amount with empty symbol and logo. A context
	// done during resolution is returned as ctx.Err().
	Classify(ctx context.Context, tx Transaction, wallet string) (SwapEvent, error)
}

type service struct {
	resolver MetadataResolver
}

var _ Service = (*service)(nil)

// New creates a classifier resolving token legs through resolver.
func New(resolver MetadataResolver) *service {
	return &service{
		resolver: resolver,
	}
}

func (s *service) Classify(ctx context.Context, tx Transaction, wallet string) (SwapEvent, error) {
	if tx.PreTokenBalances == nil || tx.PostTokenBalances == nil {
		return SwapEvent{}, fmt.Errorf("%w: token balance snapshots missing", ErrMalformedTransaction)
	}

	mints, deltas, err := tokenDeltas(tx, wallet)
	if err != nil {
		return SwapEvent{}, err
	}

	event := SwapEvent{
		Wallet:    wallet,
		Signature: tx.Signature,
	}

	switch len(mints) {
	case 2:
		return s.classifyTokenPair(ctx, event, mints, deltas)
	case 1:
		return s.classifyNativePair(ctx, event, tx, mints[0], deltas[mints[0]])
	default:
		return SwapEvent{}, fmt.Errorf("%w: wallet touches %d token mints", ErrClassificationAmbiguous, len(mints))
	}
}

// tokenDeltas returns the mints owned by wallet in the post snapshot, in
// order of first appearance, and the summed post minus pre amount per mint.
func tokenDeltas(tx Transaction, wallet string) ([]string, map[string]decimal.Decimal, error) {
	var (
		mints  []string
		deltas = make(map[string]decimal.Decimal)
	)

	for _, b := range tx.PostTokenBalances {
		if b.Owner != wallet {
			continue
		}

		amount, err := parseAmount(b)
		if err != nil {
			return nil, nil, err
		}

		if _, ok := deltas[b.Mint]; !ok {
			mints = append(mints, b.Mint)
		}
		deltas[b.Mint] = deltas[b.Mint].Add(amount)
	}

	for _, b := range tx.PreTokenBalances {
		if b.Owner != wallet {
			continue
		}

		if _, ok := deltas[b.Mint]; !ok {
			continue
		}

		amount, err := parseAmount(b)
		if err != nil {
			return nil, nil, err
		}
		deltas[b.Mint] = deltas[b.Mint].Sub(amount)
	}

	return mints, deltas, nil
}

// parseAmount reads the balance in display units, from the raw base units
// when present.
func parseAmount(b TokenBalance) (decimal.Decimal, error) {
	if b.Amount != "" {
		raw, err := decimal.NewFromString(b.Amount)
		if err != nil {
			return decimal.Zero, fmt.Errorf("%w: amount of %s: %w", ErrMalformedTransaction, b.Mint, err)
		}

		return raw.Shift(-b.Decimals), nil
	}

	amount, err := decimal.NewFromString(b.UIAmount)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: ui amount of %s: %w", ErrMalformedTransaction, b.Mint, err)
	}

	return amount, nil
}

func (s *service) classifyTokenPair(ctx context.Context, event SwapEvent, mints []string, deltas map[string]decimal.Decimal) (SwapEvent, error) {
	first, second := deltas[mints[0]], deltas[mints[1]]

	var in, out string
	switch {
	case first.IsPositive() && second.IsNegative():
		in, out = mints[0], mints[1]
	case first.IsNegative() && second.IsPositive():
		in, out = mints[1], mints[0]
	default:
		return SwapEvent{}, fmt.Errorf("%w: token deltas %s and %s", ErrClassificationAmbiguous, first, second)
	}

	var (
		g      errgroup.Group
		inMeta metaresolver.DisplayMetadata
		outLeg Leg
	)

	g.Go(func() error {
		inMeta = s.resolve(ctx, in)
		return ctx.Err()
	})

	g.Go(func() error {
		outLeg = tokenLeg(out, deltas[out].Abs(), s.resolve(ctx, out))
		return ctx.Err()
	})

	if err := g.Wait(); err != nil {
		return SwapEvent{}, err
	}

	event.In = tokenLeg(in, deltas[in], inMeta)
	event.Out = outLeg
	event.Enrichment = enrichment(inMeta)
	return event, nil
}

func (s *service) classifyNativePair(ctx context.Context, event SwapEvent, tx Transaction, mint string, tokenDelta decimal.Decimal) (SwapEvent, error) {
	idx := slices.Index(tx.AccountKeys, event.Wallet)
	if idx < 0 {
		return SwapEvent{}, fmt.Errorf("%w: wallet not in account keys", ErrMalformedTransaction)
	}

	if idx >= len(tx.PreBalances) || idx >= len(tx.PostBalances) {
		return SwapEvent{}, fmt.Errorf("%w: native balances missing for account %d", ErrMalformedTransaction, idx)
	}

	nativeDelta := decimal.NewFromInt(int64(tx.PostBalances[idx]) - int64(tx.PreBalances[idx])).Shift(-nativeDecimals)

	switch {
	case nativeDelta.IsNegative() && tokenDelta.IsPositive():
		meta := s.resolve(ctx, mint)
		event.Out = nativeLeg(nativeDelta.Abs())
		event.In = tokenLeg(mint, tokenDelta, meta)
		event.Enrichment = enrichment(meta)
	case nativeDelta.IsPositive() && tokenDelta.IsNegative():
		event.Out = tokenLeg(mint, tokenDelta.Abs(), s.resolve(ctx, mint))
		event.In = nativeLeg(nativeDelta)
	default:
		return SwapEvent{}, fmt.Errorf("%w: native delta %s and token delta %s", ErrClassificationAmbiguous, nativeDelta, tokenDelta)
	}

	if err := ctx.Err(); err != nil {
		return SwapEvent{}, err
	}

	return event, nil
}

// resolve degrades a failed resolution to empty metadata.
func (s *service) resolve(ctx context.Context, mint string) metaresolver.DisplayMetadata {
	md, err := s.resolver.Resolve(ctx, mint)
	if err != nil {
		logger.Warn(ctx, "token metadata unavailable", "mint", mint, "error", err)
		return metaresolver.DisplayMetadata{}
	}

	return md
}

func tokenLeg(mint string, amount decimal.Decimal, md metaresolver.DisplayMetadata) Leg {
	return Leg{
		Mint:   mint,
		Symbol: md.Symbol,
		Logo:   md.Logo,
		Amount: amount.InexactFloat64(),
	}
}

func nativeLeg(amount decimal.Decimal) Leg {
	return Leg{
		Mint:   NativeMint,
		Symbol: NativeSymbol,
		Logo:   NativeLogo,
		Amount: amount.InexactFloat64(),
	}
}

func enrichment(md metaresolver.DisplayMetadata) Enrichment {
	return Enrichment{
		CreatedOn: md.CreatedOn,
		Twitter:   md.Twitter,
		Telegram:  md.Telegram,
		Website:   md.Website,
	}
}
