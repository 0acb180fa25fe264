package swapnotify

import (
	"context"
	"errors"
	"time"
)

// ErrAlreadyClaimed is returned by an IdempotencyGuard when the transaction
// was claimed by an earlier delivery inside the claim window.
var ErrAlreadyClaimed = errors.New("transaction already claimed")

// IdempotencyGuard stops a redelivered webhook from announcing the same
// transaction twice.
//
// Implementations are backed by shared storage so every replica of the
// service observes the same claims.
type IdempotencyGuard interface {
	// ClaimTransaction claims signature for ttl. It returns ErrAlreadyClaimed
	// when the signature is still claimed; any other error means the guard
	// itself failed.
	ClaimTransaction(ctx context.Context, signature string, ttl time.Duration) error
}

// nopIdempotencyGuard accepts every claim.
type nopIdempotencyGuard struct{}

var _ IdempotencyGuard = nopIdempotencyGuard{}

func (nopIdempotencyGuard) ClaimTransaction(context.Context, string, time.Duration) error {
	return nil
}
