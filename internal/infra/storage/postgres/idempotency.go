package postgres

import (
	"context"
	"time"

	"github.com/gabapcia/swapwatch/internal/swapnotify"
)

// claimTransactionSQL inserts the claim or takes over one older than the
// window. No row is affected while a live claim exists.
const claimTransactionSQL = `
INSERT INTO transaction_claims (signature, claimed_at)
VALUES ($1, $2)
ON CONFLICT (signature) DO UPDATE
   SET claimed_at = EXCLUDED.claimed_at
 WHERE transaction_claims.claimed_at < $3`

var _ swapnotify.IdempotencyGuard = (*client)(nil)

func (c *client) ClaimTransaction(ctx context.Context, signature string, ttl time.Duration) error {
	now := time.Now().UTC()

	tag, err := c.pool.Exec(ctx, claimTransactionSQL, signature, now, now.Add(-ttl))
	if err != nil {
		return err
	}

	if tag.RowsAffected() == 0 {
		return swapnotify.ErrAlreadyClaimed
	}

	return nil
}
