package redis

import (
	"context"
	"fmt"
	"time"

	"github.com/gabapcia/swapwatch/internal/swapnotify"
)

// claimStoragePrefix is the base of every transaction claim key.
const claimStoragePrefix = "swap"

// transactionClaimKey marks a transaction as announced until it expires.
//
// Format: "swap:tx:{signature}:claim"
func transactionClaimKey(signature string) string {
	return fmt.Sprintf("%s:tx:%s:claim", claimStoragePrefix, signature)
}

var _ swapnotify.IdempotencyGuard = (*client)(nil)

// ClaimTransaction sets the claim key only if it does not exist yet.
func (c *client) ClaimTransaction(ctx context.Context, signature string, ttl time.Duration) error {
	ok, err := c.conn.SetNX(ctx, transactionClaimKey(signature), time.Now().UTC().Format(time.RFC3339), ttl).Result()
	if err != nil {
		return err
	}

	if !ok {
		return swapnotify.ErrAlreadyClaimed
	}

	return nil
}
