// Package solana reads token metadata accounts from a Solana JSON-RPC node.
package solana

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/gabapcia/swapwatch/internal/metaresolver"
	"github.com/gabapcia/swapwatch/internal/pkg/transport/jsonrpc"
)

// encodingBase64 is the only account data encoding requested and accepted.
const encodingBase64 = "base64"

// accountInfoConfig is the configuration object of every getAccountInfo call.
var accountInfoConfig = map[string]string{
	"commitment": "confirmed",
	"encoding":   encodingBase64,
}

// AccountInfoResponse is the result of getAccountInfo. Value is nil when the
// account does not exist.
type AccountInfoResponse struct {
	Value *struct {
		Data       []string `json:"data"` // [payload, encoding]
		Owner      string   `json:"owner"`
		Lamports   uint64   `json:"lamports"`
		Executable bool     `json:"executable"`
	} `json:"value"`
}

// client implements metaresolver.AccountFetcher and metaresolver.AddressDeriver.
type client struct {
	conn jsonrpc.Client
}

var (
	_ metaresolver.AccountFetcher = (*client)(nil)
	_ metaresolver.AddressDeriver = (*client)(nil)
)

// FetchAccount returns the raw data of the account at address.
func (c *client) FetchAccount(ctx context.Context, address string) ([]byte, error) {
	raw, err := c.conn.Fetch(ctx, "getAccountInfo", address, accountInfoConfig)
	if err != nil {
		var providerErr *jsonrpc.ProviderError
		if errors.As(err, &providerErr) && providerErr.Code == jsonrpc.CodeInvalidParams {
			return nil, fmt.Errorf("%w: %w", metaresolver.ErrInvalidAddress, err)
		}

		return nil, err
	}

	var res AccountInfoResponse
	if err := json.Unmarshal(raw, &res); err != nil {
		return nil, fmt.Errorf("decode account info: %w", err)
	}

	if res.Value == nil {
		return nil, metaresolver.ErrAccountNotFound
	}

	if len(res.Value.Data) != 2 || res.Value.Data[1] != encodingBase64 {
		return nil, fmt.Errorf("unexpected account data encoding %v", res.Value.Data)
	}

	data, err := base64.StdEncoding.DecodeString(res.Value.Data[0])
	if err != nil {
		return nil, fmt.Errorf("decode account data: %w", err)
	}

	return data, nil
}

// NewClient returns an account reader backed by conn.
func NewClient(conn jsonrpc.Client) *client {
	return &client{
		conn: conn,
	}
}
