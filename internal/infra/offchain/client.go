// Package offchain reads token presentation data that lives off the ledger:
// the community token list and the JSON documents referenced by metadata URIs.
package offchain

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/hashicorp/go-retryablehttp"
)

// maxBodySize caps the bytes decoded from any off-chain response.
const maxBodySize = 1 << 20

// ErrUnexpectedStatus is returned when a server answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected status")

// getJSON fetches url and decodes the body into out. The response status is
// returned alongside so callers can treat specific codes as misses.
func getJSON(ctx context.Context, httpClient *retryablehttp.Client, url string, out any) (int, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, err
	}

	req.Header.Set("Accept", "application/json")

	res, err := httpClient.Do(req)
	if err != nil {
		return 0, err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return res.StatusCode, fmt.Errorf("%w: GET %s: %d", ErrUnexpectedStatus, url, res.StatusCode)
	}

	if err := json.NewDecoder(io.LimitReader(res.Body, maxBodySize)).Decode(out); err != nil {
		return res.StatusCode, fmt.Errorf("decode %s: %w", url, err)
	}

	return res.StatusCode, nil
}
