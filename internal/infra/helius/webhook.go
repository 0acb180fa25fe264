package helius

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"slices"
	"sync"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/types"
	"github.com/gabapcia/swapwatch/internal/walletregistry"
)

// ErrUnexpectedStatus is returned when the webhook API answers with a non-2xx status.
var ErrUnexpectedStatus = errors.New("unexpected webhook api status")

// Webhook is the webhook definition managed through the API. Updates must
// send the complete definition back.
type Webhook struct {
	WebhookID        string   `json:"webhookID,omitempty"`
	Wallet           string   `json:"wallet,omitempty"`
	WebhookURL       string   `json:"webhookURL"`
	TransactionTypes []string `json:"transactionTypes"`
	AccountAddresses []string `json:"accountAddresses"`
	WebhookType      string   `json:"webhookType"`
	AuthHeader       string   `json:"authHeader,omitempty"`
}

// webhookClient implements walletregistry.SubscriptionManager on top of one
// existing webhook.
type webhookClient struct {
	mu sync.Mutex // serializes read-modify-write cycles

	httpClient *retryablehttp.Client
	apiURL     string
	apiKey     string
	webhookID  string
}

var _ walletregistry.SubscriptionManager = (*webhookClient)(nil)

// NewWebhookClient manages webhook webhookID at apiURL authenticated by apiKey.
func NewWebhookClient(httpClient *retryablehttp.Client, apiURL, apiKey, webhookID string) *webhookClient {
	return &webhookClient{
		httpClient: httpClient,
		apiURL:     apiURL,
		apiKey:     apiKey,
		webhookID:  webhookID,
	}
}

func (c *webhookClient) endpoint() string {
	return fmt.Sprintf("%s/v0/webhooks/%s?api-key=%s", c.apiURL, url.PathEscape(c.webhookID), url.QueryEscape(c.apiKey))
}

func (c *webhookClient) do(ctx context.Context, method string, body, out any) error {
	var payload []byte
	if body != nil {
		var err error
		if payload, err = json.Marshal(body); err != nil {
			return err
		}
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, method, c.endpoint(), payload)
	if err != nil {
		return err
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	res, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("%w: %s webhook %s: %d", ErrUnexpectedStatus, method, c.webhookID, res.StatusCode)
	}

	if out == nil {
		return nil
	}

	return json.NewDecoder(res.Body).Decode(out)
}

// Get returns the current webhook definition.
func (c *webhookClient) Get(ctx context.Context) (Webhook, error) {
	var w Webhook
	if err := c.do(ctx, http.MethodGet, nil, &w); err != nil {
		return Webhook{}, err
	}

	return w, nil
}

// update applies fn to the address list and writes the definition back when
// the list changed.
func (c *webhookClient) update(ctx context.Context, fn func([]string) []string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	w, err := c.Get(ctx)
	if err != nil {
		return err
	}

	addresses := fn(w.AccountAddresses)
	if slices.Equal(addresses, w.AccountAddresses) {
		return nil
	}

	w.AccountAddresses = addresses
	w.WebhookID, w.Wallet = "", ""

	if err := c.do(ctx, http.MethodPut, w, nil); err != nil {
		return err
	}

	logger.Info(ctx, "webhook subscription updated", "webhook", c.webhookID, "addresses", len(addresses))
	return nil
}

// AddAddress subscribes the webhook to address. It is a no-op when the
// address is subscribed already.
func (c *webhookClient) AddAddress(ctx context.Context, address string) error {
	return c.update(ctx, func(current []string) []string {
		return types.Unique(append(slices.Clone(current), address))
	})
}

// RemoveAddress unsubscribes the webhook from address.
func (c *webhookClient) RemoveAddress(ctx context.Context, address string) error {
	return c.update(ctx, func(current []string) []string {
		return slices.DeleteFunc(types.Unique(current), func(a string) bool {
			return a == address
		})
	})
}
