package discord

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/resilience/retry"
	"github.com/gabapcia/swapwatch/internal/swapnotify"

	"github.com/bwmarrin/discordgo"
)

var (
	// ErrDeliveryRejected is returned when Discord answers with a non-2xx status.
	ErrDeliveryRejected = errors.New("discord rejected delivery")

	// ErrInvalidTarget is returned when a registration target is not a
	// Discord webhook URL of the form .../webhooks/{id}/{token}.
	ErrInvalidTarget = errors.New("invalid discord webhook target")
)

// notifier implements swapnotify.Notifier by executing the webhook of each
// registration through a token-less discordgo session.
type notifier struct {
	session *discordgo.Session
	retry   retry.Retry
	now     func() time.Time
}

var _ swapnotify.Notifier = (*notifier)(nil)

// New returns a notifier sending through httpClient. The session's own
// rate limit and 502 retries are disabled; failed attempts are retried by r
// and client errors other than rate limiting are final.
func New(httpClient *http.Client, r retry.Retry) (*notifier, error) {
	session, err := discordgo.New("")
	if err != nil {
		return nil, fmt.Errorf("create discord session: %w", err)
	}

	session.Client = httpClient
	session.ShouldRetryOnRateLimit = false
	session.MaxRestRetries = 0

	return &notifier{
		session: session,
		retry:   r,
		now:     time.Now,
	}, nil
}

// webhookCredentials extracts the webhook id and token from target.
func webhookCredentials(target string) (id, token string, err error) {
	u, err := url.Parse(target)
	if err != nil {
		return "", "", fmt.Errorf("%w: %w", ErrInvalidTarget, err)
	}

	segments := strings.Split(strings.Trim(u.Path, "/"), "/")
	n := len(segments)
	if n < 3 || segments[n-3] != "webhooks" || segments[n-2] == "" || segments[n-1] == "" {
		return "", "", fmt.Errorf("%w: %q", ErrInvalidTarget, target)
	}

	return segments[n-2], segments[n-1], nil
}

// classify marks the errors worth another attempt. Rate limits, 5xx answers
// and transport failures are retried; other REST errors are final.
func classify(err error) error {
	var rateLimited *discordgo.RateLimitError
	if errors.As(err, &rateLimited) {
		return fmt.Errorf("%w: %d: %w", ErrDeliveryRejected, http.StatusTooManyRequests, err)
	}

	var rest *discordgo.RESTError
	if errors.As(err, &rest) && rest.Response != nil {
		status := rest.Response.StatusCode
		if status >= 500 {
			return fmt.Errorf("%w: %d", ErrDeliveryRejected, status)
		}

		return retry.Unrecoverable(fmt.Errorf("%w: %d", ErrDeliveryRejected, status))
	}

	return err
}

// Deliver executes the registration webhook with the swap embed.
func (d *notifier) Deliver(ctx context.Context, n swapnotify.Notification) error {
	id, token, err := webhookCredentials(n.Wallet.Target)
	if err != nil {
		return fmt.Errorf("deliver %s to group %s: %w", n.Event.Signature, n.Wallet.Group, err)
	}

	params := &discordgo.WebhookParams{Embeds: []*discordgo.MessageEmbed{Render(n, d.now())}}

	err = d.retry.Execute(ctx, func() error {
		_, err := d.session.WebhookExecute(id, token, false, params, discordgo.WithContext(ctx))
		if err != nil {
			return classify(err)
		}

		return nil
	})
	if err != nil {
		return fmt.Errorf("deliver %s to group %s: %w", n.Event.Signature, n.Wallet.Group, err)
	}

	logger.Debug(ctx, "swap notification delivered", "group", n.Wallet.Group, "wallet", n.Event.Wallet, "signature", n.Event.Signature)
	return nil
}
