// Package swapnotify turns webhook transactions into swap notifications for
// every registration of the tracked wallets they touch.
package swapnotify

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/types"
	"github.com/gabapcia/swapwatch/internal/swapclassifier"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/swapwatch/internal/swapnotify"

// Skip reasons recorded on the skipped counter.
const (
	reasonRegistry      = "registry_unavailable"
	reasonDuplicate     = "duplicate"
	reasonInsignificant = "insignificant"
	reasonAmbiguous     = "ambiguous"
	reasonMalformed     = "malformed"
	reasonCanceled      = "canceled"
)

// Service processes webhook deliveries.
type Service interface {
	// Process returns the notifications for txs without delivering them.
	// Failures are logged and only drop the unit they affect. A transaction
	// touching tracked wallets is claimed on the idempotency guard first.
	Process(ctx context.Context, txs []Transaction) []Notification

	// Handle processes txs and delivers every notification. Delivery failures
	// are logged; the only error returned is the context's.
	Handle(ctx context.Context, txs []Transaction) error
}

type config struct {
	tracerProvider trace.TracerProvider
	meterProvider  metric.MeterProvider
	guard          IdempotencyGuard
	claimTTL       time.Duration
}

// Option configures the service.
type Option func(*config)

// WithTracerProvider overrides the global tracer provider.
func WithTracerProvider(tp trace.TracerProvider) Option {
	return func(c *config) {
		c.tracerProvider = tp
	}
}

// WithIdempotencyGuard claims every transaction on g for ttl before it is
// classified, so redeliveries inside the window are dropped.
func WithIdempotencyGuard(g IdempotencyGuard, ttl time.Duration) Option {
	return func(c *config) {
		c.guard = g
		c.claimTTL = ttl
	}
}

// WithMeterProvider overrides the global meter provider.
func WithMeterProvider(mp metric.MeterProvider) Option {
	return func(c *config) {
		c.meterProvider = mp
	}
}

type service struct {
	registry   WalletRegistry
	classifier Classifier
	notifier   Notifier
	guard      IdempotencyGuard
	claimTTL   time.Duration

	tracer         trace.Tracer
	emitted        metric.Int64Counter
	skipped        metric.Int64Counter
	deliveryFailed metric.Int64Counter
}

var _ Service = (*service)(nil)

// New creates the pipeline. The OpenTelemetry global providers are used
// unless overridden by options. Without WithIdempotencyGuard every
// delivery is processed.
func New(registry WalletRegistry, classifier Classifier, notifier Notifier, opts ...Option) (*service, error) {
	cfg := config{
		tracerProvider: otel.GetTracerProvider(),
		meterProvider:  otel.GetMeterProvider(),
		guard:          nopIdempotencyGuard{},
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	meter := cfg.meterProvider.Meter(instrumentationName)

	emitted, err := meter.Int64Counter("swapnotify.notifications.emitted",
		metric.WithDescription("Swap notifications produced"))
	if err != nil {
		return nil, err
	}

	skipped, err := meter.Int64Counter("swapnotify.wallets.skipped",
		metric.WithDescription("Tracked wallets or transactions that produced no notification"))
	if err != nil {
		return nil, err
	}

	deliveryFailed, err := meter.Int64Counter("swapnotify.deliveries.failed",
		metric.WithDescription("Notifications the notifier could not deliver"))
	if err != nil {
		return nil, err
	}

	return &service{
		registry:       registry,
		classifier:     classifier,
		notifier:       notifier,
		guard:          cfg.guard,
		claimTTL:       cfg.claimTTL,
		tracer:         cfg.tracerProvider.Tracer(instrumentationName),
		emitted:        emitted,
		skipped:        skipped,
		deliveryFailed: deliveryFailed,
	}, nil
}

func (s *service) Process(ctx context.Context, txs []Transaction) []Notification {
	var notifications []Notification
	for _, tx := range txs {
		notifications = append(notifications, s.processTransaction(ctx, tx)...)
	}

	return notifications
}

func (s *service) processTransaction(ctx context.Context, tx Transaction) []Notification {
	ctx, span := s.tracer.Start(ctx, "swapnotify.processTransaction",
		trace.WithAttributes(attribute.String("signature", tx.Signature)),
	)
	defer span.End()

	ctx = logger.Derive(ctx, "signature", tx.Signature)

	addresses := types.Unique(tx.AccountKeys)

	tracked, err := s.registry.LookupTrackedWallets(ctx, addresses)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		s.skip(ctx, reasonRegistry)
		logger.Error(ctx, "tracked wallet lookup failed", "error", err)
		return nil
	}

	if len(tracked) == 0 {
		return nil
	}

	if err := s.guard.ClaimTransaction(ctx, tx.Signature, s.claimTTL); err != nil {
		if errors.Is(err, ErrAlreadyClaimed) {
			s.skip(ctx, reasonDuplicate)
			logger.Debug(ctx, "transaction already announced")
			return nil
		}

		logger.Warn(ctx, "transaction claim failed, processing anyway", "error", err)
	}

	var notifications []Notification
	for _, address := range addresses {
		wallets := tracked[address]
		if len(wallets) == 0 {
			continue
		}

		if !significant(tx, address) {
			s.skip(ctx, reasonInsignificant)
			logger.Debug(ctx, "transaction below significance threshold", "wallet", address)
			continue
		}

		event, err := s.classifier.Classify(ctx, tx.Transaction, address)
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			s.skip(ctx, reasonCanceled)
			logger.Warn(ctx, "transaction classification interrupted", "wallet", address, "error", err)
			return nil
		}
		if err != nil {
			reason := reasonAmbiguous
			if errors.Is(err, swapclassifier.ErrMalformedTransaction) {
				reason = reasonMalformed
			}

			s.skip(ctx, reason)
			logger.Warn(ctx, "transaction not classified", "wallet", address, "error", err)
			continue
		}

		for _, w := range wallets {
			notifications = append(notifications, Notification{Event: event, Wallet: w})
		}
	}

	span.SetAttributes(attribute.Int("notifications", len(notifications)))
	s.emitted.Add(ctx, int64(len(notifications)))
	return notifications
}

func (s *service) skip(ctx context.Context, reason string) {
	s.skipped.Add(ctx, 1, metric.WithAttributes(attribute.String("reason", reason)))
}

func (s *service) Handle(ctx context.Context, txs []Transaction) error {
	for _, n := range s.Process(ctx, txs) {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err := s.notifier.Deliver(ctx, n); err != nil {
			s.deliveryFailed.Add(ctx, 1)
			logger.Error(ctx, "notification delivery failed",
				"signature", n.Event.Signature,
				"wallet", n.Wallet.Address,
				"group", n.Wallet.Group,
				"error", err,
			)
		}
	}

	return ctx.Err()
}
