// Package webhook exposes the HTTP endpoint receiving Helius deliveries.
package webhook

import (
	"crypto/subtle"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/gabapcia/swapwatch/internal/infra/helius"
	"github.com/gabapcia/swapwatch/internal/ingest"
	"github.com/gabapcia/swapwatch/internal/pkg/logger"
)

// Response bodies.
const (
	bodyReceived     = "Webhook received"
	bodyBadRequest   = "Invalid payload"
	bodyTooLarge     = "Payload too large"
	bodyUnauthorized = "Unauthorized"
	bodyUnavailable  = "Service unavailable"
)

type config struct {
	path        string // route of the delivery endpoint
	authToken   string // expected Authorization header, empty disables the check
	maxBodySize int64  // bytes read from a delivery
}

// Option configures the handler.
type Option func(*config)

// WithPath sets the delivery route.
func WithPath(path string) Option {
	return func(c *config) {
		if path != "" {
			c.path = path
		}
	}
}

// WithAuthToken requires deliveries to carry token in the Authorization header.
func WithAuthToken(token string) Option {
	return func(c *config) {
		c.authToken = token
	}
}

// WithMaxBodySize caps the delivery size. Values below 1 are ignored.
func WithMaxBodySize(n int64) Option {
	return func(c *config) {
		if n > 0 {
			c.maxBodySize = n
		}
	}
}

type handler struct {
	ingest ingest.Service
	cfg    config
}

// NewHandler returns the routes of the webhook server:
//
//   - POST {path}:   decodes a delivery and submits it to in
//   - GET /healthz:  liveness check
//
// Defaults:
//   - path:        "/helius-webhook"
//   - maxBodySize: 5 MiB
func NewHandler(in ingest.Service, opts ...Option) http.Handler {
	cfg := config{
		path:        "/helius-webhook",
		maxBodySize: 5 << 20,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	h := &handler{ingest: in, cfg: cfg}

	mux := http.NewServeMux()
	mux.HandleFunc("POST "+cfg.path, h.receive)
	mux.HandleFunc("GET /healthz", h.health)
	return mux
}

// NewServer returns an HTTP server for handler listening on addr.
func NewServer(addr string, handler http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
	}
}

func writeText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	io.WriteString(w, body)
}

func (h *handler) authorized(r *http.Request) bool {
	if h.cfg.authToken == "" {
		return true
	}

	got := r.Header.Get("Authorization")
	return subtle.ConstantTimeCompare([]byte(got), []byte(h.cfg.authToken)) == 1
}

func (h *handler) receive(w http.ResponseWriter, r *http.Request) {
	ctx := logger.Derive(r.Context(), "delivery", uuid.NewString())

	if !h.authorized(r) {
		logger.Warn(ctx, "webhook delivery rejected", "reason", "unauthorized", "remote", r.RemoteAddr)
		writeText(w, http.StatusUnauthorized, bodyUnauthorized)
		return
	}

	var payload helius.Payload
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, h.cfg.maxBodySize)).Decode(&payload); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			logger.Warn(ctx, "webhook delivery rejected", "reason", "too_large", "limit", tooLarge.Limit)
			writeText(w, http.StatusRequestEntityTooLarge, bodyTooLarge)
			return
		}

		logger.Warn(ctx, "webhook delivery rejected", "reason", "invalid_payload", "error", err)
		writeText(w, http.StatusBadRequest, bodyBadRequest)
		return
	}

	if len(payload) == 0 {
		logger.Warn(ctx, "webhook delivery carried no transactions")
		writeText(w, http.StatusOK, bodyReceived)
		return
	}

	if err := h.ingest.Submit(ctx, payload.Transactions()); err != nil {
		logger.Error(ctx, "webhook delivery not queued", "error", err, "transactions", len(payload))
		writeText(w, http.StatusServiceUnavailable, bodyUnavailable)
		return
	}

	logger.Debug(ctx, "webhook delivery queued", "transactions", len(payload))
	writeText(w, http.StatusOK, bodyReceived)
}

func (h *handler) health(w http.ResponseWriter, _ *http.Request) {
	writeText(w, http.StatusOK, "ok")
}
