// Package ingest queues webhook deliveries and hands each one to a pool of
// workers running the notification pipeline.
package ingest

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/swapwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/swapwatch/internal/swapnotify"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrServiceNotStarted is returned by Submit before Start or after Close.
	ErrServiceNotStarted = errors.New("service not started")

	// ErrQueueFull is returned by Submit when the queue has no room.
	ErrQueueFull = errors.New("ingest queue full")
)

// Handler processes one webhook delivery to completion.
type Handler interface {
	Handle(ctx context.Context, txs []swapnotify.Transaction) error
}

// Service defines the ingest lifecycle.
type Service interface {
	// Start launches the workers. Returns ErrServiceAlreadyStarted if the
	// service is running. Call Close to stop it.
	Start(ctx context.Context) error

	// Submit enqueues a delivery without blocking. It returns ErrQueueFull
	// when the queue is saturated and ErrServiceNotStarted when the service
	// is not running.
	Submit(ctx context.Context, txs []swapnotify.Transaction) error

	// Close stops accepting deliveries, waits for the queued ones to be
	// handled and stops the workers. It is safe to call Close even if the
	// service was never started.
	Close()
}

// closeFunc stops the workers and releases the queue.
type closeFunc func()

type config struct {
	workers   int // goroutines draining the queue
	queueSize int // deliveries buffered before Submit fails
}

// Option configures the service.
type Option func(*config)

// WithWorkers sets the number of concurrent handlers. Values below 1 are ignored.
func WithWorkers(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.workers = n
		}
	}
}

// WithQueueSize sets the queue capacity. Negative values are ignored.
func WithQueueSize(n int) Option {
	return func(c *config) {
		if n >= 0 {
			c.queueSize = n
		}
	}
}

type service struct {
	mu        sync.Mutex // protects lifecycle state
	isStarted bool
	closeFunc closeFunc
	queue     chan []swapnotify.Transaction

	handler Handler
	cfg     config
}

// Compile-time check to ensure *service implements the Service interface.
var _ Service = (*service)(nil)

// New creates an ingest service feeding deliveries to h.
//
// Defaults:
//   - workers:   4
//   - queueSize: 64
func New(h Handler, opts ...Option) *service {
	cfg := config{
		workers:   4,
		queueSize: 64,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		handler: h,
		cfg:     cfg,
	}
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	queue := make(chan []swapnotify.Transaction, s.cfg.queueSize)

	var wg sync.WaitGroup
	for id := range s.cfg.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			s.work(ctx, id, queue)
		}()
	}

	s.queue = queue
	s.closeFunc = func() {
		close(queue)
		wg.Wait()
		cancel()
	}
	s.isStarted = true
	return nil
}

func (s *service) Submit(ctx context.Context, txs []swapnotify.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.isStarted {
		return ErrServiceNotStarted
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	if !chflow.TrySend(ctx, s.queue, txs) {
		return ErrQueueFull
	}

	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.queue = nil
	s.isStarted = false
}
