package ingest

import (
	"context"
	"time"

	"github.com/gabapcia/swapwatch/internal/pkg/logger"
	"github.com/gabapcia/swapwatch/internal/pkg/x/chflow"
	"github.com/gabapcia/swapwatch/internal/swapnotify"
)

// work handles deliveries until the queue is closed and drained or ctx is done.
func (s *service) work(ctx context.Context, id int, queue <-chan []swapnotify.Transaction) {
	ctx = logger.Derive(ctx, "worker", id)

	for {
		txs, ok := chflow.Receive(ctx, queue)
		if !ok {
			return
		}

		s.handle(ctx, txs)
	}
}

// handle runs one delivery and keeps the worker alive if the handler panics.
func (s *service) handle(ctx context.Context, txs []swapnotify.Transaction) {
	start := time.Now()
	defer func() {
		if r := recover(); r != nil {
			logger.Error(ctx, "webhook delivery handler panicked", "panic", r, "transactions", len(txs))
		}
	}()

	if err := s.handler.Handle(ctx, txs); err != nil {
		logger.Warn(ctx, "webhook delivery interrupted", "error", err, "transactions", len(txs))
		return
	}

	logger.Debug(ctx, "webhook delivery handled", "transactions", len(txs), "duration", time.Since(start))
}
