// Package chflow provides context-aware helpers for receiving from and
// sending to Go channels.
package chflow

import "context"

// Receive waits for a value from ch or for ctx to be done. The boolean is
// false when ctx finished first or ch was closed.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// TrySend delivers data on ch without blocking. It reports false when ctx is
// already done or ch has no room.
func TrySend[T any](ctx context.Context, ch chan<- T, data T) bool {
	if ctx.Err() != nil {
		return false
	}

	select {
	case ch <- data:
		return true
	default:
		return false
	}
}
