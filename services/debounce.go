package services

import (
	"context"
	"sync"
	"time"
)

// Debouncer coalesces rapid lookup triggers so only the one matching the
// latest input executes. Each Do call cancels the previous in-flight
// call, and a call whose work finished after it was superseded has its
// result discarded rather than applied over newer state.
type Debouncer[T any] struct {
	delay time.Duration

	mu     sync.Mutex
	cancel context.CancelFunc
}

func NewDebouncer[T any](delay time.Duration) *Debouncer[T] {
	return &Debouncer[T]{delay: delay}
}

// Do waits out the debounce delay and then runs fn, unless a newer Do
// call arrives first. Superseded calls return ErrSuperseded, including
// when fn had already completed: the stale result is never returned.
func (d *Debouncer[T]) Do(ctx context.Context, fn func(context.Context) (T, error)) (T, error) {
	d.mu.Lock()
	if d.cancel != nil {
		d.cancel()
	}
	runCtx, cancel := context.WithCancel(context.Background())
	d.cancel = cancel
	d.mu.Unlock()

	var zero T

	timer := time.NewTimer(d.delay)
	defer timer.Stop()
	select {
	case <-runCtx.Done():
		return zero, ErrSuperseded
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-timer.C:
	}

	result, err := fn(runCtx)
	if runCtx.Err() != nil {
		return zero, ErrSuperseded
	}
	return result, err
}
