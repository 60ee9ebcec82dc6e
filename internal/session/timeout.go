package session

import (
	"context"
	"fmt"
	"time"
)

// raceTimeout races fn against a wall-clock budget. The timeout means "stop
// waiting", not "abort the call": fn keeps the caller's context, runs to
// completion in its own goroutine and its late result is discarded into the
// buffered channel. Whichever side settles first wins.
func raceTimeout[T any](ctx context.Context, budget time.Duration, label string, fn func(context.Context) (T, error)) (T, error) {
	type outcome struct {
		val T
		err error
	}

	ch := make(chan outcome, 1)
	go func() {
		val, err := fn(ctx)
		ch <- outcome{val: val, err: err}
	}()

	timer := time.NewTimer(budget)
	defer timer.Stop()

	var zero T
	select {
	case out := <-ch:
		return out.val, out.err
	case <-timer.C:
		return zero, fmt.Errorf("%s timed out after %s", label, budget)
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
