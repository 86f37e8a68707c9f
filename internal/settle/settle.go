// Package settle races a context-aware call against a deadline.
package settle

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrTimeout is returned when the deadline fires before the call settles.
var ErrTimeout = errors.New("operation timeout")

type result[T any] struct {
	v   T
	err error
}

// Within runs fn and returns whichever settles first: fn or a timer of d.
// When the timer wins, fn's context is cancelled and its eventual result is dropped.
func Within[T any](ctx context.Context, d time.Duration, fn func(context.Context) (T, error)) (T, error) {
	var zero T
	if err := ctx.Err(); err != nil {
		return zero, err
	}

	callCtx, cancel := context.WithCancel(ctx)
	defer cancel()

	ch := make(chan result[T], 1) // buffered: a late result must not block the goroutine
	go func() {
		v, err := fn(callCtx)
		ch <- result[T]{v: v, err: err}
	}()

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case r := <-ch:
		return r.v, r.err
	case <-timer.C:
		return zero, fmt.Errorf("%w after %s", ErrTimeout, d)
	case <-ctx.Done():
		return zero, ctx.Err()
	}
}
