package effects

import (
	"context"
	"time"
)

// Just emits the given values in order, then completes.
func Just[T any](values ...T) Effect[T] {
	return func(ctx context.Context, obs Observer[T]) {
		for _, v := range values {
			select {
			case <-ctx.Done():
				return
			default:
			}
			obs.Next(v)
		}
		obs.Complete()
	}
}

// Empty completes immediately without emitting.
func Empty[T any]() Effect[T] {
	return func(_ context.Context, obs Observer[T]) {
		obs.Complete()
	}
}

// Fail terminates immediately with err, emitting nothing.
func Fail[T any](err error) Effect[T] {
	return func(_ context.Context, obs Observer[T]) {
		obs.Error(err)
	}
}

// After emits v once the delay has elapsed, then completes.
// Teardown before the timer fires emits nothing.
func After[T any](delay time.Duration, v T) Effect[T] {
	return func(ctx context.Context, obs Observer[T]) {
		timer := time.NewTimer(delay)
		defer timer.Stop()

		select {
		case <-ctx.Done():
		case <-timer.C:
			obs.Next(v)
			obs.Complete()
		}
	}
}

// Run lifts an asynchronous task into a single-value effect: the task's
// result is emitted followed by completion, or its error terminates the
// effect. The task observes teardown through its context.
func Run[T any](task func(context.Context) (T, error)) Effect[T] {
	return func(ctx context.Context, obs Observer[T]) {
		v, err := task(ctx)
		if err != nil {
			obs.Error(err)
			return
		}
		select {
		case <-ctx.Done():
		default:
			obs.Next(v)
			obs.Complete()
		}
	}
}
