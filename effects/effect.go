package effects

import (
	"context"
	"fmt"
	"sync/atomic"
)

// Observer receives the signals of a single effect subscription.
// Any of the callbacks may be nil; use the Next/Error/Complete methods
// to deliver signals without nil checks at every call site.
type Observer[T any] struct {
	OnNext     func(T)
	OnError    func(error)
	OnComplete func()
}

// Next delivers a value to the observer, tolerating a nil callback.
func (o Observer[T]) Next(v T) {
	if o.OnNext != nil {
		o.OnNext(v)
	}
}

// Error delivers an error termination to the observer, tolerating a nil callback.
func (o Observer[T]) Error(err error) {
	if o.OnError != nil {
		o.OnError(err)
	}
}

// Complete delivers a normal termination to the observer, tolerating a nil callback.
func (o Observer[T]) Complete() {
	if o.OnComplete != nil {
		o.OnComplete()
	}
}

// Effect is a cold asynchronous producer of values.
//
// The function runs on the goroutine spawned by Subscribe and must honor
// the producer contract described in the package documentation: select on
// ctx.Done() at every suspension point, emit at most one terminal signal,
// and return once it has nothing more to emit.
type Effect[T any] func(ctx context.Context, obs Observer[T])

// Subscribe starts the effect on its own goroutine.
//
// The producer receives a context derived from ctx that is cancelled when
// the returned Subscription is disposed. Signals pass through a guard so
// that at most one terminal signal reaches obs, and no value reaches it
// after that. A panic in the producer is recovered and surfaced through
// OnError.
func (e Effect[T]) Subscribe(ctx context.Context, obs Observer[T]) *Subscription {
	ctx, cancelFn := context.WithCancel(ctx)
	sub := newSubscription(cancelFn)
	guarded := guardTerminal(obs)

	readyCh := make(chan struct{})
	go func() {
		defer sub.exit()
		defer func() {
			if r := recover(); r != nil {
				guarded.Error(fmt.Errorf("panic in effect producer: %v", r))
			}
		}()
		close(readyCh)
		e(ctx, guarded)
	}()
	<-readyCh

	return sub
}

// guardTerminal wraps obs so that values stop flowing after the first
// terminal signal, and the terminal signal itself is delivered at most once.
func guardTerminal[T any](obs Observer[T]) Observer[T] {
	var terminated atomic.Bool
	return Observer[T]{
		OnNext: func(v T) {
			if terminated.Load() {
				return
			}
			obs.Next(v)
		},
		OnError: func(err error) {
			if terminated.CompareAndSwap(false, true) {
				obs.Error(err)
			}
		},
		OnComplete: func() {
			if terminated.CompareAndSwap(false, true) {
				obs.Complete()
			}
		},
	}
}
