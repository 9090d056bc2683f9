package cancellation

import (
	"context"

	"github.com/uniflow-go/uniflow/effects"
)

// Cancellable overlays cancellation bookkeeping onto an effect: each
// subscription registers a handle under token, and the handle is gone from
// the registry once the subscription ends, whichever way it ends.
//
// With cancelInFlight set, subscribing first cancels everything already
// registered under token, so callers that use it consistently get
// latest-instance-wins semantics per token.
//
// The overlay forwards values, errors, and completion unchanged. Layers
// compose: wrapping twice registers two handles, and tearing down the
// outer layer unwinds the inner one through ordinary context propagation.
func Cancellable[T any](
	reg *Registry,
	token Token,
	cancelInFlight bool,
	effect effects.Effect[T],
) effects.Effect[T] {
	return func(ctx context.Context, downstream effects.Observer[T]) {
		if cancelInFlight {
			reg.Cancel(token)
		}

		ctx, cancelFn := context.WithCancel(ctx)
		defer cancelFn()

		id := reg.Register(token, NewHandle(cancelFn))
		// Deregistration must also cover producers that never terminate on
		// their own: when external teardown makes the producer return, this
		// is the only removal path. Double removal after a terminal signal
		// is a no-op.
		defer reg.Remove(token, id)

		effect(ctx, effects.Observer[T]{
			OnNext: downstream.Next,
			OnError: func(err error) {
				reg.Remove(token, id)
				downstream.Error(err)
			},
			OnComplete: func() {
				reg.Remove(token, id)
				downstream.Complete()
			},
		})
	}
}

// Cancel builds an effect that, on subscription, synchronously cancels
// every handle registered under the given tokens and then completes. It
// emits no values and is meant to be fired from a reducer in response to
// an action. Subscribing again just cancels again, typically a no-op.
func Cancel(reg *Registry, tokens ...Token) effects.Effect[struct{}] {
	return func(_ context.Context, obs effects.Observer[struct{}]) {
		reg.Cancel(tokens...)
		obs.Complete()
	}
}
