// Package effects provides the asynchronous effect primitive for a
// unidirectional-data-flow architecture.
//
// An Effect is a cold producer of zero or more values followed by exactly
// one terminal signal (completion or error), or torn down early by its
// subscriber. Effects carry the results of actions back toward a central
// reducer; this package defines only the producer/subscriber contract and
// a handful of constructors, not the reducer loop itself.
//
// # Producer contract
//
// A producer is a plain function running on the goroutine spawned by
// Subscribe. It must select on ctx.Done() at every suspension point and
// return promptly once the context is cancelled. It must not return while
// it still intends to emit: returning is the signal that the subscription
// is over, whether terminal or torn down.
//
// Example:
//
//	eff := effects.After(time.Second, 42)
//	sub := eff.Subscribe(ctx, effects.Observer[int]{
//	    OnNext:     func(v int) { fmt.Println(v) },
//	    OnComplete: func() { fmt.Println("done") },
//	})
//	defer sub.Dispose()
//
// Cancellation bookkeeping (tagging in-flight effects with tokens and
// cancelling them by token) lives in the effects/cancellation subpackage.
package effects
