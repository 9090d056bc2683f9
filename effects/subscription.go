package effects

import (
	"context"
	"sync/atomic"
)

// Subscription is the subscriber's side of one running effect.
//
// Dispose tears the producer down by cancelling its derived context; it is
// safe to call from any goroutine, any number of times. Done is closed once
// the producer goroutine has exited, whichever way the subscription ended
// (terminal signal, external dispose, or cancellation by token).
type Subscription struct {
	cancelFn context.CancelFunc
	doneCh   chan struct{}
	disposed atomic.Bool
}

func newSubscription(cancelFn context.CancelFunc) *Subscription {
	return &Subscription{
		cancelFn: cancelFn,
		doneCh:   make(chan struct{}),
	}
}

// Dispose cancels the subscription's context. Idempotent.
func (s *Subscription) Dispose() {
	if s.disposed.CompareAndSwap(false, true) {
		s.cancelFn()
	}
}

// IsDisposed reports whether Dispose has been called.
func (s *Subscription) IsDisposed() bool {
	return s.disposed.Load()
}

// Done is closed when the producer goroutine has exited.
func (s *Subscription) Done() <-chan struct{} {
	return s.doneCh
}

// exit is called exactly once, from the producer goroutine, after the
// producer function has returned. Cancelling here releases the derived
// context even when the producer terminated on its own.
func (s *Subscription) exit() {
	s.cancelFn()
	close(s.doneCh)
}
