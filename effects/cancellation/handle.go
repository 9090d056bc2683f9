package cancellation

import (
	"sync/atomic"
	"time"
)

// Handle is the disposal capability for one effect subscription. It is
// owned jointly by the subscriber (who may tear the subscription down
// directly) and the registry (who disposes it on cancellation); whichever
// side disposes first wins and the other call is a no-op.
type Handle struct {
	teardown     func()
	disposed     atomic.Bool
	registeredAt time.Time
}

// NewHandle wraps a teardown function, typically the CancelFunc of the
// subscription's derived context.
func NewHandle(teardown func()) *Handle {
	return &Handle{
		teardown:     teardown,
		registeredAt: time.Now(),
	}
}

// Dispose runs the teardown exactly once. Idempotent.
func (h *Handle) Dispose() {
	if h.disposed.CompareAndSwap(false, true) && h.teardown != nil {
		h.teardown()
	}
}

// IsDisposed reports whether Dispose has taken effect.
func (h *Handle) IsDisposed() bool {
	return h.disposed.Load()
}
