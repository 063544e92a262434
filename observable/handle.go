package observable

import (
	"io"
	"sync"
	"sync/atomic"
)

// Registration keeps a listener subscribed to a Collection until Close is called.
type Registration[T comparable] struct {
	c      *Collection[T]
	fn     func(Change[T])
	once   sync.Once
	closed atomic.Bool
}

var _ io.Closer = (*Registration[int])(nil)

// Close deregisters the listener. No notification is delivered after Close returns.
// Only the first call does anything, so it's safe to defer alongside an explicit Close.
func (r *Registration[T]) Close() error {
	r.once.Do(func() {
		r.closed.Store(true)
		r.c.unsubscribe(r)
	})
	return nil
}

// Handlers are the callbacks HandleChanges invokes. Any of them may be nil.
type Handlers[T any] struct {
	// Removed is called for every item removed by a change.
	Removed func(T)
	// Added is called for every item added by a change.
	Added func(T)
	// Before is called once per change, before Removed and Added.
	Before func()
	// After is called once per change, after Removed and Added.
	After func()
}

// HandleChanges subscribes h to c. For every change, Before is called, then Removed for each removed item,
// then Added for each added item, then After.
func HandleChanges[T comparable](c *Collection[T], h Handlers[T]) *Registration[T] {
	return c.Subscribe(func(change Change[T]) {
		if h.Before != nil {
			h.Before()
		}
		if h.Removed != nil {
			for _, item := range change.Removed {
				h.Removed(item)
			}
		}
		if h.Added != nil {
			for _, item := range change.Added {
				h.Added(item)
			}
		}
		if h.After != nil {
			h.After()
		}
	})
}
