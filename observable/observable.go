// Package observable provides a slice backed collection that notifies listeners of every change.
//
// Mutating a Collection is not thread safe, but registrations may be closed from any goroutine.
package observable

import (
	"iter"
	"slices"
	"sync"

	"github.com/danlock/collections/collection"
)

// Change describes a single mutation of a Collection.
// Replacing an item reports the old item as removed and the new one as added.
type Change[T any] struct {
	Removed []T
	Added   []T
}

// Collection is an ordered list of items that notifies subscribers whenever it changes.
type Collection[T comparable] struct {
	items []T

	mu        sync.Mutex
	listeners []*Registration[T]
}

var _ collection.Collection[int] = (*Collection[int])(nil)

// NewCollection creates a Collection holding a copy of items.
func NewCollection[T comparable](items ...T) *Collection[T] {
	return &Collection[T]{items: slices.Clone(items)}
}

func (c *Collection[T]) Len() int { return len(c.items) }

// At returns the item at index i. It panics if i is out of range, like indexing a slice.
func (c *Collection[T]) At(i int) T { return c.items[i] }

// All returns an iterator over the items in order.
func (c *Collection[T]) All() iter.Seq[T] { return slices.Values(c.items) }

// Add appends item.
func (c *Collection[T]) Add(item T) {
	c.items = append(c.items, item)
	c.notify(Change[T]{Added: []T{item}})
}

// Insert inserts item at index i.
func (c *Collection[T]) Insert(i int, item T) {
	c.items = slices.Insert(c.items, i, item)
	c.notify(Change[T]{Added: []T{item}})
}

// Set replaces the item at index i.
func (c *Collection[T]) Set(i int, item T) {
	old := c.items[i]
	c.items[i] = item
	c.notify(Change[T]{Removed: []T{old}, Added: []T{item}})
}

// RemoveAt removes and returns the item at index i.
func (c *Collection[T]) RemoveAt(i int) T {
	old := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)
	c.notify(Change[T]{Removed: []T{old}})
	return old
}

// Remove removes the first occurrence of item, reporting whether it was found.
func (c *Collection[T]) Remove(item T) bool {
	i := slices.Index(c.items, item)
	if i < 0 {
		return false
	}
	c.RemoveAt(i)
	return true
}

// Clear removes every item with a single Change.
func (c *Collection[T]) Clear() {
	if len(c.items) == 0 {
		return
	}
	old := c.items
	c.items = nil
	c.notify(Change[T]{Removed: old})
}

// Subscribe calls fn after every change until the returned Registration is closed.
func (c *Collection[T]) Subscribe(fn func(Change[T])) *Registration[T] {
	r := &Registration[T]{c: c, fn: fn}
	c.mu.Lock()
	c.listeners = append(c.listeners, r)
	c.mu.Unlock()
	return r
}

func (c *Collection[T]) notify(change Change[T]) {
	c.mu.Lock()
	listeners := slices.Clone(c.listeners)
	c.mu.Unlock()

	for _, r := range listeners {
		// r may have been closed by an earlier listener during this same change.
		if !r.closed.Load() {
			r.fn(change)
		}
	}
}

func (c *Collection[T]) unsubscribe(r *Registration[T]) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.listeners = slices.DeleteFunc(c.listeners, func(l *Registration[T]) bool { return l == r })
}
