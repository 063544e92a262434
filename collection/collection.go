// Package collection adds bulk mutation to anything that can add and remove single items.
package collection

import (
	"iter"
	"slices"
)

// Collection is a mutable collection of items.
type Collection[T any] interface {
	Add(item T)
	// Remove removes one occurrence of item, reporting whether it was found.
	Remove(item T) bool
}

// seqAppender is implemented by collections that can grow in bulk, like List.
type seqAppender[T any] interface {
	AppendSeq(items iter.Seq[T])
}

// AddRange adds every item to c.
func AddRange[T any](c Collection[T], items ...T) {
	AddSeq(c, slices.Values(items))
}

// AddSeq adds every item of the sequence to c. Lists are grown in one append.
func AddSeq[T any](c Collection[T], items iter.Seq[T]) {
	if a, ok := c.(seqAppender[T]); ok {
		a.AppendSeq(items)
		return
	}
	for item := range items {
		c.Add(item)
	}
}

// RemoveRange removes one occurrence of every item from c.
func RemoveRange[T any](c Collection[T], items ...T) {
	RemoveSeq(c, slices.Values(items))
}

// RemoveSeq removes one occurrence of every item of the sequence from c.
func RemoveSeq[T any](c Collection[T], items iter.Seq[T]) {
	for item := range items {
		c.Remove(item)
	}
}
