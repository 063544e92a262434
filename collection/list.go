package collection

import (
	"iter"
	"slices"
)

// List is a slice backed Collection of comparable items. Not thread safe.
type List[T comparable] struct {
	items []T
}

var _ Collection[int] = (*List[int])(nil)

// NewList creates a List holding a copy of items.
func NewList[T comparable](items ...T) *List[T] {
	return &List[T]{items: slices.Clone(items)}
}

func (l *List[T]) Add(item T) { l.items = append(l.items, item) }

// AppendSeq appends every item of the sequence.
func (l *List[T]) AppendSeq(items iter.Seq[T]) { l.items = slices.AppendSeq(l.items, items) }

// Remove removes the first occurrence of item.
func (l *List[T]) Remove(item T) bool {
	i := slices.Index(l.items, item)
	if i < 0 {
		return false
	}
	l.items = slices.Delete(l.items, i, i+1)
	return true
}

func (l *List[T]) Len() int { return len(l.items) }

// All returns an iterator over the items in order.
func (l *List[T]) All() iter.Seq[T] { return slices.Values(l.items) }

// Slice returns a copy of the items.
func (l *List[T]) Slice() []T { return slices.Clone(l.items) }
