// Package multimap provides a map where each key holds an ordered, append only collection of values.
// A MultiMap is not thread safe.
package multimap

import (
	"iter"
	"maps"
	"slices"
)

// MultiMap maps a key to one or more values, kept in insertion order.
// A key mapped to an empty collection is still present, which is distinct from an absent key.
type MultiMap[K comparable, V any] struct {
	// Values are held behind a pointer so appends stay visible to iterators handed out earlier.
	items map[K]*[]V
}

// New initializes an empty MultiMap.
func New[K comparable, V any]() *MultiMap[K, V] {
	return &MultiMap[K, V]{items: map[K]*[]V{}}
}

// NewWithCap initializes an empty MultiMap with room for capacity keys.
func NewWithCap[K comparable, V any](capacity int) *MultiMap[K, V] {
	return &MultiMap[K, V]{items: make(map[K]*[]V, capacity)}
}

// FromGrouped creates a MultiMap from pre grouped values, materializing each group once into a collection the map owns.
// Keys are expected to be unique. If a key repeats, the last group wins.
func FromGrouped[K comparable, V any](groups iter.Seq2[K, iter.Seq[V]]) *MultiMap[K, V] {
	mm := New[K, V]()
	for key, group := range groups {
		values := slices.Collect(group)
		if values == nil {
			values = []V{}
		}
		mm.items[key] = &values
	}
	return mm
}

// Insert stores values as the collection for key, replacing anything already there.
// Callers are expected to Insert each key at most once and use Append afterwards.
func (mm *MultiMap[K, V]) Insert(key K, values ...V) {
	owned := slices.Clone(values)
	if owned == nil {
		owned = []V{}
	}
	mm.items[key] = &owned
}

// Append adds values to the end of key's collection, creating the key if it is absent.
// Appending nothing to an absent key still creates it with an empty collection.
func (mm *MultiMap[K, V]) Append(key K, values ...V) {
	mm.AppendSeq(key, slices.Values(values))
}

// AppendSeq is Append for an iter.Seq.
func (mm *MultiMap[K, V]) AppendSeq(key K, values iter.Seq[V]) {
	existing, ok := mm.items[key]
	if !ok {
		mm.items[key] = &[]V{}
		existing = mm.items[key]
	}
	*existing = slices.AppendSeq(*existing, values)
}

// Has returns true if the key is found in the map.
func (mm *MultiMap[K, V]) Has(key K) bool {
	_, ok := mm.items[key]
	return ok
}

// Lookup returns a lazy sequence over key's current values and whether the key exists.
// The sequence reads the live collection, so values appended before iteration starts are included.
func (mm *MultiMap[K, V]) Lookup(key K) (iter.Seq[V], bool) {
	values, ok := mm.items[key]
	if !ok {
		return func(func(V) bool) {}, false
	}
	return seqOf(values), true
}

// Get returns a copy of the values stored for key and whether the key existed.
// If the key does not exist, an empty slice is returned.
func (mm *MultiMap[K, V]) Get(key K) ([]V, bool) {
	values, ok := mm.items[key]
	if !ok {
		return []V{}, false
	}
	return slices.Clone(*values), true
}

// IsEmpty returns true if the map has no keys.
func (mm *MultiMap[K, V]) IsEmpty() bool { return len(mm.items) == 0 }

// Len returns the number of keys in the map.
func (mm *MultiMap[K, V]) Len() int { return len(mm.items) }

// CountOf returns the number of values stored for the given key.
func (mm *MultiMap[K, V]) CountOf(key K) int {
	values, ok := mm.items[key]
	if !ok {
		return 0
	}
	return len(*values)
}

// Keys returns an iterator over the keys in map order, which is not insertion order.
func (mm *MultiMap[K, V]) Keys() iter.Seq[K] { return maps.Keys(mm.items) }

// Values returns an iterator over every key's values. Use All when the keys are needed too,
// since separate map iterations don't share an order.
func (mm *MultiMap[K, V]) Values() iter.Seq[iter.Seq[V]] {
	return func(yield func(iter.Seq[V]) bool) {
		for _, values := range mm.items {
			if !yield(seqOf(values)) {
				return
			}
		}
	}
}

// All returns an iterator over each key and its values.
func (mm *MultiMap[K, V]) All() iter.Seq2[K, iter.Seq[V]] {
	return func(yield func(K, iter.Seq[V]) bool) {
		for key, values := range mm.items {
			if !yield(key, seqOf(values)) {
				return
			}
		}
	}
}

// AsReadOnly returns a read only view over the map. Unlike a copy, the view reflects later changes to mm.
func (mm *MultiMap[K, V]) AsReadOnly() ReadOnly[K, V] { return readOnly[K, V]{mm} }

func seqOf[V any](values *[]V) iter.Seq[V] {
	return func(yield func(V) bool) {
		for _, v := range *values {
			if !yield(v) {
				return
			}
		}
	}
}
