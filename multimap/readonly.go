package multimap

import "iter"

// ReadOnly is a live, read only view of a MultiMap.
// Values are exposed as sequences so the backing collections can't be mutated through it.
type ReadOnly[K comparable, V any] interface {
	// Has returns true if the key is found in the map.
	Has(key K) bool

	// Lookup returns the key's values and whether the key exists.
	Lookup(key K) (iter.Seq[V], bool)

	// Len returns the number of keys.
	Len() int

	// Keys returns an iterator over the keys.
	Keys() iter.Seq[K]

	// Values returns an iterator over each key's values. All pairs them with their keys.
	Values() iter.Seq[iter.Seq[V]]

	// All returns an iterator over each key and its values.
	All() iter.Seq2[K, iter.Seq[V]]
}

var _ ReadOnly[string, int] = readOnly[string, int]{}

type readOnly[K comparable, V any] struct {
	mm *MultiMap[K, V]
}

func (r readOnly[K, V]) Has(key K) bool                   { return r.mm.Has(key) }
func (r readOnly[K, V]) Lookup(key K) (iter.Seq[V], bool) { return r.mm.Lookup(key) }
func (r readOnly[K, V]) Len() int                         { return r.mm.Len() }
func (r readOnly[K, V]) Keys() iter.Seq[K]                { return r.mm.Keys() }
func (r readOnly[K, V]) Values() iter.Seq[iter.Seq[V]]    { return r.mm.Values() }
func (r readOnly[K, V]) All() iter.Seq2[K, iter.Seq[V]]   { return r.mm.All() }
