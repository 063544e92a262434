package multimap

import (
	"iter"
	"slices"
)

// Collect builds a MultiMap from elems, consuming it once and in order.
// Every element contributes valuesFn(elem) to the collection under keyFn(elem),
// so each key ends up with the concatenation of all its contributions in processing order.
func Collect[E any, K comparable, V any](elems iter.Seq[E], keyFn func(E) K, valuesFn func(E) iter.Seq[V]) *MultiMap[K, V] {
	mm := New[K, V]()
	for e := range elems {
		mm.AppendSeq(keyFn(e), valuesFn(e))
	}
	return mm
}

// CollectSlice is Collect for a slice of elements whose values are also slices.
func CollectSlice[E any, K comparable, V any](elems []E, keyFn func(E) K, valuesFn func(E) []V) *MultiMap[K, V] {
	return Collect(slices.Values(elems), keyFn, func(e E) iter.Seq[V] { return slices.Values(valuesFn(e)) })
}

// GroupBy builds a MultiMap holding each element under keyFn(elem), in order.
func GroupBy[E any, K comparable](elems iter.Seq[E], keyFn func(E) K) *MultiMap[K, E] {
	mm := New[K, E]()
	for e := range elems {
		mm.Append(keyFn(e), e)
	}
	return mm
}
