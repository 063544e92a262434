// Package seqs provides small helpers over iter.Seq that the standard library leaves out.
package seqs

import (
	stderrors "errors"
	"iter"

	"golang.org/x/exp/constraints"

	"github.com/danlock/collections/errors"
)

// ErrEmptySequence is returned by MinBy and MaxBy when there is nothing to select from.
var ErrEmptySequence = stderrors.New("empty sequence")

// Of returns a sequence yielding only item.
func Of[T any](item T) iter.Seq[T] {
	return func(yield func(T) bool) { yield(item) }
}

// ForEach calls fn for every element of seq.
func ForEach[T any](seq iter.Seq[T], fn func(T)) {
	for v := range seq {
		fn(v)
	}
}

// MinBy returns the element of seq with the smallest key. The first element wins ties.
// It returns ErrEmptySequence if seq is empty.
func MinBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (T, error) {
	v, ok := selectBy(seq, key, func(a, b K) bool { return a < b })
	if !ok {
		return v, errors.Wrap(ErrEmptySequence)
	}
	return v, nil
}

// MaxBy returns the element of seq with the largest key. The first element wins ties.
// It returns ErrEmptySequence if seq is empty.
func MaxBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (T, error) {
	v, ok := selectBy(seq, key, func(a, b K) bool { return a > b })
	if !ok {
		return v, errors.Wrap(ErrEmptySequence)
	}
	return v, nil
}

// MinByOK is MinBy reporting an empty seq with false instead of an error.
func MinByOK[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (T, bool) {
	return selectBy(seq, key, func(a, b K) bool { return a < b })
}

// MaxByOK is MaxBy reporting an empty seq with false instead of an error.
func MaxByOK[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K) (T, bool) {
	return selectBy(seq, key, func(a, b K) bool { return a > b })
}

// MinByOr is MinBy returning fallback for an empty seq.
func MinByOr[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K, fallback T) T {
	if v, ok := MinByOK(seq, key); ok {
		return v
	}
	return fallback
}

// MaxByOr is MaxBy returning fallback for an empty seq.
func MaxByOr[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K, fallback T) T {
	if v, ok := MaxByOK(seq, key); ok {
		return v
	}
	return fallback
}

// selectBy returns the first element whose key beats every later key according to better.
// key is called once per element.
func selectBy[T any, K constraints.Ordered](seq iter.Seq[T], key func(T) K, better func(a, b K) bool) (best T, found bool) {
	var bestKey K
	for v := range seq {
		k := key(v)
		if !found || better(k, bestKey) {
			best, bestKey, found = v, k, true
		}
	}
	return best, found
}
