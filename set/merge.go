package set

import "slices"

// MergeOverlapping repeatedly merges overlapping sets until sets only contains pairwise disjoint sets.
// Example: {1,2,3}, {4,5}, {6,7}, {3,4}, {7,8} => {1,2,3,4,5}, {6,7,8}.
//
// The slice is modified in place. A merged set keeps the slot of the earliest set it absorbed,
// and sets that overlap nothing keep their relative order.
// Surviving sets are grown in place, so other references to them observe the union.
func MergeOverlapping[T comparable](sets *[]Set[T]) {
	MergeOverlappingFunc(sets, Set[T].Overlaps, func(dst, src Set[T]) { dst.Union(src.All()) })
}

// MergeOverlappingFunc is MergeOverlapping for any set implementation.
// overlaps reports whether two sets share an element and union adds every element of src into dst.
func MergeOverlappingFunc[S any](sets *[]S, overlaps func(a, b S) bool, union func(dst, src S)) {
	if sets == nil {
		return
	}
	s := *sets
	for i := 0; i < len(s); i++ {
		for j := i + 1; j < len(s); j++ {
			if !overlaps(s[i], s[j]) {
				continue
			}
			union(s[i], s[j])
			s = slices.Delete(s, j, j+1)
			// s[i] grew, so it may now overlap sets we already scanned past.
			j = i
		}
	}
	*sets = s
}
