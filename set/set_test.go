package set

import (
	"iter"
	"slices"
	"testing"

	"github.com/danlock/collections/test"
)

func Test(t *testing.T) {
	names := []string{"Anton", "Brock", "Chairo"}

	nameSet := From(names...)
	test.Truth(t, nameSet.Equal(FromSeq(slices.Values(names))), "From and FromSeq disagree")

	intIter := func(i iter.Seq[int]) {}
	intIter(ToSeq(1, 2, 3))

	combined := nameSet.
		Union(ToSeq("Dave", "Eve", "Anton")).
		Add("Joe", "Frank").
		Difference(ToSeq("Alice", "Eve", "whodat")).
		Intersects(ToSeq("Brock", "Dave"))

	test.Truth(t, !combined.Has("Alice"), "Expected Alice to not be in the set")
	test.Truth(t, combined.Has("Dave"), "Expected Dave to be in the set")
	test.Truth(t, combined.HasAny(ToSeq("Alice", "Brock")), "Expected Brock to be in the set")
	test.Truth(t, !combined.HasAll(ToSeq("Alice", "Dave")), "Expected Alice to not be in the set")
	test.Equality(t, 2, combined.Len())
}

func TestOverlaps(t *testing.T) {
	a := From(1, 2, 3)
	test.Truth(t, a.Overlaps(From(3, 4)), "{1,2,3} and {3,4} share 3")
	test.Truth(t, From(9, 8, 7, 6, 3).Overlaps(a), "overlap should not depend on argument order")
	test.Truth(t, !a.Overlaps(From(4, 5)), "{1,2,3} and {4,5} are disjoint")
	test.Truth(t, !a.Overlaps(From[int]()), "nothing overlaps the empty set")
	test.Truth(t, !From[int]().Overlaps(From[int]()), "empty sets don't overlap")
}

func TestCloneRemove(t *testing.T) {
	a := From("x", "y", "z")
	b := a.Clone().Remove("y", "missing")

	test.Equality(t, From("x", "y", "z"), a, "Clone shares storage with the original")
	test.Equality(t, From("x", "z"), b)
	test.Truth(t, !a.Equal(b), "sets with different lengths are not equal")
	test.Truth(t, !From(1, 2).Equal(From(1, 3)), "sets with different elements are not equal")
}
