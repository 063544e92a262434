package seqs

import (
	"slices"
	"strings"
	"testing"

	"github.com/danlock/collections/errors"
	"github.com/danlock/collections/test"
)

type city struct {
	Name       string
	Population int
}

var cities = []city{
	{"Lagos", 15_000_000},
	{"Reykjavik", 140_000},
	{"Vaduz", 5_700},
	{"Tokyo", 37_000_000},
	{"Monaco", 5_700},
	{"Osaka", 37_000_000},
}

func population(c city) int { return c.Population }

func TestOf(t *testing.T) {
	test.Equality(t, []string{"only"}, slices.Collect(Of("only")))

	// Stopping early must not panic.
	for range Of(1) {
		break
	}
}

func TestForEach(t *testing.T) {
	var names []string
	ForEach(slices.Values(cities), func(c city) { names = append(names, c.Name) })
	test.Equality(t, []string{"Lagos", "Reykjavik", "Vaduz", "Tokyo", "Monaco", "Osaka"}, names)

	ForEach(slices.Values([]city(nil)), func(city) { t.Fatal("called on empty sequence") })
}

func TestMinMaxBy(t *testing.T) {
	smallest, err := MinBy(slices.Values(cities), population)
	test.FailOnError(t, err)
	test.Equality(t, "Vaduz", smallest.Name, "first element should win ties")

	largest, err := MaxBy(slices.Values(cities), population)
	test.FailOnError(t, err)
	test.Equality(t, "Tokyo", largest.Name, "first element should win ties")

	shortest, err := MinBy(slices.Values(cities), func(c city) int { return len(c.Name) })
	test.FailOnError(t, err)
	test.Equality(t, "Lagos", shortest.Name)

	last, err := MaxBy(slices.Values(cities), func(c city) string { return strings.ToLower(c.Name) })
	test.FailOnError(t, err)
	test.Equality(t, "Vaduz", last.Name)
}

func TestMinMaxByEmpty(t *testing.T) {
	empty := slices.Values([]city{})

	_, err := MinBy(empty, population)
	test.Truth(t, errors.Is(err, ErrEmptySequence), "MinBy err %v", err)
	_, err = MaxBy(empty, population)
	test.Truth(t, errors.Is(err, ErrEmptySequence), "MaxBy err %v", err)

	_, ok := MinByOK(empty, population)
	test.Truth(t, !ok, "MinByOK on empty")
	_, ok = MaxByOK(empty, population)
	test.Truth(t, !ok, "MaxByOK on empty")

	fallback := city{Name: "nowhere"}
	test.Equality(t, fallback, MinByOr(empty, population, fallback))
	test.Equality(t, fallback, MaxByOr(empty, population, fallback))

	test.Equality(t, cities[2], MinByOr(slices.Values(cities), population, fallback))
	test.Equality(t, cities[3], MaxByOr(slices.Values(cities), population, fallback))
}

func TestKeyCalledOncePerElement(t *testing.T) {
	calls := 0
	_, ok := MaxByOK(slices.Values([]int{3, 1, 4, 1, 5}), func(i int) int {
		calls++
		return i
	})
	test.Truth(t, ok, "non empty")
	test.Equality(t, 5, calls)
}
