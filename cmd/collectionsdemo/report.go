package main

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	mapset "github.com/deckarep/golang-set/v2"

	"github.com/danlock/collections/async"
	"github.com/danlock/collections/collection"
	"github.com/danlock/collections/errors"
	"github.com/danlock/collections/multimap"
	"github.com/danlock/collections/observable"
	"github.com/danlock/collections/seqs"
	"github.com/danlock/collections/set"
)

type group struct {
	Key    string
	Values []int
}

func parseInts(s string) ([]int, error) {
	var ints []int
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		i, err := strconv.Atoi(field)
		if err != nil {
			return nil, errors.WrapMeta(errors.Wrap(err), slog.String("field", field))
		}
		ints = append(ints, i)
	}
	return ints, nil
}

// parseSets parses semicolon separated sets of comma separated integers.
func parseSets(s string) ([]set.Set[int], error) {
	var sets []set.Set[int]
	for _, part := range strings.Split(s, ";") {
		ints, err := parseInts(part)
		if err != nil {
			return nil, errors.WrapMeta(err, slog.String("set", part))
		}
		sets = append(sets, set.From(ints...))
	}
	return sets, nil
}

// parseGroups parses semicolon separated key=values contributions. Keys may repeat.
func parseGroups(s string) ([]group, error) {
	var groups []group
	for _, part := range strings.Split(s, ";") {
		key, values, ok := strings.Cut(part, "=")
		if !ok {
			return nil, errors.WrapMeta(errors.New("expected key=values"), slog.String("group", part))
		}
		ints, err := parseInts(values)
		if err != nil {
			return nil, errors.WrapMeta(err, slog.String("group", part))
		}
		groups = append(groups, group{Key: strings.TrimSpace(key), Values: ints})
	}
	return groups, nil
}

func mergeSets(sets []set.Set[int], backend string) ([]set.Set[int], error) {
	switch backend {
	case backendSet:
		set.MergeOverlapping(&sets)
		return sets, nil
	case backendMapset:
		ms := make([]mapset.Set[int], 0, len(sets))
		for _, s := range sets {
			ms = append(ms, mapset.NewThreadUnsafeSet(slices.Collect(s.All())...))
		}
		set.MergeOverlappingFunc(&ms,
			func(a, b mapset.Set[int]) bool { return !a.Intersect(b).IsEmpty() },
			func(dst, src mapset.Set[int]) {
				src.Each(func(v int) bool {
					dst.Add(v)
					return false
				})
			},
		)
		merged := make([]set.Set[int], 0, len(ms))
		for _, m := range ms {
			merged = append(merged, set.From(m.ToSlice()...))
		}
		return merged, nil
	default:
		return nil, errors.WrapMeta(errors.New("unknown backend"), slog.String("backend", backend))
	}
}

func formatInts(ints []int) string {
	strs := make([]string, len(ints))
	for i, v := range ints {
		strs[i] = strconv.Itoa(v)
	}
	return strings.Join(strs, ",")
}

// buildReport merges cfg.Sets, groups cfg.Pairs and returns a human readable summary.
func buildReport(ctx context.Context, cfg config) (string, error) {
	sets, err := parseSets(cfg.Sets)
	if err != nil {
		return "", errors.Wrap(err)
	}
	merged, err := mergeSets(sets, cfg.Backend)
	if err != nil {
		return "", errors.Wrap(err)
	}
	groups, err := parseGroups(cfg.Pairs)
	if err != nil {
		return "", errors.Wrap(err)
	}

	lines := observable.NewCollection[string]()
	reg := observable.HandleChanges(lines, observable.Handlers[string]{
		Added: func(line string) { slog.Debug("report line", "line", line) },
	})
	defer reg.Close()

	formatted := make([]string, len(merged))
	for i, s := range merged {
		formatted[i] = "{" + formatInts(slices.Sorted(s.All())) + "}"
	}
	lines.Add("merged: " + strings.Join(formatted, " "))

	sums, err := async.Map(ctx, slices.Values(merged), func(_ context.Context, s set.Set[int]) (int, error) {
		sum := 0
		for v := range s.All() {
			sum += v
		}
		return sum, nil
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed summing sets")
	}
	lines.Add("sums: " + formatInts(sums))

	mm := multimap.CollectSlice(groups,
		func(g group) string { return g.Key },
		func(g group) []int { return g.Values },
	)
	keys := slices.Sorted(mm.Keys())
	for _, key := range keys {
		values, _ := mm.Get(key)
		lines.Add(fmt.Sprintf("%s: %s", key, formatInts(values)))
	}

	largest, err := seqs.MaxBy(slices.Values(keys), mm.CountOf)
	if err != nil {
		return "", errors.Wrap(err)
	}
	collection.AddRange[string](lines, "largest group: "+largest)

	var b strings.Builder
	seqs.ForEach(lines.All(), func(line string) {
		b.WriteString(line)
		b.WriteByte('\n')
	})
	return b.String(), nil
}
