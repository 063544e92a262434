package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/danlock/collections/errors"
	"github.com/danlock/collections/set"
)

func TestBuildReport(t *testing.T) {
	want := `merged: {1,2,3,4,5} {6,7,8}
sums: 15,21
even: 2,4,6
odd: 1,3,5
largest group: even
`
	for _, backend := range []string{backendSet, backendMapset} {
		t.Run(backend, func(t *testing.T) {
			cfg := config{Backend: backend}.withEnv(func(string) string { return "" })
			var out bytes.Buffer
			require.NoError(t, run(t.Context(), cfg, &out))
			require.Equal(t, want, out.String())
		})
	}
}

func TestConfigPrecedence(t *testing.T) {
	env := map[string]string{envSets: "1;1", envBackend: backendMapset}
	cfg := config{Sets: "9"}.withEnv(func(k string) string { return env[k] })

	require.Equal(t, "9", cfg.Sets, "flags win over the environment")
	require.Equal(t, backendMapset, cfg.Backend)
	require.Equal(t, "info", cfg.LogLevel)
}

func TestParseSets(t *testing.T) {
	sets, err := parseSets("1, 2;;3")
	require.NoError(t, err)
	require.Equal(t, []set.Set[int]{set.From(1, 2), set.From[int](), set.From(3)}, sets)

	_, err = parseSets("1,x")
	require.Error(t, err)
	field, ok := errors.MetaValue(err, "field")
	require.True(t, ok)
	require.Equal(t, "x", field.String())
}

func TestParseGroups(t *testing.T) {
	groups, err := parseGroups("a=1,2; b =3;a=")
	require.NoError(t, err)
	require.Equal(t, []group{{"a", []int{1, 2}}, {"b", []int{3}}, {"a", nil}}, groups)

	_, err = parseGroups("nokey")
	require.Error(t, err)
}

func TestBuildReportErrors(t *testing.T) {
	defaults := func(string) string { return "" }

	_, err := buildReport(t.Context(), config{Backend: "btree"}.withEnv(defaults))
	require.ErrorContains(t, err, "unknown backend")

	_, err = buildReport(t.Context(), config{Pairs: "a"}.withEnv(defaults))
	require.ErrorContains(t, err, "expected key=values")
}
