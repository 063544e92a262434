package main

import "cmp"

const (
	envSets     = "COLLECTIONS_SETS"
	envPairs    = "COLLECTIONS_PAIRS"
	envBackend  = "COLLECTIONS_BACKEND"
	envLogLevel = "COLLECTIONS_LOG_LEVEL"
)

const (
	backendSet    = "set"
	backendMapset = "mapset"
)

type config struct {
	Sets     string
	Pairs    string
	Backend  string
	LogLevel string
}

// withEnv fills in anything not set by flags from the environment, then from defaults.
func (c config) withEnv(getenv func(string) string) config {
	c.Sets = cmp.Or(c.Sets, getenv(envSets), "1,2,3;4,5;6,7;3,4;7,8")
	c.Pairs = cmp.Or(c.Pairs, getenv(envPairs), "odd=1,3;even=2;odd=5;even=4,6")
	c.Backend = cmp.Or(c.Backend, getenv(envBackend), backendSet)
	c.LogLevel = cmp.Or(c.LogLevel, getenv(envLogLevel), "info")
	return c
}
