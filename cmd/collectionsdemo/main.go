package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"runtime"

	"github.com/joho/godotenv"

	"github.com/danlock/collections/errors"
)

var (
	buildInfo = "NO INFO"
	buildTag  = "NO TAG"
)

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, os.Kill)
	defer cancel()

	// Define command line flags. Anything left unset falls back to the environment.
	var (
		dotenvLocation string
		cfg            config
	)

	flag.StringVar(&dotenvLocation, "e", "./ops/.env", "Location of .env file with environment variables in KEY=VALUE format. .env file takes precendence over real env vars.")
	flag.StringVar(&cfg.Sets, "sets", "", "Sets to merge, e.g. \"1,2,3;4,5;3,4\". Defaults to $"+envSets+".")
	flag.StringVar(&cfg.Pairs, "pairs", "", "Key/values to group, e.g. \"a=1,2;b=3;a=4\". Defaults to $"+envPairs+".")
	flag.StringVar(&cfg.Backend, "backend", "", "Set implementation used for merging: set or mapset. Defaults to $"+envBackend+".")
	flag.StringVar(&cfg.LogLevel, "log-level", "", "debug, info, warn or error. Defaults to $"+envLogLevel+".")
	flag.Parse()

	envErr := godotenv.Overload(dotenvLocation)
	cfg = cfg.withEnv(os.Getenv)

	var level slog.Level
	if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level, AddSource: true})).
		With("tag", buildTag)
	slog.SetDefault(logger)

	slog.Info("starting", "build", buildInfo, "go", runtime.Version())
	if envErr != nil {
		slog.Debug("No .env file found", "path", dotenvLocation)
	}

	if err := run(ctx, cfg, os.Stdout); err != nil {
		slog.LogAttrs(ctx, slog.LevelError, "collectionsdemo failed", errors.UnwrapMeta(err)...)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config, out io.Writer) error {
	report, err := buildReport(ctx, cfg)
	if err != nil {
		return errors.Wrap(err)
	}
	_, err = fmt.Fprint(out, report)
	return errors.Wrapf(err, "failed writing report")
}
