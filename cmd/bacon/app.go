package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/katalvlaran/bacon/bfs"
	"github.com/katalvlaran/bacon/builder"
	"github.com/katalvlaran/bacon/config"
	"github.com/katalvlaran/bacon/core"
	"github.com/katalvlaran/bacon/metrics"
	"github.com/katalvlaran/bacon/records"
	"github.com/katalvlaran/bacon/report"
)

var errNoData = errors.New("no data file (use --data or set data in bacon.yaml)")

// newApp assembles the CLI. stdout receives reports; stderr receives logs.
func newApp(stdout, stderr io.Writer) *cli.Command {
	return &cli.Command{
		Name:      "bacon",
		Version:   version,
		Usage:     "Shortest co-appearance chains between actors",
		Writer:    stdout,
		ErrWriter: stderr,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "config file (default: nearest bacon.yaml)",
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "appearance file (.csv or .csv.gz)",
				Sources: cli.EnvVars("BACON_DATA"),
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "debug, info, warn or error",
			},
			&cli.StringFlag{
				Name:  "metrics-file",
				Usage: "write Prometheus metrics to this file on exit",
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "goroutines used to build edges",
			},
			&cli.StringFlag{
				Name:  "strategy",
				Usage: "single or bidirectional",
			},
			&cli.BoolFlag{
				Name:  "json",
				Usage: "output results as JSON",
			},
		},
		Commands: []*cli.Command{
			pathCommand(),
			numberCommand(),
			statsCommand(),
			neighborsCommand(),
		},
	}
}

// env is the per-invocation wiring shared by every command.
type env struct {
	cfg     *config.Config
	log     *zap.Logger
	printer *report.Printer
	metrics *metrics.Metrics
}

// action wraps a command body with config loading, logging and metrics export.
func action(fn func(ctx context.Context, cmd *cli.Command, e *env) error) cli.ActionFunc {
	return func(ctx context.Context, cmd *cli.Command) error {
		e, err := setup(cmd)
		if err != nil {
			return err
		}
		defer func() { _ = e.log.Sync() }()

		runErr := fn(ctx, cmd, e)
		if e.cfg.Metrics.File != "" {
			if err := e.metrics.WriteFile(e.cfg.Metrics.File); err != nil {
				return errors.Join(runErr, err)
			}
		}

		return runErr
	}
}

// setup merges bacon.yaml with flags and builds the logger and printer.
func setup(cmd *cli.Command) (*env, error) {
	var (
		cfg *config.Config
		err error
	)
	if path := cmd.String("config"); path != "" {
		cfg, err = config.LoadFile(path)
	} else {
		cfg, _, err = config.Load(".")
	}
	if err != nil {
		return nil, err
	}

	if cmd.IsSet("data") {
		cfg.Data = cmd.String("data")
	}
	if cmd.IsSet("log-level") {
		cfg.Log.Level = cmd.String("log-level")
	}
	if cmd.IsSet("metrics-file") {
		cfg.Metrics.File = cmd.String("metrics-file")
	}
	if cmd.IsSet("workers") {
		cfg.Build.Workers = cmd.Int("workers")
	}
	if cmd.IsSet("strategy") {
		cfg.Query.Strategy = cmd.String("strategy")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.Data == "" {
		return nil, errNoData
	}

	log, err := newLogger(cfg.Log.Level, cmd.Root().ErrWriter)
	if err != nil {
		return nil, err
	}
	log = log.With(zap.String("run_id", uuid.NewString()))

	return &env{
		cfg:     cfg,
		log:     log,
		printer: report.New(cmd.Root().Writer, report.WithJSON(cmd.Bool("json"))),
		metrics: metrics.New(prometheus.NewRegistry()),
	}, nil
}

// newLogger builds a development logger writing to w at level.
func newLogger(level string, w io.Writer) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	zc := zap.NewDevelopmentConfig()
	zc.Level = zap.NewAtomicLevelAt(lvl)
	enc := zapcore.NewConsoleEncoder(zc.EncoderConfig)
	zcore := zapcore.NewCore(enc, zapcore.AddSync(w), zc.Level)

	return zap.New(zcore, zap.AddCaller()), nil
}

// loadGraph reads cfg.Data and builds the graph. beforeEdges, if set, runs
// while the cast index is still available.
func (e *env) loadGraph(ctx context.Context, beforeEdges func(*builder.Builder) error) (*core.Graph, builder.IngestStats, error) {
	src, err := records.Open(e.cfg.Data, e.cfg.CSVOptions()...)
	if err != nil {
		return nil, builder.IngestStats{}, err
	}
	defer func() { _ = src.Close() }()

	e.log.Info("reading file", zap.String("path", e.cfg.Data))
	b := builder.NewBuilder(e.cfg.BuilderOptions(e.log)...)
	st, err := b.Ingest(ctx, src)
	e.metrics.ObserveIngest(st)
	if err != nil {
		return nil, st, err
	}
	if beforeEdges != nil {
		if err := beforeEdges(b); err != nil {
			return nil, st, err
		}
	}

	start := time.Now()
	g, err := b.BuildEdges(ctx)
	if err != nil {
		return nil, st, err
	}
	e.metrics.ObserveGraph(g.Stats(), time.Since(start).Seconds())

	return g, st, nil
}

// finder wraps g with the configured query options, cache and observers.
func (e *env) finder(g *core.Graph) (*bfs.Finder, error) {
	qopts, err := e.cfg.QueryOptions()
	if err != nil {
		return nil, err
	}

	return bfs.NewFinder(g,
		bfs.WithQueryOptions(qopts...),
		bfs.WithCacheSize(e.cfg.Query.CacheSize),
		bfs.WithObserver(e.metrics),
		bfs.WithLogger(e.log),
	)
}

// queryContext applies the configured query timeout.
func (e *env) queryContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.cfg.Query.Timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, e.cfg.Query.Timeout)
}
