package bfs

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"
	"time"

	"github.com/google/uuid"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"golang.org/x/sync/singleflight"

	"github.com/katalvlaran/bacon/core"
)

const tracerName = "github.com/katalvlaran/bacon/bfs"

// Outcome classifies a finished query for observers.
type Outcome string

// Query outcomes.
const (
	OutcomeFound    Outcome = "found"
	OutcomeNotFound Outcome = "not_found"
	OutcomeLimit    Outcome = "limit"
	OutcomeError    Outcome = "error"
)

// QueryEvent describes one Finder.Find call.
type QueryEvent struct {
	Outcome  Outcome
	Strategy Strategy
	Duration time.Duration
	Visited  int
	Hops     int
	Cached   bool
}

// Observer receives one event per Finder query. Implementations must be safe
// for concurrent use.
type Observer interface {
	ObserveQuery(QueryEvent)
}

// FinderOption customizes a Finder. Constructors panic on meaningless values.
type FinderOption func(*finderConfig)

type finderConfig struct {
	cacheSize int
	observer  Observer
	logger    *zap.Logger
	query     []Option
}

// WithCacheSize keeps up to n results in an LRU cache. 0 disables caching.
func WithCacheSize(n int) FinderOption {
	if n < 0 {
		panic(fmt.Sprintf("bfs: WithCacheSize(%d)", n))
	}
	return func(c *finderConfig) { c.cacheSize = n }
}

// WithObserver reports every query to o.
func WithObserver(o Observer) FinderOption {
	if o == nil {
		panic("bfs: WithObserver(nil)")
	}
	return func(c *finderConfig) { c.observer = o }
}

// WithLogger logs every query at debug level to l.
func WithLogger(l *zap.Logger) FinderOption {
	if l == nil {
		panic("bfs: WithLogger(nil)")
	}
	return func(c *finderConfig) { c.logger = l }
}

// WithQueryOptions applies opts to every search. WithContext is overridden
// by the context passed to Find.
func WithQueryOptions(opts ...Option) FinderOption {
	return func(c *finderConfig) { c.query = append(c.query, opts...) }
}

// Finder answers shortest-path queries against one frozen graph.
// It is safe for concurrent use.
type Finder struct {
	g        *core.Graph
	cfg      finderConfig
	strategy Strategy
	cache    *lru[string, *Result]
	flight   singleflight.Group
}

// NewFinder validates the query options and returns a Finder over g.
//
// Errors:
//   - ErrGraphNil, ErrOptionViolation.
func NewFinder(g *core.Graph, opts ...FinderOption) (*Finder, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := finderConfig{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	probe := DefaultOptions()
	for _, opt := range cfg.query {
		opt(&probe)
	}
	if probe.err != nil {
		return nil, probe.err
	}

	f := &Finder{g: g, cfg: cfg, strategy: probe.Strategy}
	if cfg.cacheSize > 0 {
		f.cache = newLRU[string, *Result](cfg.cacheSize)
	}

	return f, nil
}

// Graph returns the graph the Finder searches.
func (f *Finder) Graph() *core.Graph { return f.g }

// Find returns the shortest path from a to b.
//
// Identical queries in flight at the same time share one search. When that
// search fails because the caller that started it was cancelled, every other
// caller whose own context is still live searches again under it. Successful
// results are cached by name key. Every call returns its own copy of the
// Result, with Source and Target spelled as this caller would see them from
// ShortestPath.
func (f *Finder) Find(ctx context.Context, a, b string) (*Result, error) {
	start := time.Now()
	id := uuid.NewString()
	ctx, span := otel.Tracer(tracerName).Start(ctx, "bfs.Find", trace.WithAttributes(
		attribute.String("bacon.query_id", id),
		attribute.String("bacon.source", a),
		attribute.String("bacon.target", b),
		attribute.String("bacon.strategy", f.strategy.String()),
	))
	defer span.End()

	key := core.Key(a) + "\x1f" + core.Key(b)
	if f.cache != nil {
		if res, ok := f.cache.Get(key); ok {
			span.SetAttributes(attribute.Bool("bacon.cache_hit", true))
			f.report(QueryEvent{Outcome: outcomeOf(res, nil), Strategy: f.strategy,
				Duration: time.Since(start), Hops: res.Hops, Cached: true})
			f.cfg.logger.Debug("query cached",
				zap.String("query_id", id), zap.String("source", a), zap.String("target", b))
			return f.relabel(res, a, b), nil
		}
	}

	v, err, shared := f.flight.Do(key, func() (any, error) {
		return f.search(ctx, key, a, b)
	})
	if err != nil && shared && isContextErr(err) && ctx.Err() == nil {
		v, err = f.search(ctx, key, a, b)
		shared = false
	}
	elapsed := time.Since(start)

	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		f.report(QueryEvent{Outcome: outcomeOf(nil, err), Strategy: f.strategy, Duration: elapsed})
		f.cfg.logger.Debug("query failed",
			zap.String("query_id", id),
			zap.String("source", a), zap.String("target", b), zap.Error(err))
		return nil, err
	}

	res := v.(*Result)
	span.SetAttributes(
		attribute.Int("bacon.hops", res.Hops),
		attribute.Int("bacon.visited", res.Visited),
		attribute.Bool("bacon.shared", shared),
	)
	f.report(QueryEvent{Outcome: outcomeOf(res, nil), Strategy: f.strategy,
		Duration: elapsed, Visited: res.Visited, Hops: res.Hops})
	f.cfg.logger.Debug("query",
		zap.String("query_id", id),
		zap.String("source", res.Source),
		zap.String("target", res.Target),
		zap.Int("hops", res.Hops),
		zap.Int("visited", res.Visited),
		zap.Bool("shared", shared),
		zap.Duration("elapsed", elapsed),
	)

	return f.relabel(res, a, b), nil
}

// search runs one uncached query under ctx and caches a successful result.
func (f *Finder) search(ctx context.Context, key, a, b string) (*Result, error) {
	opts := append(slices.Clone(f.cfg.query), WithContext(ctx))
	res, err := ShortestPath(f.g, a, b, opts...)
	if err != nil {
		return nil, err
	}
	if f.cache != nil {
		f.cache.Set(key, res)
	}

	return res, nil
}

// relabel copies res and restores the caller's spelling of a and b.
// Names in the graph always read as their stored display name.
func (f *Finder) relabel(res *Result, a, b string) *Result {
	out := res.clone()
	out.Source = f.displayName(a)
	out.Target = f.displayName(b)

	return out
}

func (f *Finder) displayName(name string) string {
	if act, ok := f.g.Actor(name); ok {
		return act.Name
	}
	return core.DisplayName(name)
}

func isContextErr(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}

// Distances answers center→name for every name concurrently.
// The results are aligned with names. The first error cancels the rest.
func (f *Finder) Distances(ctx context.Context, center string, names []string) ([]*Result, error) {
	out := make([]*Result, len(names))

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))
	for i, name := range names {
		eg.Go(func() error {
			res, err := f.Find(ctx, center, name)
			if err != nil {
				return fmt.Errorf("bfs: distance %q → %q: %w", center, name, err)
			}
			out[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (f *Finder) report(ev QueryEvent) {
	if f.cfg.observer != nil {
		f.cfg.observer.ObserveQuery(ev)
	}
}

func outcomeOf(res *Result, err error) Outcome {
	switch {
	case errors.Is(err, ErrSearchLimit), errors.Is(err, context.DeadlineExceeded):
		return OutcomeLimit
	case err != nil:
		return OutcomeError
	case res.Found:
		return OutcomeFound
	default:
		return OutcomeNotFound
	}
}
