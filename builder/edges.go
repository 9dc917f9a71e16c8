// SPDX-License-Identifier: MIT
// Package: bacon/builder
//
// edges.go - cast-clique expansion (BuildEdges).
//
// Every movie with cast {a₁…a_k} contributes the ordered pairs aᵢ→aⱼ (i≠j),
// labeled with the movie. When a pair shares several movies the entry with the
// highest movie ordinal is kept; ordinals follow first appearance in the input,
// so "highest" is "processed last" and both directions agree on the movie.
//
// Cost: O(Σ k_m²) time, O(E) space for E directed entries.

package builder

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/bacon/core"
)

const tracerName = "github.com/katalvlaran/bacon/builder"

// BuildEdges expands the cast index into neighbor lists and freezes the graph.
//
// Implementation:
//   - Stage 1: Expand each cast into its clique, sequentially or across
//     cfg.workers goroutines (errgroup) writing into sharded accumulators.
//   - Stage 2: Install each actor's neighbor list via core.Graph.SetLinks.
//   - Stage 3: Freeze (sorts links by neighbor Key), release the cast index, seal.
//
// Errors:
//   - ErrSealed: called twice.
//   - ErrResourceExhausted: more than cfg.maxEdges directed entries.
//   - ctx.Err(): cancelled mid-expansion.
//
// Determinism:
//   - The parallel result is identical to the sequential one: the merge keeps
//     the maximum ordinal, which is order-independent.
func (b *Builder) BuildEdges(ctx context.Context) (*core.Graph, error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed {
		return nil, ErrSealed
	}

	ctx, span := otel.Tracer(tracerName).Start(ctx, "builder.BuildEdges")
	defer span.End()
	span.SetAttributes(
		attribute.Int("bacon.movies", len(b.casts)),
		attribute.Int("bacon.actors", b.g.ActorCount()),
		attribute.Int("bacon.workers", b.cfg.workers),
	)

	start := time.Now()
	b.cfg.logger.Info("building edges",
		zap.Int("movies", len(b.casts)),
		zap.Int("workers", b.cfg.workers),
	)

	var (
		rows [][]core.Link
		err  error
	)
	if b.cfg.workers > 1 {
		rows, err = b.expandParallel(ctx)
	} else {
		rows, err = b.expandSequential(ctx)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return nil, err
	}

	for id, links := range rows {
		if err = b.g.SetLinks(id, links); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, err.Error())
			return nil, fmt.Errorf("builder: install links: %w", err)
		}
	}
	b.g.Freeze()
	b.casts = nil
	b.sealed = true

	elapsed := time.Since(start)
	span.SetAttributes(attribute.Int("bacon.edges", b.g.EdgeCount()))
	b.cfg.logger.Info("edges built",
		zap.Int("edges", b.g.EdgeCount()),
		zap.Float64("seconds", elapsed.Seconds()),
	)

	return b.g, nil
}

// budget counts distinct directed entries against cfg.maxEdges.
type budget struct {
	limit int
	used  atomic.Int64
}

// take registers one new entry and reports whether the budget still holds.
func (bg *budget) take() bool {
	n := bg.used.Add(1)
	return bg.limit == 0 || n <= int64(bg.limit)
}

func (bg *budget) exhausted() error {
	return fmt.Errorf("%w: more than %d directed entries", ErrResourceExhausted, bg.limit)
}

// expandSequential walks movies in ordinal order; a later movie overwrites an
// earlier one on the same pair.
func (b *Builder) expandSequential(ctx context.Context) ([][]core.Link, error) {
	n := b.g.ActorCount()
	acc := make([]map[int]int, n)
	bg := &budget{limit: b.cfg.maxEdges}

	for m, cast := range b.casts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		for i := 0; i < len(cast); i++ {
			for j := i + 1; j < len(cast); j++ {
				u, v := cast[i], cast[j]
				if !upsert(acc, u, v, m, bg) || !upsert(acc, v, u, m, bg) {
					return nil, bg.exhausted()
				}
			}
		}
	}

	return toLinks(acc), nil
}

// upsert sets acc[from][to] = max(existing, m), charging the budget for new keys.
func upsert(acc []map[int]int, from, to, m int, bg *budget) bool {
	row := acc[from]
	if row == nil {
		row = make(map[int]int)
		acc[from] = row
	}
	old, ok := row[to]
	if !ok {
		row[to] = m
		return bg.take()
	}
	if m > old {
		row[to] = m
	}

	return true
}

// shard guards the accumulator rows of actors with id % len(shards) == index.
type shard struct {
	mu sync.Mutex
}

// expandParallel distributes movies round-robin over cfg.workers goroutines.
// Each directed write locks the shard owning the source actor's row.
func (b *Builder) expandParallel(ctx context.Context) ([][]core.Link, error) {
	n := b.g.ActorCount()
	acc := make([]map[int]int, n)
	shards := make([]shard, b.cfg.workers*shardsPerWorker)
	bg := &budget{limit: b.cfg.maxEdges}

	put := func(from, to, m int) bool {
		s := &shards[from%len(shards)]
		s.mu.Lock()
		ok := upsert(acc, from, to, m, bg)
		s.mu.Unlock()
		return ok
	}

	eg, ctx := errgroup.WithContext(ctx)
	workers := b.cfg.workers
	casts := b.casts
	for w := 0; w < workers; w++ {
		eg.Go(func() error {
			for m := w; m < len(casts); m += workers {
				if err := ctx.Err(); err != nil {
					return err
				}
				cast := casts[m]
				for i := 0; i < len(cast); i++ {
					for j := i + 1; j < len(cast); j++ {
						u, v := cast[i], cast[j]
						if !put(u, v, m) || !put(v, u, m) {
							return bg.exhausted()
						}
					}
				}
			}
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return toLinks(acc), nil
}

// toLinks flattens accumulator rows; ordering is left to core.Graph.Freeze.
func toLinks(acc []map[int]int) [][]core.Link {
	rows := make([][]core.Link, len(acc))
	for id, row := range acc {
		if len(row) == 0 {
			continue
		}
		links := make([]core.Link, 0, len(row))
		for to, m := range row {
			links = append(links, core.Link{To: to, Movie: m})
		}
		rows[id] = links
	}

	return rows
}
