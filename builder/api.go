// SPDX-License-Identifier: MIT
// Package: bacon/builder
//
// api.go - Builder lifecycle: NewBuilder, then AddAppearance/Ingest, then BuildEdges.
//
// Lifecycle:
//   - Assembly: appearances register actors, movies and the per-movie cast index.
//   - BuildEdges: expands every cast into a clique, freezes the graph and
//     releases the cast index. The Builder is sealed afterwards.
//
// Concurrency:
//   - A Builder is safe for concurrent AddAppearance calls; Ingest and
//     BuildEdges serialize on the same mutex.

package builder

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"github.com/katalvlaran/bacon/core"
	"github.com/katalvlaran/bacon/records"
)

// Builder accumulates appearance records and produces a frozen *core.Graph.
type Builder struct {
	mu  sync.Mutex
	cfg builderConfig
	g   *core.Graph

	// casts[m] lists actor IDs credited in movie ordinal m, in first-credit order.
	// Released (set to nil) by BuildEdges.
	casts  [][]int
	sealed bool
}

// NewBuilder returns an empty Builder configured by opts.
// Option constructors validate eagerly, so NewBuilder itself cannot fail.
func NewBuilder(opts ...BuilderOption) *Builder {
	return &Builder{
		cfg: newBuilderConfig(opts...),
		g:   core.NewGraph(),
	}
}

// AddAppearance records that actor appeared in movie.
//
// Behavior highlights:
//   - Idempotent: the same (actor, movie) pair twice is a no-op the second time.
//   - The actor is created on first mention under the core.Key identity policy;
//     its display name is the first spelling seen.
//
// Errors:
//   - ErrMalformedRecord: actor or movie is blank; nothing changes.
//   - ErrSealed: BuildEdges already ran.
func (b *Builder) AddAppearance(actor, movie string) error {
	_, err := b.add(actor, movie)
	return err
}

// add is AddAppearance reporting whether the credit was new.
func (b *Builder) add(actor, movie string) (bool, error) {
	if strings.TrimSpace(actor) == "" || strings.TrimSpace(movie) == "" {
		return false, fmt.Errorf("%w: actor=%q movie=%q", ErrMalformedRecord, actor, movie)
	}

	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed {
		return false, ErrSealed
	}

	a, err := b.g.AddActor(actor)
	if err != nil {
		return false, fmt.Errorf("%w: actor %q: %v", ErrMalformedRecord, actor, err)
	}
	m, err := b.g.AddMovie(movie)
	if err != nil {
		return false, fmt.Errorf("%w: movie %q: %v", ErrMalformedRecord, movie, err)
	}
	fresh, err := b.g.AddCredit(a.ID, m)
	if err != nil {
		return false, fmt.Errorf("builder: credit %q in %q: %w", actor, movie, err)
	}
	if !fresh {
		return false, nil
	}

	for len(b.casts) <= m {
		b.casts = append(b.casts, nil)
	}
	b.casts[m] = append(b.casts[m], a.ID)

	return true, nil
}

// Cast returns the display names credited in movie, in first-credit order.
// It reports false for an unknown title or once BuildEdges released the index.
func (b *Builder) Cast(movie string) ([]string, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.sealed {
		return nil, false
	}
	m, ok := b.g.MovieOrdinal(movie)
	if !ok || m >= len(b.casts) {
		return nil, false
	}

	ids := b.casts[m]
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if a, ok := b.g.ActorByID(id); ok {
			names = append(names, a.Name)
		}
	}

	return names, true
}

// Sealed reports whether BuildEdges has completed.
func (b *Builder) Sealed() bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	return b.sealed
}

// Build is the one-shot form: NewBuilder, Ingest(src), BuildEdges.
//
// Example:
//
//	g, _, err := builder.Build(ctx, records.FromPairs(
//		[2]string{"Kevin Bacon", "Apollo 13"},
//		[2]string{"Tom Hanks", "Apollo 13"},
//	))
func Build(ctx context.Context, src records.Source, opts ...BuilderOption) (*core.Graph, IngestStats, error) {
	b := NewBuilder(opts...)

	st, err := b.Ingest(ctx, src)
	if err != nil {
		return nil, st, err
	}
	g, err := b.BuildEdges(ctx)
	if err != nil {
		return nil, st, err
	}

	return g, st, nil
}
