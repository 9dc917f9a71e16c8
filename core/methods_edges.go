// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Movie table, credits (actor ∈ movie) and directed link storage.
//
// Policy:
//   - Links are installed per actor with SetLinks by the builder, which owns the
//     cast-clique expansion; core only validates and stores them.
//   - Self-links are rejected; symmetry is the builder's responsibility and is
//     verified by tests, not re-checked here.
//
// Concurrency:
//   - Mutators hold mu for writing; Links() returns the live slice of a frozen graph.

package core

import (
	"fmt"
	"sort"
)

// AddMovie interns a movie title and returns its ordinal (get-or-create).
// Ordinals are dense and assigned in first-reference order.
//
// Errors:
//   - ErrEmptyTitle, ErrFrozen.
//
// Complexity: O(len(title)) amortized.
func (g *Graph) AddMovie(title string) (int, error) {
	t := Title(title)
	if t == "" {
		return 0, ErrEmptyTitle
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return 0, ErrFrozen
	}
	if m, ok := g.byName[t]; ok {
		return m, nil
	}
	m := len(g.titles)
	g.titles = append(g.titles, t)
	g.byName[t] = m

	return m, nil
}

// AddCredit records that actor id appeared in movie m.
// It reports whether the credit was new; repeated credits are no-ops.
//
// Errors:
//   - ErrActorNotFound, ErrMovieNotFound, ErrFrozen.
func (g *Graph) AddCredit(id, m int) (bool, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return false, ErrFrozen
	}
	if id < 0 || id >= len(g.actors) {
		return false, fmt.Errorf("%w: id %d", ErrActorNotFound, id)
	}
	if m < 0 || m >= len(g.titles) {
		return false, fmt.Errorf("%w: ordinal %d", ErrMovieNotFound, m)
	}

	a := g.actors[id]
	if _, dup := a.movieSet[m]; dup {
		return false, nil
	}
	a.movieSet[m] = struct{}{}

	return true, nil
}

// SetLinks replaces the neighbor list of actor id.
//
// Implementation:
//   - Stage 1: Validate the actor, every target and every movie ordinal.
//   - Stage 2: Reject self-links (ErrSelfLink).
//   - Stage 3: Store a private copy; ordering is fixed later by Freeze.
//
// Errors:
//   - ErrActorNotFound, ErrMovieNotFound, ErrSelfLink, ErrFrozen.
//
// Complexity: O(d) for d links.
func (g *Graph) SetLinks(id int, links []Link) error {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return ErrFrozen
	}
	if id < 0 || id >= len(g.actors) {
		return fmt.Errorf("%w: id %d", ErrActorNotFound, id)
	}
	for _, l := range links {
		if l.To == id {
			return fmt.Errorf("%w: %q", ErrSelfLink, g.actors[id].Name)
		}
		if l.To < 0 || l.To >= len(g.actors) {
			return fmt.Errorf("%w: id %d", ErrActorNotFound, l.To)
		}
		if l.Movie < 0 || l.Movie >= len(g.titles) {
			return fmt.Errorf("%w: ordinal %d", ErrMovieNotFound, l.Movie)
		}
	}

	own := make([]Link, len(links))
	copy(own, links)
	g.actors[id].links = own

	return nil
}

// Links returns the neighbor list of actor id, sorted by neighbor Key.
//
// The returned slice is the graph's own storage: treat it as read-only.
// It is only stable once the graph is frozen.
//
// Complexity: O(1).
func (g *Graph) Links(id int) []Link {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.actors) {
		return nil
	}

	return g.actors[id].links
}

// MovieTitle returns the title for a movie ordinal, or "" if out of range.
func (g *Graph) MovieTitle(m int) string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if m < 0 || m >= len(g.titles) {
		return ""
	}

	return g.titles[m]
}

// MovieOrdinal returns the ordinal of an interned title without creating it.
func (g *Graph) MovieOrdinal(title string) (int, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	m, ok := g.byName[Title(title)]
	return m, ok
}

// MovieCount returns the number of distinct movie titles. O(1).
func (g *Graph) MovieCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.titles)
}

// EdgeCount returns the number of directed neighbor entries.
// Each undirected co-appearance contributes two. Valid after Freeze.
func (g *Graph) EdgeCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.edges
}

// EdgeMovie returns the movie retained on the edge a → b. Valid after Freeze.
//
// Complexity: O(log d) via binary search over a's sorted links.
func (g *Graph) EdgeMovie(a, b string) (string, bool) {
	from, ok := g.Actor(a)
	if !ok {
		return "", false
	}
	to, ok := g.Actor(b)
	if !ok {
		return "", false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	links := from.links
	i := sort.Search(len(links), func(i int) bool {
		return g.actors[links[i].To].Key >= to.Key
	})
	if i < len(links) && links[i].To == to.ID {
		return g.titles[links[i].Movie], true
	}

	return "", false
}

// HasEdge reports whether a and b co-appeared in at least one movie.
func (g *Graph) HasEdge(a, b string) bool {
	_, ok := g.EdgeMovie(a, b)
	return ok
}
