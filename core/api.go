// SPDX-License-Identifier: MIT
//
// File: api.go
// Role: Freeze (assembly → read-only transition) and the Stats snapshot.
// Policy:
//   - Freeze is the only place that orders links and drops assembly-only state.
//   - After Freeze every mutator returns ErrFrozen.

package core

import "sort"

// GraphStats is a point-in-time summary of a Graph.
type GraphStats struct {
	Actors    int  `json:"actors"`
	Movies    int  `json:"movies"`
	Edges     int  `json:"edges"`      // directed neighbor entries
	Credits   int  `json:"credits"`    // distinct (actor, movie) pairs
	Isolated  int  `json:"isolated"`   // actors with no co-stars
	MaxDegree int  `json:"max_degree"` // largest co-star count
	Frozen    bool `json:"frozen"`
}

// Freeze finalizes the graph.
//
// Implementation:
//   - Stage 1: For every actor, move the movie set into a sorted slice.
//   - Stage 2: Sort each link list by neighbor Key so iteration and binary
//     search are deterministic.
//   - Stage 3: Count directed links and mark the graph frozen.
//
// Behavior highlights:
//   - Idempotent: freezing a frozen graph is a no-op.
//
// Complexity:
//   - Time O(Σ d log d + Σ m log m), Space O(1) extra.
func (g *Graph) Freeze() {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return
	}

	edges := 0
	for _, a := range g.actors {
		movies := make([]int, 0, len(a.movieSet))
		for m := range a.movieSet {
			movies = append(movies, m)
		}
		sort.Ints(movies)
		a.movies = movies
		a.movieSet = nil

		links := a.links
		sort.Slice(links, func(i, j int) bool {
			return g.actors[links[i].To].Key < g.actors[links[j].To].Key
		})
		edges += len(links)
	}
	g.edges = edges
	g.frozen = true
}

// Frozen reports whether Freeze has been called.
func (g *Graph) Frozen() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.frozen
}

// Stats returns a snapshot of graph-wide counters.
// Complexity: O(V).
func (g *Graph) Stats() GraphStats {
	g.mu.RLock()
	defer g.mu.RUnlock()

	s := GraphStats{
		Actors: len(g.actors),
		Movies: len(g.titles),
		Frozen: g.frozen,
	}
	for _, a := range g.actors {
		d := len(a.links)
		s.Edges += d
		s.Credits += len(a.movies) + len(a.movieSet)
		if d == 0 {
			s.Isolated++
		}
		if d > s.MaxDegree {
			s.MaxDegree = d
		}
	}

	return s
}
