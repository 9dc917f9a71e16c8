// SPDX-License-Identifier: MIT
//
// File: methods_adjacent.go
// Role: Neighborhood queries (Neighbors, SharedMovies).
// Determinism:
//   - Neighbors() follows the frozen link order (neighbor Key ascending).
//   - SharedMovies() returns titles sorted ascending.

package core

import "sort"

// Neighbors returns the co-stars of the named actor together with the movie
// retained on each link, ordered by neighbor Key.
//
// Errors:
//   - ErrEmptyName, ErrActorNotFound.
//
// Complexity: O(d).
func (g *Graph) Neighbors(name string) ([]Neighbor, error) {
	a, err := g.resolve(name)
	if err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]Neighbor, 0, len(a.links))
	for _, l := range a.links {
		out = append(out, Neighbor{Name: g.actors[l.To].Name, Movie: g.titles[l.Movie]})
	}

	return out, nil
}

// SharedMovies returns every movie both actors appeared in, sorted ascending.
// Unlike EdgeMovie, which reports the single retained movie, this lists them all.
//
// Errors:
//   - ErrEmptyName, ErrActorNotFound.
//
// Complexity: O(m_a + m_b + k log k).
func (g *Graph) SharedMovies(a, b string) ([]string, error) {
	left, err := g.Movies(a)
	if err != nil {
		return nil, err
	}
	right, err := g.Movies(b)
	if err != nil {
		return nil, err
	}

	inRight := make(map[string]struct{}, len(right))
	for _, t := range right {
		inRight[t] = struct{}{}
	}
	var out []string
	for _, t := range left {
		if _, ok := inRight[t]; ok {
			out = append(out, t)
		}
	}
	sort.Strings(out)

	return out, nil
}
