// SPDX-License-Identifier: MIT
// Package core_test contains test helpers for bacon/core.
//
// Purpose:
//   - Provide small, deterministic fixtures without depending on the builder.
//   - Keep test bodies free of repeated assembly boilerplate.

package core_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bacon/core"
)

// Common names used across core tests.
const (
	ActorA = "A"
	ActorB = "B"
	ActorC = "C"
	ActorZ = "Z"

	MovieM1 = "M1"
	MovieM2 = "M2"
	MovieM3 = "M3"
)

// credit is one (actor, movie) appearance.
type credit struct{ actor, movie string }

// assemble registers credits and expands cast cliques the naive way, with the
// later movie ordinal winning when two actors share several movies.
// The graph is frozen before it is returned.
func assemble(t *testing.T, credits ...credit) *core.Graph {
	t.Helper()

	g := core.NewGraph()
	casts := map[int][]int{}
	for _, c := range credits {
		a, err := g.AddActor(c.actor)
		require.NoError(t, err)
		m, err := g.AddMovie(c.movie)
		require.NoError(t, err)
		added, err := g.AddCredit(a.ID, m)
		require.NoError(t, err)
		if added {
			casts[m] = append(casts[m], a.ID)
		}
	}

	adj := map[int]map[int]int{}
	for m := 0; m < g.MovieCount(); m++ {
		for _, u := range casts[m] {
			for _, v := range casts[m] {
				if u == v {
					continue
				}
				if adj[u] == nil {
					adj[u] = map[int]int{}
				}
				adj[u][v] = m
			}
		}
	}
	for u, nbrs := range adj {
		links := make([]core.Link, 0, len(nbrs))
		for v, m := range nbrs {
			links = append(links, core.Link{To: v, Movie: m})
		}
		require.NoError(t, g.SetLinks(u, links))
	}
	g.Freeze()

	return g
}

// chainFixture is the A–B via M1, B–C via M2 scenario.
func chainFixture(t *testing.T) *core.Graph {
	t.Helper()

	return assemble(t,
		credit{ActorA, MovieM1},
		credit{ActorB, MovieM1},
		credit{ActorB, MovieM2},
		credit{ActorC, MovieM2},
	)
}
