package bfs_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bacon/builder"
	"github.com/katalvlaran/bacon/core"
	"github.com/katalvlaran/bacon/records"
)

// graphOf builds a frozen graph from literal (actor, movie) pairs.
func graphOf(tb testing.TB, pairs ...[2]string) *core.Graph {
	tb.Helper()
	g, _, err := builder.Build(context.Background(), records.FromPairs(pairs...))
	require.NoError(tb, err)
	return g
}

// chainGraph is A–B (M1), B–C (M2) and the isolated Z (M3).
func chainGraph(tb testing.TB) *core.Graph {
	return graphOf(tb,
		[2]string{"A", "M1"}, [2]string{"B", "M1"},
		[2]string{"B", "M2"}, [2]string{"C", "M2"},
		[2]string{"Z", "M3"},
	)
}

// randomGraph draws a reproducible sparse graph with several components.
func randomGraph(tb testing.TB, seed uint64, actors, movies, maxCast int) *core.Graph {
	tb.Helper()
	r := rand.New(rand.NewPCG(seed, seed+1))
	var pairs [][2]string
	for m := 0; m < movies; m++ {
		k := 1 + r.IntN(maxCast)
		for i := 0; i < k; i++ {
			pairs = append(pairs, [2]string{fmt.Sprintf("actor-%03d", r.IntN(actors)), fmt.Sprintf("movie-%03d", m)})
		}
	}
	return graphOf(tb, pairs...)
}

// distancesFrom is an independent reference BFS over the public read API.
func distancesFrom(tb testing.TB, g *core.Graph, src string) map[string]int {
	tb.Helper()
	start, ok := g.Actor(src)
	require.True(tb, ok)

	dist := map[string]int{start.Key: 0}
	queue := []string{start.Name}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		nb, err := g.Neighbors(u)
		require.NoError(tb, err)
		for _, n := range nb {
			k := core.Key(n.Name)
			if _, seen := dist[k]; !seen {
				dist[k] = dist[core.Key(u)] + 1
				queue = append(queue, n.Name)
			}
		}
	}
	return dist
}
