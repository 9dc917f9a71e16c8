// SPDX-License-Identifier: MIT

package builder_test

import (
	"context"
	"fmt"
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bacon/builder"
	"github.com/katalvlaran/bacon/core"
	"github.com/katalvlaran/bacon/records"
)

// randomPairs draws a reproducible appearance list: movies with casts of 1..maxCast
// actors picked from a pool, so many pairs share several movies.
func randomPairs(seed uint64, actors, movies, maxCast int) [][2]string {
	r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	var out [][2]string
	for m := 0; m < movies; m++ {
		title := fmt.Sprintf("Movie %03d", m)
		k := 1 + r.IntN(maxCast)
		for i := 0; i < k; i++ {
			out = append(out, [2]string{fmt.Sprintf("Actor %03d", r.IntN(actors)), title})
		}
	}
	// Shuffle so first-appearance order differs from title order.
	r.Shuffle(len(out), func(i, j int) { out[i], out[j] = out[j], out[i] })

	return out
}

// snapshot captures every actor's neighbor list.
func snapshot(t *testing.T, g *core.Graph) map[string][]core.Neighbor {
	t.Helper()
	out := make(map[string][]core.Neighbor, g.ActorCount())
	for _, a := range g.Actors() {
		nb, err := g.Neighbors(a.Name)
		require.NoError(t, err)
		out[a.Key] = nb
	}
	return out
}

func TestBuildEdges_ParallelEqualsSequential(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{1, 7, 42} {
		pairs := randomPairs(seed, 60, 80, 8)

		seq, _, err := builder.Build(context.Background(), records.FromPairs(pairs...))
		require.NoError(t, err)
		want := snapshot(t, seq)

		for _, workers := range []int{2, 4, 9} {
			par, _, err := builder.Build(context.Background(), records.FromPairs(pairs...),
				builder.WithWorkers(workers))
			require.NoError(t, err)

			require.Equal(t, seq.Stats(), par.Stats(), "seed=%d workers=%d", seed, workers)
			if diff := cmp.Diff(want, snapshot(t, par)); diff != "" {
				t.Fatalf("seed=%d workers=%d neighbor mismatch (-seq +par):\n%s", seed, workers, diff)
			}
		}
	}
}

func TestBuildEdges_Symmetric(t *testing.T) {
	g := build(t, []builder.BuilderOption{builder.WithWorkers(3)}, randomPairs(3, 40, 50, 6)...)

	for _, a := range g.Actors() {
		nb, err := g.Neighbors(a.Name)
		require.NoError(t, err)
		for _, n := range nb {
			back, ok := g.EdgeMovie(n.Name, a.Name)
			require.True(t, ok, "%s→%s has no reverse", a.Name, n.Name)
			require.Equal(t, n.Movie, back)

			shared, err := g.SharedMovies(a.Name, n.Name)
			require.NoError(t, err)
			require.Contains(t, shared, n.Movie)
		}
	}
}
