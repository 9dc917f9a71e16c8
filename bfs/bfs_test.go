package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bacon/bfs"
	"github.com/katalvlaran/bacon/core"
)

var strategies = []bfs.Strategy{bfs.Single, bfs.Bidirectional}

// TestShortestPath_Errors verifies that invalid inputs and options are rejected.
func TestShortestPath_Errors(t *testing.T) {
	g := chainGraph(t)

	_, err := bfs.ShortestPath(nil, "A", "B")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)

	for _, names := range [][2]string{{"", "A"}, {"A", "  "}, {"\t", ""}} {
		_, err = bfs.ShortestPath(g, names[0], names[1])
		assert.ErrorIs(t, err, bfs.ErrEmptyName, "%q", names)
	}

	bad := []bfs.Option{
		bfs.WithMaxDepth(-1),
		bfs.WithMaxVisited(-5),
		bfs.WithStrategy(bfs.Strategy(42)),
	}
	for _, opt := range bad {
		_, err = bfs.ShortestPath(g, "A", "B", opt)
		assert.ErrorIs(t, err, bfs.ErrOptionViolation)
	}

	_, err = bfs.ParseStrategy("sideways")
	assert.ErrorIs(t, err, bfs.ErrOptionViolation)
}

// TestShortestPath_Chain covers the A–B–C chain with both strategies.
func TestShortestPath_Chain(t *testing.T) {
	g := chainGraph(t)

	for _, s := range strategies {
		t.Run(s.String(), func(t *testing.T) {
			res, err := bfs.ShortestPath(g, "A", "C", bfs.WithStrategy(s))
			require.NoError(t, err)

			want := &bfs.Result{
				Source: "A", Target: "C", Found: true, Hops: 2,
				Path: []bfs.Hop{
					{From: "A", To: "B", Movie: "M1"},
					{From: "B", To: "C", Movie: "M2"},
				},
			}
			if diff := cmp.Diff(want, res, cmpIgnoreVisited); diff != "" {
				t.Errorf("result mismatch (-want +got):\n%s", diff)
			}
			assert.Equal(t, []string{"A", "B", "C"}, res.Actors())

			back, err := bfs.ShortestPath(g, "c", "a", bfs.WithStrategy(s))
			require.NoError(t, err)
			assert.Equal(t, 2, back.Hops)
			assert.Equal(t, []string{"C", "B", "A"}, back.Actors())
		})
	}
}

func TestShortestPath_SameActor(t *testing.T) {
	g := chainGraph(t)

	for _, s := range strategies {
		res, err := bfs.ShortestPath(g, "B", " b ", bfs.WithStrategy(s))
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.Zero(t, res.Hops)
		assert.Empty(t, res.Path)
		assert.NotNil(t, res.Path)
		assert.Equal(t, []string{"B"}, res.Actors())
	}
}

func TestShortestPath_NotConnected(t *testing.T) {
	g := chainGraph(t)
	before := g.Stats()

	cases := []struct{ a, b string }{
		{"A", "Z"},
		{"Z", "C"},
		{"A", "Nobody"},
		{"Nobody", "A"},
		{"Nobody", "Somebody"},
	}
	for _, s := range strategies {
		for _, c := range cases {
			res, err := bfs.ShortestPath(g, c.a, c.b, bfs.WithStrategy(s))
			require.NoError(t, err, "%s→%s", c.a, c.b)
			assert.False(t, res.Found, "%s→%s", c.a, c.b)
			assert.Equal(t, -1, res.Hops)
			assert.Empty(t, res.Path)
			assert.Nil(t, res.Actors())
		}
	}

	// An unknown name still reaches itself.
	res, err := bfs.ShortestPath(g, "Nobody", "NOBODY")
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "Nobody", res.Source)

	assert.Equal(t, before, g.Stats(), "queries must not mutate the graph")
	assert.False(t, g.HasActor("Nobody"))
}

// TestShortestPath_MatchesReference checks optimality, path validity and
// symmetry against an independent BFS on random graphs.
func TestShortestPath_MatchesReference(t *testing.T) {
	t.Parallel()

	for _, seed := range []uint64{3, 5, 8} {
		g := randomGraph(t, seed, 45, 40, 4)
		actors := g.Actors()

		for _, a := range actors {
			ref := distancesFrom(t, g, a.Name)
			for _, b := range actors {
				want, reachable := ref[b.Key]
				for _, s := range strategies {
					res, err := bfs.ShortestPath(g, a.Name, b.Name, bfs.WithStrategy(s))
					require.NoError(t, err)

					if !reachable {
						require.False(t, res.Found, "seed=%d %s %s→%s", seed, s, a.Name, b.Name)
						continue
					}
					require.True(t, res.Found, "seed=%d %s %s→%s", seed, s, a.Name, b.Name)
					require.Equal(t, want, res.Hops, "seed=%d %s %s→%s", seed, s, a.Name, b.Name)
					checkPath(t, g, res)
				}
			}
		}
	}
}

// checkPath asserts the hops form a contiguous chain over real links.
func checkPath(t *testing.T, g *core.Graph, res *bfs.Result) {
	t.Helper()
	require.Len(t, res.Path, res.Hops)
	cur := res.Source
	for _, h := range res.Path {
		require.Equal(t, cur, h.From)
		mv, ok := g.EdgeMovie(h.From, h.To)
		require.True(t, ok, "%s→%s is not a link", h.From, h.To)
		require.Equal(t, mv, h.Movie)

		shared, err := g.SharedMovies(h.From, h.To)
		require.NoError(t, err)
		require.Contains(t, shared, h.Movie)
		cur = h.To
	}
	require.Equal(t, res.Target, cur)
}

// TestShortestPath_BidirectionalTieBreak picks the smaller meeting key among
// equally short routes.
func TestShortestPath_BidirectionalTieBreak(t *testing.T) {
	g := graphOf(t,
		[2]string{"S", "Left"}, [2]string{"Xb", "Left"},
		[2]string{"S", "Right"}, [2]string{"Xa", "Right"},
		[2]string{"Xa", "End A"}, [2]string{"T", "End A"},
		[2]string{"Xb", "End B"}, [2]string{"T", "End B"},
	)

	for _, s := range strategies {
		res, err := bfs.ShortestPath(g, "S", "T", bfs.WithStrategy(s))
		require.NoError(t, err)
		assert.Equal(t, []string{"S", "Xa", "T"}, res.Actors(), s.String())
	}
}

func TestShortestPath_RepeatedQueriesIndependent(t *testing.T) {
	g := randomGraph(t, 13, 30, 30, 4)
	actors := g.Actors()
	a, b := actors[0].Name, actors[len(actors)-1].Name

	first, err := bfs.ShortestPath(g, a, b)
	require.NoError(t, err)
	for _, other := range actors {
		_, err = bfs.ShortestPath(g, other.Name, a, bfs.WithStrategy(bfs.Bidirectional))
		require.NoError(t, err)
	}
	again, err := bfs.ShortestPath(g, a, b)
	require.NoError(t, err)

	assert.Equal(t, first, again)
}

func TestShortestPath_MaxDepth(t *testing.T) {
	g := chainGraph(t)

	for _, s := range strategies {
		res, err := bfs.ShortestPath(g, "A", "C", bfs.WithStrategy(s), bfs.WithMaxDepth(1))
		require.NoError(t, err)
		assert.False(t, res.Found, s.String())

		res, err = bfs.ShortestPath(g, "A", "C", bfs.WithStrategy(s), bfs.WithMaxDepth(2))
		require.NoError(t, err)
		assert.Equal(t, 2, res.Hops, s.String())
	}
}

func TestShortestPath_MaxVisited(t *testing.T) {
	g := chainGraph(t)

	for _, s := range strategies {
		_, err := bfs.ShortestPath(g, "A", "C", bfs.WithStrategy(s), bfs.WithMaxVisited(1))
		assert.ErrorIs(t, err, bfs.ErrSearchLimit, s.String())

		res, err := bfs.ShortestPath(g, "A", "C", bfs.WithStrategy(s), bfs.WithMaxVisited(3))
		require.NoError(t, err)
		assert.True(t, res.Found)
		assert.LessOrEqual(t, res.Visited, 3)
	}
}

func TestShortestPath_OnVisit(t *testing.T) {
	g := chainGraph(t)

	var order []string
	res, err := bfs.ShortestPath(g, "A", "C", bfs.WithOnVisit(func(name string, depth int) error {
		order = append(order, name)
		return nil
	}))
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C"}, order)
	assert.Equal(t, 3, res.Visited)

	stop := errors.New("stop here")
	_, err = bfs.ShortestPath(g, "A", "C", bfs.WithOnVisit(func(name string, _ int) error {
		if name == "B" {
			return stop
		}
		return nil
	}))
	assert.ErrorIs(t, err, stop)
}

func TestShortestPath_ContextCancelled(t *testing.T) {
	g := chainGraph(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for _, s := range strategies {
		_, err := bfs.ShortestPath(g, "A", "C", bfs.WithContext(ctx), bfs.WithStrategy(s))
		assert.ErrorIs(t, err, context.Canceled)
	}
}

func TestReachable(t *testing.T) {
	g := chainGraph(t)

	cases := []struct {
		name string
		opts []bfs.Option
		want int
	}{
		{"A", nil, 3},
		{"c", nil, 3},
		{"Z", nil, 1},
		{"Nobody", nil, 1},
		{"A", []bfs.Option{bfs.WithMaxDepth(1)}, 2},
	}
	for _, c := range cases {
		n, err := bfs.Reachable(g, c.name, c.opts...)
		require.NoError(t, err)
		assert.Equal(t, c.want, n, c.name)
	}

	_, err := bfs.Reachable(nil, "A")
	assert.ErrorIs(t, err, bfs.ErrGraphNil)
	_, err = bfs.Reachable(g, " ")
	assert.ErrorIs(t, err, bfs.ErrEmptyName)
}

var cmpIgnoreVisited = cmp.FilterPath(func(p cmp.Path) bool {
	return p.Last().String() == ".Visited"
}, cmp.Ignore())
