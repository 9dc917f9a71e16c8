// Package bfs finds shortest co-appearance chains between two actors of a
// frozen core.Graph and reconstructs the movie justifying each hop.
package bfs

import (
	"fmt"

	"github.com/katalvlaran/bacon/core"
)

// step is the per-query predecessor record of a reached vertex.
type step struct {
	depth int
	prev  int // core.NoActor for the root
	movie int
}

// query carries the resolved endpoints and options of one search.
// All maps are allocated per call; nothing is stored on the graph.
type query struct {
	g        *core.Graph
	opts     Options
	src, dst *core.Actor
	visited  int
}

// ShortestPath returns a shortest chain of co-appearances from source to target.
//
// Implementation:
//   - Stage 1: Validate the graph, options and names.
//   - Stage 2: Resolve both names with core.Key; a name absent from the graph
//     behaves as an isolated vertex that is never inserted into g.
//   - Stage 3: Run the selected Strategy on fresh per-query state.
//   - Stage 4: Walk predecessors back and emit Hops in source→target order.
//
// Behavior highlights:
//   - Same actor (equal keys): Found, Hops 0, empty Path.
//   - Unreachable or unknown target: Found false, Hops -1. Not an error.
//
// Errors:
//   - ErrGraphNil, ErrEmptyName, ErrOptionViolation, ErrSearchLimit,
//     ctx.Err(), wrapped OnVisit errors.
//
// Complexity:
//   - Time O(V + E) worst case, Space O(V) per query.
//
// Determinism:
//   - Links are sorted by neighbor key, so the returned path is reproducible.
func ShortestPath(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	srcKey, dstKey := core.Key(source), core.Key(target)
	if srcKey == "" || dstKey == "" {
		return nil, fmt.Errorf("%w: source=%q target=%q", ErrEmptyName, source, target)
	}
	if err := o.Ctx.Err(); err != nil {
		return nil, err
	}

	res := &Result{
		Source: core.DisplayName(source),
		Target: core.DisplayName(target),
		Hops:   -1,
		Path:   []Hop{},
	}
	src, srcOK := g.Actor(source)
	if srcOK {
		res.Source = src.Name
	}
	dst, dstOK := g.Actor(target)
	if dstOK {
		res.Target = dst.Name
	}

	if srcKey == dstKey {
		if err := o.OnVisit(res.Source, 0); err != nil {
			return nil, fmt.Errorf("bfs: OnVisit error at %q: %w", res.Source, err)
		}
		res.Found, res.Hops, res.Visited = true, 0, 1
		return res, nil
	}
	if !srcOK || !dstOK {
		// An isolated endpoint reaches only itself.
		return res, nil
	}

	q := &query{g: g, opts: o, src: src, dst: dst}
	var (
		path []Hop
		err  error
	)
	switch o.Strategy {
	case Bidirectional:
		path, err = q.bidirectional()
	default:
		path, err = q.single()
	}
	res.Visited = q.visited
	if err != nil {
		return nil, err
	}
	if path != nil {
		res.Found, res.Hops, res.Path = true, len(path), path
	}

	return res, nil
}

// expand charges one visit against MaxVisited, runs OnVisit and checks ctx.
func (q *query) expand(id, depth int) error {
	if err := q.opts.Ctx.Err(); err != nil {
		return err
	}
	q.visited++
	if q.opts.MaxVisited > 0 && q.visited > q.opts.MaxVisited {
		return fmt.Errorf("%w: %d vertices (limit %d)", ErrSearchLimit, q.visited, q.opts.MaxVisited)
	}
	a, _ := q.g.ActorByID(id)
	if err := q.opts.OnVisit(a.Name, depth); err != nil {
		return fmt.Errorf("bfs: OnVisit error at %q: %w", a.Name, err)
	}

	return nil
}

// single is the classic single-frontier BFS: the target is reached when it
// is dequeued; neighbors are enqueued in sorted-key order.
func (q *query) single() ([]Hop, error) {
	seen := map[int]step{q.src.ID: {depth: 0, prev: core.NoActor}}
	queue := []int{q.src.ID}

	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		d := seen[u].depth

		if err := q.expand(u, d); err != nil {
			return nil, err
		}
		if u == q.dst.ID {
			return q.chain(func(id int) step { return seen[id] }, u), nil
		}
		if q.opts.MaxDepth > 0 && d >= q.opts.MaxDepth {
			continue
		}
		for _, l := range q.g.Links(u) {
			if _, ok := seen[l.To]; ok {
				continue
			}
			seen[l.To] = step{depth: d + 1, prev: u, movie: l.Movie}
			queue = append(queue, l.To)
		}
	}

	return nil, nil
}

// chain walks predecessors from v back to the root and returns the hops in
// root→v order.
func (q *query) chain(at func(id int) step, v int) []Hop {
	var rev []Hop
	for cur := v; ; {
		st := at(cur)
		if st.prev == core.NoActor {
			break
		}
		rev = append(rev, q.hop(st.prev, cur, st.movie))
		cur = st.prev
	}
	out := make([]Hop, 0, len(rev))
	for i := len(rev) - 1; i >= 0; i-- {
		out = append(out, rev[i])
	}

	return out
}

// hop resolves IDs and a movie ordinal into a Hop.
func (q *query) hop(from, to, movie int) Hop {
	a, _ := q.g.ActorByID(from)
	b, _ := q.g.ActorByID(to)

	return Hop{From: a.Name, To: b.Name, Movie: q.g.MovieTitle(movie)}
}
