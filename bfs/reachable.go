package bfs

import (
	"fmt"

	"github.com/katalvlaran/bacon/core"
)

// Reachable returns the size of name's connected component: the number of
// actors reachable from it, itself included. An actor absent from the graph
// counts as an isolated vertex (1).
//
// Options: WithContext, WithMaxDepth (count only actors within d hops),
// WithMaxVisited and WithOnVisit apply; WithStrategy is ignored.
//
// Errors:
//   - ErrGraphNil, ErrEmptyName, ErrOptionViolation, ErrSearchLimit,
//     ctx.Err(), wrapped OnVisit errors.
//
// Complexity: O(V + E) for the component.
func Reachable(g *core.Graph, name string, opts ...Option) (int, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return 0, o.err
	}
	if core.Key(name) == "" {
		return 0, fmt.Errorf("%w: %q", ErrEmptyName, name)
	}

	src, ok := g.Actor(name)
	if !ok {
		return 1, nil
	}

	q := &query{g: g, opts: o, src: src}
	depth := map[int]int{src.ID: 0}
	queue := []int{src.ID}
	for len(queue) > 0 {
		u := queue[0]
		queue = queue[1:]
		d := depth[u]
		if err := q.expand(u, d); err != nil {
			return 0, err
		}
		if o.MaxDepth > 0 && d >= o.MaxDepth {
			continue
		}
		for _, l := range g.Links(u) {
			if _, seen := depth[l.To]; !seen {
				depth[l.To] = d + 1
				queue = append(queue, l.To)
			}
		}
	}

	return len(depth), nil
}
