package bfs

import (
	"github.com/katalvlaran/bacon/core"
)

// side tags which search owns a reached vertex.
type side uint8

const (
	forward side = iota + 1
	backward
)

// mark is the shared visited-map entry of the bidirectional search.
// For forward vertices prev points toward the source, for backward vertices
// toward the target.
type mark struct {
	side side
	step
}

// meeting is a frontier collision: an edge fu→bv where fu is owned by the
// forward search and bv by the backward one. meet is the vertex that was
// already owned by the other side when the edge was scanned.
type meeting struct {
	fu, bv int
	movie  int
	meet   string // key of the meeting vertex
	other  string // key of the vertex being expanded
}

// less orders meetings by meeting-vertex key, then by the expanded vertex key.
func (m meeting) less(o meeting) bool {
	if m.meet != o.meet {
		return m.meet < o.meet
	}
	return m.other < o.other
}

// bidirectional grows one frontier from each endpoint over a single visited
// map tagged by side.
//
// Implementation:
//   - Always expand the whole layer of the smaller frontier (forward on ties).
//   - An edge reaching a vertex owned by the other side is a collision. Every
//     collision found while expanding one layer closes a path of the same
//     length dF+dB+1, and none shorter exists, so the layer is finished and the
//     best collision is chosen by meeting-vertex key.
//   - With MaxDepth > 0 the search stops once the next layer could only close
//     paths longer than MaxDepth.
//
// Complexity: O(V + E) worst case, typically far fewer vertices than single().
func (q *query) bidirectional() ([]Hop, error) {
	seen := map[int]mark{
		q.src.ID: {side: forward, step: step{prev: core.NoActor}},
		q.dst.ID: {side: backward, step: step{prev: core.NoActor}},
	}
	fwd, bwd := []int{q.src.ID}, []int{q.dst.ID}
	dF, dB := 0, 0

	for len(fwd) > 0 && len(bwd) > 0 {
		if q.opts.MaxDepth > 0 && dF+dB+1 > q.opts.MaxDepth {
			return nil, nil
		}

		own, frontier, depth := forward, fwd, dF
		if len(bwd) < len(fwd) {
			own, frontier, depth = backward, bwd, dB
		}

		var (
			next []int
			best *meeting
		)
		for _, x := range frontier {
			if err := q.expand(x, depth); err != nil {
				return nil, err
			}
			for _, l := range q.g.Links(x) {
				m, ok := seen[l.To]
				if !ok {
					seen[l.To] = mark{side: own, step: step{depth: depth + 1, prev: x, movie: l.Movie}}
					next = append(next, l.To)
					continue
				}
				if m.side == own {
					continue
				}
				c := q.meetingAt(x, l.To, l.Movie, own)
				if best == nil || c.less(*best) {
					best = &c
				}
			}
		}

		if best != nil {
			return q.join(seen, *best), nil
		}
		if own == forward {
			fwd, dF = next, dF+1
		} else {
			bwd, dB = next, dB+1
		}
	}

	return nil, nil
}

// meetingAt builds the collision for the scanned edge x→y, where x belongs to
// own and y to the opposite side.
func (q *query) meetingAt(x, y, movie int, own side) meeting {
	ax, _ := q.g.ActorByID(x)
	ay, _ := q.g.ActorByID(y)
	c := meeting{movie: movie, meet: ay.Key, other: ax.Key}
	if own == forward {
		c.fu, c.bv = x, y
	} else {
		c.fu, c.bv = y, x
	}

	return c
}

// join concatenates source→fu (forward predecessors), the bridging hop fu→bv
// and bv→target (backward predecessors).
func (q *query) join(seen map[int]mark, c meeting) []Hop {
	path := q.chain(func(id int) step { return seen[id].step }, c.fu)
	path = append(path, q.hop(c.fu, c.bv, c.movie))

	for cur := c.bv; ; {
		m := seen[cur]
		if m.prev == core.NoActor {
			break
		}
		path = append(path, q.hop(cur, m.prev, m.movie))
		cur = m.prev
	}

	return path
}
