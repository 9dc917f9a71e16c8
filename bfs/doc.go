// Package bfs answers "Bacon number" queries: the shortest chain of
// co-appearances between two actors of a frozen core.Graph, with the movie
// that justifies each hop.
//
// What
//
//   - ShortestPath(g, a, b) returns a Result with Found, Hops and an ordered
//     Path of Hop{From, To, Movie} entries.
//   - Names are resolved with core.Key (case-insensitive, whitespace
//     collapsed). An unknown name is an isolated vertex: it reaches only itself.
//   - Two strategies:
//   - Single: textbook BFS from the source; succeeds when the target is dequeued.
//   - Bidirectional: layer-by-layer from both ends, always growing the smaller
//     frontier, over one visited map tagged by side.
//   - Reachable(g, a) counts the actors in a's connected component.
//   - Finder wraps a graph for services: an LRU result cache, deduplication of
//     identical in-flight queries, OpenTelemetry spans, an Observer hook and
//     concurrent batch Distances.
//
// Determinism
//
//	Neighbor lists are sorted by neighbor key, so Single always returns the
//	same path. Bidirectional finishes the layer in which the frontiers meet and
//	picks the meeting vertex with the smallest key; both strategies always
//	agree on Hops.
//
// Per-query state
//
//	Distances and predecessors live in maps owned by one call. The graph is
//	never written, so any number of queries may run concurrently and a query
//	never observes leftovers of another.
//
// Complexity (V = actors, E = directed links)
//
//   - Time:   O(V + E) worst case for either strategy.
//   - Memory: O(V) per query.
//
// Usage
//
//	res, err := bfs.ShortestPath(g, "Tom Hanks", "Kevin Bacon",
//	    bfs.WithContext(ctx),
//	    bfs.WithStrategy(bfs.Bidirectional),
//	    bfs.WithMaxVisited(1_000_000),
//	)
//	if err != nil {
//	    // ErrGraphNil, ErrEmptyName, ErrOptionViolation, ErrSearchLimit,
//	    // ctx errors or a wrapped OnVisit error
//	}
//	if !res.Found {
//	    // not connected: res.Hops == -1
//	}
//
// Errors
//
//   - ErrGraphNil         if the graph pointer is nil.
//   - ErrEmptyName        if a name is blank.
//   - ErrOptionViolation  if an Option is invalid (negative limit, unknown strategy).
//   - ErrSearchLimit      if more than MaxVisited vertices are expanded.
//   - Wrapped user-supplied hook errors from OnVisit.
//
// "Not connected" is a normal Result, never an error.
package bfs
