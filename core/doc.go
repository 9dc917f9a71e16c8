// Package core provides the in-memory actor co-appearance graph: one vertex per
// distinct actor, one directed link per ordered pair of actors who appeared in
// the same movie, labeled with the movie that justifies it.
//
// The Graph G = (V, E) has a two-phase lifecycle:
//
//   - Assembly: AddActor / AddMovie / AddCredit register appearances and
//     SetLinks installs neighbor lists. The builder package drives this phase.
//   - Frozen: Freeze sorts every neighbor list by neighbor Key, drops
//     assembly-only state and rejects further mutation with ErrFrozen.
//     A frozen graph is safe for any number of concurrent readers.
//
// Identity policy:
//
//	Actor names are matched case-insensitively through Key (whitespace
//	collapsed, Unicode case-folded). The first spelling seen is kept as
//	Actor.Name for display. Movie titles are matched exactly after trimming.
//
// Invariants (after Freeze):
//
//   - One Actor per Key for the lifetime of the graph.
//   - Link a → b exists iff a and b share at least one movie, and then
//     b → a exists with the same movie.
//   - No actor links to itself.
//
// Search state is deliberately absent from Actor: shortest-path searches keep
// their distances and predecessors in per-query maps (see package bfs), so the
// graph carries no history between queries.
//
// Core Methods:
//
//	// Assembly
//	AddActor(name string) (*Actor, error)      // O(1) amortized, get-or-create
//	AddMovie(title string) (int, error)        // O(1) amortized, get-or-create
//	AddCredit(id, movie int) (bool, error)     // O(1)
//	SetLinks(id int, links []Link) error       // O(d)
//	Freeze()                                   // O(Σ d log d)
//
//	// Query
//	Actor(name string) (*Actor, bool)          // O(1)
//	Links(id int) []Link                       // O(1), live slice
//	Neighbors(name string) ([]Neighbor, error) // O(d)
//	EdgeMovie(a, b string) (string, bool)      // O(log d)
//	Movies(name string) ([]string, error)      // O(m log m)
//	SharedMovies(a, b string) ([]string, error)
//	Stats() GraphStats                         // O(V)
//
// Errors:
//
//	ErrEmptyName      – blank actor name
//	ErrEmptyTitle     – blank movie title
//	ErrActorNotFound  – unknown actor
//	ErrMovieNotFound  – unknown movie ordinal
//	ErrSelfLink       – link from an actor to itself
//	ErrFrozen         – mutation after Freeze
package core
