// SPDX-License-Identifier: MIT

// Package builder turns (actor, movie) appearance records into a frozen
// co-appearance graph (*core.Graph).
//
// What:
//
//	Two actors are neighbors iff they appear in at least one common movie.
//	Each neighbor entry carries one connecting movie; when several are shared,
//	the movie whose first record came latest in the input is kept.
//
// How:
//
//	b := builder.NewBuilder(builder.WithWorkers(4), builder.WithLogger(log))
//	stats, err := b.Ingest(ctx, src)    // AddAppearance per record; skips malformed
//	g, err := b.BuildEdges(ctx)         // cast cliques → links → Freeze
//
// Build phases:
//
//  1. Assembly. Actors are identified by core.Key (case-insensitive, whitespace
//     collapsed); the display name is the first spelling seen. Every movie keeps
//     a cast index (actor IDs in first-credit order) for the expansion.
//  2. Expansion. A cast of size k yields k·(k−1) directed entries. The expansion
//     runs on one goroutine or on WithWorkers(n) goroutines over sharded
//     accumulators; both produce the same graph.
//  3. Freeze. Links are sorted by neighbor Key, the cast index is dropped and the
//     Builder is sealed: further appearances fail with ErrSealed.
//
// Errors:
//
//   - ErrMalformedRecord : blank actor or movie (skipped by Ingest).
//   - ErrSealed          : mutation after BuildEdges.
//   - ErrResourceExhausted: WithMaxEdges budget exceeded.
//   - ErrTooManyMalformed: WithMaxMalformed budget exceeded.
//
// Complexity:
//
//	Ingest O(R) for R records. BuildEdges O(Σ k_m²) time; memory O(V + E).
package builder
