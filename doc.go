// Package bacon computes "Bacon numbers": the length of the shortest chain of
// co-appearances linking two actors, with the movie that justifies each hop.
//
// The module is organized as small packages, each owning one concern:
//
//	core/     - thread-safe actor graph, name identity and the read API
//	records/  - appearance sources (CSV, gzip CSV, in-memory pairs)
//	builder/  - ingest records, then expand casts into movie-labeled links
//	bfs/      - single and bidirectional shortest paths, Finder with cache
//	config/   - bacon.yaml loading and validation
//	metrics/  - Prometheus collectors for build and query activity
//	report/   - text and JSON rendering of results
//	cmd/bacon - the command-line front end
//
// A typical program reads a file, builds a frozen graph and queries it:
//
//	src, _ := records.Open("perf.csv.gz")
//	g, _, err := builder.Build(ctx, src)
//	res, err := bfs.ShortestPath(g, "Tom Hanks", "Kevin Bacon")
//
// Once built, a graph is immutable and safe for any number of concurrent
// queries.
package bacon
