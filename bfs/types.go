// Package bfs provides tunable options, result types and error definitions
// for shortest-path search over a co-appearance core.Graph.
package bfs

import (
	"context"
	"errors"
	"fmt"
)

// Sentinel errors for search execution.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrEmptyName is returned when a query name is blank after normalization.
	ErrEmptyName = errors.New("bfs: actor name is empty")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("bfs: invalid option supplied")

	// ErrSearchLimit is returned when a search expands more vertices than
	// WithMaxVisited allows.
	ErrSearchLimit = errors.New("bfs: visit limit exceeded")
)

// Strategy selects the search algorithm.
type Strategy int

const (
	// Single expands one frontier from the source until the target is dequeued.
	Single Strategy = iota
	// Bidirectional grows frontiers from both ends and joins them.
	Bidirectional
)

// String implements fmt.Stringer.
func (s Strategy) String() string {
	switch s {
	case Single:
		return "single"
	case Bidirectional:
		return "bidirectional"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps "single" or "bidirectional" to a Strategy.
func ParseStrategy(s string) (Strategy, error) {
	switch s {
	case "", "single":
		return Single, nil
	case "bidirectional":
		return Bidirectional, nil
	default:
		return Single, fmt.Errorf("%w: unknown strategy %q", ErrOptionViolation, s)
	}
}

// Option configures a search via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded internally
// and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks to customize a search.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// Strategy selects single-frontier or bidirectional search.
	Strategy Strategy

	// MaxVisited, if > 0, fails the search with ErrSearchLimit once more than
	// this many vertices were expanded.
	MaxVisited int

	// MaxDepth, if > 0, ignores connections longer than this many hops.
	// A value of 0 disables the limit.
	MaxDepth int

	// OnVisit is called when a vertex is expanded, with its display name and
	// its distance from the side it was reached from. An error aborts the search.
	OnVisit func(name string, depth int) error

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns an Options with:
//   - context.Background()
//   - Single strategy
//   - no visit or depth limit
//   - a no-op OnVisit hook.
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		Strategy: Single,
		OnVisit:  func(string, int) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithStrategy selects the search algorithm.
func WithStrategy(s Strategy) Option {
	return func(o *Options) {
		if s != Single && s != Bidirectional {
			o.err = fmt.Errorf("%w: unknown strategy %v", ErrOptionViolation, s)
			return
		}
		o.Strategy = s
	}
}

// WithMaxVisited bounds the number of expanded vertices.
//
//	n > 0: limit to n
//	n == 0: no limit
//	n < 0: invalid option → ErrOptionViolation
func WithMaxVisited(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxVisited cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxVisited = n
	}
}

// WithMaxDepth reports "not found" for actors farther than d hops.
//
//	d > 0: limit to d hops
//	d == 0: no limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *Options) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithOnVisit registers a callback run on every expanded vertex; returning an
// error from it stops the search.
func WithOnVisit(fn func(name string, depth int) error) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// Hop is one link of a path: From and To co-appeared in Movie.
type Hop struct {
	From  string `json:"from"`
	To    string `json:"to"`
	Movie string `json:"movie"`
}

// Result is the outcome of a shortest-path query.
//   - Source, Target: display names (first spelling seen, or the trimmed query
//     text for actors absent from the graph).
//   - Hops: path length in edges, 0 for the same actor, -1 when not Found.
//   - Path: Hops entries from Source to Target; empty (never nil) when Hops ≤ 0.
//   - Visited: vertices expanded by the search.
type Result struct {
	Source  string `json:"source"`
	Target  string `json:"target"`
	Found   bool   `json:"found"`
	Hops    int    `json:"hops"`
	Path    []Hop  `json:"path"`
	Visited int    `json:"visited"`
}

// Actors returns the chain of names along the path, Source first.
// For a not-found result it returns nil.
func (r *Result) Actors() []string {
	if !r.Found {
		return nil
	}
	out := make([]string, 0, len(r.Path)+1)
	out = append(out, r.Source)
	for _, h := range r.Path {
		out = append(out, h.To)
	}

	return out
}

// clone returns a deep copy so cached results are never shared mutably.
func (r *Result) clone() *Result {
	c := *r
	c.Path = append(make([]Hop, 0, len(r.Path)), r.Path...)

	return &c
}
