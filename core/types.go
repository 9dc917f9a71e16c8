// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Actor, Link, Neighbor and Graph declarations, sentinel errors, NewGraph.
// Concurrency:
//   - Graph.mu guards the actor catalog, the movie table and every Actor's
//     movie set and link list while the graph is being assembled.
//   - After Freeze the graph is immutable and reads only take the read lock.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrEmptyName indicates an actor name that is empty after normalization.
	ErrEmptyName = errors.New("core: actor name is empty")

	// ErrEmptyTitle indicates a movie title that is empty after trimming.
	ErrEmptyTitle = errors.New("core: movie title is empty")

	// ErrActorNotFound indicates an operation referenced an unknown actor.
	ErrActorNotFound = errors.New("core: actor not found")

	// ErrMovieNotFound indicates an operation referenced an unknown movie ordinal.
	ErrMovieNotFound = errors.New("core: movie not found")

	// ErrSelfLink indicates an attempt to link an actor to itself.
	ErrSelfLink = errors.New("core: actor cannot be linked to itself")

	// ErrFrozen indicates a mutation attempted after Freeze.
	ErrFrozen = errors.New("core: graph is frozen")
)

// NoActor is the sentinel ID used for "no predecessor" and unresolved names.
const NoActor = -1

// Actor is a vertex of the co-appearance graph.
//
// ID is a dense index into the graph's actor catalog, Name is the first
// spelling seen in the input and Key is the normalized identity (see Key).
type Actor struct {
	ID   int
	Name string
	Key  string

	// movieSet collects movie ordinals during assembly; Freeze moves it into movies.
	movieSet map[int]struct{}
	movies   []int

	// links is sorted by neighbor Key once the graph is frozen.
	links []Link
}

// Link is one directed neighbor entry: the actor reached and the movie ordinal
// justifying the co-appearance. Links are stored by value on the source actor.
type Link struct {
	To    int
	Movie int
}

// Neighbor is the resolved, human-readable form of a Link.
type Neighbor struct {
	Name  string `json:"name"`
	Movie string `json:"movie"`
}

// Graph is the in-memory actor co-appearance graph.
//
// Actors are looked up by Key in O(1). Movies are interned into a title table
// so links carry a compact ordinal instead of a string.
type Graph struct {
	mu sync.RWMutex

	frozen bool

	actors []*Actor       // ID → Actor
	byKey  map[string]int // Key → ID
	titles []string       // movie ordinal → title
	byName map[string]int // title → movie ordinal
	edges  int            // directed link count, computed by Freeze
}

// NewGraph creates an empty, mutable Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		byKey:  make(map[string]int),
		byName: make(map[string]int),
	}
}
