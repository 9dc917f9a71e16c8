// SPDX-License-Identifier: MIT
//
// File: methods_vertices.go
// Role: Actor lifecycle and actor-level queries.
//
// Determinism:
//   - Actors() returns actors sorted by Key ascending.
//   - Movies() returns titles sorted ascending.
//
// Concurrency:
//   - Mutators take mu for writing and fail with ErrFrozen after Freeze.
//   - Queries take mu for reading.

package core

import "sort"

// AddActor returns the actor registered under Key(name), creating it on first
// reference (get-or-create).
//
// Implementation:
//   - Stage 1: Normalize the name with Key; reject empty keys (ErrEmptyName).
//   - Stage 2: Under the write lock, return the existing actor when present.
//   - Stage 3: Otherwise append a new Actor whose ID is its catalog index.
//
// Behavior highlights:
//   - Idempotent: the first spelling seen becomes Actor.Name; later spellings
//     with the same key resolve to the same instance.
//
// Errors:
//   - ErrEmptyName: name is blank.
//   - ErrFrozen: the graph was frozen.
//
// Complexity:
//   - Time O(len(name)) amortized, Space O(1) amortized.
func (g *Graph) AddActor(name string) (*Actor, error) {
	key := Key(name)
	if key == "" {
		return nil, ErrEmptyName
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if g.frozen {
		return nil, ErrFrozen
	}
	if id, ok := g.byKey[key]; ok {
		return g.actors[id], nil
	}

	a := &Actor{
		ID:       len(g.actors),
		Name:     collapseSpaces(name),
		Key:      key,
		movieSet: make(map[int]struct{}),
	}
	g.actors = append(g.actors, a)
	g.byKey[key] = a.ID

	return a, nil
}

// Actor looks up an actor by name under the Key policy.
// Complexity: O(len(name)).
func (g *Graph) Actor(name string) (*Actor, bool) {
	key := Key(name)
	if key == "" {
		return nil, false
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	id, ok := g.byKey[key]
	if !ok {
		return nil, false
	}

	return g.actors[id], true
}

// HasActor reports whether name resolves to a registered actor.
func (g *Graph) HasActor(name string) bool {
	_, ok := g.Actor(name)
	return ok
}

// ActorByID returns the actor with the given catalog index.
func (g *Graph) ActorByID(id int) (*Actor, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if id < 0 || id >= len(g.actors) {
		return nil, false
	}

	return g.actors[id], true
}

// Actors returns every actor sorted by Key ascending.
// The slice is a fresh copy; the *Actor values are shared and read-only.
//
// Complexity: O(V log V).
func (g *Graph) Actors() []*Actor {
	g.mu.RLock()
	out := make([]*Actor, len(g.actors))
	copy(out, g.actors)
	g.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool { return out[i].Key < out[j].Key })

	return out
}

// ActorCount returns the number of distinct actors. O(1).
func (g *Graph) ActorCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.actors)
}

// Degree returns the number of distinct co-stars of the named actor.
//
// Errors:
//   - ErrEmptyName, ErrActorNotFound.
func (g *Graph) Degree(name string) (int, error) {
	a, err := g.resolve(name)
	if err != nil {
		return 0, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(a.links), nil
}

// Movies returns the titles the named actor appeared in, sorted ascending.
//
// Errors:
//   - ErrEmptyName, ErrActorNotFound.
//
// Complexity: O(m log m) for m movies of the actor.
func (g *Graph) Movies(name string) ([]string, error) {
	a, err := g.resolve(name)
	if err != nil {
		return nil, err
	}

	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]string, 0, len(a.movies)+len(a.movieSet))
	for _, m := range a.movies {
		out = append(out, g.titles[m])
	}
	for m := range a.movieSet {
		out = append(out, g.titles[m])
	}
	sort.Strings(out)

	return out, nil
}

// resolve maps a name to its actor or returns a sentinel error.
func (g *Graph) resolve(name string) (*Actor, error) {
	if Key(name) == "" {
		return nil, ErrEmptyName
	}
	a, ok := g.Actor(name)
	if !ok {
		return nil, ErrActorNotFound
	}

	return a, nil
}
