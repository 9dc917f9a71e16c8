// SPDX-License-Identifier: MIT
// Package: bacon/builder
//
// options.go - functional options and the resolved builderConfig.
//
// Contract:
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • No hidden globals; everything flows through builderConfig.
//
// Deterministic defaults:
//   • logger       = zap.NewNop()
//   • workers      = 1            (sequential clique expansion)
//   • maxEdges     = 0            (no budget)
//   • maxMalformed = 0            (skip any number of malformed records)

package builder

import (
	"fmt"

	"go.uber.org/zap"
)

// BuilderOption customizes a Builder before the first record is added.
type BuilderOption func(*builderConfig)

// builderConfig aggregates all knobs; it is copied into the Builder by value.
type builderConfig struct {
	logger       *zap.Logger
	workers      int
	maxEdges     int
	maxMalformed int
}

// Defaults (named, no magic numbers).
const (
	defaultWorkers = 1
	// shardsPerWorker spreads parallel neighbor writes over more locks than
	// workers so two workers rarely contend on one shard.
	shardsPerWorker = 8
)

func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger:  zap.NewNop(),
		workers: defaultWorkers,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithLogger routes build diagnostics (skipped records, timings) to l.
// Panics on nil.
func WithLogger(l *zap.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) { c.logger = l }
}

// WithWorkers sets the number of goroutines used by BuildEdges.
// n == 1 keeps the expansion sequential. Panics on n < 1.
func WithWorkers(n int) BuilderOption {
	if n < 1 {
		panic(fmt.Sprintf("builder: WithWorkers(%d)", n))
	}
	return func(c *builderConfig) { c.workers = n }
}

// WithMaxEdges bounds the number of directed neighbor entries BuildEdges may
// create; exceeding it fails with ErrResourceExhausted. 0 disables the bound.
// Panics on n < 0.
func WithMaxEdges(n int) BuilderOption {
	if n < 0 {
		panic(fmt.Sprintf("builder: WithMaxEdges(%d)", n))
	}
	return func(c *builderConfig) { c.maxEdges = n }
}

// WithMaxMalformed aborts Ingest with ErrTooManyMalformed once more than n
// records were skipped. 0 disables the bound. Panics on n < 0.
func WithMaxMalformed(n int) BuilderOption {
	if n < 0 {
		panic(fmt.Sprintf("builder: WithMaxMalformed(%d)", n))
	}
	return func(c *builderConfig) { c.maxMalformed = n }
}
