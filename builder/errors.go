// SPDX-License-Identifier: MIT
// Package: bacon/builder
//
// errors.go - sentinel errors for the builder package.
//
// Error policy:
//   • Only sentinel variables are exposed; callers branch with errors.Is.
//   • Implementations attach context with %w (record line, actor, movie).
//   • Building never panics; option constructors may panic on nonsense values.

package builder

import "errors"

// ErrMalformedRecord indicates an appearance with a missing actor or movie.
// Classification: recoverable. Ingest skips and counts such records.
var ErrMalformedRecord = errors.New("builder: malformed record")

// ErrSealed indicates AddAppearance or BuildEdges after BuildEdges completed.
var ErrSealed = errors.New("builder: edges already built")

// ErrResourceExhausted indicates the clique expansion exceeded the configured
// directed-edge budget (WithMaxEdges).
var ErrResourceExhausted = errors.New("builder: edge budget exhausted")

// ErrTooManyMalformed indicates more malformed records were skipped than
// WithMaxMalformed allows; the input is likely in the wrong format.
var ErrTooManyMalformed = errors.New("builder: too many malformed records")
