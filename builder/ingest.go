// SPDX-License-Identifier: MIT
// Package: bacon/builder
//
// ingest.go - draining a records.Source into the Builder.

package builder

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/katalvlaran/bacon/records"
)

// IngestStats summarizes one Ingest call.
type IngestStats struct {
	Records    int           `json:"records"`    // records read, malformed included
	Credits    int           `json:"credits"`    // new (actor, movie) pairs
	Duplicates int           `json:"duplicates"` // repeated pairs, ignored
	Malformed  int           `json:"malformed"`  // skipped records
	Elapsed    time.Duration `json:"elapsed"`
}

// Ingest reads src to io.EOF, registering every record with AddAppearance.
//
// Implementation:
//   - Stage 1: Pull a record; stop on io.EOF.
//   - Stage 2: Record-level failures (records.ErrMalformed, ErrMalformedRecord)
//     are logged at warn level, counted and skipped.
//   - Stage 3: Any other source error is fatal and returned wrapped.
//
// Errors:
//   - ErrSealed, ErrTooManyMalformed, ctx.Err(), wrapped source errors.
//
// The returned stats are valid even when an error is returned.
func (b *Builder) Ingest(ctx context.Context, src records.Source) (IngestStats, error) {
	var st IngestStats
	start := time.Now()

	log := b.cfg.logger
	for {
		if err := ctx.Err(); err != nil {
			st.Elapsed = time.Since(start)
			return st, err
		}

		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		st.Records++
		if err == nil {
			var fresh bool
			fresh, err = b.add(rec.Actor, rec.Movie)
			switch {
			case err == nil && fresh:
				st.Credits++
			case err == nil:
				st.Duplicates++
			}
		}
		if err == nil {
			continue
		}
		if errors.Is(err, ErrSealed) {
			st.Elapsed = time.Since(start)
			return st, err
		}
		if !errors.Is(err, records.ErrMalformed) && !errors.Is(err, ErrMalformedRecord) {
			st.Elapsed = time.Since(start)
			return st, fmt.Errorf("builder: read record %d: %w", st.Records, err)
		}

		st.Malformed++
		log.Warn("skipping malformed record", zap.Int("line", rec.Line), zap.Error(err))
		if b.cfg.maxMalformed > 0 && st.Malformed > b.cfg.maxMalformed {
			st.Elapsed = time.Since(start)
			return st, fmt.Errorf("%w: %d skipped (limit %d)", ErrTooManyMalformed, st.Malformed, b.cfg.maxMalformed)
		}
	}

	st.Elapsed = time.Since(start)
	log.Info("file read",
		zap.Int("records", st.Records),
		zap.Int("credits", st.Credits),
		zap.Int("malformed", st.Malformed),
		zap.Float64("seconds", st.Elapsed.Seconds()),
	)

	return st, nil
}
