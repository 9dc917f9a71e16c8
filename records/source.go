// SPDX-License-Identifier: MIT

// Package records supplies (actor, movie) appearance records to the graph
// builder. A Source yields one Record per call and io.EOF when exhausted.
//
// Record-level problems (a short row, an unparsable line) are reported as
// errors wrapping ErrMalformed so callers can skip them and keep reading.
// Anything else (an unreadable file, a broken gzip stream) is fatal.
package records

import (
	"errors"
	"io"
)

// ErrMalformed marks a recoverable, record-level input problem.
var ErrMalformed = errors.New("records: malformed record")

// Record is one appearance: Actor appeared in Movie.
// Line is the 1-based input line, or the 1-based position for in-memory sources.
type Record struct {
	Actor string
	Movie string
	Line  int
}

// Source is a pull-based stream of records.
type Source interface {
	// Next returns the next record, io.EOF at the end of input, an error
	// wrapping ErrMalformed for a skippable record, or any other error for a
	// fatal input failure.
	Next() (Record, error)
}

// SliceSource serves records from memory.
type SliceSource struct {
	recs []Record
	pos  int
}

// FromPairs builds a SliceSource from literal {actor, movie} pairs.
func FromPairs(pairs ...[2]string) *SliceSource {
	recs := make([]Record, len(pairs))
	for i, p := range pairs {
		recs[i] = Record{Actor: p[0], Movie: p[1], Line: i + 1}
	}

	return &SliceSource{recs: recs}
}

// FromRecords builds a SliceSource over existing records.
func FromRecords(recs []Record) *SliceSource {
	return &SliceSource{recs: recs}
}

// Next implements Source.
func (s *SliceSource) Next() (Record, error) {
	if s.pos >= len(s.recs) {
		return Record{}, io.EOF
	}
	r := s.recs[s.pos]
	s.pos++

	return r, nil
}
