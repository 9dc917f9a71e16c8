// SPDX-License-Identifier: MIT

package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
)

// Default column layout of the performances export: the actor name is the
// second field and the film title the fourth.
const (
	DefaultActorColumn = 1
	DefaultMovieColumn = 3
	DefaultDelimiter   = ','
)

// CSVOption customizes a CSVSource.
// Option constructors panic on meaningless values; reading never panics.
type CSVOption func(*csvConfig)

type csvConfig struct {
	delimiter   rune
	actorColumn int
	movieColumn int
	header      bool
}

// WithDelimiter sets the field separator.
func WithDelimiter(r rune) CSVOption {
	if r == 0 || r == '"' || r == '\r' || r == '\n' {
		panic(fmt.Sprintf("records: WithDelimiter(%q)", r))
	}
	return func(c *csvConfig) { c.delimiter = r }
}

// WithColumns selects the zero-based actor and movie field positions.
func WithColumns(actor, movie int) CSVOption {
	if actor < 0 || movie < 0 || actor == movie {
		panic(fmt.Sprintf("records: WithColumns(%d, %d)", actor, movie))
	}
	return func(c *csvConfig) {
		c.actorColumn = actor
		c.movieColumn = movie
	}
}

// WithHeader skips the first row.
func WithHeader(skip bool) CSVOption {
	return func(c *csvConfig) { c.header = skip }
}

// CSVSource reads records from delimited text.
type CSVSource struct {
	r      *csv.Reader
	cfg    csvConfig
	width  int // minimum fields a row needs
	primed bool
}

// NewCSVSource wraps r. Rows are allowed to vary in width; quoting is lenient.
func NewCSVSource(r io.Reader, opts ...CSVOption) *CSVSource {
	cfg := csvConfig{
		delimiter:   DefaultDelimiter,
		actorColumn: DefaultActorColumn,
		movieColumn: DefaultMovieColumn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	cr := csv.NewReader(r)
	cr.Comma = cfg.delimiter
	cr.FieldsPerRecord = -1
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	return &CSVSource{
		r:     cr,
		cfg:   cfg,
		width: max(cfg.actorColumn, cfg.movieColumn) + 1,
	}
}

// Next implements Source.
func (s *CSVSource) Next() (Record, error) {
	if !s.primed {
		s.primed = true
		if s.cfg.header {
			if _, err := s.r.Read(); err != nil {
				return s.classify(err)
			}
		}
	}

	row, err := s.r.Read()
	if err != nil {
		return s.classify(err)
	}
	line, _ := s.r.FieldPos(0)
	if len(row) < s.width {
		return Record{Line: line}, fmt.Errorf("%w: line %d has %d fields, need %d",
			ErrMalformed, line, len(row), s.width)
	}

	return Record{
		Actor: strings.TrimSpace(row[s.cfg.actorColumn]),
		Movie: strings.TrimSpace(row[s.cfg.movieColumn]),
		Line:  line,
	}, nil
}

// classify maps csv parse errors to ErrMalformed, keeping the offending line
// on the Record, and passes io.EOF through.
func (s *CSVSource) classify(err error) (Record, error) {
	if errors.Is(err, io.EOF) {
		return Record{}, io.EOF
	}
	var pe *csv.ParseError
	if errors.As(err, &pe) {
		return Record{Line: pe.Line}, fmt.Errorf("%w: line %d: %v", ErrMalformed, pe.Line, pe.Err)
	}

	return Record{}, fmt.Errorf("records: read: %w", err)
}

// FileSource is a CSVSource over a file, optionally gzip-compressed.
type FileSource struct {
	*CSVSource
	closers []io.Closer
}

// Open opens path for reading. Files ending in ".gz" are decompressed on the fly.
func Open(path string, opts ...CSVOption) (*FileSource, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("records: open %s: %w", path, err)
	}
	fs := &FileSource{closers: []io.Closer{f}}

	var r io.Reader = f
	if strings.EqualFold(filepath.Ext(path), ".gz") {
		zr, err := gzip.NewReader(f)
		if err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("records: gzip %s: %w", path, err)
		}
		fs.closers = append([]io.Closer{zr}, fs.closers...)
		r = zr
	}
	fs.CSVSource = NewCSVSource(r, opts...)

	return fs, nil
}

// Close releases the decompressor and the file.
func (fs *FileSource) Close() error {
	var errs []error
	for _, c := range fs.closers {
		if err := c.Close(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}
