// SPDX-License-Identifier: MIT

// Package config loads the bacon.yaml configuration file.
//
// The file is found by walking up from a directory; every field has a default
// so a missing file is not an error. Command-line flags are applied on top by
// the caller, then Validate checks the merged result.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/bacon/bfs"
	"github.com/katalvlaran/bacon/builder"
	"github.com/katalvlaran/bacon/records"
)

var (
	// ErrConfigNotFound is returned by FindConfig when no file exists up to the root.
	ErrConfigNotFound = errors.New("config: no bacon.yaml found")

	// ErrInvalid wraps validation and decoding failures.
	ErrInvalid = errors.New("config: invalid configuration")
)

// DefaultConfigNames are the filenames searched for, in order.
var DefaultConfigNames = []string{"bacon.yaml", "bacon.yml", ".bacon.yaml", ".bacon.yml"}

// Config is the merged configuration of the bacon CLI.
type Config struct {
	// Data is the path of the appearance file (.csv or .csv.gz).
	Data string `yaml:"data"`

	CSV     CSVConfig     `yaml:"csv"`
	Build   BuildConfig   `yaml:"build"`
	Query   QueryConfig   `yaml:"query"`
	Log     LogConfig     `yaml:"log"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// CSVConfig describes the input layout.
type CSVConfig struct {
	Delimiter   string `yaml:"delimiter" validate:"len=1"`
	ActorColumn int    `yaml:"actor_column" validate:"gte=0,nefield=MovieColumn"`
	MovieColumn int    `yaml:"movie_column" validate:"gte=0"`
	Header      bool   `yaml:"header"`
}

// BuildConfig tunes graph construction.
type BuildConfig struct {
	Workers      int `yaml:"workers" validate:"gte=1,lte=1024"`
	MaxEdges     int `yaml:"max_edges" validate:"gte=0"`
	MaxMalformed int `yaml:"max_malformed" validate:"gte=0"`
}

// QueryConfig tunes path queries.
type QueryConfig struct {
	Strategy   string        `yaml:"strategy" validate:"oneof=single bidirectional"`
	MaxVisited int           `yaml:"max_visited" validate:"gte=0"`
	MaxDepth   int           `yaml:"max_depth" validate:"gte=0"`
	Timeout    time.Duration `yaml:"timeout" validate:"gte=0"`
	CacheSize  int           `yaml:"cache_size" validate:"gte=0"`
}

// LogConfig selects the log level.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
}

// MetricsConfig selects where metrics are written on exit. Empty disables.
type MetricsConfig struct {
	File string `yaml:"file"`
}

// Default returns the configuration used when no file is present.
func Default() *Config {
	return &Config{
		CSV: CSVConfig{
			Delimiter:   string(records.DefaultDelimiter),
			ActorColumn: records.DefaultActorColumn,
			MovieColumn: records.DefaultMovieColumn,
		},
		Build: BuildConfig{Workers: 1},
		Query: QueryConfig{
			Strategy:  bfs.Bidirectional.String(),
			Timeout:   30 * time.Second,
			CacheSize: 1024,
		},
		Log: LogConfig{Level: "info"},
	}
}

var validate = validator.New()

// Validate checks field constraints.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	switch c.CSV.Delimiter {
	case `"`, "\r", "\n":
		return fmt.Errorf("%w: csv.delimiter %q is reserved", ErrInvalid, c.CSV.Delimiter)
	}

	return nil
}

// Load finds the nearest config file walking up from dir and loads it over the
// defaults. It returns the defaults and an empty path when no file exists.
func Load(dir string) (*Config, string, error) {
	path, err := FindConfig(dir)
	if errors.Is(err, ErrConfigNotFound) {
		return Default(), "", nil
	}
	if err != nil {
		return nil, "", err
	}

	cfg, err := LoadFile(path)
	return cfg, path, err
}

// FindConfig searches for a config file starting from dir and walking up.
func FindConfig(dir string) (string, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return "", err
	}

	for dir := absDir; ; {
		for _, name := range DefaultConfigNames {
			path := filepath.Join(dir, name)
			if _, err := os.Stat(path); err == nil {
				return path, nil
			}
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", ErrConfigNotFound
		}
		dir = parent
	}
}

// LoadFile decodes path over Default and validates the result.
// Unknown keys are rejected. A relative Data path is resolved against the
// file's directory.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}

	cfg := Default()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(cfg); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalid, path, err)
	}
	if cfg.Data != "" && !filepath.IsAbs(cfg.Data) {
		cfg.Data = filepath.Join(filepath.Dir(path), cfg.Data)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	return cfg, nil
}

// CSVOptions translates the CSV section for records.Open.
func (c *Config) CSVOptions() []records.CSVOption {
	r, _ := utf8.DecodeRuneInString(c.CSV.Delimiter)
	return []records.CSVOption{
		records.WithDelimiter(r),
		records.WithColumns(c.CSV.ActorColumn, c.CSV.MovieColumn),
		records.WithHeader(c.CSV.Header),
	}
}

// BuilderOptions translates the build section. Call after Validate.
func (c *Config) BuilderOptions(log *zap.Logger) []builder.BuilderOption {
	return []builder.BuilderOption{
		builder.WithLogger(log),
		builder.WithWorkers(c.Build.Workers),
		builder.WithMaxEdges(c.Build.MaxEdges),
		builder.WithMaxMalformed(c.Build.MaxMalformed),
	}
}

// QueryOptions translates the query section.
func (c *Config) QueryOptions() ([]bfs.Option, error) {
	s, err := bfs.ParseStrategy(c.Query.Strategy)
	if err != nil {
		return nil, err
	}

	return []bfs.Option{
		bfs.WithStrategy(s),
		bfs.WithMaxVisited(c.Query.MaxVisited),
		bfs.WithMaxDepth(c.Query.MaxDepth),
	}, nil
}
