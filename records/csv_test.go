// SPDX-License-Identifier: MIT

package records_test

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/bacon/records"
)

// drain reads src to EOF, splitting good records from malformed ones.
func drain(t *testing.T, src records.Source) (good []records.Record, malformed int) {
	t.Helper()
	for {
		rec, err := src.Next()
		if errors.Is(err, io.EOF) {
			return good, malformed
		}
		if errors.Is(err, records.ErrMalformed) {
			malformed++
			continue
		}
		require.NoError(t, err)
		good = append(good, rec)
	}
}

func TestCSVSource_DefaultColumns(t *testing.T) {
	in := strings.Join([]string{
		"/m/01,Kevin Bacon,/m/f1,Apollo 13",
		"/m/02,Tom Hanks,/m/f1,Apollo 13",
		"/m/03,short row",
		`/m/04,"Hanks, Tom",/m/f2," Big "`,
	}, "\n")

	good, malformed := drain(t, records.NewCSVSource(strings.NewReader(in)))

	assert.Equal(t, 1, malformed)
	require.Len(t, good, 3)
	assert.Equal(t, records.Record{Actor: "Kevin Bacon", Movie: "Apollo 13", Line: 1}, good[0])
	assert.Equal(t, records.Record{Actor: "Hanks, Tom", Movie: "Big", Line: 4}, good[2])
}

func TestCSVSource_Options(t *testing.T) {
	in := "actor;movie\nA;M1\nB;M1\n"

	src := records.NewCSVSource(strings.NewReader(in),
		records.WithDelimiter(';'),
		records.WithColumns(0, 1),
		records.WithHeader(true),
	)
	good, malformed := drain(t, src)

	assert.Zero(t, malformed)
	require.Len(t, good, 2)
	assert.Equal(t, "A", good[0].Actor)
	assert.Equal(t, 2, good[0].Line)
}

func TestCSVOptions_PanicOnNonsense(t *testing.T) {
	assert.Panics(t, func() { records.WithColumns(1, 1) })
	assert.Panics(t, func() { records.WithColumns(-1, 2) })
	assert.Panics(t, func() { records.WithDelimiter('"') })
}

func TestOpen_Gzip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "perf.csv.gz")

	f, err := os.Create(path)
	require.NoError(t, err)
	zw := gzip.NewWriter(f)
	_, err = zw.Write([]byte("x,A,y,M1\nx,B,y,M1\n"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, f.Close())

	src, err := records.Open(path)
	require.NoError(t, err)
	defer func() { require.NoError(t, src.Close()) }()

	good, malformed := drain(t, src)
	assert.Zero(t, malformed)
	assert.Len(t, good, 2)
}

func TestOpen_Missing(t *testing.T) {
	_, err := records.Open(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
	assert.NotErrorIs(t, err, records.ErrMalformed)
}

func TestFromPairs(t *testing.T) {
	src := records.FromPairs([2]string{"A", "M1"}, [2]string{"B", "M1"})

	good, _ := drain(t, src)
	assert.Equal(t, []records.Record{
		{Actor: "A", Movie: "M1", Line: 1},
		{Actor: "B", Movie: "M1", Line: 2},
	}, good)
}
