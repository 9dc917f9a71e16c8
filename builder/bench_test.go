// SPDX-License-Identifier: MIT

package builder_test

import (
	"context"
	"testing"

	"github.com/katalvlaran/bacon/builder"
	"github.com/katalvlaran/bacon/records"
)

func benchmarkBuild(b *testing.B, workers int) {
	pairs := randomPairs(11, 2000, 3000, 25)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := builder.Build(context.Background(), records.FromPairs(pairs...),
			builder.WithWorkers(workers)); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkBuild_Sequential measures the single-goroutine clique expansion.
func BenchmarkBuild_Sequential(b *testing.B) { benchmarkBuild(b, 1) }

// BenchmarkBuild_Parallel4 measures the sharded expansion on four workers.
func BenchmarkBuild_Parallel4(b *testing.B) { benchmarkBuild(b, 4) }
