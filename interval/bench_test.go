package interval_test

import (
	"testing"

	"github.com/katalvlaran/rangeflow/interval"
)

// benchmarkNewSet builds a Set from n interleaved, partially overlapping intervals.
func benchmarkNewSet(b *testing.B, n int) {
	ivs := make([]interval.Interval, n)
	for i := 0; i < n; i++ {
		start := uint64((n - i) * 10) // reverse order forces a real sort
		ivs[i] = interval.Interval{Start: start, End: start + 15}
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = interval.NewSet(ivs...)
	}
}

// BenchmarkNewSet_Small benchmarks 100 intervals.
func BenchmarkNewSet_Small(b *testing.B) { benchmarkNewSet(b, 100) }

// BenchmarkNewSet_Large benchmarks 10k intervals.
func BenchmarkNewSet_Large(b *testing.B) { benchmarkNewSet(b, 10_000) }

// BenchmarkSet_Contains benchmarks binary-search membership on 10k members.
func BenchmarkSet_Contains(b *testing.B) {
	ivs := make([]interval.Interval, 10_000)
	for i := range ivs {
		ivs[i] = interval.Interval{Start: uint64(i * 10), End: uint64(i*10 + 5)}
	}
	s := interval.NewSet(ivs...)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = s.Contains(uint64(i % 100_000))
	}
}
