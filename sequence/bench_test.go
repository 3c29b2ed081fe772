package sequence_test

import (
	"testing"

	"github.com/katalvlaran/trigon/sequence"
	"github.com/katalvlaran/trigon/triangle"
)

// benchmarkPrefix is a helper that re-extracts a full 0..n prefix on every
// iteration. It resets the timer before entering the loop and fails on
// unexpected errors.
func benchmarkPrefix(b *testing.B, fn func(int) ([]int64, []triangle.Advisory, error), n int) {
	b.ResetTimer() // ignore setup time
	for i := 0; i < b.N; i++ {
		if _, _, err := fn(n); err != nil {
			b.Fatalf("extract failed: %v", err) // report and stop on error
		}
	}
}

// BenchmarkBellNumbers_Small extracts Bell numbers 0..25 (the exact range).
func BenchmarkBellNumbers_Small(b *testing.B) {
	benchmarkPrefix(b, sequence.BellNumbers, 25)
}

// BenchmarkCatalanNumbers_Small extracts Catalan numbers 0..30.
func BenchmarkCatalanNumbers_Small(b *testing.B) {
	benchmarkPrefix(b, sequence.CatalanNumbers, 30)
}

// BenchmarkCakeNumbers_Medium extracts cake numbers 0..200; the row-sum
// walk is quadratic on top of the build.
func BenchmarkCakeNumbers_Medium(b *testing.B) {
	benchmarkPrefix(b, sequence.CakeNumbers, 200)
}

// BenchmarkZigzagNumbers_Small extracts zigzag numbers 0..20 (the exact
// range of the boustrophedon fill).
func BenchmarkZigzagNumbers_Small(b *testing.B) {
	benchmarkPrefix(b, sequence.ZigzagNumbers, 20)
}

// BenchmarkBinomial_Small reads one coefficient, dominated by the Pascal
// build it performs per call.
func BenchmarkBinomial_Small(b *testing.B) {
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := sequence.Binomial(20, 10); err != nil {
			b.Fatalf("Binomial failed: %v", err)
		}
	}
}
