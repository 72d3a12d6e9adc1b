package vector_test

import (
	"math"
	"testing"

	"github.com/katalvlaran/numlab/vector"
)

// benchmarkSine prepares an n-point sine sample outside the timed loop.
func benchmarkSine(b *testing.B, n int) (*vector.Vector, *vector.Vector) {
	b.Helper()
	x := MustLinspace(b, 0, 2*math.Pi, n)
	y := MustMap(b, x, math.Sin)
	b.ResetTimer()

	return y, x
}

func BenchmarkGradient_10k(b *testing.B) {
	y, x := benchmarkSine(b, 10_000)
	for i := 0; i < b.N; i++ {
		if _, err := vector.Gradient(y, x); err != nil {
			b.Fatalf("Gradient: %v", err)
		}
	}
}

func BenchmarkTrapezoid_10k(b *testing.B) {
	y, x := benchmarkSine(b, 10_000)
	for i := 0; i < b.N; i++ {
		if _, err := vector.Trapezoid(y, x); err != nil {
			b.Fatalf("Trapezoid: %v", err)
		}
	}
}

func BenchmarkMap_10k(b *testing.B) {
	_, x := benchmarkSine(b, 10_000)
	for i := 0; i < b.N; i++ {
		if _, err := x.Map(math.Cos); err != nil {
			b.Fatalf("Map: %v", err)
		}
	}
}
