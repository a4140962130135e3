package esperfft

import (
	"math"
	"math/rand/v2"
	"testing"
)

// Shared test helper functions used across multiple test files

func randomSamples[T Float](count int, seed uint64) []T {
	rng := rand.New(rand.NewPCG(seed, seed^0x5851f42d4c957f2d))

	out := make([]T, count)
	for i := range out {
		out[i] = T(rng.Float64()*2 - 1)
	}

	return out
}

func assertApproxSlicef[T Float](t *testing.T, got, want []T, tol float64, format string, args ...any) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf(format+": length %d want %d", append(args, len(got), len(want))...)
	}

	for i := range got {
		if d := math.Abs(float64(got[i]) - float64(want[i])); d > tol || math.IsNaN(d) {
			t.Fatalf(format+": index %d: got %v want %v (diff=%v)", append(args, i, got[i], want[i], d)...)
		}
	}
}
