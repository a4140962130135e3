package fft

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/CdrSonan/esper-fft/internal/fftypes"
)

const (
	testTol32 = 1e-3
	testTol64 = 1e-9
)

// randomInterleaved returns count uniformly distributed values in [-1, 1].
func randomInterleaved[T Float](count int, seed uint64) []T {
	rng := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))

	out := make([]T, count)
	for i := range out {
		out[i] = T(rng.Float64()*2 - 1)
	}

	return out
}

// promote turns real samples into interleaved complex samples.
func promote[T Float](x []T) []T {
	out := make([]T, 2*len(x))
	for i, v := range x {
		out[2*i] = v
	}

	return out
}

// run performs a full transform with freshly allocated buffers.
func run[T Float](kind fftypes.Kind, src []T, n int) []T {
	dst := make([]T, 2*n)
	scratch := make([]T, ScratchLen(n))
	Transform(dst, src, n, kind, scratch)

	return dst
}

// direct runs the top-level direct summation for kind, normalized when kind is.
func direct[T Float](kind fftypes.Kind, src []T, n int) []T {
	dst := make([]T, 2*n)
	DirectTransform(dst, src, n, SignOf(kind), kind.RealInput())

	if kind.Normalized() {
		Normalize(dst, n)
	}

	return dst
}

func tolFor[T Float]() float64 {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return testTol32
	}

	return testTol64
}

func maxAbsDiff[T Float](got, want []T) (int, float64) {
	idx, worst := -1, 0.0

	for i := range got {
		d := math.Abs(float64(got[i]) - float64(want[i]))
		if d > worst || math.IsNaN(d) {
			idx, worst = i, d
		}
	}

	return idx, worst
}

func assertSliceClose[T Float](t *testing.T, got, want []T, tol float64) {
	t.Helper()

	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d want %d", len(got), len(want))
	}

	for i := range got {
		if d := math.Abs(float64(got[i]) - float64(want[i])); d > tol || math.IsNaN(d) {
			t.Fatalf("index %d: got %v want %v (diff=%g)", i, got[i], want[i], d)
		}
	}
}
