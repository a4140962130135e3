package esperfft

import (
	"errors"
	"fmt"
	"math"
	"slices"
	"testing"
)

func TestWrappersKnownValues(t *testing.T) {
	t.Parallel()

	h := float32(0.5 * math.Sqrt(3))

	tests := []struct {
		name string
		fn   func([]float32, int) ([]float32, error)
		in   []float32
		n    int
		want []float32
	}{
		{"forward identity", Forward[float32], []float32{0.5, -2}, 1, []float32{0.5, -2}},
		{"forward impulse", Forward[float32], []float32{1, 0, 0, 0, 0, 0, 0, 0}, 4, []float32{1, 0, 1, 0, 1, 0, 1, 0}},
		{"forward shifted impulse", Forward[float32], []float32{0, 0, 0, 0, 0, 0, 1, 0}, 4, []float32{1, 0, 0, -1, -1, 0, 0, 1}},
		{"real forward length 3", RealForward[float32], []float32{0, 1, 0}, 3, []float32{1, 0, -0.5, -h, -0.5, h}},
		{"inverse length 3", Inverse[float32], []float32{1, 0, -0.5, h, -0.5, -h}, 3, []float32{0, 0, 1, 0, 0, 0}},
		{"real inverse flat", RealInverse[float32], []float32{4, 0, 0, 0}, 4, []float32{1, 0, 1, 0, 1, 0, 1, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := tt.fn(tt.in, tt.n)
			if err != nil {
				t.Fatalf("transform failed: %v", err)
			}

			assertApproxSlicef(t, got, tt.want, 1e-5, "%s", tt.name)
		})
	}
}

func TestWrappersRoundTrip(t *testing.T) {
	t.Parallel()

	for _, n := range []int{1, 2, 3, 5, 6, 17, 36, 100, 144, 210, 256, 343} {
		t.Run(fmt.Sprintf("n=%d", n), func(t *testing.T) {
			t.Parallel()

			x := randomSamples[float32](2*n, uint64(n))

			spectrum, err := Forward(x, n)
			if err != nil {
				t.Fatalf("Forward failed: %v", err)
			}

			back, err := Inverse(spectrum, n)
			if err != nil {
				t.Fatalf("Inverse failed: %v", err)
			}

			assertApproxSlicef(t, back, x, 1e-3, "n=%d", n)
		})
	}
}

func TestWrappersDoNotMutateInput(t *testing.T) {
	t.Parallel()

	x := randomSamples[float64](2*30, 9)
	orig := slices.Clone(x)

	if _, err := Forward(x, 30); err != nil {
		t.Fatal(err)
	}

	if _, err := RealForward(x, 30); err != nil {
		t.Fatal(err)
	}

	if !slices.Equal(x, orig) {
		t.Fatal("input mutated")
	}
}

func TestWrappersReturnNewBuffer(t *testing.T) {
	t.Parallel()

	x := []float64{1, 2}

	got, err := Forward(x, 1)
	if err != nil {
		t.Fatal(err)
	}

	got[0] = 42
	if x[0] != 1 {
		t.Fatal("result aliases input")
	}

	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
}

func TestWrappersErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		call func() error
	}{
		{"zero length", ErrInvalidLength, func() error { _, err := Forward([]float32{1, 2}, 0); return err }},
		{"negative length", ErrInvalidLength, func() error { _, err := Inverse([]float32{1, 2}, -3); return err }},
		{"nil input", ErrNilSlice, func() error { _, err := Forward[float32](nil, 2); return err }},
		{"short complex input", ErrLengthMismatch, func() error { _, err := Forward(make([]float32, 7), 4); return err }},
		{"short real input", ErrLengthMismatch, func() error { _, err := RealForward(make([]float64, 3), 4); return err }},
	}

	for _, tt := range tests {
		if err := tt.call(); !errors.Is(err, tt.err) {
			t.Errorf("%s: got %v, want %v", tt.name, err, tt.err)
		}
	}
}

func TestTransformKind(t *testing.T) {
	t.Parallel()

	x := randomSamples[float64](24, 3)

	for _, kind := range []Kind{KindForward, KindInverse, KindRealForward, KindRealInverse} {
		got, err := TransformKind(x, 12, kind)
		if err != nil {
			t.Fatalf("%v: %v", kind, err)
		}

		var want []float64

		switch kind {
		case KindForward:
			want, err = Forward(x, 12)
		case KindInverse:
			want, err = Inverse(x, 12)
		case KindRealForward:
			want, err = RealForward(x, 12)
		case KindRealInverse:
			want, err = RealInverse(x, 12)
		}

		if err != nil {
			t.Fatal(err)
		}

		if !slices.Equal(got, want) {
			t.Errorf("%v: TransformKind differs from wrapper", kind)
		}
	}
}

func TestParseKindRoundTrip(t *testing.T) {
	t.Parallel()

	for _, kind := range []Kind{KindForward, KindInverse, KindRealForward, KindRealInverse} {
		got, err := ParseKind(kind.String())
		if err != nil || got != kind {
			t.Errorf("ParseKind(%q) = %v, %v", kind.String(), got, err)
		}
	}
}
