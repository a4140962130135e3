package esperfft

import (
	"errors"
	"slices"
	"testing"
)

func TestPlanForwardStrided_Float32(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan32(4)
	if err != nil {
		t.Fatalf("NewPlan32 failed: %v", err)
	}

	// A 4x4 row-major matrix of complex samples; transform column 2.
	src := make([]float32, 2*16)
	for i := range 16 {
		src[2*i] = float32(i + 1)
		src[2*i+1] = float32(i) * 0.25
	}

	srcCopy := slices.Clone(src)

	dst := make([]float32, len(src))
	stride := 4
	col := 2

	contig := make([]float32, 0, 2*plan.Len())
	for i := range plan.Len() {
		k := col + i*stride
		contig = append(contig, src[2*k], src[2*k+1])
	}

	want := make([]float32, 2*plan.Len())

	err = plan.Forward(want, contig)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	err = plan.ForwardStrided(dst[2*col:], src[2*col:], stride)
	if err != nil {
		t.Fatalf("ForwardStrided failed: %v", err)
	}

	for i := range plan.Len() {
		k := col + i*stride
		assertApproxSlicef(t, dst[2*k:2*k+2], want[2*i:2*i+2], 1e-4, "col[%d]", i)
	}

	if !slices.Equal(src, srcCopy) {
		t.Fatal("src mutated")
	}
}

func TestPlanInverseStrided_Float64(t *testing.T) {
	t.Parallel()

	const n = 6

	plan, err := NewPlan64(n)
	if err != nil {
		t.Fatalf("NewPlan64 failed: %v", err)
	}

	time := randomSamples[float64](2*n, 4)
	freq := make([]float64, 2*n)

	err = plan.Forward(freq, time)
	if err != nil {
		t.Fatalf("Forward failed: %v", err)
	}

	stride := 5
	total := 2 * (1 + (n-1)*stride)
	src := make([]float64, total)
	dst := make([]float64, total)

	for i := range n {
		src[2*i*stride] = freq[2*i]
		src[2*i*stride+1] = freq[2*i+1]
	}

	err = plan.InverseStrided(dst, src, stride)
	if err != nil {
		t.Fatalf("InverseStrided failed: %v", err)
	}

	for i := range n {
		assertApproxSlicef(t, dst[2*i*stride:2*i*stride+2], time[2*i:2*i+2], 1e-12, "idx[%d]", i)
	}
}

func TestPlanStridedRealInput(t *testing.T) {
	t.Parallel()

	const n, stride = 5, 3

	plan, err := NewPlan64(n)
	if err != nil {
		t.Fatal(err)
	}

	src := randomSamples[float64](1+(n-1)*stride, 8)

	contig := make([]float64, n)
	for i := range n {
		contig[i] = src[i*stride]
	}

	want, _ := RealForward(contig, n)

	dst := make([]float64, 2*(1+(n-1)*stride))
	if err := plan.TransformStrided(dst, src, stride, KindRealForward); err != nil {
		t.Fatalf("TransformStrided failed: %v", err)
	}

	for i := range n {
		assertApproxSlicef(t, dst[2*i*stride:2*i*stride+2], want[2*i:2*i+2], 1e-12, "bin %d", i)
	}
}

func TestPlanStrided_Errors(t *testing.T) {
	t.Parallel()

	plan, err := NewPlan32(4)
	if err != nil {
		t.Fatalf("NewPlan32 failed: %v", err)
	}

	data := make([]float32, 8)

	err = plan.ForwardStrided(data, data, 0)
	if !errors.Is(err, ErrInvalidStride) {
		t.Fatalf("expected ErrInvalidStride, got %v", err)
	}

	short := make([]float32, 10)

	err = plan.ForwardStrided(short, short, 2)
	if !errors.Is(err, ErrLengthMismatch) {
		t.Fatalf("expected ErrLengthMismatch, got %v", err)
	}

	err = plan.ForwardStrided(nil, data, 1)
	if !errors.Is(err, ErrNilSlice) {
		t.Fatalf("expected ErrNilSlice, got %v", err)
	}

	err = plan.ForwardStrided(data, data, int(^uint(0)>>1))
	if !errors.Is(err, ErrInvalidStride) {
		t.Fatalf("expected ErrInvalidStride for overflowing stride, got %v", err)
	}
}
