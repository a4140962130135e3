package esperfft

import (
	"unsafe"

	"github.com/CdrSonan/esper-fft/internal/fft"
	m "github.com/CdrSonan/esper-fft/internal/math"
)

// Plan holds the scratch space for repeated transforms of one length.
// All four transform kinds share the plan. A Plan is not safe for concurrent
// use; give each goroutine its own plan (see TransformFrames).
type Plan[T Float] struct {
	n       int
	decomp  m.Decomposition
	scratch []T
	stage   []T
}

// NewPlan creates a plan for transforms of n samples.
// Returns ErrInvalidLength if n < 1.
func NewPlan[T Float](n int) (*Plan[T], error) {
	if n < 1 {
		return nil, ErrInvalidLength
	}

	return &Plan[T]{
		n:       n,
		decomp:  m.Decompose(n),
		scratch: make([]T, fft.ScratchLen(n)),
		stage:   make([]T, 2*n),
	}, nil
}

// NewPlan32 creates a single-precision plan.
func NewPlan32(n int) (*Plan[float32], error) {
	return NewPlan[float32](n)
}

// NewPlan64 creates a double-precision plan.
func NewPlan64(n int) (*Plan[float64], error) {
	return NewPlan[float64](n)
}

// Len returns the number of samples per transform.
func (p *Plan[T]) Len() int {
	return p.n
}

// Strategy returns the strategy applied at the top level.
func (p *Plan[T]) Strategy() Strategy {
	return m.ChooseStrategy(p.n)
}

// Radices returns the radix-2 and radix-3 splits from the top level down.
func (p *Plan[T]) Radices() []int {
	return append([]int(nil), p.decomp.Radices...)
}

// Residual returns the length handled by direct summation, or 1 when the
// length factors completely into 2s and 3s.
func (p *Plan[T]) Residual() int {
	return p.decomp.Residual
}

// Algorithm describes the decomposition, e.g. "2x2x3 + direct(5)".
func (p *Plan[T]) Algorithm() string {
	return p.decomp.String()
}

// Forward computes the forward transform of 2n interleaved scalars in src
// into dst[:2n].
func (p *Plan[T]) Forward(dst, src []T) error {
	return p.Transform(dst, src, KindForward)
}

// Inverse computes the inverse transform, scaled by 1/n.
func (p *Plan[T]) Inverse(dst, src []T) error {
	return p.Transform(dst, src, KindInverse)
}

// RealForward transforms n real scalars in src into 2n interleaved scalars.
func (p *Plan[T]) RealForward(dst, src []T) error {
	return p.Transform(dst, src, KindRealForward)
}

// RealInverse transforms n real scalars in src into 2n interleaved scalars,
// scaled by 1/n.
func (p *Plan[T]) RealInverse(dst, src []T) error {
	return p.Transform(dst, src, KindRealInverse)
}

// Transform computes the transform selected by kind. dst may share memory
// with src.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrLengthMismatch if dst holds fewer than 2n scalars or src fewer
// than the kind's input length.
func (p *Plan[T]) Transform(dst, src []T, kind Kind) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if len(dst) < 2*p.n || len(src) < inputLen(p.n, kind) {
		return ErrLengthMismatch
	}

	out := dst[:2*p.n]
	if overlaps(out, src) {
		out = p.stage
	}

	fft.Transform(out, src, p.n, kind, p.scratch)

	if &out[0] != &dst[0] {
		copy(dst, out)
	}

	return nil
}

// inputLen returns the scalars one input frame of kind occupies.
func inputLen(n int, kind Kind) int {
	if kind.RealInput() {
		return n
	}

	return 2 * n
}

// overlaps reports whether a and b share any backing memory.
func overlaps[T Float](a, b []T) bool {
	if len(a) == 0 || len(b) == 0 {
		return false
	}

	var zero T

	size := unsafe.Sizeof(zero)
	a0 := uintptr(unsafe.Pointer(unsafe.SliceData(a)))
	b0 := uintptr(unsafe.Pointer(unsafe.SliceData(b)))
	a1 := a0 + uintptr(len(a))*size
	b1 := b0 + uintptr(len(b))*size

	return a0 < b1 && b0 < a1
}
