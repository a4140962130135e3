package fft

import (
	"fmt"

	"github.com/CdrSonan/esper-fft/internal/fftypes"
	m "github.com/CdrSonan/esper-fft/internal/math"
)

// ScratchLen reports the scratch length Recurse needs for a length-n transform.
func ScratchLen(n int) int {
	return m.ScratchLen(n)
}

// Recurse writes the transform of the samples selected by v into dst[:2*v.N].
//
// Children of a radix node write their results into scratch[:2*v.N] and draw
// their own scratch from scratch[2*v.N:], so one buffer of ScratchLen(v.N)
// scalars serves the whole tree. dst must not overlap scratch or in.Data.
// The input is only read. v.N must be >= 1; no other validation is done.
func Recurse[T Float](dst []T, in Input[T], v View, sign Sign, scratch []T) {
	switch m.ChooseStrategy(v.N) {
	case fftypes.StrategyLeaf:
		dst[0], dst[1] = in.At(v.Offset)
	case fftypes.StrategyRadix2:
		radix2(dst, in, v, sign, scratch)
	case fftypes.StrategyRadix3:
		radix3(dst, in, v, sign, scratch)
	case fftypes.StrategyDirect:
		Direct(dst, in, v, sign)
	default:
		panic(fmt.Sprintf("fft: no strategy for length %d", v.N))
	}
}

// Transform runs a full top-level transform of kind over src into dst.
// dst needs 2n scalars, scratch ScratchLen(n).
func Transform[T Float](dst, src []T, n int, kind fftypes.Kind, scratch []T) {
	TransformView(dst, src, Top(n), kind, scratch)
}

// TransformView is Transform over an arbitrary view of src.
func TransformView[T Float](dst, src []T, v View, kind fftypes.Kind, scratch []T) {
	in := Input[T]{Data: src, Real: kind.RealInput()}
	Recurse(dst, in, v, SignOf(kind), scratch)

	if kind.Normalized() {
		Normalize(dst[:2*v.N], v.N)
	}
}
