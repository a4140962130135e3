// Package fft implements the mixed-radix transform engine.
//
// Samples are stored interleaved: element 2k is the real part and element
// 2k+1 the imaginary part of sample k. The recursion splits a length by 2 or
// 3 (decimation in time) and falls back to a direct summation for lengths
// coprime to 6.
package fft

import (
	"math"

	"github.com/CdrSonan/esper-fft/internal/fftypes"
)

// Float is a type alias for the sample scalar constraint.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Sign is the rotation direction of every twiddle factor in one transform.
type Sign int

const (
	// Positive rotates by exp(+i*2*pi*k/n); used by the forward transform.
	Positive Sign = 1
	// Negative rotates by exp(-i*2*pi*k/n); used by the inverse transform.
	Negative Sign = -1
)

// SignOf returns the sign used by a transform kind.
func SignOf(kind fftypes.Kind) Sign {
	return Sign(kind.Sign())
}

// View describes a strided sub-sequence of the input: N samples starting at
// sample Offset, Stride samples apart. It owns no memory.
type View struct {
	N      int
	Stride int
	Offset int
}

// Top returns the view covering n contiguous samples from sample 0.
func Top(n int) View {
	return View{N: n, Stride: 1, Offset: 0}
}

// Split returns sub-view i of a radix-r decimation in time.
func (v View) Split(r, i int) View {
	return View{N: v.N / r, Stride: v.Stride * r, Offset: v.Offset + i*v.Stride}
}

// Index returns the input sample index of logical sample j.
func (v View) Index(j int) int {
	return v.Offset + j*v.Stride
}

// Input is a read-only sample source. Complex input stores interleaved pairs;
// real input stores one value per sample with an implied zero imaginary part.
type Input[T Float] struct {
	Data []T
	Real bool
}

// ComplexInput wraps an interleaved buffer.
func ComplexInput[T Float](data []T) Input[T] {
	return Input[T]{Data: data}
}

// RealInput wraps a buffer of real samples.
func RealInput[T Float](data []T) Input[T] {
	return Input[T]{Data: data, Real: true}
}

// At returns sample k.
func (in Input[T]) At(k int) (re, im T) {
	if in.Real {
		return in.Data[k], 0
	}

	return in.Data[2*k], in.Data[2*k+1]
}

// Samples returns how many samples the buffer holds.
func (in Input[T]) Samples() int {
	if in.Real {
		return len(in.Data)
	}

	return len(in.Data) / 2
}

// twiddle returns exp(i*sign*2*pi*k/n) evaluated in float64.
func twiddle[T Float](k, n int, sign Sign) (re, im T) {
	angle := float64(sign) * 2 * math.Pi * float64(k%n) / float64(n)
	s, c := math.Sincos(angle)

	return T(c), T(s)
}
