package esperfft

import "github.com/CdrSonan/esper-fft/internal/fft"

// ForwardStrided computes the forward transform on strided input/output data.
//
// The stride parameter is the distance in samples between consecutive
// elements: sample j is read from src[2*j*stride] (or src[j*stride] for real
// kinds) and bin k is written to dst[2*k*stride]. For example, stride=numCols
// transforms a matrix column in row-major storage.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan[T]) ForwardStrided(dst, src []T, stride int) error {
	return p.TransformStrided(dst, src, stride, KindForward)
}

// InverseStrided computes the inverse transform on strided input/output data.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidStride if stride < 1 or overflows index computation.
// Returns ErrLengthMismatch if slices are too short for the given stride.
func (p *Plan[T]) InverseStrided(dst, src []T, stride int) error {
	return p.TransformStrided(dst, src, stride, KindInverse)
}

// TransformStrided computes the transform selected by kind on strided data.
// The input is read in place through a strided view; the output is staged in
// plan memory and scattered, so dst may share memory with src.
func (p *Plan[T]) TransformStrided(dst, src []T, stride int, kind Kind) error {
	err := p.validateStridedSlices(dst, src, stride, kind)
	if err != nil {
		return err
	}

	if stride == 1 {
		return p.Transform(dst, src, kind)
	}

	view := fft.View{N: p.n, Stride: stride, Offset: 0}
	fft.TransformView(p.stage, src, view, kind, p.scratch)

	for k := range p.n {
		dst[2*k*stride] = p.stage[2*k]
		dst[2*k*stride+1] = p.stage[2*k+1]
	}

	return nil
}

func (p *Plan[T]) validateStridedSlices(dst, src []T, stride int, kind Kind) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if stride < 1 {
		return ErrInvalidStride
	}

	maxInt := int(^uint(0) >> 1)
	maxIndex := p.n - 1

	if maxIndex > 0 && maxIndex > (maxInt/2-2)/stride {
		return ErrInvalidStride
	}

	// Last element touched is the imaginary part of the last sample.
	requiredDst := 2*maxIndex*stride + 2

	requiredSrc := requiredDst
	if kind.RealInput() {
		requiredSrc = maxIndex*stride + 1
	}

	if len(dst) < requiredDst || len(src) < requiredSrc {
		return ErrLengthMismatch
	}

	return nil
}
