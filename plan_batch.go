package esperfft

// ForwardBatch transforms count contiguous frames of n complex samples.
// Frame i is read from src[i*2n:(i+1)*2n] and written to the same range of dst.
func (p *Plan[T]) ForwardBatch(dst, src []T, count int) error {
	return p.TransformBatch(dst, src, count, KindForward)
}

// InverseBatch is the inverse counterpart of ForwardBatch.
func (p *Plan[T]) InverseBatch(dst, src []T, count int) error {
	return p.TransformBatch(dst, src, count, KindInverse)
}

// TransformBatch transforms count contiguous frames with the given kind.
// Real-input frames occupy n scalars each; output frames always occupy 2n.
// Frames are processed sequentially with the plan's scratch.
//
// Returns ErrNilSlice if dst or src is nil.
// Returns ErrInvalidCount if count < 0.
// Returns ErrLengthMismatch if the slices do not hold count frames.
// Returns ErrOverlap when dst and src share memory, unless a complex batch
// runs exactly in place (dst and src start at the same element).
func (p *Plan[T]) TransformBatch(dst, src []T, count int, kind Kind) error {
	if dst == nil || src == nil {
		return ErrNilSlice
	}

	if count < 0 {
		return ErrInvalidCount
	}

	if overlaps(dst, src) && (kind.RealInput() || &dst[0] != &src[0]) {
		return ErrOverlap
	}

	inFrame := inputLen(p.n, kind)
	outFrame := 2 * p.n

	if len(dst) < count*outFrame || len(src) < count*inFrame {
		return ErrLengthMismatch
	}

	for i := range count {
		err := p.Transform(dst[i*outFrame:(i+1)*outFrame], src[i*inFrame:(i+1)*inFrame], kind)
		if err != nil {
			return err
		}
	}

	return nil
}
