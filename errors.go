package esperfft

import "errors"

// Sentinel errors returned by transform functions and plans.
var (
	// ErrInvalidLength is returned when the transform length is less than 1.
	ErrInvalidLength = errors.New("esperfft: invalid transform length")

	// ErrNilSlice is returned when a nil slice is passed to a transform method.
	ErrNilSlice = errors.New("esperfft: nil slice")

	// ErrLengthMismatch is returned when input/output slices are shorter than
	// the transform requires: 2n scalars per complex buffer, n per real input.
	ErrLengthMismatch = errors.New("esperfft: slice length mismatch")

	// ErrInvalidStride is returned when a stride parameter is invalid
	// for the given data layout (e.g., stride < 1 or index overflow).
	ErrInvalidStride = errors.New("esperfft: invalid stride")

	// ErrInvalidCount is returned when a batch count is negative.
	ErrInvalidCount = errors.New("esperfft: invalid batch count")

	// ErrOverlap is returned by batch transforms when dst and src share
	// memory other than an exact in-place complex batch.
	ErrOverlap = errors.New("esperfft: overlapping buffers")
)
