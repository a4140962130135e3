package esperfft

// Forward returns the forward transform of the n complex samples in x.
// x holds 2n interleaved scalars; the result is newly allocated and owned by
// the caller.
func Forward[T Float](x []T, n int) ([]T, error) {
	return transformAlloc(x, n, KindForward)
}

// Inverse returns the inverse transform of the n complex samples in x,
// divided by n.
func Inverse[T Float](x []T, n int) ([]T, error) {
	return transformAlloc(x, n, KindInverse)
}

// RealForward returns the transform of n real samples as 2n interleaved
// scalars. It rotates in the inverse direction and does not scale.
func RealForward[T Float](x []T, n int) ([]T, error) {
	return transformAlloc(x, n, KindRealForward)
}

// RealInverse returns the transform of n real samples as 2n interleaved
// scalars. It rotates in the forward direction and divides by n.
func RealInverse[T Float](x []T, n int) ([]T, error) {
	return transformAlloc(x, n, KindRealInverse)
}

// TransformKind dispatches to one of the four transforms by kind.
func TransformKind[T Float](x []T, n int, kind Kind) ([]T, error) {
	return transformAlloc(x, n, kind)
}

func transformAlloc[T Float](x []T, n int, kind Kind) ([]T, error) {
	plan, err := NewPlan[T](n)
	if err != nil {
		return nil, err
	}

	dst := make([]T, 2*n)

	err = plan.Transform(dst, x, kind)
	if err != nil {
		return nil, err
	}

	return dst, nil
}
