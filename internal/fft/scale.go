package fft

// Normalize divides every scalar of dst by n.
func Normalize[T Float](dst []T, n int) {
	if n == 1 {
		return
	}

	div := T(n)
	for i := range dst {
		dst[i] /= div
	}
}
