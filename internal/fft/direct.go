package fft

import "math"

// Direct computes the transform of the samples selected by v by explicit
// summation, out[i] = sum_j x[j] * exp(i*sign*2*pi*i*j/n). It accumulates in
// float64 and costs O(n^2). It uses the same rotation direction as the radix
// combiners so its results compose with them.
func Direct[T Float](dst []T, in Input[T], v View, sign Sign) {
	n := v.N
	step := float64(sign) * 2 * math.Pi / float64(n)

	for i := range n {
		var accRe, accIm float64

		for j := range n {
			xr, xi := in.At(v.Index(j))

			s, c := math.Sincos(step * float64((i*j)%n))
			accRe += float64(xr)*c - float64(xi)*s
			accIm += float64(xr)*s + float64(xi)*c
		}

		dst[2*i] = T(accRe)
		dst[2*i+1] = T(accIm)
	}
}

// DirectTransform is the top-level direct summation for a kind. It is the
// reference the radix paths are checked against.
func DirectTransform[T Float](dst, src []T, n int, sign Sign, realInput bool) {
	Direct(dst, Input[T]{Data: src, Real: realInput}, Top(n), sign)
}
