package fft

// radix2 combines the even and odd half-length transforms with the
// decimation-in-time butterfly:
//
//	out[i]     = even[i] + w^i * odd[i]
//	out[i+n/2] = even[i] - w^i * odd[i]
func radix2[T Float](dst []T, in Input[T], v View, sign Sign, scratch []T) {
	n := v.N
	half := n / 2

	children := scratch[:2*n]
	rest := scratch[2*n:]

	even := children[:2*half]
	odd := children[2*half:]

	Recurse(even, in, v.Split(2, 0), sign, rest)
	Recurse(odd, in, v.Split(2, 1), sign, rest)

	for i := range half {
		wr, wi := twiddle[T](i, n, sign)

		or := wr*odd[2*i] - wi*odd[2*i+1]
		oi := wr*odd[2*i+1] + wi*odd[2*i]

		er, ei := even[2*i], even[2*i+1]

		dst[2*i] = er + or
		dst[2*i+1] = ei + oi
		dst[2*(i+half)] = er - or
		dst[2*(i+half)+1] = ei - oi
	}
}
