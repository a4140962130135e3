package fft

import m "github.com/CdrSonan/esper-fft/internal/math"

// radix3 combines three third-length transforms a, b, c. With b and c
// rotated by w^k and w^2k and u = exp(i*sign*2*pi/3):
//
//	out[k]       = a + b + c
//	out[k+n/3]   = a + u*b + u^2*c
//	out[k+2n/3]  = a + u^2*b + u*c
//
// u and u^2 are -1/2 +- i*sign*sqrt(3)/2, so both rotated outputs share the
// term a - (b+c)/2 and differ in the sign of i*sign*sqrt(3)/2*(b-c).
func radix3[T Float](dst []T, in Input[T], v View, sign Sign, scratch []T) {
	n := v.N
	third := n / 3

	children := scratch[:2*n]
	rest := scratch[2*n:]

	a := children[:2*third]
	b := children[2*third : 4*third]
	c := children[4*third:]

	Recurse(a, in, v.Split(3, 0), sign, rest)
	Recurse(b, in, v.Split(3, 1), sign, rest)
	Recurse(c, in, v.Split(3, 2), sign, rest)

	h := T(float64(sign) * m.HalfSqrt3)

	for k := range third {
		w1r, w1i := twiddle[T](k, n, sign)
		w2r, w2i := twiddle[T](2*k, n, sign)

		br := w1r*b[2*k] - w1i*b[2*k+1]
		bi := w1r*b[2*k+1] + w1i*b[2*k]
		cr := w2r*c[2*k] - w2i*c[2*k+1]
		ci := w2r*c[2*k+1] + w2i*c[2*k]

		ar, ai := a[2*k], a[2*k+1]

		sr, si := br+cr, bi+ci
		dr, di := br-cr, bi-ci

		mr := ar - sr/2
		mi := ai - si/2

		// i*h*(b-c)
		rr := -h * di
		ri := h * dr

		dst[2*k] = ar + sr
		dst[2*k+1] = ai + si
		dst[2*(k+third)] = mr + rr
		dst[2*(k+third)+1] = mi + ri
		dst[2*(k+2*third)] = mr - rr
		dst[2*(k+2*third)+1] = mi - ri
	}
}
