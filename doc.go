// Package esperfft computes discrete Fourier transforms of arbitrary length
// over interleaved sample buffers.
//
// A complex sequence of n samples is stored as 2n scalars: element 2k holds
// the real part and element 2k+1 the imaginary part of sample k. Real input
// for the real-input transforms is stored as n scalars.
//
// The engine splits a length recursively by 2 and by 3 (Cooley-Tukey
// decimation in time) and computes any residual length coprime to 6 by direct
// summation. Lengths are not restricted to powers of two.
//
// Sign convention: Forward computes X[k] = sum_j x[j] * exp(+2*pi*i*j*k/n)
// and Inverse uses the negative rotation scaled by 1/n, so
// Inverse(Forward(x)) == x. RealForward uses the negative rotation without
// scaling and RealInverse the positive rotation scaled by 1/n.
//
// Example:
//
//	spectrum, err := esperfft.Forward([]float32{1, 0, 0, 0, 0, 0, 0, 0}, 4)
//	// spectrum == [1 0 1 0 1 0 1 0]
//
// For repeated transforms of one length, NewPlan reuses a single scratch
// buffer across calls.
package esperfft
