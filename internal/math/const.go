package math

import "math"

// Mathematical constants for FFT computations.

// TwoPi is 2*pi with full float64 precision.
const TwoPi = 2.0 * math.Pi

// HalfSqrt3 is sqrt(3)/2, the magnitude of the imaginary part of the
// primitive cube roots of unity.
const HalfSqrt3 = 0.86602540378443864676372317075293618347140262690519
