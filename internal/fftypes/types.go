package fftypes

// Float is a type constraint for the scalar type of interleaved sample buffers.
// Each complex sample occupies two consecutive elements: real, then imaginary.
type Float interface {
	~float32 | ~float64
}
