package harness

import "math"

// Mismatch describes the comparison of two arrays.
type Mismatch struct {
	// Index is the first index outside tolerance, or -1.
	Index int
	Got   float64
	Want  float64
	// MaxError is the largest absolute difference over all indices. In exact
	// mode it is informational only; any nonzero difference fails.
	MaxError float64
}

// OK reports whether every element matched.
func (m Mismatch) OK() bool {
	return m.Index < 0
}

// Compare checks got against want element-wise, either exactly or within an
// absolute tolerance. Arrays of different length mismatch at the first index
// past the shorter one.
func Compare(got, want []float64, tol float64, exact bool) Mismatch {
	res := Mismatch{Index: -1}

	n := min(len(got), len(want))
	for i := range n {
		d := math.Abs(got[i] - want[i])
		if d > res.MaxError || math.IsNaN(d) {
			res.MaxError = d
		}

		bad := d > tol || math.IsNaN(d)
		if exact {
			bad = got[i] != want[i]
		}

		if bad && res.Index < 0 {
			res.Index, res.Got, res.Want = i, got[i], want[i]
		}
	}

	if len(got) != len(want) && res.Index < 0 {
		res.Index = n
		res.MaxError = math.Inf(1)

		if n < len(got) {
			res.Got = got[n]
		}

		if n < len(want) {
			res.Want = want[n]
		}
	}

	return res
}
