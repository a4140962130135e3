package math

import (
	"fmt"
	"strings"

	"github.com/CdrSonan/esper-fft/internal/fftypes"
)

// ChooseStrategy selects how a sub-problem of length n is computed.
// The choice depends only on n mod 2 and n mod 3; radix-2 wins when both apply.
// n must be >= 1.
func ChooseStrategy(n int) fftypes.Strategy {
	switch {
	case n == 1:
		return fftypes.StrategyLeaf
	case n%2 == 0:
		return fftypes.StrategyRadix2
	case n%3 == 0:
		return fftypes.StrategyRadix3
	default:
		return fftypes.StrategyDirect
	}
}

// Decomposition is the chain of strategies the engine walks for one length.
type Decomposition struct {
	// Radices lists the radix-2 and radix-3 splits from the top level down.
	Radices []int
	// Residual is the length handled by the final leaf or direct summation.
	Residual int
}

// Decompose returns the split schedule the recursion follows for n.
// Every branch of the recursion tree follows the same schedule, because all
// siblings at one level share a length.
func Decompose(n int) Decomposition {
	if n < 1 {
		return Decomposition{}
	}

	var radices []int

	for {
		r := ChooseStrategy(n).Radix()
		if r == 0 {
			break
		}

		radices = append(radices, r)
		n /= r
	}

	return Decomposition{Radices: radices, Residual: n}
}

// Strategy returns the strategy of the last level of the schedule.
func (d Decomposition) Strategy() fftypes.Strategy {
	if d.Residual == 1 {
		return fftypes.StrategyLeaf
	}

	return fftypes.StrategyDirect
}

// String renders the schedule, e.g. "2x2x3 + direct(5)".
func (d Decomposition) String() string {
	var b strings.Builder

	for i, r := range d.Radices {
		if i > 0 {
			b.WriteByte('x')
		}

		fmt.Fprintf(&b, "%d", r)
	}

	if d.Residual > 1 {
		if b.Len() > 0 {
			b.WriteString(" + ")
		}

		fmt.Fprintf(&b, "direct(%d)", d.Residual)
	}

	if b.Len() == 0 {
		return "identity"
	}

	return b.String()
}

// ScratchLen returns the number of scalars of scratch space the recursion
// needs for a transform of length n. Each radix level holds its children's
// results (2n scalars) while the children use the remainder.
func ScratchLen(n int) int {
	total := 0

	for {
		r := ChooseStrategy(n).Radix()
		if r == 0 {
			return total
		}

		total += 2 * n
		n /= r
	}
}

// DirectOps estimates the complex multiply-adds of a transform of length n,
// counting n*(r-1) per radix-r level and residual^2 per direct leaf.
func DirectOps(n int) int {
	d := Decompose(n)
	ops := 0

	for _, r := range d.Radices {
		ops += n * (r - 1)
	}

	if d.Residual > 1 {
		ops += (n / d.Residual) * d.Residual * d.Residual
	}

	return ops
}
