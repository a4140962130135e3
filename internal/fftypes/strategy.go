package fftypes

import (
	"fmt"
	"strings"
)

// Strategy identifies how the engine computes one sub-problem.
type Strategy uint8

const (
	StrategyLeaf   Strategy = iota // n == 1, sample copied through
	StrategyRadix2                 // even n, two half-length sub-problems
	StrategyRadix3                 // n divisible by 3, three third-length sub-problems
	StrategyDirect                 // O(n^2) summation for lengths coprime to 6
)

// String returns a human-readable name for the strategy.
func (s Strategy) String() string {
	switch s {
	case StrategyLeaf:
		return "leaf"
	case StrategyRadix2:
		return "radix-2"
	case StrategyRadix3:
		return "radix-3"
	case StrategyDirect:
		return "direct"
	default:
		return "unknown"
	}
}

// Radix returns the split factor of the strategy, or 0 for strategies that do
// not recurse.
func (s Strategy) Radix() int {
	switch s {
	case StrategyRadix2:
		return 2
	case StrategyRadix3:
		return 3
	default:
		return 0
	}
}

// Kind selects one of the four public transforms.
type Kind uint8

const (
	KindForward     Kind = iota // complex input, sign +1
	KindInverse                 // complex input, sign -1, scaled by 1/n
	KindRealForward             // real input, sign -1
	KindRealInverse             // real input, sign +1, scaled by 1/n
)

var kindNames = [...]string{
	KindForward:     "forward",
	KindInverse:     "inverse",
	KindRealForward: "real-forward",
	KindRealInverse: "real-inverse",
}

// String returns the canonical name used by the CLI and case files.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}

	return "unknown"
}

// Sign returns the rotation direction used by the kind.
func (k Kind) Sign() int {
	switch k {
	case KindForward, KindRealInverse:
		return 1
	default:
		return -1
	}
}

// RealInput reports whether the kind reads one real value per sample.
func (k Kind) RealInput() bool {
	return k == KindRealForward || k == KindRealInverse
}

// Normalized reports whether the kind divides its output by n.
func (k Kind) Normalized() bool {
	return k == KindInverse || k == KindRealInverse
}

// ParseKind converts a kind name back into a Kind. Matching is case-insensitive
// and accepts the short aliases fft, ifft, rfft and irfft.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "forward", "fft":
		return KindForward, nil
	case "inverse", "ifft":
		return KindInverse, nil
	case "real-forward", "rfft":
		return KindRealForward, nil
	case "real-inverse", "irfft":
		return KindRealInverse, nil
	default:
		return 0, fmt.Errorf("unknown transform kind %q", s)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *Kind) UnmarshalText(text []byte) error {
	parsed, err := ParseKind(string(text))
	if err != nil {
		return err
	}

	*k = parsed

	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
