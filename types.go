package esperfft

import "github.com/CdrSonan/esper-fft/internal/fftypes"

// Float is a type constraint for the scalar type of sample buffers.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float

// Kind selects one of the four transforms.
type Kind = fftypes.Kind

// Strategy names how the engine computes one level of a transform.
type Strategy = fftypes.Strategy

// Transform kinds.
const (
	KindForward     = fftypes.KindForward
	KindInverse     = fftypes.KindInverse
	KindRealForward = fftypes.KindRealForward
	KindRealInverse = fftypes.KindRealInverse
)

// Strategies.
const (
	StrategyLeaf   = fftypes.StrategyLeaf
	StrategyRadix2 = fftypes.StrategyRadix2
	StrategyRadix3 = fftypes.StrategyRadix3
	StrategyDirect = fftypes.StrategyDirect
)

// ParseKind converts a kind name ("forward", "inverse", "real-forward",
// "real-inverse" or fft/ifft/rfft/irfft) into a Kind.
func ParseKind(s string) (Kind, error) {
	return fftypes.ParseKind(s)
}
