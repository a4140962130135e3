package math

import "github.com/CdrSonan/esper-fft/internal/fftypes"

// Float is a type alias for the sample scalar constraint.
// The canonical definition is in internal/fftypes.
type Float = fftypes.Float
