// Package harness checks the transforms against fixed expectations.
//
// A Case names one transform invocation and how to judge it: against a
// literal expected array, against the direct summation of the same input,
// or by a forward/inverse round trip. Results report the first mismatching
// index.
package harness

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"

	"gopkg.in/yaml.v3"

	"github.com/CdrSonan/esper-fft/internal/fftypes"
)

// Reference selects what a case compares against when Expected is empty.
type Reference string

const (
	// ReferenceLiteral compares against Case.Expected.
	ReferenceLiteral Reference = ""
	// ReferenceDirect compares against the top-level direct summation.
	ReferenceDirect Reference = "direct"
	// ReferenceRoundTrip applies the opposite transform and compares with the input.
	ReferenceRoundTrip Reference = "roundtrip"
)

// ErrInvalidCase wraps every case validation failure.
var ErrInvalidCase = errors.New("harness: invalid case")

// Case is one check.
type Case struct {
	Name      string       `yaml:"name"`
	Kind      fftypes.Kind `yaml:"kind"`
	N         int          `yaml:"n"`
	Input     []float64    `yaml:"input,omitempty"`
	Seed      uint64       `yaml:"seed,omitempty"`
	Expected  []float64    `yaml:"expected,omitempty"`
	Reference Reference    `yaml:"reference,omitempty"`
	Tolerance float64      `yaml:"tolerance,omitempty"`
	Exact     bool         `yaml:"exact,omitempty"`
}

// Suite is the top-level layout of a case file.
type Suite struct {
	Cases []Case `yaml:"cases"`
}

//go:embed cases/default.yaml
var defaultSuite []byte

// Default returns the built-in cases.
func Default() ([]Case, error) {
	return Load(bytes.NewReader(defaultSuite))
}

// Load parses and validates a YAML case file.
func Load(r io.Reader) ([]Case, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var suite Suite
	if err := dec.Decode(&suite); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}

		return nil, fmt.Errorf("harness: parse cases: %w", err)
	}

	for i := range suite.Cases {
		if err := suite.Cases[i].Validate(); err != nil {
			return nil, fmt.Errorf("case %d: %w", i, err)
		}
	}

	return suite.Cases, nil
}

// InputLen returns the number of scalars the case's input occupies.
func (c Case) InputLen() int {
	if c.Kind.RealInput() {
		return c.N
	}

	return 2 * c.N
}

// Validate checks that the case is runnable.
func (c Case) Validate() error {
	switch {
	case c.Name == "":
		return fmt.Errorf("%w: missing name", ErrInvalidCase)
	case c.N < 1:
		return fmt.Errorf("%w: %s: n must be >= 1, got %d", ErrInvalidCase, c.Name, c.N)
	case len(c.Input) != 0 && len(c.Input) != c.InputLen():
		return fmt.Errorf("%w: %s: input has %d values, want %d", ErrInvalidCase, c.Name, len(c.Input), c.InputLen())
	case c.Tolerance < 0:
		return fmt.Errorf("%w: %s: negative tolerance", ErrInvalidCase, c.Name)
	}

	switch c.Reference {
	case ReferenceLiteral:
		if len(c.Expected) != 2*c.N {
			return fmt.Errorf("%w: %s: expected has %d values, want %d", ErrInvalidCase, c.Name, len(c.Expected), 2*c.N)
		}
	case ReferenceDirect:
	case ReferenceRoundTrip:
		if c.Kind.RealInput() {
			return fmt.Errorf("%w: %s: round trip needs a complex kind", ErrInvalidCase, c.Name)
		}
	default:
		return fmt.Errorf("%w: %s: unknown reference %q", ErrInvalidCase, c.Name, c.Reference)
	}

	if c.Reference != ReferenceLiteral && len(c.Expected) != 0 {
		return fmt.Errorf("%w: %s: expected values given with reference %q", ErrInvalidCase, c.Name, c.Reference)
	}

	return nil
}

// Samples returns the case input, generating uniform values in [-1, 1] from
// Seed when no literal input is given.
func (c Case) Samples() []float64 {
	if len(c.Input) != 0 {
		return append([]float64(nil), c.Input...)
	}

	rng := rand.New(rand.NewPCG(c.Seed, c.Seed^0x2545f4914f6cdd1d))

	out := make([]float64, c.InputLen())
	for i := range out {
		out[i] = rng.Float64()*2 - 1
	}

	return out
}
