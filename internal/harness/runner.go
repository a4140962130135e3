package harness

import (
	"context"
	"errors"
	"fmt"
	"time"

	esperfft "github.com/CdrSonan/esper-fft"
	"github.com/CdrSonan/esper-fft/internal/fft"
	"github.com/CdrSonan/esper-fft/internal/fftypes"
	"github.com/CdrSonan/esper-fft/internal/logging"
)

// DefaultTolerance applies when a non-exact case leaves Tolerance at zero.
const DefaultTolerance = 1e-5

// MismatchError reports the first element of a case outside tolerance.
type MismatchError struct {
	Case  string
	Index int
	Got   float64
	Want  float64
}

func (e *MismatchError) Error() string {
	return fmt.Sprintf("case %q: expected %g at index %d, got %g", e.Case, e.Want, e.Index, e.Got)
}

// Result is the outcome of one case.
type Result struct {
	Case     string
	Kind     fftypes.Kind
	N        int
	Mismatch Mismatch
	Elapsed  time.Duration
}

// Passed reports whether the case matched.
func (r Result) Passed() bool {
	return r.Mismatch.OK()
}

// Err returns a *MismatchError for a failed case, nil otherwise.
func (r Result) Err() error {
	if r.Passed() {
		return nil
	}

	return &MismatchError{Case: r.Case, Index: r.Mismatch.Index, Got: r.Mismatch.Got, Want: r.Mismatch.Want}
}

// Report collects the results of a run.
type Report struct {
	Results []Result
}

// Failed returns the number of failed cases.
func (r Report) Failed() int {
	failed := 0

	for _, res := range r.Results {
		if !res.Passed() {
			failed++
		}
	}

	return failed
}

// Err joins the mismatch errors of every failed case.
func (r Report) Err() error {
	var errs []error
	for _, res := range r.Results {
		if err := res.Err(); err != nil {
			errs = append(errs, err)
		}
	}

	return errors.Join(errs...)
}

// Runner executes cases at one precision.
type Runner struct {
	// Precision is 32 or 64; anything else is treated as 32.
	Precision int
	Logger    logging.Logger
}

// NewRunner creates a Runner. A nil logger discards output.
func NewRunner(precision int, logger logging.Logger) *Runner {
	if logger == nil {
		logger = logging.Nop()
	}

	return &Runner{Precision: precision, Logger: logger}
}

// Run executes cases in order, stopping early only when ctx is done.
// Mismatches are reported in the Report, not as the returned error.
func (r *Runner) Run(ctx context.Context, cases []Case) (Report, error) {
	var report Report

	for _, c := range cases {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		res, err := r.RunCase(c)
		if err != nil {
			return report, err
		}

		report.Results = append(report.Results, res)
		r.log(res)
	}

	return report, nil
}

// RunCase executes one case.
func (r *Runner) RunCase(c Case) (Result, error) {
	if err := c.Validate(); err != nil {
		return Result{}, err
	}

	if r.Precision == 64 {
		return runCase[float64](c)
	}

	return runCase[float32](c)
}

func (r *Runner) log(res Result) {
	fields := []logging.Field{
		logging.String("case", res.Case),
		logging.String("kind", res.Kind.String()),
		logging.Int("n", res.N),
		logging.Float64("max_error", res.Mismatch.MaxError),
		logging.Duration("elapsed", res.Elapsed),
	}

	if res.Passed() {
		r.Logger.Info("case passed", fields...)
		return
	}

	r.Logger.Error("case failed", res.Err(), append(fields, logging.Int("index", res.Mismatch.Index))...)
}

func runCase[T fftypes.Float](c Case) (Result, error) {
	input := convert[T](c.Samples())

	start := time.Now()

	got, err := esperfft.TransformKind(input, c.N, c.Kind)
	if err != nil {
		return Result{}, fmt.Errorf("case %q: %w", c.Name, err)
	}

	var want []float64

	switch c.Reference {
	case ReferenceLiteral:
		want = c.Expected
	case ReferenceDirect:
		ref := make([]T, 2*c.N)
		fft.DirectTransform(ref, input, c.N, fft.SignOf(c.Kind), c.Kind.RealInput())

		if c.Kind.Normalized() {
			fft.Normalize(ref, c.N)
		}

		want = widen(ref)
	case ReferenceRoundTrip:
		back, err := esperfft.TransformKind(got, c.N, opposite(c.Kind))
		if err != nil {
			return Result{}, fmt.Errorf("case %q: %w", c.Name, err)
		}

		got = back
		want = widen(input)
	}

	elapsed := time.Since(start)

	tol := c.Tolerance
	if tol == 0 && !c.Exact {
		tol = DefaultTolerance
	}

	return Result{
		Case:     c.Name,
		Kind:     c.Kind,
		N:        c.N,
		Mismatch: Compare(widen(got), want, tol, c.Exact),
		Elapsed:  elapsed,
	}, nil
}

func opposite(kind fftypes.Kind) fftypes.Kind {
	if kind == fftypes.KindInverse {
		return fftypes.KindForward
	}

	return fftypes.KindInverse
}

func convert[T fftypes.Float](x []float64) []T {
	out := make([]T, len(x))
	for i, v := range x {
		out[i] = T(v)
	}

	return out
}

func widen[T fftypes.Float](x []T) []float64 {
	out := make([]float64, len(x))
	for i, v := range x {
		out[i] = float64(v)
	}

	return out
}
