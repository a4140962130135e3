package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	esperfft "github.com/CdrSonan/esper-fft"
	"github.com/CdrSonan/esper-fft/internal/logging"
)

type transformOptions struct {
	kind string
	n    int
}

func newTransformCmd(a *app) *cobra.Command {
	opts := &transformOptions{}

	cmd := &cobra.Command{
		Use:   "transform [values...]",
		Short: "Transform numbers given as arguments or on stdin",
		Long: `Transform a sequence of numbers and print one "re im" pair per line.

Complex kinds read interleaved real/imaginary pairs; real kinds read one value
per sample. Without arguments the values are read from stdin, separated by
whitespace or commas.

With --n smaller than the input, the input is split into frames of n samples
that are transformed concurrently (see --workers); frames are separated by a
blank line.

Examples:
  esperfft transform 1 0 0 0 0 0 0 0
  esperfft transform --kind real-forward 0 1 0
  seq 0 95 | esperfft transform --kind rfft --n 32`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runTransform(cmd, opts, args)
		},
	}

	cmd.Flags().StringVarP(&opts.kind, "kind", "k", "forward", "forward, inverse, real-forward or real-inverse")
	cmd.Flags().IntVar(&opts.n, "n", 0, "samples per frame (0 = whole input)")

	return cmd
}

func (a *app) runTransform(cmd *cobra.Command, opts *transformOptions, args []string) error {
	kind, err := esperfft.ParseKind(opts.kind)
	if err != nil {
		return err
	}

	var values []float64
	if len(args) > 0 {
		values, err = parseValues(strings.Join(args, " "))
	} else {
		values, err = readValues(cmd.InOrStdin())
	}

	if err != nil {
		return err
	}

	perSample := 2
	if kind.RealInput() {
		perSample = 1
	}

	if len(values) == 0 || len(values)%perSample != 0 {
		return fmt.Errorf("%s needs a non-empty multiple of %d values, got %d", kind, perSample, len(values))
	}

	n := opts.n
	if n == 0 {
		n = len(values) / perSample
	}

	frameLen := n * perSample
	if n < 1 || len(values)%frameLen != 0 {
		return fmt.Errorf("%d values do not split into frames of %d samples", len(values), n)
	}

	a.logger.Debug("transform",
		logging.String("kind", kind.String()),
		logging.Int("n", n),
		logging.Int("frames", len(values)/frameLen),
	)

	if a.cfg.Precision == 64 {
		return transformFrames(cmd, a, kind, n, values)
	}

	return transformFrames(cmd, a, kind, n, toFloat32(values))
}

func transformFrames[T esperfft.Float](cmd *cobra.Command, a *app, kind esperfft.Kind, n int, values []T) error {
	frameLen := n
	if !kind.RealInput() {
		frameLen = 2 * n
	}

	frames := make([][]T, 0, len(values)/frameLen)
	for off := 0; off < len(values); off += frameLen {
		frames = append(frames, values[off:off+frameLen])
	}

	out, err := esperfft.TransformFrames(cmd.Context(), kind, n, frames, a.cfg.Workers)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(cmd.OutOrStdout())

	for i, frame := range out {
		if i > 0 {
			fmt.Fprintln(w)
		}

		for k := range n {
			fmt.Fprintf(w, "%s %s\n", formatValue(frame[2*k]), formatValue(frame[2*k+1]))
		}
	}

	return w.Flush()
}

func formatValue[T esperfft.Float](v T) string {
	var zero T
	if _, ok := any(zero).(float32); ok {
		return strconv.FormatFloat(float64(v), 'g', -1, 32)
	}

	return strconv.FormatFloat(float64(v), 'g', -1, 64)
}

func readValues(r io.Reader) ([]float64, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read input: %w", err)
	}

	return parseValues(string(data))
}

func parseValues(s string) ([]float64, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})

	values := make([]float64, 0, len(fields))
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid value %q: %w", f, err)
		}

		values = append(values, v)
	}

	return values, nil
}

func toFloat32(x []float64) []float32 {
	out := make([]float32, len(x))
	for i, v := range x {
		out[i] = float32(v)
	}

	return out
}
