package main

import (
	"context"
	"fmt"
	"math/rand/v2"
	"runtime"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	esperfft "github.com/CdrSonan/esper-fft"
	"github.com/CdrSonan/esper-fft/internal/cpu"
	"github.com/CdrSonan/esper-fft/internal/logging"
)

type benchOptions struct {
	sizes  string
	iters  int
	warmup int
	seed   uint64
	kind   string
	frames int
}

type benchResult struct {
	size      int
	algorithm string
	nsPerOp   float64
	framesSec float64
}

func newBenchCmd(a *app) *cobra.Command {
	opts := &benchOptions{}

	cmd := &cobra.Command{
		Use:   "bench",
		Short: "Time transforms per length",
		Long: `Time one plan per length and print ns/op next to the decomposition.

With --frames, also transform that many independent frames concurrently
(see --workers) and report frames per second.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runBench(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.sizes, "sizes", "64,96,100,127,1024,1000,4096", "comma-separated sizes")
	cmd.Flags().IntVar(&opts.iters, "iters", 50, "benchmark iterations")
	cmd.Flags().IntVar(&opts.warmup, "warmup", 5, "warmup iterations")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 1, "rng seed")
	cmd.Flags().StringVar(&opts.kind, "kind", "forward", "transform kind")
	cmd.Flags().IntVar(&opts.frames, "frames", 0, "concurrent frames per size (0 = skip)")

	return cmd
}

func (a *app) runBench(cmd *cobra.Command, opts *benchOptions) error {
	sizes := parseSizes(opts.sizes)
	if len(sizes) == 0 {
		return fmt.Errorf("no valid sizes in %q", opts.sizes)
	}

	kind, err := esperfft.ParseKind(opts.kind)
	if err != nil {
		return err
	}

	if opts.iters < 1 || opts.warmup < 0 {
		return fmt.Errorf("iters must be >= 1 and warmup >= 0")
	}

	a.logger.Info("benchmark starting",
		logging.String("cpu", cpu.DetectFeatures().String()),
		logging.Int("precision", a.cfg.Precision),
		logging.Int("iters", opts.iters),
		logging.Int("warmup", opts.warmup),
	)

	rnd := rand.New(rand.NewPCG(opts.seed, opts.seed))

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', tabwriter.AlignRight)
	fmt.Fprintf(w, "size\tkind\talgorithm\tns/op\tframes/s\t\n")

	for _, n := range sizes {
		var res benchResult

		if a.cfg.Precision == 64 {
			res, err = benchmarkSize[float64](cmd.Context(), rnd, n, kind, opts, a.cfg.Workers)
		} else {
			res, err = benchmarkSize[float32](cmd.Context(), rnd, n, kind, opts, a.cfg.Workers)
		}

		if err != nil {
			return fmt.Errorf("size %d: %w", n, err)
		}

		frames := "-"
		if opts.frames > 0 {
			frames = fmt.Sprintf("%.0f", res.framesSec)
		}

		fmt.Fprintf(w, "%d\t%s\t%s\t%.1f\t%s\t\n", res.size, kind, res.algorithm, res.nsPerOp, frames)
	}

	return w.Flush()
}

func benchmarkSize[T esperfft.Float](ctx context.Context, rnd *rand.Rand, n int, kind esperfft.Kind, opts *benchOptions, workers int) (benchResult, error) {
	plan, err := esperfft.NewPlan[T](n)
	if err != nil {
		return benchResult{}, err
	}

	inLen := 2 * n
	if kind.RealInput() {
		inLen = n
	}

	src := make([]T, inLen)
	for i := range src {
		src[i] = T(rnd.Float64()*2 - 1)
	}

	dst := make([]T, 2*n)

	for range opts.warmup {
		if err := plan.Transform(dst, src, kind); err != nil {
			return benchResult{}, err
		}
	}

	runtime.GC()

	start := time.Now()

	for range opts.iters {
		if err := plan.Transform(dst, src, kind); err != nil {
			return benchResult{}, err
		}
	}

	elapsed := time.Since(start)

	res := benchResult{
		size:      n,
		algorithm: plan.Algorithm(),
		nsPerOp:   float64(elapsed.Nanoseconds()) / float64(opts.iters),
	}

	if opts.frames > 0 {
		frames := make([][]T, opts.frames)
		for i := range frames {
			frames[i] = src
		}

		start = time.Now()

		if _, err := esperfft.TransformFrames(ctx, kind, n, frames, workers); err != nil {
			return benchResult{}, err
		}

		res.framesSec = float64(opts.frames) / time.Since(start).Seconds()
	}

	return res, nil
}

func parseSizes(list string) []int {
	parts := strings.Split(list, ",")

	out := make([]int, 0, len(parts))
	for _, part := range parts {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		var n int

		_, err := fmt.Sscanf(part, "%d", &n)
		if err != nil || n <= 0 {
			continue
		}

		out = append(out, n)
	}

	return out
}
