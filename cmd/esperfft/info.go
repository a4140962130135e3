package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	esperfft "github.com/CdrSonan/esper-fft"
	"github.com/CdrSonan/esper-fft/internal/cpu"
	m "github.com/CdrSonan/esper-fft/internal/math"
)

func newInfoCmd(_ *app) *cobra.Command {
	var sizes []int

	cmd := &cobra.Command{
		Use:   "info",
		Short: "Show CPU features and how lengths decompose",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			out := cmd.OutOrStdout()

			features := cpu.DetectFeatures()
			fmt.Fprintf(out, "cpu: %s, %d logical cores\n\n", features, features.NumCPU)

			w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "N\tTOP\tDECOMPOSITION\tSCRATCH\tMUL-ADDS")

			for _, n := range sizes {
				plan, err := esperfft.NewPlan32(n)
				if err != nil {
					return fmt.Errorf("n=%d: %w", n, err)
				}

				fmt.Fprintf(w, "%d\t%s\t%s\t%d\t%d\n", n, plan.Strategy(), plan.Algorithm(), m.ScratchLen(n), m.DirectOps(n))
			}

			return w.Flush()
		},
	}

	cmd.Flags().IntSliceVar(&sizes, "n", []int{1, 3, 4, 27, 60, 97, 1000, 1024}, "lengths to describe")

	return cmd
}
