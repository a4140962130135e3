package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/CdrSonan/esper-fft/internal/harness"
)

func newCheckCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check",
		Short: "Run the transform checks",
		Long: `Run a suite of transform checks and report the first mismatching index
of every failing case.

Without --cases the built-in suite is used: the impulse, shifted-impulse and
length-3 literals, direct-summation cross-checks over mixed lengths and
forward/inverse round trips.

Example case file (cases.yaml):

  cases:
    - name: impulse
      kind: forward
      n: 4
      input: [1, 0, 0, 0, 0, 0, 0, 0]
      expected: [1, 0, 1, 0, 1, 0, 1, 0]
      exact: true
    - name: mixed length
      kind: forward
      n: 60
      seed: 2
      reference: direct
      tolerance: 1.0e-3`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.runCheck(cmd)
		},
	}

	cmd.Flags().StringVar(&a.cfg.CaseFile, "cases", "", "YAML case file (default: built-in suite)")

	return cmd
}

func (a *app) runCheck(cmd *cobra.Command) error {
	cases, err := a.loadCases()
	if err != nil {
		return err
	}

	runner := harness.NewRunner(a.cfg.Precision, a.logger)

	report, err := runner.Run(cmd.Context(), cases)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RESULT\tCASE\tKIND\tN\tMAX ERROR")

	for _, res := range report.Results {
		status := "PASS"
		if !res.Passed() {
			status = fmt.Sprintf("FAIL@%d", res.Mismatch.Index)
		}

		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.3g\n", status, res.Case, res.Kind, res.N, res.Mismatch.MaxError)
	}

	if err := w.Flush(); err != nil {
		return err
	}

	if failed := report.Failed(); failed > 0 {
		return fmt.Errorf("%d of %d cases failed: %w", failed, len(report.Results), report.Err())
	}

	return nil
}

func (a *app) loadCases() ([]harness.Case, error) {
	if a.cfg.CaseFile == "" {
		return harness.Default()
	}

	f, err := os.Open(a.cfg.CaseFile)
	if err != nil {
		return nil, fmt.Errorf("failed to open case file: %w", err)
	}

	defer f.Close()

	cases, err := harness.Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", a.cfg.CaseFile, err)
	}

	return cases, nil
}
