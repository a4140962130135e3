// Command esperfft checks, runs and benchmarks the transforms.
//
// Usage:
//
//	esperfft [flags] <command> [args]
//
// Commands:
//
//	check      - run the built-in or a YAML case suite
//	transform  - transform numbers given as arguments or on stdin
//	bench      - time transforms per length
//	info       - show CPU features and length decompositions
//
// Every global flag can also be set through an ESPERFFT_* environment
// variable (ESPERFFT_PRECISION, ESPERFFT_WORKERS, ESPERFFT_LOG_LEVEL,
// ESPERFFT_JSON_LOGS, ESPERFFT_CASES); explicit flags win.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/CdrSonan/esper-fft/internal/config"
	"github.com/CdrSonan/esper-fft/internal/harness"
)

// Process exit codes.
const (
	ExitSuccess       = 0
	ExitErrorGeneric  = 1
	ExitErrorMismatch = 3
	ExitErrorConfig   = 4
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr, os.LookupEnv))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer, lookupEnv func(string) (string, bool)) int {
	a := &app{
		cfg:       config.Default(),
		lookupEnv: lookupEnv,
	}

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetIn(stdin)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	err := cmd.Execute()
	if err == nil {
		return ExitSuccess
	}

	fmt.Fprintln(stderr, "Error:", err)

	return exitCode(err)
}

func exitCode(err error) int {
	var mismatch *harness.MismatchError

	switch {
	case err == nil:
		return ExitSuccess
	case errors.As(err, &mismatch):
		return ExitErrorMismatch
	case errors.Is(err, config.ErrInvalidConfig), errors.Is(err, harness.ErrInvalidCase):
		return ExitErrorConfig
	default:
		return ExitErrorGeneric
	}
}
