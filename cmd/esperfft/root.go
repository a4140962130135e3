package main

import (
	"github.com/spf13/cobra"

	"github.com/CdrSonan/esper-fft/internal/config"
	"github.com/CdrSonan/esper-fft/internal/cpu"
	"github.com/CdrSonan/esper-fft/internal/logging"
)

type app struct {
	cfg       config.Config
	logger    logging.Logger
	lookupEnv func(string) (string, bool)
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "esperfft",
		Short:         "Mixed-radix Fourier transforms for interleaved sample buffers",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	a.cfg.RegisterFlags(root.PersistentFlags())

	root.AddCommand(
		newCheckCmd(a),
		newTransformCmd(a),
		newBenchCmd(a),
		newInfoCmd(a),
	)

	return root
}

// setup resolves configuration and builds the logger before any subcommand.
func (a *app) setup(cmd *cobra.Command) error {
	err := a.cfg.ApplyEnv(cmd.Flags(), a.lookupEnv)
	if err != nil {
		return err
	}

	err = a.cfg.Validate()
	if err != nil {
		return err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), logging.Options{
		Level:     a.cfg.LogLevel,
		JSON:      a.cfg.JSONLogs,
		Component: cmd.Name(),
	})
	if err != nil {
		return err
	}

	a.logger = logger
	a.logger.Debug("configuration resolved",
		logging.Int("precision", a.cfg.Precision),
		logging.Int("workers", a.cfg.Workers),
		logging.String("cpu", cpu.DetectFeatures().String()),
	)

	return nil
}
