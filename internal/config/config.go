// Package config holds the command-line tool's settings: defaults, flag
// registration, environment overrides and validation.
package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/pflag"

	"github.com/CdrSonan/esper-fft/internal/logging"
)

// EnvPrefix is the prefix of every environment variable read by the tool.
const EnvPrefix = "ESPERFFT_"

// Default configuration values.
const (
	DefaultPrecision = 32
	DefaultWorkers   = 0
	DefaultLogLevel  = "info"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid configuration")

// Config aggregates the settings shared by all subcommands.
type Config struct {
	// Precision is the sample width in bits: 32 or 64.
	Precision int
	// Workers bounds concurrent frame transforms; 0 means GOMAXPROCS.
	Workers int
	// LogLevel is a zerolog level name.
	LogLevel string
	// JSONLogs selects JSON log lines instead of console output.
	JSONLogs bool
	// CaseFile is an optional YAML case file for the check command.
	CaseFile string
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		Precision: DefaultPrecision,
		Workers:   DefaultWorkers,
		LogLevel:  DefaultLogLevel,
	}
}

// RegisterFlags binds the shared settings to fs.
func (c *Config) RegisterFlags(fs *pflag.FlagSet) {
	fs.IntVar(&c.Precision, "precision", c.Precision, "sample precision in bits (32 or 64)")
	fs.IntVar(&c.Workers, "workers", c.Workers, "concurrent frame transforms (0 = GOMAXPROCS)")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level (debug, info, warn, error)")
	fs.BoolVar(&c.JSONLogs, "json-logs", c.JSONLogs, "emit JSON log lines")
}

// ApplyEnv overrides every setting whose flag was not set explicitly with the
// matching ESPERFFT_* variable. lookup is usually os.LookupEnv.
func (c *Config) ApplyEnv(fs *pflag.FlagSet, lookup func(string) (string, bool)) error {
	for _, o := range []struct {
		flag string
		env  string
	}{
		{"precision", "PRECISION"},
		{"workers", "WORKERS"},
		{"log-level", "LOG_LEVEL"},
		{"json-logs", "JSON_LOGS"},
	} {
		if fs.Changed(o.flag) {
			continue
		}

		val, ok := lookup(EnvPrefix + o.env)
		if !ok || val == "" {
			continue
		}

		if err := fs.Set(o.flag, val); err != nil {
			return fmt.Errorf("%w: %s%s=%q: %v", ErrInvalidConfig, EnvPrefix, o.env, val, err)
		}
	}

	if c.CaseFile == "" {
		if val, ok := lookup(EnvPrefix + "CASES"); ok {
			c.CaseFile = val
		}
	}

	return nil
}

// Validate checks the settings for consistency.
func (c Config) Validate() error {
	var errs []string

	if c.Precision != 32 && c.Precision != 64 {
		errs = append(errs, fmt.Sprintf("precision must be 32 or 64, got %d", c.Precision))
	}

	if c.Workers < 0 {
		errs = append(errs, fmt.Sprintf("workers must be >= 0, got %d", c.Workers))
	}

	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		errs = append(errs, fmt.Sprintf("unknown log level %q", c.LogLevel))
	}

	if len(errs) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(errs, "; "))
	}

	return nil
}
