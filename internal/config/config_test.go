package config

import (
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envMap(m map[string]string) func(string) (string, bool) {
	return func(key string) (string, bool) {
		v, ok := m[key]
		return v, ok
	}
}

func newFlagSet(c *Config) *pflag.FlagSet {
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	c.RegisterFlags(fs)

	return fs
}

func TestDefaultIsValid(t *testing.T) {
	t.Parallel()

	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, 32, c.Precision)
	assert.Equal(t, "info", c.LogLevel)
}

func TestFlagsOverrideDefaults(t *testing.T) {
	t.Parallel()

	c := Default()
	fs := newFlagSet(&c)

	require.NoError(t, fs.Parse([]string{"--precision", "64", "--workers", "3", "--json-logs"}))
	assert.Equal(t, 64, c.Precision)
	assert.Equal(t, 3, c.Workers)
	assert.True(t, c.JSONLogs)
}

func TestApplyEnv(t *testing.T) {
	t.Parallel()

	c := Default()
	fs := newFlagSet(&c)
	require.NoError(t, fs.Parse([]string{"--workers", "2"}))

	err := c.ApplyEnv(fs, envMap(map[string]string{
		"ESPERFFT_PRECISION": "64",
		"ESPERFFT_WORKERS":   "9",
		"ESPERFFT_LOG_LEVEL": "debug",
		"ESPERFFT_CASES":     "cases.yaml",
	}))
	require.NoError(t, err)

	assert.Equal(t, 64, c.Precision)
	assert.Equal(t, 2, c.Workers, "explicit flag wins over environment")
	assert.Equal(t, "debug", c.LogLevel)
	assert.Equal(t, "cases.yaml", c.CaseFile)
}

func TestApplyEnvRejectsGarbage(t *testing.T) {
	t.Parallel()

	c := Default()
	fs := newFlagSet(&c)

	err := c.ApplyEnv(fs, envMap(map[string]string{"ESPERFFT_WORKERS": "many"}))
	require.ErrorIs(t, err, ErrInvalidConfig)
	assert.Contains(t, err.Error(), "ESPERFFT_WORKERS")
}

func TestValidate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		mutate func(*Config)
		msg    string
	}{
		{"precision", func(c *Config) { c.Precision = 16 }, "precision must be 32 or 64"},
		{"workers", func(c *Config) { c.Workers = -1 }, "workers must be >= 0"},
		{"log level", func(c *Config) { c.LogLevel = "chatty" }, "unknown log level"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c := Default()
			tt.mutate(&c)

			err := c.Validate()
			require.ErrorIs(t, err, ErrInvalidConfig)
			assert.Contains(t, err.Error(), tt.msg)
		})
	}
}
