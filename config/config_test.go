package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, "high-recall", cfg.Mining.Policy)
	assert.Equal(t, 2, cfg.Mining.Threads)
	assert.Equal(t, 2, cfg.Mining.IterationLimit)

	level, err := cfg.Logging.SlogLevel()
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, level)
}

func TestParse(t *testing.T) {
	cfg, err := Parse([]byte(`
mining:
  policy: fprate
  threshold: 0.2
  threads: 8
logging:
  level: debug
  format: json
`))
	require.NoError(t, err)
	assert.Equal(t, "fprate", cfg.Mining.Policy)
	assert.InDelta(t, 0.2, cfg.Mining.Threshold, 1e-12)
	assert.Equal(t, 8, cfg.Mining.Threads)
	assert.Equal(t, 2, cfg.Mining.IterationLimit, "unset fields keep defaults")
	assert.Equal(t, "json", cfg.Logging.Format)

	_, err = Parse([]byte("mining: [unclosed"))
	require.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		field  string
	}{
		{"Policy", func(c *Config) { c.Mining.Policy = "support" }, "mining.policy"},
		{"ThresholdHigh", func(c *Config) { c.Mining.Threshold = 1.5 }, "mining.threshold"},
		{"ThresholdLow", func(c *Config) { c.Mining.Threshold = -0.1 }, "mining.threshold"},
		{"IterationLimit", func(c *Config) { c.Mining.IterationLimit = -1 }, "mining.iterationLimit"},
		{"Threads", func(c *Config) { c.Mining.Threads = 0 }, "mining.threads"},
		{"Level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"Format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.mutate(cfg)
			err := cfg.Validate()
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.field)
		})
	}

	t.Run("ReportsAll", func(t *testing.T) {
		cfg := Default()
		cfg.Mining.Threads = 0
		cfg.Logging.Format = "xml"
		err := cfg.Validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "mining.threads")
		assert.Contains(t, err.Error(), "logging.format")
	})
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pfe.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mining:\n  threshold: 0.3\n  threads: 4\n"), 0o600))

	t.Run("File", func(t *testing.T) {
		cfg, err := Load(path)
		require.NoError(t, err)
		assert.InDelta(t, 0.3, cfg.Mining.Threshold, 1e-12)
		assert.Equal(t, 4, cfg.Mining.Threads)
	})

	t.Run("EnvOverrides", func(t *testing.T) {
		t.Setenv("PFE_MINING_THREADS", "16")
		t.Setenv("PFE_MINING_POLICY", "high-precision")
		t.Setenv("PFE_MINING_THRESHOLD", "0.05")
		t.Setenv("PFE_MINING_ITERATION_LIMIT", "0")
		t.Setenv("PFE_LOGGING_LEVEL", "warn")

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.Equal(t, 16, cfg.Mining.Threads)
		assert.Equal(t, "high-precision", cfg.Mining.Policy)
		assert.InDelta(t, 0.05, cfg.Mining.Threshold, 1e-12)
		assert.Equal(t, 0, cfg.Mining.IterationLimit)
		assert.Equal(t, "warn", cfg.Logging.Level)
	})

	t.Run("InvalidEnv", func(t *testing.T) {
		t.Setenv("PFE_MINING_THREADS", "0")
		_, err := Load(path)
		require.Error(t, err)
	})

	t.Run("MalformedEnv", func(t *testing.T) {
		t.Setenv("PFE_MINING_THRESHOLD", "high")
		t.Setenv("PFE_MINING_ITERATION_LIMIT", "1.5")
		t.Setenv("PFE_MINING_THREADS", "many")
		t.Setenv("PFE_LOGGING_FORMAT", "xml")

		_, err := Load(path)
		require.ErrorIs(t, err, strconv.ErrSyntax)
		for _, want := range []string{
			"PFE_MINING_THRESHOLD",
			"PFE_MINING_ITERATION_LIMIT",
			"PFE_MINING_THREADS",
			"logging.format",
		} {
			assert.Contains(t, err.Error(), want)
		}
	})

	t.Run("NoFile", func(t *testing.T) {
		cfg, err := Load("")
		require.NoError(t, err)
		assert.Equal(t, Default().Mining, cfg.Mining)
	})

	t.Run("Missing", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
		require.ErrorIs(t, err, os.ErrNotExist)
	})
}
