package config

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDefaultConfigIsValid(t *testing.T) {
	require.Empty(t, ValidateConfig(DefaultConfig()))
}

func TestValidateConfig(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
		field  string
	}{
		{"order too small", func(c *Config) { c.Order = 1 }, "order"},
		{"negative cache", func(c *Config) { c.CacheSize = -5 }, "cache_size"},
		{"unknown level", func(c *Config) { c.Logging.Level = "loud" }, "logging.level"},
		{"unknown format", func(c *Config) { c.Logging.Format = "xml" }, "logging.format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.modify(cfg)
			errs := ValidateConfig(cfg)
			require.Len(t, errs, 1)
			var verr ValidationError
			require.ErrorAs(t, errs[0], &verr)
			require.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvOrder:     "7",
		EnvCacheSize: "0",
		EnvLogLevel:  "debug",
	}
	cfg := DefaultConfig()
	require.NoError(t, cfg.applyEnv(func(k string) string { return env[k] }))

	require.Equal(t, 7, cfg.Order)
	require.Equal(t, int64(0), cfg.CacheSize)
	require.Equal(t, "debug", cfg.Logging.Level)
	require.Equal(t, "console", cfg.Logging.Format)
}

func TestApplyEnvRejectsBadNumbers(t *testing.T) {
	cfg := DefaultConfig()
	err := cfg.applyEnv(func(k string) string {
		if k == EnvOrder {
			return "three"
		}
		return ""
	})
	require.Error(t, err)
	require.Contains(t, err.Error(), EnvOrder)
	require.Equal(t, 4, cfg.Order)
}

func TestApplyEnvFromProcess(t *testing.T) {
	t.Setenv(EnvLogFormat, "json")
	cfg := DefaultConfig()
	require.NoError(t, cfg.ApplyEnv())
	require.Equal(t, "json", cfg.Logging.Format)
}
