package config

import (
	"os"
	"strconv"

	"github.com/cockroachdb/errors"
)

// Environment variables read by ApplyEnv.
const (
	EnvOrder     = "STRINDEX_ORDER"
	EnvCacheSize = "STRINDEX_CACHE_SIZE"
	EnvLogLevel  = "STRINDEX_LOG_LEVEL"
	EnvLogFormat = "STRINDEX_LOG_FORMAT"
)

// ApplyEnv overrides fields from the environment. Unset or empty variables
// leave the field alone.
func (c *Config) ApplyEnv() error {
	return c.applyEnv(os.Getenv)
}

func (c *Config) applyEnv(getenv func(string) string) error {
	if val := getenv(EnvOrder); val != "" {
		n, err := strconv.Atoi(val)
		if err != nil {
			return errors.Wrapf(err, "%s=%q", EnvOrder, val)
		}
		c.Order = n
	}
	if val := getenv(EnvCacheSize); val != "" {
		n, err := strconv.ParseInt(val, 10, 64)
		if err != nil {
			return errors.Wrapf(err, "%s=%q", EnvCacheSize, val)
		}
		c.CacheSize = n
	}
	if val := getenv(EnvLogLevel); val != "" {
		c.Logging.Level = val
	}
	if val := getenv(EnvLogFormat); val != "" {
		c.Logging.Format = val
	}
	return nil
}
