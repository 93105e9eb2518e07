// Package config holds the runtime settings of the index shell.
package config

// Config is the full set of runtime settings.
type Config struct {
	// Order is the order of indexes created by Use or before any Initialize.
	Order int
	// CacheSize is the number of point lookups cached per index; 0 disables caching.
	CacheSize int64
	// Input is the command script to run; empty reads stdin.
	Input string
	// Output receives command results; empty writes stdout.
	Output string

	Logging LogConfig
}

// LogConfig selects the logger level and encoding.
type LogConfig struct {
	Level  string // debug, info, warn, error
	Format string // console, json
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Order:     4,
		CacheSize: 1024,
		Input:     "",
		Output:    "",
		Logging: LogConfig{
			Level:  "info",
			Format: "console",
		},
	}
}
