package config

import (
	"fmt"
	"strings"
)

// ValidationError represents a configuration validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var (
	validLevels  = []string{"debug", "info", "warn", "error"}
	validFormats = []string{"console", "json"}
)

// ValidateConfig returns every problem found in config. An empty slice
// means the configuration is usable.
func ValidateConfig(config *Config) []error {
	var errs []error

	if config.Order < 2 {
		errs = append(errs, ValidationError{
			Field:   "order",
			Message: fmt.Sprintf("must be at least 2, got %d", config.Order),
		})
	}
	if config.CacheSize < 0 {
		errs = append(errs, ValidationError{
			Field:   "cache_size",
			Message: fmt.Sprintf("must not be negative, got %d", config.CacheSize),
		})
	}
	if !contains(validLevels, config.Logging.Level) {
		errs = append(errs, ValidationError{
			Field:   "logging.level",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validLevels, ", "), config.Logging.Level),
		})
	}
	if !contains(validFormats, config.Logging.Format) {
		errs = append(errs, ValidationError{
			Field:   "logging.format",
			Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(validFormats, ", "), config.Logging.Format),
		})
	}
	return errs
}

func contains(list []string, s string) bool {
	for _, item := range list {
		if item == s {
			return true
		}
	}
	return false
}
