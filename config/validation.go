package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ValidationError represents a configuration validation error
type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

var validLogLevels = map[string]bool{
	"debug": true,
	"info":  true,
	"warn":  true,
	"error": true,
}

// ValidateConfig checks cfg and reports every problem at once.
func ValidateConfig(cfg *Config) error {
	var errs []error

	if cfg.DBPassword == "" {
		if cfg.Env == CI {
			errs = append(errs, ValidationError{"DB_PASSWORD", "environment variable is required in CI environment"})
		} else {
			errs = append(errs, ValidationError{"DB_PASSWORD", "environment variable or db_password secret is required"})
		}
	}
	if cfg.DBHost == "" {
		errs = append(errs, ValidationError{"DB_HOST", "must not be empty"})
	}
	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port <= 0 || port > 65535 {
		errs = append(errs, ValidationError{"SERVER_PORT", fmt.Sprintf("invalid port %q", cfg.ServerPort)})
	}
	if !validLogLevels[strings.ToLower(cfg.LogLevel)] {
		errs = append(errs, ValidationError{"LOG_LEVEL", fmt.Sprintf("unknown level %q", cfg.LogLevel)})
	}
	if cfg.Env == Production && cfg.AWSRegion == "" {
		errs = append(errs, ValidationError{"AWS_REGION", "is required in production"})
	}

	return errors.Join(errs...)
}
