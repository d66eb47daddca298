package config

import (
	"os"
	"strings"
)

// Environment represents the current runtime environment
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment determines the current environment.
// CI=true wins over ENV; an unknown or empty ENV means development.
func GetEnvironment() Environment {
	if os.Getenv("CI") == "true" {
		return CI
	}
	return ParseEnvironment(os.Getenv("ENV"))
}

// ParseEnvironment maps a raw ENV value onto a known Environment.
func ParseEnvironment(raw string) Environment {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "production", "prod":
		return Production
	case "test":
		return Test
	case "ci":
		return CI
	default:
		return Development
	}
}

func (e Environment) String() string { return string(e) }

// IsProduction returns true if e is the production environment
func (e Environment) IsProduction() bool {
	return e == Production
}
