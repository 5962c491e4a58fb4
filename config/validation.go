package config

import (
	"fmt"
	"net/url"
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

var supportedSchemes = map[string]bool{
	"postgres":   true,
	"postgresql": true,
	"sqlite":     true,
}

// ValidateConfig checks the loaded configuration and reports every problem found
func ValidateConfig(cfg *Config) error {
	var errors []string

	if port, err := strconv.Atoi(cfg.ServerPort); err != nil || port < 1 || port > 65535 {
		errors = append(errors, ValidationError{Field: "SERVER_PORT", Message: "must be a port number between 1 and 65535"}.Error())
	}

	if cfg.DatabaseURL == "" {
		errors = append(errors, ValidationError{Field: "DATABASE_URL", Message: "is required"}.Error())
	} else if scheme := DatabaseScheme(cfg.DatabaseURL); !supportedSchemes[scheme] {
		errors = append(errors, ValidationError{Field: "DATABASE_URL", Message: fmt.Sprintf("unsupported scheme %q", scheme)}.Error())
	}

	if cfg.Environment == Production && cfg.DatabaseURL == DefaultDatabaseURL {
		errors = append(errors, ValidationError{Field: "DATABASE_URL", Message: "must be set explicitly in production"}.Error())
	}

	if cfg.RedisURL != "" {
		if _, err := url.Parse(cfg.RedisURL); err != nil {
			errors = append(errors, ValidationError{Field: "REDIS_URL", Message: err.Error()}.Error())
		}
	}

	if cfg.DBMaxOpenConns < 0 {
		errors = append(errors, ValidationError{Field: "DB_MAX_OPEN_CONNS", Message: "must not be negative"}.Error())
	}
	if cfg.DBMaxIdleConns < 0 {
		errors = append(errors, ValidationError{Field: "DB_MAX_IDLE_CONNS", Message: "must not be negative"}.Error())
	}
	if cfg.RateLimitPerMinute < 0 {
		errors = append(errors, ValidationError{Field: "RATE_LIMIT_PER_MINUTE", Message: "must not be negative"}.Error())
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n%s", strings.Join(errors, "\n"))
	}

	return nil
}

// DatabaseScheme returns the lower-cased scheme of a database URL
func DatabaseScheme(databaseURL string) string {
	scheme, _, found := strings.Cut(databaseURL, ":")
	if !found {
		return ""
	}
	return strings.ToLower(scheme)
}
