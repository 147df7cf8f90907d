package config

import (
	"errors"
	"fmt"
	"net"
)

// ValidationError contains details about what failed validation.
type ValidationError struct {
	Field   string
	Value   any
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config.%s: %s (got: %v)", e.Field, e.Message, e.Value)
}

// validateConfig checks all config values for validity.
// Returns nil if valid, or joined errors for all validation failures.
func validateConfig(cfg *Config) error {
	var errs []error

	// Server.Addr must be host:port (host may be empty)
	if cfg.Server.Addr == "" {
		errs = append(errs, &ValidationError{
			Field:   "server.addr",
			Value:   cfg.Server.Addr,
			Message: "must not be empty",
		})
	} else if _, _, err := net.SplitHostPort(cfg.Server.Addr); err != nil {
		errs = append(errs, &ValidationError{
			Field:   "server.addr",
			Value:   cfg.Server.Addr,
			Message: fmt.Sprintf("invalid address: %v", err),
		})
	}

	// Output.Dir must not be empty
	if cfg.Output.Dir == "" {
		errs = append(errs, &ValidationError{
			Field:   "output.dir",
			Value:   cfg.Output.Dir,
			Message: "must not be empty",
		})
	}

	// Log.Level must be one of: debug, info, warn, error (case-sensitive)
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[cfg.Log.Level] {
		errs = append(errs, &ValidationError{
			Field:   "log.level",
			Value:   cfg.Log.Level,
			Message: "must be one of: debug, info, warn, error",
		})
	}

	return errors.Join(errs...)
}
