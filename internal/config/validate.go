package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ValidationError represents a configuration validation error with context
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: field '%s': %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// describe renders a single field error for humans.
func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "oneof":
		return fmt.Sprintf("must be one of [%s], got %v", fe.Param(), fe.Value())
	case "min":
		return fmt.Sprintf("must be at least %s, got %v", fe.Param(), fe.Value())
	case "max":
		return fmt.Sprintf("must be at most %s, got %v", fe.Param(), fe.Value())
	case "hostname_port":
		return fmt.Sprintf("must be host:port, got %v", fe.Value())
	default:
		return fmt.Sprintf("failed %q validation", fe.Tag())
	}
}
