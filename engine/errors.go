package engine

import (
	"errors"
	"fmt"
)

// ErrUnknownVehicle is returned when steering an ID that is not part of the round
var ErrUnknownVehicle = errors.New("unknown vehicle")

// ConfigurationError reports an invalid round configuration passed to CreateRound
type ConfigurationError struct {
	Field  string
	Reason string
}

func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("invalid configuration: %s: %s", e.Field, e.Reason)
}

func configErr(field, format string, args ...any) error {
	return &ConfigurationError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
