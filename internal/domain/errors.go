package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration signals an unresolvable style or output selection.
	// Nothing is rendered or written when it is returned.
	ErrConfiguration = errors.New("configuration error")
	// ErrEncode signals that the output encoder failed.
	ErrEncode = errors.New("encode error")
)

// ConfigError describes which selection could not be resolved.
type ConfigError struct {
	Kind  string // "palette", "format", ...
	Value string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("unknown %s %q", e.Kind, e.Value)
}

// Is reports ErrConfiguration as the error class.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfiguration
}

// UnknownPalette returns the error for an unregistered palette id.
func UnknownPalette(id string) error {
	return &ConfigError{Kind: "palette", Value: id}
}

// UnknownFormat returns the error for an unsupported export format.
func UnknownFormat(format string) error {
	return &ConfigError{Kind: "format", Value: format}
}

// EncodeFailed wraps an encoder failure so it matches ErrEncode.
func EncodeFailed(format string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrEncode, format, err)
}
