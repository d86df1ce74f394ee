package engine

import (
	"errors"
	"fmt"
)

// ErrInvalidInput is returned, wrapped with detail, for any input the
// scanners refuse. Test with errors.Is.
var ErrInvalidInput = errors.New("invalid input")

func invalid(format string, a ...any) error {
	return fmt.Errorf("%w: "+format, append([]any{ErrInvalidInput}, a...)...)
}

// ValidateText checks the text/pattern preconditions shared by both algorithms.
func ValidateText(text, pattern string) error {
	switch {
	case text == "":
		return invalid("text is empty")
	case pattern == "":
		return invalid("pattern is empty")
	case len(pattern) > len(text):
		return invalid("pattern length %d exceeds text length %d", len(pattern), len(text))
	}
	return nil
}

// ValidateHashParams checks base and modulus for the rolling-hash scanner.
func ValidateHashParams(base, modulus int64) error {
	if base <= 0 {
		return invalid("base must be positive, got %d", base)
	}
	if modulus <= 0 {
		return invalid("modulus must be positive, got %d", modulus)
	}
	return nil
}
