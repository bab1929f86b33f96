package generator

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration is returned when the random source is asked for an index in an empty range
	ErrConfiguration = errors.New("random index range must be positive")
	// ErrUnavailable is returned when the host has no usable secure random generator
	ErrUnavailable = errors.New("secure random generator is not available")
	// ErrNoCategoryEnabled is returned when a password is requested without any character set
	ErrNoCategoryEnabled = errors.New("at least one character set must be enabled")
	// ErrNoPool is returned when the union of the enabled character sets is empty
	ErrNoPool = errors.New("no characters available for generation")
	// ErrCoverageUnsatisfiable is returned when a missing character set could not be placed
	ErrCoverageUnsatisfiable = errors.New("failed to satisfy required character categories")
	// ErrNoDigitsAvailable is returned when the passphrase digit token has nothing to draw from
	ErrNoDigitsAvailable = errors.New("no digits available for passphrase")
	// ErrNoSymbolsAvailable is returned when the passphrase symbol token has nothing to draw from
	ErrNoSymbolsAvailable = errors.New("no symbols available for passphrase")
)

// EmptyCategoryError indicates an enabled character set was emptied by the exclusion filters
type EmptyCategoryError struct {
	Class Class
}

func (e *EmptyCategoryError) Error() string {
	return fmt.Sprintf("no %s characters available", e.Class)
}

// LengthTooShortError indicates the password cannot hold one character of every enabled set
type LengthTooShortError struct {
	Length     int
	Categories int
}

func (e *LengthTooShortError) Error() string {
	return fmt.Sprintf("password length must be at least the number of enabled character sets (length: %d, sets: %d)",
		e.Length, e.Categories)
}

// ContractViolationError indicates an injected Source returned a value outside [0, Max)
type ContractViolationError struct {
	Max   int
	Value int
}

func (e *ContractViolationError) Error() string {
	return fmt.Sprintf("random source returned %d, expected a value in [0, %d)", e.Value, e.Max)
}
