package apperr

import (
	"errors"
	"fmt"
)

// Error kinds. Every service error wraps exactly one of these so controllers
// can map it to a transport status without string matching.
var (
	// ErrValidation covers bad input shape and business-rule violations.
	ErrValidation = errors.New("validation error")

	// ErrForbidden is the uniform denial signal for role/ownership checks.
	ErrForbidden = errors.New("forbidden")

	// ErrNotFound covers absent rows and rows hidden by the soft-delete
	// filter. Deliberately indistinguishable from "never existed".
	ErrNotFound = errors.New("not found")

	// ErrUpstream marks a non-success reply from an external collaborator.
	// The wrapped message carries the provider's error verbatim.
	ErrUpstream = errors.New("upstream service error")
)

func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}

func Forbidden() error {
	return ErrForbidden
}

func NotFound(resource string) error {
	return fmt.Errorf("%w: %s", ErrNotFound, resource)
}

func Upstream(err error) error {
	return fmt.Errorf("%w: %v", ErrUpstream, err)
}

func IsValidation(err error) bool { return errors.Is(err, ErrValidation) }
func IsForbidden(err error) bool  { return errors.Is(err, ErrForbidden) }
func IsNotFound(err error) bool   { return errors.Is(err, ErrNotFound) }
func IsUpstream(err error) bool   { return errors.Is(err, ErrUpstream) }
