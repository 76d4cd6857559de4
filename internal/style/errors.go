package style

import (
	"errors"
	"fmt"
)

var (
	// ErrUndefinedStyle indicates a lookup for a key that was never registered.
	ErrUndefinedStyle = errors.New("style: undefined style")
	// ErrUnknownStyle indicates a chain naming a style the palette lacks.
	ErrUnknownStyle = errors.New("style: unknown style name")
	// ErrInvalidSpec indicates a value that cannot be turned into a Spec.
	ErrInvalidSpec = errors.New("style: invalid spec")
)

// UndefinedStyleError is returned when a key has no registered entry.
type UndefinedStyleError struct {
	Key string
}

func (e *UndefinedStyleError) Error() string {
	return fmt.Sprintf("style: no style registered for %q", e.Key)
}

func (e *UndefinedStyleError) Is(target error) bool { return target == ErrUndefinedStyle }

// UnknownStyleError is returned when a chain references a style name that
// the palette cannot apply.
type UnknownStyleError struct {
	Style string
}

func (e *UnknownStyleError) Error() string {
	return fmt.Sprintf("style: unknown style name %q", e.Style)
}

func (e *UnknownStyleError) Is(target error) bool { return target == ErrUnknownStyle }
