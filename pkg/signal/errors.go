package signal

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrUnknownNet is returned when a handle does not resolve to a net.
	ErrUnknownNet = errors.New("signal: unknown net")

	// ErrMissingField is returned when an edit leaves a required field empty.
	ErrMissingField = errors.New("signal: required field not set")

	// ErrReservedColor is returned when an edit would change a color that
	// belongs to a system category.
	ErrReservedColor = errors.New("signal: system color cannot be changed")

	// ErrMalformedScheme is returned when a scheme document cannot be parsed.
	ErrMalformedScheme = errors.New("signal: malformed scheme")
)

// EditError reports which fields of an Edit were rejected.
type EditError struct {
	Err    error    // ErrMissingField or ErrReservedColor
	Fields []string // Offending fields, e.g. "type color"
}

func (e *EditError) Error() string {
	switch e.Err {
	case ErrMissingField:
		return fmt.Sprintf("fields not set: %s", strings.Join(e.Fields, ", "))
	case ErrReservedColor:
		return fmt.Sprintf("system %s cannot be changed", strings.Join(e.Fields, ", "))
	}
	return fmt.Sprintf("%v: %s", e.Err, strings.Join(e.Fields, ", "))
}

func (e *EditError) Unwrap() error {
	return e.Err
}

// SchemeError reports where a scheme document stopped parsing.
type SchemeError struct {
	Line    int
	Applied int // Nets already updated before the error
	Err     error
}

func (e *SchemeError) Error() string {
	return fmt.Sprintf("signal: scheme error at line %d: %v", e.Line, e.Err)
}

func (e *SchemeError) Unwrap() []error {
	return []error{ErrMalformedScheme, e.Err}
}
