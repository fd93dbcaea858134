package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors used across all layers.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrUnknownWord = errors.New("unknown word")

	// ErrUnsupported is returned by a numeral speller for a language or
	// grammatical combination it cannot render.
	ErrUnsupported = errors.New("unsupported grammatical combination")
	// ErrOutOfRange is returned by a numeral speller for values it cannot represent.
	ErrOutOfRange = errors.New("value out of representable range")

	ErrSpanOverlap = errors.New("replacement spans overlap")
	ErrSpanBounds  = errors.New("replacement span out of bounds")
)

// FieldError describes a validation error for a specific field.
type FieldError struct {
	Field   string
	Message string
}

// ValidationError contains a list of field-level validation errors.
type ValidationError struct {
	Errors []FieldError
}

func (e *ValidationError) Error() string {
	if len(e.Errors) == 1 {
		return fmt.Sprintf("validation: %s: %s", e.Errors[0].Field, e.Errors[0].Message)
	}
	return fmt.Sprintf("validation: %d errors", len(e.Errors))
}

func (e *ValidationError) Unwrap() error { return ErrValidation }

// NewValidationError creates a ValidationError for a single field.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Errors: []FieldError{{Field: field, Message: message}},
	}
}

// NewValidationErrors creates a ValidationError from multiple field errors.
func NewValidationErrors(errs []FieldError) *ValidationError {
	return &ValidationError{Errors: errs}
}

// RenderError reports a numeral the speller refused to render.
// It unwraps to the speller's cause (ErrUnsupported, ErrOutOfRange or a transport error).
type RenderError struct {
	Text     string
	Decision GrammaticalDecision
	Err      error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("render %q as %s: %v", e.Text, e.Decision, e.Err)
}

func (e *RenderError) Unwrap() error { return e.Err }
