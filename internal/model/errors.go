package model

import (
	"fmt"
	"strings"
)

// ValidationFailedError reports that an invoice failed validation,
// carrying the full collected error list.
type ValidationFailedError struct {
	Errors []string
}

func (e *ValidationFailedError) Error() string {
	return fmt.Sprintf("invalid invoice data: %s", strings.Join(e.Errors, ", "))
}

// NewValidationFailedError creates a new validation failure error
func NewValidationFailedError(errors []string) *ValidationFailedError {
	return &ValidationFailedError{Errors: errors}
}

// GenerationError represents a technical failure while producing a
// document, with the stage it happened in.
type GenerationError struct {
	Stage   string
	Message string
	Cause   error
}

func (e *GenerationError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("generation failed [%s]: %s (%v)", e.Stage, e.Message, e.Cause)
	}
	return fmt.Sprintf("generation failed [%s]: %s", e.Stage, e.Message)
}

func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// NewGenerationError creates a new generation error
func NewGenerationError(stage, message string, cause error) *GenerationError {
	return &GenerationError{
		Stage:   stage,
		Message: message,
		Cause:   cause,
	}
}
