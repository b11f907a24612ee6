// Package domain contains business logic types and errors.
// Domain errors represent failures of the rendering pipeline, independent of
// how they are reported. The CLI adapter maps them to diagnostics and exit codes.
package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for use with errors.Is().
var (
	// ErrMissingArgument indicates no message or mode was supplied.
	ErrMissingArgument = errors.New("missing argument")

	// ErrArtNotFound indicates the requested character has no art file.
	ErrArtNotFound = errors.New("art not found")

	// ErrCorpusUnavailable indicates the quote corpus could not be read.
	ErrCorpusUnavailable = errors.New("corpus unavailable")

	// ErrEmptyCorpus indicates the quote corpus holds no entries.
	ErrEmptyCorpus = errors.New("corpus is empty")

	// ErrInvalidWidth indicates the terminal is too narrow to hold any text.
	ErrInvalidWidth = errors.New("invalid width")

	// ErrValidation indicates an input failed validation.
	ErrValidation = errors.New("validation failed")
)

// ArtNotFoundError provides context for a missing character.
type ArtNotFoundError struct {
	Name      string
	Available []string
}

// Error implements the error interface.
func (e *ArtNotFoundError) Error() string {
	if len(e.Available) > 0 {
		return fmt.Sprintf("character %q not found (available: %s)", e.Name, strings.Join(e.Available, ", "))
	}

	return fmt.Sprintf("character %q not found", e.Name)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ArtNotFoundError) Unwrap() error {
	return ErrArtNotFound
}

// NewArtNotFoundError creates an art not found error with context.
func NewArtNotFoundError(name string, available ...string) error {
	return &ArtNotFoundError{Name: name, Available: available}
}

// CorpusUnavailableError provides context for an unreadable corpus.
type CorpusUnavailableError struct {
	Path  string
	Cause error
}

// Error implements the error interface.
func (e *CorpusUnavailableError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("could not open quotes file %q: %v", e.Path, e.Cause)
	}

	return fmt.Sprintf("could not open quotes file %q", e.Path)
}

// Unwrap returns both the sentinel and the underlying cause.
func (e *CorpusUnavailableError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrCorpusUnavailable}
	}

	return []error{ErrCorpusUnavailable, e.Cause}
}

// NewCorpusUnavailableError creates a corpus unavailable error with context.
func NewCorpusUnavailableError(path string, cause error) error {
	return &CorpusUnavailableError{Path: path, Cause: cause}
}

// InvalidWidthError records the widths that made layout impossible.
type InvalidWidthError struct {
	TerminalWidth int
	ContentWidth  int
}

// Error implements the error interface.
func (e *InvalidWidthError) Error() string {
	if e.TerminalWidth > 0 {
		return fmt.Sprintf("terminal width %d leaves no room for text (content width %d)", e.TerminalWidth, e.ContentWidth)
	}

	return fmt.Sprintf("content width must be positive, got %d", e.ContentWidth)
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *InvalidWidthError) Unwrap() error {
	return ErrInvalidWidth
}

// NewInvalidWidthError creates an invalid width error.
// terminalWidth is zero when the caller only knows the content width.
func NewInvalidWidthError(terminalWidth, contentWidth int) error {
	return &InvalidWidthError{TerminalWidth: terminalWidth, ContentWidth: contentWidth}
}

// ValidationError provides context for validation errors.
type ValidationError struct {
	Field   string
	Message string
	Value   any
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}

	return "validation failed: " + e.Message
}

// Unwrap returns the sentinel error for errors.Is() support.
func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError creates a validation error with context.
func NewValidationError(field, message string) error {
	return &ValidationError{Field: field, Message: message}
}

// NewValidationErrorWithValue creates a validation error including the invalid value.
func NewValidationErrorWithValue(field, message string, value any) error {
	return &ValidationError{Field: field, Message: message, Value: value}
}

// IsMissingArgument checks if an error is a missing argument error.
func IsMissingArgument(err error) bool {
	return errors.Is(err, ErrMissingArgument)
}

// IsArtNotFound checks if an error is an art not found error.
func IsArtNotFound(err error) bool {
	return errors.Is(err, ErrArtNotFound)
}

// IsCorpusUnavailable checks if an error is a corpus unavailable error.
func IsCorpusUnavailable(err error) bool {
	return errors.Is(err, ErrCorpusUnavailable)
}

// IsEmptyCorpus checks if an error is an empty corpus error.
func IsEmptyCorpus(err error) bool {
	return errors.Is(err, ErrEmptyCorpus)
}

// IsInvalidWidth checks if an error is an invalid width error.
func IsInvalidWidth(err error) bool {
	return errors.Is(err, ErrInvalidWidth)
}

// IsValidation checks if an error is a validation error.
func IsValidation(err error) bool {
	return errors.Is(err, ErrValidation)
}
