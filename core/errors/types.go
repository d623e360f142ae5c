// ABOUTME: Custom error types for the core business logic
// ABOUTME: Provides structured errors for better error handling and API responses

package errors

import (
	"errors"
	"fmt"
)

// LoadError represents a failure to read or parse the backing source.
// It is retryable: the backing source may become readable again, so callers
// should surface it as a transient failure rather than a permanent one.
type LoadError struct {
	Source string
	Err    error
}

// Error implements the error interface
func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load %s: %v", e.Source, e.Err)
}

// Unwrap returns the underlying cause
func (e *LoadError) Unwrap() error {
	return e.Err
}

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// InvalidParameterError represents a malformed client-supplied parameter.
// It is never fatal to the process.
type InvalidParameterError struct {
	Param   string
	Message string
}

// Error implements the error interface
func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("invalid parameter '%s': %s", e.Param, e.Message)
}

// IsLoad checks if an error is a LoadError
func IsLoad(err error) bool {
	var loadErr *LoadError
	return errors.As(err, &loadErr)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsInvalidParameter checks if an error is an InvalidParameterError
func IsInvalidParameter(err error) bool {
	var paramErr *InvalidParameterError
	return errors.As(err, &paramErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
