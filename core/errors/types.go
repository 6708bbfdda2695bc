// ABOUTME: Custom error types for the content pipeline
// ABOUTME: Lets callers distinguish "nothing found" from "a call failed"

package errors

import (
	"errors"
	"fmt"
)

// NotFoundError represents a resource not found error
type NotFoundError struct {
	Resource string
	ID       string
}

// Error implements the error interface
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// ValidationError represents a story or record failing a quality gate
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ExternalAPIError represents a transient failure from an external API
// (feed, text generation, image provider). One unit of work failing this
// way is treated as an empty result, never as a fatal error.
type ExternalAPIError struct {
	API        string
	StatusCode int
	Message    string
}

// Error implements the error interface
func (e *ExternalAPIError) Error() string {
	return fmt.Sprintf("external API error from %s: %d - %s", e.API, e.StatusCode, e.Message)
}

// ParseError represents an unparseable backend response (no numeric
// score, wrong panel count, empty headline candidate). Treated the same
// as a transient failure, with a safe default substituted.
type ParseError struct {
	What    string
	Message string
}

// Error implements the error interface
func (e *ParseError) Error() string {
	return fmt.Sprintf("parse error (%s): %s", e.What, e.Message)
}

// NotConfiguredError represents a component constructed without required
// credentials. The component is disabled: it logs once at startup and
// every operation fails immediately with this error.
type NotConfiguredError struct {
	Component string
	Missing   string
}

// Error implements the error interface
func (e *NotConfiguredError) Error() string {
	return fmt.Sprintf("%s is not configured: missing %s", e.Component, e.Missing)
}

// IsNotFound checks if an error is a NotFoundError
func IsNotFound(err error) bool {
	var notFoundErr *NotFoundError
	return errors.As(err, &notFoundErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var valErr *ValidationError
	return errors.As(err, &valErr)
}

// IsExternalAPI checks if an error is an ExternalAPIError
func IsExternalAPI(err error) bool {
	var apiErr *ExternalAPIError
	return errors.As(err, &apiErr)
}

// IsParse checks if an error is a ParseError
func IsParse(err error) bool {
	var parseErr *ParseError
	return errors.As(err, &parseErr)
}

// IsNotConfigured checks if an error is a NotConfiguredError
func IsNotConfigured(err error) bool {
	var confErr *NotConfiguredError
	return errors.As(err, &confErr)
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
