package errors

import "fmt"

// ErrorCode represents a Seer error code.
type ErrorCode string

const (
	ErrInvalidRequest    ErrorCode = "INVALID_REQUEST"    // usage error, exit 2
	ErrCatalogUnreadable ErrorCode = "CATALOG_UNREADABLE" // recovered with a warning
	ErrValidationFailed  ErrorCode = "VALIDATION_FAILED"  // scene invariant violated
	ErrNotFound          ErrorCode = "NOT_FOUND"
	ErrInternal          ErrorCode = "INTERNAL"
)

// SeerError represents a structured error with code, exit status, and details.
type SeerError struct {
	Code    ErrorCode
	Status  int
	Message string
	Details map[string]any
}

// Error implements the error interface.
func (e *SeerError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// NewInvalidRequest creates a usage error (exit code 2).
func NewInvalidRequest(msg string) *SeerError {
	return &SeerError{
		Code:    ErrInvalidRequest,
		Status:  2,
		Message: msg,
	}
}

// NewCatalogUnreadable creates a recoverable catalog error. Callers log it
// as a warning and continue in primitive-only mode.
func NewCatalogUnreadable(path string, err error) *SeerError {
	return &SeerError{
		Code:    ErrCatalogUnreadable,
		Status:  1,
		Message: fmt.Sprintf("failed to load library %s: %v", path, err),
		Details: map[string]any{"path": path},
	}
}

// NewValidationFailed creates an error for a violated scene invariant.
// elementID identifies the offending element when known.
func NewValidationFailed(msg, elementID string) *SeerError {
	e := &SeerError{
		Code:    ErrValidationFailed,
		Status:  1,
		Message: msg,
	}
	if elementID != "" {
		e.Details = map[string]any{"element_id": elementID}
	}
	return e
}

// NewNotFound creates an error for a missing run or resource.
func NewNotFound(identifier string) *SeerError {
	return &SeerError{
		Code:    ErrNotFound,
		Status:  1,
		Message: fmt.Sprintf("not found: %s", identifier),
		Details: map[string]any{"identifier": identifier},
	}
}

// NewInternal creates an error for unexpected internal failures.
func NewInternal(err error) *SeerError {
	msg := "internal error"
	if err != nil {
		msg = err.Error()
	}
	return &SeerError{
		Code:    ErrInternal,
		Status:  1,
		Message: msg,
	}
}

// Is checks if an error is a SeerError with the given code.
func Is(err error, code ErrorCode) bool {
	if sErr, ok := err.(*SeerError); ok {
		return sErr.Code == code
	}
	return false
}
