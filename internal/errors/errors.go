// Package errors provides custom error types for the grievance portal.
//
// This package defines domain-specific errors matching the portal's failure
// taxonomy. Classifier, resolver and timeline operations are total and never
// raise; only capability-bound and backend-bound operations can produce the
// errors below, and every one of them maps to a distinct user-visible
// outcome.
package errors

import "fmt"

// LoginFailedError indicates that a login attempt was rejected.
//
// This error is returned when:
//   - The account exists but the password does not match
//
// Recovery strategy: the user corrects the credentials and retries; there is
// no automatic retry.
type LoginFailedError struct {
	Message string
}

func (e *LoginFailedError) Error() string {
	return fmt.Sprintf("login failed: %s", e.Message)
}

// NewLoginFailedError creates a new login failed error with context
func NewLoginFailedError(msg string) *LoginFailedError {
	return &LoginFailedError{Message: msg}
}

// NotFoundError indicates that a lookup by identifier matched nothing.
//
// This error is returned when:
//   - A complaint is tracked by an id that does not exist
//
// It is deliberately distinct from BackendError so the UI can show
// "Complaint not found." instead of a generic failure message.
type NotFoundError struct {
	Kind string
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Kind, e.ID)
}

// NewNotFoundError creates a new not-found error for the given entity kind
func NewNotFoundError(kind, id string) *NotFoundError {
	return &NotFoundError{Kind: kind, ID: id}
}

// BackendError wraps a network or storage failure on an external operation.
//
// This error is returned when:
//   - The database rejects a read or write
//   - An outbound call (translate, telegram) fails or times out
//
// Recovery strategy: surface a user-visible message, abandon the operation,
// leave prior UI state intact. The user may manually re-trigger the action.
type BackendError struct {
	Message string
	Err     error
}

func (e *BackendError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("backend error: %s: %v", e.Message, e.Err)
	}
	return fmt.Sprintf("backend error: %s", e.Message)
}

// Unwrap returns the wrapped error for error chain inspection
func (e *BackendError) Unwrap() error {
	return e.Err
}

// NewBackendError creates a new backend error with context
func NewBackendError(msg string, err error) *BackendError {
	return &BackendError{Message: msg, Err: err}
}

// UnsupportedError indicates that a host capability is absent.
//
// This error is returned when:
//   - Voice capture is started on a host with no speech recognizer
//
// Recovery strategy: none. Surfaced as an immediate, non-blocking notice.
type UnsupportedError struct {
	Capability string
}

func (e *UnsupportedError) Error() string {
	return fmt.Sprintf("capability unsupported: %s", e.Capability)
}

// NewUnsupportedError creates a new unsupported-capability error
func NewUnsupportedError(capability string) *UnsupportedError {
	return &UnsupportedError{Capability: capability}
}

// IsLoginFailed checks if the error is a login failure error
func IsLoginFailed(err error) bool {
	_, ok := err.(*LoginFailedError)
	return ok
}

// IsNotFound checks if the error is a not-found error
func IsNotFound(err error) bool {
	_, ok := err.(*NotFoundError)
	return ok
}

// IsUnsupported checks if the error is an unsupported-capability error
func IsUnsupported(err error) bool {
	_, ok := err.(*UnsupportedError)
	return ok
}
