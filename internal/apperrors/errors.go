// Package apperrors defines the error taxonomy the handlers map onto HTTP
// status codes. Services return these; nothing in the app treats them as
// fatal.
package apperrors

import "fmt"

// AuthError means the request carried no session or an invalid one.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string { return e.Message }

func Auth(format string, args ...any) error {
	return &AuthError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError means a job, resume version, or master resume is absent or
// not owned by the caller. Ownership failures deliberately look identical to
// absence.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

func NotFound(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// DataAccessError wraps a store read/write failure.
type DataAccessError struct {
	Op  string
	Err error
}

func (e *DataAccessError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *DataAccessError) Unwrap() error { return e.Err }

func DataAccess(op string, err error) error {
	return &DataAccessError{Op: op, Err: err}
}

// TailoringError covers a failed tailoring run: missing prerequisite or an
// external text-generation failure. The message is user-facing.
type TailoringError struct {
	Message string
	Err     error
}

func (e *TailoringError) Error() string {
	if e.Err != nil && e.Err.Error() != e.Message {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *TailoringError) Unwrap() error { return e.Err }

func Tailoring(message string, err error) error {
	return &TailoringError{Message: message, Err: err}
}
