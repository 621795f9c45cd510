package apperrors

import (
	"errors"
	"fmt"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrUnauthorized indicates a missing or invalid session token.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates that the session user's role does not grant the requested page or action.
var ErrForbidden = errors.New("forbidden")

// ErrInvalidCredentials is returned when the authentication service rejects an email/password pair.
var ErrInvalidCredentials = errors.New("invalid email or password")

// ErrAuthServiceUnavailable covers transport failures and unexpected answers from the authentication service.
var ErrAuthServiceUnavailable = errors.New("authentication service unavailable")

// ErrAlreadyAuthenticated is returned by login while a session is active.
var ErrAlreadyAuthenticated = errors.New("a session is already active")

// ErrNoSession is returned by operations that need an authenticated session.
var ErrNoSession = errors.New("no active session")

// AppError pairs a sentinel with a message that is safe to show to the user.
// errors.Is matches the wrapped sentinel.
type AppError struct {
	Err     error
	Message string
}

// NewAppError wraps err with a user-facing message.
func NewAppError(err error, format string, args ...any) *AppError {
	return &AppError{Err: err, Message: fmt.Sprintf(format, args...)}
}

func (e *AppError) Error() string {
	if e.Err == nil {
		return e.Message
	}
	return fmt.Sprintf("%s: %s", e.Err.Error(), e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// UserMessage returns the AppError message of err, or fallback when err carries none.
func UserMessage(err error, fallback string) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Message != "" {
		return appErr.Message
	}
	return fallback
}
