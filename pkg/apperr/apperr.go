package apperr

import (
	"errors"
	"net/http"
)

// Error is an expected application failure: a user-facing message plus the
// HTTP status it maps to. Usecases return these; the HTTP boundary translates
// them once (pkg/httpx), so handlers never branch on failure classes.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return e.Message
}

// New creates an application error with an explicit status code.
func New(status int, message string) *Error {
	return &Error{Status: status, Message: message}
}

// BadRequest signals invalid input (400).
func BadRequest(message string) *Error {
	return New(http.StatusBadRequest, message)
}

// Unauthorized signals a missing or invalid credential (401).
func Unauthorized(message string) *Error {
	return New(http.StatusUnauthorized, message)
}

// Forbidden signals an authenticated caller without permission (403).
func Forbidden(message string) *Error {
	return New(http.StatusForbidden, message)
}

// NotFound signals an absent entity (404).
func NotFound(message string) *Error {
	return New(http.StatusNotFound, message)
}

// Conflict signals a state conflict such as a duplicate favorite (409).
func Conflict(message string) *Error {
	return New(http.StatusConflict, message)
}

// Is reports whether err is an application error with the given status.
func Is(err error, status int) bool {
	var e *Error
	return errors.As(err, &e) && e.Status == status
}

// StatusOf returns the status carried by err, or 0 for non-application errors.
func StatusOf(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.Status
	}
	return 0
}
