package apperr

import (
	"errors"
	"fmt"

	"gorm.io/gorm"
)

type Type string

const (
	TypeBadRequest   Type = "BAD_REQUEST"
	TypeUnauthorized Type = "UNAUTHORIZED"
	TypeForbidden    Type = "FORBIDDEN"
	TypeNotFound     Type = "NOT_FOUND"
	TypeConflict     Type = "CONFLICT"
	TypeValidation   Type = "VALIDATION_ERROR"
	TypeInternal     Type = "INTERNAL"
)

// Error is the application error carried from services up to the HTTP layer.
type Error struct {
	Type    Type
	Message string
	Status  int
	Details any
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Type, e.Message) }

func StatusFor(t Type) int {
	switch t {
	case TypeBadRequest, TypeValidation:
		return 400
	case TypeUnauthorized:
		return 401
	case TypeForbidden:
		return 403
	case TypeNotFound:
		return 404
	case TypeConflict:
		return 409
	default:
		return 500
	}
}

func New(t Type, message string) *Error {
	return &Error{Type: t, Message: message, Status: StatusFor(t)}
}

func WithDetails(t Type, message string, details any) *Error {
	e := New(t, message)
	e.Details = details
	return e
}

func BadRequest(message string) *Error   { return New(TypeBadRequest, message) }
func Unauthorized(message string) *Error { return New(TypeUnauthorized, message) }
func Forbidden() *Error                  { return New(TypeForbidden, "Forbidden") }
func NotFound(message string) *Error     { return New(TypeNotFound, message) }
func Conflict(message string) *Error     { return New(TypeConflict, message) }
func Internal(message string) *Error     { return New(TypeInternal, message) }

// From normalizes any error into an *Error. Unique-key violations become
// CONFLICT, missing rows NOT_FOUND, everything else INTERNAL.
func From(err error) *Error {
	var ae *Error
	if errors.As(err, &ae) {
		return ae
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return Conflict("Resource already exists")
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return NotFound("Resource not found")
	}
	return Internal("Unexpected error")
}
