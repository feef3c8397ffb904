// Package common holds the error taxonomy shared by services and handlers.
package common

import "errors"

var (
	ErrNotFound     = errors.New("not found")
	ErrDuplicate    = errors.New("duplicate")
	ErrValidation   = errors.New("validation")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrInvalidToken = errors.New("invalid token")
)

// apiError pairs one of the sentinel kinds above with a caller-facing message.
// errors.Is against the sentinel still works through Unwrap.
type apiError struct {
	kind error
	msg  string
}

func (e *apiError) Error() string { return e.msg }
func (e *apiError) Unwrap() error { return e.kind }

func NotFound(msg string) error     { return &apiError{kind: ErrNotFound, msg: msg} }
func Duplicate(msg string) error    { return &apiError{kind: ErrDuplicate, msg: msg} }
func Validation(msg string) error   { return &apiError{kind: ErrValidation, msg: msg} }
func Unauthorized(msg string) error { return &apiError{kind: ErrUnauthorized, msg: msg} }
func Forbidden(msg string) error    { return &apiError{kind: ErrForbidden, msg: msg} }
