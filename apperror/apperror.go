// Package apperror defines a centralized system for application-specific errors.
// Handlers, services and stores all return *AppError values so that the HTTP
// layer can translate any failure into a fixed JSON shape and status code.
// It plays the same role as an exception filter in Nest.js: one place decides
// what a failure looks like on the wire.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrorType classifies an AppError; the class alone decides the HTTP status.
type ErrorType int

const (
	InternalError   ErrorType = iota // bugs and unexpected failures
	DatabaseError                    // the database rejected or failed a query
	MigrationError                   // schema migrations could not run
	AuthError                        // missing, invalid or expired credentials
	NotFoundError                    // the addressed resource does not exist
	ValidationError                  // a decoded request broke a field rule
	BadRequestError                  // the request could not be decoded at all
	ConflictError                    // a uniqueness rule was violated
)

var statusByType = map[ErrorType]int{
	AuthError:       http.StatusUnauthorized,
	NotFoundError:   http.StatusNotFound,
	ValidationError: http.StatusBadRequest,
	BadRequestError: http.StatusBadRequest,
	ConflictError:   http.StatusConflict,
}

// MissingFieldsMessage is the fixed message returned whenever a request omits
// one of its required fields.
const MissingFieldsMessage = "Please enter all the fields"

// AppError carries a client-facing Message and, optionally, the cause (`Err`)
// for logs and `errors.Is`/`errors.As`. Err never reaches a response body.
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// StatusCode maps the error class to an HTTP status. Anything not listed,
// database and migration failures included, is a 500.
func (e *AppError) StatusCode() int {
	if status, ok := statusByType[e.Type]; ok {
		return status
	}
	return http.StatusInternalServerError
}

func newError(t ErrorType, message string, cause error) *AppError {
	return &AppError{Type: t, Message: message, Err: cause}
}

func NewInternalError(message string, cause error) *AppError {
	return newError(InternalError, message, cause)
}

func NewDatabaseError(message string, cause error) *AppError {
	return newError(DatabaseError, message, cause)
}

func NewMigrationError(message string, cause error) *AppError {
	return newError(MigrationError, message, cause)
}

func NewAuthError(message string, cause error) *AppError {
	return newError(AuthError, message, cause)
}

func NewNotFoundError(message string, cause error) *AppError {
	return newError(NotFoundError, message, cause)
}

func NewValidationError(message string, cause error) *AppError {
	return newError(ValidationError, message, cause)
}

// NewMissingFieldsError is the ValidationError every handler returns when a
// required field is absent or empty.
func NewMissingFieldsError(cause error) *AppError {
	return NewValidationError(MissingFieldsMessage, cause)
}

func NewBadRequestError(message string, cause error) *AppError {
	return newError(BadRequestError, message, cause)
}

func NewConflictError(message string, cause error) *AppError {
	return newError(ConflictError, message, cause)
}

// ErrorResponse is the JSON body of every failed request.
type ErrorResponse struct {
	Success bool   `json:"success" example:"false"`
	Message string `json:"message" example:"Please enter all the fields"`
}

// ToResponse projects e onto the wire shape.
func (e *AppError) ToResponse() ErrorResponse {
	return ErrorResponse{Success: false, Message: e.Message}
}

// FromError finds an *AppError in err's chain, including one wrapped with `%w`.
func FromError(err error) (*AppError, bool) {
	var ae *AppError
	if err != nil && errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}

// Is reports whether err's chain holds an AppError of class t.
func Is(err error, t ErrorType) bool {
	ae, ok := FromError(err)
	return ok && ae.Type == t
}

// IsNotFound is shorthand for Is(err, NotFoundError).
func IsNotFound(err error) bool { return Is(err, NotFoundError) }

// IsAuthError is shorthand for Is(err, AuthError).
func IsAuthError(err error) bool { return Is(err, AuthError) }
