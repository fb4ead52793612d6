package apperror

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrPermission         = errors.New("permission denied")
	ErrInvalidInput       = errors.New("invalid input")
	ErrConflict           = errors.New("conflict")
	ErrInternal           = errors.New("internal server error")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// FieldError is a single failed input check, rendered as {msg, param}.
type FieldError struct {
	Param string `json:"param,omitempty"`
	Msg   string `json:"msg"`
}

type AppError struct {
	BaseError error
	Message   string
	Details   string
	Fields    []FieldError
	Err       error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (Details: %s, Cause: %v)", e.BaseError.Error(), e.Message, e.Details, e.Err)
	}
	return fmt.Sprintf("%s: %s (Details: %s)", e.BaseError.Error(), e.Message, e.Details)
}

func (e *AppError) Unwrap() error {
	return e.BaseError
}

// Cause returns the underlying failure, if any.
func (e *AppError) Cause() error {
	return e.Err
}

func NewAppError(base error, msg, details string, err error) *AppError {
	return &AppError{BaseError: base, Message: msg, Details: details, Err: err}
}

func NewNotFound(msg, identifier string) *AppError {
	details := fmt.Sprintf("identifier '%s' was not found", identifier)
	return NewAppError(ErrNotFound, msg, details, nil)
}

func NewInvalidInput(details string, err error) *AppError {
	return NewAppError(ErrInvalidInput, "Invalid input provided", details, err)
}

// NewValidation reports one or more field errors. The first message doubles as
// the top-level message.
func NewValidation(fields ...FieldError) *AppError {
	msg := "Invalid input provided"
	if len(fields) > 0 {
		msg = fields[0].Msg
	}
	e := NewAppError(ErrInvalidInput, msg, "validation failed", nil)
	e.Fields = fields
	return e
}

func NewConflict(msg, details string) *AppError {
	return NewAppError(ErrConflict, msg, details, nil)
}

func NewInternal(details string, err error) *AppError {
	return NewAppError(ErrInternal, "Server Error", details, err)
}

func NewUnauthorized(msg string, err error) *AppError {
	return NewAppError(ErrUnauthorized, msg, "authentication required", err)
}

func NewInvalidCredentials(details string) *AppError {
	e := NewAppError(ErrInvalidCredentials, "wrong-credentials", details, nil)
	e.Fields = []FieldError{{Msg: "wrong-credentials"}}
	return e
}

func NewPermissionDenied(msg, details string) *AppError {
	return NewAppError(ErrPermission, msg, details, nil)
}

func ToHTTPStatus(err error) int {
	switch {
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidInput), errors.Is(err, ErrConflict), errors.Is(err, ErrInvalidCredentials):
		return http.StatusBadRequest
	case errors.Is(err, ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, ErrPermission):
		return http.StatusForbidden
	}
	return http.StatusInternalServerError
}

func (e *AppError) ToJSON() gin.H {
	body := gin.H{"msg": e.Message}
	if len(e.Fields) > 0 {
		body["errors"] = e.Fields
	}
	return body
}
