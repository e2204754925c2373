package apperrors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// AppError is the single error type domain code is allowed to surface.
// It carries a symbolic code for the wire envelope and the HTTP status
// the boundary should answer with.
type AppError struct {
	Code     ErrorCode   `json:"code"`
	Message  string      `json:"message"`
	Details  interface{} `json:"details,omitempty"`
	Err      error       `json:"-"`
	HTTPCode int         `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New builds an AppError from scratch.
func New(code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: httpCode,
	}
}

// Wrap attaches an underlying error to a new AppError.
func Wrap(err error, code ErrorCode, message string, httpCode int) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Err:      err,
		HTTPCode: httpCode,
	}
}

// WithDetails returns a copy carrying the given details payload. The
// receiver is not mutated so the predeclared errors stay shareable.
func (e *AppError) WithDetails(details interface{}) *AppError {
	clone := *e
	clone.Details = details
	return &clone
}

// FieldDetail is the {field, message} pair validation errors carry.
type FieldDetail struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Is wraps the standard errors.Is.
func Is(err, target error) bool {
	return stderrors.Is(err, target)
}

// As wraps the standard errors.As.
func As(err error, target interface{}) bool {
	return stderrors.As(err, target)
}

// AsAppError extracts an *AppError from an error chain.
func AsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// InternalError wraps an unexpected system error.
func InternalError(err error) *AppError {
	return Wrap(err, CodeInternalServerError, "Internal server error", http.StatusInternalServerError)
}

// ValidationError builds a 422 carrying field details.
func ValidationError(details ...FieldDetail) *AppError {
	return New(CodeValidationError, "Validation error", http.StatusUnprocessableEntity).
		WithDetails(details)
}

// FieldError is the common single-field validation failure.
func FieldError(field, message string) *AppError {
	return ValidationError(FieldDetail{Field: field, Message: message})
}

// NewUnauthorizedError builds a 401.
func NewUnauthorizedError(message string) *AppError {
	return New(CodeUnauthorized, message, http.StatusUnauthorized)
}

// NewForbiddenError builds a 403.
func NewForbiddenError(message string) *AppError {
	return New(CodeForbidden, message, http.StatusForbidden)
}

// NewBadRequestError builds a 400 with the generic validation code.
func NewBadRequestError(message string) *AppError {
	return New(CodeValidationError, message, http.StatusBadRequest)
}

// NewConflictError builds a 409.
func NewConflictError(message string) *AppError {
	return New(CodeConflict, message, http.StatusConflict)
}
