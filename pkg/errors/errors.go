package errors

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidCredentials  = errors.New("invalid email or password")
	ErrInvalidToken        = errors.New("invalid token")
	ErrExpiredToken        = errors.New("token has expired")
	ErrInvalidRefreshToken = errors.New("invalid or unknown refresh token")
	ErrUnauthorized        = errors.New("unauthorized access")
	ErrForbidden           = errors.New("insufficient permissions")

	ErrWeakPassword = errors.New("password does not meet requirements")
)

// AppError carries a machine-readable code alongside the human message.
// Handlers map the code onto an HTTP status and the response envelope.
type AppError struct {
	Code    string
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

func NewAppError(code, message string, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
