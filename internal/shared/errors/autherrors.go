package errors

import (
	stderrors "errors"
	"net/http"
)

// ErrorTypeInvalidCredentials is returned by login for an unknown email or a wrong password.
const ErrorTypeInvalidCredentials ErrorType = "invalid_credentials"

// AuthError wraps an AppError raised by the identity layer.
type AuthError struct {
	*AppError
	// SecurityEvent marks failures worth counting for brute force detection
	SecurityEvent bool
}

func (e *AuthError) Error() string {
	return e.AppError.Error()
}

func (e *AuthError) Unwrap() error {
	return e.AppError
}

// NewInvalidCredentialsError does not reveal whether the email or the password was wrong.
func NewInvalidCredentialsError() *AuthError {
	return &AuthError{
		AppError: &AppError{
			Type:    ErrorTypeInvalidCredentials,
			Message: "invalid email or password",
			Code:    http.StatusUnauthorized,
		},
		SecurityEvent: true,
	}
}

// IsInvalidCredentialsError reports whether err is a login failure.
func IsInvalidCredentialsError(err error) bool {
	var authErr *AuthError
	if stderrors.As(err, &authErr) {
		return authErr.Type == ErrorTypeInvalidCredentials
	}
	return false
}
