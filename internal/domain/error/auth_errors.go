// Package error defines domain-specific errors for the DumpMyCash application.
package error

import "errors"

// Authentication domain errors.
var (
	// ErrInvalidCredentials is returned when the email or password is wrong.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailAlreadyExists is returned when registering with a taken email.
	ErrEmailAlreadyExists = errors.New("email already registered")

	// ErrUsernameAlreadyExists is returned when registering with a taken username.
	ErrUsernameAlreadyExists = errors.New("username already taken")

	// ErrInvalidEmail is returned when the email format is invalid.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrWeakPassword is returned when the password does not meet the minimum requirements.
	ErrWeakPassword = errors.New("password does not meet minimum requirements")

	// ErrUserNotFound is returned when a user is not found in the system.
	ErrUserNotFound = errors.New("user not found")

	// ErrInvalidToken is returned when a token is invalid or malformed.
	ErrInvalidToken = errors.New("invalid token")

	// ErrExpiredToken is returned when a token has expired.
	ErrExpiredToken = errors.New("token expired")

	// ErrRevokedToken is returned when a refresh token has been revoked.
	ErrRevokedToken = errors.New("token revoked")

	// ErrMissingToken is returned when no token is provided.
	ErrMissingToken = errors.New("token required")

	// ErrInvalidConfirmation is returned when a destructive request carries
	// the wrong confirmation phrase.
	ErrInvalidConfirmation = errors.New("invalid confirmation")

	// ErrPasswordMismatch is returned when the new password and its
	// confirmation differ.
	ErrPasswordMismatch = errors.New("passwords do not match")
)

// AuthErrorCode defines error codes for authentication errors.
// Format: AUTH-XXYYYY where XX is category and YYYY is specific error.
type AuthErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidEmail        AuthErrorCode = "AUTH-010001"
	ErrCodeWeakPassword        AuthErrorCode = "AUTH-010002"
	ErrCodeMissingFields       AuthErrorCode = "AUTH-010003"
	ErrCodeInvalidConfirmation AuthErrorCode = "AUTH-010004"
	ErrCodePasswordMismatch    AuthErrorCode = "AUTH-010005"

	// Conflict errors (02XXXX)
	ErrCodeEmailAlreadyExists    AuthErrorCode = "AUTH-020001"
	ErrCodeUsernameAlreadyExists AuthErrorCode = "AUTH-020002"

	// Credential errors (03XXXX)
	ErrCodeInvalidCredentials AuthErrorCode = "AUTH-030001"
	ErrCodeUserNotFound       AuthErrorCode = "AUTH-030002"

	// Token errors (04XXXX)
	ErrCodeInvalidToken AuthErrorCode = "AUTH-040001"
	ErrCodeExpiredToken AuthErrorCode = "AUTH-040002"
	ErrCodeRevokedToken AuthErrorCode = "AUTH-040003"
	ErrCodeMissingToken AuthErrorCode = "AUTH-040004"

	// Throttling errors (05XXXX)
	ErrCodeRateLimited AuthErrorCode = "AUTH-050001"
)

// AuthError represents an authentication error with code and message.
type AuthError struct {
	Code    AuthErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AuthError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AuthError) Unwrap() error {
	return e.Err
}

// NewAuthError creates a new AuthError with the given code and message.
func NewAuthError(code AuthErrorCode, message string, err error) *AuthError {
	return &AuthError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
