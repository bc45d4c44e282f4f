// Package error defines domain-specific errors for the DumpMyCash application.
package error

import "errors"

// Account domain errors.
var (
	// ErrAccountNotFound is returned when an account is not found in the system.
	ErrAccountNotFound = errors.New("account not found")

	// ErrNotAuthorizedToModifyAccount is returned when user is not authorized to modify an account.
	ErrNotAuthorizedToModifyAccount = errors.New("not authorized to modify account")

	// ErrEmptyAccountName is returned when the account name is empty.
	ErrEmptyAccountName = errors.New("account name cannot be empty")

	// ErrAccountNameTooLong is returned when the account name exceeds the maximum length.
	ErrAccountNameTooLong = errors.New("account name too long")

	// ErrNegativeInitialBalance is returned when an account is created with a negative balance.
	ErrNegativeInitialBalance = errors.New("initial balance cannot be negative")

	// ErrAccountHasActivity is returned when deleting an account that still has
	// transactions or transfers referencing it.
	ErrAccountHasActivity = errors.New("account has transactions or transfers")
)

// AccountErrorCode defines error codes for account errors.
// Format: ACC-XXYYYY where XX is category and YYYY is specific error.
type AccountErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeEmptyAccountName       AccountErrorCode = "ACC-010001"
	ErrCodeAccountNameTooLong     AccountErrorCode = "ACC-010002"
	ErrCodeNegativeInitialBalance AccountErrorCode = "ACC-010003"
	ErrCodeAccountNotFound        AccountErrorCode = "ACC-010004"
	ErrCodeNotAuthorizedAccount   AccountErrorCode = "ACC-010005"

	// Conflict errors (02XXXX)
	ErrCodeAccountHasActivity AccountErrorCode = "ACC-020001"
)

// AccountError represents an account error with code and message.
type AccountError struct {
	Code    AccountErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AccountError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AccountError) Unwrap() error {
	return e.Err
}

// NewAccountError creates a new AccountError with the given code and message.
func NewAccountError(code AccountErrorCode, message string, err error) *AccountError {
	return &AccountError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
