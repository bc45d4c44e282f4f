// Package error defines domain-specific errors for the DumpMyCash application.
package error

import "errors"

// Transfer domain errors.
var (
	// ErrTransferNotFound is returned when a transfer is not found in the system.
	ErrTransferNotFound = errors.New("transfer not found")

	// ErrNotAuthorizedToModifyTransfer is returned when user is not authorized to modify a transfer.
	ErrNotAuthorizedToModifyTransfer = errors.New("not authorized to modify transfer")

	// ErrMissingTransferAccounts is returned when either transfer account is missing.
	ErrMissingTransferAccounts = errors.New("both accounts are required")

	// ErrSameTransferAccount is returned when source and destination are the same account.
	ErrSameTransferAccount = errors.New("cannot transfer to the same account")

	// ErrInvalidTransferAmount is returned when the transfer amount is not positive.
	ErrInvalidTransferAmount = errors.New("transfer amount must be positive")

	// ErrTransferAccountNotFound is returned when a transfer account is not found or not owned.
	ErrTransferAccountNotFound = errors.New("account not found")

	// ErrInsufficientBalance is returned when the source account cannot cover the amount.
	ErrInsufficientBalance = errors.New("insufficient balance in source account")
)

// TransferErrorCode defines error codes for transfer errors.
// Format: TRF-XXYYYY where XX is category and YYYY is specific error.
type TransferErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeMissingTransferAccounts TransferErrorCode = "TRF-010001"
	ErrCodeSameTransferAccount     TransferErrorCode = "TRF-010002"
	ErrCodeInvalidTransferAmount   TransferErrorCode = "TRF-010003"
	ErrCodeTransferAccountNotFound TransferErrorCode = "TRF-010004"
	ErrCodeTransferNotFound        TransferErrorCode = "TRF-010005"
	ErrCodeNotAuthorizedTransfer   TransferErrorCode = "TRF-010006"

	// Balance errors (02XXXX)
	ErrCodeInsufficientBalance TransferErrorCode = "TRF-020001"
)

// TransferError represents a transfer error with code and message.
type TransferError struct {
	Code    TransferErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TransferError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TransferError) Unwrap() error {
	return e.Err
}

// NewTransferError creates a new TransferError with the given code and message.
func NewTransferError(code TransferErrorCode, message string, err error) *TransferError {
	return &TransferError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
