// Package error defines domain-specific errors for the DumpMyCash application.
package error

import "errors"

// Report domain errors.
var (
	// ErrReportDataFetch is returned when report data cannot be fetched.
	ErrReportDataFetch = errors.New("failed to fetch report data")

	// ErrInvalidReportPeriod is returned when the requested period is invalid.
	ErrInvalidReportPeriod = errors.New("invalid report period")
)

// ReportErrorCode defines error codes for report errors.
// Format: RPT-XXYYYY where XX is category and YYYY is specific error.
type ReportErrorCode string

const (
	// Validation errors (01XXXX)
	ErrCodeInvalidReportPeriod ReportErrorCode = "RPT-010001"

	// Data errors (02XXXX)
	ErrCodeReportDataFetch ReportErrorCode = "RPT-020001"
)

// ReportError represents a report error with code and message.
type ReportError struct {
	Code    ReportErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ReportError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *ReportError) Unwrap() error {
	return e.Err
}

// NewReportError creates a new ReportError with the given code and message.
func NewReportError(code ReportErrorCode, message string, err error) *ReportError {
	return &ReportError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
