// Package errors provides standardized error handling for the mortgage
// qualification rule engine.
//
// Two tiers exist: calculator-level validation errors, which are carried back
// to the caller inside a successful dispatch envelope, and dispatch-level
// errors (missing or unknown tool, unexpected faults), which change the
// envelope status code.
package errors

import "fmt"

// ErrorCode represents standardized internal error codes.
type ErrorCode string

// Calculator validation errors. The message attached to each of these is the
// exact text surfaced to the caller as the ErrorResult payload.
const (
	ErrCodeMissingGrossIncome   ErrorCode = "MISSING_GROSS_INCOME"
	ErrCodeMissingPurchasePrice ErrorCode = "MISSING_PURCHASE_PRICE"
	ErrCodeMissingCreditScore   ErrorCode = "MISSING_CREDIT_SCORE"
	ErrCodeCalculationFailed    ErrorCode = "CALCULATION_FAILED"
)

// Dispatch-level errors.
const (
	ErrCodeMissingToolName ErrorCode = "MISSING_TOOL_NAME"
	ErrCodeUnknownTool     ErrorCode = "UNKNOWN_TOOL"
	ErrCodeDispatchFault   ErrorCode = "DISPATCH_FAULT"
)

// CalculationError is a calculator-level failure. Its Error() string is the
// user-facing message placed verbatim in the ErrorResult, so constructors
// below own the exact wording.
type CalculationError struct {
	Code    ErrorCode
	Message string
}

func (e *CalculationError) Error() string {
	return e.Message
}

// NewMissingFieldError reports a required input that was absent or zero.
func NewMissingFieldError(code ErrorCode, message string) *CalculationError {
	return &CalculationError{Code: code, Message: message}
}

// NewCalculationFailedError wraps an internal computation or decode fault.
// The toolLabel is the human-readable calculator name, e.g. "GDS/TDS".
func NewCalculationFailedError(toolLabel string, cause error) *CalculationError {
	return &CalculationError{
		Code:    ErrCodeCalculationFailed,
		Message: fmt.Sprintf("%s calculation failed: %v", toolLabel, cause),
	}
}

// CodeOf extracts the error code from a CalculationError, or
// ErrCodeCalculationFailed for any other error.
func CodeOf(err error) ErrorCode {
	if ce, ok := err.(*CalculationError); ok {
		return ce.Code
	}
	return ErrCodeCalculationFailed
}
