package errors

import (
	"fmt"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	if appErr, ok := err.(*AppError); ok {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   appErr,
		}
	}
	return &AppError{
		Code:    CodeInternalError,
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	_, ok := err.(*AppError)
	return ok
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	if appErr, ok := err.(*AppError); ok {
		return appErr.Code
	}
	return "UNKNOWN"
}

// Predefined error codes.
// Only CodeExtractionFailed aborts an audit; every downstream failure is
// recovered at its call site with the documented fallback.
const (
	CodeConfigInvalid    = "CONFIG_INVALID"
	CodeExtractionFailed = "EXTRACTION_FAILED"
	CodeClassifierError  = "CLASSIFIER_ERROR"
	CodeArbiterError     = "ARBITER_ERROR"
	CodeScoringError     = "SCORING_ERROR"
	CodeLogisticsError   = "LOGISTICS_ERROR"
	CodeSummaryError     = "SUMMARY_ERROR"
	CodeValidationError  = "VALIDATION_ERROR"
	CodeDatabaseError    = "DATABASE_ERROR"
	CodeNotFound         = "NOT_FOUND"
	CodeInternalError    = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func ExtractionFailed(cause error) *AppError {
	return &AppError{
		Code:    CodeExtractionFailed,
		Message: "could not read the product label",
		Cause:   cause,
	}
}

func ClassifierError(agent string, cause error) *AppError {
	return &AppError{
		Code:    CodeClassifierError,
		Message: fmt.Sprintf("%s classify failed", agent),
		Cause:   cause,
	}
}

func ArbiterError(item string, cause error) *AppError {
	return &AppError{
		Code:    CodeArbiterError,
		Message: fmt.Sprintf("arbiter ruling failed for %q", item),
		Cause:   cause,
	}
}

func ScoringError(cause error) *AppError {
	return &AppError{Code: CodeScoringError, Message: "scorecard call failed", Cause: cause}
}

func LogisticsError(cause error) *AppError {
	return &AppError{Code: CodeLogisticsError, Message: "logistics call failed", Cause: cause}
}

func SummaryError(cause error) *AppError {
	return &AppError{Code: CodeSummaryError, Message: "summary call failed", Cause: cause}
}

func ValidationError(message string) *AppError {
	return New(CodeValidationError, message)
}

func DatabaseError(message string) *AppError {
	return New(CodeDatabaseError, message)
}

func NotFound(resource string) *AppError {
	return New(CodeNotFound, fmt.Sprintf("%s not found", resource))
}
