package error

import "errors"

// Analytics domain errors.
var (
	// ErrInvalidMonth is returned when the requested month is outside 1-12.
	ErrInvalidMonth = errors.New("invalid month")

	// ErrInvalidPeriodDays is returned when the summary window length is not positive.
	ErrInvalidPeriodDays = errors.New("invalid period days")
)

// AnalyticsErrorCode defines error codes for analytics errors.
// Format: ANL-XXYYYY where XX is category and YYYY is specific error.
type AnalyticsErrorCode string

const (
	ErrCodeInvalidMonth      AnalyticsErrorCode = "ANL-010001"
	ErrCodeInvalidPeriodDays AnalyticsErrorCode = "ANL-010002"
)

// AnalyticsError represents an analytics error with code and message.
type AnalyticsError struct {
	Code    AnalyticsErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *AnalyticsError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *AnalyticsError) Unwrap() error {
	return e.Err
}

// NewAnalyticsError creates a new AnalyticsError with the given code and message.
func NewAnalyticsError(code AnalyticsErrorCode, message string, err error) *AnalyticsError {
	return &AnalyticsError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}
