package types

import "fmt"

// Error types reported in the response envelope
const (
	ErrorTypeValidation   = "ectd.validation"
	ErrorTypeNotFound     = "ectd.notFound"
	ErrorTypeDuplicateKey = "ectd.duplicateKey"
	ErrorTypeConflict     = "ectd.conflict"
	ErrorTypeCorruptState = "ectd.corruptState"
	ErrorTypeUnexpected   = "ectd.unexpected"
)

type CustomError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

func (e *CustomError) Error() string {
	return fmt.Sprintf("%d: %s [type: %s]", e.Code, e.Message, e.Type)
}

// NewCustomError builds a CustomError with a formatted message.
func NewCustomError(code int, errorType, format string, args ...any) *CustomError {
	return &CustomError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Type:    errorType,
	}
}
