package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Validation errors
const (
	// ErrCodeInvalidInput indicates the input is invalid.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
	// ErrCodeInvalidFormat indicates a field has an invalid format.
	ErrCodeInvalidFormat ErrorCode = "INVALID_FORMAT"
)

// Configuration errors
const (
	// ErrCodeMisconfigured indicates required configuration is absent or invalid.
	ErrCodeMisconfigured ErrorCode = "MISCONFIGURED"
)

// Internal errors
const (
	// ErrCodeInternal indicates an unexpected internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
	// ErrCodeEncryption indicates a cipher operation failed.
	ErrCodeEncryption ErrorCode = "ENCRYPTION_FAILED"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeEncryption: true,
	ErrCodeInternal:   false,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
// Only encryption failures caused by an exhausted random source qualify.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
