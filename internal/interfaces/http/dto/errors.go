package dto

import "net/http"

// Error code constants organized by category
// Format: ERR_<CATEGORY>_<DESCRIPTION>

// General error codes
const (
	// ErrCodeUnknown is used when the error type is unknown
	ErrCodeUnknown = "ERR_UNKNOWN"
	// ErrCodeInternal is used for internal server errors
	ErrCodeInternal = "ERR_INTERNAL"
)

// Validation error codes
const (
	// ErrCodeValidation is the base code for validation errors
	ErrCodeValidation = "ERR_VALIDATION"
	// ErrCodeValidationFormat is used when a field has invalid format
	ErrCodeValidationFormat = "ERR_VALIDATION_FORMAT"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
	// ErrCodeConcurrencyConflict is used when optimistic locking fails
	ErrCodeConcurrencyConflict = "ERR_CONCURRENCY_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeBusinessRule is used for generic business rule violations
	ErrCodeBusinessRule = "ERR_BUSINESS_RULE"
	// ErrCodeInvalidPeriod is used when a date range is inverted
	ErrCodeInvalidPeriod = "ERR_INVALID_PERIOD"
	// ErrCodeInactiveEntity is used when a manifest references an inactive entity
	ErrCodeInactiveEntity = "ERR_INACTIVE_ENTITY"
)

// Folio conflict error codes
const (
	// ErrCodeDuplicateSerial is used when a serial number is already taken
	ErrCodeDuplicateSerial = "ERR_DUPLICATE_SERIAL"
	// ErrCodeQuotaExceeded is used when a folio reservation bucket is full
	ErrCodeQuotaExceeded = "ERR_QUOTA_EXCEEDED"
	// ErrCodeAlreadyUsed is used when a reservation is missing or already consumed
	ErrCodeAlreadyUsed = "ERR_ALREADY_USED"
	// ErrCodeReservationInUse is used when deleting a reservation bound to a manifest
	ErrCodeReservationInUse = "ERR_RESERVATION_IN_USE"
	// ErrCodeAllocationFailed is used when the serial counter could not advance
	ErrCodeAllocationFailed = "ERR_ALLOCATION_FAILED"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation:       http.StatusBadRequest,
	ErrCodeValidationFormat: http.StatusBadRequest,

	// Resource errors
	ErrCodeNotFound:            http.StatusNotFound,
	ErrCodeAlreadyExists:       http.StatusConflict,
	ErrCodeConflict:            http.StatusConflict,
	ErrCodeConcurrencyConflict: http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState:   http.StatusUnprocessableEntity,
	ErrCodeBusinessRule:   http.StatusUnprocessableEntity,
	ErrCodeInvalidPeriod:  http.StatusUnprocessableEntity,
	ErrCodeInactiveEntity: http.StatusUnprocessableEntity,

	// Serial and quota conflicts -> 409 Conflict
	ErrCodeDuplicateSerial:  http.StatusConflict,
	ErrCodeAlreadyUsed:      http.StatusConflict,
	ErrCodeQuotaExceeded:    http.StatusConflict,
	ErrCodeReservationInUse: http.StatusConflict,

	// Allocation failure is an internal fault, not a caller error
	ErrCodeAllocationFailed: http.StatusInternalServerError,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,
	ErrCodeInvalidJSON:  http.StatusBadRequest,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to transport error codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_STATE":        ErrCodeInvalidState,
	"CONCURRENCY_CONFLICT": ErrCodeConcurrencyConflict,
	"QUOTA_EXCEEDED":       ErrCodeQuotaExceeded,
	"DUPLICATE_SERIAL":     ErrCodeDuplicateSerial,
	"ALREADY_USED":         ErrCodeAlreadyUsed,
	"RESERVATION_IN_USE":   ErrCodeReservationInUse,
	"ALLOCATION_FAILED":    ErrCodeAllocationFailed,
	"INVALID_PERIOD":       ErrCodeInvalidPeriod,
	"INACTIVE_ENTITY":      ErrCodeInactiveEntity,
}

// NormalizeErrorCode converts a domain error code to the transport format.
// If the code is already in the transport format or unknown, returns it as-is.
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
