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
)

// Authentication error codes
const (
	// ErrCodeUnauthorized is used when authentication is required but missing/invalid
	ErrCodeUnauthorized = "ERR_UNAUTHORIZED"
	// ErrCodeTokenExpired is used when the auth token has expired
	ErrCodeTokenExpired = "ERR_TOKEN_EXPIRED"
	// ErrCodeTokenInvalid is used when the auth token is invalid
	ErrCodeTokenInvalid = "ERR_TOKEN_INVALID"
)

// Resource error codes
const (
	// ErrCodeNotFound is used when a resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeAlreadyExists is used when trying to create a duplicate resource
	ErrCodeAlreadyExists = "ERR_ALREADY_EXISTS"
	// ErrCodeConflict is used for general resource conflicts
	ErrCodeConflict = "ERR_CONFLICT"
)

// Business rule error codes
const (
	// ErrCodeInvalidState is used when an operation is invalid for current state
	ErrCodeInvalidState = "ERR_INVALID_STATE"
	// ErrCodeInsufficientStock is used when stock is insufficient
	ErrCodeInsufficientStock = "ERR_INSUFFICIENT_STOCK"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
)

// Upstream error codes
const (
	// ErrCodeOrderRejected is used when the order service rejects a submission
	ErrCodeOrderRejected = "ERR_ORDER_REJECTED"
	// ErrCodeUpstream is used when the order service is unreachable or misbehaving
	ErrCodeUpstream = "ERR_UPSTREAM"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	// Validation errors -> 400 Bad Request
	ErrCodeValidation: http.StatusBadRequest,

	// Auth errors
	ErrCodeUnauthorized: http.StatusUnauthorized,
	ErrCodeTokenExpired: http.StatusUnauthorized,
	ErrCodeTokenInvalid: http.StatusUnauthorized,

	// Resource errors
	ErrCodeNotFound:      http.StatusNotFound,
	ErrCodeAlreadyExists: http.StatusConflict,
	ErrCodeConflict:      http.StatusConflict,

	// Business rule errors -> 422 Unprocessable Entity
	ErrCodeInvalidState:      http.StatusUnprocessableEntity,
	ErrCodeInsufficientStock: http.StatusUnprocessableEntity,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:   http.StatusBadRequest,
	ErrCodeInvalidInput: http.StatusBadRequest,

	// Upstream errors -> 502 Bad Gateway
	ErrCodeOrderRejected: http.StatusBadGateway,
	ErrCodeUpstream:      http.StatusBadGateway,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DomainErrorCodeMapping maps domain error codes to the standardized codes
var DomainErrorCodeMapping = map[string]string{
	"NOT_FOUND":            ErrCodeNotFound,
	"SESSION_NOT_FOUND":    ErrCodeNotFound,
	"ALREADY_EXISTS":       ErrCodeAlreadyExists,
	"EMAIL_TAKEN":          ErrCodeAlreadyExists,
	"USERNAME_TAKEN":       ErrCodeAlreadyExists,
	"INVALID_INPUT":        ErrCodeInvalidInput,
	"INVALID_FIELD":        ErrCodeBadRequest,
	"INVALID_SECTION":      ErrCodeBadRequest,
	"INVALID_QUANTITY":     ErrCodeValidation,
	"INVALID_SIZE":         ErrCodeValidation,
	"INVALID_STATE":        ErrCodeInvalidState,
	"SUBMISSION_IN_FLIGHT": ErrCodeConflict,
	"ALREADY_CONFIRMED":    ErrCodeConflict,
	"INSUFFICIENT_STOCK":   ErrCodeInsufficientStock,
	"UNAUTHORIZED":         ErrCodeUnauthorized,
	"INVALID_CREDENTIALS":  ErrCodeUnauthorized,
	"ORDER_REJECTED":       ErrCodeOrderRejected,
	"LOGOUT_FAILED":        ErrCodeInternal,
}

// NormalizeErrorCode converts a domain error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := DomainErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
