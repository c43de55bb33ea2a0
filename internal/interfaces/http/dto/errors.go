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

// Resource error codes
const (
	// ErrCodeNotFound is used when a route or resource is not found
	ErrCodeNotFound = "ERR_NOT_FOUND"
	// ErrCodeMethodNotAllowed is used when the route exists for another method
	ErrCodeMethodNotAllowed = "ERR_METHOD_NOT_ALLOWED"
)

// Submission error codes
const (
	// ErrCodeInvalidKind is used when a requested submission kind does not exist
	ErrCodeInvalidKind = "ERR_INVALID_KIND"
	// ErrCodeUnknownSection is used when a section has no extraction rule
	ErrCodeUnknownSection = "ERR_UNKNOWN_SECTION"
	// ErrCodeUnknownResetTag is used when a section tag has no Mark N/A defaults
	ErrCodeUnknownResetTag = "ERR_UNKNOWN_RESET_TAG"
	// ErrCodeNoMaterials is used when an order would carry no line items
	ErrCodeNoMaterials = "ERR_NO_MATERIALS"
)

// Input error codes
const (
	// ErrCodeBadRequest is used for malformed requests
	ErrCodeBadRequest = "ERR_BAD_REQUEST"
	// ErrCodeInvalidInput is used for invalid input data
	ErrCodeInvalidInput = "ERR_INVALID_INPUT"
	// ErrCodeInvalidJSON is used when JSON parsing fails
	ErrCodeInvalidJSON = "ERR_INVALID_JSON"
	// ErrCodeRequestTooLarge is used when the body exceeds the configured limit
	ErrCodeRequestTooLarge = "ERR_REQUEST_TOO_LARGE"
)

// ErrorCodeHTTPStatus maps error codes to HTTP status codes
var ErrorCodeHTTPStatus = map[string]int{
	// General errors
	ErrCodeUnknown:  http.StatusInternalServerError,
	ErrCodeInternal: http.StatusInternalServerError,

	ErrCodeValidation: http.StatusBadRequest,

	ErrCodeNotFound:         http.StatusNotFound,
	ErrCodeMethodNotAllowed: http.StatusMethodNotAllowed,

	// Submission errors
	ErrCodeInvalidKind:     http.StatusBadRequest,
	ErrCodeUnknownSection:  http.StatusUnprocessableEntity,
	ErrCodeUnknownResetTag: http.StatusUnprocessableEntity,
	ErrCodeNoMaterials:     http.StatusUnprocessableEntity,

	// Input errors -> 400 Bad Request
	ErrCodeBadRequest:      http.StatusBadRequest,
	ErrCodeInvalidInput:    http.StatusBadRequest,
	ErrCodeInvalidJSON:     http.StatusBadRequest,
	ErrCodeRequestTooLarge: http.StatusRequestEntityTooLarge,
}

// GetHTTPStatus returns the HTTP status code for an error code
// Returns 500 Internal Server Error if the error code is not found
func GetHTTPStatus(code string) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// LegacyErrorCodeMapping maps domain error codes to the standardized API codes
var LegacyErrorCodeMapping = map[string]string{
	"NOT_FOUND":         ErrCodeNotFound,
	"INVALID_INPUT":     ErrCodeInvalidInput,
	"INVALID_KIND":      ErrCodeInvalidKind,
	"UNKNOWN_SECTION":   ErrCodeUnknownSection,
	"UNKNOWN_RESET_TAG": ErrCodeUnknownResetTag,
	"NO_MATERIALS":      ErrCodeNoMaterials,
	"VALIDATION_ERROR":  ErrCodeValidation,
	"BAD_REQUEST":       ErrCodeBadRequest,
	"INTERNAL_ERROR":    ErrCodeInternal,
	"REQUEST_TOO_LARGE": ErrCodeRequestTooLarge,
}

// NormalizeErrorCode converts a legacy error code to the standardized format
// If the code is already in the new format or unknown, returns it as-is
func NormalizeErrorCode(code string) string {
	if newCode, ok := LegacyErrorCodeMapping[code]; ok {
		return newCode
	}
	return code
}
