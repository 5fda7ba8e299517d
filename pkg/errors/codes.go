package errors

import (
	"net/http"
	"strings"
)

// ErrorCode is a string representation of a specific error condition.
type ErrorCode string

func (c ErrorCode) String() string {
	return string(c)
}

// Common Error Codes
const (
	ErrCodeInternal   ErrorCode = "COMMON_001"
	ErrCodeBadRequest ErrorCode = "COMMON_002"
	ErrCodeNotFound   ErrorCode = "COMMON_005"
	ErrCodeTimeout    ErrorCode = "COMMON_009"
	ErrCodeValidation ErrorCode = "COMMON_010"
)

// Aliases
const (
	CodeInternal     = ErrCodeInternal
	CodeInvalidParam = ErrCodeBadRequest
	CodeNotFound     = ErrCodeNotFound
	CodeOK           = ErrorCode("OK")
	CodeUnknown      = ErrorCode("UNKNOWN")
)

// Clustering Module Error Codes
const (
	ErrCodeUnsupportedAttributeType ErrorCode = "AHC_001"
	ErrCodeMissingDistanceEntry     ErrorCode = "AHC_002"
	ErrCodeInvalidClusterPair       ErrorCode = "AHC_003"
	ErrCodeMetricFailed             ErrorCode = "AHC_004"
	ErrCodeUnknownMetric            ErrorCode = "AHC_005"
	ErrCodeUnknownLinkage           ErrorCode = "AHC_006"
	ErrCodeRunCancelled             ErrorCode = "AHC_007"
	ErrCodeInputMismatch            ErrorCode = "AHC_008"
)

// Ingest Module Error Codes
const (
	ErrCodeDocumentUnreadable ErrorCode = "ING_001"
	ErrCodeExtractionFailed   ErrorCode = "ING_002"
)

// ErrorCodeHTTPStatus maps ErrorCodes to HTTP status codes.
var ErrorCodeHTTPStatus = map[ErrorCode]int{
	ErrCodeInternal:   http.StatusInternalServerError,
	ErrCodeBadRequest: http.StatusBadRequest,
	ErrCodeNotFound:   http.StatusNotFound,
	ErrCodeTimeout:    http.StatusGatewayTimeout,
	ErrCodeValidation: http.StatusUnprocessableEntity,

	ErrCodeUnsupportedAttributeType: http.StatusBadRequest,
	ErrCodeMissingDistanceEntry:     http.StatusInternalServerError,
	ErrCodeInvalidClusterPair:       http.StatusInternalServerError,
	ErrCodeMetricFailed:             http.StatusUnprocessableEntity,
	ErrCodeUnknownMetric:            http.StatusBadRequest,
	ErrCodeUnknownLinkage:           http.StatusBadRequest,
	ErrCodeRunCancelled:             http.StatusRequestTimeout,
	ErrCodeInputMismatch:            http.StatusBadRequest,

	ErrCodeDocumentUnreadable: http.StatusUnprocessableEntity,
	ErrCodeExtractionFailed:   http.StatusUnprocessableEntity,
}

// ErrorCodeMessage maps ErrorCodes to default messages.
var ErrorCodeMessage = map[ErrorCode]string{
	ErrCodeInternal:   "internal error",
	ErrCodeBadRequest: "bad request",
	ErrCodeNotFound:   "resource not found",
	ErrCodeTimeout:    "operation timed out",
	ErrCodeValidation: "validation failed",

	ErrCodeUnsupportedAttributeType: "unsupported attribute type",
	ErrCodeMissingDistanceEntry:     "missing distance entry",
	ErrCodeInvalidClusterPair:       "invalid cluster pair",
	ErrCodeMetricFailed:             "distance metric failed",
	ErrCodeUnknownMetric:            "unknown distance metric",
	ErrCodeUnknownLinkage:           "unknown linkage strategy",
	ErrCodeRunCancelled:             "clustering run cancelled",
	ErrCodeInputMismatch:            "input sequences differ in length",

	ErrCodeDocumentUnreadable: "document could not be read",
	ErrCodeExtractionFailed:   "field extraction failed",
}

// HTTPStatusForCode returns the HTTP status code for an ErrorCode.
func HTTPStatusForCode(code ErrorCode) int {
	if status, ok := ErrorCodeHTTPStatus[code]; ok {
		return status
	}
	return http.StatusInternalServerError
}

// DefaultMessageForCode returns the default message for an ErrorCode.
func DefaultMessageForCode(code ErrorCode) string {
	if msg, ok := ErrorCodeMessage[code]; ok {
		return msg
	}
	return "unknown error"
}

// IsClientError returns true if the ErrorCode corresponds to a 4xx HTTP status.
func IsClientError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 400 && status < 500
}

// IsServerError returns true if the ErrorCode corresponds to a 5xx HTTP status.
func IsServerError(code ErrorCode) bool {
	status := HTTPStatusForCode(code)
	return status >= 500 && status < 600
}

// ModuleForCode returns the module prefix of an ErrorCode.
func ModuleForCode(code ErrorCode) string {
	parts := strings.Split(string(code), "_")
	if len(parts) > 0 && parts[0] != "" {
		return parts[0]
	}
	return "UNKNOWN"
}

//Personal.AI order the ending
