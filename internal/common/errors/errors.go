// Package errors provides standardized error handling for the HTTP API.
package errors

import (
	"fmt"
	"net/http"
	"strings"
	"time"
)

// ==========================
// 1. Standard Error Types
// ==========================

// ErrorCode represents standardized internal error codes.
type ErrorCode string

const (
	ErrCodeInvalidRequest         ErrorCode = "INVALID_REQUEST"
	ErrCodeSchemaValidationFailed ErrorCode = "SCHEMA_VALIDATION_FAILED"
	ErrCodeSituationRequired      ErrorCode = "SITUATION_REQUIRED"
	ErrCodeCustomTypeRequired     ErrorCode = "CUSTOM_TYPE_REQUIRED"
	ErrCodeTextRequired           ErrorCode = "TEXT_REQUIRED"
	ErrCodeTextTooLong            ErrorCode = "TEXT_TOO_LONG"
	ErrCodeSuggestionOutOfRange   ErrorCode = "SUGGESTION_OUT_OF_RANGE"
	ErrCodeSpellerUpstreamFailed  ErrorCode = "SPELLER_UPSTREAM_FAILED"
	ErrCodeSpellerTimeout         ErrorCode = "SPELLER_TIMEOUT"
	ErrCodePassportKeyFailed      ErrorCode = "PASSPORT_KEY_FAILED"
	ErrCodeCacheUnavailable       ErrorCode = "CACHE_UNAVAILABLE"
	ErrCodeStaleRequest           ErrorCode = "STALE_REQUEST"
	ErrCodeNotFound               ErrorCode = "NOT_FOUND"
	ErrCodeInternal               ErrorCode = "INTERNAL_ERROR"
)

// StandardError represents a structured application error.
type StandardError struct {
	Code      ErrorCode              `json:"code"`
	Message   string                 `json:"message"`
	Details   string                 `json:"details,omitempty"`
	Retryable bool                   `json:"retryable"`
	Metadata  map[string]interface{} `json:"metadata,omitempty"`
	Timestamp time.Time              `json:"timestamp"`
}

func (e *StandardError) Error() string {
	return fmt.Sprintf("StandardError[%s]: %s", e.Code, e.Message)
}

// WithMetadata returns the error with an extra metadata entry.
func (e *StandardError) WithMetadata(key string, value interface{}) *StandardError {
	if e.Metadata == nil {
		e.Metadata = make(map[string]interface{})
	}
	e.Metadata[key] = value
	return e
}

// ==========================
// 2. Error Constructors
// ==========================

// NewInvalidRequestError creates a non-retryable malformed request error.
func NewInvalidRequestError(details string) *StandardError {
	return &StandardError{
		Code:      ErrCodeInvalidRequest,
		Message:   "요청 형식이 올바르지 않습니다.",
		Details:   details,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSchemaValidationFailedError creates a non-retryable schema validation error.
func NewSchemaValidationFailedError(operation string, violations []string) *StandardError {
	return &StandardError{
		Code:      ErrCodeSchemaValidationFailed,
		Message:   "요청 값이 올바르지 않습니다.",
		Details:   strings.Join(violations, "; "),
		Retryable: false,
		Metadata:  map[string]interface{}{"operation": operation},
		Timestamp: time.Now().UTC(),
	}
}

// NewSituationRequiredError is returned when a non-custom category has no situation.
func NewSituationRequiredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSituationRequired,
		Message:   "상황을 선택해주세요.",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewCustomTypeRequiredError is returned when the custom category has no free-text type.
func NewCustomTypeRequiredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeCustomTypeRequired,
		Message:   "모달 유형을 입력해주세요.",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTextRequiredError is returned when no text was submitted for checking.
func NewTextRequiredError() *StandardError {
	return &StandardError{
		Code:      ErrCodeTextRequired,
		Message:   "텍스트가 제공되지 않았습니다.",
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewTextTooLongError is returned when submitted text exceeds the limit in runes.
func NewTextTooLongError(limit, got int) *StandardError {
	return &StandardError{
		Code:      ErrCodeTextTooLong,
		Message:   fmt.Sprintf("텍스트는 %d자 이하여야 합니다.", limit),
		Details:   fmt.Sprintf("length: %d, limit: %d", got, limit),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSuggestionOutOfRangeError is returned when an error span does not fit the text.
func NewSuggestionOutOfRangeError(start, end, length int) *StandardError {
	return &StandardError{
		Code:      ErrCodeSuggestionOutOfRange,
		Message:   "오류 위치가 텍스트 범위를 벗어났습니다.",
		Details:   fmt.Sprintf("start: %d, end: %d, length: %d", start, end, length),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewSpellerUpstreamFailedError creates a retryable upstream speller error.
func NewSpellerUpstreamFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeSpellerUpstreamFailed,
		Message:   "맞춤법 검사 서비스 호출에 실패했습니다.",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewSpellerTimeoutError creates a retryable upstream timeout error.
func NewSpellerTimeoutError() *StandardError {
	return &StandardError{
		Code:      ErrCodeSpellerTimeout,
		Message:   "맞춤법 검사 서비스 응답 시간이 초과되었습니다.",
		Details:   "upstream call exceeded timeout threshold",
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewPassportKeyFailedError creates a retryable passport key acquisition error.
func NewPassportKeyFailedError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodePassportKeyFailed,
		Message:   "passport key 발급에 실패했습니다.",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewCacheUnavailableError creates a retryable cache error.
func NewCacheUnavailableError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeCacheUnavailable,
		Message:   "Cache unavailable",
		Details:   err.Error(),
		Retryable: true,
		Timestamp: time.Now().UTC(),
	}
}

// NewStaleRequestError reports a response superseded by a newer request in the same session.
func NewStaleRequestError(requestID, latest uint64) *StandardError {
	return &StandardError{
		Code:      ErrCodeStaleRequest,
		Message:   "더 최신 요청이 있어 결과를 적용하지 않았습니다.",
		Details:   fmt.Sprintf("requestId: %d, latest: %d", requestID, latest),
		Retryable: false,
		Metadata:  map[string]interface{}{"requestId": requestID, "latestRequestId": latest},
		Timestamp: time.Now().UTC(),
	}
}

// NewNotFoundError reports a route that does not exist.
func NewNotFoundError(path string) *StandardError {
	return &StandardError{
		Code:      ErrCodeNotFound,
		Message:   "요청한 경로를 찾을 수 없습니다.",
		Details:   path,
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// NewInternalError wraps an unexpected error.
func NewInternalError(err error) *StandardError {
	return &StandardError{
		Code:      ErrCodeInternal,
		Message:   "Unexpected error",
		Details:   err.Error(),
		Retryable: false,
		Timestamp: time.Now().UTC(),
	}
}

// ==========================
// 3. Mapping
// ==========================

// HTTPStatus maps an error code to the response status.
func HTTPStatus(code ErrorCode) int {
	switch code {
	case ErrCodeInvalidRequest,
		ErrCodeSchemaValidationFailed,
		ErrCodeSituationRequired,
		ErrCodeCustomTypeRequired,
		ErrCodeTextRequired,
		ErrCodeTextTooLong,
		ErrCodeSuggestionOutOfRange:
		return http.StatusBadRequest

	case ErrCodeNotFound:
		return http.StatusNotFound

	case ErrCodeStaleRequest:
		return http.StatusConflict

	case ErrCodeSpellerTimeout:
		return http.StatusGatewayTimeout

	case ErrCodeCacheUnavailable:
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}

// IsRetryableErrorCode checks if an error code is retryable.
func IsRetryableErrorCode(code ErrorCode) bool {
	switch code {
	case ErrCodeSpellerUpstreamFailed,
		ErrCodeSpellerTimeout,
		ErrCodePassportKeyFailed,
		ErrCodeCacheUnavailable:
		return true
	default:
		return false
	}
}

// GetErrorCategory returns the category of the error code.
func GetErrorCategory(code ErrorCode) string {
	codeStr := string(code)
	switch {
	case strings.Contains(codeStr, "SPELLER") || strings.Contains(codeStr, "PASSPORT"):
		return "UPSTREAM"
	case strings.Contains(codeStr, "CACHE"):
		return "CACHE"
	case strings.Contains(codeStr, "STALE"):
		return "SEQUENCING"
	case strings.Contains(codeStr, "INVALID") || strings.Contains(codeStr, "VALIDATION") ||
		strings.Contains(codeStr, "REQUIRED") || strings.Contains(codeStr, "TOO_LONG") ||
		strings.Contains(codeStr, "OUT_OF_RANGE"):
		return "VALIDATION"
	default:
		return "OTHER"
	}
}
