package errors

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ==========================
// Mapping
// ==========================

func TestHTTPStatus(t *testing.T) {
	tests := []struct {
		code ErrorCode
		want int
	}{
		{ErrCodeInvalidRequest, http.StatusBadRequest},
		{ErrCodeSchemaValidationFailed, http.StatusBadRequest},
		{ErrCodeSituationRequired, http.StatusBadRequest},
		{ErrCodeCustomTypeRequired, http.StatusBadRequest},
		{ErrCodeTextRequired, http.StatusBadRequest},
		{ErrCodeTextTooLong, http.StatusBadRequest},
		{ErrCodeSuggestionOutOfRange, http.StatusBadRequest},
		{ErrCodeStaleRequest, http.StatusConflict},
		{ErrCodeSpellerTimeout, http.StatusGatewayTimeout},
		{ErrCodeCacheUnavailable, http.StatusServiceUnavailable},
		{ErrCodeSpellerUpstreamFailed, http.StatusInternalServerError},
		{ErrCodePassportKeyFailed, http.StatusInternalServerError},
		{ErrCodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(string(tt.code), func(t *testing.T) {
			assert.Equal(t, tt.want, HTTPStatus(tt.code))
		})
	}
}

func TestGetErrorCategory(t *testing.T) {
	assert.Equal(t, "UPSTREAM", GetErrorCategory(ErrCodeSpellerUpstreamFailed))
	assert.Equal(t, "UPSTREAM", GetErrorCategory(ErrCodePassportKeyFailed))
	assert.Equal(t, "CACHE", GetErrorCategory(ErrCodeCacheUnavailable))
	assert.Equal(t, "SEQUENCING", GetErrorCategory(ErrCodeStaleRequest))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeTextTooLong))
	assert.Equal(t, "VALIDATION", GetErrorCategory(ErrCodeSituationRequired))
	assert.Equal(t, "OTHER", GetErrorCategory(ErrCodeInternal))
}

func TestIsRetryableErrorCode(t *testing.T) {
	assert.True(t, IsRetryableErrorCode(ErrCodeSpellerTimeout))
	assert.True(t, IsRetryableErrorCode(ErrCodeCacheUnavailable))
	assert.False(t, IsRetryableErrorCode(ErrCodeTextRequired))
	assert.False(t, IsRetryableErrorCode(ErrCodeStaleRequest))
}

func TestNewTextTooLongError_Message(t *testing.T) {
	err := NewTextTooLongError(500, 612)
	assert.Equal(t, "텍스트는 500자 이하여야 합니다.", err.Message)
	assert.Contains(t, err.Details, "612")
}

// ==========================
// Normalize / WriteJSON
// ==========================

func TestNormalize(t *testing.T) {
	assert.Nil(t, Normalize(nil))

	std := NewTextRequiredError()
	assert.Same(t, std, Normalize(std))

	wrapped := fmt.Errorf("handler: %w", std)
	assert.Same(t, std, Normalize(wrapped))

	timeout := Normalize(fmt.Errorf("call: %w", context.DeadlineExceeded))
	assert.Equal(t, ErrCodeSpellerTimeout, timeout.Code)

	other := Normalize(fmt.Errorf("boom"))
	assert.Equal(t, ErrCodeInternal, other.Code)
	assert.Equal(t, "boom", other.Details)
}

func TestWriteJSON(t *testing.T) {
	rec := httptest.NewRecorder()
	WriteJSON(rec, NewSituationRequiredError())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")

	var body ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "상황을 선택해주세요.", body.Error)
	assert.Equal(t, ErrCodeSituationRequired, body.Code)
}

type recordingLogger struct {
	messages []string
	fields   []map[string]interface{}
}

func (l *recordingLogger) Error(msg string, fields map[string]interface{}) {
	l.messages = append(l.messages, msg)
	l.fields = append(l.fields, fields)
}

func TestErrorHandler_HandleRequestError(t *testing.T) {
	log := &recordingLogger{}
	h := NewErrorHandler(log)

	req := httptest.NewRequest(http.MethodPost, "/api/proofread", nil)
	rec := httptest.NewRecorder()
	h.HandleRequestError(rec, req, NewStaleRequestError(3, 5))

	assert.Equal(t, http.StatusConflict, rec.Code)
	require.Len(t, log.messages, 1)
	assert.Equal(t, ErrCodeStaleRequest, log.fields[0]["errorCode"])
	assert.Equal(t, "/api/proofread", log.fields[0]["path"])
}
