package errors

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewErrorResponse(t *testing.T) {
	resp := NewErrorResponse(QuoteNotFound, "trace-123")

	assert.Equal(t, "QUOTE_001", resp.Error.Code)
	assert.Equal(t, "Quote not found", resp.Error.Message)
	assert.Equal(t, "trace-123", resp.Error.TraceID)
	assert.Empty(t, resp.Error.Details)
}

func TestNewErrorResponse_WithOptions(t *testing.T) {
	resp := NewErrorResponse(ValidationGeneral, "trace-456",
		WithMessage("patient name is empty"),
		WithDetails("patient_name: required"),
	)

	assert.Equal(t, "patient name is empty", resp.Error.Message)
	assert.Equal(t, []string{"patient_name: required"}, resp.Error.Details)
}

func TestWrapStoreError_PreservesMessage(t *testing.T) {
	storeErr := errors.New("pq: connection refused")
	resp := WrapStoreError(storeErr, "trace-789")

	assert.Equal(t, string(SystemStoreError), resp.Error.Code)
	assert.Contains(t, resp.Error.Details, "pq: connection refused")
	assert.Equal(t, http.StatusInternalServerError, resp.GetHTTPStatus())
}

func TestGetHTTPStatus(t *testing.T) {
	testCases := []struct {
		code     ErrorCode
		expected int
	}{
		{QuoteMissingPatient, http.StatusBadRequest},
		{ValidationInvalidTier, http.StatusBadRequest},
		{QuoteNotFound, http.StatusNotFound},
		{CatalogItemNotFound, http.StatusNotFound},
		{QuoteIllegalTransition, http.StatusUnprocessableEntity},
		{QuoteDuplicateLine, http.StatusUnprocessableEntity},
		{CatalogFieldNotEnum, http.StatusUnprocessableEntity},
		{CleanupNothingToApply, http.StatusUnprocessableEntity},
		{SystemRateLimitExceeded, http.StatusTooManyRequests},
		{SystemServiceUnavailable, http.StatusServiceUnavailable},
		{SystemStoreError, http.StatusInternalServerError},
		{ErrorCode("BOGUS_999"), http.StatusInternalServerError},
	}

	for _, tc := range testCases {
		assert.Equal(t, tc.expected, GetHTTPStatus(tc.code), "code %s", tc.code)
	}
}

func TestIsClientServerError(t *testing.T) {
	assert.True(t, NewErrorResponse(QuoteNotFound, "t").IsClientError())
	assert.False(t, NewErrorResponse(QuoteNotFound, "t").IsServerError())
	assert.True(t, NewErrorResponse(SystemInternalError, "t").IsServerError())
}

func TestErrorMessagesRegistered(t *testing.T) {
	codes := []ErrorCode{
		ValidationGeneral, ValidationInvalidPrice, ValidationInvalidTier,
		CatalogItemNotFound, CatalogUnknownField, CatalogFieldNotEnum,
		QuoteNotFound, QuoteMissingPatient, QuoteIllegalTransition, QuoteDuplicateLine,
		CleanupUnknownField, CleanupEmptyCorrection, CleanupNothingToApply,
		SystemInternalError, SystemStoreError,
	}
	for _, code := range codes {
		assert.True(t, IsValidErrorCode(code), "code %s is not registered", code)
	}
	assert.False(t, IsValidErrorCode(ErrorCode("NOPE_000")))
}
