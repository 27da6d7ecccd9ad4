package apperror

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAppError_Error(t *testing.T) {
	e := New("VAL_001", "bad input", http.StatusBadRequest)
	assert.Equal(t, "[VAL_001] bad input", e.Error())

	wrapped := Wrap("UPS_001", "ledger down", http.StatusServiceUnavailable, errors.New("dial tcp: timeout"))
	assert.Contains(t, wrapped.Error(), "UPS_001")
	assert.Contains(t, wrapped.Error(), "dial tcp: timeout")
}

func TestAppError_Unwrap(t *testing.T) {
	inner := errors.New("connection refused")
	e := ErrUpstream(inner)
	assert.ErrorIs(t, e, inner)
}

func TestAppError_As(t *testing.T) {
	var appErr *AppError
	err := error(ErrNotFound("Agent"))
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusNotFound, appErr.HTTPStatus)
	assert.Equal(t, "ENT_001", appErr.Code)
	assert.Equal(t, "Agent not found", appErr.Message)
}

func TestTaxonomyStatuses(t *testing.T) {
	tests := []struct {
		name   string
		err    *AppError
		status int
	}{
		{"validation", Validation("bad"), http.StatusBadRequest},
		{"invalid name", ErrInvalidName(), http.StatusBadRequest},
		{"memo too long", ErrMemoTooLong(), http.StatusBadRequest},
		{"batch size", ErrInvalidBatchSize(), http.StatusBadRequest},
		{"split shares", ErrInvalidSplitShares(), http.StatusBadRequest},
		{"interval", ErrInvalidInterval(), http.StatusBadRequest},
		{"event", ErrInvalidEvent("bogus"), http.StatusBadRequest},
		{"not found", ErrNotFound("Invoice"), http.StatusNotFound},
		{"conflict", ErrConflict("already exists"), http.StatusConflict},
		{"invoice not pending", ErrInvoiceNotPending("paid"), http.StatusConflict},
		{"upstream", ErrUpstream(errors.New("x")), http.StatusServiceUnavailable},
		{"rate limit", ErrRateLimitExceeded(), http.StatusTooManyRequests},
		{"internal", InternalError(errors.New("x")), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

func TestErrInvalidEvent_Message(t *testing.T) {
	e := ErrInvalidEvent("payment_recieved")
	assert.Contains(t, e.Message, "payment_recieved")
}
