package apperror

import (
	"fmt"
	"net/http"
)

// AppError is a structured error that maps to HTTP responses.
type AppError struct {
	Code       string `json:"error_code"`
	Message    string `json:"message"`
	HTTPStatus int    `json:"-"`
	Err        error  `json:"-"` // Wrapped internal error (not exposed to client)
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// New creates a new AppError.
func New(code string, message string, httpStatus int) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
	}
}

// Wrap wraps an internal error with an AppError.
func Wrap(code string, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Err:        err,
	}
}

// ---- Validation (VAL) ----

// Validation returns a 400 error for malformed or out-of-range input.
// Validation errors are detected locally and never reach the ledger.
func Validation(message string) *AppError {
	return New("VAL_001", message, http.StatusBadRequest)
}

func ErrInvalidName() *AppError {
	return New("VAL_002", "Agent name must be between 1 and 32 characters", http.StatusBadRequest)
}

func ErrMemoTooLong() *AppError {
	return New("VAL_003", "Memo exceeds 128 bytes", http.StatusBadRequest)
}

func ErrInvalidAmount() *AppError {
	return New("VAL_004", "Amount must be greater than 0", http.StatusBadRequest)
}

func ErrInvalidBatchSize() *AppError {
	return New("VAL_005", "Batch must contain 1-10 payments", http.StatusBadRequest)
}

func ErrInvalidSplitShares() *AppError {
	return New("VAL_006", "Split shares must add up to 10000 basis points", http.StatusBadRequest)
}

func ErrInvalidInterval() *AppError {
	return New("VAL_007", "Subscription interval must be at least 60 seconds", http.StatusBadRequest)
}

func ErrInvalidEvent(event string) *AppError {
	return New("VAL_008", fmt.Sprintf("Invalid webhook event: %s", event), http.StatusBadRequest)
}

// ---- Entities (ENT) ----

// ErrNotFound reports that a named entity's record does not exist on the
// ledger. Distinct from ErrUpstream: absence must be explicit, never inferred
// from a transient failure.
func ErrNotFound(entity string) *AppError {
	return New("ENT_001", fmt.Sprintf("%s not found", entity), http.StatusNotFound)
}

func ErrConflict(message string) *AppError {
	return New("ENT_002", message, http.StatusConflict)
}

func ErrInvoiceNotPending(status string) *AppError {
	return New("ENT_003", fmt.Sprintf("Invoice is not pending (status: %s)", status), http.StatusConflict)
}

// ---- Upstream ledger (UPS) ----

// ErrUpstream wraps a transient ledger or network failure. The gateway never
// retries; callers see 503.
func ErrUpstream(err error) *AppError {
	return Wrap("UPS_001", "Ledger service unavailable", http.StatusServiceUnavailable, err)
}

// ---- Webhook delivery (HOOK) ----

// ErrDelivery marks a failed webhook send. It is logged by the notifier and
// never propagates past it.
func ErrDelivery(err error) *AppError {
	return Wrap("HOOK_001", "Webhook delivery failed", http.StatusBadGateway, err)
}

// ---- Rate Limiting (RATE) ----

func ErrRateLimitExceeded() *AppError {
	return New("RATE_001", "Rate limit exceeded", http.StatusTooManyRequests)
}

// ---- System (SYS) ----

// InternalError wraps an internal error as a SYS_001 error.
func InternalError(err error) *AppError {
	return Wrap("SYS_001", "Internal server error", http.StatusInternalServerError, err)
}
