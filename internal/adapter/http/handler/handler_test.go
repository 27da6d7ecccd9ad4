package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"agentpay-gateway/internal/adapter/http/dto"
	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/internal/core/ports/mocks"
	"agentpay-gateway/pkg/apperror"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// base58 for 32 zero bytes
const testAuthority = "11111111111111111111111111111111"

var testInstruction = &domain.Instruction{
	Name: "transfer_by_name",
	Accounts: []domain.AccountMeta{
		domain.SignerMeta(domain.Address{}, true),
	},
	Args: map[string]interface{}{"amount": uint64(1)},
}

func setupRouter(deps RouterDeps) *gin.Engine {
	deps.Logger = zerolog.Nop()
	return SetupRouter(deps)
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader *bytes.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestRegisterAgent_Created(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agentSvc := mocks.NewMockAgentService(ctrl)
	agentSvc.EXPECT().
		RegisterInstruction(gomock.Any(), "alice", domain.Address{}).
		Return(&domain.Instruction{Name: "register_agent"}, nil)

	r := setupRouter(RouterDeps{AgentSvc: agentSvc})
	w := doJSON(t, r, http.MethodPost, "/api/v1/agents", dto.RegisterAgentRequest{
		Name:      "alice",
		Authority: testAuthority,
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), "register_agent")
}

func TestRegisterAgent_BindingError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := setupRouter(RouterDeps{AgentSvc: mocks.NewMockAgentService(ctrl)})
	w := doJSON(t, r, http.MethodPost, "/api/v1/agents", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_001")
}

func TestRegisterAgent_BadAuthority(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := setupRouter(RouterDeps{AgentSvc: mocks.NewMockAgentService(ctrl)})
	w := doJSON(t, r, http.MethodPost, "/api/v1/agents", dto.RegisterAgentRequest{
		Name:      "alice",
		Authority: "not-base58-0OIl",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "authority")
}

func TestResolveAgent_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	agentSvc := mocks.NewMockAgentService(ctrl)
	agentSvc.EXPECT().Resolve(gomock.Any(), "ghost").Return(nil, apperror.ErrNotFound("Agent"))

	r := setupRouter(RouterDeps{AgentSvc: agentSvc})
	w := doJSON(t, r, http.MethodGet, "/api/v1/agents/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "ENT_001")
}

func TestTransfer_FiresWebhooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paymentSvc := mocks.NewMockPaymentService(ctrl)
	paymentSvc.EXPECT().
		TransferInstruction(gomock.Any(), "alice", "bob", uint64(5_000_000), "coffee", domain.Address{}).
		Return(testInstruction, nil)

	webhookSvc := mocks.NewMockWebhookService(ctrl)
	webhookSvc.EXPECT().NotifyAll(gomock.Len(2))

	r := setupRouter(RouterDeps{PaymentSvc: paymentSvc, WebhookSvc: webhookSvc})
	w := doJSON(t, r, http.MethodPost, "/api/v1/payments/transfer", dto.TransferRequest{
		From:      "alice",
		To:        "bob",
		Amount:    5,
		Memo:      "coffee",
		Authority: testAuthority,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "transfer_by_name")
}

func TestTransfer_FloorsDecimalAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// 1.9999999 USDC floors to 1999999 minor units, never rounds up.
	paymentSvc := mocks.NewMockPaymentService(ctrl)
	paymentSvc.EXPECT().
		TransferInstruction(gomock.Any(), "alice", "bob", uint64(1_999_999), "", domain.Address{}).
		Return(testInstruction, nil)

	r := setupRouter(RouterDeps{PaymentSvc: paymentSvc})
	w := doJSON(t, r, http.MethodPost, "/api/v1/payments/transfer", dto.TransferRequest{
		From:      "alice",
		To:        "bob",
		Amount:    1.9999999,
		Authority: testAuthority,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestTransfer_ServiceErrorSkipsWebhooks(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	paymentSvc := mocks.NewMockPaymentService(ctrl)
	paymentSvc.EXPECT().
		TransferInstruction(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, apperror.ErrNotFound("Agent"))

	// No NotifyAll expectation: a failed assembly must not notify.
	webhookSvc := mocks.NewMockWebhookService(ctrl)

	r := setupRouter(RouterDeps{PaymentSvc: paymentSvc, WebhookSvc: webhookSvc})
	w := doJSON(t, r, http.MethodPost, "/api/v1/payments/transfer", dto.TransferRequest{
		From:      "alice",
		To:        "ghost",
		Amount:    1,
		Authority: testAuthority,
	})

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestBatch_TooManyEntriesRejectedAtBinding(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	entries := make([]dto.BatchPaymentEntry, 11)
	for i := range entries {
		entries[i] = dto.BatchPaymentEntry{To: "bob", Amount: 1}
	}

	r := setupRouter(RouterDeps{PaymentSvc: mocks.NewMockPaymentService(ctrl)})
	w := doJSON(t, r, http.MethodPost, "/api/v1/payments/batch", dto.BatchPaymentRequest{
		From:      "alice",
		Payments:  entries,
		Authority: testAuthority,
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestLeaderboard_PassesSortAndLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reputationSvc := mocks.NewMockReputationService(ctrl)
	reputationSvc.EXPECT().
		Leaderboard(gomock.Any(), "volume", 5).
		Return([]ports.LeaderboardRow{{Name: "alice", Score: 25, Tier: "active"}}, nil)

	r := setupRouter(RouterDeps{ReputationSvc: reputationSvc})
	w := doJSON(t, r, http.MethodGet, "/api/v1/leaderboard?sort=volume&limit=5", nil)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "alice")
}

func TestLeaderboard_InvalidLimit(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := setupRouter(RouterDeps{ReputationSvc: mocks.NewMockReputationService(ctrl)})
	w := doJSON(t, r, http.MethodGet, "/api/v1/leaderboard?limit=zero", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSubscriptionExecute_NotifiesBothParties(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	subscriptionSvc := mocks.NewMockSubscriptionService(ctrl)
	subscriptionSvc.EXPECT().
		ExecuteInstruction(gomock.Any(), "alice", "bob", domain.Address{}).
		Return(testInstruction, nil)

	webhookSvc := mocks.NewMockWebhookService(ctrl)
	webhookSvc.EXPECT().NotifyAll(gomock.Len(2))

	r := setupRouter(RouterDeps{SubscriptionSvc: subscriptionSvc, WebhookSvc: webhookSvc})
	w := doJSON(t, r, http.MethodPost, "/api/v1/subscriptions/alice/bob/execute", dto.ExecuteSubscriptionRequest{
		Cranker: testAuthority,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInvoicePay_NotifiesRequester(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceSvc := mocks.NewMockInvoiceService(ctrl)
	invoiceSvc.EXPECT().
		PayInstruction(gomock.Any(), uint64(7), domain.Address{}).
		Return(testInstruction, nil)
	invoiceSvc.EXPECT().
		Get(gomock.Any(), uint64(7)).
		Return(&ports.InvoiceView{
			Invoice: domain.Invoice{ID: 7, RequesterName: "alice", PayerName: "bob", Amount: 100},
			Status:  "paid",
		}, nil)

	webhookSvc := mocks.NewMockWebhookService(ctrl)
	webhookSvc.EXPECT().Notify("alice", domain.EventInvoicePaid, gomock.Any())

	r := setupRouter(RouterDeps{InvoiceSvc: invoiceSvc, WebhookSvc: webhookSvc})
	w := doJSON(t, r, http.MethodPost, "/api/v1/invoices/7/pay", dto.AuthorityRequest{
		Authority: testAuthority,
	})

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestInvoicePay_NotPending(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceSvc := mocks.NewMockInvoiceService(ctrl)
	invoiceSvc.EXPECT().
		PayInstruction(gomock.Any(), uint64(7), domain.Address{}).
		Return(nil, apperror.ErrInvoiceNotPending("expired"))

	r := setupRouter(RouterDeps{InvoiceSvc: invoiceSvc})
	w := doJSON(t, r, http.MethodPost, "/api/v1/invoices/7/pay", dto.AuthorityRequest{
		Authority: testAuthority,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ENT_003")
}

func TestInvoiceRefund_NotifiesPayer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceSvc := mocks.NewMockInvoiceService(ctrl)
	invoiceSvc.EXPECT().
		RefundInstruction(gomock.Any(), uint64(7), "alice", uint64(1_500_000), "damaged goods", domain.Address{}).
		Return(testInstruction, nil)
	invoiceSvc.EXPECT().
		Get(gomock.Any(), uint64(7)).
		Return(&ports.InvoiceView{
			Invoice: domain.Invoice{ID: 7, RequesterName: "alice", PayerName: "bob", Amount: 3_000_000},
			Status:  "paid",
		}, nil)

	webhookSvc := mocks.NewMockWebhookService(ctrl)
	webhookSvc.EXPECT().Notify("bob", domain.EventPaymentReceived, gomock.Any())

	r := setupRouter(RouterDeps{InvoiceSvc: invoiceSvc, WebhookSvc: webhookSvc})
	w := doJSON(t, r, http.MethodPost, "/api/v1/invoices/7/refund", dto.RefundRequest{
		From:      "alice",
		Amount:    1.5,
		Reason:    "damaged goods",
		Authority: testAuthority,
	})

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "transfer_by_name")
}

func TestInvoiceRefund_WrongIssuer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	invoiceSvc := mocks.NewMockInvoiceService(ctrl)
	invoiceSvc.EXPECT().
		RefundInstruction(gomock.Any(), uint64(7), "bob", uint64(0), "", domain.Address{}).
		Return(nil, apperror.ErrConflict("Only alice (the payment receiver) can issue a refund"))

	r := setupRouter(RouterDeps{InvoiceSvc: invoiceSvc})
	w := doJSON(t, r, http.MethodPost, "/api/v1/invoices/7/refund", dto.RefundRequest{
		From:      "bob",
		Authority: testAuthority,
	})

	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "ENT_002")
}

func TestInvoiceGet_InvalidID(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := setupRouter(RouterDeps{InvoiceSvc: mocks.NewMockInvoiceService(ctrl)})
	w := doJSON(t, r, http.MethodGet, "/api/v1/invoices/not-a-number", nil)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestWebhookRegister_ReturnsSecretOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	webhookSvc := mocks.NewMockWebhookService(ctrl)
	webhookSvc.EXPECT().
		Register(gomock.Any(), "alice", "https://example.com/hook", []string{domain.EventInvoicePaid}).
		Return(&ports.RegisteredWebhook{
			Subscription: domain.WebhookSubscription{
				AgentName: "alice",
				URL:       "https://example.com/hook",
				Secret:    "aabbcc",
				Events:    []string{domain.EventInvoicePaid},
			},
			Secret: "aabbcc",
		}, nil)

	r := setupRouter(RouterDeps{WebhookSvc: webhookSvc})
	w := doJSON(t, r, http.MethodPost, "/api/v1/webhooks", dto.RegisterWebhookRequest{
		AgentName: "alice",
		URL:       "https://example.com/hook",
		Events:    []string{domain.EventInvoicePaid},
	})

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Contains(t, w.Body.String(), `"secret":"aabbcc"`)
}

func TestWebhookTest_UnknownEvent(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	r := setupRouter(RouterDeps{WebhookSvc: mocks.NewMockWebhookService(ctrl)})
	w := doJSON(t, r, http.MethodPost, "/api/v1/webhooks/alice/test", dto.TestWebhookRequest{
		Event: "solar_flare",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "VAL_008")
}

func TestWebhookDelete_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	webhookSvc := mocks.NewMockWebhookService(ctrl)
	webhookSvc.EXPECT().Remove(gomock.Any(), "ghost").Return(apperror.ErrNotFound("Webhook registration"))

	r := setupRouter(RouterDeps{WebhookSvc: webhookSvc})
	w := doJSON(t, r, http.MethodDelete, "/api/v1/webhooks/ghost", nil)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

type stubChecker struct {
	name string
	err  error
}

func (s stubChecker) Name() string                  { return s.name }
func (s stubChecker) Check(_ context.Context) error { return s.err }

func TestHealthCheck_Healthy(t *testing.T) {
	r := setupRouter(RouterDeps{HealthCheckers: []ports.HealthChecker{
		stubChecker{name: "ledger"},
		stubChecker{name: "redis"},
	}})

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"healthy"`)
}

func TestHealthCheck_Degraded(t *testing.T) {
	r := setupRouter(RouterDeps{HealthCheckers: []ports.HealthChecker{
		stubChecker{name: "ledger", err: errors.New("connection refused")},
	}})

	w := doJSON(t, r, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded"`)
}
