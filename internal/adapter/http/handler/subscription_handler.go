package handler

import (
	"agentpay-gateway/internal/adapter/http/dto"
	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/pkg/apperror"
	"agentpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// SubscriptionHandler handles recurring payment endpoints.
type SubscriptionHandler struct {
	subscriptionSvc ports.SubscriptionService
	webhookSvc      ports.WebhookService
}

// NewSubscriptionHandler creates a new SubscriptionHandler.
func NewSubscriptionHandler(subscriptionSvc ports.SubscriptionService, webhookSvc ports.WebhookService) *SubscriptionHandler {
	return &SubscriptionHandler{subscriptionSvc: subscriptionSvc, webhookSvc: webhookSvc}
}

// Create handles POST /api/v1/subscriptions.
func (h *SubscriptionHandler) Create(c *gin.Context) {
	var req dto.CreateSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.subscriptionSvc.CreateInstruction(c.Request.Context(), req.Sender, req.Receiver, domain.ToMinorUnits(req.Amount), req.IntervalSeconds, authority)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, inst)
}

// ListDue handles GET /api/v1/subscriptions/due.
func (h *SubscriptionHandler) ListDue(c *gin.Context) {
	due, err := h.subscriptionSvc.ListDue(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, due)
}

// ListBySender handles GET /api/v1/subscriptions/:sender.
func (h *SubscriptionHandler) ListBySender(c *gin.Context) {
	subs, err := h.subscriptionSvc.ListBySender(c.Request.Context(), c.Param("sender"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, subs)
}

// Get handles GET /api/v1/subscriptions/:sender/:receiver.
func (h *SubscriptionHandler) Get(c *gin.Context) {
	sub, err := h.subscriptionSvc.Get(c.Request.Context(), c.Param("sender"), c.Param("receiver"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sub)
}

// Execute handles POST /api/v1/subscriptions/:sender/:receiver/execute.
// Anyone may crank a due subscription.
func (h *SubscriptionHandler) Execute(c *gin.Context) {
	var req dto.ExecuteSubscriptionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	cranker, ok := parseAddress(c, "cranker", req.Cranker)
	if !ok {
		return
	}

	sender, receiver := c.Param("sender"), c.Param("receiver")
	inst, err := h.subscriptionSvc.ExecuteInstruction(c.Request.Context(), sender, receiver, cranker)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.webhookSvc != nil {
		data := map[string]interface{}{"sender": sender, "receiver": receiver}
		h.webhookSvc.NotifyAll([]ports.Notification{
			{AgentName: sender, Event: domain.EventSubscriptionExecuted, Data: data},
			{AgentName: receiver, Event: domain.EventPaymentReceived, Data: data},
		})
	}

	response.OK(c, inst)
}

// Cancel handles POST /api/v1/subscriptions/:sender/:receiver/cancel.
func (h *SubscriptionHandler) Cancel(c *gin.Context) {
	var req dto.AuthorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.subscriptionSvc.CancelInstruction(c.Request.Context(), c.Param("sender"), c.Param("receiver"), authority)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, inst)
}
