package handler

import (
	"agentpay-gateway/internal/adapter/http/dto"
	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/pkg/apperror"
	"agentpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// WebhookHandler handles notification registry endpoints.
type WebhookHandler struct {
	webhookSvc ports.WebhookService
}

// NewWebhookHandler creates a new WebhookHandler.
func NewWebhookHandler(webhookSvc ports.WebhookService) *WebhookHandler {
	return &WebhookHandler{webhookSvc: webhookSvc}
}

// Register handles POST /api/v1/webhooks. The response carries the signing
// secret; it is never surfaced again.
func (h *WebhookHandler) Register(c *gin.Context) {
	var req dto.RegisterWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}

	registered, err := h.webhookSvc.Register(c.Request.Context(), req.AgentName, req.URL, req.Events)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, registered)
}

// Get handles GET /api/v1/webhooks/:agent.
func (h *WebhookHandler) Get(c *gin.Context) {
	sub, err := h.webhookSvc.Get(c.Request.Context(), c.Param("agent"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, sub)
}

// Delete handles DELETE /api/v1/webhooks/:agent.
func (h *WebhookHandler) Delete(c *gin.Context) {
	if err := h.webhookSvc.Remove(c.Request.Context(), c.Param("agent")); err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, gin.H{"deleted": true})
}

// Test handles POST /api/v1/webhooks/:agent/test — fires a best-effort
// delivery so integrators can verify their endpoint and signature check.
func (h *WebhookHandler) Test(c *gin.Context) {
	var req dto.TestWebhookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	if !domain.ValidEvent(req.Event) {
		response.Error(c, apperror.ErrInvalidEvent(req.Event))
		return
	}

	agent := c.Param("agent")
	if _, err := h.webhookSvc.Get(c.Request.Context(), agent); err != nil {
		response.Error(c, err)
		return
	}

	h.webhookSvc.Notify(agent, req.Event, req.Data)
	response.OK(c, gin.H{"queued": true})
}
