package handler

import (
	"strconv"

	"agentpay-gateway/internal/adapter/http/dto"
	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/pkg/apperror"
	"agentpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AgentHandler handles agent registry and reputation endpoints.
type AgentHandler struct {
	agentSvc      ports.AgentService
	reputationSvc ports.ReputationService
}

// NewAgentHandler creates a new AgentHandler.
func NewAgentHandler(agentSvc ports.AgentService, reputationSvc ports.ReputationService) *AgentHandler {
	return &AgentHandler{agentSvc: agentSvc, reputationSvc: reputationSvc}
}

// Register handles POST /api/v1/agents.
func (h *AgentHandler) Register(c *gin.Context) {
	var req dto.RegisterAgentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.agentSvc.RegisterInstruction(c.Request.Context(), req.Name, authority)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, inst)
}

// List handles GET /api/v1/agents.
func (h *AgentHandler) List(c *gin.Context) {
	agents, err := h.agentSvc.List(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, agents)
}

// Resolve handles GET /api/v1/agents/:name.
func (h *AgentHandler) Resolve(c *gin.Context) {
	view, err := h.agentSvc.Resolve(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// Balance handles GET /api/v1/agents/:name/balance.
func (h *AgentHandler) Balance(c *gin.Context) {
	name := c.Param("name")
	balance, err := h.agentSvc.Balance(c.Request.Context(), name)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.BalanceResponse{Name: name, Balance: balance})
}

// SetDailyLimit handles POST /api/v1/agents/:name/daily-limit.
func (h *AgentHandler) SetDailyLimit(c *gin.Context) {
	var req dto.DailyLimitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.agentSvc.SetDailyLimitInstruction(c.Request.Context(), c.Param("name"), domain.ToMinorUnits(req.Limit), authority)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, inst)
}

// Reputation handles GET /api/v1/agents/:name/reputation.
func (h *AgentHandler) Reputation(c *gin.Context) {
	rep, err := h.reputationSvc.Score(c.Request.Context(), c.Param("name"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rep)
}

// Leaderboard handles GET /api/v1/leaderboard.
func (h *AgentHandler) Leaderboard(c *gin.Context) {
	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 1 {
			response.Error(c, apperror.Validation("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	rows, err := h.reputationSvc.Leaderboard(c.Request.Context(), c.Query("sort"), limit)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, rows)
}
