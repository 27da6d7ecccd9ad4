package handler

import (
	"agentpay-gateway/internal/adapter/http/dto"
	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/pkg/apperror"
	"agentpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// AllowanceHandler handles delegated spending endpoints.
type AllowanceHandler struct {
	allowanceSvc ports.AllowanceService
	webhookSvc   ports.WebhookService
}

// NewAllowanceHandler creates a new AllowanceHandler.
func NewAllowanceHandler(allowanceSvc ports.AllowanceService, webhookSvc ports.WebhookService) *AllowanceHandler {
	return &AllowanceHandler{allowanceSvc: allowanceSvc, webhookSvc: webhookSvc}
}

// Approve handles POST /api/v1/allowances.
func (h *AllowanceHandler) Approve(c *gin.Context) {
	var req dto.ApproveAllowanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.allowanceSvc.ApproveInstruction(c.Request.Context(), req.Owner, req.Spender, domain.ToMinorUnits(req.Amount), authority)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, inst)
}

// ListByOwner handles GET /api/v1/allowances/:owner.
func (h *AllowanceHandler) ListByOwner(c *gin.Context) {
	allowances, err := h.allowanceSvc.ListByOwner(c.Request.Context(), c.Param("owner"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, allowances)
}

// Get handles GET /api/v1/allowances/:owner/:spender.
func (h *AllowanceHandler) Get(c *gin.Context) {
	al, err := h.allowanceSvc.Get(c.Request.Context(), c.Param("owner"), c.Param("spender"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, al)
}

// Increase handles POST /api/v1/allowances/:owner/:spender/increase.
func (h *AllowanceHandler) Increase(c *gin.Context) {
	var req dto.IncreaseAllowanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.allowanceSvc.IncreaseInstruction(c.Request.Context(), c.Param("owner"), c.Param("spender"), domain.ToMinorUnits(req.AdditionalAmount), authority)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, inst)
}

// Revoke handles POST /api/v1/allowances/:owner/:spender/revoke.
func (h *AllowanceHandler) Revoke(c *gin.Context) {
	var req dto.AuthorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.allowanceSvc.RevokeInstruction(c.Request.Context(), c.Param("owner"), c.Param("spender"), authority)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, inst)
}

// Pull handles POST /api/v1/allowances/:owner/:spender/pull — a
// spender-initiated transfer within the approved budget.
func (h *AllowanceHandler) Pull(c *gin.Context) {
	var req dto.PullAllowanceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	spenderAuthority, ok := parseAddress(c, "spender_authority", req.SpenderAuthority)
	if !ok {
		return
	}

	owner, spender := c.Param("owner"), c.Param("spender")
	inst, err := h.allowanceSvc.TransferFromInstruction(c.Request.Context(), owner, spender, domain.ToMinorUnits(req.Amount), req.Memo, spenderAuthority)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.webhookSvc != nil {
		h.webhookSvc.Notify(owner, domain.EventAllowancePulled, map[string]interface{}{
			"spender": spender,
			"amount":  req.Amount,
			"memo":    req.Memo,
		})
	}

	response.OK(c, inst)
}
