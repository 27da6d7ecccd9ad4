package handler

import (
	"context"
	"strconv"

	"agentpay-gateway/internal/adapter/http/dto"
	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/pkg/apperror"
	"agentpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice lifecycle endpoints.
type InvoiceHandler struct {
	invoiceSvc ports.InvoiceService
	webhookSvc ports.WebhookService
}

// NewInvoiceHandler creates a new InvoiceHandler.
func NewInvoiceHandler(invoiceSvc ports.InvoiceService, webhookSvc ports.WebhookService) *InvoiceHandler {
	return &InvoiceHandler{invoiceSvc: invoiceSvc, webhookSvc: webhookSvc}
}

func parseInvoiceID(c *gin.Context) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, apperror.Validation("invoice id must be an unsigned integer"))
		return 0, false
	}
	return id, true
}

// Create handles POST /api/v1/invoices.
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.invoiceSvc.CreateInstruction(c.Request.Context(), req.Requester, req.Payer, domain.ToMinorUnits(req.Amount), req.Memo, req.ExpiresInSeconds, authority)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.webhookSvc != nil {
		h.webhookSvc.Notify(req.Payer, domain.EventInvoiceCreated, map[string]interface{}{
			"requester": req.Requester,
			"amount":    req.Amount,
			"memo":      req.Memo,
		})
	}

	response.Created(c, inst)
}

// InitCounter handles POST /api/v1/invoices/counter.
func (h *InvoiceHandler) InitCounter(c *gin.Context) {
	var req dto.InitInvoiceCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	payer, ok := parseAddress(c, "payer", req.Payer)
	if !ok {
		return
	}

	inst, err := h.invoiceSvc.InitCounterInstruction(c.Request.Context(), payer)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.Created(c, inst)
}

// NextID handles GET /api/v1/invoices/counter/next.
func (h *InvoiceHandler) NextID(c *gin.Context) {
	next, err := h.invoiceSvc.NextID(c.Request.Context())
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, dto.NextInvoiceIDResponse{NextID: next})
}

// Get handles GET /api/v1/invoices/:id.
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	view, err := h.invoiceSvc.Get(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, view)
}

// ListByAgent handles GET /api/v1/invoices/agent/:name. Role is required
// (requester or payer); status is an optional effective-status filter.
func (h *InvoiceHandler) ListByAgent(c *gin.Context) {
	views, err := h.invoiceSvc.ListByAgent(c.Request.Context(), c.Param("name"), c.Query("role"), c.Query("status"))
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, views)
}

// Pay handles POST /api/v1/invoices/:id/pay.
func (h *InvoiceHandler) Pay(c *gin.Context) {
	h.action(c, h.invoiceSvc.PayInstruction, domain.EventInvoicePaid)
}

// Reject handles POST /api/v1/invoices/:id/reject.
func (h *InvoiceHandler) Reject(c *gin.Context) {
	h.action(c, h.invoiceSvc.RejectInstruction, domain.EventInvoiceRejected)
}

// Cancel handles POST /api/v1/invoices/:id/cancel.
func (h *InvoiceHandler) Cancel(c *gin.Context) {
	h.action(c, h.invoiceSvc.CancelInstruction, "")
}

// Refund handles POST /api/v1/invoices/:id/refund. The requester returns
// some or all of a settled invoice's amount to the payer.
func (h *InvoiceHandler) Refund(c *gin.Context) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	var req dto.RefundRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.invoiceSvc.RefundInstruction(c.Request.Context(), id, req.From, domain.ToMinorUnits(req.Amount), req.Reason, authority)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.webhookSvc != nil {
		if view, verr := h.invoiceSvc.Get(c.Request.Context(), id); verr == nil {
			amount := req.Amount
			if amount == 0 {
				amount = domain.FromMinorUnits(view.Invoice.Amount)
			}
			h.webhookSvc.Notify(view.Invoice.PayerName, domain.EventPaymentReceived, map[string]interface{}{
				"invoice_id": id,
				"from":       req.From,
				"amount":     amount,
				"reason":     req.Reason,
			})
		}
	}

	response.OK(c, inst)
}

// action runs one of the pay/reject/cancel assemblers and, when event is
// set, notifies the invoice's requester.
func (h *InvoiceHandler) action(c *gin.Context, assemble func(ctx context.Context, id uint64, authority domain.Address) (*domain.Instruction, error), event string) {
	id, ok := parseInvoiceID(c)
	if !ok {
		return
	}
	var req dto.AuthorityRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := assemble(c.Request.Context(), id, authority)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.webhookSvc != nil && event != "" {
		if view, verr := h.invoiceSvc.Get(c.Request.Context(), id); verr == nil {
			h.webhookSvc.Notify(view.Invoice.RequesterName, event, map[string]interface{}{
				"invoice_id": id,
				"payer":      view.Invoice.PayerName,
				"amount":     view.Invoice.Amount,
			})
		}
	}

	response.OK(c, inst)
}
