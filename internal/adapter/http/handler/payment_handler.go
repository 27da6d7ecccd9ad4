package handler

import (
	"agentpay-gateway/internal/adapter/http/dto"
	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/pkg/apperror"
	"agentpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles transfer, deposit/withdraw, and batch/split
// endpoints.
type PaymentHandler struct {
	paymentSvc ports.PaymentService
	webhookSvc ports.WebhookService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentSvc ports.PaymentService, webhookSvc ports.WebhookService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc, webhookSvc: webhookSvc}
}

// Transfer handles POST /api/v1/payments/transfer.
func (h *PaymentHandler) Transfer(c *gin.Context) {
	var req dto.TransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.paymentSvc.TransferInstruction(c.Request.Context(), req.From, req.To, domain.ToMinorUnits(req.Amount), req.Memo, authority)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.webhookSvc != nil {
		data := map[string]interface{}{
			"from":   req.From,
			"to":     req.To,
			"amount": req.Amount,
			"memo":   req.Memo,
		}
		h.webhookSvc.NotifyAll([]ports.Notification{
			{AgentName: req.From, Event: domain.EventPaymentSent, Data: data},
			{AgentName: req.To, Event: domain.EventPaymentReceived, Data: data},
		})
	}

	response.OK(c, inst)
}

// Deposit handles POST /api/v1/payments/deposit.
func (h *PaymentHandler) Deposit(c *gin.Context) {
	var req dto.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	source, ok := parseAddress(c, "source", req.Source)
	if !ok {
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.paymentSvc.DepositInstruction(c.Request.Context(), req.Name, domain.ToMinorUnits(req.Amount), source, authority)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, inst)
}

// Withdraw handles POST /api/v1/payments/withdraw.
func (h *PaymentHandler) Withdraw(c *gin.Context) {
	var req dto.WithdrawRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	destination, ok := parseAddress(c, "destination", req.Destination)
	if !ok {
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	inst, err := h.paymentSvc.WithdrawInstruction(c.Request.Context(), req.Name, domain.ToMinorUnits(req.Amount), destination, authority)
	if err != nil {
		response.Error(c, err)
		return
	}
	response.OK(c, inst)
}

// Batch handles POST /api/v1/payments/batch.
func (h *PaymentHandler) Batch(c *gin.Context) {
	var req dto.BatchPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	entries := make([]ports.BatchEntry, len(req.Payments))
	for i, p := range req.Payments {
		entries[i] = ports.BatchEntry{RecipientName: p.To, Amount: domain.ToMinorUnits(p.Amount), Memo: p.Memo}
	}

	inst, err := h.paymentSvc.BatchInstruction(c.Request.Context(), req.From, entries, authority)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.webhookSvc != nil {
		var total float64
		notifications := make([]ports.Notification, 0, len(req.Payments)+1)
		for _, p := range req.Payments {
			total += p.Amount
			notifications = append(notifications, ports.Notification{
				AgentName: p.To,
				Event:     domain.EventPaymentReceived,
				Data:      map[string]interface{}{"from": req.From, "amount": p.Amount, "memo": p.Memo},
			})
		}
		notifications = append(notifications, ports.Notification{
			AgentName: req.From,
			Event:     domain.EventPaymentSent,
			Data:      map[string]interface{}{"recipients": len(req.Payments), "total_amount": total},
		})
		h.webhookSvc.NotifyAll(notifications)
	}

	response.OK(c, inst)
}

// Split handles POST /api/v1/payments/split.
func (h *PaymentHandler) Split(c *gin.Context) {
	var req dto.SplitPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, apperror.Validation(err.Error()))
		return
	}
	authority, ok := parseAddress(c, "authority", req.Authority)
	if !ok {
		return
	}

	entries := make([]ports.SplitEntry, len(req.Recipients))
	for i, r := range req.Recipients {
		entries[i] = ports.SplitEntry{Name: r.Name, ShareBps: r.ShareBps}
	}

	inst, err := h.paymentSvc.SplitInstruction(c.Request.Context(), req.From, domain.ToMinorUnits(req.TotalAmount), entries, req.Memo, authority)
	if err != nil {
		response.Error(c, err)
		return
	}

	if h.webhookSvc != nil {
		notifications := make([]ports.Notification, 0, len(req.Recipients))
		for _, r := range req.Recipients {
			notifications = append(notifications, ports.Notification{
				AgentName: r.Name,
				Event:     domain.EventPaymentReceived,
				Data: map[string]interface{}{
					"from":         req.From,
					"total_amount": req.TotalAmount,
					"share_bps":    r.ShareBps,
					"memo":         req.Memo,
				},
			})
		}
		h.webhookSvc.NotifyAll(notifications)
	}

	response.OK(c, inst)
}
