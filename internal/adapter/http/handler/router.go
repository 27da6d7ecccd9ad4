package handler

import (
	"agentpay-gateway/internal/adapter/http/middleware"
	redisStore "agentpay-gateway/internal/adapter/storage/redis"
	"agentpay-gateway/internal/core/ports"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// RouterDeps holds all dependencies needed to set up routes.
type RouterDeps struct {
	AgentSvc        ports.AgentService
	PaymentSvc      ports.PaymentService
	SubscriptionSvc ports.SubscriptionService
	AllowanceSvc    ports.AllowanceService
	InvoiceSvc      ports.InvoiceService
	ReputationSvc   ports.ReputationService
	WebhookSvc      ports.WebhookService
	RateLimitStore  *redisStore.RateLimitStore // nil = rate limiting disabled
	HealthCheckers  []ports.HealthChecker
	Logger          zerolog.Logger
}

// SetupRouter initialises the Gin engine with all routes and middleware.
func SetupRouter(deps RouterDeps) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()

	// Global middleware
	r.Use(middleware.Recovery(deps.Logger))
	r.Use(middleware.RequestLogger(deps.Logger))
	r.Use(middleware.MaxBodySize(1 << 20)) // 1 MB request body limit

	// Health check (deep — verifies the ledger RPC node and the registry store)
	r.GET("/health", HealthCheck(deps.HealthCheckers...))

	// Rate limit rules
	rules := middleware.DefaultRateLimitRules()

	// Helper: return rate limiter middleware if store is available, else noop.
	rl := func(group string) gin.HandlerFunc {
		if deps.RateLimitStore == nil {
			return func(c *gin.Context) { c.Next() }
		}
		rule, ok := rules[group]
		if !ok {
			return func(c *gin.Context) { c.Next() }
		}
		return middleware.RateLimiter(deps.RateLimitStore, group, rule, deps.Logger)
	}

	// API v1 routes
	v1 := r.Group("/api/v1")

	agentHandler := NewAgentHandler(deps.AgentSvc, deps.ReputationSvc)
	agents := v1.Group("/agents")
	{
		agents.POST("", rl("instructions"), agentHandler.Register)
		agents.GET("", rl("reads"), agentHandler.List)
		agents.GET("/:name", rl("reads"), agentHandler.Resolve)
		agents.GET("/:name/balance", rl("reads"), agentHandler.Balance)
		agents.POST("/:name/daily-limit", rl("instructions"), agentHandler.SetDailyLimit)
		agents.GET("/:name/reputation", rl("reputation"), agentHandler.Reputation)
	}
	v1.GET("/leaderboard", rl("reputation"), agentHandler.Leaderboard)

	paymentHandler := NewPaymentHandler(deps.PaymentSvc, deps.WebhookSvc)
	payments := v1.Group("/payments")
	{
		payments.POST("/transfer", rl("instructions"), paymentHandler.Transfer)
		payments.POST("/deposit", rl("instructions"), paymentHandler.Deposit)
		payments.POST("/withdraw", rl("instructions"), paymentHandler.Withdraw)
		payments.POST("/batch", rl("instructions"), paymentHandler.Batch)
		payments.POST("/split", rl("instructions"), paymentHandler.Split)
	}

	subscriptionHandler := NewSubscriptionHandler(deps.SubscriptionSvc, deps.WebhookSvc)
	subscriptions := v1.Group("/subscriptions")
	{
		subscriptions.POST("", rl("instructions"), subscriptionHandler.Create)
		subscriptions.GET("/due", rl("reads"), subscriptionHandler.ListDue)
		subscriptions.GET("/:sender", rl("reads"), subscriptionHandler.ListBySender)
		subscriptions.GET("/:sender/:receiver", rl("reads"), subscriptionHandler.Get)
		subscriptions.POST("/:sender/:receiver/execute", rl("instructions"), subscriptionHandler.Execute)
		subscriptions.POST("/:sender/:receiver/cancel", rl("instructions"), subscriptionHandler.Cancel)
	}

	allowanceHandler := NewAllowanceHandler(deps.AllowanceSvc, deps.WebhookSvc)
	allowances := v1.Group("/allowances")
	{
		allowances.POST("", rl("instructions"), allowanceHandler.Approve)
		allowances.GET("/:owner", rl("reads"), allowanceHandler.ListByOwner)
		allowances.GET("/:owner/:spender", rl("reads"), allowanceHandler.Get)
		allowances.POST("/:owner/:spender/increase", rl("instructions"), allowanceHandler.Increase)
		allowances.POST("/:owner/:spender/revoke", rl("instructions"), allowanceHandler.Revoke)
		allowances.POST("/:owner/:spender/pull", rl("instructions"), allowanceHandler.Pull)
	}

	invoiceHandler := NewInvoiceHandler(deps.InvoiceSvc, deps.WebhookSvc)
	invoices := v1.Group("/invoices")
	{
		invoices.POST("", rl("instructions"), invoiceHandler.Create)
		invoices.POST("/counter", rl("instructions"), invoiceHandler.InitCounter)
		invoices.GET("/counter/next", rl("reads"), invoiceHandler.NextID)
		invoices.GET("/agent/:name", rl("reads"), invoiceHandler.ListByAgent)
		invoices.GET("/:id", rl("reads"), invoiceHandler.Get)
		invoices.POST("/:id/pay", rl("instructions"), invoiceHandler.Pay)
		invoices.POST("/:id/reject", rl("instructions"), invoiceHandler.Reject)
		invoices.POST("/:id/cancel", rl("instructions"), invoiceHandler.Cancel)
		invoices.POST("/:id/refund", rl("instructions"), invoiceHandler.Refund)
	}

	webhookHandler := NewWebhookHandler(deps.WebhookSvc)
	webhooks := v1.Group("/webhooks")
	{
		webhooks.POST("", rl("webhooks"), webhookHandler.Register)
		webhooks.GET("/:agent", rl("reads"), webhookHandler.Get)
		webhooks.DELETE("/:agent", rl("webhooks"), webhookHandler.Delete)
		webhooks.POST("/:agent/test", rl("webhooks"), webhookHandler.Test)
	}

	return r
}
