package handler

import (
	"net/http"

	"agentpay-gateway/internal/core/domain"
	"agentpay-gateway/internal/core/ports"
	"agentpay-gateway/pkg/apperror"
	"agentpay-gateway/pkg/response"

	"github.com/gin-gonic/gin"
)

// parseAddress decodes a base58 address from a request field, writing the
// validation error itself. The bool reports success.
func parseAddress(c *gin.Context, field, value string) (domain.Address, bool) {
	addr, err := domain.ParseAddress(value)
	if err != nil {
		response.Error(c, apperror.Validation(field+" must be a 32-byte base58 address"))
		return domain.Address{}, false
	}
	return addr, true
}

// HealthCheck handles GET /health — deep health check verifying all
// dependencies.
func HealthCheck(checkers ...ports.HealthChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		type depStatus struct {
			Status string `json:"status"`
			Error  string `json:"error,omitempty"`
		}

		deps := make(map[string]depStatus)
		allHealthy := true

		for _, checker := range checkers {
			if err := checker.Check(c.Request.Context()); err != nil {
				deps[checker.Name()] = depStatus{Status: "unhealthy", Error: err.Error()}
				allHealthy = false
			} else {
				deps[checker.Name()] = depStatus{Status: "healthy"}
			}
		}

		status := "healthy"
		httpCode := http.StatusOK
		if !allHealthy {
			status = "degraded"
			httpCode = http.StatusServiceUnavailable
		}

		c.JSON(httpCode, gin.H{
			"status":       status,
			"dependencies": deps,
		})
	}
}
