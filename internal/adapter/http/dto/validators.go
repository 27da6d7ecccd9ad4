package dto

import (
	"net/url"

	"agentpay-gateway/internal/core/domain"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func init() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("agent_name", validateAgentName)
		_ = v.RegisterValidation("safe_url", validateSafeURL)
	}
}

// validateAgentName enforces the ledger program's name length bounds. The
// program imposes no charset restriction, so neither do we.
func validateAgentName(fl validator.FieldLevel) bool {
	return domain.ValidName(fl.Field().String())
}

// validateSafeURL accepts only absolute http/https URLs.
func validateSafeURL(fl validator.FieldLevel) bool {
	raw := fl.Field().String()
	u, err := url.ParseRequestURI(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
