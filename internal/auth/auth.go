package auth

import (
	"crypto/subtle"

	"github.com/danielgtaylor/huma/v2"
	"github.com/openstays/marketplace-api/internal/config"
)

// MaintenanceInput is embedded by requests that target maintenance-only
// operations such as the bulk reset.
type MaintenanceInput struct {
	Token string `header:"X-Maintenance-Token" doc:"Operator token for maintenance endpoints"`
}

// Authorizer guards maintenance operations with a static operator token.
// When no token is configured, every maintenance request is refused.
type Authorizer struct {
	token string
}

func NewAuthorizer(cfg *config.Config) *Authorizer {
	return &Authorizer{token: cfg.MaintenanceToken}
}

func (a *Authorizer) Authorize(token string) error {
	if a.token == "" {
		return huma.Error403Forbidden("Maintenance operations are disabled")
	}
	if subtle.ConstantTimeCompare([]byte(token), []byte(a.token)) != 1 {
		return huma.Error401Unauthorized("Invalid maintenance token")
	}
	return nil
}
