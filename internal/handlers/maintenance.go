package handlers

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"github.com/openstays/marketplace-api/internal/auth"
	"github.com/openstays/marketplace-api/internal/database"
	"gorm.io/gorm"
)

type MaintenanceHandler struct {
	db         *gorm.DB
	authorizer *auth.Authorizer
}

func NewMaintenanceHandler(db *gorm.DB, authorizer *auth.Authorizer) *MaintenanceHandler {
	return &MaintenanceHandler{db: db, authorizer: authorizer}
}

type ResetRequest struct {
	auth.MaintenanceInput
}

// HandleReset rebuilds the schema from scratch and reloads the baseline
// catalogs. Test and demo harnesses only.
func (h *MaintenanceHandler) HandleReset(ctx context.Context, input *ResetRequest) (*MessageResponse, error) {
	if err := h.authorizer.Authorize(input.Token); err != nil {
		return nil, err
	}

	if err := database.Reset(h.db); err != nil {
		return nil, huma.Error500InternalServerError("Reset failed: " + err.Error())
	}

	return message("Schema reset and reseeded"), nil
}
