package handlers

import (
	"context"
	"testing"

	"github.com/openstays/marketplace-api/internal/auth"
	"github.com/openstays/marketplace-api/internal/config"
	"github.com/openstays/marketplace-api/internal/models"
)

func TestHandleReset(t *testing.T) {
	db := setupTestDB(t)
	authorizer := auth.NewAuthorizer(&config.Config{MaintenanceToken: "ops-secret"})
	handler := NewMaintenanceHandler(db, authorizer)

	mustCreateGuest(t, db, "a@x.com")

	req := &ResetRequest{}
	req.Token = "ops-secret"

	if _, err := handler.HandleReset(context.Background(), req); err != nil {
		t.Fatalf("HandleReset returned error: %v", err)
	}

	var guests, cities int64
	db.Model(&models.Guest{}).Count(&guests)
	db.Model(&models.City{}).Count(&cities)
	if guests != 0 {
		t.Errorf("expected guests wiped by reset, found %d", guests)
	}
	if cities == 0 {
		t.Error("expected baseline cities after reset")
	}
}

func TestHandleResetRejectsBadToken(t *testing.T) {
	db := setupTestDB(t)
	authorizer := auth.NewAuthorizer(&config.Config{MaintenanceToken: "ops-secret"})
	handler := NewMaintenanceHandler(db, authorizer)

	mustCreateGuest(t, db, "a@x.com")

	req := &ResetRequest{}
	req.Token = "wrong"

	_, err := handler.HandleReset(context.Background(), req)
	if err == nil {
		t.Fatal("expected bad token to be rejected, got nil")
	}
	assertStatus(t, err, 401)

	// Nothing was wiped.
	var guests int64
	db.Model(&models.Guest{}).Count(&guests)
	if guests != 1 {
		t.Errorf("expected data untouched after refused reset, found %d guests", guests)
	}
}
