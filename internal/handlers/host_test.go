package handlers

import (
	"context"
	"testing"

	"github.com/openstays/marketplace-api/internal/models"
)

func TestHandlePromoteGuest(t *testing.T) {
	db := setupTestDB(t)
	handler := NewHostHandler(db)

	guest := mustCreateGuest(t, db, "a@x.com")

	req := &PromoteGuestRequest{}
	req.Body.GuestID = guest.ID

	resp, err := handler.HandlePromoteGuest(context.Background(), req)
	if err != nil {
		t.Fatalf("HandlePromoteGuest returned error: %v", err)
	}
	if resp.Body.GuestID != guest.ID {
		t.Errorf("expected host for guest %d, got %d", guest.ID, resp.Body.GuestID)
	}

	// Second promotion is refused at the write boundary.
	_, err = handler.HandlePromoteGuest(context.Background(), req)
	if err == nil {
		t.Fatal("expected second promotion to be refused, got nil")
	}
	assertStatus(t, err, 409)
}

func TestHandlePromoteGuestMissingGuest(t *testing.T) {
	db := setupTestDB(t)
	handler := NewHostHandler(db)

	req := &PromoteGuestRequest{}
	req.Body.GuestID = 4711

	_, err := handler.HandlePromoteGuest(context.Background(), req)
	if err == nil {
		t.Fatal("expected not found for missing guest, got nil")
	}
	assertStatus(t, err, 404)
}

func TestHandleSetReferralRejectsSelf(t *testing.T) {
	db := setupTestDB(t)
	handler := NewHostHandler(db)

	guest := mustCreateGuest(t, db, "a@x.com")
	host := mustCreateHost(t, db, guest.ID)

	req := &SetReferralRequest{ID: host.ID}
	req.Body.ReferredByHostID = host.ID

	_, err := handler.HandleSetReferral(context.Background(), req)
	if err == nil {
		t.Fatal("expected self-referral to be rejected, got nil")
	}
	assertStatus(t, err, 422)
}

func TestHandleSetReferralRejectsCycle(t *testing.T) {
	db := setupTestDB(t)
	handler := NewHostHandler(db)

	hostA := mustCreateHost(t, db, mustCreateGuest(t, db, "a@x.com").ID)
	hostB := mustCreateHost(t, db, mustCreateGuest(t, db, "b@x.com").ID)
	hostC := mustCreateHost(t, db, mustCreateGuest(t, db, "c@x.com").ID)

	// a <- b <- c
	reqB := &SetReferralRequest{ID: hostB.ID}
	reqB.Body.ReferredByHostID = hostA.ID
	if _, err := handler.HandleSetReferral(context.Background(), reqB); err != nil {
		t.Fatalf("failed to set b's referral: %v", err)
	}
	reqC := &SetReferralRequest{ID: hostC.ID}
	reqC.Body.ReferredByHostID = hostB.ID
	if _, err := handler.HandleSetReferral(context.Background(), reqC); err != nil {
		t.Fatalf("failed to set c's referral: %v", err)
	}

	// Closing the loop a -> c must fail: the chain from c reaches a.
	reqA := &SetReferralRequest{ID: hostA.ID}
	reqA.Body.ReferredByHostID = hostC.ID
	_, err := handler.HandleSetReferral(context.Background(), reqA)
	if err == nil {
		t.Fatal("expected referral cycle to be rejected, got nil")
	}
	assertStatus(t, err, 422)
}

func TestHandleDeleteHostClearsReferral(t *testing.T) {
	db := setupTestDB(t)
	handler := NewHostHandler(db)

	referrer := mustCreateHost(t, db, mustCreateGuest(t, db, "a@x.com").ID)
	referred := models.Host{GuestID: mustCreateGuest(t, db, "b@x.com").ID, ReferredByHostID: &referrer.ID}
	if err := db.Create(&referred).Error; err != nil {
		t.Fatalf("failed to create referred host: %v", err)
	}

	if _, err := handler.HandleDeleteHost(context.Background(), &DeleteHostRequest{ID: referrer.ID}); err != nil {
		t.Fatalf("HandleDeleteHost returned error: %v", err)
	}

	var survivor models.Host
	if err := db.First(&survivor, referred.ID).Error; err != nil {
		t.Fatalf("referred host should survive: %v", err)
	}
	if survivor.ReferredByHostID != nil {
		t.Errorf("expected referral pointer to be cleared, got %v", *survivor.ReferredByHostID)
	}
}

func TestHandleCreateTravelAdminDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	handler := NewHostHandler(db)

	req := &CreateTravelAdminRequest{}
	req.Body.Email = "ops@x.com"

	if _, err := handler.HandleCreateTravelAdmin(context.Background(), req); err != nil {
		t.Fatalf("first create returned error: %v", err)
	}
	_, err := handler.HandleCreateTravelAdmin(context.Background(), req)
	if err == nil {
		t.Fatal("expected duplicate admin email to be rejected, got nil")
	}
	assertStatus(t, err, 409)
}
