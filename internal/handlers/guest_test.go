package handlers

import (
	"context"
	"testing"

	"github.com/openstays/marketplace-api/internal/models"
	"golang.org/x/crypto/bcrypt"
)

func TestHandleCreateGuest(t *testing.T) {
	db := setupTestDB(t)
	handler := NewGuestHandler(db)

	req := &CreateGuestRequest{}
	req.Body.Email = "a@x.com"
	req.Body.Password = "correct horse battery"
	req.Body.Country = "Portugal"
	req.Body.MarketingConsent = true
	req.Body.Locale = "pt-PT"

	resp, err := handler.HandleCreateGuest(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleCreateGuest returned error: %v", err)
	}
	if resp.Body.ID == 0 {
		t.Fatal("expected a guest id, got 0")
	}

	var guest models.Guest
	if err := db.First(&guest, resp.Body.ID).Error; err != nil {
		t.Fatalf("failed to read guest back: %v", err)
	}
	if guest.PasswordHash == req.Body.Password {
		t.Error("credential stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(guest.PasswordHash), []byte(req.Body.Password)); err != nil {
		t.Errorf("stored hash does not match the credential: %v", err)
	}
	if !guest.MarketingConsent || guest.Locale != "pt-PT" {
		t.Errorf("consent/locale not persisted: %+v", guest)
	}
}

func TestHandleCreateGuestDuplicateEmail(t *testing.T) {
	db := setupTestDB(t)
	handler := NewGuestHandler(db)

	req := &CreateGuestRequest{}
	req.Body.Email = "a@x.com"
	req.Body.Password = "correct horse battery"

	if _, err := handler.HandleCreateGuest(context.Background(), req); err != nil {
		t.Fatalf("first create returned error: %v", err)
	}

	_, err := handler.HandleCreateGuest(context.Background(), req)
	if err == nil {
		t.Fatal("expected duplicate email to be rejected, got nil")
	}
	assertStatus(t, err, 409)
}

func TestHandleDeleteGuestCascades(t *testing.T) {
	db := setupTestDB(t)
	handler := NewGuestHandler(db)

	hostGuest := mustCreateGuest(t, db, "host@x.com")
	host := mustCreateHost(t, db, hostGuest.ID)
	room := mustCreateStay(t, db, host.ID)

	guest := mustCreateGuest(t, db, "traveller@x.com")
	booking := mustCreateBooking(t, db, guest.ID, room.ID)

	network := models.SocialNetwork{Name: "Instagram"}
	if err := db.Create(&network).Error; err != nil {
		t.Fatalf("failed to create network: %v", err)
	}
	link := models.GuestSocialNetwork{GuestID: guest.ID, SocialNetworkID: network.ID, ProfileURL: "https://instagram.com/traveller"}
	if err := db.Create(&link).Error; err != nil {
		t.Fatalf("failed to create social link: %v", err)
	}

	_, err := handler.HandleDeleteGuest(context.Background(), &DeleteGuestRequest{ID: guest.ID})
	if err != nil {
		t.Fatalf("HandleDeleteGuest returned error: %v", err)
	}

	var bookings, links int64
	db.Model(&models.Booking{}).Where("id = ?", booking.ID).Count(&bookings)
	db.Model(&models.GuestSocialNetwork{}).Count(&links)
	if bookings != 0 || links != 0 {
		t.Errorf("expected cascade to remove bookings and social links, got bookings=%d links=%d", bookings, links)
	}

	// The property graph is untouched.
	if err := db.First(&models.Room{}, room.ID).Error; err != nil {
		t.Errorf("room should remain: %v", err)
	}
}

func TestHandleDeleteGuestNotFound(t *testing.T) {
	db := setupTestDB(t)
	handler := NewGuestHandler(db)

	_, err := handler.HandleDeleteGuest(context.Background(), &DeleteGuestRequest{ID: 4711})
	if err == nil {
		t.Fatal("expected not found, got nil")
	}
	assertStatus(t, err, 404)
}

func TestHandleRecordLoginAppends(t *testing.T) {
	db := setupTestDB(t)
	handler := NewGuestHandler(db)

	guest := mustCreateGuest(t, db, "a@x.com")

	req := &RecordLoginRequest{ID: guest.ID}
	req.Body.OriginAddress = "203.0.113.7"
	if _, err := handler.HandleRecordLogin(context.Background(), req); err != nil {
		t.Fatalf("HandleRecordLogin returned error: %v", err)
	}
	if _, err := handler.HandleRecordLogin(context.Background(), req); err != nil {
		t.Fatalf("second HandleRecordLogin returned error: %v", err)
	}

	var count int64
	db.Model(&models.LoginHistory{}).Where("guest_id = ?", guest.ID).Count(&count)
	if count != 2 {
		t.Errorf("expected 2 login entries, got %d", count)
	}
}

func TestHandleLinkSocialNetworkMissingNetwork(t *testing.T) {
	db := setupTestDB(t)
	handler := NewGuestHandler(db)

	guest := mustCreateGuest(t, db, "a@x.com")

	req := &LinkSocialNetworkRequest{ID: guest.ID}
	req.Body.SocialNetworkID = 999
	req.Body.ProfileURL = "https://example.com/me"

	_, err := handler.HandleLinkSocialNetwork(context.Background(), req)
	if err == nil {
		t.Fatal("expected foreign key violation for missing network, got nil")
	}
	assertStatus(t, err, 422)
}
