package handlers

import (
	"context"
	"testing"

	"github.com/openstays/marketplace-api/internal/models"
)

func TestHandleCreateReviewHostTypeUsesGuestIdentity(t *testing.T) {
	db := setupTestDB(t)
	handler := NewFeedbackHandler(db, nil)

	hostGuest := mustCreateGuest(t, db, "host@x.com")
	host := mustCreateHost(t, db, hostGuest.ID)
	room := mustCreateStay(t, db, host.ID)
	guest := mustCreateGuest(t, db, "traveller@x.com")
	booking := mustCreateBooking(t, db, guest.ID, room.ID)

	// The host reviews the stay with their underlying guest identity, not
	// their host id.
	req := &CreateReviewRequest{BookingID: booking.ID}
	req.Body.ReviewerID = hostGuest.ID
	req.Body.ReviewerType = models.ReviewerTypeHost
	req.Body.Rating = 4
	req.Body.Comment = "Tidy guests"

	resp, err := handler.HandleCreateReview(context.Background(), req)
	if err != nil {
		t.Fatalf("HandleCreateReview returned error: %v", err)
	}

	var review models.Review
	if err := db.First(&review, resp.Body.ID).Error; err != nil {
		t.Fatalf("failed to read review back: %v", err)
	}
	if review.ReviewerID != hostGuest.ID {
		t.Errorf("expected reviewer id %d, got %d", hostGuest.ID, review.ReviewerID)
	}
	if review.ReviewerType != models.ReviewerTypeHost {
		t.Errorf("expected reviewer type Host, got %s", review.ReviewerType)
	}
}

func TestHandleCreateReviewUnknownReviewer(t *testing.T) {
	db := setupTestDB(t)
	handler := NewFeedbackHandler(db, nil)

	host := mustCreateHost(t, db, mustCreateGuest(t, db, "host@x.com").ID)
	room := mustCreateStay(t, db, host.ID)
	guest := mustCreateGuest(t, db, "traveller@x.com")
	booking := mustCreateBooking(t, db, guest.ID, room.ID)

	req := &CreateReviewRequest{BookingID: booking.ID}
	req.Body.ReviewerID = 999
	req.Body.ReviewerType = models.ReviewerTypeGuest
	req.Body.Rating = 3

	_, err := handler.HandleCreateReview(context.Background(), req)
	if err == nil {
		t.Fatal("expected unknown reviewer to be rejected, got nil")
	}
	assertStatus(t, err, 422)
}

func TestHandleOpenAndResolveTicket(t *testing.T) {
	db := setupTestDB(t)
	handler := NewFeedbackHandler(db, nil)

	host := mustCreateHost(t, db, mustCreateGuest(t, db, "host@x.com").ID)
	room := mustCreateStay(t, db, host.ID)
	guest := mustCreateGuest(t, db, "traveller@x.com")
	booking := mustCreateBooking(t, db, guest.ID, room.ID)

	open := &OpenTicketRequest{BookingID: booking.ID}
	open.Body.Issue = "Heating is broken"
	open.Body.ContactChannel = "email"

	resp, err := handler.HandleOpenTicket(context.Background(), open)
	if err != nil {
		t.Fatalf("HandleOpenTicket returned error: %v", err)
	}

	resolve := &ResolveTicketRequest{ID: resp.Body.ID}
	resolve.Body.Resolution = "Replaced the thermostat"
	if _, err := handler.HandleResolveTicket(context.Background(), resolve); err != nil {
		t.Fatalf("HandleResolveTicket returned error: %v", err)
	}

	var ticket models.CustomerService
	if err := db.First(&ticket, resp.Body.ID).Error; err != nil {
		t.Fatalf("failed to read ticket back: %v", err)
	}
	if ticket.Resolution != "Replaced the thermostat" || ticket.ResolvedAt == nil {
		t.Errorf("expected resolved ticket, got %+v", ticket)
	}
}

func TestHandleOpenTicketUnknownBooking(t *testing.T) {
	db := setupTestDB(t)
	handler := NewFeedbackHandler(db, nil)

	open := &OpenTicketRequest{BookingID: 4711}
	open.Body.Issue = "Lost keys"

	_, err := handler.HandleOpenTicket(context.Background(), open)
	if err == nil {
		t.Fatal("expected unknown booking to be rejected, got nil")
	}
	assertStatus(t, err, 404)
}
