package handlers

import (
	"testing"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/openstays/marketplace-api/internal/database"
	"github.com/openstays/marketplace-api/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:?_foreign_keys=on"), &gorm.Config{})
	if err != nil {
		t.Fatalf("failed to connect database: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := database.Migrate(db); err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func assertStatus(t *testing.T, err error, want int) {
	t.Helper()
	serr, ok := err.(huma.StatusError)
	if !ok {
		t.Fatalf("expected a status error, got %T: %v", err, err)
	}
	if serr.GetStatus() != want {
		t.Errorf("expected status %d, got %d (%v)", want, serr.GetStatus(), err)
	}
}

func mustCreateGuest(t *testing.T, db *gorm.DB, email string) models.Guest {
	t.Helper()
	guest := models.Guest{Email: email, PasswordHash: "hash"}
	if err := db.Create(&guest).Error; err != nil {
		t.Fatalf("failed to create guest %s: %v", email, err)
	}
	return guest
}

func mustCreateHost(t *testing.T, db *gorm.DB, guestID uint) models.Host {
	t.Helper()
	host := models.Host{GuestID: guestID, JoinedAt: time.Now()}
	if err := db.Create(&host).Error; err != nil {
		t.Fatalf("failed to create host: %v", err)
	}
	return host
}

// mustCreateStay builds location → rental → room for a host and returns the
// bookable room.
func mustCreateStay(t *testing.T, db *gorm.DB, hostID uint) models.Room {
	t.Helper()
	location := models.Location{StreetAddress: "12 Quay Street"}
	if err := db.Create(&location).Error; err != nil {
		t.Fatalf("failed to create location: %v", err)
	}
	rental := models.VacationRental{HostID: hostID, LocationID: location.ID, PropertyType: "apartment", Capacity: 2}
	if err := db.Create(&rental).Error; err != nil {
		t.Fatalf("failed to create rental: %v", err)
	}
	room := models.Room{VacationRentalID: rental.ID, RoomType: "double", NightlyPrice: 95}
	if err := db.Create(&room).Error; err != nil {
		t.Fatalf("failed to create room: %v", err)
	}
	return room
}

func mustCreateBooking(t *testing.T, db *gorm.DB, guestID, roomID uint) models.Booking {
	t.Helper()
	booking := models.Booking{
		GuestID:       guestID,
		RoomID:        roomID,
		CheckInDate:   time.Now().Add(24 * time.Hour),
		CheckOutDate:  time.Now().Add(72 * time.Hour),
		TotalPrice:    190,
		PaymentStatus: models.PaymentStatusPending,
	}
	if err := db.Create(&booking).Error; err != nil {
		t.Fatalf("failed to create booking: %v", err)
	}
	return booking
}
