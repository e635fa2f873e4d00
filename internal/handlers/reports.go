package handlers

import (
	"context"
	"time"

	"gorm.io/gorm"
)

// ReportHandler serves the ad-hoc multi-table joins external consumers
// run against the model. Every foreign key these joins touch is indexed.
type ReportHandler struct {
	db *gorm.DB
}

func NewReportHandler(db *gorm.DB) *ReportHandler {
	return &ReportHandler{db: db}
}

type GuestStatementRequest struct {
	GuestID uint `path:"id"`
}

type GuestStatementRow struct {
	BookingID     uint      `json:"booking_id"`
	CheckInDate   time.Time `json:"check_in_date"`
	CheckOutDate  time.Time `json:"check_out_date"`
	TotalPrice    float64   `json:"total_price"`
	PaymentStatus string    `json:"payment_status"`
	RoomType      string    `json:"room_type"`
	PropertyType  string    `json:"property_type"`
	HostEmail     string    `json:"host_email"`
}

type GuestStatementResponse struct {
	Body struct {
		Rows []GuestStatementRow `json:"rows"`
	}
}

// HandleGuestStatement walks guest → booking → room → rental → host and
// back down to the host's guest identity for the contact email.
func (h *ReportHandler) HandleGuestStatement(ctx context.Context, input *GuestStatementRequest) (*GuestStatementResponse, error) {
	rows := []GuestStatementRow{}
	err := h.db.Table("bookings").
		Select("bookings.id AS booking_id, bookings.check_in_date, bookings.check_out_date, bookings.total_price, bookings.payment_status, rooms.room_type, vacation_rentals.property_type, host_guests.email AS host_email").
		Joins("JOIN rooms ON rooms.id = bookings.room_id").
		Joins("JOIN vacation_rentals ON vacation_rentals.id = rooms.vacation_rental_id").
		Joins("JOIN hosts ON hosts.id = vacation_rentals.host_id").
		Joins("JOIN guests AS host_guests ON host_guests.id = hosts.guest_id").
		Where("bookings.guest_id = ? AND bookings.deleted_at IS NULL", input.GuestID).
		Order("bookings.check_in_date").
		Scan(&rows).Error
	if err != nil {
		return nil, mapWriteError(err)
	}

	res := &GuestStatementResponse{}
	res.Body.Rows = rows
	return res, nil
}

type BookingLedgerRequest struct {
	BookingID uint `path:"id"`
}

type BookingLedgerRow struct {
	Reference       string     `json:"reference"`
	Amount          float64    `json:"amount"`
	OccurredOn      time.Time  `json:"occurred_on"`
	PaymentMethod   string     `json:"payment_method"`
	TransactionType string     `json:"transaction_type"`
	GuestEmail      string     `json:"guest_email"`
	RefundProcessed *time.Time `json:"refund_processed,omitempty"`
}

type BookingLedgerResponse struct {
	Body struct {
		Rows []BookingLedgerRow `json:"rows"`
	}
}

func (h *ReportHandler) HandleBookingLedger(ctx context.Context, input *BookingLedgerRequest) (*BookingLedgerResponse, error) {
	rows := []BookingLedgerRow{}
	err := h.db.Table("transactions").
		Select("transactions.reference, transactions.amount, transactions.occurred_on, transactions.payment_method, transactions.transaction_type, guests.email AS guest_email, transactions.refund_processed_on AS refund_processed").
		Joins("JOIN bookings ON bookings.id = transactions.booking_id").
		Joins("JOIN guests ON guests.id = transactions.guest_id").
		Where("transactions.booking_id = ? AND transactions.deleted_at IS NULL", input.BookingID).
		Order("transactions.occurred_on").
		Scan(&rows).Error
	if err != nil {
		return nil, mapWriteError(err)
	}

	res := &BookingLedgerResponse{}
	res.Body.Rows = rows
	return res, nil
}
