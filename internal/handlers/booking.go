package handlers

import (
	"context"
	"fmt"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/google/uuid"
	"github.com/openstays/marketplace-api/internal/database"
	"github.com/openstays/marketplace-api/internal/models"
	"gorm.io/gorm"
)

type BookingHandler struct {
	db *gorm.DB
}

func NewBookingHandler(db *gorm.DB) *BookingHandler {
	return &BookingHandler{db: db}
}

type CreateBookingRequest struct {
	Body struct {
		GuestID       uint                 `json:"guest_id" required:"true"`
		RoomID        uint                 `json:"room_id" required:"true"`
		CheckInDate   time.Time            `json:"check_in_date" required:"true"`
		CheckOutDate  time.Time            `json:"check_out_date" required:"true"`
		TotalPrice    float64              `json:"total_price" minimum:"0"`
		PaymentStatus models.PaymentStatus `json:"payment_status" doc:"Paid, Pending or Cancelled; defaults to Pending"`
	}
}

type CreateBookingResponse struct {
	Body struct {
		ID uint `json:"id"`
	}
}

func (h *BookingHandler) HandleCreateBooking(ctx context.Context, input *CreateBookingRequest) (*CreateBookingResponse, error) {
	if !input.Body.CheckInDate.Before(input.Body.CheckOutDate) {
		return nil, huma.Error422UnprocessableEntity("Check-in date must be before check-out date")
	}

	status := input.Body.PaymentStatus
	if status == "" {
		status = models.PaymentStatusPending
	}
	if !status.Valid() {
		return nil, huma.Error422UnprocessableEntity("Invalid payment status: " + string(status))
	}

	var booking models.Booking
	err := h.db.Transaction(func(tx *gorm.DB) error {
		booking = models.Booking{
			GuestID:       input.Body.GuestID,
			RoomID:        input.Body.RoomID,
			CheckInDate:   input.Body.CheckInDate,
			CheckOutDate:  input.Body.CheckOutDate,
			TotalPrice:    input.Body.TotalPrice,
			PaymentStatus: status,
		}
		return tx.Create(&booking).Error
	})
	if err != nil {
		return nil, mapWriteError(database.Classify("booking", err))
	}

	res := &CreateBookingResponse{}
	res.Body.ID = booking.ID
	return res, nil
}

type GetBookingRequest struct {
	ID uint `path:"id"`
}

type GetBookingResponse struct {
	Body models.Booking
}

func (h *BookingHandler) HandleGetBooking(ctx context.Context, input *GetBookingRequest) (*GetBookingResponse, error) {
	var booking models.Booking
	if err := h.db.First(&booking, input.ID).Error; err != nil {
		return nil, mapWriteError(err)
	}
	return &GetBookingResponse{Body: booking}, nil
}

type UpdatePaymentStatusRequest struct {
	ID   uint `path:"id"`
	Body struct {
		PaymentStatus models.PaymentStatus `json:"payment_status" required:"true"`
	}
}

// HandleUpdatePaymentStatus moves a booking between payment states. Any
// value may follow any other; only the value set itself is enforced.
func (h *BookingHandler) HandleUpdatePaymentStatus(ctx context.Context, input *UpdatePaymentStatusRequest) (*MessageResponse, error) {
	if !input.Body.PaymentStatus.Valid() {
		return nil, huma.Error422UnprocessableEntity("Invalid payment status: " + string(input.Body.PaymentStatus))
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, input.ID).Error; err != nil {
			return err
		}
		return tx.Model(&booking).Update("payment_status", input.Body.PaymentStatus).Error
	})
	if err != nil {
		return nil, mapWriteError(database.Classify("booking", err))
	}
	return message("Payment status updated"), nil
}

type CancelBookingRequest struct {
	ID   uint `path:"id"`
	Body struct {
		CancellationDeadline *time.Time `json:"cancellation_deadline,omitempty" doc:"Last date a refund applies; left unchanged when omitted"`
		CancellationRefund   float64    `json:"cancellation_refund" minimum:"0"`
		DateOfCancellation   *time.Time `json:"date_of_cancellation,omitempty" doc:"Defaults to now"`
	}
}

// HandleCancelBooking records the cancellation fields. Deliberately does
// not touch PaymentStatus: the two are independently writable.
func (h *BookingHandler) HandleCancelBooking(ctx context.Context, input *CancelBookingRequest) (*MessageResponse, error) {
	cancelledOn := time.Now()
	if input.Body.DateOfCancellation != nil {
		cancelledOn = *input.Body.DateOfCancellation
	}

	err := h.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, input.ID).Error; err != nil {
			return err
		}
		updates := map[string]interface{}{
			"cancellation_refund":  input.Body.CancellationRefund,
			"date_of_cancellation": cancelledOn,
		}
		if input.Body.CancellationDeadline != nil {
			updates["cancellation_deadline"] = *input.Body.CancellationDeadline
		}
		return tx.Model(&booking).Updates(updates).Error
	})
	if err != nil {
		return nil, mapWriteError(database.Classify("booking", err))
	}
	return message("Booking cancellation recorded"), nil
}

type RecordTransactionRequest struct {
	BookingID uint `path:"id"`
	Body      struct {
		Amount          float64                `json:"amount" required:"true" minimum:"0"`
		PaymentMethod   models.PaymentMethod   `json:"payment_method" required:"true"`
		TransactionType models.TransactionType `json:"transaction_type" required:"true" doc:"Payment or Refund"`
	}
}

type RecordTransactionResponse struct {
	Body struct {
		ID        uint   `json:"id"`
		Reference string `json:"reference"`
	}
}

// HandleRecordTransaction appends a gross money movement to the booking's
// ledger. A Refund is only accepted after a Payment exists for the same
// booking; the model stores gross movements and leaves net settlement to
// consumers.
func (h *BookingHandler) HandleRecordTransaction(ctx context.Context, input *RecordTransactionRequest) (*RecordTransactionResponse, error) {
	if !input.Body.PaymentMethod.Valid() {
		return nil, huma.Error422UnprocessableEntity("Invalid payment method: " + string(input.Body.PaymentMethod))
	}
	if !input.Body.TransactionType.Valid() {
		return nil, huma.Error422UnprocessableEntity("Invalid transaction type: " + string(input.Body.TransactionType))
	}

	var transaction models.Transaction
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, input.BookingID).Error; err != nil {
			return err
		}

		if input.Body.TransactionType == models.TransactionTypeRefund {
			var payments int64
			if err := tx.Model(&models.Transaction{}).
				Where("booking_id = ? AND transaction_type = ?", booking.ID, models.TransactionTypePayment).
				Count(&payments).Error; err != nil {
				return err
			}
			if payments == 0 {
				return huma.Error422UnprocessableEntity("Refund requires a prior payment for this booking")
			}
		}

		transaction = models.Transaction{
			Reference:       uuid.NewString(),
			GuestID:         booking.GuestID,
			BookingID:       booking.ID,
			Amount:          input.Body.Amount,
			OccurredOn:      time.Now(),
			PaymentMethod:   input.Body.PaymentMethod,
			TransactionType: input.Body.TransactionType,
		}
		if transaction.TransactionType == models.TransactionTypeRefund {
			now := time.Now()
			transaction.RefundProcessedOn = &now
		}

		return tx.Create(&transaction).Error
	})
	if err != nil {
		if _, ok := err.(huma.StatusError); ok {
			return nil, err
		}
		return nil, mapWriteError(database.Classify("transaction", err))
	}

	res := &RecordTransactionResponse{}
	res.Body.ID = transaction.ID
	res.Body.Reference = transaction.Reference
	return res, nil
}

type CreateReservationRequest struct {
	BookingID uint `path:"id"`
	Body      struct {
		TravelAdminID        uint                 `json:"travel_admin_id" required:"true"`
		PaymentStatus        models.PaymentStatus `json:"payment_status" required:"true"`
		CancellationPolicyID uint                 `json:"cancellation_policy_id" required:"true" doc:"Catalog policy to snapshot"`
	}
}

type CreateReservationResponse struct {
	Body struct {
		ID         uint   `json:"id"`
		PolicyName string `json:"policy_name"`
	}
}

// HandleCreateReservation lays an admin view over a booking. The policy
// text is copied out of the catalog at creation time and frozen: later
// catalog edits must not alter what the admin recorded.
func (h *BookingHandler) HandleCreateReservation(ctx context.Context, input *CreateReservationRequest) (*CreateReservationResponse, error) {
	if !input.Body.PaymentStatus.Valid() {
		return nil, huma.Error422UnprocessableEntity("Invalid payment status: " + string(input.Body.PaymentStatus))
	}

	var reservation models.Reservation
	err := h.db.Transaction(func(tx *gorm.DB) error {
		var booking models.Booking
		if err := tx.First(&booking, input.BookingID).Error; err != nil {
			return err
		}
		var admin models.TravelAdmin
		if err := tx.First(&admin, input.Body.TravelAdminID).Error; err != nil {
			return huma.Error422UnprocessableEntity("Travel admin does not exist")
		}
		var policy models.CancellationPolicy
		if err := tx.First(&policy, input.Body.CancellationPolicyID).Error; err != nil {
			return huma.Error422UnprocessableEntity("Cancellation policy does not exist")
		}

		reservation = models.Reservation{
			BookingID:     booking.ID,
			TravelAdminID: admin.ID,
			ReservedOn:    time.Now(),
			PaymentStatus: input.Body.PaymentStatus,
			PolicyName:    policy.Name,
			PolicyTerms:   policy.Description,
			RefundTerms:   fmt.Sprintf("Refund of %.2f against total %.2f", booking.CancellationRefund, booking.TotalPrice),
		}
		return tx.Create(&reservation).Error
	})
	if err != nil {
		if _, ok := err.(huma.StatusError); ok {
			return nil, err
		}
		return nil, mapWriteError(database.Classify("reservation", err))
	}

	res := &CreateReservationResponse{}
	res.Body.ID = reservation.ID
	res.Body.PolicyName = reservation.PolicyName
	return res, nil
}
