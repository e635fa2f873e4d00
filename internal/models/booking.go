package models

import (
	"time"

	"gorm.io/gorm"
)

// Booking ties a guest to a room for a date range. The cancellation fields
// are populated independently of PaymentStatus: a cancellation date may be
// recorded without the status being Cancelled, and vice versa.
type Booking struct {
	gorm.Model
	GuestID uint `json:"guest_id" gorm:"not null;index"`
	RoomID  uint `json:"room_id" gorm:"not null;index"`

	CheckInDate   time.Time     `json:"check_in_date"`
	CheckOutDate  time.Time     `json:"check_out_date"`
	TotalPrice    float64       `json:"total_price"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(16);not null;check:chk_bookings_payment_status,payment_status IN ('Paid','Pending','Cancelled')"`

	CancellationDeadline *time.Time `json:"cancellation_deadline"`
	CancellationRefund   float64    `json:"cancellation_refund"`
	DateOfCancellation   *time.Time `json:"date_of_cancellation"`
	Payout               float64    `json:"payout"`

	Transactions []Transaction     `json:"-" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Reservations []Reservation     `json:"-" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Reviews      []Review          `json:"-" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Tickets      []CustomerService `json:"-" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
	Events       []Event           `json:"-" gorm:"foreignKey:BookingID;constraint:OnDelete:CASCADE"`
}

// Transaction is an append-only gross money movement. Refund rows reference
// the same booking as the payment they reverse; the write path requires a
// prior Payment row before accepting a Refund.
type Transaction struct {
	gorm.Model
	Reference string `json:"reference" gorm:"uniqueIndex;not null"`
	GuestID   uint   `json:"guest_id" gorm:"not null;index"`
	Guest     Guest  `json:"-" gorm:"constraint:OnDelete:CASCADE"`
	BookingID uint   `json:"booking_id" gorm:"not null;index"`

	Amount            float64         `json:"amount"`
	OccurredOn        time.Time       `json:"occurred_on"`
	PaymentMethod     PaymentMethod   `json:"payment_method" gorm:"type:varchar(32);not null;check:chk_transactions_payment_method,payment_method IN ('CreditCard','BankTransfer','Cash','Voucher','PayPal','ApplePay','GPay','CreditCard_MasterCard','CreditCard_Visa','CreditCard_AMEX','CreditCard_FirstCard','CreditCard_DinersClub','Maestro','SOFORT_Payment','BNPL','Klarna')"`
	TransactionType   TransactionType `json:"transaction_type" gorm:"type:varchar(16);not null;check:chk_transactions_transaction_type,transaction_type IN ('Payment','Refund')"`
	RefundProcessedOn *time.Time      `json:"refund_processed_on"`
}

// Reservation is a travel admin's view of a booking. The policy and refund
// text are frozen copies taken at creation time, never live references to
// the cancellation-policy catalog: a historical record, not a lookup.
type Reservation struct {
	gorm.Model
	BookingID     uint `json:"booking_id" gorm:"not null;index"`
	TravelAdminID uint `json:"travel_admin_id" gorm:"not null;index"`

	ReservedOn    time.Time     `json:"reserved_on"`
	PaymentStatus PaymentStatus `json:"payment_status" gorm:"type:varchar(16);not null;check:chk_reservations_payment_status,payment_status IN ('Paid','Pending','Cancelled')"`
	PolicyName    string        `json:"policy_name"`
	PolicyTerms   string        `json:"policy_terms" gorm:"type:text"`
	RefundTerms   string        `json:"refund_terms" gorm:"type:text"`
}
