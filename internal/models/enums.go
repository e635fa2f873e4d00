package models

// PaymentStatus is the lifecycle state of a booking's (or reservation's)
// payment. No transition graph is enforced; any value may follow any other.
type PaymentStatus string

const (
	PaymentStatusPaid      PaymentStatus = "Paid"
	PaymentStatusPending   PaymentStatus = "Pending"
	PaymentStatusCancelled PaymentStatus = "Cancelled"
)

func (s PaymentStatus) Valid() bool {
	switch s {
	case PaymentStatusPaid, PaymentStatusPending, PaymentStatusCancelled:
		return true
	}
	return false
}

type PaymentMethod string

const (
	PaymentMethodCreditCard           PaymentMethod = "CreditCard"
	PaymentMethodBankTransfer         PaymentMethod = "BankTransfer"
	PaymentMethodCash                 PaymentMethod = "Cash"
	PaymentMethodVoucher              PaymentMethod = "Voucher"
	PaymentMethodPayPal               PaymentMethod = "PayPal"
	PaymentMethodApplePay             PaymentMethod = "ApplePay"
	PaymentMethodGPay                 PaymentMethod = "GPay"
	PaymentMethodCreditCardMasterCard PaymentMethod = "CreditCard_MasterCard"
	PaymentMethodCreditCardVisa       PaymentMethod = "CreditCard_Visa"
	PaymentMethodCreditCardAMEX       PaymentMethod = "CreditCard_AMEX"
	PaymentMethodCreditCardFirstCard  PaymentMethod = "CreditCard_FirstCard"
	PaymentMethodCreditCardDinersClub PaymentMethod = "CreditCard_DinersClub"
	PaymentMethodMaestro              PaymentMethod = "Maestro"
	PaymentMethodSOFORT               PaymentMethod = "SOFORT_Payment"
	PaymentMethodBNPL                 PaymentMethod = "BNPL"
	PaymentMethodKlarna               PaymentMethod = "Klarna"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodCreditCard, PaymentMethodBankTransfer, PaymentMethodCash,
		PaymentMethodVoucher, PaymentMethodPayPal, PaymentMethodApplePay,
		PaymentMethodGPay, PaymentMethodCreditCardMasterCard, PaymentMethodCreditCardVisa,
		PaymentMethodCreditCardAMEX, PaymentMethodCreditCardFirstCard,
		PaymentMethodCreditCardDinersClub, PaymentMethodMaestro, PaymentMethodSOFORT,
		PaymentMethodBNPL, PaymentMethodKlarna:
		return true
	}
	return false
}

// TransactionType distinguishes gross money movements. Net settlement is
// computed by consumers, never stored.
type TransactionType string

const (
	TransactionTypePayment TransactionType = "Payment"
	TransactionTypeRefund  TransactionType = "Refund"
)

func (t TransactionType) Valid() bool {
	return t == TransactionTypePayment || t == TransactionTypeRefund
}

// ReviewerType records which side of the stay wrote a review. The reviewer
// id always resolves against the guests table, even for Host-typed reviews:
// a reviewing host leaves their underlying guest identity.
type ReviewerType string

const (
	ReviewerTypeGuest ReviewerType = "Guest"
	ReviewerTypeHost  ReviewerType = "Host"
)

func (r ReviewerType) Valid() bool {
	return r == ReviewerTypeGuest || r == ReviewerTypeHost
}
