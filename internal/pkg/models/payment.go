package models

import (
	"time"

	"github.com/google/uuid"
)

// PaymentRecordStatus is the ledger status of a payment
type PaymentRecordStatus string

const (
	PaymentPending   PaymentRecordStatus = "pending"
	PaymentSucceeded PaymentRecordStatus = "succeeded"
	PaymentFailed    PaymentRecordStatus = "failed"
	PaymentRefunded  PaymentRecordStatus = "refunded"
)

// Payment is the single ledger row of money collected for a booking
type Payment struct {
	ID                uuid.UUID           `json:"id" db:"id"`
	OrgID             uuid.UUID           `json:"org_id" db:"org_id"`
	BookingID         uuid.UUID           `json:"booking_id" db:"booking_id"`
	CheckoutSessionID string              `json:"checkout_session_id" db:"checkout_session_id"`
	PaymentIntentID   *string             `json:"payment_intent_id,omitempty" db:"payment_intent_id"`
	Amount            int64               `json:"amount" db:"amount"`
	Currency          string              `json:"currency" db:"currency"`
	Status            PaymentRecordStatus `json:"status" db:"status"`
	RefundedAmount    int64               `json:"refunded_amount" db:"refunded_amount"`
	CreatedAt         time.Time           `json:"created_at" db:"created_at"`
	UpdatedAt         time.Time           `json:"updated_at" db:"updated_at"`
}

// Refundable is the amount still available to refund
func (p *Payment) Refundable() int64 {
	if p.Status != PaymentSucceeded {
		return 0
	}
	return p.Amount - p.RefundedAmount
}

// Refund is an audit row of one issued refund
type Refund struct {
	ID               uuid.UUID `json:"id" db:"id"`
	PaymentID        uuid.UUID `json:"payment_id" db:"payment_id"`
	BookingID        uuid.UUID `json:"booking_id" db:"booking_id"`
	ProviderRefundID string    `json:"provider_refund_id" db:"provider_refund_id"`
	Amount           int64     `json:"amount" db:"amount"`
	Reason           string    `json:"reason" db:"reason"`
	CreatedAt        time.Time `json:"created_at" db:"created_at"`
}

// CheckoutRequest is the widget checkout form; ClientPrice is validated, never charged
type CheckoutRequest struct {
	BookingDetails
	Distance    float64 `json:"distance"`
	ClientPrice int64   `json:"client_price"`
}

// CheckoutResponse tells the widget where to send the customer
type CheckoutResponse struct {
	BookingID uuid.UUID `json:"booking_id"`
	SessionID string    `json:"session_id"`
	URL       string    `json:"url"`
	Amount    int64     `json:"amount"`
	Currency  string    `json:"currency"`
}

// CheckoutSessionRequest is what the payment provider needs to open a hosted checkout
type CheckoutSessionRequest struct {
	OrgID          uuid.UUID
	BookingID      uuid.UUID
	Amount         int64
	Currency       string
	Description    string
	CustomerEmail  string
	IdempotencyKey string
}

// CheckoutSession is the provider's hosted checkout
type CheckoutSession struct {
	ID  string `json:"id"`
	URL string `json:"url"`
}

// RefundRequest is the body of a refund call
type RefundRequest struct {
	Amount *int64 `json:"amount,omitempty"`
	Reason string `json:"reason"`
}

// ProviderRefundRequest is what the payment provider needs to refund a charge
type ProviderRefundRequest struct {
	PaymentIntentID string
	Amount          int64
	Reason          string
	IdempotencyKey  string
}

// ProviderRefund is the provider's refund record
type ProviderRefund struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// RefundResult is returned to the caller of a refund
type RefundResult struct {
	RefundID string `json:"refund_id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
}

// PaymentEventKind is the closed set of provider events the reconciler acts on
type PaymentEventKind string

const (
	PaymentEventCheckoutSucceeded PaymentEventKind = "checkout_succeeded"
	PaymentEventCheckoutCancelled PaymentEventKind = "checkout_cancelled"
	PaymentEventIgnored           PaymentEventKind = "ignored"
)

// PaymentEvent is a verified, parsed provider webhook event
type PaymentEvent struct {
	ID              string
	Kind            PaymentEventKind
	Type            string
	SessionID       string
	PaymentIntentID string
	BookingID       string
}
