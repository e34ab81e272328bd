package models

import (
	"time"

	"github.com/google/uuid"
)

// BookingEvent is published on every booking lifecycle transition
type BookingEvent struct {
	Type          string        `json:"type"`
	OrgID         uuid.UUID     `json:"org_id"`
	BookingID     uuid.UUID     `json:"booking_id"`
	DriverID      *uuid.UUID    `json:"driver_id,omitempty"`
	Status        BookingStatus `json:"status"`
	PaymentStatus PaymentStatus `json:"payment_status"`
	OccurredAt    time.Time     `json:"occurred_at"`
}

// PaymentLedgerEvent is published when the payment ledger of a booking changes
type PaymentLedgerEvent struct {
	Type           string              `json:"type"`
	OrgID          uuid.UUID           `json:"org_id"`
	BookingID      uuid.UUID           `json:"booking_id"`
	PaymentID      uuid.UUID           `json:"payment_id"`
	Status         PaymentRecordStatus `json:"status"`
	Amount         int64               `json:"amount"`
	RefundedAmount int64               `json:"refunded_amount"`
	Currency       string              `json:"currency"`
	OccurredAt     time.Time           `json:"occurred_at"`
}
