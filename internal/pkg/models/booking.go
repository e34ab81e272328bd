package models

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
)

// BookingStatus is the lifecycle state of a booking
type BookingStatus string

const (
	BookingStatusPending    BookingStatus = "PENDING"
	BookingStatusAssigned   BookingStatus = "ASSIGNED"
	BookingStatusInProgress BookingStatus = "IN_PROGRESS"
	BookingStatusCompleted  BookingStatus = "COMPLETED"
	BookingStatusCancelled  BookingStatus = "CANCELLED"
)

// IsTerminal reports whether no further transition is allowed
func (s BookingStatus) IsTerminal() bool {
	return s == BookingStatusCompleted || s == BookingStatusCancelled
}

// IsActive reports whether a driver is attached and working the booking
func (s BookingStatus) IsActive() bool {
	return s == BookingStatusAssigned || s == BookingStatusInProgress
}

func (s BookingStatus) Valid() bool {
	switch s {
	case BookingStatusPending, BookingStatusAssigned, BookingStatusInProgress,
		BookingStatusCompleted, BookingStatusCancelled:
		return true
	}
	return false
}

// PaymentStatus is the booking-level view of money collected
type PaymentStatus string

const (
	PaymentStatusPending           PaymentStatus = "PENDING"
	PaymentStatusProcessing        PaymentStatus = "PROCESSING"
	PaymentStatusPaid              PaymentStatus = "PAID"
	PaymentStatusFailed            PaymentStatus = "FAILED"
	PaymentStatusInvoiced          PaymentStatus = "INVOICED"
	PaymentStatusRefunded          PaymentStatus = "REFUNDED"
	PaymentStatusPartiallyRefunded PaymentStatus = "PARTIALLY_REFUNDED"
)

// BookingSource records which surface created the booking
type BookingSource string

const (
	BookingSourceDispatcher BookingSource = "dispatcher"
	BookingSourceWidget     BookingSource = "widget"
)

// PendingPaymentMarker is appended to notes until the checkout succeeds
const PendingPaymentMarker = "[pending payment]"

// Booking is a chauffeur job owned by an organization
type Booking struct {
	ID                      uuid.UUID     `json:"id" db:"id"`
	OrgID                   uuid.UUID     `json:"org_id" db:"org_id"`
	CustomerName            string        `json:"customer_name" db:"customer_name"`
	CustomerEmail           string        `json:"customer_email" db:"customer_email"`
	CustomerPhone           string        `json:"customer_phone" db:"customer_phone"`
	PickupLocation          string        `json:"pickup_location" db:"pickup_location"`
	DropoffLocation         string        `json:"dropoff_location" db:"dropoff_location"`
	PickupAt                time.Time     `json:"pickup_at" db:"pickup_at"`
	Passengers              int           `json:"passengers" db:"passengers"`
	VehicleClass            string        `json:"vehicle_class" db:"vehicle_class"`
	Distance                float64       `json:"distance" db:"distance"`
	Price                   int64         `json:"price" db:"price"`
	Currency                string        `json:"currency" db:"currency"`
	PriceValidated          bool          `json:"price_validated" db:"price_validated"`
	Status                  BookingStatus `json:"status" db:"status"`
	PaymentStatus           PaymentStatus `json:"payment_status" db:"payment_status"`
	DriverID                *uuid.UUID    `json:"driver_id,omitempty" db:"driver_id"`
	CustomerNotified        bool          `json:"customer_notified" db:"customer_notified"`
	DriverNotified          bool          `json:"driver_notified" db:"driver_notified"`
	DriverAccepted          bool          `json:"driver_accepted" db:"driver_accepted"`
	DriverAcceptedAt        *time.Time    `json:"driver_accepted_at,omitempty" db:"driver_accepted_at"`
	StripeCheckoutSessionID *string       `json:"stripe_checkout_session_id,omitempty" db:"stripe_checkout_session_id"`
	Notes                   string        `json:"notes" db:"notes"`
	Source                  BookingSource `json:"source" db:"source"`
	CreatedAt               time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt               time.Time     `json:"updated_at" db:"updated_at"`
}

// HasDriver reports whether driverID is the driver attached to the booking
func (b *Booking) HasDriver(driverID uuid.UUID) bool {
	return b.DriverID != nil && *b.DriverID == driverID
}

// BookingDetails are the customer and trip fields shared by every creation path
type BookingDetails struct {
	CustomerName    string    `json:"customer_name"`
	CustomerEmail   string    `json:"customer_email"`
	CustomerPhone   string    `json:"customer_phone"`
	PickupLocation  string    `json:"pickup_location"`
	DropoffLocation string    `json:"dropoff_location"`
	PickupAt        time.Time `json:"pickup_at"`
	Passengers      int       `json:"passengers"`
	VehicleClass    string    `json:"vehicle_class"`
	Notes           string    `json:"notes"`
}

// Validate checks the fields every booking needs
func (d *BookingDetails) Validate() error {
	switch {
	case strings.TrimSpace(d.CustomerName) == "":
		return apperror.Validation("customer_name is required")
	case strings.TrimSpace(d.PickupLocation) == "":
		return apperror.Validation("pickup_location is required")
	case strings.TrimSpace(d.DropoffLocation) == "":
		return apperror.Validation("dropoff_location is required")
	case d.PickupAt.IsZero():
		return apperror.Validation("pickup_at is required")
	case d.Passengers < 0:
		return apperror.Validation("passengers must not be negative")
	case strings.TrimSpace(d.VehicleClass) == "":
		return apperror.Validation("vehicle_class is required")
	}
	if d.Passengers == 0 {
		d.Passengers = 1
	}
	return nil
}

// CreateBookingRequest is the dispatcher booking form. When Distance is set the price
// is computed server-side, otherwise Price is taken as a manual quote.
type CreateBookingRequest struct {
	BookingDetails
	Distance      *float64      `json:"distance,omitempty"`
	Price         int64         `json:"price"`
	Currency      string        `json:"currency"`
	PaymentStatus PaymentStatus `json:"payment_status"`
}

// PublicBookingRequest is the widget booking form; any price field sent is ignored
type PublicBookingRequest struct {
	BookingDetails
	Distance float64 `json:"distance"`
}

// UpdateBookingRequest changes customer and trip fields of an open booking
type UpdateBookingRequest struct {
	CustomerName    *string    `json:"customer_name,omitempty"`
	CustomerEmail   *string    `json:"customer_email,omitempty"`
	CustomerPhone   *string    `json:"customer_phone,omitempty"`
	PickupLocation  *string    `json:"pickup_location,omitempty"`
	DropoffLocation *string    `json:"dropoff_location,omitempty"`
	PickupAt        *time.Time `json:"pickup_at,omitempty"`
	Passengers      *int       `json:"passengers,omitempty"`
	Notes           *string    `json:"notes,omitempty"`
}

// BookingFilter narrows a booking listing
type BookingFilter struct {
	Statuses []BookingStatus
	DriverID *uuid.UUID
	From     *time.Time
	To       *time.Time
	Limit    int
	Offset   int
}
