package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// PaymentRepo reads and mutates the payment ledger with its bookings
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/chauffeur/services/payments PaymentRepo,PaymentTx
type PaymentRepo interface {
	// RunInTx runs fn in one transaction, committing when fn returns nil
	RunInTx(ctx context.Context, fn func(tx PaymentTx) error) error
	GetBooking(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error)
	GetPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error)
	GetPaymentBySession(ctx context.Context, sessionID string) (*models.Payment, error)
}

// PaymentTx is the locked view of one ledger change. The booking row is locked before
// its payment row.
type PaymentTx interface {
	InsertBooking(ctx context.Context, booking *models.Booking) error
	GetBookingForUpdate(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error)
	UpdateBookingPayment(ctx context.Context, booking *models.Booking) error
	GetPaymentForUpdate(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error)
	// UpsertPayment inserts the booking's payment or supersedes the existing row
	UpsertPayment(ctx context.Context, payment *models.Payment) error
	UpdatePayment(ctx context.Context, payment *models.Payment) error
	InsertRefund(ctx context.Context, refund *models.Refund) error
}
