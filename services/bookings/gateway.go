package bookings

import (
	"context"

	"github.com/piresc/chauffeur/internal/pkg/models"
)

// BookingGW publishes booking and payment domain events
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/chauffeur/services/bookings BookingGW
type BookingGW interface {
	PublishBookingEvent(ctx context.Context, event *models.BookingEvent) error
	PublishPaymentEvent(ctx context.Context, event *models.PaymentLedgerEvent) error
}
