package payments

import (
	"context"

	"github.com/piresc/chauffeur/internal/pkg/models"
)

// PaymentGW is the hosted checkout and refund provider
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/chauffeur/services/payments PaymentGW,EventGW
type PaymentGW interface {
	CreateCheckoutSession(ctx context.Context, req *models.CheckoutSessionRequest) (*models.CheckoutSession, error)
	CreateRefund(ctx context.Context, req *models.ProviderRefundRequest) (*models.ProviderRefund, error)
}

// EventGW publishes booking and payment domain events
type EventGW interface {
	PublishBookingEvent(ctx context.Context, event *models.BookingEvent) error
	PublishPaymentEvent(ctx context.Context, event *models.PaymentLedgerEvent) error
}
