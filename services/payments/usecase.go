package payments

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// PaymentUC reconciles checkout sessions, provider webhooks and refunds with bookings
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/chauffeur/services/payments PaymentUC
type PaymentUC interface {
	CreateCheckout(ctx context.Context, orgID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResponse, error)
	RetryCheckout(ctx context.Context, orgID, bookingID uuid.UUID) (*models.CheckoutResponse, error)
	GetPayment(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Payment, error)
	HandleCheckoutSuccess(ctx context.Context, sessionID, paymentIntentID string) error
	HandleCheckoutCancelled(ctx context.Context, sessionID string) error
	HandleEvent(ctx context.Context, event *models.PaymentEvent) error
	IssueRefund(ctx context.Context, orgID, bookingID uuid.UUID, amount *int64, reason string) (*models.RefundResult, error)
}
