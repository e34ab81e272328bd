package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/metrics"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/payments"
	"github.com/piresc/chauffeur/services/pricing"
)

type paymentUC struct {
	cfg         *models.Config
	paymentRepo payments.PaymentRepo
	paymentGW   payments.PaymentGW
	eventGW     payments.EventGW
	pricingUC   pricing.PricingUC
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewPaymentUC creates a new payment use case
func NewPaymentUC(
	cfg *models.Config,
	paymentRepo payments.PaymentRepo,
	paymentGW payments.PaymentGW,
	eventGW payments.EventGW,
	pricingUC pricing.PricingUC,
	m *metrics.Metrics,
) payments.PaymentUC {
	return &paymentUC{
		cfg:         cfg,
		paymentRepo: paymentRepo,
		paymentGW:   paymentGW,
		eventGW:     eventGW,
		pricingUC:   pricingUC,
		metrics:     m,
		now:         models.Now,
	}
}

// GetPayment returns the payment of a booking owned by orgID
func (uc *paymentUC) GetPayment(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Payment, error) {
	if _, err := uc.paymentRepo.GetBooking(ctx, orgID, bookingID); err != nil {
		return nil, err
	}
	return uc.paymentRepo.GetPaymentByBooking(ctx, bookingID)
}

func (uc *paymentUC) publish(ctx context.Context, subject string, payment *models.Payment) {
	event := &models.PaymentLedgerEvent{
		Type:           subject,
		OrgID:          payment.OrgID,
		BookingID:      payment.BookingID,
		PaymentID:      payment.ID,
		Status:         payment.Status,
		Amount:         payment.Amount,
		RefundedAmount: payment.RefundedAmount,
		Currency:       payment.Currency,
		OccurredAt:     payment.UpdatedAt,
	}
	if err := uc.eventGW.PublishPaymentEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish payment event",
			logger.BookingID(payment.BookingID.String()),
			logger.String("subject", subject),
			logger.Err(err))
	}
}

func withMarker(notes string) string {
	if strings.Contains(notes, models.PendingPaymentMarker) {
		return notes
	}
	return strings.TrimSpace(notes + " " + models.PendingPaymentMarker)
}

func isPaid(s models.PaymentStatus) bool {
	switch s {
	case models.PaymentStatusPaid, models.PaymentStatusRefunded, models.PaymentStatusPartiallyRefunded:
		return true
	}
	return false
}
