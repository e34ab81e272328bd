package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/payments"
)

// IssueRefund refunds amount, or the whole remaining balance when amount is nil. The amount is
// clamped to what is left; refunded_amount never exceeds the payment amount.
func (uc *paymentUC) IssueRefund(ctx context.Context, orgID, bookingID uuid.UUID, amount *int64, reason string) (*models.RefundResult, error) {
	if amount != nil && *amount <= 0 {
		return nil, apperror.ErrInvalidRefundAmount
	}
	if _, err := uc.paymentRepo.GetBooking(ctx, orgID, bookingID); err != nil {
		return nil, err
	}
	current, err := uc.paymentRepo.GetPaymentByBooking(ctx, bookingID)
	if errors.Is(err, apperror.ErrPaymentNotFound) {
		return nil, apperror.ErrNothingToRefund
	}
	if err != nil {
		return nil, err
	}

	remaining := current.Refundable()
	if remaining <= 0 || current.PaymentIntentID == nil {
		return nil, apperror.ErrNothingToRefund
	}
	requested := remaining
	if amount != nil && *amount < remaining {
		requested = *amount
	}

	providerRefund, err := uc.paymentGW.CreateRefund(ctx, &models.ProviderRefundRequest{
		PaymentIntentID: *current.PaymentIntentID,
		Amount:          requested,
		Reason:          reason,
		IdempotencyKey:  fmt.Sprintf("refund-%s-%d-%d", current.ID, current.RefundedAmount, requested),
	})
	if err != nil {
		return nil, err
	}

	var payment *models.Payment
	err = uc.paymentRepo.RunInTx(ctx, func(tx payments.PaymentTx) error {
		booking, err := tx.GetBookingForUpdate(ctx, orgID, bookingID)
		if err != nil {
			return err
		}
		payment, err = tx.GetPaymentForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		applied := payment.Refundable()
		if requested < applied {
			applied = requested
		}
		// a concurrent request with the same idempotency key already recorded this refund
		if applied <= 0 {
			return apperror.ErrNothingToRefund
		}
		if applied < requested {
			logger.ErrorCtx(ctx, "Refund exceeds remaining balance, ledger clamped",
				logger.BookingID(bookingID.String()),
				logger.String("refund_id", providerRefund.ID),
				logger.Int64("requested", requested),
				logger.Int64("applied", applied))
		}

		now := uc.now()
		payment.RefundedAmount += applied
		if payment.RefundedAmount >= payment.Amount {
			payment.Status = models.PaymentRefunded
			booking.PaymentStatus = models.PaymentStatusRefunded
		} else {
			booking.PaymentStatus = models.PaymentStatusPartiallyRefunded
		}
		payment.UpdatedAt = now
		booking.UpdatedAt = now

		if err := tx.UpdatePayment(ctx, payment); err != nil {
			return err
		}
		if err := tx.UpdateBookingPayment(ctx, booking); err != nil {
			return err
		}
		return tx.InsertRefund(ctx, &models.Refund{
			ID:               uuid.New(),
			PaymentID:        payment.ID,
			BookingID:        bookingID,
			ProviderRefundID: providerRefund.ID,
			Amount:           requested,
			Reason:           reason,
			CreatedAt:        now,
		})
	})
	if errors.Is(err, apperror.ErrNothingToRefund) {
		logger.WarnCtx(ctx, "Refund already recorded by a concurrent request",
			logger.BookingID(bookingID.String()),
			logger.String("refund_id", providerRefund.ID))
		return nil, err
	}
	if err != nil {
		logger.ErrorCtx(ctx, "Refund issued but not recorded",
			logger.BookingID(bookingID.String()),
			logger.String("refund_id", providerRefund.ID),
			logger.Err(err))
		return nil, err
	}

	uc.metrics.ObserveRefund()
	logger.InfoCtx(ctx, "Refund issued",
		logger.OrgID(orgID.String()),
		logger.BookingID(bookingID.String()),
		logger.Int64("amount", requested),
		logger.Int64("refunded_amount", payment.RefundedAmount))
	uc.publish(ctx, constants.SubjectPaymentRefunded, payment)

	return &models.RefundResult{
		RefundID: providerRefund.ID,
		Amount:   requested,
		Currency: payment.Currency,
	}, nil
}
