package usecase

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/payments"
)

// HandleEvent applies a verified provider event
func (uc *paymentUC) HandleEvent(ctx context.Context, event *models.PaymentEvent) error {
	switch event.Kind {
	case models.PaymentEventCheckoutSucceeded:
		return uc.checkoutSucceeded(ctx, event.SessionID, event.PaymentIntentID, event.BookingID)
	case models.PaymentEventCheckoutCancelled:
		return uc.checkoutCancelled(ctx, event.SessionID, event.BookingID)
	default:
		logger.Debug("Ignoring payment event",
			logger.String("event_id", event.ID),
			logger.String("type", event.Type))
		return nil
	}
}

// HandleCheckoutSuccess marks the session's payment succeeded and the booking PAID.
// A replay returns ErrAlreadyProcessed without touching either row.
func (uc *paymentUC) HandleCheckoutSuccess(ctx context.Context, sessionID, paymentIntentID string) error {
	return uc.checkoutSucceeded(ctx, sessionID, paymentIntentID, "")
}

// HandleCheckoutCancelled fails a pending payment. Superseded sessions and settled payments
// return ErrAlreadyProcessed.
func (uc *paymentUC) HandleCheckoutCancelled(ctx context.Context, sessionID string) error {
	return uc.checkoutCancelled(ctx, sessionID, "")
}

func (uc *paymentUC) checkoutSucceeded(ctx context.Context, sessionID, paymentIntentID, bookingHint string) error {
	found, err := uc.findPayment(ctx, sessionID, bookingHint)
	if err != nil {
		return err
	}

	var payment *models.Payment
	err = uc.paymentRepo.RunInTx(ctx, func(tx payments.PaymentTx) error {
		booking, err := tx.GetBookingForUpdate(ctx, found.OrgID, found.BookingID)
		if err != nil {
			return err
		}
		payment, err = tx.GetPaymentForUpdate(ctx, found.BookingID)
		if err != nil {
			return err
		}

		switch payment.Status {
		case models.PaymentSucceeded, models.PaymentRefunded:
			return apperror.ErrAlreadyProcessed
		}
		if payment.CheckoutSessionID != sessionID {
			// the customer paid on a session that a retry replaced; the money is real
			logger.WarnCtx(ctx, "Payment received on superseded checkout session",
				logger.BookingID(payment.BookingID.String()),
				logger.String("session_id", sessionID),
				logger.String("current_session_id", payment.CheckoutSessionID))
			payment.CheckoutSessionID = sessionID
		}

		now := uc.now()
		payment.Status = models.PaymentSucceeded
		if paymentIntentID != "" {
			payment.PaymentIntentID = &paymentIntentID
		}
		payment.UpdatedAt = now
		if err := tx.UpdatePayment(ctx, payment); err != nil {
			return err
		}

		booking.PaymentStatus = models.PaymentStatusPaid
		booking.StripeCheckoutSessionID = &sessionID
		booking.Notes = utils.StripMarker(booking.Notes, models.PendingPaymentMarker)
		booking.UpdatedAt = now
		return tx.UpdateBookingPayment(ctx, booking)
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Checkout succeeded",
		logger.OrgID(payment.OrgID.String()),
		logger.BookingID(payment.BookingID.String()),
		logger.Int64("amount", payment.Amount))
	uc.publish(ctx, constants.SubjectPaymentSucceeded, payment)
	return nil
}

func (uc *paymentUC) checkoutCancelled(ctx context.Context, sessionID, bookingHint string) error {
	found, err := uc.findPayment(ctx, sessionID, bookingHint)
	if err != nil {
		return err
	}

	var payment *models.Payment
	err = uc.paymentRepo.RunInTx(ctx, func(tx payments.PaymentTx) error {
		booking, err := tx.GetBookingForUpdate(ctx, found.OrgID, found.BookingID)
		if err != nil {
			return err
		}
		payment, err = tx.GetPaymentForUpdate(ctx, found.BookingID)
		if err != nil {
			return err
		}
		if payment.CheckoutSessionID != sessionID || payment.Status != models.PaymentPending {
			return apperror.ErrAlreadyProcessed
		}

		now := uc.now()
		payment.Status = models.PaymentFailed
		payment.UpdatedAt = now
		if err := tx.UpdatePayment(ctx, payment); err != nil {
			return err
		}

		booking.PaymentStatus = models.PaymentStatusFailed
		booking.UpdatedAt = now
		return tx.UpdateBookingPayment(ctx, booking)
	})
	if err != nil {
		return err
	}

	logger.InfoCtx(ctx, "Checkout cancelled",
		logger.OrgID(payment.OrgID.String()),
		logger.BookingID(payment.BookingID.String()))
	uc.publish(ctx, constants.SubjectPaymentFailed, payment)
	return nil
}

// findPayment resolves the payment a session belongs to. A superseded session is no longer on
// the row, so the booking id carried in the session metadata is tried next.
func (uc *paymentUC) findPayment(ctx context.Context, sessionID, bookingHint string) (*models.Payment, error) {
	payment, err := uc.paymentRepo.GetPaymentBySession(ctx, sessionID)
	if err == nil || !errors.Is(err, apperror.ErrPaymentNotFound) || bookingHint == "" {
		return payment, err
	}

	bookingID, parseErr := uuid.Parse(bookingHint)
	if parseErr != nil {
		return nil, err
	}
	return uc.paymentRepo.GetPaymentByBooking(ctx, bookingID)
}
