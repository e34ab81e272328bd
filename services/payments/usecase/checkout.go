package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/payments"
)

// CreateCheckout validates the widget's price, opens a provider checkout and records the
// pending booking together with its payment. The customer is charged the server price.
func (uc *paymentUC) CreateCheckout(ctx context.Context, orgID uuid.UUID, req *models.CheckoutRequest) (*models.CheckoutResponse, error) {
	if req == nil {
		return nil, apperror.Validation("request body is required")
	}
	booking, err := uc.newBooking(orgID, &req.BookingDetails)
	if err != nil {
		return nil, err
	}

	validation, err := uc.pricingUC.ValidatePrice(ctx, orgID, booking.VehicleClass, req.Distance, req.ClientPrice, uc.cfg.Pricing.ToleranceMinor)
	if err != nil {
		return nil, err
	}
	// the validator records the metric and logs the rejection
	if !validation.Valid {
		return nil, apperror.ErrPriceMismatch
	}

	booking.Distance = req.Distance
	booking.Price = validation.ServerPrice
	booking.Currency = validation.Currency
	booking.PriceValidated = true

	session, err := uc.paymentGW.CreateCheckoutSession(ctx, uc.sessionRequest(booking, "checkout-"+booking.ID.String()))
	if err != nil {
		return nil, err
	}
	booking.StripeCheckoutSessionID = &session.ID

	payment := &models.Payment{
		ID:                uuid.New(),
		OrgID:             orgID,
		BookingID:         booking.ID,
		CheckoutSessionID: session.ID,
		Amount:            booking.Price,
		Currency:          booking.Currency,
		Status:            models.PaymentPending,
		UpdatedAt:         booking.CreatedAt,
	}
	err = uc.paymentRepo.RunInTx(ctx, func(tx payments.PaymentTx) error {
		if err := tx.InsertBooking(ctx, booking); err != nil {
			return err
		}
		return tx.UpsertPayment(ctx, payment)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Checkout session created",
		logger.OrgID(orgID.String()),
		logger.BookingID(booking.ID.String()),
		logger.String("session_id", session.ID),
		logger.Int64("amount", booking.Price))

	event := &models.BookingEvent{
		Type:          constants.SubjectBookingCreated,
		OrgID:         orgID,
		BookingID:     booking.ID,
		Status:        booking.Status,
		PaymentStatus: booking.PaymentStatus,
		OccurredAt:    booking.CreatedAt,
	}
	if err := uc.eventGW.PublishBookingEvent(ctx, event); err != nil {
		logger.WarnCtx(ctx, "Failed to publish booking event",
			logger.BookingID(booking.ID.String()),
			logger.Err(err))
	}

	return &models.CheckoutResponse{
		BookingID: booking.ID,
		SessionID: session.ID,
		URL:       session.URL,
		Amount:    booking.Price,
		Currency:  booking.Currency,
	}, nil
}

// RetryCheckout opens a new session for a booking that is not paid yet. The booking's
// payment row is superseded in place.
func (uc *paymentUC) RetryCheckout(ctx context.Context, orgID, bookingID uuid.UUID) (*models.CheckoutResponse, error) {
	booking, err := uc.paymentRepo.GetBooking(ctx, orgID, bookingID)
	if err != nil {
		return nil, err
	}
	if err := checkRetryable(booking); err != nil {
		return nil, err
	}

	now := uc.now()
	key := fmt.Sprintf("checkout-%s-%d", bookingID, now.Unix())
	session, err := uc.paymentGW.CreateCheckoutSession(ctx, uc.sessionRequest(booking, key))
	if err != nil {
		return nil, err
	}

	var payment *models.Payment
	err = uc.paymentRepo.RunInTx(ctx, func(tx payments.PaymentTx) error {
		locked, err := tx.GetBookingForUpdate(ctx, orgID, bookingID)
		if err != nil {
			return err
		}
		if err := checkRetryable(locked); err != nil {
			return err
		}

		existing, err := tx.GetPaymentForUpdate(ctx, bookingID)
		switch {
		case err == nil:
			if existing.Status == models.PaymentSucceeded || existing.Status == models.PaymentRefunded {
				return apperror.ErrAlreadyPaid
			}
			payment = existing
		case errors.Is(err, apperror.ErrPaymentNotFound):
			payment = &models.Payment{ID: uuid.New(), OrgID: orgID, BookingID: bookingID}
		default:
			return err
		}

		payment.CheckoutSessionID = session.ID
		payment.Amount = locked.Price
		payment.Currency = locked.Currency
		payment.Status = models.PaymentPending
		payment.UpdatedAt = now
		if err := tx.UpsertPayment(ctx, payment); err != nil {
			return err
		}

		locked.PaymentStatus = models.PaymentStatusProcessing
		locked.StripeCheckoutSessionID = &session.ID
		locked.Notes = withMarker(locked.Notes)
		locked.UpdatedAt = now
		return tx.UpdateBookingPayment(ctx, locked)
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Checkout session superseded",
		logger.OrgID(orgID.String()),
		logger.BookingID(bookingID.String()),
		logger.String("session_id", session.ID))

	return &models.CheckoutResponse{
		BookingID: bookingID,
		SessionID: session.ID,
		URL:       session.URL,
		Amount:    payment.Amount,
		Currency:  payment.Currency,
	}, nil
}

func checkRetryable(booking *models.Booking) error {
	if isPaid(booking.PaymentStatus) {
		return apperror.ErrAlreadyPaid
	}
	if booking.Status.IsTerminal() {
		return apperror.ErrBookingClosed
	}
	if booking.Price <= 0 {
		return apperror.Validation("booking has no price to charge")
	}
	return nil
}

func (uc *paymentUC) sessionRequest(booking *models.Booking, idempotencyKey string) *models.CheckoutSessionRequest {
	return &models.CheckoutSessionRequest{
		OrgID:          booking.OrgID,
		BookingID:      booking.ID,
		Amount:         booking.Price,
		Currency:       booking.Currency,
		Description:    fmt.Sprintf("%s transfer: %s to %s", booking.VehicleClass, booking.PickupLocation, booking.DropoffLocation),
		CustomerEmail:  booking.CustomerEmail,
		IdempotencyKey: idempotencyKey,
	}
}

// newBooking builds the widget booking that waits on the checkout
func (uc *paymentUC) newBooking(orgID uuid.UUID, details *models.BookingDetails) (*models.Booking, error) {
	if err := details.Validate(); err != nil {
		return nil, err
	}
	email := strings.TrimSpace(details.CustomerEmail)
	if email == "" {
		return nil, apperror.Validation("customer_email is required")
	}
	if !utils.IsValidEmail(email) {
		return nil, apperror.Validation("invalid customer_email")
	}
	phone := ""
	if strings.TrimSpace(details.CustomerPhone) != "" {
		normalized, err := utils.NormalizePhone(details.CustomerPhone, uc.cfg.Dispatch.DefaultCountryCode)
		if err != nil {
			return nil, apperror.Validation("invalid customer_phone")
		}
		phone = normalized
	}

	now := uc.now()
	return &models.Booking{
		ID:              uuid.New(),
		OrgID:           orgID,
		CustomerName:    utils.SanitizeString(details.CustomerName),
		CustomerEmail:   email,
		CustomerPhone:   phone,
		PickupLocation:  strings.TrimSpace(details.PickupLocation),
		DropoffLocation: strings.TrimSpace(details.DropoffLocation),
		PickupAt:        details.PickupAt.UTC(),
		Passengers:      details.Passengers,
		VehicleClass:    strings.TrimSpace(details.VehicleClass),
		Status:          models.BookingStatusPending,
		PaymentStatus:   models.PaymentStatusProcessing,
		Notes:           withMarker(strings.TrimSpace(details.Notes)),
		Source:          models.BookingSourceWidget,
		CreatedAt:       now,
		UpdatedAt:       now,
	}, nil
}
