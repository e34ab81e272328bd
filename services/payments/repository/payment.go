package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/database"
	"github.com/piresc/chauffeur/internal/pkg/models"
	bookingrepo "github.com/piresc/chauffeur/services/bookings/repository"
	"github.com/piresc/chauffeur/services/payments"
)

const paymentColumns = `id, org_id, booking_id, checkout_session_id, payment_intent_id, amount, currency,
	status, refunded_amount, created_at, updated_at`

// PaymentRepo implements payments.PaymentRepo on Postgres
type PaymentRepo struct {
	db *sqlx.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *sqlx.DB) *PaymentRepo {
	return &PaymentRepo{db: db}
}

// RunInTx runs fn inside one database transaction
func (r *PaymentRepo) RunInTx(ctx context.Context, fn func(tx payments.PaymentTx) error) error {
	return database.RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(&paymentTx{tx: tx})
	})
}

// GetBooking retrieves a booking of the organization
func (r *PaymentRepo) GetBooking(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingrepo.BookingColumns + ` FROM bookings WHERE id = $1 AND org_id = $2`
	return getBooking(ctx, r.db, query, bookingID, orgID)
}

// GetPaymentByBooking retrieves the payment row of a booking
func (r *PaymentRepo) GetPaymentByBooking(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1`
	return getPayment(ctx, r.db, query, bookingID)
}

// GetPaymentBySession retrieves the payment currently tied to a checkout session
func (r *PaymentRepo) GetPaymentBySession(ctx context.Context, sessionID string) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE checkout_session_id = $1`
	return getPayment(ctx, r.db, query, sessionID)
}

type paymentTx struct {
	tx *sqlx.Tx
}

func (t *paymentTx) InsertBooking(ctx context.Context, booking *models.Booking) error {
	if _, err := t.tx.NamedExecContext(ctx, bookingrepo.InsertBookingQuery, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

func (t *paymentTx) GetBookingForUpdate(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingrepo.BookingColumns + ` FROM bookings
		WHERE id = $1 AND org_id = $2 FOR UPDATE`
	return getBooking(ctx, t.tx, query, bookingID, orgID)
}

func (t *paymentTx) UpdateBookingPayment(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings SET
			payment_status = :payment_status,
			stripe_checkout_session_id = :stripe_checkout_session_id,
			notes = :notes,
			updated_at = :updated_at
		WHERE id = :id AND org_id = :org_id`

	if _, err := t.tx.NamedExecContext(ctx, query, booking); err != nil {
		return fmt.Errorf("failed to update booking payment: %w", err)
	}
	return nil
}

func (t *paymentTx) GetPaymentForUpdate(ctx context.Context, bookingID uuid.UUID) (*models.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE booking_id = $1 FOR UPDATE`
	return getPayment(ctx, t.tx, query, bookingID)
}

func (t *paymentTx) UpsertPayment(ctx context.Context, payment *models.Payment) error {
	query := `
		INSERT INTO payments (` + paymentColumns + `)
		VALUES ($1, $2, $3, $4, NULL, $5, $6, $7, 0, $8, $8)
		ON CONFLICT (booking_id) DO UPDATE SET
			checkout_session_id = EXCLUDED.checkout_session_id,
			payment_intent_id = NULL,
			amount = EXCLUDED.amount,
			currency = EXCLUDED.currency,
			status = EXCLUDED.status,
			refunded_amount = 0,
			updated_at = EXCLUDED.updated_at
		RETURNING id, created_at`

	row := t.tx.QueryRowxContext(ctx, query,
		payment.ID, payment.OrgID, payment.BookingID, payment.CheckoutSessionID,
		payment.Amount, payment.Currency, payment.Status, payment.UpdatedAt)
	if err := row.Scan(&payment.ID, &payment.CreatedAt); err != nil {
		return fmt.Errorf("failed to save payment: %w", err)
	}
	payment.PaymentIntentID = nil
	payment.RefundedAmount = 0
	return nil
}

func (t *paymentTx) UpdatePayment(ctx context.Context, payment *models.Payment) error {
	query := `
		UPDATE payments SET
			checkout_session_id = :checkout_session_id,
			payment_intent_id = :payment_intent_id,
			status = :status,
			refunded_amount = :refunded_amount,
			updated_at = :updated_at
		WHERE id = :id`

	if _, err := t.tx.NamedExecContext(ctx, query, payment); err != nil {
		return fmt.Errorf("failed to update payment: %w", err)
	}
	return nil
}

func (t *paymentTx) InsertRefund(ctx context.Context, refund *models.Refund) error {
	query := `
		INSERT INTO refunds (id, payment_id, booking_id, provider_refund_id, amount, reason, created_at)
		VALUES (:id, :payment_id, :booking_id, :provider_refund_id, :amount, :reason, :created_at)`

	if _, err := t.tx.NamedExecContext(ctx, query, refund); err != nil {
		return fmt.Errorf("failed to record refund: %w", err)
	}
	return nil
}

func getBooking(ctx context.Context, q sqlx.QueryerContext, query string, args ...interface{}) (*models.Booking, error) {
	var booking models.Booking
	if err := sqlx.GetContext(ctx, q, &booking, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

func getPayment(ctx context.Context, q sqlx.QueryerContext, query string, args ...interface{}) (*models.Payment, error) {
	var payment models.Payment
	if err := sqlx.GetContext(ctx, q, &payment, query, args...); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrPaymentNotFound
		}
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}
	return &payment, nil
}
