package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/payments"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var paymentRowColumns = []string{
	"id", "org_id", "booking_id", "checkout_session_id", "payment_intent_id", "amount", "currency",
	"status", "refunded_amount", "created_at", "updated_at",
}

func setupPaymentRepoTest(t *testing.T) (*PaymentRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewPaymentRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestGetPaymentBySession(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		repo, mock := setupPaymentRepoTest(t)
		paymentID, orgID, bookingID := uuid.New(), uuid.New(), uuid.New()
		now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT (.+) FROM payments WHERE checkout_session_id = \\$1").
			WithArgs("cs_1").
			WillReturnRows(sqlmock.NewRows(paymentRowColumns).AddRow(
				paymentID.String(), orgID.String(), bookingID.String(), "cs_1", "pi_1", 12000, "GBP",
				"succeeded", 4000, now, now))

		payment, err := repo.GetPaymentBySession(context.Background(), "cs_1")

		require.NoError(t, err)
		assert.Equal(t, bookingID, payment.BookingID)
		assert.Equal(t, models.PaymentSucceeded, payment.Status)
		assert.Equal(t, int64(8000), payment.Refundable())
		require.NotNil(t, payment.PaymentIntentID)
		assert.Equal(t, "pi_1", *payment.PaymentIntentID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Not found", func(t *testing.T) {
		repo, mock := setupPaymentRepoTest(t)
		mock.ExpectQuery("SELECT (.+) FROM payments").
			WillReturnRows(sqlmock.NewRows(paymentRowColumns))

		_, err := repo.GetPaymentBySession(context.Background(), "cs_missing")

		assert.ErrorIs(t, err, apperror.ErrPaymentNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestRunInTx_UpsertPayment(t *testing.T) {
	repo, mock := setupPaymentRepoTest(t)
	paymentID, orgID, bookingID := uuid.New(), uuid.New(), uuid.New()
	existingID := uuid.New()
	created := time.Date(2025, 2, 28, 18, 0, 0, 0, time.UTC)
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("INSERT INTO payments (.+) ON CONFLICT \\(booking_id\\) DO UPDATE (.+) RETURNING id, created_at").
		WithArgs(paymentID, orgID, bookingID, "cs_2", int64(12000), "GBP", models.PaymentPending, now).
		WillReturnRows(sqlmock.NewRows([]string{"id", "created_at"}).AddRow(existingID.String(), created))
	mock.ExpectCommit()

	payment := &models.Payment{
		ID: paymentID, OrgID: orgID, BookingID: bookingID, CheckoutSessionID: "cs_2",
		Amount: 12000, Currency: "GBP", Status: models.PaymentPending, RefundedAmount: 500, UpdatedAt: now,
	}
	err := repo.RunInTx(context.Background(), func(tx payments.PaymentTx) error {
		return tx.UpsertPayment(context.Background(), payment)
	})

	require.NoError(t, err)
	assert.Equal(t, existingID, payment.ID)
	assert.Equal(t, created, payment.CreatedAt)
	assert.Equal(t, int64(0), payment.RefundedAmount)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTx_RefundRollsBack(t *testing.T) {
	repo, mock := setupPaymentRepoTest(t)
	bookingID := uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM payments WHERE booking_id = \\$1 FOR UPDATE").
		WithArgs(bookingID).
		WillReturnRows(sqlmock.NewRows(paymentRowColumns).AddRow(
			uuid.New().String(), uuid.New().String(), bookingID.String(), "cs_1", "pi_1", 12000, "GBP",
			"succeeded", 0, time.Now(), time.Now()))
	mock.ExpectExec("UPDATE payments SET").WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("INSERT INTO refunds").WillReturnError(errors.New("disk full"))
	mock.ExpectRollback()

	err := repo.RunInTx(context.Background(), func(tx payments.PaymentTx) error {
		payment, err := tx.GetPaymentForUpdate(context.Background(), bookingID)
		if err != nil {
			return err
		}
		payment.RefundedAmount = 4000
		if err := tx.UpdatePayment(context.Background(), payment); err != nil {
			return err
		}
		return tx.InsertRefund(context.Background(), &models.Refund{
			ID: uuid.New(), PaymentID: payment.ID, BookingID: bookingID, ProviderRefundID: "re_1", Amount: 4000,
		})
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetBooking_NotFound(t *testing.T) {
	repo, mock := setupPaymentRepoTest(t)
	orgID, bookingID := uuid.New(), uuid.New()

	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1 AND org_id = \\$2").
		WithArgs(bookingID, orgID).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	_, err := repo.GetBooking(context.Background(), orgID, bookingID)

	assert.ErrorIs(t, err, apperror.ErrBookingNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}
