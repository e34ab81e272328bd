package usecase

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func int64Ptr(v int64) *int64 { return &v }

func TestIssueRefund(t *testing.T) {
	tests := []struct {
		name           string
		amount         *int64
		alreadyRefund  int64
		wantAmount     int64
		wantRefunded   int64
		wantPayment    models.PaymentRecordStatus
		wantBookingPay models.PaymentStatus
	}{
		{"partial", int64Ptr(4000), 0, 4000, 4000, models.PaymentSucceeded, models.PaymentStatusPartiallyRefunded},
		{"full when amount omitted", nil, 0, 12000, 12000, models.PaymentRefunded, models.PaymentStatusRefunded},
		{"clamped to remaining", int64Ptr(20000), 5000, 7000, 12000, models.PaymentRefunded, models.PaymentStatusRefunded},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newPaymentFixture(t)
			orgID, bookingID := uuid.New(), uuid.New()
			payment := paidPayment(orgID, bookingID)
			payment.RefundedAmount = tt.alreadyRefund
			booking := &models.Booking{ID: bookingID, OrgID: orgID, PaymentStatus: models.PaymentStatusPaid}

			f.repo.EXPECT().GetBooking(gomock.Any(), orgID, bookingID).Return(booking, nil)
			f.repo.EXPECT().GetPaymentByBooking(gomock.Any(), bookingID).Return(payment, nil)
			f.gw.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, req *models.ProviderRefundRequest) (*models.ProviderRefund, error) {
					assert.Equal(t, "pi_123", req.PaymentIntentID)
					assert.Equal(t, tt.wantAmount, req.Amount)
					assert.Equal(t, fmt.Sprintf("refund-%s-%d-%d", payment.ID, tt.alreadyRefund, tt.wantAmount), req.IdempotencyKey)
					return &models.ProviderRefund{ID: "re_1", Status: "succeeded"}, nil
				})
			f.inTx()
			f.tx.EXPECT().GetBookingForUpdate(gomock.Any(), orgID, bookingID).Return(booking, nil)
			f.tx.EXPECT().GetPaymentForUpdate(gomock.Any(), bookingID).Return(payment, nil)
			f.tx.EXPECT().UpdatePayment(gomock.Any(), payment).Return(nil)
			f.tx.EXPECT().UpdateBookingPayment(gomock.Any(), booking).Return(nil)
			f.tx.EXPECT().InsertRefund(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, r *models.Refund) error {
					assert.Equal(t, "re_1", r.ProviderRefundID)
					assert.Equal(t, tt.wantAmount, r.Amount)
					return nil
				})
			f.events.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any()).
				DoAndReturn(func(_ context.Context, e *models.PaymentLedgerEvent) error {
					assert.Equal(t, constants.SubjectPaymentRefunded, e.Type)
					return nil
				})

			result, err := f.uc.IssueRefund(context.Background(), orgID, bookingID, tt.amount, "customer request")

			require.NoError(t, err)
			assert.Equal(t, "re_1", result.RefundID)
			assert.Equal(t, tt.wantAmount, result.Amount)
			assert.Equal(t, "GBP", result.Currency)
			assert.Equal(t, tt.wantRefunded, payment.RefundedAmount)
			assert.Equal(t, tt.wantPayment, payment.Status)
			assert.Equal(t, tt.wantBookingPay, booking.PaymentStatus)
		})
	}
}

func TestIssueRefund_ReclampedUnderLock(t *testing.T) {
	f := newPaymentFixture(t)
	orgID, bookingID := uuid.New(), uuid.New()
	seen := paidPayment(orgID, bookingID)
	// another refund of 9000 landed between the read and the lock
	locked := paidPayment(orgID, bookingID)
	locked.ID = seen.ID
	locked.RefundedAmount = 9000
	booking := &models.Booking{ID: bookingID, OrgID: orgID, PaymentStatus: models.PaymentStatusPartiallyRefunded}

	f.repo.EXPECT().GetBooking(gomock.Any(), orgID, bookingID).Return(booking, nil)
	f.repo.EXPECT().GetPaymentByBooking(gomock.Any(), bookingID).Return(seen, nil)
	f.gw.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).Return(&models.ProviderRefund{ID: "re_2"}, nil)
	f.inTx()
	f.tx.EXPECT().GetBookingForUpdate(gomock.Any(), orgID, bookingID).Return(booking, nil)
	f.tx.EXPECT().GetPaymentForUpdate(gomock.Any(), bookingID).Return(locked, nil)
	f.tx.EXPECT().UpdatePayment(gomock.Any(), locked).Return(nil)
	f.tx.EXPECT().UpdateBookingPayment(gomock.Any(), booking).Return(nil)
	f.tx.EXPECT().InsertRefund(gomock.Any(), gomock.Any()).Return(nil)
	f.events.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any()).Return(nil)

	_, err := f.uc.IssueRefund(context.Background(), orgID, bookingID, int64Ptr(5000), "")

	require.NoError(t, err)
	assert.Equal(t, locked.Amount, locked.RefundedAmount)
	assert.LessOrEqual(t, locked.RefundedAmount, locked.Amount)
	assert.Equal(t, models.PaymentRefunded, locked.Status)
	assert.Equal(t, models.PaymentStatusRefunded, booking.PaymentStatus)
}

func TestIssueRefund_ConcurrentDuplicateRecordsNothing(t *testing.T) {
	f := newPaymentFixture(t)
	orgID, bookingID := uuid.New(), uuid.New()
	seen := paidPayment(orgID, bookingID)
	// the identical request committed first and refunded the whole balance
	locked := paidPayment(orgID, bookingID)
	locked.ID = seen.ID
	locked.RefundedAmount = locked.Amount
	locked.Status = models.PaymentRefunded
	booking := &models.Booking{ID: bookingID, OrgID: orgID, PaymentStatus: models.PaymentStatusRefunded}

	f.repo.EXPECT().GetBooking(gomock.Any(), orgID, bookingID).Return(booking, nil)
	f.repo.EXPECT().GetPaymentByBooking(gomock.Any(), bookingID).Return(seen, nil)
	f.gw.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).Return(&models.ProviderRefund{ID: "re_1"}, nil)
	f.inTx()
	f.tx.EXPECT().GetBookingForUpdate(gomock.Any(), orgID, bookingID).Return(booking, nil)
	f.tx.EXPECT().GetPaymentForUpdate(gomock.Any(), bookingID).Return(locked, nil)
	f.tx.EXPECT().UpdatePayment(gomock.Any(), gomock.Any()).Times(0)
	f.tx.EXPECT().UpdateBookingPayment(gomock.Any(), gomock.Any()).Times(0)
	f.tx.EXPECT().InsertRefund(gomock.Any(), gomock.Any()).Times(0)
	f.events.EXPECT().PublishPaymentEvent(gomock.Any(), gomock.Any()).Times(0)

	result, err := f.uc.IssueRefund(context.Background(), orgID, bookingID, nil, "")

	assert.ErrorIs(t, err, apperror.ErrNothingToRefund)
	assert.Nil(t, result)
	assert.Equal(t, locked.Amount, locked.RefundedAmount)
}

func TestIssueRefund_Rejected(t *testing.T) {
	orgID, bookingID := uuid.New(), uuid.New()

	t.Run("zero amount", func(t *testing.T) {
		f := newPaymentFixture(t)
		_, err := f.uc.IssueRefund(context.Background(), orgID, bookingID, int64Ptr(0), "")
		assert.ErrorIs(t, err, apperror.ErrInvalidRefundAmount)
	})

	t.Run("negative amount", func(t *testing.T) {
		f := newPaymentFixture(t)
		_, err := f.uc.IssueRefund(context.Background(), orgID, bookingID, int64Ptr(-5), "")
		assert.ErrorIs(t, err, apperror.ErrInvalidRefundAmount)
	})

	t.Run("no payment", func(t *testing.T) {
		f := newPaymentFixture(t)
		f.repo.EXPECT().GetBooking(gomock.Any(), orgID, bookingID).Return(&models.Booking{ID: bookingID}, nil)
		f.repo.EXPECT().GetPaymentByBooking(gomock.Any(), bookingID).Return(nil, apperror.ErrPaymentNotFound)

		_, err := f.uc.IssueRefund(context.Background(), orgID, bookingID, nil, "")
		assert.ErrorIs(t, err, apperror.ErrNothingToRefund)
	})

	t.Run("payment not succeeded", func(t *testing.T) {
		f := newPaymentFixture(t)
		p := paidPayment(orgID, bookingID)
		p.Status = models.PaymentPending
		f.repo.EXPECT().GetBooking(gomock.Any(), orgID, bookingID).Return(&models.Booking{ID: bookingID}, nil)
		f.repo.EXPECT().GetPaymentByBooking(gomock.Any(), bookingID).Return(p, nil)

		_, err := f.uc.IssueRefund(context.Background(), orgID, bookingID, nil, "")
		assert.ErrorIs(t, err, apperror.ErrNothingToRefund)
	})

	t.Run("provider failure leaves ledger untouched", func(t *testing.T) {
		f := newPaymentFixture(t)
		p := paidPayment(orgID, bookingID)
		f.repo.EXPECT().GetBooking(gomock.Any(), orgID, bookingID).Return(&models.Booking{ID: bookingID}, nil)
		f.repo.EXPECT().GetPaymentByBooking(gomock.Any(), bookingID).Return(p, nil)
		f.gw.EXPECT().CreateRefund(gomock.Any(), gomock.Any()).Return(nil, apperror.Provider("stripe", errors.New("card_declined")))

		_, err := f.uc.IssueRefund(context.Background(), orgID, bookingID, nil, "")
		assert.ErrorIs(t, err, apperror.ErrProviderError)
		assert.Equal(t, int64(0), p.RefundedAmount)
	})
}
