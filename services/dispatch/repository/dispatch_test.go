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
	"github.com/piresc/chauffeur/services/dispatch"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	driverRowColumns = []string{
		"id", "org_id", "name", "phone", "email", "vehicle_make", "vehicle_model", "vehicle_plate",
		"vehicle_class", "status", "rating", "location", "created_at", "updated_at", "deleted_at",
	}
	conversationRowColumns = []string{
		"phone", "org_id", "driver_id", "state", "current_booking_id", "last_message_at", "expires_at",
	}
)

func setupDispatchRepoTest(t *testing.T) (*DispatchRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewDispatchRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestFindDriverByPhone(t *testing.T) {
	t.Run("Found", func(t *testing.T) {
		repo, mock := setupDispatchRepoTest(t)
		driverID, orgID := uuid.New(), uuid.New()
		now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

		mock.ExpectQuery("SELECT (.+) FROM drivers WHERE phone = \\$1 AND deleted_at IS NULL").
			WithArgs("+447700900123").
			WillReturnRows(sqlmock.NewRows(driverRowColumns).AddRow(
				driverID.String(), orgID.String(), "Sam", "+447700900123", "", "Mercedes", "E-Class", "AB12 CDE",
				"Business Class", "AVAILABLE", 4.9, "", now, now, nil))

		driver, err := repo.FindDriverByPhone(context.Background(), "+447700900123")

		require.NoError(t, err)
		assert.Equal(t, driverID, driver.ID)
		assert.Equal(t, orgID, driver.OrgID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Unknown", func(t *testing.T) {
		repo, mock := setupDispatchRepoTest(t)
		mock.ExpectQuery("SELECT (.+) FROM drivers").
			WillReturnRows(sqlmock.NewRows(driverRowColumns))

		_, err := repo.FindDriverByPhone(context.Background(), "+15550001111")

		assert.ErrorIs(t, err, apperror.ErrUnknownSender)
	})
}

func TestPeekConversation(t *testing.T) {
	t.Run("None", func(t *testing.T) {
		repo, mock := setupDispatchRepoTest(t)
		mock.ExpectQuery("SELECT (.+) FROM whatsapp_conversations WHERE phone = \\$1").
			WithArgs("+447700900123").
			WillReturnRows(sqlmock.NewRows(conversationRowColumns))

		conv, err := repo.PeekConversation(context.Background(), "+447700900123")

		require.NoError(t, err)
		assert.Nil(t, conv)
	})

	t.Run("Found", func(t *testing.T) {
		repo, mock := setupDispatchRepoTest(t)
		bookingID := uuid.New()
		now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
		mock.ExpectQuery("SELECT (.+) FROM whatsapp_conversations").
			WillReturnRows(sqlmock.NewRows(conversationRowColumns).AddRow(
				"+447700900123", uuid.NewString(), uuid.NewString(), "AWAITING_ACCEPT",
				bookingID.String(), now, now.Add(24*time.Hour)))

		conv, err := repo.PeekConversation(context.Background(), "+447700900123")

		require.NoError(t, err)
		assert.Equal(t, models.ConversationAwaitingAccept, conv.State)
		assert.Equal(t, &bookingID, conv.CurrentBookingID)
	})
}

func TestRunInTx_LocksInOrder(t *testing.T) {
	repo, mock := setupDispatchRepoTest(t)
	orgID, bookingID, driverID := uuid.New(), uuid.New(), uuid.New()

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM bookings WHERE id = \\$1 AND org_id = \\$2 FOR UPDATE").
		WithArgs(bookingID, orgID).
		WillReturnError(errors.New("boom"))
	mock.ExpectRollback()

	err := repo.RunInTx(context.Background(), func(tx dispatch.DispatchTx) error {
		_, err := tx.GetBookingForUpdate(context.Background(), orgID, bookingID)
		if err != nil {
			return err
		}
		_, err = tx.GetDriverForUpdate(context.Background(), orgID, driverID)
		return err
	})

	assert.Error(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRunInTx_Commit(t *testing.T) {
	repo, mock := setupDispatchRepoTest(t)
	driverID := uuid.New()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	mock.ExpectBegin()
	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM bookings").
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectExec("UPDATE drivers SET status = \\$1").
		WithArgs(models.DriverStatusBusy, driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("SELECT (.+) FROM whatsapp_conversations WHERE phone = \\$1 FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(conversationRowColumns))
	mock.ExpectExec("INSERT INTO whatsapp_conversations (.+) ON CONFLICT \\(phone\\) DO UPDATE").
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	err := repo.RunInTx(context.Background(), func(tx dispatch.DispatchTx) error {
		n, err := tx.CountActiveBookings(context.Background(), driverID)
		if err != nil {
			return err
		}
		assert.Zero(t, n)
		if err := tx.UpdateDriverStatus(context.Background(), driverID, models.DriverStatusBusy); err != nil {
			return err
		}
		conv, err := tx.GetConversationForUpdate(context.Background(), "+447700900123")
		if err != nil {
			return err
		}
		assert.Nil(t, conv)
		return tx.UpsertConversation(context.Background(), &models.Conversation{
			Phone:         "+447700900123",
			DriverID:      driverID,
			State:         models.ConversationAwaitingAccept,
			LastMessageAt: now,
			ExpiresAt:     now.Add(24 * time.Hour),
		})
	})

	assert.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetDriverForUpdate_NotFound(t *testing.T) {
	repo, mock := setupDispatchRepoTest(t)
	mock.ExpectBegin()
	mock.ExpectQuery("SELECT (.+) FROM drivers (.+) FOR UPDATE").
		WillReturnRows(sqlmock.NewRows(driverRowColumns))
	mock.ExpectRollback()

	err := repo.RunInTx(context.Background(), func(tx dispatch.DispatchTx) error {
		_, err := tx.GetDriverForUpdate(context.Background(), uuid.New(), uuid.New())
		return err
	})

	assert.ErrorIs(t, err, apperror.ErrDriverNotFound)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkNotified(t *testing.T) {
	repo, mock := setupDispatchRepoTest(t)
	bookingID, driverID := uuid.New(), uuid.New()

	mock.ExpectExec("UPDATE bookings SET driver_notified = TRUE(.+)WHERE id = \\$1 AND driver_id = \\$2").
		WithArgs(bookingID, driverID).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("UPDATE bookings SET customer_notified = TRUE").
		WithArgs(bookingID).
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.MarkDriverNotified(context.Background(), bookingID, driverID))
	require.NoError(t, repo.MarkCustomerNotified(context.Background(), bookingID))
	assert.NoError(t, mock.ExpectationsWereMet())
}
