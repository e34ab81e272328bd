package repository

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupMessageLogTest(t *testing.T) (*MessageLogRepo, sqlmock.Sqlmock) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewMessageLogRepository(sqlx.NewDb(db, "sqlmock")), mock
}

func TestInsertMessage(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		repo, mock := setupMessageLogTest(t)
		mock.ExpectExec("INSERT INTO whatsapp_messages").WillReturnResult(sqlmock.NewResult(0, 1))

		err := repo.InsertMessage(context.Background(), &models.WhatsAppMessage{
			ID:          uuid.New(),
			OrgID:       uuid.New(),
			Direction:   models.DirectionOutbound,
			Phone:       "+447700900123",
			Body:        "New job",
			MessageType: models.MessageTypeJobOffer,
			Status:      models.MessageSent,
			CreatedAt:   time.Now(),
		})

		assert.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Database error", func(t *testing.T) {
		repo, mock := setupMessageLogTest(t)
		mock.ExpectExec("INSERT INTO whatsapp_messages").WillReturnError(errors.New("disk full"))

		err := repo.InsertMessage(context.Background(), &models.WhatsAppMessage{ID: uuid.New()})

		assert.ErrorContains(t, err, "failed to log message")
	})
}

func TestListBookingMessages(t *testing.T) {
	repo, mock := setupMessageLogTest(t)
	orgID, bookingID := uuid.New(), uuid.New()
	now := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)

	columns := []string{"id", "org_id", "booking_id", "driver_id", "direction", "phone", "body",
		"message_type", "provider_message_id", "status", "error", "created_at"}
	mock.ExpectQuery("SELECT (.+) FROM whatsapp_messages WHERE org_id = \\$1 AND booking_id = \\$2 ORDER BY created_at ASC").
		WithArgs(orgID, bookingID).
		WillReturnRows(sqlmock.NewRows(columns).
			AddRow(uuid.NewString(), orgID.String(), bookingID.String(), nil, "outbound", "+447700900123",
				"New job", "job_offer", "SM1", "sent", nil, now).
			AddRow(uuid.NewString(), orgID.String(), bookingID.String(), nil, "inbound", "+447700900123",
				"1", "driver_reply", "SM2", "received", nil, now.Add(time.Minute)))

	messages, err := repo.ListBookingMessages(context.Background(), orgID, bookingID)

	require.NoError(t, err)
	require.Len(t, messages, 2)
	assert.Equal(t, models.DirectionOutbound, messages[0].Direction)
	assert.Equal(t, "SM1", *messages[0].ProviderMessageID)
	assert.Equal(t, models.MessageReceived, messages[1].Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}
