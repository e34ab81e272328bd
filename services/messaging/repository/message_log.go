package repository

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

const messageColumns = `id, org_id, booking_id, driver_id, direction, phone, body, message_type,
	provider_message_id, status, error, created_at`

// MessageLogRepo implements messaging.MessageLogRepo on Postgres
type MessageLogRepo struct {
	db *sqlx.DB
}

// NewMessageLogRepository creates a new message log repository
func NewMessageLogRepository(db *sqlx.DB) *MessageLogRepo {
	return &MessageLogRepo{db: db}
}

// InsertMessage appends a message to the log
func (r *MessageLogRepo) InsertMessage(ctx context.Context, msg *models.WhatsAppMessage) error {
	query := `
		INSERT INTO whatsapp_messages (` + messageColumns + `)
		VALUES (
			:id, :org_id, :booking_id, :driver_id, :direction, :phone, :body, :message_type,
			:provider_message_id, :status, :error, :created_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, msg); err != nil {
		return fmt.Errorf("failed to log message: %w", err)
	}
	return nil
}

// ListBookingMessages returns the conversation trail of a booking, oldest first
func (r *MessageLogRepo) ListBookingMessages(ctx context.Context, orgID, bookingID uuid.UUID) ([]*models.WhatsAppMessage, error) {
	query := `SELECT ` + messageColumns + ` FROM whatsapp_messages
		WHERE org_id = $1 AND booking_id = $2
		ORDER BY created_at ASC`

	messages := []*models.WhatsAppMessage{}
	if err := r.db.SelectContext(ctx, &messages, query, orgID, bookingID); err != nil {
		return nil, fmt.Errorf("failed to list messages: %w", err)
	}
	return messages, nil
}
