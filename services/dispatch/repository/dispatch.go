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
	"github.com/piresc/chauffeur/services/dispatch"
	driverrepo "github.com/piresc/chauffeur/services/drivers/repository"
)

const conversationColumns = `phone, org_id, driver_id, state, current_booking_id, last_message_at, expires_at`

// DispatchRepo implements dispatch.DispatchRepo on Postgres
type DispatchRepo struct {
	db *sqlx.DB
}

// NewDispatchRepository creates a new dispatch repository
func NewDispatchRepository(db *sqlx.DB) *DispatchRepo {
	return &DispatchRepo{db: db}
}

// RunInTx runs fn inside one database transaction
func (r *DispatchRepo) RunInTx(ctx context.Context, fn func(tx dispatch.DispatchTx) error) error {
	return database.RunInTx(ctx, r.db, func(tx *sqlx.Tx) error {
		return fn(&dispatchTx{tx: tx})
	})
}

// FindDriverByPhone returns the active driver registered under phone
func (r *DispatchRepo) FindDriverByPhone(ctx context.Context, phone string) (*models.Driver, error) {
	query := `SELECT ` + driverrepo.DriverColumns + ` FROM drivers
		WHERE phone = $1 AND deleted_at IS NULL`

	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrUnknownSender
		}
		return nil, fmt.Errorf("failed to find driver by phone: %w", err)
	}
	return &driver, nil
}

// PeekConversation reads a conversation without locking it
func (r *DispatchRepo) PeekConversation(ctx context.Context, phone string) (*models.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM whatsapp_conversations WHERE phone = $1`
	return getConversation(ctx, r.db, query, phone)
}

// MarkDriverNotified records that the job offer reached the driver still attached to the booking
func (r *DispatchRepo) MarkDriverNotified(ctx context.Context, bookingID, driverID uuid.UUID) error {
	query := `UPDATE bookings SET driver_notified = TRUE, updated_at = NOW()
		WHERE id = $1 AND driver_id = $2`

	if _, err := r.db.ExecContext(ctx, query, bookingID, driverID); err != nil {
		return fmt.Errorf("failed to mark driver notified: %w", err)
	}
	return nil
}

// MarkCustomerNotified records that the customer was told about their driver
func (r *DispatchRepo) MarkCustomerNotified(ctx context.Context, bookingID uuid.UUID) error {
	query := `UPDATE bookings SET customer_notified = TRUE, updated_at = NOW() WHERE id = $1`

	if _, err := r.db.ExecContext(ctx, query, bookingID); err != nil {
		return fmt.Errorf("failed to mark customer notified: %w", err)
	}
	return nil
}

type dispatchTx struct {
	tx *sqlx.Tx
}

func (t *dispatchTx) GetBookingForUpdate(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + bookingrepo.BookingColumns + ` FROM bookings
		WHERE id = $1 AND org_id = $2 FOR UPDATE`

	var booking models.Booking
	if err := t.tx.GetContext(ctx, &booking, query, bookingID, orgID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to lock booking: %w", err)
	}
	return &booking, nil
}

func (t *dispatchTx) GetDriverForUpdate(ctx context.Context, orgID, driverID uuid.UUID) (*models.Driver, error) {
	query := `SELECT ` + driverrepo.DriverColumns + ` FROM drivers
		WHERE id = $1 AND org_id = $2 AND deleted_at IS NULL FOR UPDATE`

	var driver models.Driver
	if err := t.tx.GetContext(ctx, &driver, query, driverID, orgID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to lock driver: %w", err)
	}
	return &driver, nil
}

func (t *dispatchTx) GetConversationForUpdate(ctx context.Context, phone string) (*models.Conversation, error) {
	query := `SELECT ` + conversationColumns + ` FROM whatsapp_conversations
		WHERE phone = $1 FOR UPDATE`
	return getConversation(ctx, t.tx, query, phone)
}

func (t *dispatchTx) CountActiveBookings(ctx context.Context, driverID uuid.UUID) (int, error) {
	query := `SELECT COUNT(*) FROM bookings
		WHERE driver_id = $1 AND status IN ('ASSIGNED', 'IN_PROGRESS')`

	var count int
	if err := t.tx.GetContext(ctx, &count, query, driverID); err != nil {
		return 0, fmt.Errorf("failed to count active bookings: %w", err)
	}
	return count, nil
}

func (t *dispatchTx) UpdateBookingState(ctx context.Context, booking *models.Booking) error {
	query := `
		UPDATE bookings SET
			status = :status,
			driver_id = :driver_id,
			driver_notified = :driver_notified,
			driver_accepted = :driver_accepted,
			driver_accepted_at = :driver_accepted_at,
			customer_notified = :customer_notified,
			updated_at = :updated_at
		WHERE id = :id AND org_id = :org_id`

	if _, err := t.tx.NamedExecContext(ctx, query, booking); err != nil {
		return fmt.Errorf("failed to update booking state: %w", err)
	}
	return nil
}

func (t *dispatchTx) UpdateDriverStatus(ctx context.Context, driverID uuid.UUID, status models.DriverStatus) error {
	query := `UPDATE drivers SET status = $1, updated_at = NOW() WHERE id = $2`

	if _, err := t.tx.ExecContext(ctx, query, status, driverID); err != nil {
		return fmt.Errorf("failed to update driver status: %w", err)
	}
	return nil
}

func (t *dispatchTx) UpsertConversation(ctx context.Context, conversation *models.Conversation) error {
	query := `
		INSERT INTO whatsapp_conversations (` + conversationColumns + `)
		VALUES (:phone, :org_id, :driver_id, :state, :current_booking_id, :last_message_at, :expires_at)
		ON CONFLICT (phone) DO UPDATE SET
			org_id = EXCLUDED.org_id,
			driver_id = EXCLUDED.driver_id,
			state = EXCLUDED.state,
			current_booking_id = EXCLUDED.current_booking_id,
			last_message_at = EXCLUDED.last_message_at,
			expires_at = EXCLUDED.expires_at`

	if _, err := t.tx.NamedExecContext(ctx, query, conversation); err != nil {
		return fmt.Errorf("failed to save conversation: %w", err)
	}
	return nil
}

func getConversation(ctx context.Context, q sqlx.QueryerContext, query, phone string) (*models.Conversation, error) {
	var conversation models.Conversation
	if err := sqlx.GetContext(ctx, q, &conversation, query, phone); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get conversation: %w", err)
	}
	return &conversation, nil
}
