package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// BookingColumns is the select list matching models.Booking
const BookingColumns = `id, org_id, customer_name, customer_email, customer_phone, pickup_location,
	dropoff_location, pickup_at, passengers, vehicle_class, distance, price, currency,
	price_validated, status, payment_status, driver_id, customer_notified, driver_notified,
	driver_accepted, driver_accepted_at, stripe_checkout_session_id, notes, source,
	created_at, updated_at`

// InsertBookingQuery inserts a full models.Booking with named parameters
const InsertBookingQuery = `
	INSERT INTO bookings (
		id, org_id, customer_name, customer_email, customer_phone, pickup_location,
		dropoff_location, pickup_at, passengers, vehicle_class, distance, price, currency,
		price_validated, status, payment_status, driver_id, customer_notified, driver_notified,
		driver_accepted, driver_accepted_at, stripe_checkout_session_id, notes, source,
		created_at, updated_at
	) VALUES (
		:id, :org_id, :customer_name, :customer_email, :customer_phone, :pickup_location,
		:dropoff_location, :pickup_at, :passengers, :vehicle_class, :distance, :price, :currency,
		:price_validated, :status, :payment_status, :driver_id, :customer_notified, :driver_notified,
		:driver_accepted, :driver_accepted_at, :stripe_checkout_session_id, :notes, :source,
		:created_at, :updated_at
	)`

const defaultListLimit = 50

// BookingRepo implements bookings.BookingRepo on Postgres
type BookingRepo struct {
	db *sqlx.DB
}

// NewBookingRepository creates a new booking repository
func NewBookingRepository(db *sqlx.DB) *BookingRepo {
	return &BookingRepo{db: db}
}

// CreateBooking inserts a booking
func (r *BookingRepo) CreateBooking(ctx context.Context, booking *models.Booking) error {
	if _, err := r.db.NamedExecContext(ctx, InsertBookingQuery, booking); err != nil {
		return fmt.Errorf("failed to create booking: %w", err)
	}
	return nil
}

// GetBooking retrieves a booking of the organization
func (r *BookingRepo) GetBooking(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error) {
	query := `SELECT ` + BookingColumns + ` FROM bookings WHERE id = $1 AND org_id = $2`

	var booking models.Booking
	if err := r.db.GetContext(ctx, &booking, query, bookingID, orgID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrBookingNotFound
		}
		return nil, fmt.Errorf("failed to get booking: %w", err)
	}
	return &booking, nil
}

// ListBookings lists bookings by pickup time, newest first
func (r *BookingRepo) ListBookings(ctx context.Context, orgID uuid.UUID, filter models.BookingFilter) ([]*models.Booking, error) {
	conditions := []string{"org_id = $1"}
	args := []interface{}{orgID}

	if len(filter.Statuses) > 0 {
		statuses := make([]string, len(filter.Statuses))
		for i, s := range filter.Statuses {
			statuses[i] = string(s)
		}
		args = append(args, pq.Array(statuses))
		conditions = append(conditions, fmt.Sprintf("status = ANY($%d)", len(args)))
	}
	if filter.DriverID != nil {
		args = append(args, *filter.DriverID)
		conditions = append(conditions, fmt.Sprintf("driver_id = $%d", len(args)))
	}
	if filter.From != nil {
		args = append(args, *filter.From)
		conditions = append(conditions, fmt.Sprintf("pickup_at >= $%d", len(args)))
	}
	if filter.To != nil {
		args = append(args, *filter.To)
		conditions = append(conditions, fmt.Sprintf("pickup_at < $%d", len(args)))
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	args = append(args, limit, filter.Offset)

	query := fmt.Sprintf(`SELECT %s FROM bookings WHERE %s ORDER BY pickup_at DESC LIMIT $%d OFFSET $%d`,
		BookingColumns, strings.Join(conditions, " AND "), len(args)-1, len(args))

	bookings := []*models.Booking{}
	if err := r.db.SelectContext(ctx, &bookings, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list bookings: %w", err)
	}
	return bookings, nil
}

// UpdateBookingDetails writes the customer and trip fields of an open booking.
// Lifecycle and payment columns are owned by dispatch and payments. Notes are written
// only when writeNotes is set, and the pending payment marker follows the stored row so
// a concurrent checkout success is never undone.
func (r *BookingRepo) UpdateBookingDetails(ctx context.Context, booking *models.Booking, writeNotes bool) error {
	notes := ""
	if writeNotes {
		notes = fmt.Sprintf(`notes = CASE WHEN strpos(notes, '%[1]s') > 0
				THEN btrim(:notes || ' %[1]s') ELSE :notes END,`, models.PendingPaymentMarker)
	}
	query := fmt.Sprintf(`
		UPDATE bookings SET
			customer_name = :customer_name, customer_email = :customer_email,
			customer_phone = :customer_phone, pickup_location = :pickup_location,
			dropoff_location = :dropoff_location, pickup_at = :pickup_at,
			passengers = :passengers, %s updated_at = :updated_at
		WHERE id = :id AND org_id = :org_id AND status NOT IN ('COMPLETED', 'CANCELLED')`, notes)

	result, err := r.db.NamedExecContext(ctx, query, booking)
	if err != nil {
		return fmt.Errorf("failed to update booking: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		return apperror.ErrBookingClosed
	}
	return nil
}
