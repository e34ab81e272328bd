package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// BookingRepo defines booking data access. Bookings are never deleted.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/chauffeur/services/bookings BookingRepo,DriverLookup
type BookingRepo interface {
	CreateBooking(ctx context.Context, booking *models.Booking) error
	GetBooking(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, orgID uuid.UUID, filter models.BookingFilter) ([]*models.Booking, error)
	UpdateBookingDetails(ctx context.Context, booking *models.Booking, writeNotes bool) error
}

// DriverLookup resolves the driver printed on a receipt
type DriverLookup interface {
	GetDriver(ctx context.Context, orgID, driverID uuid.UUID) (*models.Driver, error)
}
