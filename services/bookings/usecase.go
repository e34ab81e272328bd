package bookings

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// BookingUC is the booking store
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/chauffeur/services/bookings BookingUC
type BookingUC interface {
	CreateBooking(ctx context.Context, orgID uuid.UUID, req *models.CreateBookingRequest) (*models.Booking, error)
	CreatePublicBooking(ctx context.Context, orgID uuid.UUID, req *models.PublicBookingRequest) (*models.Booking, error)
	GetBooking(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error)
	ListBookings(ctx context.Context, orgID uuid.UUID, filter models.BookingFilter) ([]*models.Booking, error)
	UpdateBooking(ctx context.Context, orgID, bookingID uuid.UUID, req *models.UpdateBookingRequest) (*models.Booking, error)
	Receipt(ctx context.Context, orgID, bookingID uuid.UUID) ([]byte, error)
}
