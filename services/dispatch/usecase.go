package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// DispatchUC drives the booking lifecycle and the driver WhatsApp conversation
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/chauffeur/services/dispatch DispatchUC
type DispatchUC interface {
	AssignDriver(ctx context.Context, orgID, bookingID, driverID uuid.UUID) (*models.Booking, error)
	CancelBooking(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error)
	ResendJob(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error)
	HandleDriverMessage(ctx context.Context, msg models.InboundMessage) (*models.DriverMessageResult, error)
}
