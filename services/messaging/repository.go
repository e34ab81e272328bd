package messaging

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// MessageLogRepo stores every inbound and outbound WhatsApp message
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/chauffeur/services/messaging MessageLogRepo
type MessageLogRepo interface {
	InsertMessage(ctx context.Context, msg *models.WhatsAppMessage) error
	ListBookingMessages(ctx context.Context, orgID, bookingID uuid.UUID) ([]*models.WhatsAppMessage, error)
}
