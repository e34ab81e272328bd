package messaging

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// MessagingUC sends and records WhatsApp messages; it satisfies dispatch.MessagingGW
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/chauffeur/services/messaging MessagingUC
type MessagingUC interface {
	Send(ctx context.Context, to, body string, meta models.MessageMeta) (*models.SendResult, error)
	RecordInbound(ctx context.Context, msg models.InboundMessage, meta models.MessageMeta) error
	ListBookingMessages(ctx context.Context, orgID, bookingID uuid.UUID) ([]*models.WhatsAppMessage, error)
}
