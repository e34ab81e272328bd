package dispatch

import (
	"context"

	"github.com/piresc/chauffeur/internal/pkg/models"
)

// MessagingGW delivers WhatsApp messages and records driver replies
//
//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/piresc/chauffeur/services/dispatch MessagingGW,EventGW
type MessagingGW interface {
	Send(ctx context.Context, to, body string, meta models.MessageMeta) (*models.SendResult, error)
	RecordInbound(ctx context.Context, msg models.InboundMessage, meta models.MessageMeta) error
}

// EventGW publishes booking lifecycle events
type EventGW interface {
	PublishBookingEvent(ctx context.Context, event *models.BookingEvent) error
}
