package gateway

import (
	"context"
	"strings"

	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	natspkg "github.com/piresc/chauffeur/internal/pkg/nats"
	"github.com/piresc/chauffeur/services/bookings"
)

// BookingGW publishes domain events to NATS. The event type is the subject.
type BookingGW struct {
	natsClient *natspkg.Client
}

// NewBookingGW creates a new booking gateway
func NewBookingGW(client *natspkg.Client) bookings.BookingGW {
	return &BookingGW{
		natsClient: client,
	}
}

// PublishBookingEvent publishes a booking lifecycle event
func (g *BookingGW) PublishBookingEvent(ctx context.Context, event *models.BookingEvent) error {
	return g.publish(ctx, event.Type, event)
}

// PublishPaymentEvent publishes a payment ledger event
func (g *BookingGW) PublishPaymentEvent(ctx context.Context, event *models.PaymentLedgerEvent) error {
	return g.publish(ctx, event.Type, event)
}

func (g *BookingGW) publish(ctx context.Context, subject string, v interface{}) error {
	if !strings.HasPrefix(subject, "booking.") && !strings.HasPrefix(subject, "payment.") {
		logger.WarnCtx(ctx, "Refusing to publish event with unknown subject", logger.String("subject", subject))
		return nil
	}
	return g.natsClient.PublishJSON(subject, v)
}
