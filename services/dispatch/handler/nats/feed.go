package handler

import (
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/nats-io/nats.go"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	natspkg "github.com/piresc/chauffeur/internal/pkg/nats"
)

// Broadcaster pushes an event to every console of an organization
type Broadcaster interface {
	BroadcastToOrg(orgID uuid.UUID, event string, data interface{})
}

// FeedHandler relays booking and payment events to connected dispatcher consoles
type FeedHandler struct {
	natsClient  *natspkg.Client
	broadcaster Broadcaster
	subs        []*nats.Subscription
}

// NewFeedHandler creates a new live feed handler
func NewFeedHandler(client *natspkg.Client, broadcaster Broadcaster) *FeedHandler {
	return &FeedHandler{
		natsClient:  client,
		broadcaster: broadcaster,
		subs:        make([]*nats.Subscription, 0, 2),
	}
}

// Start subscribes to every booking and payment subject
func (h *FeedHandler) Start() error {
	logger.Info("Starting dispatcher live feed",
		logger.String("booking_subject", constants.SubjectBookingAll),
		logger.String("payment_subject", constants.SubjectPaymentAll))

	sub, err := h.natsClient.Subscribe(constants.SubjectBookingAll, h.handleBookingEvent)
	if err != nil {
		return fmt.Errorf("failed to subscribe to booking events: %w", err)
	}
	h.subs = append(h.subs, sub)

	sub, err = h.natsClient.Subscribe(constants.SubjectPaymentAll, h.handlePaymentEvent)
	if err != nil {
		h.Stop()
		return fmt.Errorf("failed to subscribe to payment events: %w", err)
	}
	h.subs = append(h.subs, sub)
	return nil
}

// Stop drops every subscription
func (h *FeedHandler) Stop() {
	for _, sub := range h.subs {
		if err := sub.Unsubscribe(); err != nil {
			logger.Warn("Failed to unsubscribe", logger.String("subject", sub.Subject), logger.Err(err))
		}
	}
	h.subs = h.subs[:0]
}

func (h *FeedHandler) handleBookingEvent(msg *nats.Msg) {
	var event models.BookingEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode booking event", logger.String("subject", msg.Subject), logger.Err(err))
		return
	}
	if event.OrgID == uuid.Nil {
		logger.Warn("Booking event without organization dropped", logger.String("subject", msg.Subject))
		return
	}
	h.broadcaster.BroadcastToOrg(event.OrgID, constants.EventBookingUpdate, event)
}

func (h *FeedHandler) handlePaymentEvent(msg *nats.Msg) {
	var event models.PaymentLedgerEvent
	if err := json.Unmarshal(msg.Data, &event); err != nil {
		logger.Error("Failed to decode payment event", logger.String("subject", msg.Subject), logger.Err(err))
		return
	}
	if event.OrgID == uuid.Nil {
		logger.Warn("Payment event without organization dropped", logger.String("subject", msg.Subject))
		return
	}
	h.broadcaster.BroadcastToOrg(event.OrgID, constants.EventPaymentUpdate, event)
}
