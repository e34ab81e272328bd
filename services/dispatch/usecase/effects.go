package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
)

type notifyMark int

const (
	markNone notifyMark = iota
	markDriver
	markCustomer
)

// outbound is a message sent once the transition has committed
type outbound struct {
	to      string
	body    string
	meta    models.MessageMeta
	mark    notifyMark
	booking *models.Booking
}

type transition struct {
	from, to string
}

// effects collects what a committed transition still has to do outside the database
type effects struct {
	messages    []outbound
	events      []*models.BookingEvent
	transitions []transition
}

func (e *effects) send(to, body string, messageType models.MessageType, b *models.Booking, driverID *uuid.UUID, mark notifyMark) {
	meta := models.MessageMeta{
		OrgID:       b.OrgID,
		BookingID:   &b.ID,
		DriverID:    driverID,
		MessageType: messageType,
	}
	e.messages = append(e.messages, outbound{to: to, body: body, meta: meta, mark: mark, booking: b})
}

func (e *effects) publish(subject string, b *models.Booking, driverID *uuid.UUID, at time.Time) {
	e.events = append(e.events, &models.BookingEvent{
		Type:          subject,
		OrgID:         b.OrgID,
		BookingID:     b.ID,
		DriverID:      driverID,
		Status:        b.Status,
		PaymentStatus: b.PaymentStatus,
		OccurredAt:    at,
	})
}

func (e *effects) moved(from, to string) {
	e.transitions = append(e.transitions, transition{from: from, to: to})
}

// apply delivers the effects of a committed transition. A failed send is logged and
// leaves the notification flag unset so a resend can recover.
func (uc *dispatchUC) apply(ctx context.Context, eff *effects) {
	for _, t := range eff.transitions {
		uc.metrics.ObserveTransition(t.from, t.to)
	}

	for _, m := range eff.messages {
		res, err := uc.messagingGW.Send(ctx, m.to, m.body, m.meta)
		if err != nil || res == nil || !res.Success {
			logger.WarnCtx(ctx, "Notification not delivered",
				logger.OrgID(m.meta.OrgID.String()),
				logger.String("message_type", string(m.meta.MessageType)),
				logger.String("to", utils.MaskPhoneNumber(m.to)),
				logger.Err(err))
			continue
		}

		switch m.mark {
		case markDriver:
			if err := uc.repo.MarkDriverNotified(ctx, m.booking.ID, *m.meta.DriverID); err != nil {
				logger.ErrorCtx(ctx, "Failed to mark driver notified",
					logger.BookingID(m.booking.ID.String()), logger.Err(err))
				continue
			}
			m.booking.DriverNotified = true
		case markCustomer:
			if err := uc.repo.MarkCustomerNotified(ctx, m.booking.ID); err != nil {
				logger.ErrorCtx(ctx, "Failed to mark customer notified",
					logger.BookingID(m.booking.ID.String()), logger.Err(err))
				continue
			}
			m.booking.CustomerNotified = true
		}
	}

	for _, event := range eff.events {
		if err := uc.eventGW.PublishBookingEvent(ctx, event); err != nil {
			logger.WarnCtx(ctx, "Failed to publish booking event",
				logger.String("type", event.Type),
				logger.BookingID(event.BookingID.String()),
				logger.Err(err))
		}
	}
}
