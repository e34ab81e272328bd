package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/metrics"
	"github.com/piresc/chauffeur/internal/pkg/models"
	nrpkg "github.com/piresc/chauffeur/internal/pkg/newrelic"
	"github.com/piresc/chauffeur/services/dispatch"
)

// DefaultSessionTTL is how long a driver conversation stays live without a message
const DefaultSessionTTL = 24 * time.Hour

var errNoDriverAssigned = fmt.Errorf("booking has no driver assigned: %w", apperror.ErrInvalidTransition)

type dispatchUC struct {
	cfg         *models.Config
	repo        dispatch.DispatchRepo
	messagingGW dispatch.MessagingGW
	eventGW     dispatch.EventGW
	metrics     *metrics.Metrics
	now         func() time.Time
}

// NewDispatchUC creates a new dispatch use case
func NewDispatchUC(
	cfg *models.Config,
	repo dispatch.DispatchRepo,
	messagingGW dispatch.MessagingGW,
	eventGW dispatch.EventGW,
	m *metrics.Metrics,
) dispatch.DispatchUC {
	return &dispatchUC{
		cfg:         cfg,
		repo:        repo,
		messagingGW: messagingGW,
		eventGW:     eventGW,
		metrics:     m,
		now:         models.Now,
	}
}

func (uc *dispatchUC) sessionTTL() time.Duration {
	if uc.cfg.Dispatch.SessionTTL > 0 {
		return uc.cfg.Dispatch.SessionTTL
	}
	return DefaultSessionTTL
}

// AssignDriver attaches an available driver to a pending booking and offers them the job
func (uc *dispatchUC) AssignDriver(ctx context.Context, orgID, bookingID, driverID uuid.UUID) (*models.Booking, error) {
	var (
		booking *models.Booking
		eff     effects
	)

	err := nrpkg.WithSegment(ctx, "Dispatch.AssignDriver", func() error {
		return uc.repo.RunInTx(ctx, func(tx dispatch.DispatchTx) error {
			eff = effects{}
			now := uc.now()

			b, err := tx.GetBookingForUpdate(ctx, orgID, bookingID)
			if err != nil {
				return err
			}
			if b.Status != models.BookingStatusPending {
				return apperror.ErrAlreadyAssigned
			}

			d, err := tx.GetDriverForUpdate(ctx, orgID, driverID)
			if err != nil {
				return err
			}
			if d.Status != models.DriverStatusAvailable {
				return apperror.ErrDriverUnavailable
			}
			active, err := tx.CountActiveBookings(ctx, d.ID)
			if err != nil {
				return err
			}
			if active > 0 {
				return apperror.ErrDriverUnavailable
			}

			conv, err := tx.GetConversationForUpdate(ctx, d.Phone)
			if err != nil {
				return err
			}
			if conv.Live(now) && !sameBooking(conv.CurrentBookingID, &b.ID) {
				return apperror.ErrDriverUnavailable
			}

			b.Status = models.BookingStatusAssigned
			b.DriverID = &d.ID
			clearDriverFlags(b)
			b.UpdatedAt = now
			if err := tx.UpdateBookingState(ctx, b); err != nil {
				return err
			}
			if err := tx.UpdateDriverStatus(ctx, d.ID, models.DriverStatusBusy); err != nil {
				return err
			}
			if err := tx.UpsertConversation(ctx, uc.awaitAccept(conv, d, b, now)); err != nil {
				return err
			}

			eff.moved(string(models.BookingStatusPending), string(models.BookingStatusAssigned))
			eff.send(d.Phone, jobOfferMessage(b), models.MessageTypeJobOffer, b, &d.ID, markDriver)
			eff.publish(constants.SubjectBookingAssigned, b, &d.ID, now)
			booking = b
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Driver assigned",
		logger.OrgID(orgID.String()),
		logger.BookingID(bookingID.String()),
		logger.DriverID(driverID.String()))

	uc.apply(ctx, &eff)
	return booking, nil
}

// CancelBooking cancels a pending or assigned booking, releasing its driver
func (uc *dispatchUC) CancelBooking(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error) {
	var (
		booking *models.Booking
		eff     effects
	)

	err := uc.repo.RunInTx(ctx, func(tx dispatch.DispatchTx) error {
		eff = effects{}
		now := uc.now()

		b, err := tx.GetBookingForUpdate(ctx, orgID, bookingID)
		if err != nil {
			return err
		}
		switch {
		case b.Status.IsTerminal():
			return apperror.ErrBookingClosed
		case b.Status == models.BookingStatusInProgress:
			return apperror.ErrJourneyInProgress
		}

		from := b.Status
		var released *models.Driver
		if b.DriverID != nil {
			d, err := tx.GetDriverForUpdate(ctx, orgID, *b.DriverID)
			if err != nil && !errors.Is(err, apperror.ErrNotFound) {
				return err
			}
			if d != nil {
				if err := uc.releaseDriver(ctx, tx, d, b.ID); err != nil {
					return err
				}
				released = d
			}
		}

		notifyDriver := released != nil && b.DriverNotified
		b.Status = models.BookingStatusCancelled
		b.DriverID = nil
		b.UpdatedAt = now
		if err := tx.UpdateBookingState(ctx, b); err != nil {
			return err
		}

		eff.moved(string(from), string(models.BookingStatusCancelled))
		if released != nil {
			if notifyDriver {
				eff.send(released.Phone, jobCancelledMessage(b), models.MessageTypeJobCancelled, b, &released.ID, markNone)
			}
			eff.publish(constants.SubjectBookingCancelled, b, &released.ID, now)
		} else {
			eff.publish(constants.SubjectBookingCancelled, b, nil, now)
		}
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Booking cancelled",
		logger.OrgID(orgID.String()),
		logger.BookingID(bookingID.String()))

	uc.apply(ctx, &eff)
	return booking, nil
}

// ResendJob offers an assigned, unaccepted booking to its driver again and re-arms the
// conversation if it had expired
func (uc *dispatchUC) ResendJob(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error) {
	var (
		booking *models.Booking
		eff     effects
	)

	err := uc.repo.RunInTx(ctx, func(tx dispatch.DispatchTx) error {
		eff = effects{}
		now := uc.now()

		b, err := tx.GetBookingForUpdate(ctx, orgID, bookingID)
		if err != nil {
			return err
		}
		switch {
		case b.Status.IsTerminal():
			return apperror.ErrBookingClosed
		case b.Status == models.BookingStatusInProgress:
			return apperror.ErrJourneyInProgress
		case b.Status != models.BookingStatusAssigned || b.DriverID == nil:
			return errNoDriverAssigned
		case b.DriverAccepted:
			return apperror.ErrJobAccepted
		}

		d, err := tx.GetDriverForUpdate(ctx, orgID, *b.DriverID)
		if err != nil {
			return err
		}
		conv, err := tx.GetConversationForUpdate(ctx, d.Phone)
		if err != nil {
			return err
		}
		if conv.Live(now) && !sameBooking(conv.CurrentBookingID, &b.ID) {
			return apperror.ErrDriverUnavailable
		}
		if err := tx.UpsertConversation(ctx, uc.awaitAccept(conv, d, b, now)); err != nil {
			return err
		}

		eff.send(d.Phone, jobOfferMessage(b), models.MessageTypeJobOffer, b, &d.ID, markDriver)
		booking = b
		return nil
	})
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Job offer resent",
		logger.OrgID(orgID.String()),
		logger.BookingID(bookingID.String()))

	uc.apply(ctx, &eff)
	return booking, nil
}

// releaseDriver frees a driver from bookingID: BUSY becomes AVAILABLE and a conversation
// about this booking goes back to IDLE
func (uc *dispatchUC) releaseDriver(ctx context.Context, tx dispatch.DispatchTx, d *models.Driver, bookingID uuid.UUID) error {
	if d.Status == models.DriverStatusBusy {
		if err := tx.UpdateDriverStatus(ctx, d.ID, models.DriverStatusAvailable); err != nil {
			return err
		}
		d.Status = models.DriverStatusAvailable
	}

	conv, err := tx.GetConversationForUpdate(ctx, d.Phone)
	if err != nil {
		return err
	}
	if conv != nil && sameBooking(conv.CurrentBookingID, &bookingID) {
		conv.Reset()
		return tx.UpsertConversation(ctx, conv)
	}
	return nil
}

// awaitAccept points the driver's conversation at b, waiting for an accept or decline
func (uc *dispatchUC) awaitAccept(conv *models.Conversation, d *models.Driver, b *models.Booking, now time.Time) *models.Conversation {
	if conv == nil {
		conv = &models.Conversation{Phone: d.Phone}
	}
	bookingID := b.ID
	conv.OrgID = d.OrgID
	conv.DriverID = d.ID
	conv.State = models.ConversationAwaitingAccept
	conv.CurrentBookingID = &bookingID
	conv.Touch(now, uc.sessionTTL())
	return conv
}

func clearDriverFlags(b *models.Booking) {
	b.DriverNotified = false
	b.DriverAccepted = false
	b.DriverAcceptedAt = nil
	b.CustomerNotified = false
}

func sameBooking(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
