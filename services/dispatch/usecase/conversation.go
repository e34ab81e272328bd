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
	"github.com/piresc/chauffeur/internal/pkg/models"
	nrpkg "github.com/piresc/chauffeur/internal/pkg/newrelic"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/dispatch"
	"github.com/piresc/chauffeur/services/dispatch/intent"
)

const maxConversationAttempts = 3

// errConversationMoved means the conversation changed booking between the unlocked read
// and the locked one; the reply is processed again from the start
var errConversationMoved = errors.New("conversation moved to another booking")

// HandleDriverMessage applies a driver's WhatsApp reply to their conversation. Unknown
// senders get ErrUnknownSender and change nothing.
func (uc *dispatchUC) HandleDriverMessage(ctx context.Context, msg models.InboundMessage) (*models.DriverMessageResult, error) {
	result := &models.DriverMessageResult{Intent: string(intent.Parse(msg.Body))}

	phone, err := utils.NormalizePhone(msg.From, uc.cfg.Dispatch.DefaultCountryCode)
	if err != nil {
		return uc.unknownSender(ctx, msg.From, result)
	}
	driver, err := uc.repo.FindDriverByPhone(ctx, phone)
	if errors.Is(err, apperror.ErrNotFound) {
		return uc.unknownSender(ctx, phone, result)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to resolve sender: %w", err)
	}

	nrpkg.AddAttribute(ctx, "driver.id", driver.ID.String())
	if err := uc.messagingGW.RecordInbound(ctx, msg, models.MessageMeta{
		OrgID:       driver.OrgID,
		DriverID:    &driver.ID,
		MessageType: models.MessageTypeDriverReply,
	}); err != nil {
		logger.WarnCtx(ctx, "Failed to record inbound message",
			logger.DriverID(driver.ID.String()), logger.Err(err))
	}

	var eff effects
	for attempt := 1; ; attempt++ {
		eff = effects{}
		err = uc.handleReply(ctx, driver, phone, intent.Intent(result.Intent), result, &eff)
		if !errors.Is(err, errConversationMoved) {
			break
		}
		if attempt == maxConversationAttempts {
			return nil, fmt.Errorf("failed to handle driver message: %w", err)
		}
	}
	if err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Driver message handled",
		logger.OrgID(driver.OrgID.String()),
		logger.DriverID(driver.ID.String()),
		logger.String("intent", result.Intent),
		logger.String("outcome", string(result.Outcome)),
		logger.String("from_state", string(result.From)),
		logger.String("to_state", string(result.To)))

	uc.metrics.ObserveDriverMessage(result.Intent, string(result.Outcome))
	uc.apply(ctx, &eff)
	return result, nil
}

func (uc *dispatchUC) unknownSender(ctx context.Context, from string, result *models.DriverMessageResult) (*models.DriverMessageResult, error) {
	logger.WarnCtx(ctx, "Message from unknown sender", logger.String("from", utils.MaskPhoneNumber(from)))
	result.Outcome = models.OutcomeUnknownSender
	uc.metrics.ObserveDriverMessage(result.Intent, string(result.Outcome))
	return result, apperror.ErrUnknownSender
}

// handleReply runs one attempt: the conversation is read unlocked to find its booking so
// that rows can then be locked in booking, driver, conversation order
func (uc *dispatchUC) handleReply(ctx context.Context, driver *models.Driver, phone string, in intent.Intent, result *models.DriverMessageResult, eff *effects) error {
	peek, err := uc.repo.PeekConversation(ctx, phone)
	if err != nil {
		return err
	}
	var expected *uuid.UUID
	if peek.Live(uc.now()) {
		expected = peek.CurrentBookingID
	}

	return uc.repo.RunInTx(ctx, func(tx dispatch.DispatchTx) error {
		now := uc.now()

		var booking *models.Booking
		if expected != nil {
			b, err := tx.GetBookingForUpdate(ctx, driver.OrgID, *expected)
			if err != nil && !errors.Is(err, apperror.ErrNotFound) {
				return err
			}
			booking = b
		}
		d, err := tx.GetDriverForUpdate(ctx, driver.OrgID, driver.ID)
		if err != nil {
			return err
		}
		conv, err := tx.GetConversationForUpdate(ctx, phone)
		if err != nil {
			return err
		}

		state := conv.EffectiveState(now)
		var current *uuid.UUID
		if state != models.ConversationIdle {
			current = conv.CurrentBookingID
		}
		if !sameBooking(current, expected) {
			return errConversationMoved
		}

		if conv == nil {
			conv = &models.Conversation{Phone: phone, State: models.ConversationIdle}
		}
		if state == models.ConversationIdle {
			// an expired session is stored back as IDLE
			conv.Reset()
		} else if !matchesState(booking, d.ID, state) {
			logger.WarnCtx(ctx, "Conversation out of step with booking, resetting",
				logger.DriverID(d.ID.String()),
				logger.String("state", string(state)))
			conv.Reset()
			state = models.ConversationIdle
			booking = nil
		}
		conv.OrgID = d.OrgID
		conv.DriverID = d.ID
		conv.Touch(now, uc.sessionTTL())

		result.From = state
		if state != models.ConversationIdle {
			result.BookingID = &booking.ID
		}

		if err := uc.transition(ctx, tx, state, in, booking, d, conv, result, eff, now); err != nil {
			return err
		}
		result.To = conv.State
		return tx.UpsertConversation(ctx, conv)
	})
}

// transition applies intent in to the conversation in state. The booking is nil when idle.
func (uc *dispatchUC) transition(
	ctx context.Context,
	tx dispatch.DispatchTx,
	state models.ConversationState,
	in intent.Intent,
	b *models.Booking,
	d *models.Driver,
	conv *models.Conversation,
	result *models.DriverMessageResult,
	eff *effects,
	now time.Time,
) error {
	reply := func(body string, messageType models.MessageType) {
		result.Reply = body
		if b == nil {
			eff.messages = append(eff.messages, outbound{
				to:   d.Phone,
				body: body,
				meta: models.MessageMeta{OrgID: d.OrgID, DriverID: &d.ID, MessageType: messageType},
			})
			return
		}
		eff.send(d.Phone, body, messageType, b, &d.ID, markNone)
	}
	toCustomer := func(body string, messageType models.MessageType, mark notifyMark) {
		if b.CustomerPhone != "" {
			eff.send(b.CustomerPhone, body, messageType, b, &d.ID, mark)
		}
	}

	switch {
	case state == models.ConversationIdle:
		result.Outcome = models.OutcomeNoActiveJob
		reply(noActiveJobMessage(), models.MessageTypeNoActiveJob)
		return nil

	case state == models.ConversationAwaitingAccept && in == intent.Accept:
		b.DriverAccepted = true
		b.DriverAcceptedAt = &now
		b.UpdatedAt = now
		if err := tx.UpdateBookingState(ctx, b); err != nil {
			return err
		}
		conv.State = models.ConversationAwaitingStart

		eff.moved(string(models.BookingStatusAssigned), "ACCEPTED")
		reply(jobConfirmedMessage(b), models.MessageTypeJobConfirmed)
		toCustomer(customerAssignedMessage(b, d), models.MessageTypeCustomerAssigned, markCustomer)
		eff.publish(constants.SubjectBookingAccepted, b, &d.ID, now)

	case state == models.ConversationAwaitingAccept && in == intent.Decline:
		b.Status = models.BookingStatusPending
		b.DriverID = nil
		clearDriverFlags(b)
		b.UpdatedAt = now
		if err := tx.UpdateBookingState(ctx, b); err != nil {
			return err
		}
		if err := tx.UpdateDriverStatus(ctx, d.ID, models.DriverStatusAvailable); err != nil {
			return err
		}
		conv.Reset()

		eff.moved(string(models.BookingStatusAssigned), string(models.BookingStatusPending))
		reply(jobDeclinedMessage(), models.MessageTypeJobDeclined)
		eff.publish(constants.SubjectBookingDeclined, b, &d.ID, now)

	case state == models.ConversationAwaitingStart && in == intent.Start:
		b.Status = models.BookingStatusInProgress
		b.UpdatedAt = now
		if err := tx.UpdateBookingState(ctx, b); err != nil {
			return err
		}
		conv.State = models.ConversationInProgress

		eff.moved(string(models.BookingStatusAssigned), string(models.BookingStatusInProgress))
		reply(jobStartedMessage(b), models.MessageTypeJobStarted)
		toCustomer(customerStartedMessage(b, d), models.MessageTypeCustomerStarted, markNone)
		eff.publish(constants.SubjectBookingStarted, b, &d.ID, now)

	case state == models.ConversationInProgress && in == intent.Complete:
		b.Status = models.BookingStatusCompleted
		b.UpdatedAt = now
		if err := tx.UpdateBookingState(ctx, b); err != nil {
			return err
		}
		if err := tx.UpdateDriverStatus(ctx, d.ID, models.DriverStatusAvailable); err != nil {
			return err
		}
		conv.Reset()

		eff.moved(string(models.BookingStatusInProgress), string(models.BookingStatusCompleted))
		reply(jobCompletedMessage(), models.MessageTypeJobCompleted)
		toCustomer(customerCompletedMessage(b), models.MessageTypeCustomerCompleted, markNone)
		eff.publish(constants.SubjectBookingCompleted, b, &d.ID, now)

	default:
		result.Outcome = models.OutcomeReprompted
		reply(repromptMessage(state), models.MessageTypeReprompt)
		return nil
	}

	result.Outcome = models.OutcomeTransitioned
	return nil
}

// matchesState reports whether b is still the job a conversation in state is about
func matchesState(b *models.Booking, driverID uuid.UUID, state models.ConversationState) bool {
	if b == nil || !b.HasDriver(driverID) {
		return false
	}
	switch state {
	case models.ConversationAwaitingAccept:
		return b.Status == models.BookingStatusAssigned && !b.DriverAccepted
	case models.ConversationAwaitingStart:
		return b.Status == models.BookingStatusAssigned && b.DriverAccepted
	case models.ConversationInProgress:
		return b.Status == models.BookingStatusInProgress
	}
	return false
}
