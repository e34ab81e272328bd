package models

import (
	"time"

	"github.com/google/uuid"
)

// ConversationState is where a driver is in the WhatsApp job flow
type ConversationState string

const (
	ConversationIdle           ConversationState = "IDLE"
	ConversationAwaitingAccept ConversationState = "AWAITING_ACCEPT"
	ConversationAwaitingStart  ConversationState = "AWAITING_START"
	ConversationInProgress     ConversationState = "IN_PROGRESS"
)

// Conversation is the per-phone WhatsApp session of a driver
type Conversation struct {
	Phone            string            `json:"phone" db:"phone"`
	OrgID            uuid.UUID         `json:"org_id" db:"org_id"`
	DriverID         uuid.UUID         `json:"driver_id" db:"driver_id"`
	State            ConversationState `json:"state" db:"state"`
	CurrentBookingID *uuid.UUID        `json:"current_booking_id,omitempty" db:"current_booking_id"`
	LastMessageAt    time.Time         `json:"last_message_at" db:"last_message_at"`
	ExpiresAt        time.Time         `json:"expires_at" db:"expires_at"`
}

// Expired reports whether the session TTL has passed at now
func (c *Conversation) Expired(now time.Time) bool {
	return !c.ExpiresAt.After(now)
}

// EffectiveState is the state to act on at now; an expired session is IDLE
func (c *Conversation) EffectiveState(now time.Time) ConversationState {
	if c == nil || c.Expired(now) {
		return ConversationIdle
	}
	return c.State
}

// Live reports whether the session is mid-job at now
func (c *Conversation) Live(now time.Time) bool {
	return c.EffectiveState(now) != ConversationIdle
}

// Touch records activity and extends the session by ttl
func (c *Conversation) Touch(now time.Time, ttl time.Duration) {
	c.LastMessageAt = now
	c.ExpiresAt = now.Add(ttl)
}

// Reset returns the session to IDLE with no booking in flight
func (c *Conversation) Reset() {
	c.State = ConversationIdle
	c.CurrentBookingID = nil
}

// InboundMessage is a driver reply delivered by the messaging webhook
type InboundMessage struct {
	From       string `json:"from" form:"From"`
	Body       string `json:"body" form:"Body"`
	MessageSid string `json:"message_sid" form:"MessageSid"`
}

// MessageOutcome classifies what handling an inbound message did
type MessageOutcome string

const (
	OutcomeTransitioned  MessageOutcome = "transitioned"
	OutcomeReprompted    MessageOutcome = "reprompted"
	OutcomeNoActiveJob   MessageOutcome = "no_active_job"
	OutcomeUnknownSender MessageOutcome = "unknown_sender"
	OutcomeDuplicate     MessageOutcome = "duplicate"
)

// DriverMessageResult reports the effect of one inbound driver message
type DriverMessageResult struct {
	Outcome   MessageOutcome    `json:"outcome"`
	Intent    string            `json:"intent"`
	From      ConversationState `json:"from_state"`
	To        ConversationState `json:"to_state"`
	BookingID *uuid.UUID        `json:"booking_id,omitempty"`
	Reply     string            `json:"reply,omitempty"`
}
