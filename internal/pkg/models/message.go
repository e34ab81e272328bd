package models

import (
	"time"

	"github.com/google/uuid"
)

// MessageType tags outbound and inbound messages for the message log
type MessageType string

const (
	MessageTypeJobOffer          MessageType = "job_offer"
	MessageTypeJobConfirmed      MessageType = "job_confirmed"
	MessageTypeJobDeclined       MessageType = "job_declined"
	MessageTypeJobStarted        MessageType = "job_started"
	MessageTypeJobCompleted      MessageType = "job_completed"
	MessageTypeJobCancelled      MessageType = "job_cancelled"
	MessageTypeReprompt          MessageType = "reprompt"
	MessageTypeNoActiveJob       MessageType = "no_active_job"
	MessageTypeCustomerAssigned  MessageType = "customer_driver_assigned"
	MessageTypeCustomerStarted   MessageType = "customer_journey_started"
	MessageTypeCustomerCompleted MessageType = "customer_journey_completed"
	MessageTypeDriverReply       MessageType = "driver_reply"
)

// MessageDirection is inbound or outbound
type MessageDirection string

const (
	DirectionInbound  MessageDirection = "inbound"
	DirectionOutbound MessageDirection = "outbound"
)

// MessageStatus of a logged message
type MessageStatus string

const (
	MessageReceived MessageStatus = "received"
	MessageSent     MessageStatus = "sent"
	MessageFailed   MessageStatus = "failed"
)

// MessageMeta correlates a message with the org, booking and driver it concerns
type MessageMeta struct {
	OrgID       uuid.UUID
	BookingID   *uuid.UUID
	DriverID    *uuid.UUID
	MessageType MessageType
}

// SendResult is the outcome of an outbound message
type SendResult struct {
	Success           bool   `json:"success"`
	ProviderMessageID string `json:"provider_message_id,omitempty"`
}

// WhatsAppMessage is a message log row
type WhatsAppMessage struct {
	ID                uuid.UUID        `json:"id" db:"id"`
	OrgID             uuid.UUID        `json:"org_id" db:"org_id"`
	BookingID         *uuid.UUID       `json:"booking_id,omitempty" db:"booking_id"`
	DriverID          *uuid.UUID       `json:"driver_id,omitempty" db:"driver_id"`
	Direction         MessageDirection `json:"direction" db:"direction"`
	Phone             string           `json:"phone" db:"phone"`
	Body              string           `json:"body" db:"body"`
	MessageType       MessageType      `json:"message_type" db:"message_type"`
	ProviderMessageID *string          `json:"provider_message_id,omitempty" db:"provider_message_id"`
	Status            MessageStatus    `json:"status" db:"status"`
	Error             *string          `json:"error,omitempty" db:"error"`
	CreatedAt         time.Time        `json:"created_at" db:"created_at"`
}
