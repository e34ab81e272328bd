package constants

// WebSocket event types
const (
	EventError = "error"
	EventPing  = "ping"
	EventPong  = "pong"

	EventBookingUpdate = "booking_update"
	EventPaymentUpdate = "payment_update"
)

// WebSocket error codes
const (
	ErrorInvalidFormat = "invalid_format"
)
