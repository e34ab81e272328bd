package constants

// NATS Subjects
const (
	// Booking lifecycle
	SubjectBookingAssigned  = "booking.assigned"
	SubjectBookingAccepted  = "booking.accepted"
	SubjectBookingDeclined  = "booking.declined"
	SubjectBookingStarted   = "booking.started"
	SubjectBookingCompleted = "booking.completed"
	SubjectBookingCancelled = "booking.cancelled"
	SubjectBookingCreated   = "booking.created"
	SubjectBookingAll       = "booking.>"

	// Payment ledger
	SubjectPaymentSucceeded = "payment.succeeded"
	SubjectPaymentFailed    = "payment.failed"
	SubjectPaymentRefunded  = "payment.refunded"
	SubjectPaymentAll       = "payment.>"
)
