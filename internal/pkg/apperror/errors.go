package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

// Error classes shared by every service. Callers classify with errors.Is.
var (
	ErrNotFound          = errors.New("not found")
	ErrInvalidTransition = errors.New("invalid transition")
	ErrPriceMismatch     = errors.New("price has changed, please refresh and retry")
	ErrProviderError     = errors.New("provider error")
	ErrAlreadyProcessed  = errors.New("already processed")
	ErrValidation        = errors.New("validation failed")
	ErrForbidden         = errors.New("forbidden")
)

// Refinements of the classes above
var (
	ErrBookingNotFound     = fmt.Errorf("booking %w", ErrNotFound)
	ErrDriverNotFound      = fmt.Errorf("driver %w", ErrNotFound)
	ErrPaymentNotFound     = fmt.Errorf("payment %w", ErrNotFound)
	ErrOrgNotConfigured    = fmt.Errorf("organization pricing %w", ErrNotFound)
	ErrUnknownSender       = fmt.Errorf("sender %w", ErrNotFound)
	ErrAlreadyAssigned     = fmt.Errorf("booking is not pending: %w", ErrInvalidTransition)
	ErrDriverUnavailable   = fmt.Errorf("driver is not available: %w", ErrInvalidTransition)
	ErrBookingClosed       = fmt.Errorf("booking is cancelled or completed: %w", ErrInvalidTransition)
	ErrVehicleUnavailable  = fmt.Errorf("vehicle class unavailable: %w", ErrValidation)
	ErrInvalidDistance     = fmt.Errorf("distance must be a non-negative number: %w", ErrValidation)
	ErrInvalidRefundAmount = fmt.Errorf("refund amount must be positive: %w", ErrValidation)
	ErrNothingToRefund     = fmt.Errorf("booking has no refundable payment: %w", ErrInvalidTransition)
	ErrInvalidSignature    = fmt.Errorf("invalid webhook signature: %w", ErrForbidden)
	ErrDuplicatePhone      = fmt.Errorf("phone number already registered: %w", ErrValidation)
	ErrDriverBusy          = fmt.Errorf("driver is on a job: %w", ErrInvalidTransition)
	ErrJourneyInProgress   = fmt.Errorf("journey already started: %w", ErrInvalidTransition)
	ErrJobAccepted         = fmt.Errorf("driver has already accepted the job: %w", ErrInvalidTransition)
	ErrAlreadyPaid         = fmt.Errorf("booking is already paid: %w", ErrInvalidTransition)
)

// Validation wraps a field-level message as ErrValidation
func Validation(format string, args ...interface{}) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrValidation)
}

// Provider wraps an outbound call failure as ErrProviderError
func Provider(provider string, err error) error {
	return fmt.Errorf("%s: %w: %v", provider, ErrProviderError, err)
}

// HTTPStatus maps an error to the status code returned to the caller
func HTTPStatus(err error) int {
	switch {
	case err == nil, errors.Is(err, ErrAlreadyProcessed):
		return http.StatusOK
	case errors.Is(err, ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, ErrInvalidTransition):
		return http.StatusConflict
	case errors.Is(err, ErrPriceMismatch):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, ErrProviderError):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// PublicMessage is the text safe to return to a caller. Internal failures are not described.
func PublicMessage(err error) string {
	switch {
	case errors.Is(err, ErrPriceMismatch):
		return ErrPriceMismatch.Error()
	case errors.Is(err, ErrProviderError):
		return "upstream provider unavailable, please retry"
	case HTTPStatus(err) == http.StatusInternalServerError:
		return "internal server error"
	default:
		return err.Error()
	}
}
