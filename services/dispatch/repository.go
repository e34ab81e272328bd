package dispatch

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// DispatchRepo runs dispatch transitions against the booking, driver and conversation rows
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/chauffeur/services/dispatch DispatchRepo,DispatchTx
type DispatchRepo interface {
	// RunInTx runs fn in one transaction, committing when fn returns nil
	RunInTx(ctx context.Context, fn func(tx DispatchTx) error) error
	// FindDriverByPhone resolves an inbound sender to a registered driver in any organization
	FindDriverByPhone(ctx context.Context, phone string) (*models.Driver, error)
	// PeekConversation reads a conversation without locking it; nil when there is none
	PeekConversation(ctx context.Context, phone string) (*models.Conversation, error)
	// MarkDriverNotified sets driver_notified while driverID is still attached to the booking
	MarkDriverNotified(ctx context.Context, bookingID, driverID uuid.UUID) error
	MarkCustomerNotified(ctx context.Context, bookingID uuid.UUID) error
}

// DispatchTx is the locked view of one transition. Rows are locked in the order
// booking, driver, conversation.
type DispatchTx interface {
	GetBookingForUpdate(ctx context.Context, orgID, bookingID uuid.UUID) (*models.Booking, error)
	GetDriverForUpdate(ctx context.Context, orgID, driverID uuid.UUID) (*models.Driver, error)
	// GetConversationForUpdate returns nil when the phone has no conversation yet
	GetConversationForUpdate(ctx context.Context, phone string) (*models.Conversation, error)
	CountActiveBookings(ctx context.Context, driverID uuid.UUID) (int, error)
	UpdateBookingState(ctx context.Context, booking *models.Booking) error
	UpdateDriverStatus(ctx context.Context, driverID uuid.UUID, status models.DriverStatus) error
	UpsertConversation(ctx context.Context, conversation *models.Conversation) error
}
