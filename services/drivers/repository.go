package drivers

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// DriverRepo defines driver data access. Every lookup is scoped to an organization
// and ignores soft-deleted drivers.
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/chauffeur/services/drivers DriverRepo
type DriverRepo interface {
	CreateDriver(ctx context.Context, driver *models.Driver) error
	GetDriver(ctx context.Context, orgID, driverID uuid.UUID) (*models.Driver, error)
	ListDrivers(ctx context.Context, orgID uuid.UUID, status *models.DriverStatus) ([]*models.Driver, error)
	UpdateDriver(ctx context.Context, driver *models.Driver) error
	// SetIdleStatus changes the status of a driver that is not BUSY. It reports false when
	// the driver was BUSY at the time of the write.
	SetIdleStatus(ctx context.Context, orgID, driverID uuid.UUID, status models.DriverStatus) (bool, error)
	// SoftDeleteDriver deletes a driver that is not BUSY, reporting false when it was BUSY
	SoftDeleteDriver(ctx context.Context, orgID, driverID uuid.UUID) (bool, error)
}
