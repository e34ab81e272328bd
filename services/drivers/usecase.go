package drivers

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// DriverUC is the driver registry
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/chauffeur/services/drivers DriverUC
type DriverUC interface {
	CreateDriver(ctx context.Context, orgID uuid.UUID, req *models.DriverRequest) (*models.Driver, error)
	GetDriver(ctx context.Context, orgID, driverID uuid.UUID) (*models.Driver, error)
	ListDrivers(ctx context.Context, orgID uuid.UUID, status string) ([]*models.Driver, error)
	UpdateDriver(ctx context.Context, orgID, driverID uuid.UUID, req *models.DriverRequest) (*models.Driver, error)
	DeleteDriver(ctx context.Context, orgID, driverID uuid.UUID) error
	SetStatus(ctx context.Context, orgID, driverID uuid.UUID, status models.DriverStatus) (*models.Driver, error)
}
