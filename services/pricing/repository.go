package pricing

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// RateRepo loads organization tariffs
//
//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/piresc/chauffeur/services/pricing RateRepo
type RateRepo interface {
	// GetRateConfig returns nil without error when the organization has no pricing configured
	GetRateConfig(ctx context.Context, orgID uuid.UUID) (*models.RateConfig, error)
}
