package pricing

import (
	"context"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// PricingUC quotes and validates booking prices
//
//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/piresc/chauffeur/services/pricing PricingUC
type PricingUC interface {
	Quote(ctx context.Context, orgID uuid.UUID, vehicleClass string, distance float64) (*models.PriceBreakdown, error)
	QuoteAll(ctx context.Context, orgID uuid.UUID, distance float64) ([]models.PriceBreakdown, error)
	ValidatePrice(ctx context.Context, orgID uuid.UUID, vehicleClass string, distance float64, clientPrice, tolerance int64) (*models.PriceValidation, error)
}
