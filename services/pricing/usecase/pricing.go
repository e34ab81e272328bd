package usecase

import (
	"context"
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/metrics"
	"github.com/piresc/chauffeur/internal/pkg/models"
	nrpkg "github.com/piresc/chauffeur/internal/pkg/newrelic"
	"github.com/piresc/chauffeur/services/pricing"
)

// DefaultTolerance is one major currency unit
const DefaultTolerance int64 = 100

type pricingUC struct {
	rateRepo pricing.RateRepo
	metrics  *metrics.Metrics
}

// NewPricingUC creates a new pricing use case
func NewPricingUC(rateRepo pricing.RateRepo, m *metrics.Metrics) pricing.PricingUC {
	return &pricingUC{
		rateRepo: rateRepo,
		metrics:  m,
	}
}

func (uc *pricingUC) loadConfig(ctx context.Context, orgID uuid.UUID) (*models.RateConfig, error) {
	cfg, err := uc.rateRepo.GetRateConfig(ctx, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to load rate config: %w", err)
	}
	return cfg, nil
}

// Quote prices one vehicle class for the organization
func (uc *pricingUC) Quote(ctx context.Context, orgID uuid.UUID, vehicleClass string, distance float64) (*models.PriceBreakdown, error) {
	return nrpkg.WithSegmentValue(ctx, "Pricing.Quote", func() (*models.PriceBreakdown, error) {
		cfg, err := uc.loadConfig(ctx, orgID)
		if err != nil {
			return nil, err
		}
		return Calculate(cfg, vehicleClass, distance)
	})
}

// QuoteAll prices every enabled vehicle class, ordered by total
func (uc *pricingUC) QuoteAll(ctx context.Context, orgID uuid.UUID, distance float64) ([]models.PriceBreakdown, error) {
	cfg, err := uc.loadConfig(ctx, orgID)
	if err != nil {
		return nil, err
	}
	if cfg == nil {
		return nil, apperror.ErrOrgNotConfigured
	}

	quotes := make([]models.PriceBreakdown, 0, len(cfg.Vehicles))
	for name, rate := range cfg.Vehicles {
		if !rate.Enabled {
			continue
		}
		quote, err := Calculate(cfg, name, distance)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, *quote)
	}

	sort.Slice(quotes, func(i, j int) bool {
		if quotes[i].Total == quotes[j].Total {
			return quotes[i].VehicleClass < quotes[j].VehicleClass
		}
		return quotes[i].Total < quotes[j].Total
	})
	return quotes, nil
}

// ValidatePrice recomputes the price server-side and accepts the client price when it is
// within tolerance. The returned ServerPrice is the only price to persist or charge.
func (uc *pricingUC) ValidatePrice(ctx context.Context, orgID uuid.UUID, vehicleClass string, distance float64, clientPrice, tolerance int64) (*models.PriceValidation, error) {
	if tolerance <= 0 {
		tolerance = DefaultTolerance
	}

	quote, err := uc.Quote(ctx, orgID, vehicleClass, distance)
	if err != nil {
		return nil, err
	}

	diff := quote.Total - clientPrice
	if diff < 0 {
		diff = -diff
	}

	result := &models.PriceValidation{
		Valid:       diff <= tolerance,
		ServerPrice: quote.Total,
		Currency:    quote.Currency,
	}
	if !result.Valid {
		result.Reason = "client price outside tolerance"
		logger.WarnCtx(ctx, "Client price rejected",
			logger.OrgID(orgID.String()),
			logger.String("vehicle_class", vehicleClass),
			logger.Int64("server_price", quote.Total),
			logger.Int64("client_price", clientPrice),
			logger.Int64("tolerance", tolerance))
	}
	uc.metrics.ObservePriceValidation(result.Valid)

	return result, nil
}
