package usecase

import (
	"math"
	"strings"

	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
)

// Calculate prices a trip from an organization tariff. Base and distance components are
// rounded to minor units independently and the total is their sum.
func Calculate(cfg *models.RateConfig, vehicleClass string, distance float64) (*models.PriceBreakdown, error) {
	if cfg == nil {
		return nil, apperror.ErrOrgNotConfigured
	}
	if distance < 0 || math.IsNaN(distance) || math.IsInf(distance, 0) {
		return nil, apperror.ErrInvalidDistance
	}

	rate, ok := lookupRate(cfg, vehicleClass)
	if !ok || !rate.Enabled {
		return nil, apperror.ErrVehicleUnavailable
	}

	base := utils.ToMinorUnits(rate.BasePrice)
	distancePrice := utils.ToMinorUnits(distance * rate.PricePerUnit)
	total := base + distancePrice

	return &models.PriceBreakdown{
		VehicleClass:  rate.VehicleClass,
		Distance:      distance,
		BasePrice:     base,
		DistancePrice: distancePrice,
		Total:         total,
		Currency:      cfg.Currency,
		DistanceUnit:  cfg.DistanceUnit,
		DisplayTotal:  utils.FormatMinor(total, cfg.Currency),
	}, nil
}

func lookupRate(cfg *models.RateConfig, vehicleClass string) (models.VehicleRate, bool) {
	if rate, ok := cfg.Vehicles[vehicleClass]; ok {
		return rate, true
	}
	wanted := strings.TrimSpace(vehicleClass)
	for name, rate := range cfg.Vehicles {
		if strings.EqualFold(name, wanted) {
			return rate, true
		}
	}
	return models.VehicleRate{}, false
}
