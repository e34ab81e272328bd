package usecase

import (
	"math"
	"testing"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRateConfig() *models.RateConfig {
	return &models.RateConfig{
		OrgID:        uuid.MustParse("6f1c3f5e-7f0e-4c3b-9f55-1a2b3c4d5e6f"),
		Currency:     "GBP",
		DistanceUnit: models.DistanceUnitMiles,
		Vehicles: map[string]models.VehicleRate{
			"Business Class": {VehicleClass: "Business Class", BasePrice: 50, PricePerUnit: 3.5, Enabled: true},
			"First Class":    {VehicleClass: "First Class", BasePrice: 80, PricePerUnit: 4.25, Enabled: true},
			"Van":            {VehicleClass: "Van", BasePrice: 60, PricePerUnit: 3, Enabled: false},
			"Odd":            {VehicleClass: "Odd", BasePrice: 10.005, PricePerUnit: 0.333, Enabled: true},
		},
	}
}

func TestCalculate(t *testing.T) {
	tests := []struct {
		name          string
		vehicleClass  string
		distance      float64
		wantBase      int64
		wantDistance  int64
		wantTotal     int64
		wantDisplay   string
		expectedError error
	}{
		{
			name:         "Business class 20 miles",
			vehicleClass: "Business Class",
			distance:     20,
			wantBase:     5000,
			wantDistance: 7000,
			wantTotal:    12000,
			wantDisplay:  "£120.00",
		},
		{
			name:         "Class lookup is case insensitive",
			vehicleClass: "business class",
			distance:     20,
			wantBase:     5000,
			wantDistance: 7000,
			wantTotal:    12000,
			wantDisplay:  "£120.00",
		},
		{
			name:         "Zero distance is base only",
			vehicleClass: "First Class",
			distance:     0,
			wantBase:     8000,
			wantDistance: 0,
			wantTotal:    8000,
			wantDisplay:  "£80.00",
		},
		{
			name:         "Components round half up independently",
			vehicleClass: "Odd",
			distance:     1.5,
			wantBase:     1001,
			wantDistance: 50,
			wantTotal:    1051,
			wantDisplay:  "£10.51",
		},
		{
			name:          "Disabled class",
			vehicleClass:  "Van",
			distance:      10,
			expectedError: apperror.ErrVehicleUnavailable,
		},
		{
			name:          "Unknown class",
			vehicleClass:  "Helicopter",
			distance:      10,
			expectedError: apperror.ErrVehicleUnavailable,
		},
		{
			name:          "Negative distance",
			vehicleClass:  "Business Class",
			distance:      -1,
			expectedError: apperror.ErrInvalidDistance,
		},
		{
			name:          "NaN distance",
			vehicleClass:  "Business Class",
			distance:      math.NaN(),
			expectedError: apperror.ErrInvalidDistance,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Calculate(testRateConfig(), tt.vehicleClass, tt.distance)

			if tt.expectedError != nil {
				assert.ErrorIs(t, err, tt.expectedError)
				assert.Nil(t, result)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.wantBase, result.BasePrice)
			assert.Equal(t, tt.wantDistance, result.DistancePrice)
			assert.Equal(t, tt.wantTotal, result.Total)
			assert.Equal(t, result.BasePrice+result.DistancePrice, result.Total)
			assert.Equal(t, "GBP", result.Currency)
			assert.Equal(t, models.DistanceUnitMiles, result.DistanceUnit)
			assert.Equal(t, tt.wantDisplay, result.DisplayTotal)
		})
	}
}

func TestCalculate_NoConfig(t *testing.T) {
	result, err := Calculate(nil, "Business Class", 20)

	assert.ErrorIs(t, err, apperror.ErrOrgNotConfigured)
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	assert.Nil(t, result)
}

func TestCalculate_Deterministic(t *testing.T) {
	first, err := Calculate(testRateConfig(), "First Class", 13.7)
	require.NoError(t, err)

	for i := 0; i < 10; i++ {
		again, err := Calculate(testRateConfig(), "First Class", 13.7)
		require.NoError(t, err)
		assert.Equal(t, first, again)
	}
}
