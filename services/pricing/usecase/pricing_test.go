package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/metrics"
	"github.com/piresc/chauffeur/services/pricing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePrice(t *testing.T) {
	cfg := testRateConfig()

	tests := []struct {
		name        string
		clientPrice int64
		tolerance   int64
		wantValid   bool
	}{
		{name: "Exact price", clientPrice: 12000, tolerance: 100, wantValid: true},
		{name: "Within one major unit", clientPrice: 11950, tolerance: 100, wantValid: true},
		{name: "Boundary is inclusive", clientPrice: 11900, tolerance: 100, wantValid: true},
		{name: "Over-quote within tolerance", clientPrice: 12100, tolerance: 100, wantValid: true},
		{name: "Under-paying client rejected", clientPrice: 11000, tolerance: 100, wantValid: false},
		{name: "Zero tolerance uses default", clientPrice: 11950, tolerance: 0, wantValid: true},
		{name: "Negative tolerance uses default", clientPrice: 11850, tolerance: -5, wantValid: false},
		{name: "Tighter tolerance", clientPrice: 11950, tolerance: 10, wantValid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockRepo := mocks.NewMockRateRepo(ctrl)
			mockRepo.EXPECT().GetRateConfig(gomock.Any(), cfg.OrgID).Return(cfg, nil)

			uc := NewPricingUC(mockRepo, metrics.NewMetrics("test"))

			result, err := uc.ValidatePrice(context.Background(), cfg.OrgID, "Business Class", 20, tt.clientPrice, tt.tolerance)

			require.NoError(t, err)
			assert.Equal(t, tt.wantValid, result.Valid)
			assert.Equal(t, int64(12000), result.ServerPrice)
			assert.Equal(t, "GBP", result.Currency)
			if !tt.wantValid {
				assert.NotEmpty(t, result.Reason)
			}
		})
	}
}

func TestValidatePrice_Errors(t *testing.T) {
	cfg := testRateConfig()

	t.Run("Organization not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockRateRepo(ctrl)
		mockRepo.EXPECT().GetRateConfig(gomock.Any(), cfg.OrgID).Return(nil, nil)

		_, err := NewPricingUC(mockRepo, nil).ValidatePrice(context.Background(), cfg.OrgID, "Business Class", 20, 12000, 100)
		assert.ErrorIs(t, err, apperror.ErrOrgNotConfigured)
	})

	t.Run("Repository failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockRateRepo(ctrl)
		mockRepo.EXPECT().GetRateConfig(gomock.Any(), cfg.OrgID).Return(nil, errors.New("connection reset"))

		_, err := NewPricingUC(mockRepo, nil).ValidatePrice(context.Background(), cfg.OrgID, "Business Class", 20, 12000, 100)
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load rate config")
	})

	t.Run("Vehicle unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		mockRepo := mocks.NewMockRateRepo(ctrl)
		mockRepo.EXPECT().GetRateConfig(gomock.Any(), cfg.OrgID).Return(cfg, nil)

		_, err := NewPricingUC(mockRepo, nil).ValidatePrice(context.Background(), cfg.OrgID, "Van", 20, 12000, 100)
		assert.ErrorIs(t, err, apperror.ErrVehicleUnavailable)
	})
}

func TestQuoteAll(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	cfg := testRateConfig()
	mockRepo := mocks.NewMockRateRepo(ctrl)
	mockRepo.EXPECT().GetRateConfig(gomock.Any(), cfg.OrgID).Return(cfg, nil)

	quotes, err := NewPricingUC(mockRepo, nil).QuoteAll(context.Background(), cfg.OrgID, 10)

	require.NoError(t, err)
	require.Len(t, quotes, 3, "disabled classes are skipped")
	for i := 1; i < len(quotes); i++ {
		assert.LessOrEqual(t, quotes[i-1].Total, quotes[i].Total)
	}
}

func TestQuoteAll_NotConfigured(t *testing.T) {
	ctrl := gomock.NewController(t)
	mockRepo := mocks.NewMockRateRepo(ctrl)
	mockRepo.EXPECT().GetRateConfig(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := NewPricingUC(mockRepo, nil).QuoteAll(context.Background(), testRateConfig().OrgID, 10)
	assert.ErrorIs(t, err, apperror.ErrOrgNotConfigured)
}
