package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/database"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// RateRepo reads organization tariffs from Postgres behind a Redis cache
type RateRepo struct {
	db       *sqlx.DB
	redis    *database.RedisClient
	cacheTTL time.Duration
}

// NewRateRepository creates a new rate repository. A nil redis client disables caching.
func NewRateRepository(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *RateRepo {
	return &RateRepo{
		db:       db,
		redis:    redisClient,
		cacheTTL: cfg.Pricing.CacheTTL,
	}
}

// GetRateConfig returns the tariff of an organization, or nil when none is configured
func (r *RateRepo) GetRateConfig(ctx context.Context, orgID uuid.UUID) (*models.RateConfig, error) {
	key := fmt.Sprintf(constants.KeyOrgPricing, orgID)

	if cfg := r.fromCache(ctx, key); cfg != nil {
		return cfg, nil
	}

	cfg := &models.RateConfig{}
	err := r.db.GetContext(ctx, cfg,
		`SELECT org_id, currency, distance_unit FROM org_pricing WHERE org_id = $1`, orgID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get org pricing: %w", err)
	}

	var rates []models.VehicleRate
	err = r.db.SelectContext(ctx, &rates,
		`SELECT vehicle_class, base_price, price_per_unit, enabled
		FROM org_vehicle_rates WHERE org_id = $1 ORDER BY vehicle_class`, orgID)
	if err != nil {
		return nil, fmt.Errorf("failed to get vehicle rates: %w", err)
	}

	cfg.Vehicles = make(map[string]models.VehicleRate, len(rates))
	for _, rate := range rates {
		cfg.Vehicles[rate.VehicleClass] = rate
	}

	r.toCache(ctx, key, cfg)
	return cfg, nil
}

// InvalidateRateConfig drops the cached tariff of an organization
func (r *RateRepo) InvalidateRateConfig(ctx context.Context, orgID uuid.UUID) error {
	if r.redis == nil {
		return nil
	}
	return r.redis.Delete(ctx, fmt.Sprintf(constants.KeyOrgPricing, orgID))
}

func (r *RateRepo) fromCache(ctx context.Context, key string) *models.RateConfig {
	if r.redis == nil {
		return nil
	}

	raw, err := r.redis.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, redis.Nil) {
			logger.WarnCtx(ctx, "Pricing cache read failed", logger.String("key", key), logger.Err(err))
		}
		return nil
	}

	var cfg models.RateConfig
	if err := json.Unmarshal([]byte(raw), &cfg); err != nil {
		logger.WarnCtx(ctx, "Discarding corrupt pricing cache entry", logger.String("key", key), logger.Err(err))
		return nil
	}
	return &cfg
}

func (r *RateRepo) toCache(ctx context.Context, key string, cfg *models.RateConfig) {
	if r.redis == nil || r.cacheTTL <= 0 {
		return
	}

	data, err := json.Marshal(cfg)
	if err != nil {
		return
	}
	if err := r.redis.Set(ctx, key, data, r.cacheTTL); err != nil {
		logger.WarnCtx(ctx, "Pricing cache write failed", logger.String("key", key), logger.Err(err))
	}
}
