package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/database"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRateRepoTest(t *testing.T) (*RateRepo, sqlmock.Sqlmock, *miniredis.Miniredis) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	mr := miniredis.RunT(t)
	redisClient := &database.RedisClient{Client: redis.NewClient(&redis.Options{Addr: mr.Addr()})}
	t.Cleanup(func() { redisClient.Close() })

	cfg := &models.Config{Pricing: models.PricingConfig{CacheTTL: 5 * time.Minute}}
	return NewRateRepository(cfg, sqlx.NewDb(db, "sqlmock"), redisClient), mock, mr
}

func expectRateQueries(mock sqlmock.Sqlmock, orgID uuid.UUID) {
	mock.ExpectQuery("^SELECT org_id, currency, distance_unit FROM org_pricing").
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"org_id", "currency", "distance_unit"}).
			AddRow(orgID.String(), "GBP", "mi"))
	mock.ExpectQuery("^SELECT vehicle_class, base_price, price_per_unit, enabled").
		WithArgs(orgID).
		WillReturnRows(sqlmock.NewRows([]string{"vehicle_class", "base_price", "price_per_unit", "enabled"}).
			AddRow("Business Class", 50.0, 3.5, true).
			AddRow("Van", 60.0, 3.0, false))
}

func TestGetRateConfig(t *testing.T) {
	repo, mock, mr := setupRateRepoTest(t)
	orgID := uuid.New()
	expectRateQueries(mock, orgID)

	cfg, err := repo.GetRateConfig(context.Background(), orgID)

	require.NoError(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, orgID, cfg.OrgID)
	assert.Equal(t, "GBP", cfg.Currency)
	assert.Equal(t, models.DistanceUnitMiles, cfg.DistanceUnit)
	assert.Len(t, cfg.Vehicles, 2)
	assert.Equal(t, 3.5, cfg.Vehicles["Business Class"].PricePerUnit)
	assert.False(t, cfg.Vehicles["Van"].Enabled)
	assert.NoError(t, mock.ExpectationsWereMet())

	assert.True(t, mr.Exists(fmt.Sprintf(constants.KeyOrgPricing, orgID)))

	// second read is served from the cache without touching the database
	cached, err := repo.GetRateConfig(context.Background(), orgID)
	require.NoError(t, err)
	assert.Equal(t, cfg, cached)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRateConfig_InvalidateReloads(t *testing.T) {
	repo, mock, _ := setupRateRepoTest(t)
	orgID := uuid.New()
	expectRateQueries(mock, orgID)
	expectRateQueries(mock, orgID)

	_, err := repo.GetRateConfig(context.Background(), orgID)
	require.NoError(t, err)
	require.NoError(t, repo.InvalidateRateConfig(context.Background(), orgID))
	_, err = repo.GetRateConfig(context.Background(), orgID)
	require.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRateConfig_NotConfigured(t *testing.T) {
	repo, mock, mr := setupRateRepoTest(t)
	orgID := uuid.New()

	mock.ExpectQuery("^SELECT org_id, currency, distance_unit FROM org_pricing").
		WithArgs(orgID).
		WillReturnError(sql.ErrNoRows)

	cfg, err := repo.GetRateConfig(context.Background(), orgID)

	assert.NoError(t, err)
	assert.Nil(t, cfg)
	assert.False(t, mr.Exists(fmt.Sprintf(constants.KeyOrgPricing, orgID)))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRateConfig_DatabaseError(t *testing.T) {
	repo, mock, _ := setupRateRepoTest(t)
	orgID := uuid.New()

	mock.ExpectQuery("^SELECT org_id, currency, distance_unit FROM org_pricing").
		WithArgs(orgID).
		WillReturnError(errors.New("database error"))

	cfg, err := repo.GetRateConfig(context.Background(), orgID)

	assert.Error(t, err)
	assert.Nil(t, cfg)
	assert.Contains(t, err.Error(), "failed to get org pricing")
}

func TestGetRateConfig_CorruptCacheFallsBack(t *testing.T) {
	repo, mock, mr := setupRateRepoTest(t)
	orgID := uuid.New()
	require.NoError(t, mr.Set(fmt.Sprintf(constants.KeyOrgPricing, orgID), "{not json"))
	expectRateQueries(mock, orgID)

	cfg, err := repo.GetRateConfig(context.Background(), orgID)

	require.NoError(t, err)
	assert.Equal(t, "GBP", cfg.Currency)
	assert.NoError(t, mock.ExpectationsWereMet())
}
