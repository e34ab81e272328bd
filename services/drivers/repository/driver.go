package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/database"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

// DriverColumns is the select list matching models.Driver
const DriverColumns = `id, org_id, name, phone, email, vehicle_make, vehicle_model, vehicle_plate,
	vehicle_class, status, rating, location, created_at, updated_at, deleted_at`

// DriverRepo implements drivers.DriverRepo on Postgres
type DriverRepo struct {
	db *sqlx.DB
}

// NewDriverRepository creates a new driver repository
func NewDriverRepository(db *sqlx.DB) *DriverRepo {
	return &DriverRepo{db: db}
}

// CreateDriver inserts a driver
func (r *DriverRepo) CreateDriver(ctx context.Context, driver *models.Driver) error {
	query := `
		INSERT INTO drivers (
			id, org_id, name, phone, email, vehicle_make, vehicle_model, vehicle_plate,
			vehicle_class, status, rating, location, created_at, updated_at
		) VALUES (
			:id, :org_id, :name, :phone, :email, :vehicle_make, :vehicle_model, :vehicle_plate,
			:vehicle_class, :status, :rating, :location, :created_at, :updated_at
		)`

	if _, err := r.db.NamedExecContext(ctx, query, driver); err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.ErrDuplicatePhone
		}
		return fmt.Errorf("failed to create driver: %w", err)
	}
	return nil
}

// GetDriver retrieves a driver of the organization
func (r *DriverRepo) GetDriver(ctx context.Context, orgID, driverID uuid.UUID) (*models.Driver, error) {
	query := `SELECT ` + DriverColumns + ` FROM drivers
		WHERE id = $1 AND org_id = $2 AND deleted_at IS NULL`

	var driver models.Driver
	if err := r.db.GetContext(ctx, &driver, query, driverID, orgID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, apperror.ErrDriverNotFound
		}
		return nil, fmt.Errorf("failed to get driver: %w", err)
	}
	return &driver, nil
}

// ListDrivers lists the drivers of an organization, optionally by status
func (r *DriverRepo) ListDrivers(ctx context.Context, orgID uuid.UUID, status *models.DriverStatus) ([]*models.Driver, error) {
	query := `SELECT ` + DriverColumns + ` FROM drivers
		WHERE org_id = $1 AND deleted_at IS NULL`
	args := []interface{}{orgID}
	if status != nil {
		query += ` AND status = $2`
		args = append(args, *status)
	}
	query += ` ORDER BY name`

	drivers := []*models.Driver{}
	if err := r.db.SelectContext(ctx, &drivers, query, args...); err != nil {
		return nil, fmt.Errorf("failed to list drivers: %w", err)
	}
	return drivers, nil
}

// UpdateDriver writes contact and vehicle fields. Status is never written here.
// A BUSY driver keeps its phone: the live conversation is keyed on it.
func (r *DriverRepo) UpdateDriver(ctx context.Context, driver *models.Driver) error {
	query := `
		UPDATE drivers SET
			name = :name, phone = :phone, email = :email,
			vehicle_make = :vehicle_make, vehicle_model = :vehicle_model,
			vehicle_plate = :vehicle_plate, vehicle_class = :vehicle_class,
			rating = :rating, location = :location, updated_at = :updated_at
		WHERE id = :id AND org_id = :org_id AND deleted_at IS NULL
			AND (phone = :phone OR status <> 'BUSY')`

	result, err := r.db.NamedExecContext(ctx, query, driver)
	if err != nil {
		if database.IsUniqueViolation(err) {
			return apperror.ErrDuplicatePhone
		}
		return fmt.Errorf("failed to update driver: %w", err)
	}
	if rows, _ := result.RowsAffected(); rows == 0 {
		exists, err := r.driverExists(ctx, driver.ID, driver.OrgID)
		if err != nil {
			return err
		}
		if exists {
			return apperror.ErrDriverBusy
		}
		return apperror.ErrDriverNotFound
	}
	return nil
}

// SetIdleStatus changes the status of a driver that is not BUSY
func (r *DriverRepo) SetIdleStatus(ctx context.Context, orgID, driverID uuid.UUID, status models.DriverStatus) (bool, error) {
	query := `
		UPDATE drivers SET status = $1, updated_at = NOW()
		WHERE id = $2 AND org_id = $3 AND deleted_at IS NULL AND status <> 'BUSY'`

	return r.execGuarded(ctx, "update driver status", query, status, driverID, orgID)
}

// SoftDeleteDriver marks a driver that is not BUSY as deleted
func (r *DriverRepo) SoftDeleteDriver(ctx context.Context, orgID, driverID uuid.UUID) (bool, error) {
	query := `
		UPDATE drivers SET deleted_at = NOW(), status = 'OFF_DUTY', updated_at = NOW()
		WHERE id = $1 AND org_id = $2 AND deleted_at IS NULL AND status <> 'BUSY'`

	return r.execGuarded(ctx, "delete driver", query, driverID, orgID)
}

// execGuarded runs an update guarded on status <> BUSY. When nothing was updated it
// tells a missing driver (ErrDriverNotFound) apart from a BUSY one (false, nil).
func (r *DriverRepo) execGuarded(ctx context.Context, action, query string, args ...interface{}) (bool, error) {
	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to %s: %w", action, err)
	}
	if rows, _ := result.RowsAffected(); rows > 0 {
		return true, nil
	}

	driverID, orgID := args[len(args)-2], args[len(args)-1]
	exists, err := r.driverExists(ctx, driverID, orgID)
	if err != nil {
		return false, fmt.Errorf("failed to %s: %w", action, err)
	}
	if !exists {
		return false, apperror.ErrDriverNotFound
	}
	return false, nil
}

func (r *DriverRepo) driverExists(ctx context.Context, driverID, orgID interface{}) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists,
		`SELECT EXISTS(SELECT 1 FROM drivers WHERE id = $1 AND org_id = $2 AND deleted_at IS NULL)`,
		driverID, orgID)
	if err != nil {
		return false, fmt.Errorf("failed to check driver: %w", err)
	}
	return exists, nil
}
