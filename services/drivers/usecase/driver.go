package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/drivers"
)

type driverUC struct {
	cfg        *models.Config
	driverRepo drivers.DriverRepo
	now        func() time.Time
}

// NewDriverUC creates a new driver use case
func NewDriverUC(cfg *models.Config, driverRepo drivers.DriverRepo) drivers.DriverUC {
	return &driverUC{
		cfg:        cfg,
		driverRepo: driverRepo,
		now:        models.Now,
	}
}

// CreateDriver registers an AVAILABLE driver with a normalized phone number
func (uc *driverUC) CreateDriver(ctx context.Context, orgID uuid.UUID, req *models.DriverRequest) (*models.Driver, error) {
	if err := uc.validate(req); err != nil {
		return nil, err
	}
	phone, err := utils.NormalizePhone(req.Phone, uc.cfg.Dispatch.DefaultCountryCode)
	if err != nil {
		return nil, apperror.Validation("%v", err)
	}

	now := uc.now()
	driver := &models.Driver{
		ID:        uuid.New(),
		OrgID:     orgID,
		Phone:     phone,
		Status:    models.DriverStatusAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
	applyDriverRequest(driver, req)

	if err := uc.driverRepo.CreateDriver(ctx, driver); err != nil {
		return nil, err
	}

	logger.InfoCtx(ctx, "Driver created",
		logger.OrgID(orgID.String()),
		logger.DriverID(driver.ID.String()),
		logger.String("phone", utils.MaskPhoneNumber(phone)))
	return driver, nil
}

func (uc *driverUC) GetDriver(ctx context.Context, orgID, driverID uuid.UUID) (*models.Driver, error) {
	return uc.driverRepo.GetDriver(ctx, orgID, driverID)
}

// ListDrivers lists the organization's drivers; an empty status lists all of them
func (uc *driverUC) ListDrivers(ctx context.Context, orgID uuid.UUID, status string) ([]*models.Driver, error) {
	if status == "" {
		return uc.driverRepo.ListDrivers(ctx, orgID, nil)
	}
	s := models.DriverStatus(strings.ToUpper(status))
	if !s.Valid() {
		return nil, apperror.Validation("invalid driver status %q", status)
	}
	return uc.driverRepo.ListDrivers(ctx, orgID, &s)
}

// UpdateDriver replaces the contact and vehicle fields of a driver
func (uc *driverUC) UpdateDriver(ctx context.Context, orgID, driverID uuid.UUID, req *models.DriverRequest) (*models.Driver, error) {
	if err := uc.validate(req); err != nil {
		return nil, err
	}
	phone, err := utils.NormalizePhone(req.Phone, uc.cfg.Dispatch.DefaultCountryCode)
	if err != nil {
		return nil, apperror.Validation("%v", err)
	}

	driver, err := uc.driverRepo.GetDriver(ctx, orgID, driverID)
	if err != nil {
		return nil, err
	}
	// replies are matched to the live conversation by phone
	if driver.Status == models.DriverStatusBusy && driver.Phone != phone {
		return nil, fmt.Errorf("failed to change phone: %w", apperror.ErrDriverBusy)
	}
	applyDriverRequest(driver, req)
	driver.Phone = phone
	driver.UpdatedAt = uc.now()

	if err := uc.driverRepo.UpdateDriver(ctx, driver); err != nil {
		return nil, err
	}
	return driver, nil
}

// DeleteDriver soft-deletes a driver that is not on a job
func (uc *driverUC) DeleteDriver(ctx context.Context, orgID, driverID uuid.UUID) error {
	deleted, err := uc.driverRepo.SoftDeleteDriver(ctx, orgID, driverID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperror.ErrDriverBusy
	}

	logger.InfoCtx(ctx, "Driver deleted",
		logger.OrgID(orgID.String()),
		logger.DriverID(driverID.String()))
	return nil
}

// SetStatus moves a driver between AVAILABLE and OFF_DUTY. BUSY is owned by dispatch.
func (uc *driverUC) SetStatus(ctx context.Context, orgID, driverID uuid.UUID, status models.DriverStatus) (*models.Driver, error) {
	status = models.DriverStatus(strings.ToUpper(string(status)))
	if status != models.DriverStatusAvailable && status != models.DriverStatusOffDuty {
		return nil, apperror.Validation("status must be %s or %s", models.DriverStatusAvailable, models.DriverStatusOffDuty)
	}

	updated, err := uc.driverRepo.SetIdleStatus(ctx, orgID, driverID, status)
	if err != nil {
		return nil, fmt.Errorf("failed to set driver status: %w", err)
	}
	if !updated {
		return nil, apperror.ErrDriverBusy
	}

	logger.InfoCtx(ctx, "Driver status changed",
		logger.OrgID(orgID.String()),
		logger.DriverID(driverID.String()),
		logger.String("status", string(status)))

	return uc.driverRepo.GetDriver(ctx, orgID, driverID)
}

func (uc *driverUC) validate(req *models.DriverRequest) error {
	if req == nil {
		return apperror.Validation("request body is required")
	}
	if strings.TrimSpace(req.Name) == "" {
		return apperror.Validation("name is required")
	}
	if req.Phone == "" {
		return apperror.Validation("phone is required")
	}
	if req.Email != "" && !utils.IsValidEmail(req.Email) {
		return apperror.Validation("invalid email")
	}
	if req.Rating < 0 || req.Rating > 5 {
		return apperror.Validation("rating must be between 0 and 5")
	}
	return nil
}

func applyDriverRequest(driver *models.Driver, req *models.DriverRequest) {
	driver.Name = utils.SanitizeString(req.Name)
	driver.Email = strings.TrimSpace(req.Email)
	driver.VehicleMake = req.VehicleMake
	driver.VehicleModel = req.VehicleModel
	driver.VehiclePlate = strings.ToUpper(strings.TrimSpace(req.VehiclePlate))
	driver.VehicleClass = req.VehicleClass
	driver.Rating = req.Rating
	driver.Location = req.Location
}
