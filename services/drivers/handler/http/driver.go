package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/middleware"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/drivers"
)

// DriverHandler handles driver registry requests
type DriverHandler struct {
	driverUC drivers.DriverUC
}

// NewDriverHandler creates a new driver handler
func NewDriverHandler(driverUC drivers.DriverUC) *DriverHandler {
	return &DriverHandler{driverUC: driverUC}
}

// RegisterRoutes mounts the driver routes on the authenticated group
func (h *DriverHandler) RegisterRoutes(api *echo.Group) {
	g := api.Group("/drivers")
	write := middleware.RequireRole(models.RoleDispatcher, models.RoleAdmin)

	g.GET("", h.ListDrivers)
	g.GET("/:id", h.GetDriver)
	g.POST("", h.CreateDriver, write)
	g.PUT("/:id", h.UpdateDriver, write)
	g.DELETE("/:id", h.DeleteDriver, write)
	g.PUT("/:id/status", h.SetStatus, write)
}

// CreateDriver handles POST /drivers
func (h *DriverHandler) CreateDriver(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.DriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	driver, err := h.driverUC.CreateDriver(c.Request().Context(), caller.OrgID, &req)
	if err != nil {
		return h.fail(c, "Failed to create driver", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Driver created", driver)
}

// GetDriver handles GET /drivers/:id
func (h *DriverHandler) GetDriver(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	driverID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	driver, err := h.driverUC.GetDriver(c.Request().Context(), caller.OrgID, driverID)
	if err != nil {
		return h.fail(c, "Failed to get driver", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver retrieved", driver)
}

// ListDrivers handles GET /drivers?status=
func (h *DriverHandler) ListDrivers(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	list, err := h.driverUC.ListDrivers(c.Request().Context(), caller.OrgID, c.QueryParam("status"))
	if err != nil {
		return h.fail(c, "Failed to list drivers", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Drivers retrieved", list)
}

// UpdateDriver handles PUT /drivers/:id
func (h *DriverHandler) UpdateDriver(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	driverID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.DriverRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	driver, err := h.driverUC.UpdateDriver(c.Request().Context(), caller.OrgID, driverID, &req)
	if err != nil {
		return h.fail(c, "Failed to update driver", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver updated", driver)
}

// DeleteDriver handles DELETE /drivers/:id
func (h *DriverHandler) DeleteDriver(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	driverID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	if err := h.driverUC.DeleteDriver(c.Request().Context(), caller.OrgID, driverID); err != nil {
		return h.fail(c, "Failed to delete driver", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver deleted", nil)
}

// SetStatus handles PUT /drivers/:id/status
func (h *DriverHandler) SetStatus(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	driverID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.DriverStatusRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	driver, err := h.driverUC.SetStatus(c.Request().Context(), caller.OrgID, driverID, req.Status)
	if err != nil {
		return h.fail(c, "Failed to set driver status", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver status updated", driver)
}

func (h *DriverHandler) fail(c echo.Context, msg string, err error) error {
	if apperror.HTTPStatus(err) == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
	}
	return utils.AppErrorResponse(c, err)
}
