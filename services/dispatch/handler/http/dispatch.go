package http

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/middleware"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/dispatch"
)

// DispatchHandler serves the dispatcher actions on a booking
type DispatchHandler struct {
	dispatchUC dispatch.DispatchUC
}

// NewDispatchHandler creates a new dispatch handler
func NewDispatchHandler(dispatchUC dispatch.DispatchUC) *DispatchHandler {
	return &DispatchHandler{dispatchUC: dispatchUC}
}

// AssignRequest names the driver to offer a booking to
type AssignRequest struct {
	DriverID string `json:"driver_id"`
}

// RegisterRoutes mounts the dispatch actions on the authenticated api group
func (h *DispatchHandler) RegisterRoutes(api *echo.Group) {
	write := middleware.RequireRole(models.RoleDispatcher, models.RoleAdmin)

	g := api.Group("/bookings")
	g.POST("/:id/assign", h.AssignDriver, write)
	g.POST("/:id/cancel", h.CancelBooking, write)
	g.POST("/:id/resend", h.ResendJob, write)
}

// AssignDriver handles POST /bookings/:id/assign
func (h *DispatchHandler) AssignDriver(c echo.Context) error {
	caller, bookingID, ok := h.target(c)
	if !ok {
		return nil
	}

	var req AssignRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}
	driverID, err := uuid.Parse(req.DriverID)
	if err != nil {
		return utils.BadRequestResponse(c, "Invalid driver_id")
	}
	middleware.AddAttribute(c, "driver.id", driverID.String())

	booking, err := h.dispatchUC.AssignDriver(c.Request().Context(), caller.OrgID, bookingID, driverID)
	if err != nil {
		return h.fail(c, "Failed to assign driver", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Driver assigned", booking)
}

// CancelBooking handles POST /bookings/:id/cancel
func (h *DispatchHandler) CancelBooking(c echo.Context) error {
	caller, bookingID, ok := h.target(c)
	if !ok {
		return nil
	}

	booking, err := h.dispatchUC.CancelBooking(c.Request().Context(), caller.OrgID, bookingID)
	if err != nil {
		return h.fail(c, "Failed to cancel booking", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking cancelled", booking)
}

// ResendJob handles POST /bookings/:id/resend
func (h *DispatchHandler) ResendJob(c echo.Context) error {
	caller, bookingID, ok := h.target(c)
	if !ok {
		return nil
	}

	booking, err := h.dispatchUC.ResendJob(c.Request().Context(), caller.OrgID, bookingID)
	if err != nil {
		return h.fail(c, "Failed to resend job", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Job resent", booking)
}

// target resolves the caller and the booking id. When ok is false the error response
// has already been written.
func (h *DispatchHandler) target(c echo.Context) (caller models.Caller, bookingID uuid.UUID, ok bool) {
	caller, ok = middleware.CallerFrom(c)
	if !ok {
		utils.UnauthorizedResponse(c, "")
		return caller, uuid.Nil, false
	}
	bookingID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		utils.AppErrorResponse(c, err)
		return caller, uuid.Nil, false
	}
	middleware.SetBookingID(c, bookingID.String())
	return caller, bookingID, true
}

func (h *DispatchHandler) fail(c echo.Context, msg string, err error) error {
	if apperror.HTTPStatus(err) == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
	}
	return utils.AppErrorResponse(c, err)
}
