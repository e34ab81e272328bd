package http

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/middleware"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/bookings"
)

// BookingHandler handles booking store requests
type BookingHandler struct {
	bookingUC bookings.BookingUC
}

// NewBookingHandler creates a new booking handler
func NewBookingHandler(bookingUC bookings.BookingUC) *BookingHandler {
	return &BookingHandler{bookingUC: bookingUC}
}

// RegisterRoutes mounts the dispatcher routes on api and the widget route on public
func (h *BookingHandler) RegisterRoutes(api, public *echo.Group) {
	write := middleware.RequireRole(models.RoleDispatcher, models.RoleAdmin)

	g := api.Group("/bookings")
	g.POST("", h.CreateBooking, write)
	g.GET("", h.ListBookings)
	g.GET("/:id", h.GetBooking)
	g.PUT("/:id", h.UpdateBooking, write)
	g.GET("/:id/receipt", h.GetReceipt)

	public.POST("/orgs/:org_id/bookings", h.CreatePublicBooking)
}

// CreateBooking handles POST /bookings
func (h *BookingHandler) CreateBooking(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	var req models.CreateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	booking, err := h.bookingUC.CreateBooking(c.Request().Context(), caller.OrgID, &req)
	if err != nil {
		return h.fail(c, "Failed to create booking", err)
	}
	middleware.SetBookingID(c, booking.ID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Booking created", booking)
}

// CreatePublicBooking handles POST /orgs/:org_id/bookings from the booking widget
func (h *BookingHandler) CreatePublicBooking(c echo.Context) error {
	orgID, err := utils.ParseUUIDParam(c, "org_id")
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.PublicBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	booking, err := h.bookingUC.CreatePublicBooking(c.Request().Context(), orgID, &req)
	if err != nil {
		return h.fail(c, "Failed to create public booking", err)
	}
	middleware.SetBookingID(c, booking.ID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Booking received", booking)
}

// GetBooking handles GET /bookings/:id
func (h *BookingHandler) GetBooking(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	bookingID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	booking, err := h.bookingUC.GetBooking(c.Request().Context(), caller.OrgID, bookingID)
	if err != nil {
		return h.fail(c, "Failed to get booking", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking retrieved", booking)
}

// ListBookings handles GET /bookings?status=&driver_id=&from=&to=&limit=&offset=
func (h *BookingHandler) ListBookings(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}

	filter, err := parseFilter(c)
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	list, err := h.bookingUC.ListBookings(c.Request().Context(), caller.OrgID, filter)
	if err != nil {
		return h.fail(c, "Failed to list bookings", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Bookings retrieved", list)
}

// UpdateBooking handles PUT /bookings/:id
func (h *BookingHandler) UpdateBooking(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	bookingID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.UpdateBookingRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	booking, err := h.bookingUC.UpdateBooking(c.Request().Context(), caller.OrgID, bookingID, &req)
	if err != nil {
		return h.fail(c, "Failed to update booking", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Booking updated", booking)
}

// GetReceipt handles GET /bookings/:id/receipt
func (h *BookingHandler) GetReceipt(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	bookingID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	pdf, err := h.bookingUC.Receipt(c.Request().Context(), caller.OrgID, bookingID)
	if err != nil {
		return h.fail(c, "Failed to render receipt", err)
	}

	c.Response().Header().Set(echo.HeaderContentDisposition,
		fmt.Sprintf(`inline; filename="receipt-%s.pdf"`, bookingID))
	return c.Blob(http.StatusOK, "application/pdf", pdf)
}

func (h *BookingHandler) fail(c echo.Context, msg string, err error) error {
	if apperror.HTTPStatus(err) == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
	}
	return utils.AppErrorResponse(c, err)
}

func parseFilter(c echo.Context) (models.BookingFilter, error) {
	var filter models.BookingFilter

	if raw := c.QueryParam("status"); raw != "" {
		for _, s := range strings.Split(raw, ",") {
			filter.Statuses = append(filter.Statuses, models.BookingStatus(strings.ToUpper(strings.TrimSpace(s))))
		}
	}
	if raw := c.QueryParam("driver_id"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return filter, apperror.Validation("invalid driver_id")
		}
		filter.DriverID = &id
	}
	for name, dst := range map[string]**time.Time{"from": &filter.From, "to": &filter.To} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		t, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			return filter, apperror.Validation("%s must be an RFC 3339 timestamp", name)
		}
		*dst = &t
	}
	for name, dst := range map[string]*int{"limit": &filter.Limit, "offset": &filter.Offset} {
		raw := c.QueryParam(name)
		if raw == "" {
			continue
		}
		n, err := strconv.Atoi(raw)
		if err != nil || n < 0 {
			return filter, apperror.Validation("%s must be a non-negative integer", name)
		}
		*dst = n
	}
	return filter, nil
}
