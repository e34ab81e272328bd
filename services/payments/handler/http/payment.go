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
	"github.com/piresc/chauffeur/services/payments"
)

// PaymentHandler serves checkout, payment and refund requests
type PaymentHandler struct {
	paymentUC payments.PaymentUC
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(paymentUC payments.PaymentUC) *PaymentHandler {
	return &PaymentHandler{paymentUC: paymentUC}
}

// RegisterRoutes mounts the dispatcher routes on api and the widget checkout on public
func (h *PaymentHandler) RegisterRoutes(api, public *echo.Group) {
	write := middleware.RequireRole(models.RoleDispatcher, models.RoleAdmin)

	g := api.Group("/bookings")
	g.POST("/:id/checkout", h.RetryCheckout, write)
	g.GET("/:id/payment", h.GetPayment)
	g.POST("/:id/refunds", h.IssueRefund, middleware.RequireRole(models.RoleAdmin))

	public.POST("/orgs/:org_id/checkout", h.CreateCheckout)
}

// CreateCheckout handles POST /orgs/:org_id/checkout from the booking widget
func (h *PaymentHandler) CreateCheckout(c echo.Context) error {
	orgID, err := utils.ParseUUIDParam(c, "org_id")
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	var req models.CheckoutRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	resp, err := h.paymentUC.CreateCheckout(c.Request().Context(), orgID, &req)
	if err != nil {
		return h.fail(c, "Failed to create checkout", err)
	}
	middleware.SetBookingID(c, resp.BookingID.String())
	return utils.SuccessResponse(c, http.StatusCreated, "Checkout created", resp)
}

// RetryCheckout handles POST /bookings/:id/checkout
func (h *PaymentHandler) RetryCheckout(c echo.Context) error {
	caller, bookingID, ok := h.target(c)
	if !ok {
		return nil
	}

	resp, err := h.paymentUC.RetryCheckout(c.Request().Context(), caller.OrgID, bookingID)
	if err != nil {
		return h.fail(c, "Failed to retry checkout", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Checkout created", resp)
}

// GetPayment handles GET /bookings/:id/payment
func (h *PaymentHandler) GetPayment(c echo.Context) error {
	caller, bookingID, ok := h.target(c)
	if !ok {
		return nil
	}

	payment, err := h.paymentUC.GetPayment(c.Request().Context(), caller.OrgID, bookingID)
	if err != nil {
		return h.fail(c, "Failed to get payment", err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Payment retrieved", payment)
}

// IssueRefund handles POST /bookings/:id/refunds. An absent amount refunds the remaining balance.
func (h *PaymentHandler) IssueRefund(c echo.Context) error {
	caller, bookingID, ok := h.target(c)
	if !ok {
		return nil
	}

	var req models.RefundRequest
	if err := c.Bind(&req); err != nil {
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	result, err := h.paymentUC.IssueRefund(c.Request().Context(), caller.OrgID, bookingID, req.Amount, req.Reason)
	if err != nil {
		return h.fail(c, "Failed to issue refund", err)
	}
	return utils.SuccessResponse(c, http.StatusCreated, "Refund issued", result)
}

func (h *PaymentHandler) target(c echo.Context) (caller models.Caller, bookingID uuid.UUID, ok bool) {
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

func (h *PaymentHandler) fail(c echo.Context, msg string, err error) error {
	if status := apperror.HTTPStatus(err); status == http.StatusInternalServerError || status == http.StatusBadGateway {
		logger.ErrorCtx(c.Request().Context(), msg, logger.Err(err))
	}
	return utils.AppErrorResponse(c, err)
}
