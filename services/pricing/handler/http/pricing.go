package http

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/pricing"
)

// PricingHandler serves the public pricing query
type PricingHandler struct {
	pricingUC pricing.PricingUC
}

// NewPricingHandler creates a new pricing handler
func NewPricingHandler(pricingUC pricing.PricingUC) *PricingHandler {
	return &PricingHandler{pricingUC: pricingUC}
}

// RegisterRoutes mounts the handler on the public, rate-limited group
func (h *PricingHandler) RegisterRoutes(public *echo.Group) {
	public.GET("/orgs/:org_id/pricing", h.GetPricing)
}

// GetPricing quotes one vehicle class, or every enabled class when vehicle_class is omitted
func (h *PricingHandler) GetPricing(c echo.Context) error {
	orgID, err := utils.ParseUUIDParam(c, "org_id")
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	distance, err := strconv.ParseFloat(c.QueryParam("distance"), 64)
	if err != nil {
		return utils.AppErrorResponse(c, apperror.Validation("distance must be a number"))
	}

	ctx := c.Request().Context()
	vehicleClass := c.QueryParam("vehicle_class")

	if vehicleClass == "" {
		quotes, err := h.pricingUC.QuoteAll(ctx, orgID, distance)
		if err != nil {
			return h.fail(c, err)
		}
		return utils.SuccessResponse(c, http.StatusOK, "Prices calculated", quotes)
	}

	quote, err := h.pricingUC.Quote(ctx, orgID, vehicleClass, distance)
	if err != nil {
		return h.fail(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Price calculated", quote)
}

func (h *PricingHandler) fail(c echo.Context, err error) error {
	if apperror.HTTPStatus(err) == http.StatusInternalServerError {
		logger.ErrorCtx(c.Request().Context(), "Failed to calculate price", logger.Err(err))
	}
	return utils.AppErrorResponse(c, err)
}
