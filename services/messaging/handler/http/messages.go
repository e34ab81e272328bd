package http

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/middleware"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/messaging"
)

// MessageHandler exposes the WhatsApp message log to dispatchers
type MessageHandler struct {
	messagingUC messaging.MessagingUC
}

// NewMessageHandler creates a new message log handler
func NewMessageHandler(messagingUC messaging.MessagingUC) *MessageHandler {
	return &MessageHandler{messagingUC: messagingUC}
}

// RegisterRoutes mounts the message log on the authenticated api group
func (h *MessageHandler) RegisterRoutes(api *echo.Group) {
	api.GET("/bookings/:id/messages", h.ListBookingMessages)
}

// ListBookingMessages handles GET /bookings/:id/messages
func (h *MessageHandler) ListBookingMessages(c echo.Context) error {
	caller, ok := middleware.CallerFrom(c)
	if !ok {
		return utils.UnauthorizedResponse(c, "")
	}
	bookingID, err := utils.ParseUUIDParam(c, "id")
	if err != nil {
		return utils.AppErrorResponse(c, err)
	}

	messages, err := h.messagingUC.ListBookingMessages(c.Request().Context(), caller.OrgID, bookingID)
	if err != nil {
		logger.ErrorCtx(c.Request().Context(), "Failed to list booking messages", logger.Err(err))
		return utils.AppErrorResponse(c, err)
	}
	return utils.SuccessResponse(c, http.StatusOK, "Messages retrieved", messages)
}
