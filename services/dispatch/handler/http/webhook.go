package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/metrics"
	"github.com/piresc/chauffeur/internal/pkg/middleware"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
	"github.com/piresc/chauffeur/services/dispatch"
	"github.com/piresc/chauffeur/services/messaging/gateway"
)

const (
	emptyTwiML      = `<?xml version="1.0" encoding="UTF-8"?><Response></Response>`
	defaultDedupTTL = 24 * time.Hour
)

// Deduplicator claims a key once; RedisClient satisfies it
type Deduplicator interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

// WebhookHandler receives inbound WhatsApp messages from Twilio
type WebhookHandler struct {
	cfg        *models.Config
	dispatchUC dispatch.DispatchUC
	dedup      Deduplicator
	metrics    *metrics.Metrics
}

// NewWebhookHandler creates a new WhatsApp webhook handler
func NewWebhookHandler(cfg *models.Config, dispatchUC dispatch.DispatchUC, dedup Deduplicator, m *metrics.Metrics) *WebhookHandler {
	return &WebhookHandler{
		cfg:        cfg,
		dispatchUC: dispatchUC,
		dedup:      dedup,
		metrics:    m,
	}
}

// RegisterRoutes mounts the webhook on the unauthenticated webhooks group
func (h *WebhookHandler) RegisterRoutes(webhooks *echo.Group) {
	webhooks.POST("/twilio", h.HandleWhatsApp)
}

// HandleWhatsApp handles POST /webhooks/twilio. Twilio gets an empty TwiML document for
// every message it should not retry, including unknown senders and redeliveries.
func (h *WebhookHandler) HandleWhatsApp(c echo.Context) error {
	ctx := c.Request().Context()

	params, err := c.FormParams()
	if err != nil {
		h.metrics.ObserveWebhook("twilio", "bad_request")
		return utils.BadRequestResponse(c, "Invalid form body")
	}

	if h.cfg.Twilio.VerifyWebhooks {
		signature := c.Request().Header.Get(gateway.SignatureHeader)
		if err := gateway.VerifyTwilioSignature(h.cfg.Twilio.AuthToken, h.webhookURL(c), params, signature); err != nil {
			logger.WarnCtx(ctx, "Rejected WhatsApp webhook", logger.String("reason", "invalid signature"))
			h.metrics.ObserveWebhook("twilio", "invalid_signature")
			return utils.ForbiddenResponse(c, "Invalid signature")
		}
	}

	msg := models.InboundMessage{
		From:       params.Get("From"),
		Body:       params.Get("Body"),
		MessageSid: params.Get("MessageSid"),
	}
	middleware.AddAttribute(c, "message.sid", msg.MessageSid)

	key := ""
	if msg.MessageSid != "" && h.dedup != nil {
		key = fmt.Sprintf(constants.KeyTwilioMessage, msg.MessageSid)
		first, err := h.dedup.SetNX(ctx, key, time.Now().Unix(), h.dedupTTL())
		switch {
		case err != nil:
			logger.WarnCtx(ctx, "Webhook dedup unavailable, processing anyway",
				logger.String("message_sid", msg.MessageSid), logger.Err(err))
			key = ""
		case !first:
			logger.InfoCtx(ctx, "Duplicate WhatsApp webhook ignored", logger.String("message_sid", msg.MessageSid))
			h.metrics.ObserveWebhook("twilio", string(models.OutcomeDuplicate))
			return twiml(c)
		}
	}

	result, err := h.dispatchUC.HandleDriverMessage(ctx, msg)
	switch {
	case errors.Is(err, apperror.ErrUnknownSender):
		h.metrics.ObserveWebhook("twilio", string(models.OutcomeUnknownSender))
		return twiml(c)
	case err != nil:
		logger.ErrorCtx(ctx, "Failed to handle WhatsApp message",
			logger.String("message_sid", msg.MessageSid), logger.Err(err))
		// release the claim so Twilio's retry is processed
		if key != "" {
			if delErr := h.dedup.Delete(ctx, key); delErr != nil {
				logger.WarnCtx(ctx, "Failed to release webhook claim", logger.Err(delErr))
			}
		}
		h.metrics.ObserveWebhook("twilio", "error")
		return utils.InternalServerErrorResponse(c, "Failed to process message")
	}

	h.metrics.ObserveWebhook("twilio", string(result.Outcome))
	return twiml(c)
}

func (h *WebhookHandler) dedupTTL() time.Duration {
	if h.cfg.Dispatch.WebhookDedupTTL > 0 {
		return h.cfg.Dispatch.WebhookDedupTTL
	}
	return defaultDedupTTL
}

// webhookURL is the public URL Twilio signed. Behind a proxy the configured URL wins.
func (h *WebhookHandler) webhookURL(c echo.Context) string {
	if h.cfg.Twilio.WebhookURL != "" {
		return h.cfg.Twilio.WebhookURL
	}
	req := c.Request()
	return c.Scheme() + "://" + req.Host + req.URL.RequestURI()
}

func twiml(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMEApplicationXMLCharsetUTF8, []byte(emptyTwiML))
}
