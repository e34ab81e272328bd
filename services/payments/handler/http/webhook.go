package http

import (
	"context"
	"errors"
	"fmt"
	"io"
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
	"github.com/piresc/chauffeur/services/payments"
	"github.com/piresc/chauffeur/services/payments/gateway"
)

const (
	maxWebhookBody  = 64 << 10
	defaultDedupTTL = 24 * time.Hour
)

// Deduplicator claims a key once; RedisClient satisfies it
type Deduplicator interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Delete(ctx context.Context, key string) error
}

// WebhookHandler receives signed payment events from Stripe
type WebhookHandler struct {
	cfg       *models.Config
	paymentUC payments.PaymentUC
	dedup     Deduplicator
	metrics   *metrics.Metrics
	now       func() time.Time
}

// NewWebhookHandler creates a new Stripe webhook handler
func NewWebhookHandler(cfg *models.Config, paymentUC payments.PaymentUC, dedup Deduplicator, m *metrics.Metrics) *WebhookHandler {
	return &WebhookHandler{
		cfg:       cfg,
		paymentUC: paymentUC,
		dedup:     dedup,
		metrics:   m,
		now:       time.Now,
	}
}

// RegisterRoutes mounts the webhook on the unauthenticated webhooks group
func (h *WebhookHandler) RegisterRoutes(webhooks *echo.Group) {
	webhooks.POST("/stripe", h.HandleStripe)
}

// HandleStripe handles POST /webhooks/stripe. Replays and events already reflected in the
// ledger are acknowledged with 200 so Stripe stops retrying.
func (h *WebhookHandler) HandleStripe(c echo.Context) error {
	ctx := c.Request().Context()

	payload, err := io.ReadAll(io.LimitReader(c.Request().Body, maxWebhookBody+1))
	if err != nil || len(payload) > maxWebhookBody {
		h.metrics.ObserveWebhook("stripe", "bad_request")
		return utils.BadRequestResponse(c, "Invalid request body")
	}

	signature := c.Request().Header.Get(gateway.SignatureHeader)
	event, err := gateway.ParseWebhookEvent(payload, signature, h.cfg.Stripe.WebhookSecret, h.now())
	if err != nil {
		logger.WarnCtx(ctx, "Rejected Stripe webhook", logger.Err(err))
		outcome := "malformed"
		if errors.Is(err, apperror.ErrInvalidSignature) {
			outcome = "invalid_signature"
		}
		h.metrics.ObserveWebhook("stripe", outcome)
		return utils.BadRequestResponse(c, "Invalid webhook")
	}
	middleware.AddAttribute(c, "stripe.event_id", event.ID)
	middleware.AddAttribute(c, "stripe.event_type", event.Type)

	key := ""
	if event.ID != "" && h.dedup != nil {
		key = fmt.Sprintf(constants.KeyStripeEvent, event.ID)
		first, err := h.dedup.SetNX(ctx, key, h.now().Unix(), h.dedupTTL())
		switch {
		case err != nil:
			logger.WarnCtx(ctx, "Webhook dedup unavailable, processing anyway",
				logger.String("event_id", event.ID), logger.Err(err))
			key = ""
		case !first:
			logger.InfoCtx(ctx, "Duplicate Stripe webhook ignored", logger.String("event_id", event.ID))
			h.metrics.ObserveWebhook("stripe", "duplicate")
			return received(c)
		}
	}

	err = h.paymentUC.HandleEvent(ctx, event)
	switch {
	case err == nil:
		h.metrics.ObserveWebhook("stripe", string(event.Kind))
	case errors.Is(err, apperror.ErrAlreadyProcessed):
		h.metrics.ObserveWebhook("stripe", "already_processed")
	case errors.Is(err, apperror.ErrNotFound):
		// a session this service did not create; retrying will not help
		logger.WarnCtx(ctx, "Stripe webhook for unknown checkout",
			logger.String("event_id", event.ID),
			logger.String("session_id", event.SessionID))
		h.metrics.ObserveWebhook("stripe", "unknown_session")
	default:
		logger.ErrorCtx(ctx, "Failed to handle Stripe webhook",
			logger.String("event_id", event.ID), logger.Err(err))
		if key != "" {
			if delErr := h.dedup.Delete(ctx, key); delErr != nil {
				logger.WarnCtx(ctx, "Failed to release webhook claim", logger.Err(delErr))
			}
		}
		h.metrics.ObserveWebhook("stripe", "error")
		return utils.InternalServerErrorResponse(c, "Failed to process event")
	}
	return received(c)
}

func (h *WebhookHandler) dedupTTL() time.Duration {
	if h.cfg.Dispatch.WebhookDedupTTL > 0 {
		return h.cfg.Dispatch.WebhookDedupTTL
	}
	return defaultDedupTTL
}

func received(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]bool{"received": true})
}
