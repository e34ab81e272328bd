package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/piresc/chauffeur/internal/pkg/apperror"
	httpclient "github.com/piresc/chauffeur/internal/pkg/http"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/metrics"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/pkg/retry"
)

// DefaultStripeBaseURL is the public Stripe API
const DefaultStripeBaseURL = "https://api.stripe.com"

var errNotConfigured = errors.New("stripe secret key not configured")

// StripeGW opens hosted checkout sessions and issues refunds through the Stripe API
type StripeGW struct {
	cfg     models.StripeConfig
	client  *httpclient.Client
	retrier *retry.Retrier
	metrics *metrics.Metrics
}

// NewStripeGW creates a Stripe gateway that retries transport failures and 5xx responses
func NewStripeGW(cfg models.StripeConfig, m *metrics.Metrics) *StripeGW {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultStripeBaseURL
	}

	retryCfg := retry.DefaultConfig()
	retryCfg.RetryableFunc = httpclient.IsRetryable

	return &StripeGW{
		cfg: cfg,
		client: httpclient.NewClient(httpclient.Config{
			ServiceName: "stripe",
			BaseURL:     baseURL,
			Timeout:     cfg.Timeout,
			Auth:        httpclient.BearerAuth(cfg.SecretKey),
		}),
		retrier: retry.New(retryCfg, logger.GetGlobalLogger()),
		metrics: m,
	}
}

// CreateCheckoutSession opens a one-line-item hosted checkout for a booking
func (g *StripeGW) CreateCheckoutSession(ctx context.Context, req *models.CheckoutSessionRequest) (*models.CheckoutSession, error) {
	bookingID := req.BookingID.String()

	form := url.Values{}
	form.Set("mode", "payment")
	form.Set("success_url", g.cfg.SuccessURL)
	form.Set("cancel_url", g.cfg.CancelURL)
	form.Set("client_reference_id", bookingID)
	if req.CustomerEmail != "" {
		form.Set("customer_email", req.CustomerEmail)
	}
	form.Set("line_items[0][quantity]", "1")
	form.Set("line_items[0][price_data][currency]", strings.ToLower(req.Currency))
	form.Set("line_items[0][price_data][unit_amount]", strconv.FormatInt(req.Amount, 10))
	form.Set("line_items[0][price_data][product_data][name]", req.Description)
	form.Set("metadata[booking_id]", bookingID)
	form.Set("metadata[org_id]", req.OrgID.String())
	form.Set("payment_intent_data[metadata][booking_id]", bookingID)

	var session models.CheckoutSession
	if err := g.post(ctx, "create_checkout_session", "/v1/checkout/sessions", form, req.IdempotencyKey, &session); err != nil {
		return nil, err
	}
	return &session, nil
}

// CreateRefund refunds part or all of a payment intent
func (g *StripeGW) CreateRefund(ctx context.Context, req *models.ProviderRefundRequest) (*models.ProviderRefund, error) {
	form := url.Values{}
	form.Set("payment_intent", req.PaymentIntentID)
	form.Set("amount", strconv.FormatInt(req.Amount, 10))
	form.Set("reason", "requested_by_customer")
	if req.Reason != "" {
		form.Set("metadata[reason]", req.Reason)
	}

	var refund models.ProviderRefund
	if err := g.post(ctx, "create_refund", "/v1/refunds", form, req.IdempotencyKey, &refund); err != nil {
		return nil, err
	}
	return &refund, nil
}

// post sends one idempotent request; every retry carries the same Idempotency-Key
func (g *StripeGW) post(ctx context.Context, op, endpoint string, form url.Values, idempotencyKey string, result interface{}) error {
	if g.cfg.SecretKey == "" {
		return apperror.Provider("stripe", errNotConfigured)
	}
	headers := map[string]string{}
	if idempotencyKey != "" {
		headers["Idempotency-Key"] = idempotencyKey
	}

	started := time.Now()
	err := g.retrier.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostForm(ctx, endpoint, form, headers, result)
	})
	g.metrics.ObserveProviderCall("stripe", op, started)
	if err != nil {
		return apperror.Provider("stripe", fmt.Errorf("%s: %w", op, err))
	}
	return nil
}
