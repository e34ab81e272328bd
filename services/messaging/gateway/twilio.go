package gateway

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"github.com/piresc/chauffeur/internal/pkg/circuitbreaker"
	httpclient "github.com/piresc/chauffeur/internal/pkg/http"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/metrics"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/internal/utils"
)

// DefaultTwilioBaseURL is the public Twilio REST API
const DefaultTwilioBaseURL = "https://api.twilio.com"

var errNotConfigured = errors.New("twilio credentials are not configured")

type messageResponse struct {
	SID    string `json:"sid"`
	Status string `json:"status"`
}

// TwilioGW sends WhatsApp messages through the Twilio Messages API
type TwilioGW struct {
	cfg     models.TwilioConfig
	client  *httpclient.Client
	breaker *circuitbreaker.CircuitBreaker
	metrics *metrics.Metrics
}

// NewTwilioGW creates a Twilio gateway guarded by a circuit breaker
func NewTwilioGW(cfg models.TwilioConfig, m *metrics.Metrics) *TwilioGW {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultTwilioBaseURL
	}

	breakerCfg := circuitbreaker.DefaultConfig("twilio")
	// a rejected message (bad number, template) says nothing about provider health
	breakerCfg.IsFailure = httpclient.IsRetryable
	breakerCfg.OnStateChange = func(name string, _, to circuitbreaker.State) {
		m.SetCircuitState(name, int(to))
	}

	return &TwilioGW{
		cfg: cfg,
		client: httpclient.NewClient(httpclient.Config{
			ServiceName: "twilio",
			BaseURL:     baseURL,
			Timeout:     cfg.Timeout,
			Auth:        httpclient.BasicAuth(cfg.AccountSID, cfg.AuthToken),
		}),
		breaker: circuitbreaker.New(breakerCfg, logger.GetGlobalLogger()),
		metrics: m,
	}
}

// SendWhatsApp sends body to the E.164 number to and returns the message SID
func (g *TwilioGW) SendWhatsApp(ctx context.Context, to, body string) (string, error) {
	if g.cfg.AccountSID == "" || g.cfg.AuthToken == "" || g.cfg.FromNumber == "" {
		return "", errNotConfigured
	}

	form := url.Values{}
	form.Set("From", utils.WhatsAppAddress(g.cfg.FromNumber))
	form.Set("To", utils.WhatsAppAddress(to))
	form.Set("Body", body)

	endpoint := fmt.Sprintf("/2010-04-01/Accounts/%s/Messages.json", url.PathEscape(g.cfg.AccountSID))

	var resp messageResponse
	started := time.Now()
	err := g.breaker.Execute(ctx, func(ctx context.Context) error {
		return g.client.PostForm(ctx, endpoint, form, nil, &resp)
	})
	g.metrics.ObserveProviderCall("twilio", "send_message", started)
	if err != nil {
		return "", fmt.Errorf("failed to send whatsapp message: %w", err)
	}
	return resp.SID, nil
}
