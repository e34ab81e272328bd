package http

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/piresc/chauffeur/internal/pkg/logger"
	nrpkg "github.com/piresc/chauffeur/internal/pkg/newrelic"
)

// DefaultTimeout for HTTP requests
const DefaultTimeout = 30 * time.Second

// Auth decorates an outgoing request with provider credentials
type Auth func(req *http.Request)

// BasicAuth authenticates with HTTP basic credentials
func BasicAuth(username, password string) Auth {
	return func(req *http.Request) {
		req.SetBasicAuth(username, password)
	}
}

// BearerAuth authenticates with a bearer token
func BearerAuth(token string) Auth {
	return func(req *http.Request) {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

// Config holds provider client configuration
type Config struct {
	ServiceName string
	BaseURL     string
	Timeout     time.Duration
	Auth        Auth
}

// Client is a form-encoding, JSON-decoding HTTP client for third-party providers
type Client struct {
	serviceName string
	baseURL     string
	auth        Auth
	httpClient  *http.Client
}

// NewClient creates a new provider client
func NewClient(config Config) *Client {
	timeout := config.Timeout
	if timeout == 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		serviceName: config.ServiceName,
		baseURL:     config.BaseURL,
		auth:        config.Auth,
		httpClient:  &http.Client{Timeout: timeout},
	}
}

// StatusError is a non-2xx provider response
type StatusError struct {
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("HTTP error: %d %s", e.StatusCode, e.Body)
}

// Temporary reports whether the provider may succeed on a later attempt
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= 500
}

// IsRetryable reports whether err is a transport failure or a temporary provider status
func IsRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		return false
	}
	var statusErr *StatusError
	if errors.As(err, &statusErr) {
		return statusErr.Temporary()
	}
	var decodeErr *DecodeError
	return !errors.As(err, &decodeErr)
}

// DecodeError is a 2xx provider response that could not be parsed
type DecodeError struct {
	Err error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("failed to decode response: %v", e.Err)
}

func (e *DecodeError) Unwrap() error {
	return e.Err
}

// PostForm sends form as application/x-www-form-urlencoded and decodes a JSON response into result
func (c *Client) PostForm(ctx context.Context, endpoint string, form url.Values, headers map[string]string, result interface{}) error {
	target := c.baseURL + endpoint

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, target, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("Accept", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	if c.auth != nil {
		c.auth(req)
	}

	start := time.Now()
	resp, err := nrpkg.InstrumentHTTPRequest(ctx, req, func() (*http.Response, error) {
		return c.httpClient.Do(req)
	})
	if err != nil {
		logger.WarnCtx(ctx, "Provider request failed",
			logger.String("service", c.serviceName),
			logger.String("endpoint", endpoint),
			logger.Duration("latency", time.Since(start)),
			logger.Err(err))
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return fmt.Errorf("failed to read response: %w", err)
	}

	logger.Debug("Provider request completed",
		logger.String("service", c.serviceName),
		logger.String("endpoint", endpoint),
		logger.Int("status_code", resp.StatusCode),
		logger.Duration("latency", time.Since(start)))

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{StatusCode: resp.StatusCode, Body: string(body)}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return &DecodeError{Err: err}
		}
	}
	return nil
}
