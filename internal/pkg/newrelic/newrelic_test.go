package newrelic

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/stretchr/testify/assert"
)

func TestInitNewRelic_Disabled(t *testing.T) {
	cfg := &models.Config{}
	cfg.NewRelic.Enabled = false

	assert.Nil(t, InitNewRelic(cfg))

	cfg.NewRelic.Enabled = true
	assert.Nil(t, InitNewRelic(cfg), "missing license key disables the agent")
}

func TestHelpersWithoutTransaction(t *testing.T) {
	ctx := context.Background()

	AddAttribute(ctx, "booking_id", "b-1")
	NoticeError(ctx, errors.New("boom"))

	called := false
	err := WithSegment(ctx, "segment", func() error {
		called = true
		return nil
	})
	assert.NoError(t, err)
	assert.True(t, called)

	v, err := WithSegmentValue(ctx, "segment", func() (int, error) { return 7, nil })
	assert.NoError(t, err)
	assert.Equal(t, 7, v)
}

func TestTraceHandler_PassesThroughError(t *testing.T) {
	e := echo.New()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())
	want := errors.New("handler failed")

	err := TraceHandler("Test", func(echo.Context) error { return want })(c)

	assert.Equal(t, want, err)
}

func TestInstrumentHTTPRequest_NoTransaction(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "http://example.com", nil)
	resp, err := InstrumentHTTPRequest(context.Background(), req, func() (*http.Response, error) {
		return &http.Response{StatusCode: http.StatusOK}, nil
	})

	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
}
