package http

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/apperror"
	"github.com/piresc/chauffeur/internal/pkg/database"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/piresc/chauffeur/services/dispatch/mocks"
	"github.com/piresc/chauffeur/services/messaging/gateway"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testWebhookURL = "https://dispatch.example.com/v1/webhooks/twilio"

type webhookFixture struct {
	uc    *mocks.MockDispatchUC
	redis *miniredis.Miniredis
	cfg   *models.Config
	e     *echo.Echo
}

func newWebhookFixture(t *testing.T) *webhookFixture {
	ctrl := gomock.NewController(t)
	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { client.Close() })

	f := &webhookFixture{
		uc:    mocks.NewMockDispatchUC(ctrl),
		redis: mr,
		cfg: &models.Config{Twilio: models.TwilioConfig{
			AuthToken:      "twilio-token",
			WebhookURL:     testWebhookURL,
			VerifyWebhooks: true,
		}},
		e: echo.New(),
	}
	NewWebhookHandler(f.cfg, f.uc, &database.RedisClient{Client: client}, nil).
		RegisterRoutes(f.e.Group("/v1/webhooks"))
	return f
}

func (f *webhookFixture) post(params url.Values, signature string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/v1/webhooks/twilio", strings.NewReader(params.Encode()))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	if signature != "" {
		req.Header.Set(gateway.SignatureHeader, signature)
	}
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, req)
	return rec
}

func inbound(sid string) url.Values {
	return url.Values{
		"From":       {"whatsapp:+447700900123"},
		"Body":       {"1"},
		"MessageSid": {sid},
	}
}

func sign(params url.Values) string {
	return gateway.TwilioSignature("twilio-token", testWebhookURL, params)
}

func TestWebhook_HandlesMessage(t *testing.T) {
	f := newWebhookFixture(t)
	params := inbound("SM001")

	f.uc.EXPECT().HandleDriverMessage(gomock.Any(), models.InboundMessage{
		From:       "whatsapp:+447700900123",
		Body:       "1",
		MessageSid: "SM001",
	}).Return(&models.DriverMessageResult{Outcome: models.OutcomeTransitioned}, nil)

	rec := f.post(params, sign(params))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "<Response></Response>")
	assert.True(t, f.redis.Exists("webhook:twilio:SM001"))
}

func TestWebhook_DuplicateIsIgnored(t *testing.T) {
	f := newWebhookFixture(t)
	params := inbound("SM002")

	f.uc.EXPECT().HandleDriverMessage(gomock.Any(), gomock.Any()).
		Return(&models.DriverMessageResult{Outcome: models.OutcomeTransitioned}, nil).Times(1)

	first := f.post(params, sign(params))
	second := f.post(params, sign(params))

	assert.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, http.StatusOK, second.Code)
}

func TestWebhook_InvalidSignature(t *testing.T) {
	f := newWebhookFixture(t)
	params := inbound("SM003")

	rec := f.post(params, "bm90LXRoZS1zaWduYXR1cmU=")

	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, f.redis.Exists("webhook:twilio:SM003"))
}

func TestWebhook_VerificationDisabled(t *testing.T) {
	f := newWebhookFixture(t)
	f.cfg.Twilio.VerifyWebhooks = false
	params := inbound("SM004")

	f.uc.EXPECT().HandleDriverMessage(gomock.Any(), gomock.Any()).
		Return(&models.DriverMessageResult{Outcome: models.OutcomeNoActiveJob}, nil)

	rec := f.post(params, "")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhook_UnknownSenderIsAcknowledged(t *testing.T) {
	f := newWebhookFixture(t)
	params := inbound("SM005")

	f.uc.EXPECT().HandleDriverMessage(gomock.Any(), gomock.Any()).
		Return(&models.DriverMessageResult{Outcome: models.OutcomeUnknownSender}, apperror.ErrUnknownSender)

	rec := f.post(params, sign(params))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhook_FailureReleasesClaim(t *testing.T) {
	f := newWebhookFixture(t)
	params := inbound("SM006")

	gomock.InOrder(
		f.uc.EXPECT().HandleDriverMessage(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down")),
		f.uc.EXPECT().HandleDriverMessage(gomock.Any(), gomock.Any()).
			Return(&models.DriverMessageResult{Outcome: models.OutcomeTransitioned}, nil),
	)

	rec := f.post(params, sign(params))
	require.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.False(t, f.redis.Exists("webhook:twilio:SM006"))

	rec = f.post(params, sign(params))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestWebhook_RedisDownStillProcesses(t *testing.T) {
	f := newWebhookFixture(t)
	f.redis.Close()
	params := inbound("SM007")

	f.uc.EXPECT().HandleDriverMessage(gomock.Any(), gomock.Any()).
		Return(&models.DriverMessageResult{Outcome: models.OutcomeTransitioned}, nil)

	rec := f.post(params, sign(params))

	assert.Equal(t, http.StatusOK, rec.Code)
}

var _ Deduplicator = (*database.RedisClient)(nil)
