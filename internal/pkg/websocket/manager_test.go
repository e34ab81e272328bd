package websocket

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	jwtpkg "github.com/piresc/chauffeur/internal/pkg/jwt"
	"github.com/piresc/chauffeur/internal/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testJWT = models.JWTConfig{Secret: "ws-secret", Expiration: 60}

func newTestServer(t *testing.T) (*Manager, string) {
	t.Helper()
	m := NewManager(testJWT)
	e := echo.New()
	e.GET("/v1/ws", m.HandleConnection)
	srv := httptest.NewServer(e)
	t.Cleanup(srv.Close)
	return m, "ws" + strings.TrimPrefix(srv.URL, "http") + "/v1/ws"
}

func dial(t *testing.T, url string, caller models.Caller) *websocket.Conn {
	t.Helper()
	token, _, err := jwtpkg.GenerateToken(caller, testJWT)
	require.NoError(t, err)

	conn, _, err := websocket.DefaultDialer.Dial(url+"?token="+token, nil)
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return conn
}

func waitForClients(t *testing.T, m *Manager, orgID uuid.UUID, n int) {
	t.Helper()
	require.Eventually(t, func() bool { return m.ClientCount(orgID) == n }, 2*time.Second, 10*time.Millisecond)
}

func TestManager_RejectsUnauthenticated(t *testing.T) {
	_, url := newTestServer(t)

	_, resp, err := websocket.DefaultDialer.Dial(url, nil)
	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

	_, resp, err = websocket.DefaultDialer.Dial(url+"?token=garbage", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

func TestManager_BroadcastIsOrgScoped(t *testing.T) {
	m, url := newTestServer(t)
	orgA, orgB := uuid.New(), uuid.New()

	connA := dial(t, url, models.Caller{UserID: "a", OrgID: orgA, Role: models.RoleDispatcher})
	connB := dial(t, url, models.Caller{UserID: "b", OrgID: orgB, Role: models.RoleDispatcher})
	waitForClients(t, m, orgA, 1)
	waitForClients(t, m, orgB, 1)

	m.BroadcastToOrg(orgA, constants.EventBookingUpdate, map[string]string{"status": "ASSIGNED"})

	var msg models.WSMessage
	connA.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, connA.ReadJSON(&msg))
	assert.Equal(t, constants.EventBookingUpdate, msg.Event)
	assert.JSONEq(t, `{"status":"ASSIGNED"}`, string(msg.Data))

	connB.SetReadDeadline(time.Now().Add(200 * time.Millisecond))
	assert.Error(t, connB.ReadJSON(&msg), "other organizations receive nothing")
}

func TestManager_PingPongAndDisconnect(t *testing.T) {
	m, url := newTestServer(t)
	orgID := uuid.New()

	conn := dial(t, url, models.Caller{UserID: "a", OrgID: orgID, Role: models.RoleViewer})
	waitForClients(t, m, orgID, 1)

	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: constants.EventPing}))
	var msg models.WSMessage
	conn.SetReadDeadline(time.Now().Add(2 * time.Second))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventPong, msg.Event)

	require.NoError(t, conn.WriteJSON(models.WSMessage{Event: "subscribe"}))
	require.NoError(t, conn.ReadJSON(&msg))
	assert.Equal(t, constants.EventError, msg.Event)

	conn.Close()
	waitForClients(t, m, orgID, 0)
}
