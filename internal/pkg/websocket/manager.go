package websocket

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/piresc/chauffeur/internal/pkg/constants"
	jwtpkg "github.com/piresc/chauffeur/internal/pkg/jwt"
	"github.com/piresc/chauffeur/internal/pkg/logger"
	"github.com/piresc/chauffeur/internal/pkg/models"
)

const writeWait = 10 * time.Second

// Client is one connected dispatcher console
type Client struct {
	ID     string
	Caller models.Caller

	conn    *websocket.Conn
	writeMu sync.Mutex
}

func (cl *Client) write(msg models.WSMessage) error {
	cl.writeMu.Lock()
	defer cl.writeMu.Unlock()
	cl.conn.SetWriteDeadline(time.Now().Add(writeWait))
	return cl.conn.WriteJSON(msg)
}

// Manager tracks dispatcher connections grouped by organization
type Manager struct {
	sync.RWMutex
	clients  map[uuid.UUID]map[string]*Client
	cfg      models.JWTConfig
	upgrader websocket.Upgrader
}

// NewManager creates a new WebSocket manager
func NewManager(jwtConfig models.JWTConfig) *Manager {
	return &Manager{
		clients: make(map[uuid.UUID]map[string]*Client),
		cfg:     jwtConfig,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool { return true },
		},
	}
}

// HandleConnection authenticates the dispatcher, upgrades the connection and
// serves it until the peer disconnects
func (m *Manager) HandleConnection(c echo.Context) error {
	caller, err := m.authenticate(c)
	if err != nil {
		return err
	}

	ws, err := m.upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		return err
	}
	defer ws.Close()

	client := &Client{ID: uuid.NewString(), Caller: caller, conn: ws}
	m.addClient(client)
	defer m.removeClient(client)

	logger.Info("Dispatcher connected",
		logger.OrgID(caller.OrgID.String()),
		logger.String("user_id", caller.UserID))

	for {
		var msg models.WSMessage
		if err := ws.ReadJSON(&msg); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Warn("Dispatcher connection closed unexpectedly",
					logger.OrgID(caller.OrgID.String()),
					logger.Err(err))
			}
			return nil
		}

		switch msg.Event {
		case constants.EventPing:
			m.send(client, constants.EventPong, nil)
		default:
			m.send(client, constants.EventError, models.WSErrorMessage{
				Code:    constants.ErrorInvalidFormat,
				Message: "unsupported event",
			})
		}
	}
}

// authenticate accepts a bearer header or a token query parameter, since
// browsers cannot set headers on a WebSocket handshake
func (m *Manager) authenticate(c echo.Context) (models.Caller, error) {
	token := c.QueryParam("token")
	if authHeader := c.Request().Header.Get("Authorization"); authHeader != "" {
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			return models.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid authorization format")
		}
		token = parts[1]
	}
	if token == "" {
		return models.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "Authorization is required")
	}

	claims, err := jwtpkg.ValidateToken(token, m.cfg.Secret)
	if err != nil {
		logger.Warn("Token validation failed", logger.Err(err))
		return models.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
	}
	return claims.Caller(), nil
}

func (m *Manager) addClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	org := m.clients[client.Caller.OrgID]
	if org == nil {
		org = make(map[string]*Client)
		m.clients[client.Caller.OrgID] = org
	}
	org[client.ID] = client
}

func (m *Manager) removeClient(client *Client) {
	m.Lock()
	defer m.Unlock()
	org := m.clients[client.Caller.OrgID]
	delete(org, client.ID)
	if len(org) == 0 {
		delete(m.clients, client.Caller.OrgID)
	}
}

// ClientCount returns the number of dispatchers connected for an organization
func (m *Manager) ClientCount(orgID uuid.UUID) int {
	m.RLock()
	defer m.RUnlock()
	return len(m.clients[orgID])
}

// BroadcastToOrg sends event to every dispatcher of the organization
func (m *Manager) BroadcastToOrg(orgID uuid.UUID, event string, data interface{}) {
	m.RLock()
	targets := make([]*Client, 0, len(m.clients[orgID]))
	for _, client := range m.clients[orgID] {
		targets = append(targets, client)
	}
	m.RUnlock()

	for _, client := range targets {
		m.send(client, event, data)
	}
}

func (m *Manager) send(client *Client, event string, data interface{}) {
	rawData, err := json.Marshal(data)
	if err != nil {
		logger.Error("Error marshaling websocket payload", logger.String("event", event), logger.Err(err))
		return
	}

	if err := client.write(models.WSMessage{Event: event, Data: rawData}); err != nil {
		logger.Warn("Error sending message to dispatcher",
			logger.String("client_id", client.ID),
			logger.Err(fmt.Errorf("write %s: %w", event, err)))
	}
}
