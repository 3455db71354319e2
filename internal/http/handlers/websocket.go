package handlers

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"brewlocal/internal/auth"
	"brewlocal/internal/repo"

	"github.com/gorilla/websocket"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
)

// WebSocketMessage represents a message sent through WebSocket
type WebSocketMessage struct {
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
	Timestamp time.Time   `json:"timestamp"`
	SellerID  string      `json:"seller_id,omitempty"`
}

// WebSocketClient represents a connected WebSocket client
type WebSocketClient struct {
	conn     *websocket.Conn
	sellerID string
	send     chan WebSocketMessage
	hub      *WebSocketHub
}

// WebSocketHub manages all WebSocket connections
type WebSocketHub struct {
	clients    map[*WebSocketClient]bool
	broadcast  chan WebSocketMessage
	register   chan *WebSocketClient
	unregister chan *WebSocketClient
	mu         sync.RWMutex
}

// WebSocketHandler handles WebSocket connections for the seller dashboard
type WebSocketHandler struct {
	hub         *WebSocketHub
	authService *auth.Service
	sellerRepo  *repo.SellerRepository
}

// NewWebSocketHandler creates a new WebSocket handler
func NewWebSocketHandler(authService *auth.Service, sellerRepo *repo.SellerRepository) *WebSocketHandler {
	hub := &WebSocketHub{
		clients:    make(map[*WebSocketClient]bool),
		broadcast:  make(chan WebSocketMessage),
		register:   make(chan *WebSocketClient),
		unregister: make(chan *WebSocketClient),
	}

	go hub.run()
	return &WebSocketHandler{
		hub:         hub,
		authService: authService,
		sellerRepo:  sellerRepo,
	}
}

// Upgrader configures the websocket upgrader
var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// Allow connections from any origin in development
		// In production, check against allowed origins
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

// HandleWebSocket upgrades the connection and scopes it to the caller's store.
// Browsers cannot set headers on the WebSocket handshake, so the token comes
// in as a query parameter.
func (h *WebSocketHandler) HandleWebSocket(c echo.Context) error {
	token := c.QueryParam("token")
	if token == "" {
		return echo.NewHTTPError(http.StatusUnauthorized, "Missing authorization token")
	}

	claims, err := h.authService.ValidateToken(token)
	if err != nil {
		return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token: "+err.Error())
	}

	seller, err := h.sellerRepo.GetByOwner(claims.UserID)
	if err != nil {
		return echo.NewHTTPError(http.StatusForbidden, "Seller account required")
	}

	conn, err := upgrader.Upgrade(c.Response(), c.Request(), nil)
	if err != nil {
		log.Error().Err(err).Msg("WebSocket upgrade failed")
		return err
	}

	client := &WebSocketClient{
		conn:     conn,
		sellerID: seller.ID.String(),
		send:     make(chan WebSocketMessage, 256),
		hub:      h.hub,
	}

	h.hub.register <- client

	go client.writePump()
	go client.readPump()

	return nil
}

// BroadcastToSeller broadcasts a message to all clients of a specific seller
func (h *WebSocketHandler) BroadcastToSeller(sellerID string, messageType string, data interface{}) {
	message := WebSocketMessage{
		Type:      messageType,
		Data:      data,
		Timestamp: time.Now(),
		SellerID:  sellerID,
	}

	h.hub.broadcast <- message
}

// run manages the WebSocket hub
func (hub *WebSocketHub) run() {
	for {
		select {
		case client := <-hub.register:
			hub.mu.Lock()
			hub.clients[client] = true
			hub.mu.Unlock()
			log.Info().Str("seller_id", client.sellerID).Msg("WebSocket client connected")

			welcome := WebSocketMessage{
				Type:      "connection",
				Data:      map[string]string{"status": "connected"},
				Timestamp: time.Now(),
			}
			select {
			case client.send <- welcome:
			default:
				close(client.send)
				delete(hub.clients, client)
			}

		case client := <-hub.unregister:
			hub.mu.Lock()
			if _, ok := hub.clients[client]; ok {
				delete(hub.clients, client)
				close(client.send)
				log.Info().Str("seller_id", client.sellerID).Msg("WebSocket client disconnected")
			}
			hub.mu.Unlock()

		case message := <-hub.broadcast:
			// Write lock: stalled clients are evicted from the map here
			hub.mu.Lock()
			for client := range hub.clients {
				// Only send to clients of the same seller (if sellerID is specified)
				if message.SellerID == "" || client.sellerID == message.SellerID {
					select {
					case client.send <- message:
					default:
						close(client.send)
						delete(hub.clients, client)
					}
				}
			}
			hub.mu.Unlock()
		}
	}
}

// readPump handles reading messages from the WebSocket
func (c *WebSocketClient) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	// Set read deadline and pong handler - 30s timeout since we ping every 20s
	c.conn.SetReadDeadline(time.Now().Add(30 * time.Second))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(30 * time.Second))
		return nil
	})

	for {
		_, message, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseAbnormalClosure) {
				log.Warn().Err(err).Msg("WebSocket read error")
			}
			break
		}

		// Handle incoming messages (ping, etc.)
		var msg WebSocketMessage
		if err := json.Unmarshal(message, &msg); err == nil {
			switch msg.Type {
			case "ping":
				pong := WebSocketMessage{
					Type:      "pong",
					Data:      map[string]string{"status": "ok"},
					Timestamp: time.Now(),
				}
				select {
				case c.send <- pong:
				default:
					return
				}
			}
		}
	}
}

// writePump handles writing messages to the WebSocket
func (c *WebSocketClient) writePump() {
	ticker := time.NewTicker(20 * time.Second) // Send ping every 20 seconds
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}

			if err := c.conn.WriteJSON(message); err != nil {
				log.Warn().Err(err).Msg("WebSocket write error")
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(10 * time.Second))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				log.Warn().Err(err).Msg("WebSocket ping failed")
				return
			}
		}
	}
}

// GetConnectedClients returns the number of connected clients
func (h *WebSocketHandler) GetConnectedClients() int {
	h.hub.mu.RLock()
	defer h.hub.mu.RUnlock()
	return len(h.hub.clients)
}
