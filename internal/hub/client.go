package hub

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
	"github.com/sbilibin2017/gw-tweet-studio/internal/models"
)

const (
	// Time allowed to write a message to the peer.
	writeWait = 10 * time.Second

	// Time allowed to read the next pong message from the peer.
	pongWait = 60 * time.Second

	// Send pings to peer with this period. Must be less than pongWait.
	pingPeriod = (pongWait * 9) / 10

	// Maximum message size allowed from peer.
	maxMessageSize = 512
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// clientMessage is an inbound room-join request from the browser.
type clientMessage struct {
	Event string `json:"event"`
}

// Client is one connected browser session.
type Client struct {
	hub      *Hub
	conn     *websocket.Conn
	send     chan []byte
	identity *models.Identity // nil for anonymous sessions
}

// ServeWS upgrades the request to a websocket, registers the client with the
// hub, and starts its read/write pumps. identity may be nil.
func ServeWS(h *Hub, identity *models.Identity, w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logger.Log.Errorw("websocket upgrade failed", "error", err)
		return
	}

	client := &Client{
		hub:      h,
		conn:     conn,
		send:     make(chan []byte, 64),
		identity: identity,
	}
	h.register <- client

	go client.writePump()
	go client.readPump()

	client.sendEvent(EventSystemStatus, map[string]string{
		"status":    "connected",
		"timestamp": time.Now().Format(time.RFC3339),
	})
}

// sendEvent queues an event for this client only.
func (c *Client) sendEvent(event string, data any) {
	payload, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		return
	}
	select {
	case c.send <- payload:
	default:
	}
}

// readPump handles inbound room-join messages until the connection drops.
func (c *Client) readPump() {
	defer func() {
		c.hub.unregister <- c
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		_, raw, err := c.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Log.Warnw("websocket read error", "error", err)
			}
			return
		}

		var msg clientMessage
		if err := json.Unmarshal(raw, &msg); err != nil {
			continue
		}

		switch msg.Event {
		case "join_admin":
			if c.identity != nil && c.identity.IsAdmin {
				c.hub.joins <- joinRequest{client: c, room: AdminRoom}
				c.sendEvent(EventAdminJoined, map[string]string{
					"message": "Connected to admin real-time updates",
				})
			}
		case "join_user":
			if c.identity != nil {
				c.hub.joins <- joinRequest{client: c, room: UserRoom(c.identity.UserID)}
				c.sendEvent(EventUserJoined, map[string]string{
					"message": "Connected to user real-time updates",
				})
			}
		}
	}
}

// writePump forwards queued events to the peer and keeps the connection alive
// with pings.
func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case payload, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
