package hub

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/sbilibin2017/gw-tweet-studio/internal/logger"
)

// Broadcast event names pushed to connected browser sessions.
const (
	EventContentUpdate = "content_update"
	EventUserUpdate    = "user_update"
	EventUserActivity  = "user_activity"
	EventSystemHealth  = "system_health_update"
	EventSystemStatus  = "system_status"
	EventAdminJoined   = "admin_joined"
	EventUserJoined    = "user_joined"
)

// AdminRoom is the room explicitly joined by authenticated admin sessions.
const AdminRoom = "admin"

// UserRoom names the per-user room for a user id.
func UserRoom(userID int64) string {
	return fmt.Sprintf("user_%d", userID)
}

// Envelope is the wire format of every broadcast event.
type Envelope struct {
	Event string `json:"event"`
	Data  any    `json:"data"`
}

type message struct {
	room    string // empty means every connected client
	payload []byte
}

type joinRequest struct {
	client *Client
	room   string
}

// Hub maintains the set of connected clients and their room memberships and
// fans broadcast events out to them. Delivery is best-effort, at-most-once:
// a client that connects after an event, or whose send buffer is full,
// misses it.
type Hub struct {
	register   chan *Client
	unregister chan *Client
	joins      chan joinRequest
	broadcast  chan message

	clients map[*Client]bool
	rooms   map[string]map[*Client]bool
}

// New creates a Hub. Run must be started before clients connect.
func New() *Hub {
	return &Hub{
		register:   make(chan *Client),
		unregister: make(chan *Client),
		joins:      make(chan joinRequest),
		broadcast:  make(chan message, 256),
		clients:    make(map[*Client]bool),
		rooms:      make(map[string]map[*Client]bool),
	}
}

// Run processes hub events until ctx is cancelled, then disconnects every
// client. It should run in its own goroutine for the process lifetime.
func (h *Hub) Run(ctx context.Context) {
	logger.Log.Info("broadcast hub running")

	for {
		select {
		case client := <-h.register:
			h.clients[client] = true
			logger.Log.Infow("client connected", "clients", len(h.clients))

		case client := <-h.unregister:
			h.removeClient(client)

		case join := <-h.joins:
			if _, ok := h.clients[join.client]; !ok {
				continue
			}
			if h.rooms[join.room] == nil {
				h.rooms[join.room] = make(map[*Client]bool)
			}
			h.rooms[join.room][join.client] = true
			logger.Log.Infow("client joined room", "room", join.room)

		case msg := <-h.broadcast:
			h.deliver(msg)

		case <-ctx.Done():
			for client := range h.clients {
				h.removeClient(client)
			}
			logger.Log.Info("broadcast hub stopped")
			return
		}
	}
}

// Broadcast sends an event to every connected client.
func (h *Hub) Broadcast(event string, data any) {
	h.enqueue("", event, data)
}

// BroadcastRoom sends an event to clients joined to the given room.
func (h *Hub) BroadcastRoom(room, event string, data any) {
	h.enqueue(room, event, data)
}

func (h *Hub) enqueue(room, event string, data any) {
	payload, err := json.Marshal(Envelope{Event: event, Data: data})
	if err != nil {
		logger.Log.Errorw("failed to marshal broadcast event", "event", event, "error", err)
		return
	}

	select {
	case h.broadcast <- message{room: room, payload: payload}:
	default:
		logger.Log.Warnw("broadcast queue full, event dropped", "event", event)
	}
}

func (h *Hub) deliver(msg message) {
	targets := h.clients
	if msg.room != "" {
		targets = h.rooms[msg.room]
	}

	for client := range targets {
		select {
		case client.send <- msg.payload:
		default:
			// Slow consumer: drop the event rather than block the hub.
			logger.Log.Warnw("client send buffer full, event dropped")
		}
	}
}

func (h *Hub) removeClient(client *Client) {
	if _, ok := h.clients[client]; !ok {
		return
	}
	delete(h.clients, client)
	for room, members := range h.rooms {
		delete(members, client)
		if len(members) == 0 {
			delete(h.rooms, room)
		}
	}
	close(client.send)
	logger.Log.Infow("client disconnected", "clients", len(h.clients))
}
