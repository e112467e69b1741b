package ws

import (
	"encoding/json"
	"log/slog"
	"sync"

	"HotelOS/internal/lib/sl"
)

// ClientMessageHandler handles incoming WebSocket messages from dashboard clients.
type ClientMessageHandler interface {
	HandleReadChannel(uid, channelID string) error
}

// Event represents a WebSocket event pushed to dashboard clients.
type Event struct {
	Type string      `json:"type"` // "update", "channel_read"
	Data interface{} `json:"data"`
}

// Hub maintains the set of active WebSocket clients and broadcasts events.
type Hub struct {
	clients    map[*Client]bool
	broadcast  chan *Event
	register   chan *Client
	unregister chan *Client
	mu         sync.RWMutex
	handler    ClientMessageHandler
	log        *slog.Logger
}

// NewHub creates a new Hub instance.
func NewHub(log *slog.Logger) *Hub {
	return &Hub{
		clients:    make(map[*Client]bool),
		broadcast:  make(chan *Event, 256),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		log:        log.With(sl.Module("ws")),
	}
}

// SetHandler sets the handler for incoming client messages.
func (h *Hub) SetHandler(handler ClientMessageHandler) {
	h.handler = handler
}

// Run starts the hub's event loop. Should be called in a goroutine.
func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			h.mu.Lock()
			h.clients[client] = true
			h.mu.Unlock()

		case client := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				close(client.send)
			}
			h.mu.Unlock()

		case event := <-h.broadcast:
			data, err := json.Marshal(event)
			if err != nil {
				continue
			}
			h.mu.RLock()
			for client := range h.clients {
				select {
				case client.send <- data:
				default:
					close(client.send)
					delete(h.clients, client)
				}
			}
			h.mu.RUnlock()
		}
	}
}

// BroadcastUpdate tells connected dashboards which view slices changed so
// they can refetch. Kinds match the sync service vocabulary.
func (h *Hub) BroadcastUpdate(kinds ...string) {
	h.broadcast <- &Event{
		Type: "update",
		Data: map[string][]string{"kinds": kinds},
	}
}

// BroadcastChannelRead notifies dashboards that a user caught up on a channel.
func (h *Hub) BroadcastChannelRead(uid, channelID string) {
	h.broadcast <- &Event{
		Type: "channel_read",
		Data: map[string]string{
			"uid":        uid,
			"channel_id": channelID,
		},
	}
}

// clientEvent represents an incoming WebSocket message from a dashboard client.
type clientEvent struct {
	Type string          `json:"type"`
	Data json.RawMessage `json:"data"`
}

// HandleClientMessage parses and dispatches an incoming message from a client.
func (h *Hub) HandleClientMessage(uid string, raw []byte) {
	if h.handler == nil {
		return
	}

	var event clientEvent
	if err := json.Unmarshal(raw, &event); err != nil {
		if h.log != nil {
			h.log.Warn("failed to parse client ws message", slog.String("error", err.Error()))
		}
		return
	}

	switch event.Type {
	case "read_channel":
		var data struct {
			ChannelID string `json:"channel_id"`
		}
		if err := json.Unmarshal(event.Data, &data); err != nil {
			if h.log != nil {
				h.log.Warn("failed to parse read_channel data", slog.String("error", err.Error()))
			}
			return
		}
		if data.ChannelID == "" {
			return
		}
		if err := h.handler.HandleReadChannel(uid, data.ChannelID); err != nil {
			if h.log != nil {
				h.log.Error("failed to handle read_channel",
					slog.String("uid", uid),
					slog.String("channel_id", data.ChannelID),
					slog.String("error", err.Error()),
				)
			}
		}
	}
}
