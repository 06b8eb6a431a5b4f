package hub

import (
	"encoding/json"
	"sync"

	"gamereviews/backend/internal/logging"
)

// Event represents a real-time event sent to feed subscribers.
type Event struct {
	Type    string      `json:"type"`
	Payload interface{} `json:"payload"`
}

// Client is a subscriber's channel. The SSE handler drains it.
type Client chan []byte

// Hub fans events out to the subscribers of each game.
type Hub struct {
	games map[string]map[Client]bool
	mu    sync.RWMutex
}

// New creates a new Hub.
func New() *Hub {
	return &Hub{
		games: make(map[string]map[Client]bool),
	}
}

// Subscribe adds a client to a game's feed.
func (h *Hub) Subscribe(gameID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.games[gameID]; !ok {
		h.games[gameID] = make(map[Client]bool)
	}
	h.games[gameID][client] = true
}

// Unsubscribe removes a client from a game's feed and closes its channel.
func (h *Hub) Unsubscribe(gameID string, client Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.games[gameID]; ok {
		if _, ok := clients[client]; ok {
			delete(clients, client)
			close(client)
			if len(clients) == 0 {
				delete(h.games, gameID)
			}
		}
	}
}

// Subscribers returns the number of clients following a game.
func (h *Hub) Subscribers(gameID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.games[gameID])
}

// Publish sends an event to every client of a game without blocking on slow ones.
func (h *Hub) Publish(gameID, eventType string, payload interface{}) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	clients, ok := h.games[gameID]
	if !ok {
		return
	}
	messageBytes, err := json.Marshal(Event{Type: eventType, Payload: payload})
	if err != nil {
		logging.Error().Err(err).Str("event", eventType).Msg("failed to encode hub event")
		return
	}

	for client := range clients {
		select {
		case client <- messageBytes:
		default:
			// Full buffer: the client misses this event.
		}
	}
}

// CloseAll drops every subscriber and closes their channels, ending open streams.
func (h *Hub) CloseAll() {
	h.mu.Lock()
	defer h.mu.Unlock()

	for gameID, clients := range h.games {
		for client := range clients {
			close(client)
		}
		delete(h.games, gameID)
	}
}
