package services

import (
	"encoding/json"
	"sync"

	"github.com/gorilla/websocket"
)

type WSClient struct {
	Conn *websocket.Conn
}

// ScoreHub fans refreshed deal aggregates out to every connected client so
// open deal pages can update without polling.
type ScoreHub struct {
	mu      sync.RWMutex
	clients map[*WSClient]struct{}
}

func NewScoreHub() *ScoreHub {
	return &ScoreHub{clients: make(map[*WSClient]struct{})}
}

func (h *ScoreHub) Register(c *WSClient) {
	h.mu.Lock()
	h.clients[c] = struct{}{}
	h.mu.Unlock()
}

func (h *ScoreHub) Unregister(c *WSClient) {
	h.mu.Lock()
	delete(h.clients, c)
	h.mu.Unlock()
	_ = c.Conn.Close()
}

func (h *ScoreHub) BroadcastScoreUpdate(agg DealAggregates) {
	msg, _ := json.Marshal(agg)
	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.clients {
		_ = c.Conn.WriteMessage(websocket.TextMessage, msg)
	}
}
