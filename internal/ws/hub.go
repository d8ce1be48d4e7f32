package ws

import (
	"context"
	"encoding/json"
	"sync"
	"time"

	"ai-quiz-backend/internal/models"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const writeWait = 5 * time.Second

type WSMessage struct {
	Type string      `json:"type"`
	Data interface{} `json:"data"`
}

// SubmissionEvent is the summary pushed to admin dashboards for every scored
// submission.
type SubmissionEvent struct {
	SubmissionID string              `json:"submissionId"`
	SubmittedAt  time.Time           `json:"submittedAt"`
	UserName     string              `json:"userName"`
	Score        int                 `json:"score"`
	TotalPoints  int                 `json:"totalPoints"`
	ResultText   string              `json:"resultText"`
	GroupScores  []models.GroupScore `json:"groupScores"`
}

// sendBuffer is how many feed messages may queue for one dashboard before it
// is considered stalled and dropped.
const sendBuffer = 16

type client struct {
	conn *websocket.Conn
	send chan []byte
}

// Hub fans scored submissions out to connected admin dashboards. Every
// connection has its own writer goroutine, so Broadcast never waits on the
// network.
type Hub struct {
	mu      sync.Mutex
	clients map[*websocket.Conn]*client
	log     *zap.Logger
}

func NewHub(log *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[*websocket.Conn]*client),
		log:     log,
	}
}

func (h *Hub) AddConnection(conn *websocket.Conn) {
	c := &client{conn: conn, send: make(chan []byte, sendBuffer)}

	h.mu.Lock()
	h.clients[conn] = c
	n := len(h.clients)
	h.mu.Unlock()

	go h.writePump(c)
	h.log.Debug("Admin feed client connected", zap.Int("clients", n))
}

func (h *Hub) RemoveConnection(conn *websocket.Conn) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if c, ok := h.clients[conn]; ok {
		h.drop(c)
		h.log.Debug("Admin feed client disconnected", zap.Int("clients", len(h.clients)))
	}
}

// drop must be called with h.mu held. Closing send stops the writer, which
// closes the connection.
func (h *Hub) drop(c *client) {
	delete(h.clients, c.conn)
	close(c.send)
}

func (h *Hub) Len() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// Broadcast queues message for every connection. A dashboard whose queue is
// full is dropped instead of slowing down the caller.
func (h *Hub) Broadcast(message WSMessage) {
	data, err := json.Marshal(message)
	if err != nil {
		h.log.Error("Failed to marshal feed message", zap.Error(err))
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()

	for _, c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.log.Warn("Admin feed client too slow, dropping")
			h.drop(c)
		}
	}
}

func (h *Hub) writePump(c *client) {
	defer c.conn.Close()

	for data := range c.send {
		c.conn.SetWriteDeadline(time.Now().Add(writeWait))
		if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
			h.log.Warn("Admin feed write failed", zap.Error(err))
			h.RemoveConnection(c.conn)
			return
		}
	}
}

// NotifySubmission pushes a submission summary to the feed.
func (h *Hub) NotifySubmission(_ context.Context, rec *models.SubmissionRecord) error {
	h.Broadcast(WSMessage{
		Type: "submission",
		Data: SubmissionEvent{
			SubmissionID: rec.ID,
			SubmittedAt:  rec.SubmittedAt,
			UserName:     rec.UserName,
			Score:        rec.Score,
			TotalPoints:  rec.TotalPoints,
			ResultText:   rec.ResultText,
			GroupScores:  rec.GroupScores,
		},
	})
	return nil
}
