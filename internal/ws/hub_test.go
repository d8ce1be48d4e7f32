package ws

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"ai-quiz-backend/internal/models"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

func TestHubNotifySubmission(t *testing.T) {
	hub := NewHub(zap.NewNop())
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.AddConnection(conn)
	}))
	defer srv.Close()

	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}
	if hub.Len() != 1 {
		t.Fatalf("hub has %d connections, want 1", hub.Len())
	}

	rec := &models.SubmissionRecord{ID: "abc", UserName: "Ann", Score: 9, TotalPoints: 14}
	if err := hub.NotifySubmission(context.Background(), rec); err != nil {
		t.Fatalf("NotifySubmission: %v", err)
	}

	client.SetReadDeadline(time.Now().Add(2 * time.Second))
	_, data, err := client.ReadMessage()
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	var msg struct {
		Type string          `json:"type"`
		Data SubmissionEvent `json:"data"`
	}
	if err := json.Unmarshal(data, &msg); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if msg.Type != "submission" || msg.Data.SubmissionID != "abc" || msg.Data.Score != 9 {
		t.Fatalf("unexpected message %+v", msg)
	}
}

func TestHubBroadcastWithoutClients(t *testing.T) {
	hub := NewHub(zap.NewNop())
	hub.Broadcast(WSMessage{Type: "noop"})
	if hub.Len() != 0 {
		t.Fatalf("len = %d", hub.Len())
	}
}

func TestHubBroadcastDoesNotBlockOnStalledClient(t *testing.T) {
	hub := NewHub(zap.NewNop())
	upgrader := websocket.Upgrader{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			t.Errorf("upgrade: %v", err)
			return
		}
		hub.AddConnection(conn)
	}))
	defer srv.Close()

	// The client never reads, so its socket buffers eventually fill up.
	client, _, err := websocket.DefaultDialer.Dial("ws"+strings.TrimPrefix(srv.URL, "http"), nil)
	if err != nil {
		t.Fatalf("dial: %v", err)
	}
	defer client.Close()

	deadline := time.Now().Add(2 * time.Second)
	for hub.Len() == 0 && time.Now().Before(deadline) {
		time.Sleep(10 * time.Millisecond)
	}

	payload := strings.Repeat("x", 64*1024)
	start := time.Now()
	for i := 0; i < 200; i++ {
		hub.Broadcast(WSMessage{Type: "submission", Data: payload})
	}
	if elapsed := time.Since(start); elapsed > time.Second {
		t.Fatalf("broadcast to a stalled client took %v", elapsed)
	}
}
