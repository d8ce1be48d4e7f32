package telegram

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"ai-quiz-backend/internal/models"
)

func testRecord() *models.SubmissionRecord {
	return &models.SubmissionRecord{
		UserName:    "<Ann>",
		Score:       9,
		TotalPoints: 14,
		ResultText:  models.TierFail.Label(),
		GroupScores: []models.GroupScore{
			{Title: "Basics", Score: 7, TotalPoints: 7, ResultText: models.TierExcellent.Label()},
		},
		WrongAnswers: []models.WrongAnswer{{Question: "q", CorrectAnswer: "A"}},
	}
}

func TestFormatSubmission(t *testing.T) {
	msg := FormatSubmission(testRecord())
	for _, want := range []string{"&lt;Ann&gt;", "9/14", "Basics: 7/7", "1 wrong answer"} {
		if !strings.Contains(msg, want) {
			t.Errorf("message %q missing %q", msg, want)
		}
	}
}

func TestNotifierSendsMessage(t *testing.T) {
	var got SendMessageRequest
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/botTOKEN/sendMessage" {
			t.Errorf("path = %s", r.URL.Path)
		}
		json.NewDecoder(r.Body).Decode(&got)
		w.Write([]byte(`{"ok": true, "result": {"message_id": 42}}`))
	}))
	defer srv.Close()

	n := NewNotifier(NewClient("TOKEN").WithBaseURL(srv.URL), -100123)
	if err := n.NotifySubmission(context.Background(), testRecord()); err != nil {
		t.Fatalf("NotifySubmission: %v", err)
	}
	if got.ChatID != -100123 || got.ParseMode != "HTML" || got.Text == "" {
		t.Fatalf("unexpected request %+v", got)
	}
}

func TestNotifierAPIError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok": false, "description": "Bad Request: chat not found"}`))
	}))
	defer srv.Close()

	n := NewNotifier(NewClient("TOKEN").WithBaseURL(srv.URL), 1)
	err := n.NotifySubmission(context.Background(), testRecord())
	if err == nil || !strings.Contains(err.Error(), "chat not found") {
		t.Fatalf("err = %v", err)
	}
}
