package telegram

import (
	"context"
	"fmt"
	"html"
	"strings"

	"ai-quiz-backend/internal/models"
)

// Notifier posts a short summary of every scored submission to one chat.
type Notifier struct {
	client *Client
	chatID int64
}

func NewNotifier(client *Client, chatID int64) *Notifier {
	return &Notifier{client: client, chatID: chatID}
}

func (n *Notifier) NotifySubmission(ctx context.Context, rec *models.SubmissionRecord) error {
	_, err := n.client.SendMessage(ctx, n.chatID, FormatSubmission(rec), "HTML")
	return err
}

// FormatSubmission renders the chat message for a submission.
func FormatSubmission(rec *models.SubmissionRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "📝 <b>%s</b> scored <b>%d/%d</b> %s\n",
		html.EscapeString(rec.UserName), rec.Score, rec.TotalPoints, html.EscapeString(rec.ResultText))

	for _, g := range rec.GroupScores {
		fmt.Fprintf(&b, "• %s: %d/%d %s\n",
			html.EscapeString(g.Title), g.Score, g.TotalPoints, html.EscapeString(g.ResultText))
	}
	if n := len(rec.WrongAnswers); n > 0 {
		fmt.Fprintf(&b, "❌ %d wrong answer(s)\n", n)
	}
	return strings.TrimRight(b.String(), "\n")
}
