package services

import (
	"bytes"
	"fmt"
	"text/template"

	"ai-quiz-backend/internal/models"
)

var gradingPrompt = template.Must(template.New("grading").Parse(
	`You are an AI teaching assistant. Grade the following short-answer question{{if .Topic}} about {{.Topic}}{{end}} using the rubric below. The maximum score is {{.Max}} points.

Question:
{{.Prompt}}

Rubric:
- {{.Max}} points (full credit): {{.Full}}
- {{.Partial}} points (partial credit): {{.PartialText}}
- 0 points (no credit): {{.None}}

The respondent's answer is:
"{{.Answer}}"

Reply with a JSON object containing exactly two fields:
1. "score": only 0, {{.Partial}} or {{.Max}}.
2. "feedback": one short sentence explaining the score.

Your output must be strict JSON with no other text.`))

type promptData struct {
	Topic       string
	Prompt      string
	Max         int
	Partial     int
	Full        string
	PartialText string
	None        string
	Answer      string
}

// BuildPrompt renders the grading instruction for a free-text answer. The
// output depends only on its inputs.
func BuildPrompt(q models.Question, answer string) (string, error) {
	if q.Rubric == nil {
		return "", fmt.Errorf("question %q has no rubric", q.Prompt)
	}
	data := promptData{
		Topic:       q.Rubric.Topic,
		Prompt:      q.Prompt,
		Max:         q.Points,
		Partial:     partialCredit(q.Points),
		Full:        q.Rubric.Full,
		PartialText: q.Rubric.Partial,
		None:        q.Rubric.None,
		Answer:      answer,
	}

	var buf bytes.Buffer
	if err := gradingPrompt.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render prompt: %w", err)
	}
	return buf.String(), nil
}

// partialCredit is the score named by the middle rubric tier. The catalog
// guarantees free-text questions are worth at least 2 points, so it lies
// strictly between 0 and points.
func partialCredit(points int) int {
	return points / 2
}

// tierScores lists the only scores a grader may award.
func tierScores(points int) []int {
	return []int{0, partialCredit(points), points}
}
