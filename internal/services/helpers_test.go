package services

import (
	"context"
	"sync"

	"ai-quiz-backend/internal/models"
	"ai-quiz-backend/internal/storage"
)

func freeText(prompt string, points int) models.Question {
	return models.Question{
		Type:   models.QuestionTypeFreeText,
		Prompt: prompt,
		Points: points,
		Rubric: &models.Rubric{
			Topic:   "system design",
			Full:    "names both components and their roles",
			Partial: "names one component",
			None:    "names neither",
		},
	}
}

func singleChoice(prompt, answer string) models.Question {
	return models.Question{
		Type:    models.QuestionTypeSingleChoice,
		Prompt:  prompt,
		Options: []string{"A. one", "B. two", "C. three", "D. four"},
		Answer:  answer,
		Points:  1,
	}
}

func multiChoice(prompt string, answers ...string) models.Question {
	return models.Question{
		Type:    models.QuestionTypeMultiChoice,
		Prompt:  prompt,
		Options: []string{"A. one", "B. two", "C. three", "D. four"},
		Answers: answers,
		Points:  2,
	}
}

// testCatalog has two groups of five questions: three single-choice, one
// multi-choice and one free-text. Objective points per group: 5, free-text: 2.
func testCatalog() *models.Catalog {
	group := func(id, title string) models.QuestionGroup {
		return models.QuestionGroup{
			ID:    id,
			Title: title,
			Questions: []models.Question{
				singleChoice(id+" q1", "A"),
				singleChoice(id+" q2", "B"),
				singleChoice(id+" q3", "C"),
				multiChoice(id+" q4", "B", "C"),
				freeText(id+" essay", 2),
			},
		}
	}
	return &models.Catalog{
		Title:  "test",
		Groups: []models.QuestionGroup{group("g1", "Basics"), group("g2", "Design")},
	}
}

type stubEvaluator struct {
	mu     sync.Mutex
	scores map[string]Evaluation
	calls  []string
}

func (s *stubEvaluator) Evaluate(_ context.Context, q models.Question, answer string) Evaluation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.calls = append(s.calls, q.Prompt)
	if ev, ok := s.scores[q.Prompt]; ok {
		return ev
	}
	return Fallback(q)
}

type stubRecorder struct {
	records []*models.SubmissionRecord
	result  storage.SaveResult
}

func (s *stubRecorder) Save(_ context.Context, rec *models.SubmissionRecord) storage.SaveResult {
	s.records = append(s.records, rec)
	return s.result
}

type stubNotifier struct {
	got []*models.SubmissionRecord
	err error
}

func (s *stubNotifier) NotifySubmission(_ context.Context, rec *models.SubmissionRecord) error {
	s.got = append(s.got, rec)
	return s.err
}
