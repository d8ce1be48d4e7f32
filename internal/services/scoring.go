package services

import (
	"sort"

	"ai-quiz-backend/internal/models"
)

// Outcome is the result of scoring one objective question.
type Outcome struct {
	Correct       bool
	PointsAwarded int
}

// ObjectiveResult aggregates the objective questions of a catalog slice.
type ObjectiveResult struct {
	Score        int
	WrongAnswers []models.WrongAnswer
	Results      []models.QuestionResult
}

// ScoreQuestion scores a single objective question. Free-text questions and
// absent answers score zero.
func ScoreQuestion(q models.Question, value models.AnswerValue, present bool) Outcome {
	if !present || value.Kind == models.ValueAbsent {
		return Outcome{}
	}

	var correct bool
	switch q.Type {
	case models.QuestionTypeSingleChoice:
		correct = value.Kind == models.ValueText && value.Text == q.Answer
	case models.QuestionTypeMultiChoice:
		correct = sameSet(value.Selection(), q.Answers)
	default:
		return Outcome{}
	}

	if !correct {
		return Outcome{}
	}
	return Outcome{Correct: true, PointsAwarded: q.Points}
}

// ScoreObjective scores every objective question in questions, whose first
// element sits at global index offset. Unanswered questions count as wrong.
func ScoreObjective(questions []models.Question, offset int, sheet models.AnswerSheet) ObjectiveResult {
	res := ObjectiveResult{WrongAnswers: []models.WrongAnswer{}}

	for i, q := range questions {
		if !q.Type.Objective() {
			continue
		}
		index := offset + i
		value, present := sheet[index]
		out := ScoreQuestion(q, value, present)

		res.Score += out.PointsAwarded
		res.Results = append(res.Results, models.QuestionResult{
			QuestionIndex: index,
			Type:          q.Type,
			Answered:      present,
			Correct:       out.Correct,
			PointsAwarded: out.PointsAwarded,
			Points:        q.Points,
		})
		if !out.Correct {
			res.WrongAnswers = append(res.WrongAnswers, models.WrongAnswer{
				Question:      q.Prompt,
				CorrectAnswer: q.CorrectAnswerText(),
			})
		}
	}

	return res
}

func sameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x := append([]string(nil), a...)
	y := append([]string(nil), b...)
	sort.Strings(x)
	sort.Strings(y)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}
