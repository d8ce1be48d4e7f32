package services

import (
	"context"
	"errors"
	"strings"
	"testing"

	"ai-quiz-backend/internal/models"
	"ai-quiz-backend/internal/storage"

	"go.uber.org/zap"
)

func newTestSubmissionService(eval Evaluator, rec *stubRecorder, notifiers ...Notifier) *SubmissionService {
	return NewSubmissionService(testCatalog(), eval, rec, zap.NewNop(), notifiers...)
}

// allCorrect answers every objective question of group g correctly.
func allCorrect(offset int) []models.Answer {
	return []models.Answer{
		{QuestionIndex: offset + 0, Value: models.TextValue("A")},
		{QuestionIndex: offset + 1, Value: models.TextValue("B")},
		{QuestionIndex: offset + 2, Value: models.TextValue("C")},
		{QuestionIndex: offset + 3, Value: models.ListValue("C", "B")},
	}
}

func TestSubmitValidation(t *testing.T) {
	svc := newTestSubmissionService(&stubEvaluator{}, &stubRecorder{})

	tests := []struct {
		name string
		sub  models.Submission
	}{
		{"missing name", models.Submission{Answers: []models.Answer{}}},
		{"blank name", models.Submission{RespondentName: "   ", Answers: []models.Answer{}}},
		{"missing answers", models.Submission{RespondentName: "Ann"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.Submit(context.Background(), tt.sub)
			if !errors.Is(err, ErrValidation) {
				t.Fatalf("err = %v, want ErrValidation", err)
			}
		})
	}
}

func TestSubmitScenarioD(t *testing.T) {
	eval := &stubEvaluator{scores: map[string]Evaluation{
		"g1 essay": {Score: 2, Feedback: "Complete."},
		"g2 essay": {Score: 0, Feedback: "Off topic."},
	}}
	rec := &stubRecorder{result: storage.SaveResult{Status: storage.SaveOK}}
	svc := newTestSubmissionService(eval, rec)

	answers := allCorrect(0)
	answers = append(answers,
		models.Answer{QuestionIndex: 4, Value: models.TextValue("RAG for docs, an agent for tools")},
		models.Answer{QuestionIndex: 5, Value: models.TextValue("A")},
		models.Answer{QuestionIndex: 6, Value: models.TextValue("B")},
		models.Answer{QuestionIndex: 7, Value: models.TextValue("D")},
		models.Answer{QuestionIndex: 8, Value: models.ListValue("B")},
		models.Answer{QuestionIndex: 9, Value: models.TextValue("no idea")},
	)

	res, err := svc.Submit(context.Background(), models.Submission{RespondentName: " Ann ", Answers: answers})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}

	if len(res.GroupScores) != 2 {
		t.Fatalf("group scores = %d, want 2", len(res.GroupScores))
	}
	g1, g2 := res.GroupScores[0], res.GroupScores[1]
	if g1.Score != 7 || g1.TotalPoints != 7 || g1.Tier != models.TierExcellent {
		t.Fatalf("group 1 = %+v", g1)
	}
	// Two single-choice right, one wrong, multi-choice wrong, essay 0: 2/7.
	if g2.Score != 2 || g2.TotalPoints != 7 || g2.Tier != models.TierFail {
		t.Fatalf("group 2 = %+v", g2)
	}
	if res.Tier != models.TierFail || res.ResultText != models.TierFail.Label() {
		t.Fatalf("overall tier = %v (%q), want Fail", res.Tier, res.ResultText)
	}
	if res.Score != 9 || res.TotalPoints != 14 {
		t.Fatalf("score = %d/%d, want 9/14", res.Score, res.TotalPoints)
	}
	if len(res.WrongAnswers) != 2 {
		t.Fatalf("wrong answers = %v", res.WrongAnswers)
	}
	if res.WrongAnswers[1].CorrectAnswer != "B, C" {
		t.Fatalf("multi-choice correct answer rendered as %q", res.WrongAnswers[1].CorrectAnswer)
	}

	wantFeedback := "[Basics] Complete.\n\n[Design] Off topic."
	if res.FreeTextFeedback != wantFeedback {
		t.Fatalf("feedback = %q, want %q", res.FreeTextFeedback, wantFeedback)
	}
	if strings.Join(eval.calls, ",") != "g1 essay,g2 essay" {
		t.Fatalf("evaluation order = %v", eval.calls)
	}

	if len(rec.records) != 1 {
		t.Fatalf("recorded %d records, want 1", len(rec.records))
	}
	r := rec.records[0]
	if r.UserName != "Ann" || r.ObjectiveScore != 7 || r.ShortAnswerScore != 2 || r.Score != 9 {
		t.Fatalf("unexpected record %+v", r)
	}
	if r.ID == "" || r.SubmittedAt.IsZero() {
		t.Fatal("record is missing id or timestamp")
	}
	if len(r.QuestionResults) != 10 {
		t.Fatalf("question results = %d, want 10", len(r.QuestionResults))
	}
	for i, qr := range r.QuestionResults {
		if qr.QuestionIndex != i {
			t.Fatalf("question results out of order at %d: %+v", i, qr)
		}
	}
	if len(r.RawAnswers) != len(answers) {
		t.Fatalf("raw answers = %d, want %d", len(r.RawAnswers), len(answers))
	}
}

func TestSubmitGroupsPassTogether(t *testing.T) {
	eval := &stubEvaluator{scores: map[string]Evaluation{
		"g1 essay": {Score: 2, Feedback: "a"},
		"g2 essay": {Score: 0, Feedback: "b"},
	}}
	svc := newTestSubmissionService(eval, &stubRecorder{})

	answers := append(allCorrect(0), allCorrect(5)...)
	answers = append(answers,
		models.Answer{QuestionIndex: 4, Value: models.TextValue("x")},
		models.Answer{QuestionIndex: 9, Value: models.TextValue("y")},
	)
	res, err := svc.Submit(context.Background(), models.Submission{RespondentName: "Bo", Answers: answers})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	// Group 2: 5/7 is 71%, a Pass; group 1 is Excellent; overall takes the weaker.
	if res.GroupScores[1].Tier != models.TierPass {
		t.Fatalf("group 2 tier = %v, want Pass", res.GroupScores[1].Tier)
	}
	if res.Tier != models.TierPass {
		t.Fatalf("overall tier = %v, want Pass", res.Tier)
	}
}

func TestSubmitScenarioEFallback(t *testing.T) {
	svc := newTestSubmissionService(&stubEvaluator{}, &stubRecorder{})

	res, err := svc.Submit(context.Background(), models.Submission{
		RespondentName: "Cy",
		Answers:        []models.Answer{{QuestionIndex: 4, Value: models.TextValue("an answer")}},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.GroupScores[0].Score != 1 {
		t.Fatalf("group 1 score = %d, want fallback score 1", res.GroupScores[0].Score)
	}
	if res.FreeTextFeedback != "[Basics] "+FallbackFeedback {
		t.Fatalf("feedback = %q", res.FreeTextFeedback)
	}
}

func TestSubmitSkipsUnusableFreeText(t *testing.T) {
	eval := &stubEvaluator{}
	svc := newTestSubmissionService(eval, &stubRecorder{})

	res, err := svc.Submit(context.Background(), models.Submission{
		RespondentName: "Di",
		Answers: []models.Answer{
			{QuestionIndex: 4, Value: models.ListValue("not", "text")},
			{QuestionIndex: 42, Value: models.TextValue("out of range")},
			{QuestionIndex: -1, Value: models.TextValue("negative")},
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if len(eval.calls) != 0 {
		t.Fatalf("evaluator called for %v", eval.calls)
	}
	if res.Score != 0 || res.FreeTextFeedback != "" {
		t.Fatalf("unexpected result %+v", res)
	}
	if len(res.WrongAnswers) != 8 {
		t.Fatalf("wrong answers = %d, want all 8 objective questions", len(res.WrongAnswers))
	}
}

func TestSubmitLastAnswerWins(t *testing.T) {
	svc := newTestSubmissionService(&stubEvaluator{}, &stubRecorder{})

	res, err := svc.Submit(context.Background(), models.Submission{
		RespondentName: "Ed",
		Answers: []models.Answer{
			{QuestionIndex: 0, Value: models.TextValue("D")},
			{QuestionIndex: 0, Value: models.TextValue("A")},
		},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.GroupScores[0].Score != 1 {
		t.Fatalf("group 1 score = %d, want 1", res.GroupScores[0].Score)
	}
}

func TestSubmitPersistenceFailureIsSwallowed(t *testing.T) {
	rec := &stubRecorder{result: storage.SaveResult{Status: storage.SaveFailed, Err: errors.New("webhook down")}}
	notifier := &stubNotifier{err: errors.New("chat not found")}
	svc := newTestSubmissionService(&stubEvaluator{}, rec, notifier)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	res, err := svc.Submit(ctx, models.Submission{RespondentName: "Flo", Answers: allCorrect(0)})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.Score != 5 {
		t.Fatalf("score = %d, want 5", res.Score)
	}
	if len(rec.records) != 1 || len(notifier.got) != 1 {
		t.Fatalf("recorder saw %d, notifier saw %d", len(rec.records), len(notifier.got))
	}
	if notifier.got[0] != rec.records[0] {
		t.Fatal("notifier received a different record")
	}
}

func TestSubmitSingleFreeTextHasNoPrefix(t *testing.T) {
	cat := testCatalog()
	cat.Groups = cat.Groups[:1]
	eval := &stubEvaluator{scores: map[string]Evaluation{"g1 essay": {Score: 1, Feedback: "Half."}}}
	svc := NewSubmissionService(cat, eval, &stubRecorder{}, zap.NewNop())

	res, err := svc.Submit(context.Background(), models.Submission{
		RespondentName: "Gus",
		Answers:        []models.Answer{{QuestionIndex: 4, Value: models.TextValue("RAG")}},
	})
	if err != nil {
		t.Fatalf("Submit: %v", err)
	}
	if res.FreeTextFeedback != "Half." {
		t.Fatalf("feedback = %q, want %q", res.FreeTextFeedback, "Half.")
	}
}
