package services

import (
	"testing"

	"ai-quiz-backend/internal/models"
)

func TestScoreQuestion(t *testing.T) {
	single := singleChoice("pick", "A")
	multi := multiChoice("pick many", "B", "C")

	tests := []struct {
		name    string
		q       models.Question
		value   models.AnswerValue
		present bool
		correct bool
		points  int
	}{
		{"single correct", single, models.TextValue("A"), true, true, 1},
		{"single wrong", single, models.TextValue("B"), true, false, 0},
		{"single is case sensitive", single, models.TextValue("a"), true, false, 0},
		{"single with list", single, models.ListValue("A"), true, false, 0},
		{"single absent", single, models.AnswerValue{}, false, false, 0},
		{"multi exact", multi, models.ListValue("B", "C"), true, true, 2},
		{"multi reordered", multi, models.ListValue("C", "B"), true, true, 2},
		{"multi subset", multi, models.ListValue("B"), true, false, 0},
		{"multi superset", multi, models.ListValue("A", "B", "C"), true, false, 0},
		{"multi duplicate", multi, models.ListValue("B", "B"), true, false, 0},
		{"multi scalar", multi, models.TextValue("B"), true, false, 0},
		{"multi empty", multi, models.ListValue(), true, false, 0},
		{"free text excluded", freeText("essay", 2), models.TextValue("anything"), true, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := ScoreQuestion(tt.q, tt.value, tt.present)
			if out.Correct != tt.correct || out.PointsAwarded != tt.points {
				t.Fatalf("got %+v, want correct=%v points=%d", out, tt.correct, tt.points)
			}
			again := ScoreQuestion(tt.q, tt.value, tt.present)
			if again != out {
				t.Fatalf("not deterministic: %+v then %+v", out, again)
			}
		})
	}
}

func TestScoreQuestionScalarMatchesSingletonSet(t *testing.T) {
	q := multiChoice("one right", "D")
	if out := ScoreQuestion(q, models.TextValue("D"), true); !out.Correct {
		t.Fatalf("scalar answer should match a one-element set, got %+v", out)
	}
}

func TestScoreObjective(t *testing.T) {
	cat := testCatalog()

	t.Run("scenario A: single choice correct", func(t *testing.T) {
		questions := []models.Question{singleChoice("q", "A")}
		sheet := models.AnswerSheet{0: models.TextValue("A")}
		res := ScoreObjective(questions, 0, sheet)
		if res.Score != 1 {
			t.Fatalf("score = %d, want 1", res.Score)
		}
		if len(res.WrongAnswers) != 0 {
			t.Fatalf("wrong answers = %v, want none", res.WrongAnswers)
		}
	})

	t.Run("scenario B: multi choice any order", func(t *testing.T) {
		questions := []models.Question{multiChoice("q", "B", "C")}
		res := ScoreObjective(questions, 0, models.AnswerSheet{0: models.ListValue("C", "B")})
		if res.Score != 2 || len(res.WrongAnswers) != 0 {
			t.Fatalf("got %+v", res)
		}
	})

	t.Run("scenario C: multi choice subset", func(t *testing.T) {
		questions := []models.Question{multiChoice("Which apply?", "B", "C")}
		res := ScoreObjective(questions, 0, models.AnswerSheet{0: models.ListValue("B")})
		if res.Score != 0 {
			t.Fatalf("score = %d, want 0", res.Score)
		}
		want := models.WrongAnswer{Question: "Which apply?", CorrectAnswer: "B, C"}
		if len(res.WrongAnswers) != 1 || res.WrongAnswers[0] != want {
			t.Fatalf("wrong answers = %v, want [%v]", res.WrongAnswers, want)
		}
	})

	t.Run("group slice uses global indexes", func(t *testing.T) {
		offsets := cat.GroupOffsets()
		g2 := cat.Groups[1]
		sheet := models.AnswerSheet{
			offsets[1] + 0: models.TextValue("A"),
			offsets[1] + 3: models.ListValue("B", "C"),
			// Answers to group 1 must not leak into group 2.
			0: models.TextValue("A"),
		}
		res := ScoreObjective(g2.Questions, offsets[1], sheet)
		if res.Score != 3 {
			t.Fatalf("score = %d, want 3", res.Score)
		}
		if len(res.Results) != 4 {
			t.Fatalf("results = %d, want 4 objective results", len(res.Results))
		}
		if res.Results[0].QuestionIndex != offsets[1] {
			t.Fatalf("first result index = %d, want %d", res.Results[0].QuestionIndex, offsets[1])
		}
	})

	t.Run("unanswered counts as wrong", func(t *testing.T) {
		res := ScoreObjective(cat.Groups[0].Questions, 0, models.AnswerSheet{})
		if res.Score != 0 || len(res.WrongAnswers) != 4 {
			t.Fatalf("got score %d and %d wrong answers", res.Score, len(res.WrongAnswers))
		}
		if res.Results[0].Answered {
			t.Fatal("unanswered question reported as answered")
		}
	})

	t.Run("whole catalog equals sum of groups", func(t *testing.T) {
		sheet := models.AnswerSheet{0: models.TextValue("A"), 3: models.ListValue("C", "B"), 6: models.TextValue("B")}
		whole := ScoreObjective(cat.Questions(), 0, sheet)
		sum := 0
		for i, g := range cat.Groups {
			sum += ScoreObjective(g.Questions, cat.GroupOffsets()[i], sheet).Score
		}
		if whole.Score != sum {
			t.Fatalf("whole = %d, groups = %d", whole.Score, sum)
		}
	})
}
