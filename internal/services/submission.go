package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"ai-quiz-backend/internal/models"
	"ai-quiz-backend/internal/storage"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ErrValidation marks a submission that was rejected before scoring.
var ErrValidation = errors.New("invalid submission")

// Notifier is told about every scored submission after it has been handed to
// the recorder. Errors are logged and otherwise ignored.
type Notifier interface {
	NotifySubmission(ctx context.Context, rec *models.SubmissionRecord) error
}

type SubmissionService struct {
	catalog   *models.Catalog
	evaluator Evaluator
	recorder  storage.Recorder
	notifiers []Notifier
	log       *zap.Logger
	now       func() time.Time
}

func NewSubmissionService(catalog *models.Catalog, evaluator Evaluator, recorder storage.Recorder, log *zap.Logger, notifiers ...Notifier) *SubmissionService {
	return &SubmissionService{
		catalog:   catalog,
		evaluator: evaluator,
		recorder:  recorder,
		notifiers: notifiers,
		log:       log,
		now:       time.Now,
	}
}

type groupTally struct {
	score int
	max   int
}

// Submit scores a submission, records it and returns the respondent-facing
// result. Evaluation and persistence problems never fail the call.
func (s *SubmissionService) Submit(ctx context.Context, sub models.Submission) (*models.SubmissionResult, error) {
	name := strings.TrimSpace(sub.RespondentName)
	if name == "" {
		return nil, fmt.Errorf("%w: respondent name is required", ErrValidation)
	}
	if sub.Answers == nil {
		return nil, fmt.Errorf("%w: answers must be a list", ErrValidation)
	}

	sheet := models.NewAnswerSheet(sub.Answers, s.catalog.Len())

	overall := ScoreObjective(s.catalog.Questions(), 0, sheet)
	results := make(map[int]models.QuestionResult, s.catalog.Len())
	for _, r := range overall.Results {
		results[r.QuestionIndex] = r
	}

	offsets := s.catalog.GroupOffsets()
	tallies := make([]groupTally, len(s.catalog.Groups))
	for i, g := range s.catalog.Groups {
		tallies[i] = groupTally{
			score: ScoreObjective(g.Questions, offsets[i], sheet).Score,
			max:   g.TotalPoints(),
		}
	}

	prefixFeedback := s.catalog.FreeTextCount() > 1
	var feedback []string
	freeTextScore := 0

	for gi, g := range s.catalog.Groups {
		for qi, q := range g.Questions {
			if q.Type != models.QuestionTypeFreeText {
				continue
			}
			index := offsets[gi] + qi
			result := models.QuestionResult{QuestionIndex: index, Type: q.Type, Points: q.Points}

			value, ok := sheet[index]
			if ok && value.Kind == models.ValueText {
				ev := s.evaluator.Evaluate(ctx, q, value.Text)
				result.Answered = true
				result.PointsAwarded = ev.Score
				result.Feedback = ev.Feedback
				result.Fallback = ev.Fallback

				tallies[gi].score += ev.Score
				freeTextScore += ev.Score
				if prefixFeedback {
					feedback = append(feedback, fmt.Sprintf("[%s] %s", g.Title, ev.Feedback))
				} else {
					feedback = append(feedback, ev.Feedback)
				}
			}
			results[index] = result
		}
	}

	groupScores := make([]models.GroupScore, len(s.catalog.Groups))
	tiers := make([]models.Tier, len(s.catalog.Groups))
	for i, g := range s.catalog.Groups {
		tier := Classify(tallies[i].score, tallies[i].max)
		tiers[i] = tier
		groupScores[i] = models.GroupScore{
			GroupID:     g.ID,
			Title:       g.Title,
			Score:       tallies[i].score,
			TotalPoints: tallies[i].max,
			ResultText:  tier.Label(),
			Tier:        tier,
		}
	}
	overallTier := Aggregate(tiers...)

	result := &models.SubmissionResult{
		Score:            overall.Score + freeTextScore,
		TotalPoints:      s.catalog.TotalPoints(),
		ResultText:       overallTier.Label(),
		Tier:             overallTier,
		WrongAnswers:     overall.WrongAnswers,
		FreeTextFeedback: strings.Join(feedback, "\n\n"),
		GroupScores:      groupScores,
	}

	rec := &models.SubmissionRecord{
		ID:                  uuid.NewString(),
		SubmittedAt:         s.now().UTC(),
		UserName:            name,
		Score:               result.Score,
		TotalPoints:         result.TotalPoints,
		ResultText:          result.ResultText,
		ObjectiveScore:      overall.Score,
		ShortAnswerScore:    freeTextScore,
		ShortAnswerFeedback: result.FreeTextFeedback,
		WrongAnswers:        result.WrongAnswers,
		QuestionResults:     sortedResults(results),
		GroupScores:         groupScores,
		RawAnswers:          sub.Answers,
	}
	s.record(ctx, rec)

	return result, nil
}

// record hands the record to the recorder and the notifiers. It outlives a
// cancelled request so a respondent who disconnects is still recorded.
func (s *SubmissionService) record(ctx context.Context, rec *models.SubmissionRecord) {
	ctx = context.WithoutCancel(ctx)

	res := s.recorder.Save(ctx, rec)
	switch res.Status {
	case storage.SaveFailed:
		s.log.Error("Failed to persist submission",
			zap.String("submission_id", rec.ID),
			zap.Error(res.Err),
		)
	case storage.SaveOK:
		s.log.Info("Submission persisted",
			zap.String("submission_id", rec.ID),
			zap.Int("score", rec.Score),
			zap.Int("total_points", rec.TotalPoints),
		)
	}

	for _, n := range s.notifiers {
		if err := n.NotifySubmission(ctx, rec); err != nil {
			s.log.Warn("Submission notification failed",
				zap.String("submission_id", rec.ID),
				zap.Error(err),
			)
		}
	}
}

func sortedResults(m map[int]models.QuestionResult) []models.QuestionResult {
	out := make([]models.QuestionResult, 0, len(m))
	for _, r := range m {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionIndex < out[j].QuestionIndex })
	return out
}
