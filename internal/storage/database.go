package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"ai-quiz-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// DatabaseStore keeps submissions in the local submissions table.
type DatabaseStore struct {
	db  *gorm.DB
	log *zap.Logger
	now func() time.Time
}

func NewDatabaseStore(db *gorm.DB, log *zap.Logger) *DatabaseStore {
	return &DatabaseStore{db: db, log: log, now: time.Now}
}

func (s *DatabaseStore) Save(ctx context.Context, rec *models.SubmissionRecord) SaveResult {
	row, err := toRow(rec)
	if err != nil {
		return SaveResult{Status: SaveFailed, Err: err}
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return SaveResult{Status: SaveFailed, Err: fmt.Errorf("insert submission: %w", err)}
	}
	return SaveResult{Status: SaveOK}
}

func (s *DatabaseStore) rows(ctx context.Context) ([]models.SubmissionRow, error) {
	var rows []models.SubmissionRow
	if err := s.db.WithContext(ctx).Order("submitted_at asc, id asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("query submissions: %w", err)
	}
	return rows, nil
}

type listResponse struct {
	Data        []map[string]string `json:"data"`
	Total       int                 `json:"total"`
	LastUpdated time.Time           `json:"lastUpdated"`
}

// List keys every record by column header, the same shape the webhook
// produces.
func (s *DatabaseStore) List(ctx context.Context) ([]byte, error) {
	rows, err := s.rows(ctx)
	if err != nil {
		return nil, err
	}

	data := make([]map[string]string, 0, len(rows))
	for _, r := range rows {
		cells := rowCells(r)
		record := make(map[string]string, len(columns))
		for i, col := range columns {
			record[col] = cells[i]
		}
		data = append(data, record)
	}

	return json.Marshal(listResponse{Data: data, Total: len(data), LastUpdated: s.now().UTC()})
}

func (s *DatabaseStore) Export(ctx context.Context) ([]byte, error) {
	rows, err := s.rows(ctx)
	if err != nil {
		return nil, err
	}
	return WriteCSV(rows)
}

func toRow(rec *models.SubmissionRecord) (models.SubmissionRow, error) {
	encode := func(v interface{}) (string, error) {
		b, err := json.Marshal(v)
		if err != nil {
			return "", fmt.Errorf("encode record: %w", err)
		}
		return string(b), nil
	}

	row := models.SubmissionRow{
		SubmissionID:        rec.ID,
		SubmittedAt:         rec.SubmittedAt,
		UserName:            rec.UserName,
		Score:               rec.Score,
		TotalPoints:         rec.TotalPoints,
		ResultText:          rec.ResultText,
		ObjectiveScore:      rec.ObjectiveScore,
		ShortAnswerScore:    rec.ShortAnswerScore,
		ShortAnswerFeedback: rec.ShortAnswerFeedback,
	}

	var err error
	if row.WrongAnswers, err = encode(nonNil(rec.WrongAnswers)); err != nil {
		return row, err
	}
	if row.QuestionResults, err = encode(nonNil(rec.QuestionResults)); err != nil {
		return row, err
	}
	if row.GroupScores, err = encode(nonNil(rec.GroupScores)); err != nil {
		return row, err
	}
	if row.RawAnswers, err = encode(nonNil(rec.RawAnswers)); err != nil {
		return row, err
	}
	return row, nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}
