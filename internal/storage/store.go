package storage

import (
	"context"
	"errors"
	"fmt"

	"ai-quiz-backend/internal/config"
	"ai-quiz-backend/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// ErrNotConfigured is returned by readers whose backing store has not been
// set up.
var ErrNotConfigured = errors.New("persistence is not configured")

type SaveStatus int

const (
	SaveSkipped SaveStatus = iota
	SaveOK
	SaveFailed
)

func (s SaveStatus) String() string {
	switch s {
	case SaveOK:
		return "saved"
	case SaveFailed:
		return "failed"
	}
	return "skipped"
}

// SaveResult reports what happened to a record handed to a Recorder.
type SaveResult struct {
	Status SaveStatus
	Err    error
}

// Recorder appends submission records. Save never panics and never blocks
// longer than the configured timeout.
type Recorder interface {
	Save(ctx context.Context, rec *models.SubmissionRecord) SaveResult
}

// Reader serves the admin views of stored records.
type Reader interface {
	// List returns a JSON document {data, total, lastUpdated}.
	List(ctx context.Context) ([]byte, error)
	// Export returns every record as CSV.
	Export(ctx context.Context) ([]byte, error)
}

// Store is a Recorder that can also be read back.
type Store interface {
	Recorder
	Reader
}

// New returns the store selected by cfg.Driver. The database connection is
// only needed by the postgres and sqlite drivers.
func New(cfg config.PersistenceConfig, token string, db *gorm.DB, log *zap.Logger) (Store, error) {
	switch cfg.Driver {
	case "", "sheets":
		return NewSheetsStore(cfg.WebhookURL, token, cfg.Timeout, log), nil
	case "postgres", "sqlite":
		if db == nil {
			return nil, fmt.Errorf("driver %q needs a database connection", cfg.Driver)
		}
		return NewDatabaseStore(db, log), nil
	}
	return nil, fmt.Errorf("unknown persistence driver %q", cfg.Driver)
}
