package storage

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"ai-quiz-backend/internal/models"

	"go.uber.org/zap"
)

// SheetsStore talks to the spreadsheet webhook. Every call carries the
// shared secret as the token query parameter.
type SheetsStore struct {
	httpClient *http.Client
	webhookURL string
	token      string
	log        *zap.Logger
}

func NewSheetsStore(webhookURL, token string, timeout time.Duration, log *zap.Logger) *SheetsStore {
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	return &SheetsStore{
		httpClient: &http.Client{Timeout: timeout},
		webhookURL: webhookURL,
		token:      token,
		log:        log,
	}
}

func (s *SheetsStore) Configured() bool {
	return s.webhookURL != "" && s.token != ""
}

// webhookReply is the JSON body the webhook answers with. It reports auth
// and validation failures in the body with a 200 status.
type webhookReply struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Error   string `json:"error"`
}

func (s *SheetsStore) Save(ctx context.Context, rec *models.SubmissionRecord) SaveResult {
	if !s.Configured() {
		s.log.Warn("Sheets webhook not configured, skipping save")
		return SaveResult{Status: SaveSkipped}
	}

	body, err := json.Marshal(rec)
	if err != nil {
		return SaveResult{Status: SaveFailed, Err: fmt.Errorf("marshal record: %w", err)}
	}

	data, err := s.do(ctx, http.MethodPost, url.Values{}, body)
	if err != nil {
		return SaveResult{Status: SaveFailed, Err: err}
	}

	var reply webhookReply
	if err := json.Unmarshal(data, &reply); err == nil && reply.Error != "" {
		return SaveResult{Status: SaveFailed, Err: fmt.Errorf("webhook: %s", reply.Error)}
	}
	return SaveResult{Status: SaveOK}
}

func (s *SheetsStore) List(ctx context.Context) ([]byte, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	return s.do(ctx, http.MethodGet, url.Values{"action": {"list"}}, nil)
}

func (s *SheetsStore) Export(ctx context.Context) ([]byte, error) {
	if !s.Configured() {
		return nil, ErrNotConfigured
	}
	return s.do(ctx, http.MethodGet, url.Values{"action": {"export"}}, nil)
}

func (s *SheetsStore) do(ctx context.Context, method string, query url.Values, body []byte) ([]byte, error) {
	u, err := url.Parse(s.webhookURL)
	if err != nil {
		return nil, fmt.Errorf("invalid webhook url: %w", err)
	}
	q := u.Query()
	for k, v := range query {
		q[k] = v
	}
	q.Set("token", s.token)
	u.RawQuery = q.Encode()

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, u.String(), reader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("webhook request: %w", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("webhook returned status %d", resp.StatusCode)
	}
	return data, nil
}
