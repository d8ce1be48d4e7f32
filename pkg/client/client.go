package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client is a Go SDK for the quiz API
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// Option configures the client
type Option func(*Client)

// WithHTTPClient sets a custom HTTP client
func WithHTTPClient(client *http.Client) Option {
	return func(c *Client) {
		c.httpClient = client
	}
}

// WithTimeout sets the client timeout. Submissions wait for AI grading, so
// keep this well above the server's LLM timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(c *Client) {
		c.httpClient.Timeout = timeout
	}
}

// NewClient creates a new quiz API client
func NewClient(baseURL string, opts ...Option) *Client {
	c := &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: 90 * time.Second,
		},
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// APIError is a non-2xx response from the server.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// Quiz is the public catalog
type Quiz struct {
	Title       string  `json:"title"`
	TotalPoints int     `json:"totalPoints"`
	Groups      []Group `json:"groups"`
}

type Group struct {
	GroupID     string     `json:"groupId"`
	Title       string     `json:"title"`
	Description string     `json:"description,omitempty"`
	Icon        string     `json:"icon,omitempty"`
	TotalPoints int        `json:"totalPoints"`
	Questions   []Question `json:"questions"`
}

type Question struct {
	QuestionIndex int      `json:"questionIndex"`
	Type          string   `json:"type"`
	Prompt        string   `json:"prompt"`
	Options       []string `json:"options,omitempty"`
	Points        int      `json:"points"`
}

// Answer is one submitted value: a string for single-choice and free-text
// questions, a []string for multi-choice.
type Answer struct {
	QuestionIndex int         `json:"questionIndex"`
	Value         interface{} `json:"value"`
}

type SubmitRequest struct {
	RespondentName string   `json:"respondentName"`
	Answers        []Answer `json:"answers"`
}

type WrongAnswer struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
}

type GroupScore struct {
	GroupID     string `json:"groupId"`
	Title       string `json:"title"`
	Score       int    `json:"score"`
	TotalPoints int    `json:"totalPoints"`
	ResultText  string `json:"resultText"`
	Tier        string `json:"tier"`
}

// Result is the scored submission
type Result struct {
	Score            int           `json:"score"`
	TotalPoints      int           `json:"totalPoints"`
	ResultText       string        `json:"resultText"`
	Tier             string        `json:"tier"`
	WrongAnswers     []WrongAnswer `json:"wrongAnswers"`
	FreeTextFeedback string        `json:"freeTextFeedback"`
	GroupScores      []GroupScore  `json:"groupScores,omitempty"`
}

// Verification is the answer to an admin token check
type Verification struct {
	Valid       bool       `json:"valid"`
	AccessToken string     `json:"accessToken,omitempty"`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
}

// Records is the admin listing
type Records struct {
	Data        []map[string]interface{} `json:"data"`
	Total       int                      `json:"total"`
	LastUpdated string                   `json:"lastUpdated,omitempty"`
}

// GetQuiz fetches the public catalog
func (c *Client) GetQuiz(ctx context.Context) (*Quiz, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/quiz", nil)
	if err != nil {
		return nil, err
	}

	var quiz Quiz
	if err := json.Unmarshal(resp, &quiz); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &quiz, nil
}

// AIAvailable reports whether the server grades free text with a model
func (c *Client) AIAvailable(ctx context.Context) (bool, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/v1/quiz/ai-status", nil)
	if err != nil {
		return false, err
	}

	var status struct {
		Available bool `json:"available"`
	}
	if err := json.Unmarshal(resp, &status); err != nil {
		return false, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return status.Available, nil
}

// Submit sends a completed attempt for scoring
func (c *Client) Submit(ctx context.Context, req SubmitRequest) (*Result, error) {
	body, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	resp, err := c.doRequest(ctx, http.MethodPost, "/api/submit", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}

	var result Result
	if err := json.Unmarshal(resp, &result); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &result, nil
}

// Verify checks an admin token
func (c *Client) Verify(ctx context.Context, token string) (*Verification, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/admin/verify?token="+url.QueryEscape(token), nil)
	if err != nil {
		return nil, err
	}

	var v Verification
	if err := json.Unmarshal(resp, &v); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &v, nil
}

// Records lists stored submissions
func (c *Client) Records(ctx context.Context, token string) (*Records, error) {
	resp, err := c.doRequest(ctx, http.MethodGet, "/api/admin/records?token="+url.QueryEscape(token), nil)
	if err != nil {
		return nil, err
	}

	var r Records
	if err := json.Unmarshal(resp, &r); err != nil {
		return nil, fmt.Errorf("failed to unmarshal response: %w", err)
	}
	return &r, nil
}

// Export downloads stored submissions as CSV
func (c *Client) Export(ctx context.Context, token string) ([]byte, error) {
	return c.doRequest(ctx, http.MethodGet, "/api/admin/export?token="+url.QueryEscape(token), nil)
}

func (c *Client) doRequest(ctx context.Context, method, path string, body io.Reader) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode >= 400 {
		apiErr := &APIError{StatusCode: resp.StatusCode, Message: string(respBody)}
		var e struct {
			Error string `json:"error"`
		}
		if json.Unmarshal(respBody, &e) == nil && e.Error != "" {
			apiErr.Message = e.Error
		}
		return nil, apiErr
	}

	return respBody, nil
}
