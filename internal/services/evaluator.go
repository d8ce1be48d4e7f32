package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"ai-quiz-backend/internal/config"
	"ai-quiz-backend/internal/models"

	"go.uber.org/zap"
)

// FallbackFeedback is returned in place of a grader verdict whenever the
// completion service cannot be used.
const FallbackFeedback = "The evaluation service is temporarily unavailable, a base score was awarded."

const fallbackScore = 1

// Evaluation is the grader's verdict on one free-text answer.
type Evaluation struct {
	Score    int
	Feedback string
	Fallback bool
}

// Evaluator grades free-text answers. Implementations never fail: problems
// are absorbed into a fallback Evaluation.
type Evaluator interface {
	Evaluate(ctx context.Context, q models.Question, answer string) Evaluation
}

// Fallback is the verdict substituted when grading fails.
func Fallback(q models.Question) Evaluation {
	score := fallbackScore
	if q.Points < score {
		score = q.Points
	}
	return Evaluation{Score: score, Feedback: FallbackFeedback, Fallback: true}
}

// LLMEvaluator grades answers through an OpenAI-compatible chat completions
// endpoint.
type LLMEvaluator struct {
	httpClient  *http.Client
	apiKey      string
	apiURL      string
	model       string
	temperature float64
	maxTokens   int
	log         *zap.Logger
}

func NewLLMEvaluator(cfg config.LLMConfig, log *zap.Logger) *LLMEvaluator {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &LLMEvaluator{
		httpClient:  &http.Client{Timeout: timeout},
		apiKey:      cfg.APIKey,
		apiURL:      strings.TrimRight(cfg.APIURL, "/"),
		model:       cfg.Model,
		temperature: cfg.Temperature,
		maxTokens:   cfg.MaxTokens,
		log:         log,
	}
}

func (e *LLMEvaluator) IsAvailable() bool {
	return e.apiKey != ""
}

type chatRequest struct {
	Model       string        `json:"model"`
	Messages    []chatMessage `json:"messages"`
	Temperature float64       `json:"temperature"`
	MaxTokens   int           `json:"max_tokens"`
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
	Error *struct {
		Message string `json:"message"`
	} `json:"error,omitempty"`
}

type gradeReply struct {
	Score    json.RawMessage `json:"score"`
	Feedback string          `json:"feedback"`
}

func (e *LLMEvaluator) Evaluate(ctx context.Context, q models.Question, answer string) Evaluation {
	ev, err := e.grade(ctx, q, answer)
	if err != nil {
		e.log.Warn("Free-text evaluation failed, using fallback",
			zap.String("question", q.Prompt),
			zap.Error(err),
		)
		return Fallback(q)
	}
	return ev
}

func (e *LLMEvaluator) grade(ctx context.Context, q models.Question, answer string) (Evaluation, error) {
	if !e.IsAvailable() {
		return Evaluation{}, errors.New("evaluation API is not configured")
	}

	prompt, err := BuildPrompt(q, answer)
	if err != nil {
		return Evaluation{}, err
	}

	reqBody := chatRequest{
		Model:       e.model,
		Messages:    []chatMessage{{Role: "user", Content: prompt}},
		Temperature: e.temperature,
		MaxTokens:   e.maxTokens,
	}
	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, e.apiURL+"/chat/completions", bytes.NewReader(jsonBody))
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+e.apiKey)

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return Evaluation{}, fmt.Errorf("API request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return Evaluation{}, fmt.Errorf("failed to read response: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return Evaluation{}, fmt.Errorf("API returned status %d", resp.StatusCode)
	}

	var chatResp chatResponse
	if err := json.Unmarshal(body, &chatResp); err != nil {
		return Evaluation{}, fmt.Errorf("failed to parse API response: %w", err)
	}
	if chatResp.Error != nil {
		return Evaluation{}, fmt.Errorf("API error: %s", chatResp.Error.Message)
	}
	if len(chatResp.Choices) == 0 {
		return Evaluation{}, errors.New("empty response from API")
	}

	return parseGrade(chatResp.Choices[0].Message.Content, q.Points)
}

// parseGrade extracts the verdict from the completion text. The text must be
// a single JSON object, the score a JSON integer naming one of the rubric
// tiers of a max-point question and the feedback non-empty.
func parseGrade(content string, max int) (Evaluation, error) {
	var reply gradeReply
	dec := json.NewDecoder(strings.NewReader(cleanJSONContent(content)))
	if err := dec.Decode(&reply); err != nil {
		return Evaluation{}, fmt.Errorf("grader returned invalid JSON: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return Evaluation{}, errors.New("grader reply has content after the JSON object")
	}

	raw := bytes.TrimSpace(reply.Score)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return Evaluation{}, errors.New("grader reply has no score")
	}
	var score int64
	if raw[0] == '"' || json.Unmarshal(raw, &score) != nil {
		return Evaluation{}, fmt.Errorf("grader score %s is not an integer", raw)
	}
	if !isTierScore(score, max) {
		return Evaluation{}, fmt.Errorf("grader score %d is not one of %v", score, tierScores(max))
	}
	feedback := strings.TrimSpace(reply.Feedback)
	if feedback == "" {
		return Evaluation{}, errors.New("grader reply has no feedback")
	}
	return Evaluation{Score: int(score), Feedback: feedback}, nil
}

func isTierScore(score int64, max int) bool {
	for _, s := range tierScores(max) {
		if score == int64(s) {
			return true
		}
	}
	return false
}

func cleanJSONContent(content string) string {
	content = strings.TrimSpace(content)
	if strings.HasPrefix(content, "```json") {
		content = strings.TrimPrefix(content, "```json")
	}
	if strings.HasPrefix(content, "```") {
		content = strings.TrimPrefix(content, "```")
	}
	if strings.HasSuffix(content, "```") {
		content = strings.TrimSuffix(content, "```")
	}
	return strings.TrimSpace(content)
}
