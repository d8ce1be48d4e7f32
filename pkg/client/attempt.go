package client

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
)

// State is the lifecycle position of a quiz attempt.
type State string

const (
	StateNotStarted State = "not_started"
	StateInProgress State = "in_progress"
	StateSubmitting State = "submitting"
	StateCompleted  State = "completed"
)

var (
	ErrInvalidTransition = errors.New("invalid attempt state transition")
	ErrInvalidValue      = errors.New("answer must be a string or []string")
)

// Attempt tracks one respondent's pass through the quiz. Answers survive a
// failed submission so the respondent can retry.
type Attempt struct {
	mu      sync.Mutex
	client  *Client
	state   State
	name    string
	answers map[int]interface{}
	result  *Result
}

func NewAttempt(client *Client) *Attempt {
	return &Attempt{
		client:  client,
		state:   StateNotStarted,
		answers: make(map[int]interface{}),
	}
}

func (a *Attempt) State() State {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.state
}

// Result is set once the attempt is completed.
func (a *Attempt) Result() *Result {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.result
}

// Start records the respondent's name and opens the attempt.
func (a *Attempt) Start(name string) error {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateNotStarted {
		return fmt.Errorf("%w: start from %s", ErrInvalidTransition, a.state)
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return errors.New("respondent name is required")
	}
	a.name = name
	a.state = StateInProgress
	return nil
}

// Answer sets or replaces the answer to the question at index.
func (a *Attempt) Answer(index int, value interface{}) error {
	switch v := value.(type) {
	case string:
	case []string:
		value = append([]string(nil), v...)
	default:
		return ErrInvalidValue
	}

	a.mu.Lock()
	defer a.mu.Unlock()

	if a.state != StateInProgress {
		return fmt.Errorf("%w: answer while %s", ErrInvalidTransition, a.state)
	}
	a.answers[index] = value
	return nil
}

// Answers returns the entered answers ordered by question index.
func (a *Attempt) Answers() []Answer {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.snapshot()
}

func (a *Attempt) snapshot() []Answer {
	out := make([]Answer, 0, len(a.answers))
	for i, v := range a.answers {
		out = append(out, Answer{QuestionIndex: i, Value: v})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].QuestionIndex < out[j].QuestionIndex })
	return out
}

// Submit sends the attempt. On failure the attempt returns to in_progress
// with its answers intact.
func (a *Attempt) Submit(ctx context.Context) (*Result, error) {
	a.mu.Lock()
	if a.state != StateInProgress {
		state := a.state
		a.mu.Unlock()
		return nil, fmt.Errorf("%w: submit while %s", ErrInvalidTransition, state)
	}
	a.state = StateSubmitting
	req := SubmitRequest{RespondentName: a.name, Answers: a.snapshot()}
	a.mu.Unlock()

	result, err := a.client.Submit(ctx, req)

	a.mu.Lock()
	defer a.mu.Unlock()
	if err != nil {
		a.state = StateInProgress
		return nil, err
	}
	a.result = result
	a.state = StateCompleted
	return result, nil
}
