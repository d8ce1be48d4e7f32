package models

import "strings"

type QuestionType string

const (
	QuestionTypeSingleChoice QuestionType = "single-choice"
	QuestionTypeMultiChoice  QuestionType = "multi-choice"
	QuestionTypeFreeText     QuestionType = "free-text"
)

func (t QuestionType) Objective() bool {
	return t == QuestionTypeSingleChoice || t == QuestionTypeMultiChoice
}

// Question is one evaluable catalog item. Answer is set for single-choice,
// Answers for multi-choice and Rubric for free-text.
type Question struct {
	Type    QuestionType `yaml:"type" json:"type"`
	Prompt  string       `yaml:"prompt" json:"prompt"`
	Options []string     `yaml:"options,omitempty" json:"options,omitempty"`
	Answer  string       `yaml:"answer,omitempty" json:"-"`
	Answers []string     `yaml:"answers,omitempty" json:"-"`
	Points  int          `yaml:"points" json:"points"`
	Rubric  *Rubric      `yaml:"rubric,omitempty" json:"-"`
}

// Rubric describes the three grading tiers of a free-text question.
type Rubric struct {
	Topic   string `yaml:"topic"`
	Full    string `yaml:"full"`
	Partial string `yaml:"partial"`
	None    string `yaml:"none"`
}

// CorrectAnswerText renders the correct answer the way it is shown in the
// wrong-answer list.
func (q Question) CorrectAnswerText() string {
	if q.Type == QuestionTypeMultiChoice {
		return strings.Join(q.Answers, ", ")
	}
	return q.Answer
}

// OptionLabel returns the label of an option text: "A. RAG" -> "A".
// Options without a "." separator are their own label.
func OptionLabel(option string) string {
	if i := strings.Index(option, "."); i > 0 {
		return strings.TrimSpace(option[:i])
	}
	return strings.TrimSpace(option)
}

func (q Question) Labels() []string {
	labels := make([]string, len(q.Options))
	for i, o := range q.Options {
		labels[i] = OptionLabel(o)
	}
	return labels
}
