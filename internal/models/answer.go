package models

import (
	"bytes"
	"encoding/json"
	"errors"
)

var ErrMalformedAnswer = errors.New("answer value must be a string or an array of strings")

type ValueKind int

const (
	ValueAbsent ValueKind = iota
	ValueText
	ValueList
)

// AnswerValue is a respondent's raw input: a single label or text, or a set
// of labels. The JSON shape is resolved once when decoding.
type AnswerValue struct {
	Kind ValueKind
	Text string
	List []string
}

func TextValue(s string) AnswerValue        { return AnswerValue{Kind: ValueText, Text: s} }
func ListValue(labels ...string) AnswerValue { return AnswerValue{Kind: ValueList, List: labels} }

func (v *AnswerValue) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = AnswerValue{}
		return nil
	}
	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return ErrMalformedAnswer
		}
		*v = TextValue(s)
		return nil
	case '[':
		var list []string
		if err := json.Unmarshal(data, &list); err != nil {
			return ErrMalformedAnswer
		}
		if list == nil {
			list = []string{}
		}
		*v = AnswerValue{Kind: ValueList, List: list}
		return nil
	}
	return ErrMalformedAnswer
}

func (v AnswerValue) MarshalJSON() ([]byte, error) {
	switch v.Kind {
	case ValueText:
		return json.Marshal(v.Text)
	case ValueList:
		if v.List == nil {
			return []byte("[]"), nil
		}
		return json.Marshal(v.List)
	}
	return []byte("null"), nil
}

// Selection returns the value as a label set. A scalar counts as a set of one.
func (v AnswerValue) Selection() []string {
	switch v.Kind {
	case ValueText:
		return []string{v.Text}
	case ValueList:
		return v.List
	}
	return nil
}

type Answer struct {
	QuestionIndex int         `json:"questionIndex"`
	Value         AnswerValue `json:"value"`
}

// AnswerSheet maps a global question index to the submitted value.
type AnswerSheet map[int]AnswerValue

// NewAnswerSheet indexes answers by question. Indexes outside [0, size) and
// absent values are dropped; a later answer for the same index replaces an
// earlier one.
func NewAnswerSheet(answers []Answer, size int) AnswerSheet {
	sheet := make(AnswerSheet, len(answers))
	for _, a := range answers {
		if a.QuestionIndex < 0 || a.QuestionIndex >= size || a.Value.Kind == ValueAbsent {
			continue
		}
		sheet[a.QuestionIndex] = a.Value
	}
	return sheet
}
