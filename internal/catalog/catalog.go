package catalog

import (
	_ "embed"
	"errors"
	"fmt"
	"os"

	"ai-quiz-backend/internal/models"

	"gopkg.in/yaml.v3"
)

//go:embed default.yaml
var defaultCatalog []byte

// Default returns the built-in catalog.
func Default() (*models.Catalog, error) {
	return Parse(defaultCatalog)
}

// Load reads and validates the catalog YAML at path. An empty path loads
// the built-in catalog.
func Load(path string) (*models.Catalog, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (*models.Catalog, error) {
	var c models.Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to unmarshal catalog YAML: %w", err)
	}
	if err := Validate(&c); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate enforces the catalog invariants. Zero-point groups are rejected
// here so that tier classification never sees an empty maximum.
func Validate(c *models.Catalog) error {
	if len(c.Groups) == 0 {
		return errors.New("catalog must have at least one group")
	}
	ids := make(map[string]bool)
	index := 0
	for gi, g := range c.Groups {
		if g.ID == "" {
			return fmt.Errorf("group %d: id is required", gi)
		}
		if ids[g.ID] {
			return fmt.Errorf("group %q: duplicate id", g.ID)
		}
		ids[g.ID] = true
		if len(g.Questions) == 0 {
			return fmt.Errorf("group %q: must have at least one question", g.ID)
		}
		for _, q := range g.Questions {
			if err := validateQuestion(q); err != nil {
				return fmt.Errorf("question %d: %w", index, err)
			}
			index++
		}
	}
	return nil
}

func validateQuestion(q models.Question) error {
	if q.Prompt == "" {
		return errors.New("prompt is required")
	}
	if q.Points <= 0 {
		return errors.New("points must be positive")
	}

	switch q.Type {
	case models.QuestionTypeSingleChoice:
		if len(q.Options) < 2 {
			return errors.New("single choice must have at least 2 options")
		}
		if q.Answer == "" || len(q.Answers) > 0 {
			return errors.New("single choice must have exactly one answer")
		}
		if !contains(q.Labels(), q.Answer) {
			return fmt.Errorf("answer %q is not an option label", q.Answer)
		}

	case models.QuestionTypeMultiChoice:
		if len(q.Options) < 2 {
			return errors.New("multiple choice must have at least 2 options")
		}
		if q.Answer != "" || len(q.Answers) == 0 {
			return errors.New("multiple choice must have a non-empty answer set")
		}
		labels := q.Labels()
		seen := make(map[string]bool)
		for _, a := range q.Answers {
			if !contains(labels, a) {
				return fmt.Errorf("answer %q is not an option label", a)
			}
			if seen[a] {
				return fmt.Errorf("answer %q listed twice", a)
			}
			seen[a] = true
		}

	case models.QuestionTypeFreeText:
		if q.Answer != "" || len(q.Answers) > 0 || len(q.Options) > 0 {
			return errors.New("free text must not define options or answers")
		}
		if q.Rubric == nil || q.Rubric.Full == "" || q.Rubric.Partial == "" || q.Rubric.None == "" {
			return errors.New("free text must define all three rubric tiers")
		}
		if q.Points < 2 {
			return errors.New("free text must be worth at least 2 points")
		}

	default:
		return fmt.Errorf("unknown question type: %q", q.Type)
	}
	return nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
