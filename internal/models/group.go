package models

type QuestionGroup struct {
	ID          string     `yaml:"id" json:"groupId"`
	Title       string     `yaml:"title" json:"title"`
	Description string     `yaml:"description" json:"description"`
	Icon        string     `yaml:"icon,omitempty" json:"icon,omitempty"`
	Questions   []Question `yaml:"questions" json:"questions"`
}

func (g QuestionGroup) TotalPoints() int {
	total := 0
	for _, q := range g.Questions {
		total += q.Points
	}
	return total
}
