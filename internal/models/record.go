package models

import "time"

// SubmissionRow is one appended row of the local submissions table. Nested
// values are stored JSON-encoded, one cell each.
type SubmissionRow struct {
	ID                  uint      `gorm:"primaryKey" json:"-"`
	SubmissionID        string    `gorm:"size:36;uniqueIndex" json:"submissionId"`
	SubmittedAt         time.Time `gorm:"index" json:"submittedAt"`
	UserName            string    `gorm:"size:255;not null" json:"userName"`
	Score               int       `gorm:"not null;default:0" json:"score"`
	TotalPoints         int       `gorm:"not null;default:0" json:"totalPoints"`
	ResultText          string    `gorm:"size:64" json:"resultText"`
	ObjectiveScore      int       `gorm:"not null;default:0" json:"objectiveScore"`
	ShortAnswerScore    int       `gorm:"not null;default:0" json:"shortAnswerScore"`
	ShortAnswerFeedback string    `gorm:"type:text" json:"shortAnswerFeedback"`
	WrongAnswers        string    `gorm:"type:text" json:"wrongAnswers"`
	QuestionResults     string    `gorm:"type:text" json:"questionResults"`
	GroupScores         string    `gorm:"type:text" json:"groupScores"`
	RawAnswers          string    `gorm:"type:text" json:"rawAnswers"`
}

func (SubmissionRow) TableName() string {
	return "submissions"
}
