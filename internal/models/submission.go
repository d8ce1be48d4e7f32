package models

import "time"

type Submission struct {
	RespondentName string
	Answers        []Answer
}

type WrongAnswer struct {
	Question      string `json:"question"`
	CorrectAnswer string `json:"correctAnswer"`
}

// QuestionResult is the per-question breakdown kept in the submission record.
type QuestionResult struct {
	QuestionIndex int          `json:"questionIndex"`
	Type          QuestionType `json:"type"`
	Answered      bool         `json:"answered"`
	Correct       bool         `json:"correct"`
	PointsAwarded int          `json:"pointsAwarded"`
	Points        int          `json:"points"`
	Feedback      string       `json:"feedback,omitempty"`
	Fallback      bool         `json:"fallback,omitempty"`
}

type GroupScore struct {
	GroupID     string `json:"groupId"`
	Title       string `json:"title"`
	Score       int    `json:"score"`
	TotalPoints int    `json:"totalPoints"`
	ResultText  string `json:"resultText"`
	Tier        Tier   `json:"tier"`
}

type SubmissionResult struct {
	Score            int           `json:"score"`
	TotalPoints      int           `json:"totalPoints"`
	ResultText       string        `json:"resultText"`
	Tier             Tier          `json:"tier"`
	WrongAnswers     []WrongAnswer `json:"wrongAnswers"`
	FreeTextFeedback string        `json:"freeTextFeedback"`
	GroupScores      []GroupScore  `json:"groupScores,omitempty"`
}

// SubmissionRecord is what gets handed to the persistence collaborator. The
// JSON keys match the columns the sheet webhook appends.
type SubmissionRecord struct {
	ID                  string           `json:"submissionId"`
	SubmittedAt         time.Time        `json:"submittedAt"`
	UserName            string           `json:"userName"`
	Score               int              `json:"score"`
	TotalPoints         int              `json:"totalPoints"`
	ResultText          string           `json:"resultText"`
	ObjectiveScore      int              `json:"objectiveScore"`
	ShortAnswerScore    int              `json:"shortAnswerScore"`
	ShortAnswerFeedback string           `json:"shortAnswerFeedback"`
	WrongAnswers        []WrongAnswer    `json:"wrongAnswers"`
	QuestionResults     []QuestionResult `json:"questionResults"`
	GroupScores         []GroupScore     `json:"groupScores"`
	RawAnswers          []Answer         `json:"rawAnswers"`
}
