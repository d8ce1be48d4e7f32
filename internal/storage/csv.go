package storage

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
	"time"

	"ai-quiz-backend/internal/models"
)

// columns are the stored cells of one submission, in sheet order.
var columns = []string{
	"submittedAt",
	"userName",
	"score",
	"totalPoints",
	"resultText",
	"objectiveScore",
	"shortAnswerScore",
	"shortAnswerFeedback",
	"wrongAnswers",
	"rawAnswers",
	"groupScores",
}

// derivedColumns are appended on export only.
var derivedColumns = []string{
	"detailedAnswers",
	"wrongAnswerAnalysis",
	"group1Score",
	"group1Total",
	"group1Result",
	"group2Score",
	"group2Total",
	"group2Result",
}

const unparseable = "unparseable"

func rowCells(r models.SubmissionRow) []string {
	return []string{
		r.SubmittedAt.UTC().Format(time.RFC3339),
		r.UserName,
		strconv.Itoa(r.Score),
		strconv.Itoa(r.TotalPoints),
		r.ResultText,
		strconv.Itoa(r.ObjectiveScore),
		strconv.Itoa(r.ShortAnswerScore),
		r.ShortAnswerFeedback,
		r.WrongAnswers,
		r.RawAnswers,
		r.GroupScores,
	}
}

// WriteCSV renders rows with the stored columns followed by the derived
// summary columns.
func WriteCSV(rows []models.SubmissionRow) ([]byte, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	header := append(append([]string{}, columns...), derivedColumns...)
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, r := range rows {
		if err := w.Write(append(rowCells(r), derivedCells(r)...)); err != nil {
			return nil, err
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("write csv: %w", err)
	}
	return buf.Bytes(), nil
}

func derivedCells(r models.SubmissionRow) []string {
	cells := make([]string, len(derivedColumns))

	var answers []models.Answer
	if err := json.Unmarshal([]byte(r.RawAnswers), &answers); err != nil {
		cells[0] = unparseable
	} else {
		parts := make([]string, 0, len(answers))
		for _, a := range answers {
			parts = append(parts, fmt.Sprintf("Q%d: %s", a.QuestionIndex+1, strings.Join(a.Value.Selection(), ", ")))
		}
		cells[0] = strings.Join(parts, " | ")
	}

	var wrong []models.WrongAnswer
	if err := json.Unmarshal([]byte(r.WrongAnswers), &wrong); err != nil {
		cells[1] = unparseable
	} else {
		parts := make([]string, 0, len(wrong))
		for _, w := range wrong {
			parts = append(parts, fmt.Sprintf("%s (correct answer: %s)", w.Question, w.CorrectAnswer))
		}
		cells[1] = strings.Join(parts, " | ")
	}

	var groups []models.GroupScore
	if err := json.Unmarshal([]byte(r.GroupScores), &groups); err == nil {
		for i := 0; i < 2 && i < len(groups); i++ {
			cells[2+i*3] = strconv.Itoa(groups[i].Score)
			cells[3+i*3] = strconv.Itoa(groups[i].TotalPoints)
			cells[4+i*3] = groups[i].ResultText
		}
	}

	return cells
}
