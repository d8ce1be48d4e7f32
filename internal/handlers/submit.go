package handlers

import (
	"errors"
	"net/http"

	"ai-quiz-backend/internal/models"
	"ai-quiz-backend/internal/services"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type SubmitHandler struct {
	submissionService *services.SubmissionService
	log               *zap.Logger
}

func NewSubmitHandler(submissionService *services.SubmissionService, log *zap.Logger) *SubmitHandler {
	return &SubmitHandler{submissionService: submissionService, log: log}
}

// SubmitAnswer is one entry of the answers list. Older clients send the
// value under "answer".
type SubmitAnswer struct {
	QuestionIndex *int               `json:"questionIndex" example:"0"`
	Value         models.AnswerValue `json:"value" swaggertype:"string" example:"A"`
	Answer        models.AnswerValue `json:"answer,omitempty" swaggertype:"string"`
}

// SubmitRequest is the submission body. Older clients send the name as
// "userName".
type SubmitRequest struct {
	RespondentName string         `json:"respondentName" example:"Ann"`
	UserName       string         `json:"userName,omitempty"`
	Answers        []SubmitAnswer `json:"answers"`
}

// toSubmission resolves the aliases. Entries without a questionIndex point
// at no catalog entry and are dropped like any other unknown index.
func (r SubmitRequest) toSubmission() models.Submission {
	sub := models.Submission{RespondentName: r.RespondentName}
	if sub.RespondentName == "" {
		sub.RespondentName = r.UserName
	}
	if r.Answers == nil {
		return sub
	}

	sub.Answers = make([]models.Answer, 0, len(r.Answers))
	for _, a := range r.Answers {
		if a.QuestionIndex == nil {
			continue
		}
		value := a.Value
		if value.Kind == models.ValueAbsent {
			value = a.Answer
		}
		sub.Answers = append(sub.Answers, models.Answer{QuestionIndex: *a.QuestionIndex, Value: value})
	}
	return sub
}

// Submit godoc
// @Summary      Submit quiz answers
// @Description  Scores a completed attempt, grades free-text answers and records the result
// @Tags         quiz
// @Accept       json
// @Produce      json
// @Param        request body SubmitRequest true "Respondent name and answers"
// @Success      200 {object} SubmissionResult
// @Failure      400 {object} ErrorResponse
// @Failure      429 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/submit [post]
func (h *SubmitHandler) Submit(c *gin.Context) {
	var req SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		msg := "request body must be a JSON object with respondentName and answers"
		if errors.Is(err, models.ErrMalformedAnswer) {
			msg = err.Error()
		}
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: msg})
		return
	}

	result, err := h.submissionService.Submit(c.Request.Context(), req.toSubmission())
	if err != nil {
		if errors.Is(err, services.ErrValidation) {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		h.log.Error("Submission failed", zap.Error(err))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
		return
	}

	c.JSON(http.StatusOK, result)
}
