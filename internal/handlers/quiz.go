package handlers

import (
	"net/http"

	"ai-quiz-backend/internal/models"
	"ai-quiz-backend/internal/services"

	"github.com/gin-gonic/gin"
)

type QuizHandler struct {
	view      QuizView
	evaluator *services.LLMEvaluator
}

// QuizView is the public catalog: everything needed to render the quiz and
// nothing that gives away the answers.
type QuizView struct {
	Title       string      `json:"title"`
	TotalPoints int         `json:"totalPoints"`
	Groups      []GroupView `json:"groups"`
}

type GroupView struct {
	GroupID     string         `json:"groupId"`
	Title       string         `json:"title"`
	Description string         `json:"description,omitempty"`
	Icon        string         `json:"icon,omitempty"`
	TotalPoints int            `json:"totalPoints"`
	Questions   []QuestionView `json:"questions"`
}

type QuestionView struct {
	QuestionIndex int                 `json:"questionIndex"`
	Type          models.QuestionType `json:"type" swaggertype:"string" example:"single-choice"`
	Prompt        string              `json:"prompt"`
	Options       []string            `json:"options,omitempty"`
	Points        int                 `json:"points"`
}

func NewQuizView(catalog *models.Catalog) QuizView {
	view := QuizView{Title: catalog.Title, TotalPoints: catalog.TotalPoints()}
	offsets := catalog.GroupOffsets()
	for gi, g := range catalog.Groups {
		gv := GroupView{
			GroupID:     g.ID,
			Title:       g.Title,
			Description: g.Description,
			Icon:        g.Icon,
			TotalPoints: g.TotalPoints(),
		}
		for qi, q := range g.Questions {
			gv.Questions = append(gv.Questions, QuestionView{
				QuestionIndex: offsets[gi] + qi,
				Type:          q.Type,
				Prompt:        q.Prompt,
				Options:       q.Options,
				Points:        q.Points,
			})
		}
		view.Groups = append(view.Groups, gv)
	}
	return view
}

func NewQuizHandler(catalog *models.Catalog, evaluator *services.LLMEvaluator) *QuizHandler {
	return &QuizHandler{view: NewQuizView(catalog), evaluator: evaluator}
}

// GetQuiz godoc
// @Summary      Get the quiz
// @Description  Returns the question catalog grouped into pages, without answers or rubrics
// @Tags         quiz
// @Produce      json
// @Success      200 {object} QuizView
// @Router       /api/v1/quiz [get]
func (h *QuizHandler) GetQuiz(c *gin.Context) {
	c.JSON(http.StatusOK, h.view)
}

// CheckAI godoc
// @Summary      Check if AI grading is available
// @Tags         quiz
// @Produce      json
// @Success      200 {object} map[string]interface{}
// @Router       /api/v1/quiz/ai-status [get]
func (h *QuizHandler) CheckAI(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"available": h.evaluator.IsAvailable()})
}
