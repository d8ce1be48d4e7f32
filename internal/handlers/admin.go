package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"ai-quiz-backend/internal/models"
	"ai-quiz-backend/internal/services"
	"ai-quiz-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type AdminHandler struct {
	admin    *services.AdminService
	reader   storage.Reader
	recorder storage.Recorder
	log      *zap.Logger
	now      func() time.Time
}

func NewAdminHandler(admin *services.AdminService, store storage.Store, log *zap.Logger) *AdminHandler {
	return &AdminHandler{
		admin:    admin,
		reader:   store,
		recorder: store,
		log:      log,
		now:      time.Now,
	}
}

type VerifyResponse struct {
	Valid       bool       `json:"valid" example:"true"`
	AccessToken string     `json:"accessToken,omitempty" example:"eyJhbGciOiJIUzI1NiIs..."`
	ExpiresAt   *time.Time `json:"expiresAt,omitempty"`
	Error       string     `json:"error,omitempty"`
}

type PersistenceTestResponse struct {
	Success  bool                     `json:"success"`
	Status   string                   `json:"status" example:"saved"`
	Error    string                   `json:"error,omitempty"`
	TestData *models.SubmissionRecord `json:"testData"`
}

// Verify godoc
// @Summary      Verify the admin token
// @Description  Checks the admin token and returns a short-lived session token for the dashboard
// @Tags         admin
// @Produce      json
// @Param        token query string true "Admin token"
// @Success      200 {object} VerifyResponse
// @Failure      401 {object} VerifyResponse
// @Router       /api/admin/verify [get]
func (h *AdminHandler) Verify(c *gin.Context) {
	token := c.Query("token")
	if !h.admin.CheckToken(token) {
		c.JSON(http.StatusUnauthorized, VerifyResponse{Valid: false, Error: "Invalid token"})
		return
	}

	resp := VerifyResponse{Valid: true}
	access, expires, err := h.admin.IssueToken(token)
	switch {
	case err == nil:
		resp.AccessToken = access
		resp.ExpiresAt = &expires
	case errors.Is(err, services.ErrNoSessions):
	default:
		h.log.Error("Failed to issue admin session", zap.Error(err))
	}
	c.JSON(http.StatusOK, resp)
}

// Records godoc
// @Summary      List submissions
// @Tags         admin
// @Produce      json
// @Param        token query string false "Admin token"
// @Security     BearerAuth
// @Success      200 {object} map[string]interface{}
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/admin/records [get]
func (h *AdminHandler) Records(c *gin.Context) {
	data, err := h.reader.List(c.Request.Context())
	if err == nil && !json.Valid(data) {
		err = errors.New("persistence returned a non-JSON listing")
	}
	if err != nil {
		h.log.Error("Failed to fetch records", zap.Error(err))
		msg := "Failed to fetch records"
		if errors.Is(err, storage.ErrNotConfigured) {
			msg = err.Error()
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
		return
	}

	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// Export godoc
// @Summary      Export submissions as CSV
// @Tags         admin
// @Produce      text/csv
// @Param        token query string false "Admin token"
// @Security     BearerAuth
// @Success      200 {file} file
// @Failure      401 {object} ErrorResponse
// @Failure      500 {object} ErrorResponse
// @Router       /api/admin/export [get]
func (h *AdminHandler) Export(c *gin.Context) {
	data, err := h.reader.Export(c.Request.Context())
	if err != nil {
		h.log.Error("Failed to export records", zap.Error(err))
		msg := "Failed to export data"
		if errors.Is(err, storage.ErrNotConfigured) {
			msg = err.Error()
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
		return
	}

	filename := fmt.Sprintf("ai-quiz-results-%s.csv", h.now().UTC().Format("2006-01-02"))
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=\"%s\"", filename))
	c.Data(http.StatusOK, "text/csv; charset=utf-8", data)
}

// TestPersistence godoc
// @Summary      Write a sample record
// @Description  Sends a fixed sample submission through the configured persistence to check connectivity
// @Tags         admin
// @Produce      json
// @Param        token query string false "Admin token"
// @Security     BearerAuth
// @Success      200 {object} PersistenceTestResponse
// @Failure      401 {object} ErrorResponse
// @Router       /api/admin/test-persistence [post]
func (h *AdminHandler) TestPersistence(c *gin.Context) {
	rec := sampleRecord(h.now())
	res := h.recorder.Save(c.Request.Context(), rec)

	resp := PersistenceTestResponse{
		Success:  res.Status == storage.SaveOK,
		Status:   res.Status.String(),
		TestData: rec,
	}
	if res.Err != nil {
		resp.Error = res.Err.Error()
	}
	h.log.Info("Persistence test", zap.String("status", resp.Status), zap.String("error", resp.Error))
	c.JSON(http.StatusOK, resp)
}

func sampleRecord(now time.Time) *models.SubmissionRecord {
	return &models.SubmissionRecord{
		ID:                  uuid.NewString(),
		SubmittedAt:         now.UTC(),
		UserName:            "Test user",
		Score:               8,
		TotalPoints:         10,
		ResultText:          models.TierExcellent.Label(),
		ObjectiveScore:      6,
		ShortAnswerScore:    2,
		ShortAnswerFeedback: "Test feedback",
		WrongAnswers:        []models.WrongAnswer{{Question: "Test question", CorrectAnswer: "Test answer"}},
		QuestionResults:     []models.QuestionResult{},
		GroupScores:         []models.GroupScore{},
		RawAnswers:          []models.Answer{{QuestionIndex: 0, Value: models.TextValue("Test answer")}},
	}
}
