package handlers

import "ai-quiz-backend/internal/models"

type ErrorResponse struct {
	Error string `json:"error" example:"something went wrong"`
}

// Type aliases so swag can resolve models in annotations.
type SubmissionResult = models.SubmissionResult
type WrongAnswer = models.WrongAnswer
type GroupScore = models.GroupScore
