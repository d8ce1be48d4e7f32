package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"ai-quiz-backend/internal/config"
	"ai-quiz-backend/internal/services"

	"github.com/gin-gonic/gin"
)

func TestAdminAuth(t *testing.T) {
	gin.SetMode(gin.TestMode)
	admin := services.NewAdminService(config.AdminConfig{Token: "s3cret", JWTSecret: "signing"})
	session, _, err := admin.IssueToken("s3cret")
	if err != nil {
		t.Fatalf("IssueToken: %v", err)
	}

	r := gin.New()
	r.GET("/admin", AdminAuth(admin), func(c *gin.Context) {
		c.String(http.StatusOK, "ok")
	})

	tests := []struct {
		name   string
		url    string
		header string
		want   int
	}{
		{"query token", "/admin?token=s3cret", "", http.StatusOK},
		{"bearer session", "/admin", "Bearer " + session, http.StatusOK},
		{"wrong query token", "/admin?token=nope", "", http.StatusUnauthorized},
		{"no credentials", "/admin", "", http.StatusUnauthorized},
		{"raw token as bearer", "/admin", "Bearer s3cret", http.StatusUnauthorized},
		{"malformed header", "/admin", "Token " + session, http.StatusUnauthorized},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.url, nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)
			if w.Code != tt.want {
				t.Fatalf("status = %d, want %d (body %s)", w.Code, tt.want, w.Body.String())
			}
			if tt.want == http.StatusUnauthorized && w.Body.String() != `{"error":"Unauthorized"}` {
				t.Fatalf("body = %s", w.Body.String())
			}
		})
	}
}

func TestRateLimit(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/submit", RateLimit(2, time.Minute), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	codes := make([]int, 0, 3)
	for i := 0; i < 3; i++ {
		w := httptest.NewRecorder()
		r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/submit", nil))
		codes = append(codes, w.Code)
	}
	if codes[0] != http.StatusOK || codes[1] != http.StatusOK || codes[2] != http.StatusTooManyRequests {
		t.Fatalf("codes = %v", codes)
	}
}
