package main

import (
	"ai-quiz-backend/internal/config"
	"ai-quiz-backend/internal/handlers"
	"ai-quiz-backend/internal/logging"
	"ai-quiz-backend/internal/middleware"
	"ai-quiz-backend/internal/models"
	"ai-quiz-backend/internal/services"
	"ai-quiz-backend/internal/storage"
	"ai-quiz-backend/internal/ws"

	_ "ai-quiz-backend/docs"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

type routerDeps struct {
	cfg         *config.Config
	log         *zap.Logger
	catalog     *models.Catalog
	evaluator   *services.LLMEvaluator
	submissions *services.SubmissionService
	admin       *services.AdminService
	store       storage.Store
	hub         *ws.Hub
}

func setupRouter(d routerDeps) *gin.Engine {
	r := gin.New()
	r.Use(logging.Recovery(d.log))
	r.Use(logging.RequestLogger(d.log))
	r.Use(middleware.SecurityHeaders(d.cfg.Server.Mode != gin.ReleaseMode))

	origins := d.cfg.Server.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}
	r.Use(cors.New(cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders: []string{"Content-Disposition"},
	}))

	submitHandler := handlers.NewSubmitHandler(d.submissions, d.log)
	quizHandler := handlers.NewQuizHandler(d.catalog, d.evaluator)
	adminHandler := handlers.NewAdminHandler(d.admin, d.store, d.log)
	wsHandler := handlers.NewWSHandler(d.hub, d.log)

	limit := d.cfg.Server.SubmitLimit
	if limit <= 0 {
		limit = 10
	}
	submitLimiter := middleware.RateLimit(uint(limit), d.cfg.Server.SubmitWindow)
	verifyLimiter := middleware.RateLimit(uint(limit), d.cfg.Server.SubmitWindow)
	adminAuth := middleware.AdminAuth(d.admin)

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	r.GET("/ws/admin", adminAuth, wsHandler.HandleAdminFeed)

	api := r.Group("/api")
	{
		api.POST("/submit", submitLimiter, submitHandler.Submit)

		admin := api.Group("/admin")
		{
			admin.GET("/verify", verifyLimiter, adminHandler.Verify)
			admin.GET("/records", adminAuth, adminHandler.Records)
			admin.GET("/export", adminAuth, adminHandler.Export)
			admin.POST("/test-persistence", adminAuth, adminHandler.TestPersistence)
		}

		v1 := api.Group("/v1")
		{
			v1.POST("/submit", submitLimiter, submitHandler.Submit)
			v1.GET("/quiz", quizHandler.GetQuiz)
			v1.GET("/quiz/ai-status", quizHandler.CheckAI)
		}
	}

	return r
}
