package main

import (
	"fmt"
	"os"

	"ai-quiz-backend/internal/catalog"
	"ai-quiz-backend/internal/config"
	"ai-quiz-backend/internal/database"
	"ai-quiz-backend/internal/logging"
	"ai-quiz-backend/internal/services"
	"ai-quiz-backend/internal/storage"
	"ai-quiz-backend/internal/telegram"
	"ai-quiz-backend/internal/ws"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// @title           AI Quiz API
// @version         1.0
// @description     Quiz backend with objective scoring, AI-graded free-text answers and an admin export
// @host            localhost:8080
// @BasePath        /

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter "Bearer {accessToken}" from /api/admin/verify

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.New(cfg.Logging)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	quiz, err := catalog.Load(cfg.Quiz.CatalogPath)
	if err != nil {
		log.Fatal("Failed to load question catalog", zap.Error(err))
	}
	log.Info("Question catalog loaded",
		zap.String("title", quiz.Title),
		zap.Int("questions", quiz.Len()),
		zap.Int("total_points", quiz.TotalPoints()),
	)

	db, err := database.Connect(cfg.Persistence, log)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	if db != nil {
		if err := database.AutoMigrate(db); err != nil {
			log.Fatal("Failed to migrate database", zap.Error(err))
		}
	}

	store, err := storage.New(cfg.Persistence, cfg.Admin.Token, db, log)
	if err != nil {
		log.Fatal("Failed to set up persistence", zap.Error(err))
	}

	hub := ws.NewHub(log)
	notifiers := []services.Notifier{hub}
	if cfg.Telegram.BotToken != "" && cfg.Telegram.ChatID != 0 {
		notifiers = append(notifiers, telegram.NewNotifier(telegram.NewClient(cfg.Telegram.BotToken), cfg.Telegram.ChatID))
	} else {
		log.Info("Telegram notifications disabled")
	}

	evaluator := services.NewLLMEvaluator(cfg.LLM, log)
	if !evaluator.IsAvailable() {
		log.Warn("LLM API key not set, free-text answers will receive the fallback score")
	}
	submissionService := services.NewSubmissionService(quiz, evaluator, store, log, notifiers...)
	adminService := services.NewAdminService(cfg.Admin)
	if !adminService.Enabled() {
		log.Warn("Admin token not set, admin endpoints will reject every request")
	}

	gin.SetMode(cfg.Server.Mode)
	r := setupRouter(routerDeps{
		cfg:         cfg,
		log:         log,
		catalog:     quiz,
		evaluator:   evaluator,
		submissions: submissionService,
		admin:       adminService,
		store:       store,
		hub:         hub,
	})

	log.Info("Server starting", zap.String("port", cfg.Server.Port))
	if err := r.Run(":" + cfg.Server.Port); err != nil {
		log.Fatal("Failed to start server", zap.Error(err))
	}
}
