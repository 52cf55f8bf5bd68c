package main

import (
	"errors"
	"net/http"

	"github.com/fitquest/fitquest/ai"
	"github.com/fitquest/fitquest/config"
	"github.com/fitquest/fitquest/models"
	"github.com/fitquest/fitquest/routes"
	"github.com/fitquest/fitquest/store"
	"github.com/fitquest/fitquest/utils"
)

func main() {
	cfg := config.Load()

	if err := utils.InitLogger(cfg); err != nil {
		panic(err)
	}

	var st store.Store
	switch cfg.StorageDriver {
	case "memory":
		utils.Sugar.Warn("using in-memory storage, all progress is lost on restart")
		st = store.NewMemoryStore()
	default:
		db := config.InitDatabase(
			&models.User{},
			&models.DailyLogin{},
			&models.QuizAttempt{},
			&models.FitnessPlan{},
			&models.Achievement{},
		)
		st = store.NewGormStore(db)
	}

	aiClient := ai.NewClient(cfg.GeminiAPIKey, cfg.GeminiModel)
	if cfg.GeminiAPIKey == "" {
		utils.Sugar.Warn("GEMINI_API_KEY not set, quiz and quote fall back to canned content, plan generation is disabled")
	}

	r := routes.SetupRouter(st, aiClient)

	utils.Sugar.Infof("Starting server on port %s (graceful)", cfg.AppPort)
	if err := utils.GraceServer(":"+cfg.AppPort, r); err != nil && !errors.Is(err, http.ErrServerClosed) {
		utils.Sugar.Fatalf("server stopped with error: %v", err)
	}
}
