package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/fitquest/fitquest/ai"
	"github.com/fitquest/fitquest/config"
	"github.com/fitquest/fitquest/controllers"
	"github.com/fitquest/fitquest/middleware"
	"github.com/fitquest/fitquest/store"
	"github.com/fitquest/fitquest/utils"
)

// SetupRouter wires routes, middlewares, and controllers.
func SetupRouter(st store.Store, aiClient *ai.Client) *gin.Engine {
	cfg := config.Get()
	switch strings.ToLower(cfg.GinMode) {
	case "debug":
		gin.SetMode(gin.DebugMode)
	case "test":
		gin.SetMode(gin.TestMode)
	default:
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestID())

	// Access log goes to its own rotated file, separate from the app log.
	gl, err := utils.NewRollingFileLogger(cfg.GinPath, cfg.LogLevel, cfg.LogMaxSizeMB, cfg.LogMaxBackups, cfg.LogMaxAgeDays, cfg.LogCompress)
	if err == nil {
		r.Use(utils.Ginzap(gl))
		r.Use(utils.RecoveryWithZap(gl))
	} else {
		r.Use(gin.Recovery())
	}

	corsCfg := cors.Config{
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", middleware.RequestIDHeader},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}
	if len(cfg.AllowedOrigins) == 1 && cfg.AllowedOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = cfg.AllowedOrigins
	}
	r.Use(cors.New(corsCfg))

	r.GET("/health", func(ctx *gin.Context) {
		utils.Success(ctx, gin.H{"status": "ok"})
	})

	authController := controllers.NewAuthController(st)
	userController := controllers.NewUserController(st)
	quizController := controllers.NewQuizController(st, aiClient)
	leaderboardController := controllers.NewLeaderboardController(st)
	planController := controllers.NewPlanController(st, aiClient)
	quoteController := controllers.NewQuoteController(aiClient)

	api := r.Group("/api/v1")

	authGroup := api.Group("/auth")
	authGroup.Use(middleware.RateLimitMiddleware())
	authGroup.POST("/signup", authController.Signup)
	authGroup.POST("/login", authController.Login)

	usersGroup := api.Group("/users")
	usersGroup.GET("/profile", userController.Profile)
	usersGroup.POST("/daily-login", middleware.RateLimitMiddleware(), userController.DailyLogin)

	quizGroup := api.Group("/quiz")
	quizGroup.GET("/generate", quizController.Generate)
	quizGroup.POST("/submit", middleware.RateLimitMiddleware(), quizController.Submit)

	api.GET("/leaderboard", leaderboardController.Get)

	plansGroup := api.Group("/plans")
	plansGroup.POST("/generate", middleware.RateLimitMiddleware(), planController.Generate)
	plansGroup.GET("/:id", planController.Get)

	api.GET("/quote", quoteController.Get)

	r.NoRoute(func(ctx *gin.Context) {
		if strings.HasPrefix(ctx.Request.URL.Path, "/api/") {
			utils.Error(ctx, http.StatusNotFound, 40400, "api route not found")
			return
		}
		ctx.JSON(http.StatusNotFound, gin.H{"message": "not found"})
	})

	return r
}
