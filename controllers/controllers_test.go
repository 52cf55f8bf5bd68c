package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fitquest/fitquest/ai"
	"github.com/fitquest/fitquest/config"
	"github.com/fitquest/fitquest/store"
	"github.com/fitquest/fitquest/utils"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := utils.InitLogger(config.Get()); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

// newTestRouter wires the API routes against an in-memory store and an
// unconfigured AI client, mirroring the production route table without the
// access log and rate limiting.
func newTestRouter(st store.Store) *gin.Engine {
	aiClient := ai.NewClient("", "")

	r := gin.New()
	api := r.Group("/api/v1")

	authController := NewAuthController(st)
	userController := NewUserController(st)
	quizController := NewQuizController(st, aiClient)
	leaderboardController := NewLeaderboardController(st)
	planController := NewPlanController(st, aiClient)
	quoteController := NewQuoteController(aiClient)

	api.POST("/auth/signup", authController.Signup)
	api.POST("/auth/login", authController.Login)
	api.GET("/users/profile", userController.Profile)
	api.POST("/users/daily-login", userController.DailyLogin)
	api.GET("/quiz/generate", quizController.Generate)
	api.POST("/quiz/submit", quizController.Submit)
	api.GET("/leaderboard", leaderboardController.Get)
	api.POST("/plans/generate", planController.Generate)
	api.GET("/plans/:id", planController.Get)
	api.GET("/quote", quoteController.Get)
	return r
}

type envelope struct {
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) (int, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	return w.Code, env
}

func signupUser(t *testing.T, r *gin.Engine, name string) uint {
	t.Helper()
	status, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/signup", gin.H{
		"username": name,
		"email":    name + "@example.com",
		"fullName": name,
	})
	require.Equal(t, http.StatusCreated, status)

	var data struct {
		User struct {
			ID uint `json:"id"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.NotZero(t, data.User.ID)
	return data.User.ID
}

func TestSignupAndLogin(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())

	status, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/signup", gin.H{
		"username": "alice",
		"email":    "alice@example.com",
		"fullName": "Alice",
	})
	require.Equal(t, http.StatusCreated, status)

	var created struct {
		User struct {
			ID    uint `json:"id"`
			XP    int  `json:"xp"`
			Level int  `json:"level"`
		} `json:"user"`
		Stats struct {
			TotalQuizzes   int `json:"totalQuizzes"`
			TotalLoginDays int `json:"totalLoginDays"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &created))
	assert.Equal(t, 0, created.User.XP)
	assert.Equal(t, 1, created.User.Level)
	assert.Zero(t, created.Stats.TotalQuizzes)

	status, _ = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "alice@example.com"})
	assert.Equal(t, http.StatusOK, status)

	status, env = doJSON(t, r, http.MethodPost, "/api/v1/auth/login", gin.H{"email": "nobody@example.com"})
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, 40401, env.Code)
}

func TestSignupValidation(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())

	status, _ := doJSON(t, r, http.MethodPost, "/api/v1/auth/signup", gin.H{"username": "alice"})
	assert.Equal(t, http.StatusBadRequest, status)

	signupUser(t, r, "alice")
	status, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/signup", gin.H{
		"username": "alice",
		"email":    "alice2@example.com",
	})
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, 40901, env.Code)
}

func TestGuestSignupGeneratesIdentity(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())

	status, env := doJSON(t, r, http.MethodPost, "/api/v1/auth/signup", gin.H{"isGuest": true})
	require.Equal(t, http.StatusCreated, status)

	var data struct {
		User struct {
			Username string `json:"username"`
			Email    string `json:"email"`
			IsGuest  bool   `json:"isGuest"`
		} `json:"user"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.True(t, data.User.IsGuest)
	assert.Contains(t, data.User.Username, "guest-")
	assert.Contains(t, data.User.Email, "@guest.fitquest.local")
}

func TestProfileLookup(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())
	id := signupUser(t, r, "alice")

	status, _ := doJSON(t, r, http.MethodGet, fmt.Sprintf("/api/v1/users/profile?id=%d", id), nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, r, http.MethodGet, "/api/v1/users/profile?email=alice@example.com", nil)
	assert.Equal(t, http.StatusOK, status)

	status, _ = doJSON(t, r, http.MethodGet, "/api/v1/users/profile", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, r, http.MethodGet, "/api/v1/users/profile?id=abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, r, http.MethodGet, "/api/v1/users/profile?id=999", nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestDailyLoginFlow(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())
	id := signupUser(t, r, "alice")

	status, env := doJSON(t, r, http.MethodPost, "/api/v1/users/daily-login", gin.H{"userId": id})
	require.Equal(t, http.StatusOK, status)

	var receipt struct {
		XPEarned           int  `json:"xpEarned"`
		CurrentStreak      int  `json:"currentStreak"`
		TotalXP            int  `json:"totalXp"`
		AlreadyLoggedToday bool `json:"alreadyLoggedToday"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	assert.Equal(t, 15, receipt.XPEarned)
	assert.Equal(t, 1, receipt.CurrentStreak)
	assert.False(t, receipt.AlreadyLoggedToday)

	// Same-day replay succeeds without a second award.
	status, env = doJSON(t, r, http.MethodPost, "/api/v1/users/daily-login", gin.H{"userId": id})
	require.Equal(t, http.StatusOK, status)
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	assert.True(t, receipt.AlreadyLoggedToday)
	assert.Equal(t, 0, receipt.XPEarned)
	assert.Equal(t, 15, receipt.TotalXP)
}

func TestDailyLoginValidation(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())

	status, _ := doJSON(t, r, http.MethodPost, "/api/v1/users/daily-login", gin.H{})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, r, http.MethodPost, "/api/v1/users/daily-login", gin.H{"userId": 999})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestQuizGenerateServesFallback(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())

	status, env := doJSON(t, r, http.MethodGet, "/api/v1/quiz/generate", nil)
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Questions []struct {
			Question      string   `json:"question"`
			Options       []string `json:"options"`
			CorrectAnswer int      `json:"correctAnswer"`
		} `json:"questions"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	require.Len(t, data.Questions, 10)
	for _, q := range data.Questions {
		assert.NotEmpty(t, q.Question)
		assert.Len(t, q.Options, 4)
		assert.GreaterOrEqual(t, q.CorrectAnswer, 0)
		assert.Less(t, q.CorrectAnswer, 4)
	}
}

func TestQuizSubmit(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())
	id := signupUser(t, r, "alice")

	status, env := doJSON(t, r, http.MethodPost, "/api/v1/quiz/submit", gin.H{
		"userId":         id,
		"score":          9,
		"totalQuestions": 10,
		"quizData":       gin.H{"answers": []int{0, 1, 2}},
	})
	require.Equal(t, http.StatusOK, status)

	var receipt struct {
		XPEarned int      `json:"xpEarned"`
		Accuracy float64  `json:"accuracy"`
		TotalXP  int      `json:"totalXp"`
		Bonuses  []string `json:"bonuses"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &receipt))
	assert.Equal(t, 95, receipt.XPEarned)
	assert.Equal(t, 90.0, receipt.Accuracy)
	assert.Equal(t, 95, receipt.TotalXP)
	assert.Len(t, receipt.Bonuses, 2)
}

func TestQuizSubmitValidation(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())
	id := signupUser(t, r, "alice")

	status, _ := doJSON(t, r, http.MethodPost, "/api/v1/quiz/submit", gin.H{"userId": id, "totalQuestions": 10})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, r, http.MethodPost, "/api/v1/quiz/submit", gin.H{"userId": id, "score": 5})
	assert.Equal(t, http.StatusBadRequest, status)

	// score > totalQuestions is rejected by the scorer.
	status, env := doJSON(t, r, http.MethodPost, "/api/v1/quiz/submit", gin.H{
		"userId": id, "score": 11, "totalQuestions": 10,
	})
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, 40001, env.Code)

	status, _ = doJSON(t, r, http.MethodPost, "/api/v1/quiz/submit", gin.H{
		"userId": 999, "score": 5, "totalQuestions": 10,
	})
	assert.Equal(t, http.StatusNotFound, status)
}

func TestLeaderboardEndpoint(t *testing.T) {
	st := store.NewMemoryStore()
	r := newTestRouter(st)
	alice := signupUser(t, r, "alice")
	bob := signupUser(t, r, "bob")

	_, env := doJSON(t, r, http.MethodPost, "/api/v1/quiz/submit", gin.H{
		"userId": bob, "score": 10, "totalQuestions": 10,
	})
	require.Equal(t, 0, env.Code)

	status, env := doJSON(t, r, http.MethodGet, "/api/v1/leaderboard?type=xp&limit=5", nil)
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Leaderboard []struct {
			Rank int  `json:"rank"`
			ID   uint `json:"id"`
			XP   int  `json:"xp"`
		} `json:"leaderboard"`
		Type  string `json:"type"`
		Total int    `json:"total"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.Equal(t, "xp", data.Type)
	assert.Equal(t, 2, data.Total)
	require.Len(t, data.Leaderboard, 2)
	assert.Equal(t, bob, data.Leaderboard[0].ID)
	assert.Equal(t, alice, data.Leaderboard[1].ID)

	status, _ = doJSON(t, r, http.MethodGet, "/api/v1/leaderboard?type=level", nil)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, r, http.MethodGet, "/api/v1/leaderboard?limit=abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestPlanGenerateValidation(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())
	id := signupUser(t, r, "alice")

	status, _ := doJSON(t, r, http.MethodPost, "/api/v1/plans/generate", gin.H{
		"userId": id, "planType": "cardio", "fitnessGoal": "strength", "fitnessLevel": "beginner",
		"age": 30, "weight": 70, "height": 175,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, r, http.MethodPost, "/api/v1/plans/generate", gin.H{
		"userId": id, "planType": "workout", "fitnessLevel": "beginner",
		"age": 30, "weight": 70, "height": 175,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, r, http.MethodPost, "/api/v1/plans/generate", gin.H{
		"userId": id, "planType": "workout", "fitnessGoal": "strength", "fitnessLevel": "beginner",
		"age": 0, "weight": 70, "height": 175,
	})
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = doJSON(t, r, http.MethodPost, "/api/v1/plans/generate", gin.H{
		"userId": 999, "planType": "workout", "fitnessGoal": "strength", "fitnessLevel": "beginner",
		"age": 30, "weight": 70, "height": 175,
	})
	assert.Equal(t, http.StatusNotFound, status)

	// Valid request with no API key configured fails at generation.
	status, env := doJSON(t, r, http.MethodPost, "/api/v1/plans/generate", gin.H{
		"userId": id, "planType": "workout", "fitnessGoal": "strength", "fitnessLevel": "beginner",
		"age": 30, "weight": 70, "height": 175,
	})
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, 50051, env.Code)
}

func TestPlanGetNotFound(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())

	status, env := doJSON(t, r, http.MethodGet, "/api/v1/plans/999", nil)
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, 40402, env.Code)

	status, _ = doJSON(t, r, http.MethodGet, "/api/v1/plans/abc", nil)
	assert.Equal(t, http.StatusBadRequest, status)
}

func TestQuoteEndpoint(t *testing.T) {
	r := newTestRouter(store.NewMemoryStore())

	status, env := doJSON(t, r, http.MethodGet, "/api/v1/quote", nil)
	require.Equal(t, http.StatusOK, status)

	var data struct {
		Quote string `json:"quote"`
	}
	require.NoError(t, json.Unmarshal(env.Data, &data))
	assert.NotEmpty(t, data.Quote)
}
