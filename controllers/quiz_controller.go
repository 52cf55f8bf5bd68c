package controllers

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitquest/fitquest/ai"
	"github.com/fitquest/fitquest/store"
	"github.com/fitquest/fitquest/utils"
)

// QuizController generates quizzes and scores submissions.
type QuizController struct {
	store store.Store
	ai    *ai.Client
}

// NewQuizController creates a new controller instance.
func NewQuizController(st store.Store, aiClient *ai.Client) *QuizController {
	return &QuizController{store: st, ai: aiClient}
}

// Generate returns a 10-question fitness quiz. Generation never fails: when
// the AI service is unavailable the canned quiz is served instead.
func (q *QuizController) Generate(ctx *gin.Context) {
	questions := q.ai.GenerateQuiz(ctx.Request.Context())

	// Model output is untrusted; strip any markup before it reaches the UI.
	for i := range questions {
		questions[i].Question = utils.Sanitize(questions[i].Question)
		for j := range questions[i].Options {
			questions[i].Options[j] = utils.Sanitize(questions[i].Options[j])
		}
	}

	utils.Success(ctx, gin.H{"questions": questions})
}

type submitQuizRequest struct {
	UserID         *int            `json:"userId"`
	Score          *int            `json:"score"`
	TotalQuestions *int            `json:"totalQuestions"`
	QuizData       json.RawMessage `json:"quizData"`
}

// Submit scores a completed quiz, appends the attempt and applies the XP.
func (q *QuizController) Submit(ctx *gin.Context) {
	var req submitQuizRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40030, "invalid request body")
		return
	}
	if req.UserID == nil || *req.UserID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40031, "valid userId is required")
		return
	}
	if req.Score == nil {
		utils.Error(ctx, http.StatusBadRequest, 40032, "score is required")
		return
	}
	if req.TotalQuestions == nil {
		utils.Error(ctx, http.StatusBadRequest, 40033, "totalQuestions is required")
		return
	}

	receipt, err := q.store.SubmitQuizResult(
		ctx.Request.Context(), uint(*req.UserID), *req.Score, *req.TotalQuestions, string(req.QuizData))
	if err != nil {
		respondStoreError(ctx, err, 50030, "failed to submit quiz")
		return
	}

	utils.InvalidateByPrefix(leaderboardCachePrefix)
	utils.Success(ctx, receipt)
}
