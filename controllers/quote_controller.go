package controllers

import (
	"github.com/gin-gonic/gin"

	"github.com/fitquest/fitquest/ai"
	"github.com/fitquest/fitquest/utils"
)

// QuoteController serves a daily motivational quote.
type QuoteController struct {
	ai *ai.Client
}

// NewQuoteController creates a new controller instance.
func NewQuoteController(aiClient *ai.Client) *QuoteController {
	return &QuoteController{ai: aiClient}
}

// Get returns a motivational quote. Always succeeds; a static quote covers
// the unconfigured case.
func (q *QuoteController) Get(ctx *gin.Context) {
	quote := utils.Sanitize(q.ai.MotivationalQuote(ctx.Request.Context()))
	utils.Success(ctx, gin.H{"quote": quote})
}
