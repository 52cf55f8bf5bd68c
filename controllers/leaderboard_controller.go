package controllers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/fitquest/fitquest/gamification"
	"github.com/fitquest/fitquest/store"
	"github.com/fitquest/fitquest/utils"
)

const leaderboardCacheTTL = time.Minute

// LeaderboardController serves ranked views over user progress snapshots.
// Responses are cached briefly in Redis; every XP mutation invalidates the
// cache by prefix.
type LeaderboardController struct {
	store store.Store
}

// NewLeaderboardController creates a new controller instance.
func NewLeaderboardController(st store.Store) *LeaderboardController {
	return &LeaderboardController{store: st}
}

type leaderboardResponse struct {
	Leaderboard []gamification.LeaderboardEntry `json:"leaderboard"`
	Type        string                          `json:"type"`
	Total       int                             `json:"total"`
}

// Get returns the leaderboard for ?type=xp|streak (default xp), truncated to
// ?limit= (default 10, capped at 100). Ranks are 1-based positions; ties get
// distinct consecutive ranks.
func (l *LeaderboardController) Get(ctx *gin.Context) {
	typ, err := gamification.ParseLeaderboardType(ctx.DefaultQuery("type", "xp"))
	if err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40040, "invalid type parameter, must be 'xp' or 'streak'")
		return
	}

	limit := gamification.DefaultLeaderboardLimit
	if raw := ctx.Query("limit"); raw != "" {
		n, convErr := strconv.Atoi(raw)
		if convErr != nil {
			utils.Error(ctx, http.StatusBadRequest, 40041, "limit must be an integer")
			return
		}
		limit = n
	}
	limit = gamification.ClampLeaderboardLimit(limit)

	cacheKey := fmt.Sprintf("%s%s:%d", leaderboardCachePrefix, typ, limit)
	if b, ok := utils.CacheGetBytes(cacheKey); ok {
		var cached leaderboardResponse
		if err := json.Unmarshal(b, &cached); err == nil {
			utils.Success(ctx, cached)
			return
		}
	}

	entries, err := l.store.Leaderboard(ctx.Request.Context(), typ, limit)
	if err != nil {
		respondStoreError(ctx, err, 50040, "failed to load leaderboard")
		return
	}

	resp := leaderboardResponse{Leaderboard: entries, Type: string(typ), Total: len(entries)}
	utils.CacheSetJSON(cacheKey, resp, leaderboardCacheTTL)
	utils.Success(ctx, resp)
}
