package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/fitquest/fitquest/gamification"
	"github.com/fitquest/fitquest/store"
	"github.com/fitquest/fitquest/utils"
)

// UserController serves profiles and the daily-login award.
type UserController struct {
	store store.Store
}

// NewUserController creates a new controller instance.
func NewUserController(st store.Store) *UserController {
	return &UserController{store: st}
}

// Profile returns a user's snapshot plus aggregate stats, looked up by
// ?id= or ?email=.
func (u *UserController) Profile(ctx *gin.Context) {
	idParam := strings.TrimSpace(ctx.Query("id"))
	email := strings.TrimSpace(ctx.Query("email"))
	if idParam == "" && email == "" {
		utils.Error(ctx, http.StatusBadRequest, 40020, "user id or email is required")
		return
	}

	var (
		user gamification.UserSnapshot
		err  error
	)
	if idParam != "" {
		id, convErr := strconv.Atoi(idParam)
		if convErr != nil || id <= 0 {
			utils.Error(ctx, http.StatusBadRequest, 40021, "valid user id is required")
			return
		}
		user, err = u.store.GetUserByID(ctx.Request.Context(), uint(id))
	} else {
		user, err = u.store.GetUserByEmail(ctx.Request.Context(), email)
	}
	if err != nil {
		respondStoreError(ctx, err, 50020, "failed to load profile")
		return
	}

	stats, err := u.store.UserStats(ctx.Request.Context(), user.ID)
	if err != nil {
		respondStoreError(ctx, err, 50020, "failed to load profile")
		return
	}

	utils.Success(ctx, gin.H{"user": user, "stats": stats})
}

type dailyLoginRequest struct {
	UserID *int `json:"userId"`
}

// DailyLogin records today's login for the user, awarding streak XP at most
// once per calendar day. A same-day replay succeeds with xpEarned=0 and
// alreadyLoggedToday=true.
func (u *UserController) DailyLogin(ctx *gin.Context) {
	var req dailyLoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || req.UserID == nil || *req.UserID <= 0 {
		utils.Error(ctx, http.StatusBadRequest, 40022, "valid userId is required")
		return
	}

	receipt, err := u.store.RecordDailyLogin(ctx.Request.Context(), uint(*req.UserID), gamification.Today())
	if err != nil {
		respondStoreError(ctx, err, 50021, "failed to record daily login")
		return
	}

	if !receipt.AlreadyLoggedToday {
		// Totals changed; cached leaderboard views are stale.
		utils.InvalidateByPrefix(leaderboardCachePrefix)
	}

	utils.Success(ctx, receipt)
}
