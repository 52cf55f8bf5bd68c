package controllers

import (
	"net/http"
	"net/url"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/fitquest/fitquest/store"
	"github.com/fitquest/fitquest/utils"
)

// AuthController handles signup and the email-lookup login used by the
// client. There is no credential check here: upstream identity is out of
// scope and the userId is treated as trusted input.
type AuthController struct {
	store store.Store
}

// NewAuthController creates a new controller instance.
func NewAuthController(st store.Store) *AuthController {
	return &AuthController{store: st}
}

type signupRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	FullName string `json:"fullName"`
	IsGuest  bool   `json:"isGuest"`
}

// Signup creates a user with fresh progress state (xp=0, level=1, streaks=0).
// Guest signups get a generated identity when none is supplied.
func (a *AuthController) Signup(ctx *gin.Context) {
	var req signupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		utils.Error(ctx, http.StatusBadRequest, 40010, "invalid request body")
		return
	}

	req.Username = strings.TrimSpace(req.Username)
	req.Email = strings.TrimSpace(req.Email)

	if req.IsGuest && req.Username == "" {
		req.Username = "guest-" + uuid.NewString()[:8]
	}
	if req.IsGuest && req.Email == "" {
		req.Email = req.Username + "@guest.fitquest.local"
	}
	if req.Username == "" || req.Email == "" {
		utils.Error(ctx, http.StatusBadRequest, 40011, "username and email are required")
		return
	}
	if req.FullName == "" {
		req.FullName = req.Username
	}

	user, err := a.store.CreateUser(ctx.Request.Context(), store.NewUser{
		Username:  req.Username,
		Email:     req.Email,
		FullName:  req.FullName,
		AvatarURL: "https://api.dicebear.com/7.x/avataaars/svg?seed=" + url.QueryEscape(req.Username),
		IsGuest:   req.IsGuest,
	})
	if err != nil {
		respondStoreError(ctx, err, 50010, "failed to create user")
		return
	}

	utils.Created(ctx, gin.H{
		"user": user,
		"stats": gin.H{
			"totalAchievements": 0,
			"totalQuizzes":      0,
			"totalLoginDays":    0,
		},
	})
}

type loginRequest struct {
	Email string `json:"email"`
}

// Login looks a user up by email and returns the profile. No password is
// involved.
func (a *AuthController) Login(ctx *gin.Context) {
	var req loginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Email) == "" {
		utils.Error(ctx, http.StatusBadRequest, 40012, "email is required")
		return
	}

	user, err := a.store.GetUserByEmail(ctx.Request.Context(), strings.TrimSpace(req.Email))
	if err != nil {
		respondStoreError(ctx, err, 50011, "failed to load user")
		return
	}

	stats, err := a.store.UserStats(ctx.Request.Context(), user.ID)
	if err != nil {
		respondStoreError(ctx, err, 50011, "failed to load user")
		return
	}

	utils.Success(ctx, gin.H{"user": user, "stats": stats})
}
