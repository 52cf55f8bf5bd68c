package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/fitquest/fitquest/gamification"
	"github.com/fitquest/fitquest/utils"
)

const (
	leaderboardCachePrefix = "cache:leaderboard:"
)

// respondStoreError maps domain errors onto the HTTP taxonomy: validation
// 400, missing user 404, duplicate 409, everything else 500 with the given
// code. Internal failures are logged; domain failures are not.
func respondStoreError(ctx *gin.Context, err error, internalCode int, internalMsg string) {
	var ve *gamification.ValidationError
	switch {
	case errors.As(err, &ve):
		utils.Error(ctx, http.StatusBadRequest, 40001, ve.Error())
	case errors.Is(err, gamification.ErrUserNotFound):
		utils.Error(ctx, http.StatusNotFound, 40401, "user not found")
	case errors.Is(err, gamification.ErrDuplicateUser):
		utils.Error(ctx, http.StatusConflict, 40901, "username or email already exists")
	default:
		utils.Sugar.Errorf("%s: %v", internalMsg, err)
		utils.Error(ctx, http.StatusInternalServerError, internalCode, internalMsg)
	}
}
