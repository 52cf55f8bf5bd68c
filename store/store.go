// Package store holds the durable user-progress state. All XP, streak and
// level mutations go through a Store implementation; nothing else writes
// progress fields.
package store

import (
	"context"
	"errors"

	"github.com/fitquest/fitquest/gamification"
	"github.com/fitquest/fitquest/models"
)

// ErrPlanNotFound is returned when a fitness plan id does not exist.
var ErrPlanNotFound = errors.New("plan not found")

// NewUser is the input to CreateUser. Progress fields always start at
// xp=0, level=1, streaks=0, no last login.
type NewUser struct {
	Username  string
	Email     string
	FullName  string
	AvatarURL string
	IsGuest   bool
}

// Store is the single source of truth for user progress.
//
// Implementations must make every read-modify-write atomic per user:
// two concurrent RecordDailyLogin or SubmitQuizResult calls for the same
// user may not lose an update, and the event record plus the user update
// land together or not at all. Operations on different users are free to
// run in parallel.
type Store interface {
	CreateUser(ctx context.Context, nu NewUser) (gamification.UserSnapshot, error)
	GetUserByID(ctx context.Context, id uint) (gamification.UserSnapshot, error)
	GetUserByEmail(ctx context.Context, email string) (gamification.UserSnapshot, error)
	UserStats(ctx context.Context, id uint) (gamification.UserStats, error)

	// RecordDailyLogin awards daily-login XP at most once per calendar day.
	// A same-day replay is a successful no-op with XPEarned=0.
	RecordDailyLogin(ctx context.Context, userID uint, today gamification.Date) (gamification.LoginReceipt, error)

	// SubmitQuizResult validates, appends the attempt and applies its XP.
	SubmitQuizResult(ctx context.Context, userID uint, score, totalQuestions int, payload string) (gamification.QuizReceipt, error)

	// Leaderboard is a pure read over current snapshots.
	Leaderboard(ctx context.Context, typ gamification.LeaderboardType, limit int) ([]gamification.LeaderboardEntry, error)

	CreatePlan(ctx context.Context, plan *models.FitnessPlan) error
	GetPlan(ctx context.Context, id uint) (models.FitnessPlan, error)
}

func snapshotOf(u models.User) gamification.UserSnapshot {
	snap := gamification.UserSnapshot{
		ID:            u.ID,
		Username:      u.Username,
		Email:         u.Email,
		FullName:      u.FullName,
		AvatarURL:     u.AvatarURL,
		XP:            u.XP,
		Level:         u.Level,
		CurrentStreak: u.CurrentStreak,
		LongestStreak: u.LongestStreak,
		IsGuest:       u.IsGuest,
	}
	if u.LastLoginDate != nil {
		s := gamification.DateOf(*u.LastLoginDate).String()
		snap.LastLoginDate = &s
	}
	return snap
}

func entryOf(rank int, u models.User) gamification.LeaderboardEntry {
	return gamification.LeaderboardEntry{
		Rank:          rank,
		UserID:        u.ID,
		Username:      u.Username,
		FullName:      u.FullName,
		AvatarURL:     u.AvatarURL,
		XP:            u.XP,
		Level:         u.Level,
		CurrentStreak: u.CurrentStreak,
		LongestStreak: u.LongestStreak,
	}
}
