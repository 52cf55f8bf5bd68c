package store

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/fitquest/fitquest/gamification"
	"github.com/fitquest/fitquest/models"
)

// GormStore persists progress in MySQL. Same-user atomicity comes from
// running each read-modify-write inside a transaction that takes a
// SELECT ... FOR UPDATE row lock on the user; the unique index on
// (user_id, login_date) backs the daily-login idempotency even if two
// transactions race past the replay check.
type GormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an initialized gorm connection.
func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) CreateUser(ctx context.Context, nu NewUser) (gamification.UserSnapshot, error) {
	user := models.User{
		Username:  nu.Username,
		Email:     nu.Email,
		FullName:  nu.FullName,
		AvatarURL: nu.AvatarURL,
		Level:     1,
		IsGuest:   nu.IsGuest,
	}

	var count int64
	if err := s.db.WithContext(ctx).Model(&models.User{}).
		Where("username = ? OR email = ?", nu.Username, nu.Email).
		Count(&count).Error; err != nil {
		return gamification.UserSnapshot{}, err
	}
	if count > 0 {
		return gamification.UserSnapshot{}, gamification.ErrDuplicateUser
	}

	if err := s.db.WithContext(ctx).Create(&user).Error; err != nil {
		if isDuplicateKey(err) {
			return gamification.UserSnapshot{}, gamification.ErrDuplicateUser
		}
		return gamification.UserSnapshot{}, err
	}
	return snapshotOf(user), nil
}

func (s *GormStore) GetUserByID(ctx context.Context, id uint) (gamification.UserSnapshot, error) {
	var user models.User
	if err := s.db.WithContext(ctx).First(&user, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gamification.UserSnapshot{}, gamification.ErrUserNotFound
		}
		return gamification.UserSnapshot{}, err
	}
	return snapshotOf(user), nil
}

func (s *GormStore) GetUserByEmail(ctx context.Context, email string) (gamification.UserSnapshot, error) {
	var user models.User
	if err := s.db.WithContext(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return gamification.UserSnapshot{}, gamification.ErrUserNotFound
		}
		return gamification.UserSnapshot{}, err
	}
	return snapshotOf(user), nil
}

func (s *GormStore) UserStats(ctx context.Context, id uint) (gamification.UserStats, error) {
	var stats gamification.UserStats

	var achievements, quizzes, loginDays int64
	if err := s.db.WithContext(ctx).Model(&models.Achievement{}).Where("user_id = ?", id).Count(&achievements).Error; err != nil {
		return stats, err
	}
	if err := s.db.WithContext(ctx).Model(&models.QuizAttempt{}).Where("user_id = ?", id).Count(&quizzes).Error; err != nil {
		return stats, err
	}
	if err := s.db.WithContext(ctx).Model(&models.DailyLogin{}).Where("user_id = ?", id).Count(&loginDays).Error; err != nil {
		return stats, err
	}

	stats.TotalAchievements = int(achievements)
	stats.TotalQuizzes = int(quizzes)
	stats.TotalLoginDays = int(loginDays)
	return stats, nil
}

func (s *GormStore) RecordDailyLogin(ctx context.Context, userID uint, today gamification.Date) (gamification.LoginReceipt, error) {
	var receipt gamification.LoginReceipt

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return gamification.ErrUserNotFound
			}
			return err
		}

		// Idempotency: one award per (user, calendar day).
		var existing models.DailyLogin
		err := tx.Where("user_id = ? AND login_date = ?", userID, today.String()).First(&existing).Error
		if err == nil {
			receipt = gamification.LoginReceipt{
				CurrentStreak:      user.CurrentStreak,
				LongestStreak:      user.LongestStreak,
				TotalXP:            user.XP,
				Level:              user.Level,
				AlreadyLoggedToday: true,
			}
			return nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		var last gamification.Date
		if user.LastLoginDate != nil {
			last = gamification.DateOf(*user.LastLoginDate)
		}
		tr := gamification.AdvanceStreak(last, user.CurrentStreak, user.LongestStreak, today)

		record := models.DailyLogin{
			UserID:    userID,
			LoginDate: today.Time(),
			XPEarned:  tr.XPEarned,
		}
		if err := tx.Create(&record).Error; err != nil {
			return err
		}

		loginDay := today.Time()
		user.XP += tr.XPEarned
		user.Level = gamification.LevelForXP(user.XP)
		user.CurrentStreak = tr.Streak
		user.LongestStreak = tr.LongestStreak
		user.LastLoginDate = &loginDay
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		receipt = gamification.LoginReceipt{
			XPEarned:      tr.XPEarned,
			CurrentStreak: tr.Streak,
			LongestStreak: tr.LongestStreak,
			TotalXP:       user.XP,
			Level:         user.Level,
		}
		return nil
	})
	if err != nil {
		return gamification.LoginReceipt{}, err
	}
	return receipt, nil
}

func (s *GormStore) SubmitQuizResult(ctx context.Context, userID uint, score, totalQuestions int, payload string) (gamification.QuizReceipt, error) {
	// Validation happens before any read or write.
	scorecard, err := gamification.ScoreQuiz(score, totalQuestions)
	if err != nil {
		return gamification.QuizReceipt{}, err
	}

	var receipt gamification.QuizReceipt
	err = s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return gamification.ErrUserNotFound
			}
			return err
		}

		attempt := models.QuizAttempt{
			UserID:         userID,
			Score:          score,
			TotalQuestions: totalQuestions,
			XPEarned:       scorecard.XPEarned,
			QuizData:       payload,
		}
		if err := tx.Create(&attempt).Error; err != nil {
			return err
		}

		user.XP += scorecard.XPEarned
		user.Level = gamification.LevelForXP(user.XP)
		if err := tx.Save(&user).Error; err != nil {
			return err
		}

		receipt = gamification.QuizReceipt{
			AttemptID: int(attempt.ID),
			XPEarned:  scorecard.XPEarned,
			Accuracy:  scorecard.Accuracy,
			TotalXP:   user.XP,
			Level:     user.Level,
			Bonuses:   scorecard.Bonuses,
		}
		return nil
	})
	if err != nil {
		return gamification.QuizReceipt{}, err
	}
	return receipt, nil
}

func (s *GormStore) Leaderboard(ctx context.Context, typ gamification.LeaderboardType, limit int) ([]gamification.LeaderboardEntry, error) {
	limit = gamification.ClampLeaderboardLimit(limit)

	q := s.db.WithContext(ctx).Model(&models.User{})
	switch typ {
	case gamification.LeaderboardXP:
		q = q.Order("xp DESC")
	case gamification.LeaderboardStreak:
		q = q.Order("current_streak DESC").Order("longest_streak DESC")
	default:
		return nil, &gamification.ValidationError{Field: "type", Reason: "must be 'xp' or 'streak'"}
	}
	// Ties rank deterministically by signup order.
	q = q.Order("id ASC")

	var users []models.User
	if err := q.Limit(limit).Find(&users).Error; err != nil {
		return nil, err
	}

	entries := make([]gamification.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, entryOf(i+1, u))
	}
	return entries, nil
}

func (s *GormStore) CreatePlan(ctx context.Context, plan *models.FitnessPlan) error {
	return s.db.WithContext(ctx).Create(plan).Error
}

func (s *GormStore) GetPlan(ctx context.Context, id uint) (models.FitnessPlan, error) {
	var plan models.FitnessPlan
	if err := s.db.WithContext(ctx).First(&plan, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.FitnessPlan{}, ErrPlanNotFound
		}
		return models.FitnessPlan{}, err
	}
	return plan, nil
}

func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return err != nil && strings.Contains(err.Error(), "Duplicate entry")
}
