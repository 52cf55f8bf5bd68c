package store

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/fitquest/fitquest/gamification"
	"github.com/fitquest/fitquest/models"
)

// MemoryStore keeps all state in process memory. It serves two roles: the
// development fallback when no MySQL is configured, and the store used by the
// test suite. A single mutex is the serialization point that makes every
// read-modify-write atomic, so it honors the same contract as GormStore.
type MemoryStore struct {
	mu sync.Mutex

	nextUserID    uint
	nextAttemptID int
	nextPlanID    uint

	users  map[uint]*models.User
	logins map[uint]map[gamification.Date]int // userID -> login day -> xp earned
	quiz   map[uint][]models.QuizAttempt
	plans  map[uint]*models.FitnessPlan
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		users:  make(map[uint]*models.User),
		logins: make(map[uint]map[gamification.Date]int),
		quiz:   make(map[uint][]models.QuizAttempt),
		plans:  make(map[uint]*models.FitnessPlan),
	}
}

func (s *MemoryStore) CreateUser(ctx context.Context, nu NewUser) (gamification.UserSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Username == nu.Username || u.Email == nu.Email {
			return gamification.UserSnapshot{}, gamification.ErrDuplicateUser
		}
	}

	s.nextUserID++
	now := time.Now()
	user := &models.User{
		ID:        s.nextUserID,
		Username:  nu.Username,
		Email:     nu.Email,
		FullName:  nu.FullName,
		AvatarURL: nu.AvatarURL,
		Level:     1,
		IsGuest:   nu.IsGuest,
		CreatedAt: now,
		UpdatedAt: now,
	}
	s.users[user.ID] = user
	return snapshotOf(*user), nil
}

func (s *MemoryStore) GetUserByID(ctx context.Context, id uint) (gamification.UserSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[id]
	if !ok {
		return gamification.UserSnapshot{}, gamification.ErrUserNotFound
	}
	return snapshotOf(*user), nil
}

func (s *MemoryStore) GetUserByEmail(ctx context.Context, email string) (gamification.UserSnapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, u := range s.users {
		if u.Email == email {
			return snapshotOf(*u), nil
		}
	}
	return gamification.UserSnapshot{}, gamification.ErrUserNotFound
}

func (s *MemoryStore) UserStats(ctx context.Context, id uint) (gamification.UserStats, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.users[id]; !ok {
		return gamification.UserStats{}, gamification.ErrUserNotFound
	}
	return gamification.UserStats{
		TotalQuizzes:   len(s.quiz[id]),
		TotalLoginDays: len(s.logins[id]),
	}, nil
}

func (s *MemoryStore) RecordDailyLogin(ctx context.Context, userID uint, today gamification.Date) (gamification.LoginReceipt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return gamification.LoginReceipt{}, gamification.ErrUserNotFound
	}

	days := s.logins[userID]
	if days == nil {
		days = make(map[gamification.Date]int)
		s.logins[userID] = days
	}
	if _, logged := days[today]; logged {
		return gamification.LoginReceipt{
			CurrentStreak:      user.CurrentStreak,
			LongestStreak:      user.LongestStreak,
			TotalXP:            user.XP,
			Level:              user.Level,
			AlreadyLoggedToday: true,
		}, nil
	}

	var last gamification.Date
	if user.LastLoginDate != nil {
		last = gamification.DateOf(*user.LastLoginDate)
	}
	tr := gamification.AdvanceStreak(last, user.CurrentStreak, user.LongestStreak, today)

	days[today] = tr.XPEarned
	loginDay := today.Time()
	user.XP += tr.XPEarned
	user.Level = gamification.LevelForXP(user.XP)
	user.CurrentStreak = tr.Streak
	user.LongestStreak = tr.LongestStreak
	user.LastLoginDate = &loginDay
	user.UpdatedAt = time.Now()

	return gamification.LoginReceipt{
		XPEarned:      tr.XPEarned,
		CurrentStreak: tr.Streak,
		LongestStreak: tr.LongestStreak,
		TotalXP:       user.XP,
		Level:         user.Level,
	}, nil
}

func (s *MemoryStore) SubmitQuizResult(ctx context.Context, userID uint, score, totalQuestions int, payload string) (gamification.QuizReceipt, error) {
	scorecard, err := gamification.ScoreQuiz(score, totalQuestions)
	if err != nil {
		return gamification.QuizReceipt{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	user, ok := s.users[userID]
	if !ok {
		return gamification.QuizReceipt{}, gamification.ErrUserNotFound
	}

	s.nextAttemptID++
	attempt := models.QuizAttempt{
		ID:             uint(s.nextAttemptID),
		UserID:         userID,
		Score:          score,
		TotalQuestions: totalQuestions,
		XPEarned:       scorecard.XPEarned,
		QuizData:       payload,
		CreatedAt:      time.Now(),
	}
	s.quiz[userID] = append(s.quiz[userID], attempt)

	user.XP += scorecard.XPEarned
	user.Level = gamification.LevelForXP(user.XP)
	user.UpdatedAt = time.Now()

	return gamification.QuizReceipt{
		AttemptID: s.nextAttemptID,
		XPEarned:  scorecard.XPEarned,
		Accuracy:  scorecard.Accuracy,
		TotalXP:   user.XP,
		Level:     user.Level,
		Bonuses:   scorecard.Bonuses,
	}, nil
}

func (s *MemoryStore) Leaderboard(ctx context.Context, typ gamification.LeaderboardType, limit int) ([]gamification.LeaderboardEntry, error) {
	if typ != gamification.LeaderboardXP && typ != gamification.LeaderboardStreak {
		return nil, &gamification.ValidationError{Field: "type", Reason: "must be 'xp' or 'streak'"}
	}
	limit = gamification.ClampLeaderboardLimit(limit)

	s.mu.Lock()
	defer s.mu.Unlock()

	users := make([]models.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, *u)
	}

	// Sort by id first so ties rank deterministically, then by the
	// requested order.
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	sort.SliceStable(users, func(i, j int) bool {
		a, b := users[i], users[j]
		if typ == gamification.LeaderboardXP {
			return a.XP > b.XP
		}
		if a.CurrentStreak != b.CurrentStreak {
			return a.CurrentStreak > b.CurrentStreak
		}
		return a.LongestStreak > b.LongestStreak
	})

	if len(users) > limit {
		users = users[:limit]
	}
	entries := make([]gamification.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, entryOf(i+1, u))
	}
	return entries, nil
}

func (s *MemoryStore) CreatePlan(ctx context.Context, plan *models.FitnessPlan) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextPlanID++
	plan.ID = s.nextPlanID
	if plan.CreatedAt.IsZero() {
		plan.CreatedAt = time.Now()
	}
	clone := *plan
	s.plans[plan.ID] = &clone
	return nil
}

func (s *MemoryStore) GetPlan(ctx context.Context, id uint) (models.FitnessPlan, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	plan, ok := s.plans[id]
	if !ok {
		return models.FitnessPlan{}, ErrPlanNotFound
	}
	return *plan, nil
}
