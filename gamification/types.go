package gamification

// UserSnapshot is a read-only view of a user's progress state.
type UserSnapshot struct {
	ID            uint    `json:"id"`
	Username      string  `json:"username"`
	Email         string  `json:"email"`
	FullName      string  `json:"fullName"`
	AvatarURL     string  `json:"avatarUrl"`
	XP            int     `json:"xp"`
	Level         int     `json:"level"`
	CurrentStreak int     `json:"currentStreak"`
	LongestStreak int     `json:"longestStreak"`
	LastLoginDate *string `json:"lastLoginDate"`
	IsGuest       bool    `json:"isGuest"`
}

// LoginReceipt is the result of RecordDailyLogin. On an idempotent replay
// XPEarned is 0, AlreadyLoggedToday is true and the totals are unchanged.
type LoginReceipt struct {
	XPEarned           int  `json:"xpEarned"`
	CurrentStreak      int  `json:"currentStreak"`
	LongestStreak      int  `json:"longestStreak"`
	TotalXP            int  `json:"totalXp"`
	Level              int  `json:"level"`
	AlreadyLoggedToday bool `json:"alreadyLoggedToday"`
}

// QuizReceipt is the result of SubmitQuizResult. Bonuses reflects exactly
// which thresholds fired, in the order base / accuracy / perfect.
type QuizReceipt struct {
	AttemptID int      `json:"attemptId"`
	XPEarned  int      `json:"xpEarned"`
	Accuracy  float64  `json:"accuracy"`
	TotalXP   int      `json:"totalXp"`
	Level     int      `json:"level"`
	Bonuses   []string `json:"bonuses"`
}

// UserStats are the aggregate counts shown on the profile page.
type UserStats struct {
	TotalAchievements int `json:"totalAchievements"`
	TotalQuizzes      int `json:"totalQuizzes"`
	TotalLoginDays    int `json:"totalLoginDays"`
}
