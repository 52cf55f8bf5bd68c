package gamification

// LeaderboardType selects the ranking order.
type LeaderboardType string

const (
	// LeaderboardXP orders users by total XP descending.
	LeaderboardXP LeaderboardType = "xp"
	// LeaderboardStreak orders users by current streak descending, ties
	// broken by longest streak descending.
	LeaderboardStreak LeaderboardType = "streak"
)

const (
	// DefaultLeaderboardLimit is used when the caller gives no limit.
	DefaultLeaderboardLimit = 10
	// MaxLeaderboardLimit caps caller-supplied limits.
	MaxLeaderboardLimit = 100
)

// ParseLeaderboardType validates a caller-supplied type string.
func ParseLeaderboardType(s string) (LeaderboardType, error) {
	switch LeaderboardType(s) {
	case LeaderboardXP, LeaderboardStreak:
		return LeaderboardType(s), nil
	}
	return "", &ValidationError{Field: "type", Reason: "must be 'xp' or 'streak'"}
}

// ClampLeaderboardLimit applies the default and the cap.
func ClampLeaderboardLimit(limit int) int {
	if limit <= 0 {
		return DefaultLeaderboardLimit
	}
	if limit > MaxLeaderboardLimit {
		return MaxLeaderboardLimit
	}
	return limit
}

// LeaderboardEntry is one ranked row. Rank is the 1-based position in the
// already-limited ordering; ties receive distinct consecutive ranks.
type LeaderboardEntry struct {
	Rank          int    `json:"rank"`
	UserID        uint   `json:"id"`
	Username      string `json:"username"`
	FullName      string `json:"fullName"`
	AvatarURL     string `json:"avatarUrl"`
	XP            int    `json:"xp"`
	Level         int    `json:"level"`
	CurrentStreak int    `json:"currentStreak"`
	LongestStreak int    `json:"longestStreak"`
}
