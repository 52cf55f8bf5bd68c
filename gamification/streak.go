package gamification

const (
	dailyLoginBaseXP   = 10
	dailyLoginStreakXP = 5
)

// StreakTransition is the outcome of advancing a user's daily-login streak.
type StreakTransition struct {
	Streak        int
	LongestStreak int
	XPEarned      int
}

// AdvanceStreak computes the streak state for a login on today.
//
// The streak continues only when the last recorded login was exactly
// yesterday; any gap (or a first-ever login, signalled by the zero Date)
// resets it to 1. The XP reward scales with the new streak length:
// 10 + 5*streak. The same-day case never reaches this function; the store
// short-circuits it as an idempotent replay.
func AdvanceStreak(lastLogin Date, currentStreak, longestStreak int, today Date) StreakTransition {
	streak := 1
	if !lastLogin.IsZero() && lastLogin == today.AddDays(-1) {
		streak = currentStreak + 1
	}

	longest := longestStreak
	if streak > longest {
		longest = streak
	}

	return StreakTransition{
		Streak:        streak,
		LongestStreak: longest,
		XPEarned:      dailyLoginBaseXP + dailyLoginStreakXP*streak,
	}
}
