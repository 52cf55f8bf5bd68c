package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(y, m, d int) Date {
	return Date{Year: y, Month: time.Month(m), Day: d}
}

func TestAdvanceStreakFirstLogin(t *testing.T) {
	tr := AdvanceStreak(Date{}, 0, 0, date(2025, 1, 15))

	assert.Equal(t, 1, tr.Streak)
	assert.Equal(t, 1, tr.LongestStreak)
	assert.Equal(t, 15, tr.XPEarned)
}

func TestAdvanceStreakConsecutiveDay(t *testing.T) {
	tr := AdvanceStreak(date(2025, 1, 15), 1, 1, date(2025, 1, 16))

	assert.Equal(t, 2, tr.Streak)
	assert.Equal(t, 2, tr.LongestStreak)
	assert.Equal(t, 20, tr.XPEarned)
}

func TestAdvanceStreakResetsAfterGap(t *testing.T) {
	// Two-day gap: streak of 5 goes back to 1, longest is preserved.
	tr := AdvanceStreak(date(2025, 1, 10), 5, 5, date(2025, 1, 13))

	assert.Equal(t, 1, tr.Streak)
	assert.Equal(t, 5, tr.LongestStreak)
	assert.Equal(t, 15, tr.XPEarned)
}

func TestAdvanceStreakCrossesMonthBoundary(t *testing.T) {
	tr := AdvanceStreak(date(2025, 1, 31), 3, 3, date(2025, 2, 1))

	assert.Equal(t, 4, tr.Streak)
	assert.Equal(t, 4, tr.LongestStreak)
	assert.Equal(t, 30, tr.XPEarned)
}

func TestAdvanceStreakCrossesYearBoundary(t *testing.T) {
	tr := AdvanceStreak(date(2024, 12, 31), 9, 9, date(2025, 1, 1))

	assert.Equal(t, 10, tr.Streak)
	assert.Equal(t, 60, tr.XPEarned)
}

func TestAdvanceStreakLongestNotOvertaken(t *testing.T) {
	// Current run is shorter than the record; longest must not shrink.
	tr := AdvanceStreak(date(2025, 3, 4), 2, 8, date(2025, 3, 5))

	assert.Equal(t, 3, tr.Streak)
	assert.Equal(t, 8, tr.LongestStreak)
}

func TestAdvanceStreakRewardScalesWithStreak(t *testing.T) {
	last := date(2025, 6, 1)
	streak := 0
	longest := 0
	for i := 0; i < 7; i++ {
		today := last.AddDays(1)
		tr := AdvanceStreak(last, streak, longest, today)
		assert.Equal(t, 10+5*tr.Streak, tr.XPEarned)
		last, streak, longest = today, tr.Streak, tr.LongestStreak
	}
	assert.Equal(t, 7, streak)
}
