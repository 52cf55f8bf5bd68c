package gamification

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	d, err := ParseDate("2025-01-15")
	require.NoError(t, err)
	assert.Equal(t, Date{Year: 2025, Month: time.January, Day: 15}, d)

	_, err = ParseDate("15/01/2025")
	assert.Error(t, err)

	_, err = ParseDate("")
	assert.Error(t, err)
}

func TestDateAddDaysRollsOver(t *testing.T) {
	assert.Equal(t, date(2025, 2, 1), date(2025, 1, 31).AddDays(1))
	assert.Equal(t, date(2025, 1, 31), date(2025, 2, 1).AddDays(-1))
	assert.Equal(t, date(2025, 1, 1), date(2024, 12, 31).AddDays(1))
	assert.Equal(t, date(2024, 2, 29), date(2024, 2, 28).AddDays(1)) // leap year
	assert.Equal(t, date(2025, 3, 1), date(2025, 2, 28).AddDays(1))
}

func TestDateTimeRoundTrip(t *testing.T) {
	d := date(2025, 7, 4)
	assert.Equal(t, d, DateOf(d.Time()))
}

func TestDateString(t *testing.T) {
	assert.Equal(t, "2025-03-07", date(2025, 3, 7).String())
}

func TestDateIsZero(t *testing.T) {
	assert.True(t, Date{}.IsZero())
	assert.False(t, date(2025, 1, 1).IsZero())
}

func TestParseLeaderboardType(t *testing.T) {
	typ, err := ParseLeaderboardType("xp")
	require.NoError(t, err)
	assert.Equal(t, LeaderboardXP, typ)

	typ, err = ParseLeaderboardType("streak")
	require.NoError(t, err)
	assert.Equal(t, LeaderboardStreak, typ)

	_, err = ParseLeaderboardType("level")
	assert.True(t, IsValidation(err))
}

func TestClampLeaderboardLimit(t *testing.T) {
	assert.Equal(t, DefaultLeaderboardLimit, ClampLeaderboardLimit(0))
	assert.Equal(t, DefaultLeaderboardLimit, ClampLeaderboardLimit(-3))
	assert.Equal(t, 25, ClampLeaderboardLimit(25))
	assert.Equal(t, MaxLeaderboardLimit, ClampLeaderboardLimit(1000))
}
