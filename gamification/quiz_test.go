package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScoreQuizBaseOnly(t *testing.T) {
	s, err := ScoreQuiz(7, 10)
	require.NoError(t, err)

	assert.InDelta(t, 70.0, s.Accuracy, 0.001)
	assert.Equal(t, 35, s.BaseXP)
	assert.Equal(t, 0, s.AccuracyBonus)
	assert.Equal(t, 0, s.PerfectBonus)
	assert.Equal(t, 35, s.XPEarned)
	assert.Len(t, s.Bonuses, 1)
}

func TestScoreQuizEightyPercentTier(t *testing.T) {
	s, err := ScoreQuiz(8, 10)
	require.NoError(t, err)

	assert.InDelta(t, 80.0, s.Accuracy, 0.001)
	assert.Equal(t, 20, s.AccuracyBonus)
	assert.Equal(t, 0, s.PerfectBonus)
	assert.Equal(t, 60, s.XPEarned)
}

func TestScoreQuizNinetyPercentTier(t *testing.T) {
	s, err := ScoreQuiz(9, 10)
	require.NoError(t, err)

	assert.InDelta(t, 90.0, s.Accuracy, 0.001)
	assert.Equal(t, 50, s.AccuracyBonus)
	assert.Equal(t, 0, s.PerfectBonus)
	assert.Equal(t, 95, s.XPEarned)
}

func TestScoreQuizTiersAreExclusive(t *testing.T) {
	// 90%+ must not also receive the 80% bonus.
	s, err := ScoreQuiz(9, 10)
	require.NoError(t, err)
	assert.Equal(t, 50, s.AccuracyBonus)

	// 89.x% stays in the 80% tier.
	s, err = ScoreQuiz(17, 19) // 89.47%
	require.NoError(t, err)
	assert.Equal(t, 20, s.AccuracyBonus)
}

func TestScoreQuizPerfect(t *testing.T) {
	s, err := ScoreQuiz(10, 10)
	require.NoError(t, err)

	assert.InDelta(t, 100.0, s.Accuracy, 0.001)
	assert.Equal(t, 50, s.BaseXP)
	assert.Equal(t, 50, s.AccuracyBonus)
	assert.Equal(t, 100, s.PerfectBonus)
	assert.Equal(t, 200, s.XPEarned)
	assert.Len(t, s.Bonuses, 3)
}

func TestScoreQuizPerfectSingleQuestion(t *testing.T) {
	// 1/1 is both >=90% and perfect.
	s, err := ScoreQuiz(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5+50+100, s.XPEarned)
}

func TestScoreQuizZeroCorrect(t *testing.T) {
	s, err := ScoreQuiz(0, 10)
	require.NoError(t, err)

	assert.Zero(t, s.Accuracy)
	assert.Zero(t, s.XPEarned)
}

func TestScoreQuizAccuracyRoundedToTwoDecimals(t *testing.T) {
	s, err := ScoreQuiz(1, 3) // 33.333...%
	require.NoError(t, err)
	assert.Equal(t, 33.33, s.Accuracy)

	s, err = ScoreQuiz(2, 3) // 66.666...%
	require.NoError(t, err)
	assert.Equal(t, 66.67, s.Accuracy)
}

func TestScoreQuizThresholdUsesUnroundedAccuracy(t *testing.T) {
	// 179/200 = 89.5%, which rounds to 89.50 but must stay below the 90 tier.
	s, err := ScoreQuiz(179, 200)
	require.NoError(t, err)
	assert.Equal(t, 89.5, s.Accuracy)
	assert.Equal(t, 20, s.AccuracyBonus)

	// 180/200 = 90% exactly crosses the tier.
	s, err = ScoreQuiz(180, 200)
	require.NoError(t, err)
	assert.Equal(t, 50, s.AccuracyBonus)
}

func TestScoreQuizRejectsInvalidInput(t *testing.T) {
	_, err := ScoreQuiz(-1, 10)
	assert.True(t, IsValidation(err))

	_, err = ScoreQuiz(5, 0)
	assert.True(t, IsValidation(err))

	_, err = ScoreQuiz(5, -2)
	assert.True(t, IsValidation(err))

	_, err = ScoreQuiz(11, 10)
	assert.True(t, IsValidation(err))
}
