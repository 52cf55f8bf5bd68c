package gamification

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelForXP(t *testing.T) {
	cases := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{101, 2},
		{199, 2},
		{200, 3},
		{999, 10},
		{1000, 11},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.level, LevelForXP(tc.xp), "xp=%d", tc.xp)
	}
}

func TestLevelForXPNegativeClampsToOne(t *testing.T) {
	assert.Equal(t, 1, LevelForXP(-50))
}

func TestLevelNeverDecreasesWithXP(t *testing.T) {
	prev := LevelForXP(0)
	for xp := 1; xp <= 2000; xp++ {
		lvl := LevelForXP(xp)
		assert.GreaterOrEqual(t, lvl, prev, "xp=%d", xp)
		prev = lvl
	}
}
