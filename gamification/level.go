package gamification

// xpPerLevel is the XP span of a single level.
const xpPerLevel = 100

// LevelForXP maps total XP to a level: floor(xp/100) + 1. A fresh user with
// 0 XP is level 1.
func LevelForXP(xp int) int {
	if xp < 0 {
		xp = 0
	}
	return xp/xpPerLevel + 1
}
