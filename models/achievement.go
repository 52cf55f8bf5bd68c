package models

import "time"

// Achievement is a one-off award attached to a user. Only counted on the
// profile page for now.
type Achievement struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	UserID          uint      `gorm:"index;not null" json:"userId"`
	AchievementType string    `gorm:"size:64;not null" json:"achievementType"`
	AchievementName string    `gorm:"size:128;not null" json:"achievementName"`
	Description     string    `gorm:"size:255" json:"description"`
	XPReward        int       `gorm:"not null" json:"xpReward"`
	EarnedAt        time.Time `json:"earnedAt"`
}
