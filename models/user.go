package models

import (
	"time"

	"gorm.io/gorm"
)

// User holds account identity plus the gamification progress fields. XP only
// ever grows; level is always derived from XP on write.
type User struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	Username      string     `gorm:"size:64;uniqueIndex;not null" json:"username"`
	Email         string     `gorm:"size:255;uniqueIndex;not null" json:"email"`
	FullName      string     `gorm:"size:128" json:"fullName"`
	AvatarURL     string     `gorm:"size:512" json:"avatarUrl"`
	XP            int        `gorm:"not null;default:0" json:"xp"`
	Level         int        `gorm:"not null;default:1" json:"level"`
	CurrentStreak int        `gorm:"not null;default:0" json:"currentStreak"`
	LongestStreak int        `gorm:"not null;default:0" json:"longestStreak"`
	LastLoginDate *time.Time `gorm:"type:date" json:"lastLoginDate"`
	IsGuest       bool       `gorm:"not null;default:false" json:"isGuest"`
	CreatedAt     time.Time  `json:"createdAt"`
	UpdatedAt     time.Time  `json:"updatedAt"`
}

// BeforeCreate hook ensures timestamps are set even when not provided.
func (u *User) BeforeCreate(tx *gorm.DB) error {
	now := time.Now()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	u.UpdatedAt = now
	return nil
}

// BeforeUpdate ensures the UpdatedAt timestamp is refreshed.
func (u *User) BeforeUpdate(tx *gorm.DB) error {
	u.UpdatedAt = time.Now()
	return nil
}
