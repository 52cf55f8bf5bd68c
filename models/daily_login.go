package models

import "time"

// DailyLogin stores one login-award record per user per calendar day. The
// unique index on (user_id, login_date) is the idempotency boundary for
// daily-login XP: a replay on the same day can never insert a second row.
type DailyLogin struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"uniqueIndex:idx_user_login_date;not null" json:"userId"`
	LoginDate time.Time `gorm:"uniqueIndex:idx_user_login_date;type:date;not null" json:"loginDate"`
	XPEarned  int       `gorm:"not null;default:10" json:"xpEarned"`
	CreatedAt time.Time `json:"createdAt"`
}
