package models

import "time"

// QuizAttempt records one scored quiz submission. Rows are append-only and
// never updated or deleted; they form the audit trail behind profile stats.
type QuizAttempt struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	UserID         uint      `gorm:"index;not null" json:"userId"`
	Score          int       `gorm:"not null" json:"score"`
	TotalQuestions int       `gorm:"not null" json:"totalQuestions"`
	XPEarned       int       `gorm:"not null" json:"xpEarned"`
	QuizData       string    `gorm:"type:text" json:"quizData,omitempty"` // opaque JSON payload from the client
	CreatedAt      time.Time `json:"createdAt"`
}
