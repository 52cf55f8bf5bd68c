package models

import "time"

// FitnessPlan stores an AI-generated plan. The content columns hold JSON
// documents produced by the generator, validated as JSON before persisting.
type FitnessPlan struct {
	ID                 uint      `gorm:"primaryKey" json:"id"`
	UserID             uint      `gorm:"index;not null" json:"userId"`
	PlanType           string    `gorm:"size:16;not null" json:"planType"` // workout, diet or combined
	FitnessGoal        string    `gorm:"size:64" json:"fitnessGoal"`
	FitnessLevel       string    `gorm:"size:32" json:"fitnessLevel"`
	Age                int       `json:"age"`
	Weight             float64   `json:"weight"`
	Height             float64   `json:"height"`
	DietaryPreferences string    `gorm:"size:255" json:"dietaryPreferences"`
	WorkoutContent     string    `gorm:"type:text" json:"-"`
	DietContent        string    `gorm:"type:text" json:"-"`
	MotivationContent  string    `gorm:"type:text" json:"-"`
	CreatedAt          time.Time `json:"createdAt"`
}
