package gamification

import (
	"fmt"
	"math"
)

const (
	quizXPPerCorrect    = 5
	quizAccuracyBonus80 = 20
	quizAccuracyBonus90 = 50
	quizPerfectBonus    = 100
)

// QuizScore is the breakdown of a scored quiz attempt. Bonuses lists a
// human-readable description for each component that actually applied.
type QuizScore struct {
	Accuracy      float64
	BaseXP        int
	AccuracyBonus int
	PerfectBonus  int
	XPEarned      int
	Bonuses       []string
}

// ScoreQuiz validates a quiz result and computes its XP breakdown.
//
// Base XP is 5 per correct answer. The accuracy tiers are exclusive: +20 for
// 80-89.99%, +50 for 90% and above. A perfect score adds a further +100 on
// top of the 90% tier.
func ScoreQuiz(score, totalQuestions int) (QuizScore, error) {
	if score < 0 {
		return QuizScore{}, &ValidationError{Field: "score", Reason: "must be a non-negative integer"}
	}
	if totalQuestions <= 0 {
		return QuizScore{}, &ValidationError{Field: "totalQuestions", Reason: "must be a positive integer"}
	}
	if score > totalQuestions {
		return QuizScore{}, &ValidationError{Field: "score", Reason: "cannot be greater than totalQuestions"}
	}

	accuracy := float64(score) / float64(totalQuestions) * 100

	result := QuizScore{
		Accuracy: math.Round(accuracy*100) / 100,
		BaseXP:   score * quizXPPerCorrect,
	}
	result.Bonuses = append(result.Bonuses,
		fmt.Sprintf("Base XP: %d (%d correct × %d)", result.BaseXP, score, quizXPPerCorrect))

	// Tiers apply to the unrounded accuracy.
	switch {
	case accuracy >= 90:
		result.AccuracyBonus = quizAccuracyBonus90
		result.Bonuses = append(result.Bonuses,
			fmt.Sprintf("Accuracy Bonus: %d XP (≥90%% accuracy)", quizAccuracyBonus90))
	case accuracy >= 80:
		result.AccuracyBonus = quizAccuracyBonus80
		result.Bonuses = append(result.Bonuses,
			fmt.Sprintf("Accuracy Bonus: %d XP (≥80%% accuracy)", quizAccuracyBonus80))
	}

	if score == totalQuestions {
		result.PerfectBonus = quizPerfectBonus
		result.Bonuses = append(result.Bonuses,
			fmt.Sprintf("Perfect Score Bonus: %d XP", quizPerfectBonus))
	}

	result.XPEarned = result.BaseXP + result.AccuracyBonus + result.PerfectBonus
	return result, nil
}
