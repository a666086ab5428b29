package analysis

import (
	"math"

	"github.com/podiumcoach/podium/internal/models"
)

// All three scores are independent pure functions of the feature data and
// clamp to [0,100] regardless of how extreme the inputs are.

func scoreConfidence(weakCount, profCount int, fillerRate, wpm float64) models.ConfidenceScore {
	score := 100.0
	score -= 2 * float64(weakCount)
	score += math.Min(1.5*float64(profCount), 15)

	switch {
	case fillerRate > 10:
		score -= 20
	case fillerRate > 5:
		score -= 10
	}
	if wpm < 120 || wpm > 180 {
		score -= 10
	}
	score = clamp(score, 0, 100)

	var level string
	switch {
	case score >= 85:
		level = "very_confident"
	case score >= 70:
		level = "confident"
	case score >= 55:
		level = "moderately_confident"
	default:
		level = "needs_confidence_building"
	}

	return models.ConfidenceScore{Score: round1(score), Level: level}
}

var gradeDescriptions = map[string]string{
	"A": "Excellent presentation quality",
	"B": "Good presentation with minor areas for improvement",
	"C": "Solid foundation with room for growth",
	"D": "Developing presentation skills",
	"F": "Significant improvement needed",
}

func scoreOverallQuality(confidence, wpm, fillerRate float64) models.OverallQuality {
	pace := 100.0
	if wpm < 130 || wpm > 160 {
		pace = math.Max(0, 100-math.Abs(wpm-145)*2)
	}
	filler := math.Max(0, 100-fillerRate*10)

	overall := clamp(confidence*0.4+pace*0.3+filler*0.3, 0, 100)

	var grade string
	switch {
	case overall >= 85:
		grade = "A"
	case overall >= 75:
		grade = "B"
	case overall >= 65:
		grade = "C"
	case overall >= 50:
		grade = "D"
	default:
		grade = "F"
	}

	return models.OverallQuality{
		OverallScore: round1(overall),
		Grade:        grade,
		Description:  gradeDescriptions[grade],
		PaceScore:    round1(pace),
		FillerScore:  round1(filler),
	}
}

func scoreProfessionalReadiness(profCount, weakCount int, fillerRate float64) models.ProfessionalReadiness {
	score := 50.0
	score += math.Min(3*float64(profCount), 30)
	score -= 5 * float64(weakCount)

	switch {
	case fillerRate > 8:
		score -= 20
	case fillerRate > 5:
		score -= 10
	}
	score = clamp(score, 0, 100)

	var level string
	switch {
	case score >= 80:
		level = "executive_ready"
	case score >= 65:
		level = "professional_ready"
	case score >= 50:
		level = "developing"
	default:
		level = "needs_development"
	}

	return models.ProfessionalReadiness{Score: round1(score), Level: level}
}
