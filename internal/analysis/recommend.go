package analysis

import (
	"fmt"

	"github.com/podiumcoach/podium/internal/models"
)

// Recommendations maps scores and feature counts to prioritized coaching
// advice. Rules are independent and fire in declaration order; none
// suppresses another.
func Recommendations(m models.SpeechMetrics) models.RecommendationSet {
	out := models.RecommendationSet{
		ImmediateActions:        []models.Recommendation{},
		PracticeExercises:       []string{},
		LongTermGoals:           []string{},
		ProfessionalDevelopment: []models.Recommendation{},
	}

	wpm := m.SpeechPatterns.PaceAnalysis.WPM
	fillerRate := m.FillerAnalysis.FillerRatePerMinute
	confidence := m.PresentationScores.ConfidenceScore.Score
	overall := m.PresentationScores.OverallQuality.OverallScore
	profCount := m.LanguageConfidence.ProfessionalVocabulary.Count

	// Rule 1: pace out of the comfortable band.
	if wpm < 120 || wpm > 180 {
		out.ImmediateActions = append(out.ImmediateActions, models.Recommendation{
			Category:    "Speaking Pace",
			Action:      m.SpeechPatterns.PaceAnalysis.Recommendation,
			Priority:    models.PriorityHigh,
			ScoreImpact: fmt.Sprintf("Moving into the 130-160 wpm band could add up to %.0f points to your pace score", 100-m.PresentationScores.OverallQuality.PaceScore),
		})
		out.PracticeExercises = append(out.PracticeExercises,
			"Read a one-minute passage aloud against a timer, targeting 140-150 words")
	}

	// Rule 2: disfluency.
	if fillerRate > 5 {
		priority := models.PriorityHigh
		if fillerRate > 10 {
			priority = models.PriorityCritical
		}
		out.ImmediateActions = append(out.ImmediateActions, models.Recommendation{
			Category:    "Filler Words",
			Action:      "Replace filler words with deliberate silent pauses",
			Priority:    priority,
			ScoreImpact: fmt.Sprintf("Cutting fillers below 5 per minute could add up to %.0f points to your fluency score", 100-m.PresentationScores.OverallQuality.FillerScore),
		})
		out.PracticeExercises = append(out.PracticeExercises,
			"Record one minute of speech daily and count every filler; aim to halve the count within two weeks")
	}

	// Rule 3: confidence language.
	if confidence < 70 {
		out.ImmediateActions = append(out.ImmediateActions, models.Recommendation{
			Category: "Confident Language",
			Action:   "Replace hedging phrases like 'I think' and 'maybe' with direct statements",
			Priority: models.PriorityMedium,
		})
		out.PracticeExercises = append(out.PracticeExercises,
			"Rewrite three hedged sentences from your transcript as direct assertions and read them aloud")
	}

	// Rule 4: celebrate strong runs.
	if overall >= 85 {
		out.ImmediateActions = append(out.ImmediateActions, models.Recommendation{
			Category: "Overall Quality",
			Action:   "Excellent delivery - keep rehearsing to hold this level",
			Priority: models.PriorityCelebration,
		})
	}

	if overall < 75 {
		out.LongTermGoals = append(out.LongTermGoals,
			"30 days: bring the filler rate below 5 per minute",
			"60 days: hold your pace inside 130-160 wpm for a full talk",
			"90 days: raise the overall quality score above 80",
		)
	}

	if profCount < 5 {
		out.ProfessionalDevelopment = append(out.ProfessionalDevelopment, models.Recommendation{
			Category:         "Professional Vocabulary",
			Suggestion:       "Work domain terms such as 'implement', 'analyze', and 'strategy' into your talking points",
			Priority:         models.PriorityLow,
			PracticeExercise: "Pick five professional terms relevant to your topic and use each at least once in your next run-through",
		})
	}

	return out
}

// Style buckets the presenter into one of the fixed archetypes from pace,
// energy level, and confidence level.
func Style(m models.SpeechMetrics) models.PresentationStyle {
	wpm := m.SpeechPatterns.PaceAnalysis.WPM
	energy := m.SpeechPatterns.EnergyLevels.EnergyLevel
	confidence := m.PresentationScores.ConfidenceScore.Level

	var style string
	switch {
	case wpm > 160 && (energy == "high_energy" || energy == "moderate_energy"):
		style = styleDynamicEnergetic
	case wpm < 130 && (confidence == "very_confident" || confidence == "confident"):
		style = styleThoughtfulDeliberate
	case confidence == "moderately_confident" || confidence == "needs_confidence_building":
		style = styleDevelopingPresenter
	default:
		style = styleBalancedProfessional
	}

	return models.PresentationStyle{
		StyleCategory:        style,
		Description:          styleDescriptions[style],
		NaturalStrengths:     naturalStrengths(m),
		StyleRecommendations: styleTips[style],
	}
}

func naturalStrengths(m models.SpeechMetrics) []string {
	var strengths []string
	wpm := m.SpeechPatterns.PaceAnalysis.WPM
	if wpm >= 130 && wpm <= 160 {
		strengths = append(strengths, "Natural speaking pace")
	}
	if m.FillerAnalysis.FillerRatePerMinute <= 5 {
		strengths = append(strengths, "Good fluency and flow")
	}
	if m.PresentationScores.ConfidenceScore.Score >= 70 {
		strengths = append(strengths, "Confident delivery")
	}
	if m.LanguageConfidence.ProfessionalVocabulary.Density >= 2 {
		strengths = append(strengths, "Strong professional vocabulary")
	}
	return strengths
}
