package analysis

import (
	"math"

	"github.com/podiumcoach/podium/internal/models"
)

// Insights produces the professional coaching view: style archetype,
// predicted audience impact, ranked improvement areas, and benchmark
// comparison. sentiment may be nil when the collaborator was unavailable.
func Insights(m models.SpeechMetrics, sentiment *models.Sentiment) models.CoachingInsights {
	return models.CoachingInsights{
		PresentationStyle:   Style(m),
		AudienceImpact:      predictAudienceImpact(m, sentiment),
		ImprovementPriority: rankImprovementAreas(m),
		Benchmarking:        compareToBenchmarks(m),
	}
}

func predictAudienceImpact(m models.SpeechMetrics, sentiment *models.Sentiment) models.AudienceImpact {
	overall := m.PresentationScores.OverallQuality.OverallScore
	energy := m.SpeechPatterns.EnergyLevels.EnergyLevel

	var engagement, description string
	switch {
	case overall >= 80 && (energy == "high_energy" || energy == "moderate_energy"):
		engagement = "high"
		description = "Audience likely to be highly engaged and attentive"
	case overall >= 65:
		engagement = "moderate"
		description = "Audience likely to remain interested with occasional attention drifts"
	default:
		engagement = "low"
		description = "Risk of losing audience attention, may struggle to maintain engagement"
	}

	wpm := m.SpeechPatterns.PaceAnalysis.WPM
	var comprehension string
	switch {
	case wpm >= 130 && wpm <= 160:
		comprehension = "high"
	case wpm < 120 || wpm > 180:
		comprehension = "low"
	default:
		comprehension = "moderate"
	}

	return models.AudienceImpact{
		PredictedEngagement:   engagement,
		EngagementDescription: description,
		ComprehensionLevel:    comprehension,
		CredibilityFactors:    assessCredibility(m, sentiment),
	}
}

func assessCredibility(m models.SpeechMetrics, sentiment *models.Sentiment) models.CredibilityFactors {
	profDensity := m.LanguageConfidence.ProfessionalVocabulary.Density
	weakDensity := m.LanguageConfidence.WeakLanguageIndicators.Density
	fillerRate := m.FillerAnalysis.FillerRatePerMinute

	score := 50.0
	score += math.Min(profDensity*5, 25)
	score -= weakDensity * 3
	switch {
	case fillerRate > 8:
		score -= 20
	case fillerRate > 5:
		score -= 10
	}

	tone := "unknown"
	if sentiment != nil {
		tone = sentiment.Overall
		if sentiment.Overall == "positive" {
			score += 10
		}
	}
	score = clamp(score, 0, 100)

	return models.CredibilityFactors{
		CredibilityScore: round1(score),
		Factors: models.CredibilityInputs{
			ProfessionalVocabulary: profDensity,
			UncertainLanguage:      weakDensity,
			Fluency:                fillerRate,
			OverallTone:            tone,
		},
	}
}

func rankImprovementAreas(m models.SpeechMetrics) []models.ImprovementArea {
	areas := []models.ImprovementArea{}

	fillerRate := m.FillerAnalysis.FillerRatePerMinute
	if fillerRate > 5 {
		areas = append(areas, models.ImprovementArea{
			Area:            "Filler Word Reduction",
			CurrentScore:    round1(math.Max(0, 100-fillerRate*10)),
			PotentialImpact: "high",
			Difficulty:      "medium",
			TimeToImprove:   "2-4 weeks",
		})
	}

	wpm := m.SpeechPatterns.PaceAnalysis.WPM
	if wpm < 120 || wpm > 180 {
		areas = append(areas, models.ImprovementArea{
			Area:            "Speaking Pace Optimization",
			CurrentScore:    round1(math.Max(0, 100-math.Abs(wpm-145)*2)),
			PotentialImpact: "high",
			Difficulty:      "medium",
			TimeToImprove:   "3-6 weeks",
		})
	}

	weak := m.LanguageConfidence.WeakLanguageIndicators.Count
	if weak > 3 {
		areas = append(areas, models.ImprovementArea{
			Area:            "Confident Language Usage",
			CurrentScore:    round1(math.Max(0, 100-float64(weak)*5)),
			PotentialImpact: "medium",
			Difficulty:      "high",
			TimeToImprove:   "1-3 months",
		})
	}

	// Declaration order already puts high-impact areas first.
	return areas
}

func compareToBenchmarks(m models.SpeechMetrics) models.BenchmarkComparison {
	wpm := m.SpeechPatterns.PaceAnalysis.WPM
	fillerRate := m.FillerAnalysis.FillerRatePerMinute

	var pacePercentile int
	switch {
	case wpm >= 140 && wpm <= 160:
		pacePercentile = 85
	case wpm >= 120 && wpm <= 180:
		pacePercentile = 65
	default:
		pacePercentile = 30
	}

	var fluencyPercentile int
	switch {
	case fillerRate <= 3:
		fluencyPercentile = 85
	case fillerRate <= 6:
		fluencyPercentile = 60
	default:
		fluencyPercentile = 25
	}

	return models.BenchmarkComparison{
		Benchmarks: models.Benchmarks{
			ProfessionalPresentations: models.BenchmarkTargets{
				OptimalWPM:               "140-160",
				MaxFillerRate:            "3 per minute",
				ConfidenceThreshold:      "75+",
				ProfessionalVocabDensity: "2%+",
			},
			YourPerformance: models.PerformanceSnapshot{
				WPM:                      wpm,
				FillerRate:               fillerRate,
				ConfidenceScore:          m.PresentationScores.ConfidenceScore.Score,
				ProfessionalVocabDensity: m.LanguageConfidence.ProfessionalVocabulary.Density,
			},
		},
		EstimatedPercentiles: models.Percentiles{
			SpeakingPace:             pacePercentile,
			Fluency:                  fluencyPercentile,
			OverallPresentationSkill: (pacePercentile + fluencyPercentile) / 2,
		},
	}
}
