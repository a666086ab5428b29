package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podiumcoach/podium/internal/models"
)

// metricsWith builds a metrics bundle with just the fields the rule engine
// reads, so each rule can be driven independently.
func metricsWith(wpm, fillerRate, confidence, overall float64, profCount int) models.SpeechMetrics {
	var m models.SpeechMetrics
	m.SpeechPatterns.PaceAnalysis.WPM = wpm
	m.SpeechPatterns.PaceAnalysis.Recommendation = paceRecommendations[paceOptimal]
	m.FillerAnalysis.FillerRatePerMinute = fillerRate
	m.PresentationScores.ConfidenceScore.Score = confidence
	m.PresentationScores.OverallQuality.OverallScore = overall
	m.LanguageConfidence.ProfessionalVocabulary.Count = profCount
	return m
}

func TestRecommendations_CleanRunFiresNoActions(t *testing.T) {
	recs := Recommendations(metricsWith(145, 2, 90, 90, 6))
	require.Len(t, recs.ImmediateActions, 1) // celebration only
	assert.Equal(t, models.PriorityCelebration, recs.ImmediateActions[0].Priority)
	assert.Empty(t, recs.PracticeExercises)
	assert.Empty(t, recs.LongTermGoals)
	assert.Empty(t, recs.ProfessionalDevelopment)
}

func TestRecommendations_AllRulesFireInOrder(t *testing.T) {
	recs := Recommendations(metricsWith(200, 12, 50, 40, 0))

	require.Len(t, recs.ImmediateActions, 3)
	assert.Equal(t, "Speaking Pace", recs.ImmediateActions[0].Category)
	assert.Equal(t, models.PriorityHigh, recs.ImmediateActions[0].Priority)
	assert.Equal(t, "Filler Words", recs.ImmediateActions[1].Category)
	assert.Equal(t, models.PriorityCritical, recs.ImmediateActions[1].Priority)
	assert.Equal(t, "Confident Language", recs.ImmediateActions[2].Category)
	assert.Equal(t, models.PriorityMedium, recs.ImmediateActions[2].Priority)

	assert.Len(t, recs.PracticeExercises, 3)
	assert.Len(t, recs.LongTermGoals, 3)
	require.Len(t, recs.ProfessionalDevelopment, 1)
	assert.Equal(t, models.PriorityLow, recs.ProfessionalDevelopment[0].Priority)
}

func TestRecommendations_FillerPriorityEscalation(t *testing.T) {
	high := Recommendations(metricsWith(145, 7, 90, 80, 6))
	require.Len(t, high.ImmediateActions, 1)
	assert.Equal(t, models.PriorityHigh, high.ImmediateActions[0].Priority)

	critical := Recommendations(metricsWith(145, 10.5, 90, 80, 6))
	require.Len(t, critical.ImmediateActions, 1)
	assert.Equal(t, models.PriorityCritical, critical.ImmediateActions[0].Priority)
}

func TestRecommendations_EmptySlicesNotNil(t *testing.T) {
	recs := Recommendations(metricsWith(145, 2, 90, 80, 6))
	assert.NotNil(t, recs.ImmediateActions)
	assert.NotNil(t, recs.PracticeExercises)
	assert.NotNil(t, recs.LongTermGoals)
	assert.NotNil(t, recs.ProfessionalDevelopment)
}

func styleInput(wpm float64, energyLevel, confidenceLevel string) models.SpeechMetrics {
	var m models.SpeechMetrics
	m.SpeechPatterns.PaceAnalysis.WPM = wpm
	m.SpeechPatterns.EnergyLevels.EnergyLevel = energyLevel
	m.PresentationScores.ConfidenceScore.Level = confidenceLevel
	return m
}

func TestStyle_Archetypes(t *testing.T) {
	cases := []struct {
		name string
		in   models.SpeechMetrics
		want string
	}{
		{"fast and energetic", styleInput(170, "high_energy", "confident"), "dynamic_energetic"},
		{"fast but flat", styleInput(170, "low_energy", "moderately_confident"), "developing_presenter"},
		{"slow and assured", styleInput(120, "low_energy", "very_confident"), "thoughtful_deliberate"},
		{"slow and unsure", styleInput(120, "low_energy", "needs_confidence_building"), "developing_presenter"},
		{"middle of the road", styleInput(145, "moderate_energy", "confident"), "balanced_professional"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Style(tc.in)
			assert.Equal(t, tc.want, got.StyleCategory)
			assert.Equal(t, styleDescriptions[tc.want], got.Description)
			assert.Equal(t, styleTips[tc.want], got.StyleRecommendations)
		})
	}
}

func TestNaturalStrengths(t *testing.T) {
	var m models.SpeechMetrics
	m.SpeechPatterns.PaceAnalysis.WPM = 150
	m.FillerAnalysis.FillerRatePerMinute = 3
	m.PresentationScores.ConfidenceScore.Score = 82
	m.LanguageConfidence.ProfessionalVocabulary.Density = 2.5

	assert.Len(t, naturalStrengths(m), 4)

	m.SpeechPatterns.PaceAnalysis.WPM = 200
	m.FillerAnalysis.FillerRatePerMinute = 9
	m.PresentationScores.ConfidenceScore.Score = 40
	m.LanguageConfidence.ProfessionalVocabulary.Density = 0
	assert.Empty(t, naturalStrengths(m))
}
