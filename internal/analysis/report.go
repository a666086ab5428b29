package analysis

import (
	"fmt"

	"github.com/podiumcoach/podium/internal/models"
)

var readinessBlurbs = map[string]string{
	"executive_ready":    "Ready for executive and board-level audiences",
	"professional_ready": "Ready for professional audiences with minor polish",
	"developing":         "On track for professional settings with focused practice",
	"needs_development":  "Build core delivery skills before high-stakes presentations",
}

// Summary derives the executive view: top strengths, top improvement areas,
// a readiness blurb, and threshold-driven next steps.
func Summary(m models.SpeechMetrics) models.ExecutiveSummary {
	strengths := naturalStrengths(m)
	if len(strengths) > 3 {
		strengths = strengths[:3]
	}
	if len(strengths) == 0 {
		strengths = []string{"Completed a full practice run - a baseline to improve from"}
	}

	var improvements []string
	if m.FillerAnalysis.FillerRatePerMinute > 5 {
		improvements = append(improvements, "Reduce filler words")
	}
	wpm := m.SpeechPatterns.PaceAnalysis.WPM
	if wpm < 120 || wpm > 180 {
		improvements = append(improvements, "Bring speaking pace into the 130-160 wpm band")
	}
	if m.LanguageConfidence.WeakLanguageIndicators.Count > 3 {
		improvements = append(improvements, "Use more assertive, confident language")
	}
	if m.SpeechPatterns.SentenceVariety.VarietyScore < 3 {
		improvements = append(improvements, "Vary sentence length and structure")
	}
	if len(improvements) > 3 {
		improvements = improvements[:3]
	}
	if len(improvements) == 0 {
		improvements = []string{"Fine-tune advanced techniques such as storytelling"}
	}

	level := m.PresentationScores.ProfessionalReadiness.Level
	overall := m.PresentationScores.OverallQuality.OverallScore

	var nextSteps []string
	switch {
	case overall < 50:
		nextSteps = append(nextSteps,
			"Focus on fundamentals: pace control and filler reduction",
			"Practice with short, familiar material before longer talks")
	case overall < 75:
		nextSteps = append(nextSteps,
			"Schedule two recorded practice runs per week",
			"Target your top improvement area before the next session")
	case overall < 85:
		nextSteps = append(nextSteps,
			"Rehearse in front of a live test audience",
			"Polish transitions and openings")
	default:
		nextSteps = append(nextSteps,
			"Maintain your routine and seek higher-stakes speaking opportunities")
	}

	return models.ExecutiveSummary{
		TopStrengths:     strengths,
		ImprovementAreas: improvements,
		Readiness:        readinessBlurbs[level],
		NextSteps:        nextSteps,
	}
}

// Assemble composes the final structured report. Sentiment and video
// insights come from external collaborators and may be nil; the report is
// complete without them.
func Assemble(meta models.ReportMetadata, m models.SpeechMetrics, pauses models.PauseProfile, sentiment *models.Sentiment, video *models.VideoInsights) models.Report {
	return models.Report{
		Metadata:         meta,
		ExecutiveSummary: Summary(m),
		DetailedAnalysis: models.DetailedAnalysis{
			SpeechMetrics:     m,
			PauseAnalysis:     pauses,
			SentimentAnalysis: sentiment,
			VideoInsights:     video,
		},
		Recommendations:  Recommendations(m),
		CoachingInsights: Insights(m, sentiment),
	}
}

const (
	maxChatActions   = 3
	maxChatExercises = 2
)

// Combined is the chat-friendly compact projection of an analysis.
func Combined(m models.SpeechMetrics, pauses models.PauseProfile, durationSec float64, sentiment *models.Sentiment) models.CombinedAnalysis {
	pausePct := 0.0
	if durationSec > 0 {
		pausePct = round1(pauses.TotalPauseTime / durationSec * 100)
	}

	var sentSummary *models.SentimentSummary
	if sentiment != nil {
		sentSummary = &models.SentimentSummary{
			Label:      sentiment.Overall,
			Score:      sentiment.PositivePct,
			Confidence: round2((sentiment.PositivePct + (1 - sentiment.NegativePct)) / 2),
		}
	}

	recs := Recommendations(m)
	var lines []string
	for i, action := range recs.ImmediateActions {
		if i == maxChatActions {
			break
		}
		lines = append(lines, fmt.Sprintf("%s: %s", action.Category, action.Action))
	}
	for i, exercise := range recs.PracticeExercises {
		if i == maxChatExercises {
			break
		}
		lines = append(lines, "Practice: "+exercise)
	}

	return models.CombinedAnalysis{
		SpeechPace: models.SpeechPaceSummary{
			WordsPerMinute:  m.BasicMetrics.WPM,
			PaceCategory:    m.SpeechPatterns.PaceAnalysis.Category,
			PausePercentage: pausePct,
		},
		FillerWords: models.FillerSummary{
			TotalCount:    m.FillerAnalysis.TotalFillers,
			RatePerMinute: m.FillerAnalysis.FillerRatePerMinute,
			Breakdown: models.FillerBreakdown{
				Hesitation:       m.FillerAnalysis.HesitationFillers.Count,
				DiscourseMarkers: m.FillerAnalysis.DiscourseMarkers.Count,
			},
		},
		Sentiment: sentSummary,
		PresentationQuality: models.QualitySummary{
			OverallScore:          m.PresentationScores.OverallQuality.OverallScore,
			Grade:                 m.PresentationScores.OverallQuality.Grade,
			ConfidenceLevel:       m.PresentationScores.ConfidenceScore.Level,
			ProfessionalReadiness: m.PresentationScores.ProfessionalReadiness.Level,
		},
		Recommendations: lines,
	}
}
