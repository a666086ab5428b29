// Package analysis is the pure transcript analytics core: lexical feature
// extraction, pause and speech-pattern analysis, scoring, recommendations,
// and report assembly. Nothing here performs I/O or keeps state between
// calls; identical input always produces identical output.
package analysis

import "github.com/podiumcoach/podium/internal/models"

// Version tags report metadata so consumers can detect contract changes.
const Version = "2.0"

// Basic computes the legacy metrics shape: word count, rounded duration,
// words per minute, and the generic filler total.
func Basic(plainText string, durationSec float64) models.BasicMetrics {
	wc := wordCount(plainText)
	return models.BasicMetrics{
		WordCount:   wc,
		DurationSec: round1(durationSec),
		WPM:         round1(float64(wc) / durationSec * 60),
		Filler:      len(genericFillerPattern.FindAllString(plainText, -1)),
	}
}

// Metrics computes the full feature and score bundle for a transcript.
// durationSec must be positive; the caption parser guarantees >= 0.1.
func Metrics(plainText string, durationSec float64) models.SpeechMetrics {
	basic := Basic(plainText, durationSec)
	fillers := analyzeFillers(plainText, durationSec)
	language := analyzeLanguageConfidence(plainText)

	patterns := models.SpeechPatterns{
		PaceAnalysis:    analyzePace(basic.WordCount, durationSec),
		EnergyLevels:    analyzeEnergy(plainText),
		ClarityMetrics:  analyzeClarity(plainText),
		SentenceVariety: analyzeSentenceVariety(plainText),
	}

	wpm := patterns.PaceAnalysis.WPM
	fillerRate := fillers.FillerRatePerMinute
	weak := language.WeakLanguageIndicators.Count
	prof := language.ProfessionalVocabulary.Count

	confidence := scoreConfidence(weak, prof, fillerRate, wpm)
	scores := models.PresentationScores{
		ConfidenceScore:       confidence,
		OverallQuality:        scoreOverallQuality(confidence.Score, wpm, fillerRate),
		ProfessionalReadiness: scoreProfessionalReadiness(prof, weak, fillerRate),
	}

	return models.SpeechMetrics{
		BasicMetrics:       basic,
		FillerAnalysis:     fillers,
		LanguageConfidence: language,
		SpeechPatterns:     patterns,
		PresentationScores: scores,
	}
}
