package analysis

import (
	"regexp"
	"strings"

	"github.com/podiumcoach/podium/internal/models"
)

const maxExamples = 5

func matchCategory(re *regexp.Regexp, text string, durationSec float64) models.CategoryMatch {
	matches := re.FindAllString(text, -1)
	return models.CategoryMatch{
		Count:         len(matches),
		RatePerMinute: round1(float64(len(matches)) / durationSec * 60),
		Examples:      distinctExamples(matches),
	}
}

func vocabularyUsage(re *regexp.Regexp, text string, wc int) models.VocabularyUsage {
	matches := re.FindAllString(text, -1)
	density := 0.0
	if wc > 0 {
		density = round2(float64(len(matches)) / float64(wc) * 100)
	}
	return models.VocabularyUsage{
		Count:    len(matches),
		Density:  density,
		Examples: distinctExamples(matches),
	}
}

// distinctExamples lowercases matches and keeps the first five distinct
// ones in order of appearance.
func distinctExamples(matches []string) []string {
	var out []string
	seen := make(map[string]bool, len(matches))
	for _, m := range matches {
		m = strings.ToLower(m)
		if seen[m] {
			continue
		}
		seen[m] = true
		out = append(out, m)
		if len(out) == maxExamples {
			break
		}
	}
	return out
}

// analyzeFillers splits disfluencies into hesitation sounds and discourse
// markers; the combined rate drives the fluency scores.
func analyzeFillers(text string, durationSec float64) models.FillerAnalysis {
	hesitation := matchCategory(hesitationPattern, text, durationSec)
	discourse := matchCategory(discoursePattern, text, durationSec)
	total := hesitation.Count + discourse.Count
	return models.FillerAnalysis{
		HesitationFillers:   hesitation,
		DiscourseMarkers:    discourse,
		TotalFillers:        total,
		FillerRatePerMinute: round1(float64(total) / durationSec * 60),
	}
}

func analyzeLanguageConfidence(text string) models.LanguageConfidence {
	wc := wordCount(text)
	return models.LanguageConfidence{
		ProfessionalVocabulary: vocabularyUsage(professionalPattern, text, wc),
		WeakLanguageIndicators: vocabularyUsage(weakLanguagePattern, text, wc),
		Intensifiers:           vocabularyUsage(intensifierPattern, text, wc),
	}
}
