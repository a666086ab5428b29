package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeFillers_SplitsHesitationAndDiscourse(t *testing.T) {
	text := "Um so I was like, you know, actually done. Uh right."
	fa := analyzeFillers(text, 60)

	// Hesitation sounds: Um, Uh.
	assert.Equal(t, 2, fa.HesitationFillers.Count)
	assert.Equal(t, []string{"um", "uh"}, fa.HesitationFillers.Examples)

	// Discourse markers: so, like, you know, actually, right.
	assert.Equal(t, 5, fa.DiscourseMarkers.Count)
	assert.Equal(t, 7, fa.TotalFillers)
	assert.InDelta(t, 7.0, fa.FillerRatePerMinute, 1e-9)
}

func TestAnalyzeFillers_ElongatedSounds(t *testing.T) {
	fa := analyzeFillers("Ummm thinking. Uhhh yes. Errr no.", 30)
	assert.Equal(t, 3, fa.HesitationFillers.Count)
	assert.InDelta(t, 6.0, fa.FillerRatePerMinute, 1e-9)
}

func TestAnalyzeFillers_WordBoundaries(t *testing.T) {
	// "summer", "umbrella", "dislike" must not match.
	fa := analyzeFillers("The summer umbrella is something I dislike.", 60)
	assert.Zero(t, fa.TotalFillers)
}

func TestDistinctExamples_CapAndCaseFolding(t *testing.T) {
	matches := []string{"Very", "very", "Really", "totally", "absolutely", "completely", "extremely"}
	got := distinctExamples(matches)
	assert.Equal(t, []string{"very", "really", "totally", "absolutely", "completely"}, got)
}

func TestVocabularyUsage_Density(t *testing.T) {
	text := "We will implement the strategy and analyze the solution together today."
	vu := vocabularyUsage(professionalPattern, text, wordCount(text))
	assert.Equal(t, 4, vu.Count)
	assert.InDelta(t, 36.36, vu.Density, 0.01)
	assert.Equal(t, []string{"implement", "strategy", "analyze", "solution"}, vu.Examples)
}

func TestVocabularyUsage_ZeroWordGuard(t *testing.T) {
	vu := vocabularyUsage(professionalPattern, "", 0)
	assert.Zero(t, vu.Count)
	assert.Zero(t, vu.Density)
}

func TestAnalyzeLanguageConfidence_Categories(t *testing.T) {
	text := "I think we should maybe implement this. It is really very important, perhaps."
	lc := analyzeLanguageConfidence(text)

	assert.Equal(t, 1, lc.ProfessionalVocabulary.Count)
	assert.Equal(t, 3, lc.WeakLanguageIndicators.Count) // i think, maybe, perhaps
	assert.Equal(t, 2, lc.Intensifiers.Count)           // really, very
	assert.ElementsMatch(t, []string{"i think", "maybe", "perhaps"}, lc.WeakLanguageIndicators.Examples)
}

func TestMatchCategory_RateScalesWithDuration(t *testing.T) {
	text := strings.Repeat("um ", 4)
	cm := matchCategory(hesitationPattern, text, 120)
	assert.Equal(t, 4, cm.Count)
	assert.InDelta(t, 2.0, cm.RatePerMinute, 1e-9)
}
