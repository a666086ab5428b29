package analysis

import (
	"sort"
	"strings"

	"github.com/montanaflynn/stats"

	"github.com/podiumcoach/podium/internal/models"
)

func analyzePace(wc int, durationSec float64) models.PaceAnalysis {
	wpm := round1(float64(wc) / durationSec * 60)

	var category string
	switch {
	case wpm < 100:
		category = paceVerySlow
	case wpm < 120:
		category = paceSlow
	case wpm <= 160:
		category = paceOptimal
	case wpm <= 180:
		category = paceFast
	default:
		category = paceVeryFast
	}

	return models.PaceAnalysis{
		WPM:            wpm,
		Category:       category,
		Recommendation: paceRecommendations[category],
	}
}

func analyzeEnergy(text string) models.EnergyAnalysis {
	lower := strings.ToLower(text)

	exclaims := strings.Count(text, "!")
	questions := strings.Count(text, "?")
	highEnergy := len(highEnergyPattern.FindAllString(text, -1))

	phrases := 0
	for _, p := range engagementPhrases {
		phrases += strings.Count(lower, p)
	}

	wc := wordCount(text)
	density := 0.0
	if wc > 0 {
		density = round2(float64(highEnergy+exclaims) / float64(wc) * 100)
	}

	var level string
	switch {
	case density >= 3:
		level = "high_energy"
	case density >= 1.5:
		level = "moderate_energy"
	case density >= 0.5:
		level = "low_moderate_energy"
	default:
		level = "low_energy"
	}

	return models.EnergyAnalysis{
		ExclamationCount:    exclaims,
		HighEnergyWordCount: highEnergy,
		EngagementPhrases:   phrases,
		QuestionCount:       questions,
		EnergyDensity:       density,
		EnergyLevel:         level,
	}
}

const (
	complexWordRuneLen   = 7 // tokens longer than this are "complex"
	repeatedWordMinLen   = 3 // only words longer than this are tracked
	repeatedWordMinCount = 3 // reported when seen more than this often
	repeatedWordTopN     = 3
)

func analyzeClarity(text string) models.ClarityAnalysis {
	tokens := strings.Fields(text)

	complexCount := 0
	freq := make(map[string]int)
	for _, tok := range tokens {
		w := cleanToken(tok)
		if w == "" {
			continue
		}
		if len([]rune(w)) > complexWordRuneLen {
			complexCount++
		}
		if len([]rune(w)) > repeatedWordMinLen {
			freq[w]++
		}
	}

	ratio := 0.0
	if len(tokens) > 0 {
		ratio = round1(float64(complexCount) / float64(len(tokens)) * 100)
	}

	var repeated []models.RepeatedWord
	for w, n := range freq {
		if n > repeatedWordMinCount {
			repeated = append(repeated, models.RepeatedWord{Word: w, Count: n})
		}
	}
	// Count descending, then alphabetical, so identical input always yields
	// identical output.
	sort.Slice(repeated, func(i, j int) bool {
		if repeated[i].Count != repeated[j].Count {
			return repeated[i].Count > repeated[j].Count
		}
		return repeated[i].Word < repeated[j].Word
	})
	if len(repeated) > repeatedWordTopN {
		repeated = repeated[:repeatedWordTopN]
	}

	return models.ClarityAnalysis{
		ComplexWordCount: complexCount,
		ComplexityRatio:  ratio,
		RepeatedWords:    repeated,
	}
}

func analyzeSentenceVariety(text string) models.SentenceVariety {
	sents := sentences(text)

	var lengths []float64
	var dist models.SentenceDistribution
	for _, s := range sents {
		n := wordCount(s)
		lengths = append(lengths, float64(n))
		switch {
		case n < 8:
			dist.Short++
		case n <= 15:
			dist.Medium++
		default:
			dist.Long++
		}
	}

	out := models.SentenceVariety{
		SentenceCount:  len(sents),
		Distribution:   dist,
		Interpretation: "limited_variety",
	}
	if len(lengths) == 0 {
		return out
	}

	mean, _ := stats.Mean(lengths)
	out.AvgLength = round1(mean)

	if len(lengths) < 2 || mean == 0 {
		return out
	}

	sd, _ := stats.StandardDeviationSample(lengths)
	score := sd / mean * 10
	if score > 10 {
		score = 10
	}
	out.VarietyScore = round1(score)

	switch {
	case out.VarietyScore >= 7:
		out.Interpretation = "excellent_variety"
	case out.VarietyScore >= 5:
		out.Interpretation = "good_variety"
	case out.VarietyScore >= 3:
		out.Interpretation = "some_variety"
	}
	return out
}
