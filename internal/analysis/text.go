package analysis

import (
	"math"
	"regexp"
	"strings"
)

var sentenceBoundary = regexp.MustCompile(`[.!?]+`)

func wordCount(text string) int {
	return len(strings.Fields(text))
}

// sentences splits on ., ! and ?; empty fragments are discarded.
func sentences(text string) []string {
	var out []string
	for _, s := range sentenceBoundary.Split(text, -1) {
		s = strings.TrimSpace(s)
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}

// cleanToken lowercases a whitespace-split token and strips surrounding
// punctuation so "Strategy," and "strategy" count as the same word.
func cleanToken(tok string) string {
	return strings.Trim(strings.ToLower(tok), `.,!?;:'"()[]{}<>-`)
}

func round1(x float64) float64 { return math.Round(x*10) / 10 }

func round2(x float64) float64 { return math.Round(x*100) / 100 }

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
