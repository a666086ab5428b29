package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScoreConfidence_Baseline(t *testing.T) {
	cs := scoreConfidence(0, 0, 0, 145)
	assert.InDelta(t, 100.0, cs.Score, 1e-9)
	assert.Equal(t, "very_confident", cs.Level)
}

func TestScoreConfidence_Deductions(t *testing.T) {
	// 100 - 2*5 weak + min(1.5*4, 15) prof - 10 filler - 10 pace = 86.
	cs := scoreConfidence(5, 4, 6, 200)
	assert.InDelta(t, 86.0, cs.Score, 1e-9)
	assert.Equal(t, "very_confident", cs.Level)
}

func TestScoreConfidence_ProfessionalBonusCaps(t *testing.T) {
	capped := scoreConfidence(10, 100, 0, 145)
	uncapped := scoreConfidence(10, 10, 0, 145)
	// min(1.5*100, 15) == min(1.5*10, 15), so both land on 95.
	assert.InDelta(t, capped.Score, uncapped.Score, 1e-9)
	assert.InDelta(t, 95.0, capped.Score, 1e-9)
}

func TestScoreConfidence_ClampsToZero(t *testing.T) {
	cs := scoreConfidence(100, 0, 20, 300)
	assert.Zero(t, cs.Score)
	assert.Equal(t, "needs_confidence_building", cs.Level)
}

func TestScoreConfidence_Levels(t *testing.T) {
	cases := []struct {
		weak  int
		level string
	}{
		{7, "very_confident"},        // 86
		{15, "confident"},            // 70
		{22, "moderately_confident"}, // 56
		{25, "needs_confidence_building"},
	}
	for _, tc := range cases {
		cs := scoreConfidence(tc.weak, 0, 0, 145)
		assert.Equal(t, tc.level, cs.Level, "weak=%d score=%.1f", tc.weak, cs.Score)
	}
}

func TestScoreOverallQuality_OptimalInputs(t *testing.T) {
	oq := scoreOverallQuality(100, 145, 2)
	// 100*0.4 + 100*0.3 + 80*0.3 = 94.
	assert.InDelta(t, 94.0, oq.OverallScore, 1e-9)
	assert.Equal(t, "A", oq.Grade)
	assert.Equal(t, "Excellent presentation quality", oq.Description)
	assert.InDelta(t, 100.0, oq.PaceScore, 1e-9)
	assert.InDelta(t, 80.0, oq.FillerScore, 1e-9)
}

func TestScoreOverallQuality_PacePenaltyOutsideBand(t *testing.T) {
	oq := scoreOverallQuality(100, 185, 0)
	// 100 - |185-145|*2 = 20.
	assert.InDelta(t, 20.0, oq.PaceScore, 1e-9)

	oq = scoreOverallQuality(100, 300, 0)
	assert.Zero(t, oq.PaceScore)
}

func TestScoreOverallQuality_GradeBoundary(t *testing.T) {
	// wpm 145 and no fillers fix pace and filler at 100 each, so the overall
	// score is confidence*0.4 + 60 and the B/C boundary sits at 37.5.
	b := scoreOverallQuality(37.5, 145, 0)
	assert.Equal(t, "B", b.Grade)

	c := scoreOverallQuality(37.2, 145, 0)
	assert.Equal(t, "C", c.Grade)
	assert.InDelta(t, 74.9, c.OverallScore, 1e-9)
}

func TestScoreOverallQuality_FillerFloor(t *testing.T) {
	oq := scoreOverallQuality(50, 145, 25)
	assert.Zero(t, oq.FillerScore)
	// 50*0.4 + 100*0.3 + 0 = 50 -> D.
	assert.Equal(t, "D", oq.Grade)
}

func TestScoreProfessionalReadiness(t *testing.T) {
	pr := scoreProfessionalReadiness(0, 0, 0)
	assert.InDelta(t, 50.0, pr.Score, 1e-9)
	assert.Equal(t, "developing", pr.Level)

	pr = scoreProfessionalReadiness(12, 0, 0)
	// 50 + min(36, 30) = 80.
	assert.InDelta(t, 80.0, pr.Score, 1e-9)
	assert.Equal(t, "executive_ready", pr.Level)

	pr = scoreProfessionalReadiness(10, 2, 6)
	// 50 + 30 - 10 - 10 = 60, just under the professional_ready cut.
	assert.InDelta(t, 60.0, pr.Score, 1e-9)
	assert.Equal(t, "developing", pr.Level)

	pr = scoreProfessionalReadiness(0, 20, 9)
	assert.Zero(t, pr.Score)
	assert.Equal(t, "needs_development", pr.Level)
}
