package services

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/podiumcoach/podium/internal/models"
	"github.com/podiumcoach/podium/internal/utils"
)

type stubLLM struct {
	chunks     []string
	lastPrompt string
}

func (s *stubLLM) StreamAnswer(ctx context.Context, prompt string) (<-chan string, <-chan error) {
	s.lastPrompt = prompt
	out := make(chan string, len(s.chunks))
	errs := make(chan error, 1)
	for _, c := range s.chunks {
		out <- c
	}
	close(out)
	close(errs)
	return out, errs
}

func (s *stubLLM) Close() error { return nil }

func TestCoachStream_RequiresMessage(t *testing.T) {
	svc := NewCoachService(&stubLLM{})

	_, _, err := svc.Stream(context.Background(), "  ", nil)
	assert.True(t, utils.IsCode(err, utils.CodeInvalidArgument))
}

func TestCoachStream_NotConfigured(t *testing.T) {
	svc := NewCoachService(nil)

	_, _, err := svc.Stream(context.Background(), "how do I improve?", nil)
	assert.True(t, utils.IsCode(err, utils.CodeUnavailable))
}

func TestCoachStream_DeliversChunks(t *testing.T) {
	llm := &stubLLM{chunks: []string{"Slow ", "down."}}
	svc := NewCoachService(llm)

	chunks, errs, err := svc.Stream(context.Background(), "how is my pace?", nil)
	require.NoError(t, err)

	var got strings.Builder
	for c := range chunks {
		got.WriteString(c)
	}
	assert.Equal(t, "Slow down.", got.String())
	assert.NoError(t, <-errs)
}

func TestBuildCoachPrompt_GroundsInReport(t *testing.T) {
	report := &models.Report{}
	report.CoachingInsights.PresentationStyle.StyleCategory = "balanced_professional"
	report.CoachingInsights.PresentationStyle.NaturalStrengths = []string{"Confident delivery"}
	report.DetailedAnalysis.SpeechMetrics.PresentationScores.OverallQuality.OverallScore = 82.5
	report.DetailedAnalysis.SpeechMetrics.PresentationScores.OverallQuality.Grade = "B"
	report.ExecutiveSummary.Readiness = "Ready for professional audiences with minor polish"
	report.ExecutiveSummary.ImprovementAreas = []string{"Reduce filler words"}
	report.Recommendations.ImmediateActions = []models.Recommendation{
		{Category: "Filler Words", Action: "Replace filler words with deliberate silent pauses"},
	}

	prompt := buildCoachPrompt("what should I work on first?", report)

	assert.Contains(t, prompt, "balanced_professional")
	assert.Contains(t, prompt, "82.5 (grade B)")
	assert.Contains(t, prompt, "Confident delivery")
	assert.Contains(t, prompt, "Reduce filler words")
	assert.Contains(t, prompt, "Filler Words: Replace filler words")
	assert.Contains(t, prompt, "what should I work on first?")
}

func TestBuildCoachPrompt_NilReport(t *testing.T) {
	prompt := buildCoachPrompt("any advice?", nil)
	assert.Contains(t, prompt, "presentation coach")
	assert.True(t, strings.HasSuffix(prompt, "any advice?"))
}
