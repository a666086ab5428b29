package services

import (
	"context"
	"fmt"
	"strings"

	"github.com/podiumcoach/podium/internal/models"
	"github.com/podiumcoach/podium/internal/providers/llm"
	"github.com/podiumcoach/podium/internal/utils"
)

type CoachService interface {
	// Stream answers a coaching question in the context of an analysis
	// report. Chunks arrive incrementally until the channel closes.
	Stream(ctx context.Context, message string, report *models.Report) (<-chan string, <-chan error, error)
}

type coachService struct {
	llm llm.Provider // nil when not configured
}

func NewCoachService(p llm.Provider) CoachService {
	return &coachService{llm: p}
}

func (s *coachService) Stream(ctx context.Context, message string, report *models.Report) (<-chan string, <-chan error, error) {
	const op = "CoachService.Stream"

	if strings.TrimSpace(message) == "" {
		return nil, nil, utils.E(utils.CodeInvalidArgument, op, "message is required", nil)
	}
	if s.llm == nil {
		return nil, nil, utils.E(utils.CodeUnavailable, op, "coach chat is not configured", nil)
	}

	chunks, errs := s.llm.StreamAnswer(ctx, buildCoachPrompt(message, report))
	return chunks, errs, nil
}

// buildCoachPrompt grounds the model in the speaker's actual metrics so
// answers reference their archetype and scores instead of generic advice.
func buildCoachPrompt(message string, report *models.Report) string {
	var b strings.Builder

	b.WriteString("You are an expert presentation coach. Provide personalized, encouraging, actionable coaching.\n")

	if report != nil {
		style := report.CoachingInsights.PresentationStyle
		quality := report.DetailedAnalysis.SpeechMetrics.PresentationScores.OverallQuality

		fmt.Fprintf(&b, "\nSpeaker archetype: %s (%s)\n", style.StyleCategory, style.Description)
		fmt.Fprintf(&b, "Overall quality: %.1f (grade %s)\n", quality.OverallScore, quality.Grade)
		fmt.Fprintf(&b, "Readiness: %s\n", report.ExecutiveSummary.Readiness)

		if len(style.NaturalStrengths) > 0 {
			fmt.Fprintf(&b, "Strengths: %s\n", strings.Join(style.NaturalStrengths, ", "))
		}
		if len(report.ExecutiveSummary.ImprovementAreas) > 0 {
			fmt.Fprintf(&b, "Growth areas: %s\n", strings.Join(report.ExecutiveSummary.ImprovementAreas, ", "))
		}

		if actions := report.Recommendations.ImmediateActions; len(actions) > 0 {
			b.WriteString("Top recommendations:\n")
			for i, a := range actions {
				if i == 3 {
					break
				}
				text := a.Action
				if text == "" {
					text = a.Suggestion
				}
				fmt.Fprintf(&b, "%d. %s: %s\n", i+1, a.Category, text)
			}
		}
	}

	b.WriteString("\nSpeaker's question: ")
	b.WriteString(message)
	return b.String()
}
