package videoai

import (
	"context"

	"github.com/podiumcoach/podium/internal/models"
)

// Provider analyzes a recorded presentation video and reduces it to
// visual-engagement and confidence signals. The analytics core consumes
// only the numeric scores and category labels in the returned insights.
type Provider interface {
	Analyze(ctx context.Context, videoURI string) (*models.VideoInsights, error)
	Close() error
}
