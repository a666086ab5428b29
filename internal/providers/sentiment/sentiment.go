package sentiment

import (
	"context"

	"github.com/podiumcoach/podium/internal/models"
)

// Provider classifies the overall tone of a transcript. Implementations
// call external services; the analytics core only consumes the returned
// shape and never blocks on this itself.
type Provider interface {
	Analyze(ctx context.Context, text string) (*models.Sentiment, error)
	Close() error
}
