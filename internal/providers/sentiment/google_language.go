package sentiment

import (
	"context"
	"math"

	language "cloud.google.com/go/language/apiv1"
	languagepb "cloud.google.com/go/language/apiv1/languagepb"

	"github.com/podiumcoach/podium/internal/models"
)

// Score cutoffs for calling a sentence (or document) positive or negative.
const sentimentCutoff = 0.25

type GoogleLanguage struct {
	c *language.Client
}

func NewGoogleLanguage(ctx context.Context) (*GoogleLanguage, error) {
	c, err := language.NewClient(ctx)
	if err != nil {
		return nil, err
	}
	return &GoogleLanguage{c: c}, nil
}

func (g *GoogleLanguage) Close() error { return g.c.Close() }

// Analyze maps the Natural Language API result onto the contract shape:
// an overall label plus positive/negative sentence fractions.
func (g *GoogleLanguage) Analyze(ctx context.Context, text string) (*models.Sentiment, error) {
	resp, err := g.c.AnalyzeSentiment(ctx, &languagepb.AnalyzeSentimentRequest{
		Document: &languagepb.Document{
			Type:   languagepb.Document_PLAIN_TEXT,
			Source: &languagepb.Document_Content{Content: text},
		},
	})
	if err != nil {
		return nil, err
	}

	var pos, neg int
	for _, s := range resp.Sentences {
		if s.Sentiment == nil {
			continue
		}
		switch {
		case s.Sentiment.Score >= sentimentCutoff:
			pos++
		case s.Sentiment.Score <= -sentimentCutoff:
			neg++
		}
	}

	var docScore float64
	if resp.DocumentSentiment != nil {
		docScore = float64(resp.DocumentSentiment.Score)
	}

	posPct, negPct := fractions(pos, neg, len(resp.Sentences), docScore)

	var overall string
	switch {
	case pos > 0 && neg > 0 && math.Abs(docScore) < sentimentCutoff:
		overall = "mixed"
	case docScore >= sentimentCutoff:
		overall = "positive"
	case docScore <= -sentimentCutoff:
		overall = "negative"
	default:
		overall = "neutral"
	}

	return &models.Sentiment{
		Overall:     overall,
		PositivePct: posPct,
		NegativePct: negPct,
	}, nil
}

// fractions falls back to the document score when the API returned no
// per-sentence breakdown (very short inputs).
func fractions(pos, neg, total int, docScore float64) (float64, float64) {
	if total > 0 {
		return round2(float64(pos) / float64(total)), round2(float64(neg) / float64(total))
	}
	p := (docScore + 1) / 2
	return round2(p), round2(1 - p)
}

func round2(x float64) float64 { return math.Round(x*100) / 100 }
