package services

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/podiumcoach/podium/internal/analysis"
	"github.com/podiumcoach/podium/internal/cache"
	"github.com/podiumcoach/podium/internal/captions"
	"github.com/podiumcoach/podium/internal/models"
	"github.com/podiumcoach/podium/internal/providers/sentiment"
	"github.com/podiumcoach/podium/internal/providers/videoai"
	"github.com/podiumcoach/podium/internal/storage"
	"github.com/podiumcoach/podium/internal/utils"
)

// Collaborator responses are cached by content hash; identical transcripts
// share one paid API call.
const (
	sentimentCacheTTL = 24 * time.Hour
	videoCacheTTL     = 24 * time.Hour
)

// Assumed pace when a plain-text transcript carries no timing data.
const assumedWPM = 150

type FullRequest struct {
	Transcript    string
	TranscriptURI string
	VideoURI      string
}

type AnalysisService interface {
	Basic(ctx context.Context, raw string) (*models.BasicAnalysis, error)
	Full(ctx context.Context, req FullRequest) (*models.Report, error)
	Combined(ctx context.Context, transcript string) (*models.CombinedAnalysis, error)
	Sentiment(ctx context.Context, text string) (*models.Sentiment, error)
	Video(ctx context.Context, videoURI string) (*models.VideoInsights, error)
}

type analysisService struct {
	sentiment sentiment.Provider // nil when not configured
	video     videoai.Provider   // nil when not configured
	fetcher   storage.Fetcher    // nil when not configured
	cache     cache.Cache
	log       *logrus.Logger
	now       func() time.Time
}

func NewAnalysisService(sp sentiment.Provider, vp videoai.Provider, fetcher storage.Fetcher, c cache.Cache, log *logrus.Logger) AnalysisService {
	if c == nil {
		c = cache.Noop{}
	}
	return &analysisService{
		sentiment: sp,
		video:     vp,
		fetcher:   fetcher,
		cache:     c,
		log:       log,
		now:       time.Now,
	}
}

func (s *analysisService) Basic(ctx context.Context, raw string) (*models.BasicAnalysis, error) {
	const op = "AnalysisService.Basic"

	t, err := parseTranscript(op, raw)
	if err != nil {
		return nil, err
	}

	return &models.BasicAnalysis{
		BasicMetrics:  analysis.Basic(t.PlainText, t.DurationSec),
		PauseAnalysis: analysis.Pauses(t.Cues),
		Timestamp:     s.now().UTC().Format(time.RFC3339),
	}, nil
}

func (s *analysisService) Full(ctx context.Context, req FullRequest) (*models.Report, error) {
	const op = "AnalysisService.Full"

	raw := req.Transcript
	if raw == "" && req.TranscriptURI != "" {
		if s.fetcher == nil {
			return nil, utils.E(utils.CodeUnavailable, op, "transcript storage is not configured", nil)
		}
		b, err := s.fetcher.Fetch(ctx, req.TranscriptURI)
		if err != nil {
			return nil, utils.E(utils.CodeUnavailable, op, "failed to fetch transcript", err)
		}
		raw = string(b)
	}

	t, err := parseTranscript(op, raw)
	if err != nil {
		return nil, err
	}

	metrics := analysis.Metrics(t.PlainText, t.DurationSec)
	pauses := analysis.Pauses(t.Cues)

	// Sentiment and video are independent branches; either may fail or be
	// unconfigured without affecting the deterministic core.
	var (
		wg   sync.WaitGroup
		sent *models.Sentiment
		vid  *models.VideoInsights
	)
	if s.sentiment != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			sent = s.cachedSentiment(ctx, t.PlainText)
		}()
	}
	if s.video != nil && req.VideoURI != "" {
		wg.Add(1)
		go func() {
			defer wg.Done()
			vid = s.cachedVideo(ctx, req.VideoURI)
		}()
	}
	wg.Wait()

	meta := models.ReportMetadata{
		ReportID:          uuid.NewString(),
		AnalysisTimestamp: s.now().UTC().Format(time.RFC3339),
		TranscriptLength:  len(t.PlainText),
		AnalysisVersion:   analysis.Version,
	}

	report := analysis.Assemble(meta, metrics, pauses, sent, vid)
	return &report, nil
}

func (s *analysisService) Combined(ctx context.Context, transcript string) (*models.CombinedAnalysis, error) {
	const op = "AnalysisService.Combined"

	if strings.TrimSpace(transcript) == "" {
		return nil, utils.E(utils.CodeEmptyInput, op, "transcript is required", nil)
	}

	var (
		plainText string
		duration  float64
		pauses    models.PauseProfile
	)
	if strings.Contains(transcript, "WEBVTT") || strings.Contains(transcript, "-->") {
		t, err := parseTranscript(op, transcript)
		if err != nil {
			return nil, err
		}
		plainText = t.PlainText
		duration = t.DurationSec
		pauses = analysis.Pauses(t.Cues)
	} else {
		plainText = transcript
		wc := len(strings.Fields(plainText))
		duration = float64(wc) / assumedWPM * 60
		pauses = models.PauseProfile{Pauses: []float64{}}
	}

	metrics := analysis.Metrics(plainText, duration)

	var sent *models.Sentiment
	if s.sentiment != nil {
		sent = s.cachedSentiment(ctx, plainText)
	}

	out := analysis.Combined(metrics, pauses, duration, sent)
	return &out, nil
}

func (s *analysisService) Sentiment(ctx context.Context, text string) (*models.Sentiment, error) {
	const op = "AnalysisService.Sentiment"

	if strings.TrimSpace(text) == "" {
		return nil, utils.E(utils.CodeEmptyInput, op, "text is required", nil)
	}
	if s.sentiment == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "sentiment service is not configured", nil)
	}

	if sent := s.cachedSentiment(ctx, text); sent != nil {
		return sent, nil
	}
	return nil, utils.E(utils.CodeUnavailable, op, "sentiment analysis failed", nil)
}

func (s *analysisService) Video(ctx context.Context, videoURI string) (*models.VideoInsights, error) {
	const op = "AnalysisService.Video"

	if strings.TrimSpace(videoURI) == "" {
		return nil, utils.E(utils.CodeInvalidArgument, op, "video_uri is required", nil)
	}
	if s.video == nil {
		return nil, utils.E(utils.CodeUnavailable, op, "video analysis service is not configured", nil)
	}

	if vid := s.cachedVideo(ctx, videoURI); vid != nil {
		return vid, nil
	}
	return nil, utils.E(utils.CodeUnavailable, op, "video analysis failed", nil)
}

// cachedSentiment returns nil on any failure; callers treat a missing
// sentiment as "collaborator unavailable", never as a request error.
func (s *analysisService) cachedSentiment(ctx context.Context, text string) *models.Sentiment {
	key := cache.ContentKey("sentiment", text)

	var cached models.Sentiment
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached
	}

	out, err := s.sentiment.Analyze(ctx, text)
	if err != nil {
		s.log.WithError(err).Warn("sentiment collaborator failed")
		return nil
	}
	if err := s.cache.SetJSON(ctx, key, out, sentimentCacheTTL); err != nil {
		s.log.WithError(err).Debug("sentiment cache write failed")
	}
	return out
}

func (s *analysisService) cachedVideo(ctx context.Context, videoURI string) *models.VideoInsights {
	key := cache.ContentKey("videoai", videoURI)

	var cached models.VideoInsights
	if hit, err := s.cache.GetJSON(ctx, key, &cached); err == nil && hit {
		return &cached
	}

	out, err := s.video.Analyze(ctx, videoURI)
	if err != nil {
		s.log.WithError(err).Warn("video collaborator failed")
		return nil
	}
	if err := s.cache.SetJSON(ctx, key, out, videoCacheTTL); err != nil {
		s.log.WithError(err).Debug("video cache write failed")
	}
	return out
}

func parseTranscript(op, raw string) (*captions.Transcript, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, utils.E(utils.CodeEmptyInput, op, "transcript is required", nil)
	}

	t, err := captions.Parse(raw)
	if err != nil {
		var mts *captions.MalformedTimestampError
		switch {
		case errors.Is(err, captions.ErrEmptyInput):
			return nil, utils.E(utils.CodeEmptyInput, op, "transcript is required", err)
		case errors.As(err, &mts):
			return nil, utils.E(utils.CodeMalformedInput, op, "transcript contains a malformed timestamp", err)
		default:
			return nil, utils.E(utils.CodeInternal, op, "failed to parse transcript", err)
		}
	}
	return t, nil
}
