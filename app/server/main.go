package main

import (
	"context"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/podiumcoach/podium/config"
	"github.com/podiumcoach/podium/internal/api/handlers"
	"github.com/podiumcoach/podium/internal/api/middleware"
	"github.com/podiumcoach/podium/internal/api/routes"
	"github.com/podiumcoach/podium/internal/cache"
	"github.com/podiumcoach/podium/internal/logger"
	"github.com/podiumcoach/podium/internal/providers/llm"
	"github.com/podiumcoach/podium/internal/providers/sentiment"
	"github.com/podiumcoach/podium/internal/providers/videoai"
	"github.com/podiumcoach/podium/internal/services"
	"github.com/podiumcoach/podium/internal/storage"
)

func main() {
	_ = godotenv.Load()

	log := logger.New()
	ctx := context.Background()

	// Redis caches collaborator responses. Optional: without it every
	// request pays the external API call but the core still works.
	var c cache.Cache = cache.Noop{}
	rdb, err := config.InitRedis(ctx)
	if err != nil {
		log.WithError(err).Fatal("redis init failed")
	}
	if rdb != nil {
		c = cache.NewRedisCache(rdb)
		log.Info("redis cache connected")
	}

	// External collaborators are all optional; the deterministic analytics
	// core runs without any of them.
	var sentimentProvider sentiment.Provider
	if os.Getenv("SENTIMENT_DISABLED") == "" {
		p, err := sentiment.NewGoogleLanguage(ctx)
		if err != nil {
			log.WithError(err).Warn("sentiment provider unavailable")
		} else {
			sentimentProvider = p
			defer p.Close()
		}
	}

	var videoProvider videoai.Provider
	if os.Getenv("VIDEOAI_DISABLED") == "" {
		p, err := videoai.NewGoogleVideo(ctx)
		if err != nil {
			log.WithError(err).Warn("video provider unavailable")
		} else {
			videoProvider = p
			defer p.Close()
		}
	}

	var fetcher storage.Fetcher
	if f, err := storage.NewGCSFetcher(ctx); err != nil {
		log.WithError(err).Warn("gcs fetcher unavailable")
	} else {
		fetcher = f
		defer f.Close()
	}

	var llmProvider llm.Provider
	if project := os.Getenv("GCP_PROJECT"); project != "" {
		location := os.Getenv("GCP_LOCATION")
		if location == "" {
			location = "us-central1"
		}
		p, err := llm.NewVertexGemini(ctx, project, location, os.Getenv("COACH_MODEL"))
		if err != nil {
			log.WithError(err).Warn("coach llm unavailable")
		} else {
			llmProvider = p
			defer p.Close()
		}
	}

	analysisSvc := services.NewAnalysisService(sentimentProvider, videoProvider, fetcher, c, log)
	coachSvc := services.NewCoachService(llmProvider)

	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))

	routes.RegisterRoutes(r, routes.Deps{
		Analysis: handlers.NewAnalysisHandler(analysisSvc),
		CoachWS:  handlers.NewCoachWSHandler(coachSvc, log),
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("server starting")
	if err := r.Run(":" + port); err != nil {
		log.WithError(err).Fatal("server stopped")
	}
}
