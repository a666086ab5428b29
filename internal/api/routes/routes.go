package routes

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/podiumcoach/podium/internal/api/handlers"
	"github.com/podiumcoach/podium/internal/api/middleware"
)

type Deps struct {
	Analysis *handlers.AnalysisHandler
	CoachWS  *handlers.CoachWSHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":    "healthy",
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	v1 := r.Group("/v1")
	v1.POST("/analyze/transcript", d.Analysis.Transcript)
	v1.POST("/analyze/full", d.Analysis.Full)
	v1.POST("/analyze/combined", d.Analysis.Combined)
	v1.POST("/analyze/video", d.Analysis.Video)
	v1.POST("/sentiment", d.Analysis.Sentiment)

	// Coach chat spends LLM quota, so it sits behind JWT.
	ws := r.Group("/ws")
	ws.Use(middleware.JWTAuth())
	ws.GET("/coach", d.CoachWS.Chat)
}
