package handlers

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/podiumcoach/podium/internal/services"
	"github.com/podiumcoach/podium/internal/utils"
)

// Raw caption uploads are text; cap the body well above any real track.
const maxTranscriptBytes = 4 << 20

type AnalysisHandler struct {
	svc services.AnalysisService
}

func NewAnalysisHandler(svc services.AnalysisService) *AnalysisHandler {
	return &AnalysisHandler{svc: svc}
}

// Transcript accepts the raw caption track as the request body and returns
// the legacy flat metrics plus pause profile.
func (h *AnalysisHandler) Transcript(c *gin.Context) {
	raw, err := io.ReadAll(io.LimitReader(c.Request.Body, maxTranscriptBytes))
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AnalysisHandler.Transcript", "invalid request body", err))
		return
	}

	out, err := h.svc.Basic(c.Request.Context(), string(raw))
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type FullAnalysisRequest struct {
	Transcript    string `json:"transcript"`
	TranscriptURI string `json:"transcript_uri"`
	VideoURI      string `json:"video_uri"`
}

func (h *AnalysisHandler) Full(c *gin.Context) {
	var req FullAnalysisRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AnalysisHandler.Full", "invalid request body", err))
		return
	}

	report, err := h.svc.Full(c.Request.Context(), services.FullRequest{
		Transcript:    req.Transcript,
		TranscriptURI: req.TranscriptURI,
		VideoURI:      req.VideoURI,
	})
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, report)
}

type CombinedRequest struct {
	Transcript string `json:"transcript" binding:"required"`
}

// Combined serves chat surfaces: VTT or plain text in, compact projection out.
func (h *AnalysisHandler) Combined(c *gin.Context) {
	var req CombinedRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AnalysisHandler.Combined", "invalid request body", err))
		return
	}

	out, err := h.svc.Combined(c.Request.Context(), req.Transcript)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"success":  true,
		"analysis": out,
	})
}

type SentimentRequest struct {
	Text string `json:"text" binding:"required"`
}

func (h *AnalysisHandler) Sentiment(c *gin.Context) {
	var req SentimentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AnalysisHandler.Sentiment", "invalid request body", err))
		return
	}

	out, err := h.svc.Sentiment(c.Request.Context(), req.Text)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

type VideoRequest struct {
	VideoURI string `json:"video_uri" binding:"required"`
}

func (h *AnalysisHandler) Video(c *gin.Context) {
	var req VideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "AnalysisHandler.Video", "invalid request body", err))
		return
	}

	out, err := h.svc.Video(c.Request.Context(), req.VideoURI)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}
