package models

// BasicAnalysis is the response of the legacy transcript endpoint: the flat
// metrics plus the pause profile and the (non-scored) analysis timestamp.
type BasicAnalysis struct {
	BasicMetrics
	PauseAnalysis PauseProfile `json:"pause_analysis"`
	Timestamp     string       `json:"timestamp"`
}
